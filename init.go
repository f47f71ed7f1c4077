package printutils

import (
	"errors"
	"fmt"
	"reflect"
	"runtime"
	"strings"
	"sync"
	"time"
)

// ErrCallerUnknown is returned by Init when no name was given and the
// calling package cannot be resolved from the stack.
var ErrCallerUnknown = errors.New("printutils: cannot resolve caller package")

type options struct {
	name     string
	config   *Config
	print    PrintFunc
	binding  *PrintFunc
	explicit bool
	now      func() time.Time
}

// Option customizes Init.
type Option func(*options)

// WithName sets the title explicitly instead of using the caller's package name.
func WithName(name string) Option {
	return func(o *options) { o.name = name }
}

// WithConfig sets the configuration. The wrapper keeps its own copy.
func WithConfig(cfg Config) Option {
	return func(o *options) { o.config = &cfg }
}

// WithPrint sets the primitive to wrap when no binding is given.
func WithPrint(fn PrintFunc) Option {
	return func(o *options) { o.print = fn }
}

// WithBinding points Init at the caller's own print variable. The value it
// holds becomes the wrapped primitive, and unless Explicit is also given the
// variable is replaced with the wrapper's Call.
func WithBinding(target *PrintFunc) Option {
	return func(o *options) { o.binding = target }
}

// Explicit leaves any binding untouched; the caller uses the returned wrapper.
func Explicit() Option {
	return func(o *options) { o.explicit = true }
}

// WithClock sets the time source used for timestamps.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// Init builds a PrintWrapper. The primitive is captured at call time from
// the binding if one is given, else from WithPrint, else fmt.Println.
// Without WithName the title is the calling package's name.
func Init(opts ...Option) (*PrintWrapper, error) {
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}

	name := o.name
	if name == "" {
		caller, err := callerPackage(2)
		if err != nil {
			return nil, err
		}
		name = caller
	}

	cfg := NewConfig()
	if o.config != nil {
		cfg = *o.config
	}

	primitive := o.print
	if o.binding != nil {
		if raw, ok := boundPrimitive(o.binding); ok {
			primitive = raw
		} else if *o.binding != nil {
			primitive = *o.binding
		}
	}
	if primitive == nil {
		primitive = fmt.Println
	}

	w := &PrintWrapper{
		print:  primitive,
		name:   name,
		config: cfg,
		now:    o.now,
	}
	if o.binding != nil && !o.explicit {
		bindings.Store(o.binding, primitive)
		*o.binding = w.Call
	}
	return w, nil
}

// bindings maps every rebound print variable to the raw primitive it held
// before its first rebinding.
var bindings sync.Map // *PrintFunc -> PrintFunc

// callCode is the code pointer shared by all PrintWrapper.Call method values.
var callCode = reflect.ValueOf((&PrintWrapper{}).Call).Pointer()

// boundPrimitive returns the raw primitive behind target when target still
// holds a wrapper's Call. A variable the caller reassigned since is taken
// at face value.
func boundPrimitive(target *PrintFunc) (PrintFunc, bool) {
	if *target == nil || reflect.ValueOf(*target).Pointer() != callCode {
		return nil, false
	}
	raw, ok := bindings.Load(target)
	if !ok {
		return nil, false
	}
	return raw.(PrintFunc), true
}

// callerPackage returns the package name of the function skip frames above
// its own caller, e.g. "main" or "cli".
func callerPackage(skip int) (string, error) {
	pc, _, _, ok := runtime.Caller(skip)
	if !ok {
		return "", ErrCallerUnknown
	}
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return "", ErrCallerUnknown
	}
	name := packageName(fn.Name())
	if name == "" {
		return "", ErrCallerUnknown
	}
	return name, nil
}

// packageName extracts the package name from a qualified function name such
// as "example.com/app/internal/cli.(*runner).run.func1".
func packageName(fn string) string {
	if i := strings.LastIndex(fn, "/"); i >= 0 {
		fn = fn[i+1:]
	}
	if i := strings.Index(fn, "."); i >= 0 {
		fn = fn[:i]
	}
	return fn
}

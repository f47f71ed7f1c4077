package printutils

import (
	"fmt"
	"strings"
	"time"

	"github.com/lestrrat-go/strftime"
)

// PrintFunc is a print primitive. fmt.Println satisfies it.
type PrintFunc func(a ...any) (n int, err error)

// emitFunc receives the fully decorated argument list.
type emitFunc func(args []any) (int, error)

// PrintWrapper forwards tagged, optionally timestamped and titled output to
// the print primitive captured when it was built.
//
// A PrintWrapper is not safe for concurrent mutation; concurrent printing is
// as safe as the underlying primitive.
type PrintWrapper struct {
	print  PrintFunc
	name   string
	config Config
	now    func() time.Time
}

// Name returns the title printed in front of decorated messages.
func (w *PrintWrapper) Name() string { return w.name }

// Config returns a copy of the wrapper's configuration.
func (w *PrintWrapper) Config() Config { return w.config }

// Call is the plain print. It forwards args untouched unless
// Config.DecoratePurePrint is set, in which case timestamp, title and the
// AllowPrint switch apply (no tag, no color).
func (w *PrintWrapper) Call(a ...any) (int, error) {
	if !w.config.DecoratePurePrint {
		return w.print(a...)
	}
	return w.decorate(w.forward)(a)
}

// Log prints "[L]" followed by args, passed as separate arguments.
func (w *PrintWrapper) Log(a ...any) (int, error) {
	return w.decorate(w.forward)(prepend(TagLog, a))
}

// Info prints "[I]" and args as one cyan line.
func (w *PrintWrapper) Info(a ...any) (int, error) {
	return w.decorate(w.styled(InfoStyle))(prepend(TagInfo, a))
}

// Success prints "[S]" and args as one green line.
func (w *PrintWrapper) Success(a ...any) (int, error) {
	return w.decorate(w.styled(SuccessStyle))(prepend(TagSuccess, a))
}

// Warning prints "[W]" and args as one yellow line.
func (w *PrintWrapper) Warning(a ...any) (int, error) {
	return w.decorate(w.styled(WarningStyle))(prepend(TagWarning, a))
}

// Error prints "[E]" and args as one bold red line.
func (w *PrintWrapper) Error(a ...any) (int, error) {
	return w.decorate(w.styled(ErrorStyle))(prepend(TagError, a))
}

// decorate applies the shared gating and prefix rules before emit runs.
// Resulting order is title, timestamp, then the caller's args.
func (w *PrintWrapper) decorate(emit emitFunc) emitFunc {
	return func(args []any) (int, error) {
		if !w.config.AllowPrint {
			return 0, nil
		}
		if w.config.Timestamp {
			ts, err := w.timestamp()
			if err != nil {
				return 0, err
			}
			args = prepend(ts, args)
		}
		if w.config.Title && w.name != "" {
			args = prepend(w.name, args)
		}
		return emit(args)
	}
}

func (w *PrintWrapper) forward(args []any) (int, error) {
	return w.print(args...)
}

func (w *PrintWrapper) styled(st Style) emitFunc {
	return func(args []any) (int, error) {
		return w.print(st.Render(join(args)))
	}
}

// timestamp renders "[<time>] :" using the configured strftime pattern.
// %f is six-digit microseconds.
func (w *PrintWrapper) timestamp() (string, error) {
	s, err := strftime.Format(w.config.TimestampFormat, w.now(), strftime.WithMicroseconds('f'))
	if err != nil {
		return "", err
	}
	return "[" + s + "] :", nil
}

func prepend(v any, args []any) []any {
	out := make([]any, 0, len(args)+1)
	out = append(out, v)
	return append(out, args...)
}

// join space-separates the default string form of every element.
func join(args []any) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = fmt.Sprint(a)
	}
	return strings.Join(parts, " ")
}

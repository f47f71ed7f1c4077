package printutils

import (
	"fmt"
	"time"
)

// recorder is a PrintFunc fake that keeps every call's arguments.
type recorder struct {
	calls [][]any
}

func (r *recorder) Print(a ...any) (int, error) {
	r.calls = append(r.calls, a)
	return len(fmt.Sprintln(a...)), nil
}

var fixedTime = time.Date(2024, 3, 9, 14, 3, 9, 0, time.UTC)

func fixedClock() time.Time { return fixedTime }

// newTestWrapper builds an explicit wrapper around a fresh recorder.
func newTestWrapper(name string, cfg Config) (*PrintWrapper, *recorder) {
	rec := &recorder{}
	w, err := Init(WithName(name), WithConfig(cfg), WithPrint(rec.Print), WithClock(fixedClock), Explicit())
	if err != nil {
		panic(err)
	}
	return w, rec
}

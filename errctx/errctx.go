// Package errctx keeps the originating error of a failure visible after
// cleanup code has run.
//
// A function starts a Frame with Begin, saves the error of a failing
// operation with Save, SaveLast or Perror, and returns through Return (or
// defers Restore). On return the saved error is written back into the
// platform's last-error Slot, so a caller inspecting that slot sees the
// real cause rather than whatever a later Destroy or Close left behind.
//
// Example:
//
//	func open(p Platform) (err error) {
//	    f := errctx.Begin(p)
//	    defer f.Restore()
//
//	    w, err := p.CreateWindow("demo", 640, 480)
//	    if err != nil {
//	        return f.Perror(err, "CreateWindow failed")
//	    }
//	    defer w.Destroy() // may overwrite the slot; Restore runs after it
//	    ...
//	}
//
// The convention only works when call sites use it: a forgotten Save or a
// clobbering call after Return is not detected.
package errctx

import (
	"fmt"
	"io"
	"os"
	"path"
	"runtime"
	"time"
)

// Slot is the platform's last-error state.
type Slot interface {
	LastError() error
	SetLastError(err error)
}

// Error is a failure tagged with the call site that reported it.
type Error struct {
	Func string
	Line int
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("[%s:%d] %s", e.Func, e.Line, e.Msg)
	}
	return fmt.Sprintf("[%s:%d] %s: %v", e.Func, e.Line, e.Msg, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Option configures a Frame.
type Option func(*Frame)

// WithWriter sets the diagnostic stream used by Perror and Perrorf.
// A nil writer discards diagnostics.
func WithWriter(w io.Writer) Option {
	return func(f *Frame) {
		if w == nil {
			w = io.Discard
		}
		f.w = w
	}
}

// WithClock sets the time source for diagnostic timestamps.
func WithClock(now func() time.Time) Option {
	return func(f *Frame) {
		f.now = now
	}
}

// Frame holds the error saved during one function call.
// A Frame belongs to a single call and is not safe for concurrent use.
type Frame struct {
	slot  Slot
	saved error
	w     io.Writer
	now   func() time.Time
}

// Begin starts an error context with no saved error.
// slot may be nil, in which case Return and Restore only return.
func Begin(slot Slot, opts ...Option) *Frame {
	f := &Frame{slot: slot, w: os.Stderr, now: time.Now}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Save records err as the originating error. A nil err is ignored so a
// successful call cannot erase an earlier failure.
func (f *Frame) Save(err error) {
	if err != nil {
		f.saved = err
	}
}

// SaveLast records the slot's current last error.
func (f *Frame) SaveLast() {
	if f.slot != nil {
		f.Save(f.slot.LastError())
	}
}

// Remembered returns the saved error, or nil.
func (f *Frame) Remembered() error {
	return f.saved
}

// Perror saves err and prints "<RFC 3339 time> [func:line] msg: err" to
// the diagnostic stream. The returned error wraps err.
func (f *Frame) Perror(err error, msg string) error {
	return f.report(err, msg, true)
}

// Perrorf is Perror with a format string.
func (f *Frame) Perrorf(err error, format string, args ...any) error {
	return f.report(err, fmt.Sprintf(format, args...), true)
}

// Reportf prints err like Perrorf but keeps the saved error. Use it for
// failures that follow the originating one, such as a release failing
// during teardown.
func (f *Frame) Reportf(err error, format string, args ...any) error {
	return f.report(err, fmt.Sprintf(format, args...), false)
}

func (f *Frame) report(err error, msg string, save bool) error {
	if save {
		f.Save(err)
	}
	e := &Error{Msg: msg, Err: err}
	// skip report and Perror/Perrorf/Reportf
	if pc, _, line, ok := runtime.Caller(2); ok {
		e.Line = line
		if fn := runtime.FuncForPC(pc); fn != nil {
			e.Func = path.Base(fn.Name())
		}
	}
	fmt.Fprintf(f.w, "%s %s\n", f.now().Format(time.RFC3339), e.Error())
	return e
}

// Return restores the saved error into the slot and returns err unchanged.
func (f *Frame) Return(err error) error {
	f.Restore()
	return err
}

// Restore writes the saved error, if any, back into the slot.
func (f *Frame) Restore() {
	if f.saved != nil && f.slot != nil {
		f.slot.SetLastError(f.saved)
	}
}

// Var is a Slot backed by a variable, for platforms without a native
// last-error facility.
type Var struct {
	err error
}

// LastError implements Slot.
func (v *Var) LastError() error { return v.err }

// SetLastError implements Slot.
func (v *Var) SetLastError(err error) { v.err = err }

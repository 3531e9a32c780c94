package errctx

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"
)

var (
	errOpen  = errors.New("open failed")
	errClose = errors.New("close failed")
)

// TestBeginNoError tests that a fresh frame holds no error and leaves the slot alone.
func TestBeginNoError(t *testing.T) {
	slot := &Var{}
	slot.SetLastError(errClose)

	f := Begin(slot)
	if f.Remembered() != nil {
		t.Errorf("Remembered() = %v, want nil", f.Remembered())
	}
	if err := f.Return(nil); err != nil {
		t.Errorf("Return(nil) = %v, want nil", err)
	}
	if slot.LastError() != errClose {
		t.Errorf("slot = %v, want %v (untouched)", slot.LastError(), errClose)
	}
}

// TestRestoreAfterClobber tests that cleanup overwriting the slot does not hide the cause.
func TestRestoreAfterClobber(t *testing.T) {
	slot := &Var{}

	failing := func() (err error) {
		f := Begin(slot, WithWriter(nil))
		defer f.Restore()

		slot.SetLastError(errOpen)
		f.SaveLast()

		defer slot.SetLastError(errClose) // cleanup touching the slot
		return errOpen
	}

	if err := failing(); !errors.Is(err, errOpen) {
		t.Fatalf("failing() = %v, want %v", err, errOpen)
	}
	if slot.LastError() != errOpen {
		t.Errorf("slot = %v, want %v", slot.LastError(), errOpen)
	}
}

// TestSaveIgnoresNil tests that a later nil save keeps the first failure.
func TestSaveIgnoresNil(t *testing.T) {
	f := Begin(nil)
	f.Save(errOpen)
	f.Save(nil)
	if f.Remembered() != errOpen {
		t.Errorf("Remembered() = %v, want %v", f.Remembered(), errOpen)
	}
	f.Save(errClose)
	if f.Remembered() != errClose {
		t.Errorf("Remembered() = %v, want %v", f.Remembered(), errClose)
	}
}

// TestNilSlot tests that Return and Restore work without a slot.
func TestNilSlot(t *testing.T) {
	f := Begin(nil)
	f.Save(errOpen)
	f.SaveLast()
	if err := f.Return(errClose); err != errClose {
		t.Errorf("Return() = %v, want %v", err, errClose)
	}
}

func reportHere(f *Frame) error {
	return f.Perror(errOpen, "CreateWindow failed")
}

// TestPerror tests the call-site tag and the saved value.
func TestPerror(t *testing.T) {
	var buf bytes.Buffer
	slot := &Var{}
	at := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	f := Begin(slot, WithWriter(&buf), WithClock(func() time.Time { return at }))

	err := reportHere(f)

	var e *Error
	if !errors.As(err, &e) {
		t.Fatalf("Perror returned %T, want *Error", err)
	}
	if !errors.Is(err, errOpen) {
		t.Errorf("errors.Is(err, errOpen) = false")
	}
	if !strings.HasSuffix(e.Func, "reportHere") {
		t.Errorf("Func = %q, want suffix reportHere", e.Func)
	}
	if e.Line == 0 {
		t.Error("Line = 0, want call-site line")
	}
	if f.Remembered() != errOpen {
		t.Errorf("Remembered() = %v, want %v", f.Remembered(), errOpen)
	}

	got := buf.String()
	if !strings.HasPrefix(got, "2026-10-19T12:00:00Z [errctx.reportHere:") ||
		!strings.HasSuffix(got, "] CreateWindow failed: open failed\n") {
		t.Errorf("diagnostic = %q", got)
	}
	if strings.Count(got, "\n") != 1 {
		t.Errorf("diagnostic has %d lines, want 1", strings.Count(got, "\n"))
	}

	f.Restore()
	if slot.LastError() != errOpen {
		t.Errorf("slot = %v, want %v", slot.LastError(), errOpen)
	}
}

// TestPerrorf tests formatted diagnostics.
func TestPerrorf(t *testing.T) {
	var buf bytes.Buffer
	f := Begin(nil, WithWriter(&buf))

	err := f.Perrorf(errClose, "destroy %s #%d", "window", 1)
	if !strings.Contains(err.Error(), "destroy window #1: close failed") {
		t.Errorf("Error() = %q", err.Error())
	}
	if !strings.Contains(buf.String(), "TestPerrorf") {
		t.Errorf("diagnostic %q does not name the caller", buf.String())
	}
}

// TestErrorWithoutCause tests formatting of an Error with no wrapped cause.
func TestErrorWithoutCause(t *testing.T) {
	e := &Error{Func: "main.main", Line: 7, Msg: "Unexpected example number."}
	if got, want := e.Error(), "[main.main:7] Unexpected example number."; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if e.Unwrap() != nil {
		t.Errorf("Unwrap() = %v, want nil", e.Unwrap())
	}
}

// TestReportfKeepsSaved tests that a follow-on failure is printed but does
// not replace the originating error.
func TestReportfKeepsSaved(t *testing.T) {
	var buf bytes.Buffer
	slot := &Var{}
	f := Begin(slot, WithWriter(&buf))

	f.Save(errOpen)
	err := f.Reportf(errClose, "destroying %s failed", "window")
	if !errors.Is(err, errClose) {
		t.Errorf("Reportf() = %v, want it to wrap %v", err, errClose)
	}
	if f.Remembered() != errOpen {
		t.Errorf("Remembered() = %v, want %v", f.Remembered(), errOpen)
	}
	if !strings.Contains(buf.String(), "TestReportfKeepsSaved") ||
		!strings.Contains(buf.String(), "destroying window failed: close failed") {
		t.Errorf("diagnostic = %q", buf.String())
	}

	f.Restore()
	if slot.LastError() != errOpen {
		t.Errorf("slot = %v, want %v", slot.LastError(), errOpen)
	}
}

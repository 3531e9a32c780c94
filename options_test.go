package gfxdemo

import (
	"bytes"
	"io"
	"os"
	"testing"
	"time"

	"golang.org/x/text/language"
)

// TestDefaultOptions tests the window and pacing used without options.
func TestDefaultOptions(t *testing.T) {
	o := defaultOptions()

	if o.width != 640 || o.height != 480 {
		t.Errorf("size = %dx%d, want 640x480", o.width, o.height)
	}
	if o.frameDelay != 10*time.Millisecond {
		t.Errorf("frameDelay = %v, want 10ms", o.frameDelay)
	}
	if o.maxFrames != 0 {
		t.Errorf("maxFrames = %d, want 0", o.maxFrames)
	}
	if o.lang != language.English {
		t.Errorf("lang = %v, want en", o.lang)
	}
	if o.output != os.Stdout || o.diagnostics != os.Stderr {
		t.Error("default streams are not stdout and stderr")
	}
}

func TestOptions(t *testing.T) {
	var out, diag bytes.Buffer

	o := defaultOptions()
	for _, opt := range []Option{
		WithTitle("demo"),
		WithSize(320, 200),
		WithFrameDelay(time.Second),
		WithMaxFrames(3),
		WithLanguage(language.Spanish),
		WithOutput(&out),
		WithDiagnostics(&diag),
	} {
		opt(&o)
	}

	if o.title != "demo" {
		t.Errorf("title = %q, want demo", o.title)
	}
	if o.width != 320 || o.height != 200 {
		t.Errorf("size = %dx%d, want 320x200", o.width, o.height)
	}
	if o.frameDelay != time.Second {
		t.Errorf("frameDelay = %v, want 1s", o.frameDelay)
	}
	if o.maxFrames != 3 {
		t.Errorf("maxFrames = %d, want 3", o.maxFrames)
	}
	if o.lang != language.Spanish {
		t.Errorf("lang = %v, want es", o.lang)
	}
	if o.output != &out || o.diagnostics != &diag {
		t.Error("streams were not replaced")
	}
}

// TestOptionsClamp tests that out-of-range values fall back to safe ones.
func TestOptionsClamp(t *testing.T) {
	o := defaultOptions()
	WithSize(0, -5)(&o)
	WithFrameDelay(-time.Second)(&o)
	WithMaxFrames(-1)(&o)
	WithOutput(nil)(&o)
	WithDiagnostics(nil)(&o)

	if o.width != DefaultWidth || o.height != DefaultHeight {
		t.Errorf("size = %dx%d, want defaults", o.width, o.height)
	}
	if o.frameDelay != 0 {
		t.Errorf("frameDelay = %v, want 0", o.frameDelay)
	}
	if o.maxFrames != 0 {
		t.Errorf("maxFrames = %d, want 0", o.maxFrames)
	}
	if o.output != io.Discard || o.diagnostics != io.Discard {
		t.Error("nil writers should discard")
	}
}

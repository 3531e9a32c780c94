package gfxdemo

import (
	"io"
	"os"
	"time"

	"golang.org/x/text/language"
)

// Window geometry and pacing used when no option overrides them.
const (
	DefaultWidth      = 640
	DefaultHeight     = 480
	DefaultTitle      = "SDL2 GFX"
	DefaultFrameDelay = 10 * time.Millisecond
)

// DefaultLanguage is the language of the description when WithLanguage is
// not given.
var DefaultLanguage = language.English

// Option configures Run.
//
// Example:
//
//	// Default: 640x480, 10ms between frames, English description on stdout
//	err := gfxdemo.Run(p, gfxdemo.ExampleCircle)
//
//	// vsync-only pacing, Spanish description
//	err := gfxdemo.Run(p, gfxdemo.ExampleCircle,
//	    gfxdemo.WithFrameDelay(0),
//	    gfxdemo.WithLanguage(language.Spanish))
type Option func(*options)

type options struct {
	title       string
	width       int
	height      int
	frameDelay  time.Duration
	maxFrames   int
	lang        language.Tag
	output      io.Writer
	diagnostics io.Writer
}

func defaultOptions() options {
	return options{
		title:       DefaultTitle,
		width:       DefaultWidth,
		height:      DefaultHeight,
		frameDelay:  DefaultFrameDelay,
		lang:        DefaultLanguage,
		output:      os.Stdout,
		diagnostics: os.Stderr,
	}
}

// WithTitle sets the window title.
func WithTitle(title string) Option {
	return func(o *options) {
		o.title = title
	}
}

// WithSize sets the window size. Non-positive values keep the default.
func WithSize(width, height int) Option {
	return func(o *options) {
		if width > 0 {
			o.width = width
		}
		if height > 0 {
			o.height = height
		}
	}
}

// WithFrameDelay sets the sleep after each presented frame.
// Zero leaves pacing to the surface's vsync.
func WithFrameDelay(d time.Duration) Option {
	return func(o *options) {
		if d < 0 {
			d = 0
		}
		o.frameDelay = d
	}
}

// WithMaxFrames stops the loop after n frames as if a quit event had
// arrived. Zero (the default) runs until quit.
func WithMaxFrames(n int) Option {
	return func(o *options) {
		if n < 0 {
			n = 0
		}
		o.maxFrames = n
	}
}

// WithLanguage sets the language of the one-time description.
func WithLanguage(tag language.Tag) Option {
	return func(o *options) {
		o.lang = tag
	}
}

// WithOutput sets the stream the description is printed to.
// A nil writer discards it.
func WithOutput(w io.Writer) Option {
	return func(o *options) {
		if w == nil {
			w = io.Discard
		}
		o.output = w
	}
}

// WithDiagnostics sets the stream errors are reported to.
// A nil writer discards them.
func WithDiagnostics(w io.Writer) Option {
	return func(o *options) {
		if w == nil {
			w = io.Discard
		}
		o.diagnostics = w
	}
}

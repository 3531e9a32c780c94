package gfxdemo

import (
	"errors"
	"fmt"

	"github.com/gogpu/gfxdemo/errctx"
)

// Run opens a window on p and draws ex every frame until a quit event
// arrives (or WithMaxFrames is reached).
//
// Initialization acquires the subsystem, the window and the surface, in
// that order. Whatever was acquired is released in reverse order, exactly
// once, on every exit path. Any failure is reported once to the
// diagnostics stream and returned; nothing is retried. A release that
// fails during teardown is reported too and joined into the result. After
// teardown the originating error is restored into p's last-error slot.
//
// Run does not validate ex up front: a selector with no drawing routine
// fails on the first frame with ErrUnknownExample, after initialization.
// Use ParseExample to reject bad input before any resource is acquired.
func Run(p Platform, ex Example, opts ...Option) (err error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	log := Logger()
	f := errctx.Begin(p, errctx.WithWriter(o.diagnostics))
	defer f.Restore()

	if err := p.Init(); err != nil {
		return f.Perror(err, "platform init failed")
	}
	defer func() {
		p.Quit()
		log.Debug("gfxdemo: subsystem released")
	}()

	win, err := p.CreateWindow(o.title, o.width, o.height)
	if err != nil {
		return f.Perror(err, "CreateWindow failed")
	}
	defer func() { err = teardown(f, err, "window", win.Destroy) }()

	surf, err := p.CreateSurface(win)
	if err != nil {
		return f.Perror(err, "CreateSurface failed")
	}
	defer func() { err = teardown(f, err, "surface", surf.Destroy) }()

	log.Info("gfxdemo: running", "example", ex, "width", o.width, "height", o.height,
		"frameDelay", o.frameDelay)

	begin := true
	frames := 0
	for quit := false; !quit; {
		if ev, ok := p.PollEvent(); ok && ev.Kind == EventQuit {
			quit = true
		}

		if err := surf.Clear(Black); err != nil {
			return f.Perror(err, "Clear failed")
		}

		if begin && ex.Valid() {
			fmt.Fprintln(o.output, ex.Describe(o.lang))
		}
		if err := ex.Draw(surf, o.width, o.height); err != nil {
			return f.Perrorf(err, "drawing example %d failed", int(ex))
		}

		if err := surf.Present(); err != nil {
			return f.Perror(err, "Present failed")
		}
		if o.frameDelay > 0 {
			p.Delay(o.frameDelay)
		}
		begin = false

		frames++
		if o.maxFrames > 0 && frames >= o.maxFrames {
			quit = true
		}
	}

	log.Debug("gfxdemo: quit", "frames", frames)
	return nil
}

// teardown releases a resource and joins a release failure into err.
// The first failure of the run stays the originating error of f.
func teardown(f *errctx.Frame, err error, name string, destroy func() error) error {
	rerr := release(name, destroy)
	if rerr == nil {
		return err
	}
	if f.Remembered() == nil {
		return errors.Join(err, f.Perrorf(rerr, "destroying %s failed", name))
	}
	return errors.Join(err, f.Reportf(rerr, "destroying %s failed", name))
}

// release destroys a resource and logs the outcome.
func release(name string, destroy func() error) error {
	if err := destroy(); err != nil {
		Logger().Warn("gfxdemo: release failed", "resource", name, "err", err)
		return err
	}
	Logger().Debug("gfxdemo: released", "resource", name)
	return nil
}

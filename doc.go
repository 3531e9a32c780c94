// Package gfxdemo draws one of seven 2D primitive examples into a window,
// once per frame, until the window is closed.
//
// # Overview
//
// An Example selects which primitive is drawn: lines, a circle outline, a
// filled circle, two translucent boxes, a rhombus, a triangle or a filled
// ellipse. Run drives the frame loop against a Platform, which owns the
// window and the presentable Surface:
//
//	ex, err := gfxdemo.ParseExample(os.Args[1])
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := gfxdemo.Run(sdl2.New(), ex); err != nil {
//	    log.Fatal(err)
//	}
//
// # Platforms
//
// Three platforms implement the Platform interface:
//   - backend/sdl2: an SDL2 window with an accelerated, vsync-paced
//     renderer; primitives come from SDL2_gfx.
//   - backend/raster: headless; primitives are rasterized by gg into an
//     in-memory image that can be written out as PNG or BMP.
//   - recording: records every call, for tracing and tests.
//
// # Frame loop
//
// Each iteration polls one pending event without blocking, clears to opaque
// black, draws the selected example, presents the frame and sleeps for the
// configured frame delay. A quit event finishes the current iteration
// before the loop exits. The surface, the window and the subsystem are
// released in that order on every exit path.
//
// # Errors
//
// Every failure is terminal. Failures are reported once through the errctx
// package, which also restores the originating error into the platform's
// last-error slot after cleanup has run.
package gfxdemo

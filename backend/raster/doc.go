// Package raster provides a headless gfxdemo.Platform that rasterizes
// primitives with gg.
//
// The "window" is a size record and the surface is a gg.Context of the
// same size. Present counts frames; the platform delivers a synthetic quit
// event after a configured number of frames or once a context is done, so
// the frame loop can run without a display.
//
// The last presented frame can be written out when the surface is
// destroyed:
//
//	p := raster.New(raster.WithFrames(1), raster.WithSnapshot("circle.png"))
//	err := gfxdemo.Run(p, gfxdemo.ExampleCircle, gfxdemo.WithFrameDelay(0))
//
// Snapshots are encoded by file extension: .png (image/png) or .bmp
// (golang.org/x/image/bmp).
//
// Build with -tags gpu and import github.com/gogpu/gg/gpu to let gg use its
// GPU accelerator; rendering falls back to the CPU when no GPU is found.
//
// Importing the package registers the platform as "raster".
package raster

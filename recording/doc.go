// Package recording provides a Platform that records every call instead
// of drawing.
//
// A recording Platform captures subsystem, window and surface lifecycle
// calls and every primitive as typed Command values. It backs the "trace"
// platform of the gfxdemo command and is the harness for testing the frame
// loop: acquire/release counts, the per-frame draw calls and the one-time
// description can all be checked without a display.
//
// # Basic Usage
//
//	p := recording.New(recording.QuitAfter(2))
//	if err := gfxdemo.Run(p, gfxdemo.ExampleTranslucentBoxes); err != nil {
//	    // ...
//	}
//	for _, cmd := range p.Commands(recording.CmdBox) {
//	    fmt.Println(cmd)
//	}
//
// # Failure Injection
//
// FailOn makes a call fail with a given error and sets the platform's
// last error, the way SDL reports failures. ReleaseError makes release
// calls overwrite the last error without failing, to check that the
// originating error survives teardown.
//
// # Registration
//
// Importing the package registers the platform as "trace":
//
//	import _ "github.com/gogpu/gfxdemo/recording"
//
//	p, err := gfxdemo.NewPlatform(recording.PlatformTrace, gfxdemo.PlatformConfig{Frames: 1, Trace: os.Stdout})
package recording

// Command gfxdemo draws one 2D primitive example per frame until the
// window is closed.
//
// Usage:
//
//	gfxdemo [flags] example-number
//
// The example number is an integer in [0, 6]:
//
//	0 lines, 1 circle, 2 filled circle, 3 translucent boxes,
//	4 rhombus, 5 triangle, 6 filled ellipse
//
// Headless runs use -backend raster (gg rasterizer, optional -snapshot) or
// -backend trace (prints every call).
//
// The SDL platform needs cgo and the SDL2 and SDL2_gfx development
// libraries. Build (or go test) with -tags nosdl to leave it out; the
// default backend is then raster, and the command and its tests run
// without a display.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"golang.org/x/text/language"

	"github.com/gogpu/gfxdemo"
	"github.com/gogpu/gfxdemo/backend/raster"
	_ "github.com/gogpu/gfxdemo/recording" // Register the "trace" platform
)

const (
	exitFailure = 1
	exitUsage   = 2
)

// defaultBackend is the -backend default. sdl.go replaces it when the SDL
// platform is built in.
var defaultBackend = raster.PlatformRaster

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	prog := filepath.Base(args[0])
	fs := flag.NewFlagSet(prog, flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		platform = fs.String("backend", defaultBackend, "platform: "+strings.Join(gfxdemo.Platforms(), ", "))
		delay    = fs.Duration("delay", gfxdemo.DefaultFrameDelay, "sleep after each frame (0: vsync only)")
		frames   = fs.Int("frames", 0, "headless platforms: quit after this many frames (0: until interrupted)")
		snapshot = fs.String("snapshot", "", "raster platform: write the last frame to this .png or .bmp file")
		lang     = fs.String("lang", "en", "description language (en, es)")
		noVSync  = fs.Bool("novsync", false, "sdl platform: present without waiting for vsync")
		verbose  = fs.Bool("v", false, "log debug output to stderr")
	)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage:\n  %s [flags] example-number\n\nExamples:\n", prog)
		for ex := gfxdemo.Example(0); ex < gfxdemo.NumExamples; ex++ {
			fmt.Fprintf(stderr, "  %d  %s\n", int(ex), ex)
		}
		fmt.Fprintln(stderr, "\nFlags:")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return exitUsage
	}

	if fs.NArg() != 1 {
		fmt.Fprintln(stderr, "Unexpected argument count.")
		fs.Usage()
		return exitUsage
	}

	ex, err := gfxdemo.ParseExample(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(stderr, "Unexpected example number. (%v)\n", err)
		return exitUsage
	}

	tag, err := language.Parse(*lang)
	if err != nil {
		fmt.Fprintf(stderr, "Unexpected language %q: %v\n", *lang, err)
		return exitUsage
	}

	if *verbose {
		gfxdemo.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	p, err := gfxdemo.NewPlatform(*platform, gfxdemo.PlatformConfig{
		Context:  ctx,
		Frames:   *frames,
		Snapshot: *snapshot,
		Trace:    stdout,
		NoVSync:  *noVSync,
	})
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}

	gfxdemo.Logger().Info("gfxdemo: starting", "platform", *platform, "example", ex)

	err = gfxdemo.Run(p, ex,
		gfxdemo.WithFrameDelay(*delay),
		gfxdemo.WithLanguage(tag),
		gfxdemo.WithOutput(stdout),
		gfxdemo.WithDiagnostics(stderr),
	)
	if err != nil {
		return exitFailure
	}
	return 0
}

package raster

import (
	"context"
	"errors"
	"fmt"
	"image"
	"time"

	"github.com/gogpu/gg"

	"github.com/gogpu/gfxdemo"
	"github.com/gogpu/gfxdemo/errctx"
)

// PlatformRaster is the registered name of the raster platform.
const PlatformRaster = "raster"

func init() {
	gfxdemo.RegisterPlatform(PlatformRaster, func(cfg gfxdemo.PlatformConfig) gfxdemo.Platform {
		opts := []Option{WithFrames(cfg.Frames), WithSnapshot(cfg.Snapshot)}
		if cfg.Context != nil {
			opts = append(opts, WithContext(cfg.Context))
		}
		return New(opts...)
	})
}

var (
	// ErrNotInitialized is returned when a window is requested before Init
	// or after Quit.
	ErrNotInitialized = errors.New("raster: platform not initialized")

	// ErrSize is returned for a non-positive window size.
	ErrSize = errors.New("raster: invalid window size")
)

// Option configures a Platform.
type Option func(*Platform)

// WithFrames delivers a quit event on the first poll after n presented
// frames. Zero means "run until the context is done", or a single frame
// when no context is set.
func WithFrames(n int) Option {
	return func(p *Platform) {
		if n < 0 {
			n = 0
		}
		p.frameLimit = n
	}
}

// WithContext delivers a quit event once ctx is done.
func WithContext(ctx context.Context) Option {
	return func(p *Platform) {
		p.ctx = ctx
	}
}

// WithSnapshot writes the last presented frame to path when the surface is
// destroyed. An empty path disables snapshots.
func WithSnapshot(path string) Option {
	return func(p *Platform) {
		p.snapshot = path
	}
}

// Platform is a headless gfxdemo.Platform backed by gg.
// It is not safe for concurrent use.
type Platform struct {
	errctx.Var

	ctx        context.Context
	frameLimit int
	snapshot   string

	initialized bool
	frames      int
	last        image.Image
	live        *surface
}

var _ gfxdemo.Platform = (*Platform)(nil)

// New creates a raster platform.
func New(opts ...Option) *Platform {
	p := &Platform{}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// fail stores err as the last error and returns it.
func (p *Platform) fail(err error) error {
	p.SetLastError(err)
	return err
}

// Init implements gfxdemo.Platform.
func (p *Platform) Init() error {
	if p.snapshot != "" {
		if _, err := EncoderFor(p.snapshot); err != nil {
			return p.fail(err)
		}
	}
	p.initialized = true
	p.frames = 0
	gfxdemo.Logger().Debug("raster: initialized", "frames", p.frameLimit, "snapshot", p.snapshot)
	return nil
}

// Quit implements gfxdemo.Platform.
func (p *Platform) Quit() {
	p.initialized = false
}

// CreateWindow implements gfxdemo.Platform. The title is ignored.
func (p *Platform) CreateWindow(_ string, width, height int) (gfxdemo.Window, error) {
	if !p.initialized {
		return nil, p.fail(ErrNotInitialized)
	}
	if width <= 0 || height <= 0 {
		return nil, p.fail(fmt.Errorf("%w: %dx%d", ErrSize, width, height))
	}
	return &window{width: width, height: height}, nil
}

// CreateSurface implements gfxdemo.Platform.
func (p *Platform) CreateSurface(w gfxdemo.Window) (gfxdemo.Surface, error) {
	win, ok := w.(*window)
	if !ok {
		return nil, p.fail(fmt.Errorf("raster: window %T not created by this platform", w))
	}
	if win.destroyed {
		return nil, p.fail(gfxdemo.ErrDestroyed)
	}
	s := &surface{p: p, dc: gg.NewContext(win.width, win.height)}
	p.live = s
	return s, nil
}

// PollEvent implements gfxdemo.Platform.
func (p *Platform) PollEvent() (gfxdemo.Event, bool) {
	if p.ctx != nil {
		if p.ctx.Err() != nil {
			return gfxdemo.Event{Kind: gfxdemo.EventQuit}, true
		}
		if p.frameLimit == 0 {
			return gfxdemo.Event{}, false
		}
	}
	if p.frames >= p.frameLimit {
		return gfxdemo.Event{Kind: gfxdemo.EventQuit}, true
	}
	return gfxdemo.Event{}, false
}

// Delay implements gfxdemo.Platform.
func (p *Platform) Delay(d time.Duration) {
	time.Sleep(d)
}

// Frames returns the number of presented frames.
func (p *Platform) Frames() int { return p.frames }

// LastFrame returns the current contents of the live surface, or the last
// presented frame once the surface has been destroyed. It returns nil if
// no surface was ever created.
func (p *Platform) LastFrame() image.Image {
	if p.live != nil {
		return p.live.dc.Image()
	}
	return p.last
}

type window struct {
	width, height int
	destroyed     bool
}

func (w *window) Destroy() error {
	if w.destroyed {
		return gfxdemo.ErrDestroyed
	}
	w.destroyed = true
	return nil
}

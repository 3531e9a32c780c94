package sdl2

import (
	"errors"
	"fmt"
	"time"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/gogpu/gfxdemo"
)

// PlatformSDL is the registered name of the SDL platform.
const PlatformSDL = "sdl"

func init() {
	gfxdemo.RegisterPlatform(PlatformSDL, func(cfg gfxdemo.PlatformConfig) gfxdemo.Platform {
		var opts []Option
		if cfg.NoVSync {
			opts = append(opts, WithoutVSync())
		}
		return New(opts...)
	})
}

// Screen position of the window's top-left corner.
const (
	WindowX = 100
	WindowY = 100
)

// Option configures a Platform.
type Option func(*Platform)

// WithoutVSync creates the renderer without SDL_RENDERER_PRESENTVSYNC.
func WithoutVSync() Option {
	return func(p *Platform) {
		p.vsync = false
	}
}

// Platform is the SDL2 implementation of gfxdemo.Platform.
type Platform struct {
	vsync bool
}

var _ gfxdemo.Platform = (*Platform)(nil)

// New creates an SDL platform. Nothing is acquired until Init.
func New(opts ...Option) *Platform {
	p := &Platform{vsync: true}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// LastError returns SDL's current error string, or nil.
func (p *Platform) LastError() error {
	return sdl.GetError()
}

// SetLastError replaces SDL's error string. A nil err clears it.
func (p *Platform) SetLastError(err error) {
	if err == nil {
		sdl.ClearError()
		return
	}
	sdl.SetError(err)
}

// Init implements gfxdemo.Platform.
func (p *Platform) Init() error {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return fmt.Errorf("SDL_Init: %w", err)
	}
	return nil
}

// Quit implements gfxdemo.Platform.
func (p *Platform) Quit() {
	sdl.Quit()
}

// CreateWindow implements gfxdemo.Platform.
func (p *Platform) CreateWindow(title string, width, height int) (gfxdemo.Window, error) {
	w, err := sdl.CreateWindow(title, WindowX, WindowY, int32(width), int32(height),
		uint32(sdl.WINDOW_OPENGL))
	if err != nil {
		return nil, fmt.Errorf("SDL_CreateWindow: %w", err)
	}
	return &window{w: w}, nil
}

// CreateSurface implements gfxdemo.Platform.
func (p *Platform) CreateSurface(w gfxdemo.Window) (gfxdemo.Surface, error) {
	win, ok := w.(*window)
	if !ok {
		return nil, fmt.Errorf("sdl2: window %T not created by this platform", w)
	}
	if win.w == nil {
		return nil, gfxdemo.ErrDestroyed
	}
	flags := uint32(sdl.RENDERER_ACCELERATED)
	if p.vsync {
		flags |= uint32(sdl.RENDERER_PRESENTVSYNC)
	}
	r, err := sdl.CreateRenderer(win.w, -1, flags)
	if err != nil {
		return nil, fmt.Errorf("SDL_CreateRenderer: %w", err)
	}
	return &surface{r: r}, nil
}

// PollEvent implements gfxdemo.Platform. A window close request and
// SDL_QUIT both map to gfxdemo.EventQuit.
func (p *Platform) PollEvent() (gfxdemo.Event, bool) {
	ev := sdl.PollEvent()
	if ev == nil {
		return gfxdemo.Event{}, false
	}
	switch e := ev.(type) {
	case *sdl.QuitEvent:
		return gfxdemo.Event{Kind: gfxdemo.EventQuit}, true
	case *sdl.WindowEvent:
		if e.Event == sdl.WINDOWEVENT_CLOSE {
			return gfxdemo.Event{Kind: gfxdemo.EventQuit}, true
		}
	}
	return gfxdemo.Event{Kind: gfxdemo.EventOther}, true
}

// Delay implements gfxdemo.Platform.
func (p *Platform) Delay(d time.Duration) {
	sdl.Delay(uint32(d / time.Millisecond))
}

type window struct {
	w *sdl.Window
}

func (w *window) Destroy() error {
	if w.w == nil {
		return gfxdemo.ErrDestroyed
	}
	err := w.w.Destroy()
	w.w = nil
	if err != nil {
		return fmt.Errorf("SDL_DestroyWindow: %w", err)
	}
	return nil
}

// errGfx reports a failed SDL2_gfx call. SDL2_gfx returns -1 without
// setting SDL's error string for most failures.
func errGfx(name string) error {
	if err := sdl.GetError(); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return errors.New(name + " failed")
}

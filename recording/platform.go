package recording

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/gogpu/gfxdemo"
	"github.com/gogpu/gfxdemo/errctx"
)

// PlatformTrace is the registered name of the recording platform.
const PlatformTrace = "trace"

func init() {
	gfxdemo.RegisterPlatform(PlatformTrace, func(cfg gfxdemo.PlatformConfig) gfxdemo.Platform {
		opts := []Option{QuitAfter(cfg.Frames), WithTrace(cfg.Trace)}
		if cfg.Context != nil {
			opts = append(opts, WithContext(cfg.Context))
			if cfg.Frames == 0 {
				opts = append(opts, NoQuit())
			}
		}
		return New(opts...)
	})
}

// Resource identifies an acquired resource.
type Resource int

const (
	Subsystem Resource = iota
	Window
	Surface
)

// String returns the resource name.
func (r Resource) String() string {
	switch r {
	case Subsystem:
		return "subsystem"
	case Window:
		return "window"
	case Surface:
		return "surface"
	default:
		return fmt.Sprintf("Resource(%d)", int(r))
	}
}

// Option configures a Platform.
type Option func(*Platform)

// QuitAfter delivers a quit event on the first poll after n frames were
// presented. QuitAfter(0) quits on the very first poll.
func QuitAfter(n int) Option {
	return func(p *Platform) {
		if n < 0 {
			n = 0
		}
		p.quitAfter = n
	}
}

// WithContext delivers a quit event once ctx is done, in addition to
// QuitAfter. Combine with NoQuit to run until ctx is done.
func WithContext(ctx context.Context) Option {
	return func(p *Platform) {
		p.ctx = ctx
	}
}

// NoQuit disables the frame-count quit; only WithContext can end the loop.
func NoQuit() Option {
	return func(p *Platform) {
		p.quitAfter = -1
	}
}

// FailOn makes calls of type t fail with err. The failure is also stored
// as the platform's last error.
func FailOn(t CommandType, err error) Option {
	return func(p *Platform) {
		p.failures[t] = err
	}
}

// ReleaseError makes every release call overwrite the last error with
// err, without failing.
func ReleaseError(err error) Option {
	return func(p *Platform) {
		p.releaseErr = err
	}
}

// WithTrace prints every recorded command to w as it happens.
func WithTrace(w io.Writer) Option {
	return func(p *Platform) {
		p.trace = w
	}
}

// Platform is a gfxdemo.Platform that records calls.
// It is not safe for concurrent use.
type Platform struct {
	errctx.Var

	commands   []Command
	frames     int
	quitAfter  int
	ctx        context.Context
	failures   map[CommandType]error
	releaseErr error
	trace      io.Writer
	acquired   [3]int
	released   [3]int
}

var _ gfxdemo.Platform = (*Platform)(nil)

// New creates a recording platform. Without options it quits on the first
// poll.
func New(opts ...Option) *Platform {
	p := &Platform{failures: make(map[CommandType]error)}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Commands returns the recorded commands, filtered to the given types
// when any are passed.
func (p *Platform) Commands(types ...CommandType) []Command {
	if len(types) == 0 {
		return append([]Command(nil), p.commands...)
	}
	var out []Command
	for _, c := range p.commands {
		for _, t := range types {
			if c.Type == t {
				out = append(out, c)
				break
			}
		}
	}
	return out
}

// DrawCommands returns the recorded drawing commands, excluding Clear.
func (p *Platform) DrawCommands() []Command {
	var out []Command
	for _, c := range p.commands {
		if c.Type.IsDraw() {
			out = append(out, c)
		}
	}
	return out
}

// Frames returns the number of presented frames.
func (p *Platform) Frames() int { return p.frames }

// Acquired returns how many times r was successfully acquired.
func (p *Platform) Acquired(r Resource) int { return p.acquired[r] }

// Released returns how many times r was released, including releases of
// an already released resource.
func (p *Platform) Released(r Resource) int { return p.released[r] }

func (p *Platform) record(c Command) error {
	c.Frame = p.frames
	if err, ok := p.failures[c.Type]; ok {
		c.Err = err
		p.SetLastError(err)
	}
	p.commands = append(p.commands, c)
	if p.trace != nil {
		fmt.Fprintln(p.trace, c)
	}
	return c.Err
}

func (p *Platform) releaseNoise() {
	if p.releaseErr != nil {
		p.SetLastError(p.releaseErr)
	}
}

// Init implements gfxdemo.Platform.
func (p *Platform) Init() error {
	if err := p.record(Command{Type: CmdInit}); err != nil {
		return err
	}
	p.acquired[Subsystem]++
	return nil
}

// Quit implements gfxdemo.Platform.
func (p *Platform) Quit() {
	_ = p.record(Command{Type: CmdQuit})
	p.released[Subsystem]++
	p.releaseNoise()
}

// CreateWindow implements gfxdemo.Platform.
func (p *Platform) CreateWindow(title string, width, height int) (gfxdemo.Window, error) {
	err := p.record(Command{Type: CmdCreateWindow, Text: title, Args: []int{width, height}})
	if err != nil {
		return nil, err
	}
	p.acquired[Window]++
	return &window{p: p}, nil
}

// CreateSurface implements gfxdemo.Platform.
func (p *Platform) CreateSurface(w gfxdemo.Window) (gfxdemo.Surface, error) {
	win, ok := w.(*window)
	if !ok || win.p != p {
		return nil, fmt.Errorf("recording: window %T not created by this platform", w)
	}
	if win.destroyed {
		return nil, gfxdemo.ErrDestroyed
	}
	if err := p.record(Command{Type: CmdCreateSurface}); err != nil {
		return nil, err
	}
	p.acquired[Surface]++
	return &surface{p: p}, nil
}

// PollEvent implements gfxdemo.Platform.
func (p *Platform) PollEvent() (gfxdemo.Event, bool) {
	quit := p.quitAfter >= 0 && p.frames >= p.quitAfter
	if p.ctx != nil && p.ctx.Err() != nil {
		quit = true
	}
	if !quit {
		_ = p.record(Command{Type: CmdPoll, Event: gfxdemo.EventOther})
		return gfxdemo.Event{}, false
	}
	_ = p.record(Command{Type: CmdPoll, Event: gfxdemo.EventQuit})
	return gfxdemo.Event{Kind: gfxdemo.EventQuit}, true
}

// Delay implements gfxdemo.Platform. It does not sleep.
func (p *Platform) Delay(d time.Duration) {
	_ = p.record(Command{Type: CmdDelay, Delay: d})
}

type window struct {
	p         *Platform
	destroyed bool
}

func (w *window) Destroy() error {
	w.p.released[Window]++
	err := w.p.record(Command{Type: CmdDestroyWindow})
	w.p.releaseNoise()
	if w.destroyed {
		return gfxdemo.ErrDestroyed
	}
	w.destroyed = true
	return err
}

type surface struct {
	p         *Platform
	destroyed bool
}

func (s *surface) draw(c Command) error {
	if s.destroyed {
		return gfxdemo.ErrDestroyed
	}
	return s.p.record(c)
}

func (s *surface) Clear(c gfxdemo.Color) error {
	return s.draw(Command{Type: CmdClear, Color: c})
}

func (s *surface) Line(x1, y1, x2, y2 int, c gfxdemo.Color) error {
	return s.draw(Command{Type: CmdLine, Args: []int{x1, y1, x2, y2}, Color: c})
}

func (s *surface) Circle(x, y, r int, c gfxdemo.Color) error {
	return s.draw(Command{Type: CmdCircle, Args: []int{x, y, r}, Color: c})
}

func (s *surface) FilledCircle(x, y, r int, c gfxdemo.Color) error {
	return s.draw(Command{Type: CmdFilledCircle, Args: []int{x, y, r}, Color: c})
}

func (s *surface) Box(x1, y1, x2, y2 int, c gfxdemo.Color) error {
	return s.draw(Command{Type: CmdBox, Args: []int{x1, y1, x2, y2}, Color: c})
}

func (s *surface) FilledPolygon(xs, ys []int, c gfxdemo.Color) error {
	if err := gfxdemo.ValidatePolygon(xs, ys); err != nil {
		return err
	}
	args := make([]int, 0, len(xs)+len(ys))
	args = append(args, xs...)
	args = append(args, ys...)
	return s.draw(Command{Type: CmdFilledPolygon, Args: args, Color: c})
}

func (s *surface) FilledEllipse(x, y, rx, ry int, c gfxdemo.Color) error {
	return s.draw(Command{Type: CmdFilledEllipse, Args: []int{x, y, rx, ry}, Color: c})
}

func (s *surface) Present() error {
	if s.destroyed {
		return gfxdemo.ErrDestroyed
	}
	err := s.p.record(Command{Type: CmdPresent})
	if err == nil {
		s.p.frames++
	}
	return err
}

func (s *surface) Destroy() error {
	s.p.released[Surface]++
	err := s.p.record(Command{Type: CmdDestroySurface})
	s.p.releaseNoise()
	if s.destroyed {
		return gfxdemo.ErrDestroyed
	}
	s.destroyed = true
	return err
}

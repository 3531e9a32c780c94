package sdl2

import (
	"fmt"

	"github.com/veandco/go-sdl2/gfx"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/gogpu/gfxdemo"
)

// surface draws with SDL2_gfx on an SDL renderer.
type surface struct {
	r *sdl.Renderer
}

func (s *surface) check() error {
	if s.r == nil {
		return gfxdemo.ErrDestroyed
	}
	return nil
}

func ok(succeeded bool, name string) error {
	if !succeeded {
		return errGfx(name)
	}
	return nil
}

func (s *surface) Clear(c gfxdemo.Color) error {
	if err := s.check(); err != nil {
		return err
	}
	if err := s.r.SetDrawColor(c.R, c.G, c.B, c.A); err != nil {
		return fmt.Errorf("SDL_SetRenderDrawColor: %w", err)
	}
	if err := s.r.Clear(); err != nil {
		return fmt.Errorf("SDL_RenderClear: %w", err)
	}
	return nil
}

func (s *surface) Line(x1, y1, x2, y2 int, c gfxdemo.Color) error {
	if err := s.check(); err != nil {
		return err
	}
	return ok(gfx.LineRGBA(s.r, int32(x1), int32(y1), int32(x2), int32(y2), c.R, c.G, c.B, c.A), "lineRGBA")
}

func (s *surface) Circle(x, y, r int, c gfxdemo.Color) error {
	if err := s.check(); err != nil {
		return err
	}
	return ok(gfx.CircleRGBA(s.r, int32(x), int32(y), int32(r), c.R, c.G, c.B, c.A), "circleRGBA")
}

func (s *surface) FilledCircle(x, y, r int, c gfxdemo.Color) error {
	if err := s.check(); err != nil {
		return err
	}
	return ok(gfx.FilledCircleRGBA(s.r, int32(x), int32(y), int32(r), c.R, c.G, c.B, c.A), "filledCircleRGBA")
}

func (s *surface) Box(x1, y1, x2, y2 int, c gfxdemo.Color) error {
	if err := s.check(); err != nil {
		return err
	}
	return ok(gfx.BoxRGBA(s.r, int32(x1), int32(y1), int32(x2), int32(y2), c.R, c.G, c.B, c.A), "boxRGBA")
}

func (s *surface) FilledPolygon(xs, ys []int, c gfxdemo.Color) error {
	if err := s.check(); err != nil {
		return err
	}
	if err := gfxdemo.ValidatePolygon(xs, ys); err != nil {
		return err
	}
	vx := make([]int16, len(xs))
	vy := make([]int16, len(ys))
	for i := range xs {
		vx[i], vy[i] = int16(xs[i]), int16(ys[i])
	}
	return ok(gfx.FilledPolygonRGBA(s.r, vx, vy, c.R, c.G, c.B, c.A), "filledPolygonRGBA")
}

func (s *surface) FilledEllipse(x, y, rx, ry int, c gfxdemo.Color) error {
	if err := s.check(); err != nil {
		return err
	}
	return ok(gfx.FilledEllipseRGBA(s.r, int32(x), int32(y), int32(rx), int32(ry), c.R, c.G, c.B, c.A), "filledEllipseRGBA")
}

func (s *surface) Present() error {
	if err := s.check(); err != nil {
		return err
	}
	s.r.Present()
	return nil
}

func (s *surface) Destroy() error {
	if err := s.check(); err != nil {
		return err
	}
	err := s.r.Destroy()
	s.r = nil
	if err != nil {
		return fmt.Errorf("SDL_DestroyRenderer: %w", err)
	}
	return nil
}

package raster

import (
	"errors"

	"github.com/gogpu/gg"

	"github.com/gogpu/gfxdemo"
)

// surface draws into a gg.Context. Coordinates are offset by half a pixel
// so one-pixel strokes land on pixel centers.
type surface struct {
	p         *Platform
	dc        *gg.Context
	destroyed bool
}

func px(v int) float64 { return float64(v) + 0.5 }

// toRGBA converts c to gg's straight-alpha float color. gg.FromColor is not
// used because color.Color values are alpha-premultiplied.
func toRGBA(c gfxdemo.Color) gg.RGBA {
	return gg.RGBA2(float64(c.R)/255, float64(c.G)/255, float64(c.B)/255, float64(c.A)/255)
}

func (s *surface) check() error {
	if s.destroyed {
		return gfxdemo.ErrDestroyed
	}
	return nil
}

func (s *surface) stroke(c gfxdemo.Color) error {
	rgba := toRGBA(c)
	s.dc.SetRGBA(rgba.R, rgba.G, rgba.B, rgba.A)
	s.dc.SetLineWidth(1)
	return s.dc.Stroke()
}

func (s *surface) fill(c gfxdemo.Color) error {
	rgba := toRGBA(c)
	s.dc.SetRGBA(rgba.R, rgba.G, rgba.B, rgba.A)
	return s.dc.Fill()
}

func (s *surface) Clear(c gfxdemo.Color) error {
	if err := s.check(); err != nil {
		return err
	}
	s.dc.ClearWithColor(toRGBA(c))
	return nil
}

func (s *surface) Line(x1, y1, x2, y2 int, c gfxdemo.Color) error {
	if err := s.check(); err != nil {
		return err
	}
	s.dc.DrawLine(px(x1), px(y1), px(x2), px(y2))
	return s.stroke(c)
}

func (s *surface) Circle(x, y, r int, c gfxdemo.Color) error {
	if err := s.check(); err != nil {
		return err
	}
	s.dc.DrawCircle(px(x), px(y), float64(r))
	return s.stroke(c)
}

func (s *surface) FilledCircle(x, y, r int, c gfxdemo.Color) error {
	if err := s.check(); err != nil {
		return err
	}
	s.dc.DrawCircle(px(x), px(y), float64(r))
	return s.fill(c)
}

func (s *surface) Box(x1, y1, x2, y2 int, c gfxdemo.Color) error {
	if err := s.check(); err != nil {
		return err
	}
	if x2 < x1 {
		x1, x2 = x2, x1
	}
	if y2 < y1 {
		y1, y2 = y2, y1
	}
	// corners are inclusive
	s.dc.DrawRectangle(float64(x1), float64(y1), float64(x2-x1+1), float64(y2-y1+1))
	return s.fill(c)
}

func (s *surface) FilledPolygon(xs, ys []int, c gfxdemo.Color) error {
	if err := s.check(); err != nil {
		return err
	}
	if err := gfxdemo.ValidatePolygon(xs, ys); err != nil {
		return err
	}
	s.dc.MoveTo(float64(xs[0]), float64(ys[0]))
	for i := 1; i < len(xs); i++ {
		s.dc.LineTo(float64(xs[i]), float64(ys[i]))
	}
	s.dc.ClosePath()
	return s.fill(c)
}

func (s *surface) FilledEllipse(x, y, rx, ry int, c gfxdemo.Color) error {
	if err := s.check(); err != nil {
		return err
	}
	s.dc.DrawEllipse(px(x), px(y), float64(rx), float64(ry))
	return s.fill(c)
}

func (s *surface) Present() error {
	if err := s.check(); err != nil {
		return err
	}
	s.p.frames++
	return nil
}

// Destroy writes the snapshot, if configured, and releases the context.
func (s *surface) Destroy() error {
	if s.destroyed {
		return gfxdemo.ErrDestroyed
	}
	s.destroyed = true

	img := s.dc.Image()
	s.p.last = img
	if s.p.live == s {
		s.p.live = nil
	}

	var err error
	if s.p.snapshot != "" {
		err = WriteSnapshot(s.p.snapshot, img)
	}
	err = errors.Join(err, s.dc.Close())
	if err != nil {
		s.p.SetLastError(err)
	}
	return err
}

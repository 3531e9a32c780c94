package gfxdemo

import (
	"time"

	"github.com/gogpu/gfxdemo/errctx"
)

// Canvas is the primitive set of the 2D drawing add-on.
//
// Coordinates are in pixels with the origin at the top-left corner.
// Colors are blended with the destination according to their alpha.
type Canvas interface {
	// Clear fills the whole surface with c.
	Clear(c Color) error

	// Line draws a one-pixel line from (x1, y1) to (x2, y2).
	Line(x1, y1, x2, y2 int, c Color) error

	// Circle draws the outline of a circle.
	Circle(x, y, r int, c Color) error

	// FilledCircle draws a filled disc.
	FilledCircle(x, y, r int, c Color) error

	// Box fills the axis-aligned rectangle with corners (x1, y1) and
	// (x2, y2), both inclusive.
	Box(x1, y1, x2, y2 int, c Color) error

	// FilledPolygon fills the polygon with vertices (xs[i], ys[i]).
	// It returns ErrPolygon unless len(xs) == len(ys) >= 3.
	FilledPolygon(xs, ys []int, c Color) error

	// FilledEllipse fills the ellipse centered at (x, y) with radii rx, ry.
	FilledEllipse(x, y, rx, ry int, c Color) error
}

// Surface is a presentable Canvas bound to a Window.
type Surface interface {
	Canvas

	// Present shows the completed frame.
	Present() error

	// Destroy releases the surface. It must be called exactly once.
	Destroy() error
}

// Window is an open window.
type Window interface {
	// Destroy closes the window. It must be called exactly once.
	Destroy() error
}

// EventKind identifies the type of an Event.
type EventKind int

const (
	// EventOther is any event the loop does not act on.
	EventOther EventKind = iota

	// EventQuit signals that the window was asked to close.
	EventQuit
)

// String returns the event kind name.
func (k EventKind) String() string {
	switch k {
	case EventQuit:
		return "quit"
	default:
		return "other"
	}
}

// Event is an input event delivered by a Platform.
type Event struct {
	Kind EventKind
}

// Platform is the windowing subsystem.
//
// The last-error slot (errctx.Slot) holds the platform's error text; Run
// restores the originating error into it after teardown.
type Platform interface {
	errctx.Slot

	// Init acquires the subsystem. Quit must be called once Init succeeds.
	Init() error

	// CreateWindow opens a window of the given size.
	CreateWindow(title string, width, height int) (Window, error)

	// CreateSurface creates an accelerated, vsync-paced surface for w.
	CreateSurface(w Window) (Surface, error)

	// PollEvent returns the next pending event without blocking.
	// ok is false when no event is pending.
	PollEvent() (ev Event, ok bool)

	// Delay sleeps for d.
	Delay(d time.Duration)

	// Quit releases the subsystem.
	Quit()
}

// ValidatePolygon checks the vertex lists passed to FilledPolygon.
func ValidatePolygon(xs, ys []int) error {
	if len(xs) != len(ys) || len(xs) < 3 {
		return ErrPolygon
	}
	return nil
}

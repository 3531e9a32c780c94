package gfxdemo

import (
	"fmt"
	"strconv"
	"strings"
)

// Example selects the primitive drawn every frame.
type Example int

// The examples, in command-line order.
const (
	ExampleLines Example = iota
	ExampleCircle
	ExampleFilledCircle
	ExampleTranslucentBoxes
	ExampleRhombus
	ExampleTriangle
	ExampleFilledEllipse

	// NumExamples is the number of valid selectors.
	NumExamples = 7
)

var exampleNames = [NumExamples]string{
	"lines",
	"circle",
	"filled-circle",
	"translucent-boxes",
	"rhombus",
	"triangle",
	"filled-ellipse",
}

// ParseExample parses a base-10 selector in [0, NumExamples).
func ParseExample(s string) (Example, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrExampleRange, s)
	}
	ex := Example(n)
	if !ex.Valid() {
		return 0, fmt.Errorf("%w: %d not in [0, %d]", ErrExampleRange, n, NumExamples-1)
	}
	return ex, nil
}

// Valid reports whether e has a drawing routine.
func (e Example) Valid() bool {
	return e >= 0 && e < NumExamples
}

// String returns the short name of the example.
func (e Example) String() string {
	if !e.Valid() {
		return "Example(" + strconv.Itoa(int(e)) + ")"
	}
	return exampleNames[e]
}

// Draw issues the drawing calls of e on c for a width×height surface.
// It returns ErrUnknownExample when e is out of range.
func (e Example) Draw(c Canvas, width, height int) error {
	short := min(width, height)

	switch e {
	case ExampleLines:
		if err := c.Line(0, 0, width, height, Red); err != nil {
			return err
		}
		if err := c.Line(width, 0, 0, height, Green); err != nil {
			return err
		}
		return c.Line(0, height/2, width, height/2, Blue)

	case ExampleCircle:
		return c.Circle(width/2, height/2, short/2, Green)

	case ExampleFilledCircle:
		return c.FilledCircle(width/2, height/2, short/2, Green)

	case ExampleTranslucentBoxes:
		if err := c.Box(0, 0, 100, 100, Green); err != nil {
			return err
		}
		return c.Box(50, 50, 150, 150, Red.WithAlpha(0x60))

	case ExampleRhombus:
		xs, ys := Rhombus(width, height)
		return c.FilledPolygon(xs, ys, Red)

	case ExampleTriangle:
		xs, ys := Triangle(width, height)
		return c.FilledPolygon(xs, ys, Red)

	case ExampleFilledEllipse:
		return c.FilledEllipse(width/2, height/2, width/2, height/4, Red)

	default:
		return fmt.Errorf("%w: %d", ErrUnknownExample, int(e))
	}
}

// Rhombus returns the midpoints of the four edges of a width×height surface.
func Rhombus(width, height int) (xs, ys []int) {
	return []int{width / 2, width, width / 2, 0},
		[]int{0, height / 2, height, height / 2}
}

// Triangle returns a triangle with its apex at top-center and its base one
// pixel above the bottom edge, so the base stays visible.
func Triangle(width, height int) (xs, ys []int) {
	return []int{width / 2, width, 0},
		[]int{0, height - 1, height - 1}
}

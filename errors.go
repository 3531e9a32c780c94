package gfxdemo

import "errors"

var (
	// ErrExampleRange is returned by ParseExample for input that is not a
	// base-10 integer in [0, NumExamples).
	ErrExampleRange = errors.New("gfxdemo: unexpected example number")

	// ErrUnknownExample is returned by Example.Draw for a selector that
	// has no drawing routine.
	ErrUnknownExample = errors.New("gfxdemo: unknown example")

	// ErrPolygon is returned by FilledPolygon for mismatched or too few
	// vertices.
	ErrPolygon = errors.New("gfxdemo: polygon needs at least 3 vertices with matching x and y")

	// ErrDestroyed is returned when a window or surface is used or
	// destroyed after Destroy.
	ErrDestroyed = errors.New("gfxdemo: resource already destroyed")
)

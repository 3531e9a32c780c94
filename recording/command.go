package recording

import (
	"fmt"
	"strings"
	"time"

	"github.com/gogpu/gfxdemo"
)

// CommandType identifies the recorded call.
type CommandType uint8

const (
	// Lifecycle commands
	CmdInit           CommandType = iota // Acquire the subsystem
	CmdCreateWindow                      // Open the window
	CmdCreateSurface                     // Create the surface
	CmdDestroySurface                    // Release the surface
	CmdDestroyWindow                     // Close the window
	CmdQuit                              // Release the subsystem

	// Frame commands
	CmdPoll    // Poll for an event
	CmdPresent // Present the frame
	CmdDelay   // Sleep between frames

	// Drawing commands
	CmdClear
	CmdLine
	CmdCircle
	CmdFilledCircle
	CmdBox
	CmdFilledPolygon
	CmdFilledEllipse
)

var commandTypeNames = [...]string{
	CmdInit:           "init",
	CmdCreateWindow:   "create-window",
	CmdCreateSurface:  "create-surface",
	CmdDestroySurface: "destroy-surface",
	CmdDestroyWindow:  "destroy-window",
	CmdQuit:           "quit",
	CmdPoll:           "poll",
	CmdPresent:        "present",
	CmdDelay:          "delay",
	CmdClear:          "clear",
	CmdLine:           "line",
	CmdCircle:         "circle",
	CmdFilledCircle:   "filled-circle",
	CmdBox:            "box",
	CmdFilledPolygon:  "filled-polygon",
	CmdFilledEllipse:  "filled-ellipse",
}

// String returns the command name.
func (t CommandType) String() string {
	if int(t) < len(commandTypeNames) {
		return commandTypeNames[t]
	}
	return fmt.Sprintf("CommandType(%d)", t)
}

// IsDraw reports whether t is a drawing command other than Clear.
func (t CommandType) IsDraw() bool {
	return t >= CmdLine && t <= CmdFilledEllipse
}

// Command is one recorded call.
type Command struct {
	Type  CommandType
	Frame int // number of frames presented before the call

	// Args holds the integer arguments in call order. For
	// CmdFilledPolygon it holds the x coordinates followed by the y
	// coordinates. For CmdCreateWindow it holds width and height.
	Args  []int
	Color gfxdemo.Color
	Text  string        // window title
	Delay time.Duration // CmdDelay only
	Event gfxdemo.EventKind
	Err   error // non-nil if the call failed
}

// String formats the command as one trace line.
func (c Command) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "frame %d: %s", c.Frame, c.Type)
	for _, a := range c.Args {
		fmt.Fprintf(&b, " %d", a)
	}
	switch {
	case c.Type == CmdClear || c.Type.IsDraw():
		fmt.Fprintf(&b, " %s", c.Color)
	case c.Type == CmdCreateWindow:
		fmt.Fprintf(&b, " %q", c.Text)
	case c.Type == CmdDelay:
		fmt.Fprintf(&b, " %s", c.Delay)
	case c.Type == CmdPoll:
		fmt.Fprintf(&b, " %s", c.Event)
	}
	if c.Err != nil {
		fmt.Fprintf(&b, " error=%q", c.Err.Error())
	}
	return b.String()
}

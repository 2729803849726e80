package recording

import "github.com/gogpu/isovt"

// CommandType identifies the type of a command.
// Each command type corresponds to one isovt.Canvas primitive.
type CommandType uint8

const (
	CmdFillRect   CommandType = iota // Fill a rectangle
	CmdDrawRect                      // Outline a rectangle
	CmdFillPath                      // Fill a path
	CmdStrokePath                    // Stroke a path
	CmdDrawLine                      // Draw a straight line
	CmdDrawArc                       // Stroke an elliptical arc
)

// commandTypeNames maps CommandType values to their string representation.
var commandTypeNames = [...]string{
	CmdFillRect:   "FillRect",
	CmdDrawRect:   "DrawRect",
	CmdFillPath:   "FillPath",
	CmdStrokePath: "StrokePath",
	CmdDrawLine:   "DrawLine",
	CmdDrawArc:    "DrawArc",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is the interface implemented by all command types.
type Command interface {
	// Type returns the CommandType for this command.
	Type() CommandType
}

// PathRef is a reference to a path in the resource pool.
// The zero value is a valid reference to the first path (if any).
type PathRef uint32

// InvalidRef is the sentinel value for an invalid reference.
const InvalidRef = ^uint32(0)

// IsValid returns true if the reference points to a valid path.
func (r PathRef) IsValid() bool {
	return uint32(r) != InvalidRef
}

// FillRectCommand fills an axis-aligned rectangle.
type FillRectCommand struct {
	Rect   isovt.Rect
	Colour isovt.RGBA
}

// Type implements Command.
func (FillRectCommand) Type() CommandType { return CmdFillRect }

// DrawRectCommand outlines a rectangle inside its bounds.
type DrawRectCommand struct {
	Rect      isovt.Rect
	Thickness float64
	Colour    isovt.RGBA
}

// Type implements Command.
func (DrawRectCommand) Type() CommandType { return CmdDrawRect }

// FillPathCommand fills a pooled path.
type FillPathCommand struct {
	// Path references the path to fill in the resource pool.
	Path   PathRef
	Colour isovt.RGBA
}

// Type implements Command.
func (FillPathCommand) Type() CommandType { return CmdFillPath }

// StrokePathCommand strokes a pooled path.
type StrokePathCommand struct {
	// Path references the path to stroke in the resource pool.
	Path   PathRef
	Stroke isovt.Stroke
	Colour isovt.RGBA
}

// Type implements Command.
func (StrokePathCommand) Type() CommandType { return CmdStrokePath }

// DrawLineCommand draws a line with butt ends.
type DrawLineCommand struct {
	From, To  isovt.Point
	Thickness float64
	Colour    isovt.RGBA
}

// Type implements Command.
func (DrawLineCommand) Type() CommandType { return CmdDrawLine }

// DrawArcCommand strokes an elliptical arc.
type DrawArcCommand struct {
	Arc    isovt.Arc
	Stroke isovt.Stroke
	Colour isovt.RGBA
}

// Type implements Command.
func (DrawArcCommand) Type() CommandType { return CmdDrawArc }

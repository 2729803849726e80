package recording

import "github.com/gogpu/isovt"

// Recorder captures canvas primitives into a list of commands.
// It implements isovt.Canvas so any renderer can draw into it.
type Recorder struct {
	width, height float64
	commands      []Command
	resources     *ResourcePool
}

var _ isovt.Canvas = (*Recorder)(nil)

// NewRecorder creates a new Recorder for a canvas of the given size.
// The size is informational; primitives outside it are recorded as-is.
func NewRecorder(width, height float64) *Recorder {
	return &Recorder{
		width:     width,
		height:    height,
		commands:  make([]Command, 0, 32),
		resources: NewResourcePool(),
	}
}

// FinishRecording returns an immutable Recording containing all recorded commands.
// After calling FinishRecording, the Recorder should not be used again.
func (r *Recorder) FinishRecording() *Recording {
	return &Recording{
		width:     r.width,
		height:    r.height,
		commands:  r.commands,
		resources: r.resources,
	}
}

// Len returns the number of commands recorded so far.
func (r *Recorder) Len() int {
	return len(r.commands)
}

// FillRect implements isovt.Canvas.
func (r *Recorder) FillRect(rect isovt.Rect, c isovt.RGBA) {
	r.commands = append(r.commands, FillRectCommand{Rect: rect, Colour: c})
}

// DrawRect implements isovt.Canvas.
func (r *Recorder) DrawRect(rect isovt.Rect, thickness float64, c isovt.RGBA) {
	r.commands = append(r.commands, DrawRectCommand{Rect: rect, Thickness: thickness, Colour: c})
}

// FillPath implements isovt.Canvas.
func (r *Recorder) FillPath(p *isovt.Path, c isovt.RGBA) {
	ref := r.resources.AddPath(p)
	r.commands = append(r.commands, FillPathCommand{Path: ref, Colour: c})
}

// StrokePath implements isovt.Canvas.
func (r *Recorder) StrokePath(p *isovt.Path, s isovt.Stroke, c isovt.RGBA) {
	ref := r.resources.AddPath(p)
	r.commands = append(r.commands, StrokePathCommand{Path: ref, Stroke: s, Colour: c})
}

// DrawLine implements isovt.Canvas.
func (r *Recorder) DrawLine(from, to isovt.Point, thickness float64, c isovt.RGBA) {
	r.commands = append(r.commands, DrawLineCommand{From: from, To: to, Thickness: thickness, Colour: c})
}

// DrawArc implements isovt.Canvas.
func (r *Recorder) DrawArc(a isovt.Arc, s isovt.Stroke, c isovt.RGBA) {
	r.commands = append(r.commands, DrawArcCommand{Arc: a, Stroke: s, Colour: c})
}

// Recording is an immutable container for recorded drawing commands.
// It can be replayed to any isovt.Canvas.
type Recording struct {
	width, height float64
	commands      []Command
	resources     *ResourcePool
}

// Width returns the width of the recording canvas.
func (r *Recording) Width() float64 {
	return r.width
}

// Height returns the height of the recording canvas.
func (r *Recording) Height() float64 {
	return r.height
}

// Commands returns the recorded commands.
func (r *Recording) Commands() []Command {
	return r.commands
}

// Resources returns the resource pool.
func (r *Recording) Resources() *ResourcePool {
	return r.resources
}

// Path returns the pooled path referenced by ref.
func (r *Recording) Path(ref PathRef) *isovt.Path {
	return r.resources.GetPath(ref)
}

// Types returns the type of every command in order.
func (r *Recording) Types() []CommandType {
	types := make([]CommandType, len(r.commands))
	for i, cmd := range r.commands {
		types[i] = cmd.Type()
	}
	return types
}

// Playback replays the recording onto c.
func (r *Recording) Playback(c isovt.Canvas) {
	for _, cmd := range r.commands {
		switch cmd := cmd.(type) {
		case FillRectCommand:
			c.FillRect(cmd.Rect, cmd.Colour)
		case DrawRectCommand:
			c.DrawRect(cmd.Rect, cmd.Thickness, cmd.Colour)
		case FillPathCommand:
			if p := r.resources.GetPath(cmd.Path); p != nil {
				c.FillPath(p, cmd.Colour)
			}
		case StrokePathCommand:
			if p := r.resources.GetPath(cmd.Path); p != nil {
				c.StrokePath(p, cmd.Stroke, cmd.Colour)
			}
		case DrawLineCommand:
			c.DrawLine(cmd.From, cmd.To, cmd.Thickness, cmd.Colour)
		case DrawArcCommand:
			c.DrawArc(cmd.Arc, cmd.Stroke, cmd.Colour)
		}
	}
}

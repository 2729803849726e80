package object

// LineSuppression is the rectangle edge suppression bitfield.
type LineSuppression uint8

// Edge bits in ISO 11783-6 order.
const (
	SuppressTop LineSuppression = 1 << iota
	SuppressRight
	SuppressBottom
	SuppressLeft
)

// Has reports whether every bit in e is set.
func (s LineSuppression) Has(e LineSuppression) bool { return s&e == e }

// Rectangle is an output rectangle.
type Rectangle struct {
	ID              ID              `yaml:"id"`
	LineAttributes  ID              `yaml:"line_attributes"`
	Width           uint16          `yaml:"width"`
	Height          uint16          `yaml:"height"`
	LineSuppression LineSuppression `yaml:"line_suppression"`
	FillAttributes  ID              `yaml:"fill_attributes"`
}

func (r Rectangle) ObjectID() ID                 { return r.ID }
func (Rectangle) Type() Type                     { return TypeRectangle }
func (r Rectangle) Size() (width, height uint16) { return r.Width, r.Height }

// EllipseType selects which part of an ellipse is drawn.
type EllipseType uint8

const (
	// EllipseClosed is a full ellipse.
	EllipseClosed EllipseType = iota
	// EllipseOpen is the arc between the start and end angles, unfilled.
	EllipseOpen
	// EllipseSegment joins the arc endpoints to the centre (pie slice).
	EllipseSegment
	// EllipseSection joins the arc endpoints with a chord.
	EllipseSection
)

// String returns the name of the ellipse type.
func (t EllipseType) String() string {
	switch t {
	case EllipseClosed:
		return "closed"
	case EllipseOpen:
		return "open"
	case EllipseSegment:
		return "segment"
	case EllipseSection:
		return "section"
	}
	return "unknown"
}

// Ellipse is an output ellipse. StartAngle and EndAngle are in VT units
// of two degrees, counter-clockwise from the positive X axis.
type Ellipse struct {
	ID             ID          `yaml:"id"`
	LineAttributes ID          `yaml:"line_attributes"`
	Width          uint16      `yaml:"width"`
	Height         uint16      `yaml:"height"`
	EllipseType    EllipseType `yaml:"ellipse_type"`
	StartAngle     uint8       `yaml:"start_angle"`
	EndAngle       uint8       `yaml:"end_angle"`
	FillAttributes ID          `yaml:"fill_attributes"`
}

func (e Ellipse) ObjectID() ID                 { return e.ID }
func (Ellipse) Type() Type                     { return TypeEllipse }
func (e Ellipse) Size() (width, height uint16) { return e.Width, e.Height }

// PolygonType describes how a polygon's outline is interpreted.
type PolygonType uint8

const (
	PolygonConvex PolygonType = iota
	PolygonNonConvex
	PolygonComplex
	// PolygonOpen is an unclosed polyline and is never filled.
	PolygonOpen
)

// Point is a polygon vertex relative to the polygon's top-left corner.
type Point struct {
	X uint16 `yaml:"x"`
	Y uint16 `yaml:"y"`
}

// Polygon is an output polygon.
type Polygon struct {
	ID             ID          `yaml:"id"`
	Width          uint16      `yaml:"width"`
	Height         uint16      `yaml:"height"`
	LineAttributes ID          `yaml:"line_attributes"`
	FillAttributes ID          `yaml:"fill_attributes"`
	PolygonType    PolygonType `yaml:"polygon_type"`
	Points         []Point     `yaml:"points"`
}

func (p Polygon) ObjectID() ID                 { return p.ID }
func (Polygon) Type() Type                     { return TypePolygon }
func (p Polygon) Size() (width, height uint16) { return p.Width, p.Height }

// MeterOptions is the meter option bitfield.
type MeterOptions uint8

const (
	MeterDrawArc MeterOptions = 1 << iota
	MeterDrawBorder
	MeterDrawTicks
	// MeterClockwise sets the needle deflection direction; clear means
	// counter-clockwise.
	MeterClockwise
)

// Has reports whether every bit in o is set.
func (m MeterOptions) Has(o MeterOptions) bool { return m&o == o }

// Meter is an output meter. Meters are square; Width is also the height.
type Meter struct {
	ID                ID           `yaml:"id"`
	Width             uint16       `yaml:"width"`
	NeedleColour      uint8        `yaml:"needle_colour"`
	BorderColour      uint8        `yaml:"border_colour"`
	ArcAndTickColour  uint8        `yaml:"arc_and_tick_colour"`
	Options           MeterOptions `yaml:"options"`
	NumberOfTicks     uint8        `yaml:"number_of_ticks"`
	StartAngle        uint8        `yaml:"start_angle"`
	EndAngle          uint8        `yaml:"end_angle"`
	MinValue          uint16       `yaml:"min_value"`
	MaxValue          uint16       `yaml:"max_value"`
	VariableReference ID           `yaml:"variable_reference"`
	Value             uint16       `yaml:"value"`
}

func (m Meter) ObjectID() ID                 { return m.ID }
func (Meter) Type() Type                     { return TypeMeter }
func (m Meter) Size() (width, height uint16) { return m.Width, m.Width }

// BarGraphOptions is the linear bar graph option bitfield.
type BarGraphOptions uint8

const (
	BarDrawBorder BarGraphOptions = 1 << iota
	BarDrawTargetLine
	BarDrawTicks
	// BarLineStyle draws a single value line instead of a filled bar.
	BarLineStyle
	// BarHorizontal puts the value axis along X; clear means Y.
	BarHorizontal
	// BarGrowsPositive grows the bar left-to-right or bottom-to-top;
	// clear means right-to-left or top-to-bottom.
	BarGrowsPositive
)

// Has reports whether every bit in o is set.
func (b BarGraphOptions) Has(o BarGraphOptions) bool { return b&o == o }

// LinearBarGraph is an output linear bar graph.
type LinearBarGraph struct {
	ID                           ID              `yaml:"id"`
	Width                        uint16          `yaml:"width"`
	Height                       uint16          `yaml:"height"`
	Colour                       uint8           `yaml:"colour"`
	TargetLineColour             uint8           `yaml:"target_line_colour"`
	Options                      BarGraphOptions `yaml:"options"`
	NumberOfTicks                uint8           `yaml:"number_of_ticks"`
	MinValue                     uint16          `yaml:"min_value"`
	MaxValue                     uint16          `yaml:"max_value"`
	VariableReference            ID              `yaml:"variable_reference"`
	Value                        uint16          `yaml:"value"`
	TargetValueVariableReference ID              `yaml:"target_value_variable_reference"`
	TargetValue                  uint16          `yaml:"target_value"`
}

func (b LinearBarGraph) ObjectID() ID                 { return b.ID }
func (LinearBarGraph) Type() Type                     { return TypeLinearBarGraph }
func (b LinearBarGraph) Size() (width, height uint16) { return b.Width, b.Height }

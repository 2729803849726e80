package object

// FillType selects how a closed shape is filled.
type FillType uint8

const (
	// NoFill leaves the interior untouched.
	NoFill FillType = iota
	// FillLineColour fills with the colour of the line attributes.
	FillLineColour
	// FillColour fills with the fill attributes' own colour.
	FillColour
	// FillPattern fills with the picture referenced by Pattern.
	FillPattern
)

// String returns the name of the fill type.
func (f FillType) String() string {
	switch f {
	case NoFill:
		return "none"
	case FillLineColour:
		return "line-colour"
	case FillColour:
		return "fill-colour"
	case FillPattern:
		return "pattern"
	}
	return "unknown"
}

// LineAttributes describes outline colour and thickness.
type LineAttributes struct {
	ID      ID     `yaml:"id"`
	Colour  uint8  `yaml:"colour"`
	Width   uint8  `yaml:"width"`
	LineArt uint16 `yaml:"line_art"`
}

func (a LineAttributes) ObjectID() ID { return a.ID }
func (LineAttributes) Type() Type     { return TypeLineAttributes }

// FillAttributes describes how closed shapes are filled.
type FillAttributes struct {
	ID       ID       `yaml:"id"`
	FillType FillType `yaml:"fill_type"`
	Colour   uint8    `yaml:"colour"`
	Pattern  ID       `yaml:"pattern"`
}

func (a FillAttributes) ObjectID() ID { return a.ID }
func (FillAttributes) Type() Type     { return TypeFillAttributes }

// NumberVariable holds a value other objects display through their
// variable reference.
type NumberVariable struct {
	ID    ID     `yaml:"id"`
	Value uint32 `yaml:"value"`
}

func (v NumberVariable) ObjectID() ID { return v.ID }
func (NumberVariable) Type() Type     { return TypeNumberVariable }

// ObjectPointer is an indirection to another object. A Value of NullID
// points at nothing.
type ObjectPointer struct {
	ID    ID `yaml:"id"`
	Value ID `yaml:"value"`
}

func (p ObjectPointer) ObjectID() ID { return p.ID }
func (ObjectPointer) Type() Type     { return TypeObjectPointer }

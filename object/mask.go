package object

// Child is a reference to an object placed at an offset inside its parent.
type Child struct {
	ID ID    `yaml:"id"`
	X  int16 `yaml:"x"`
	Y  int16 `yaml:"y"`
}

// SoftKeyMask lists the keys shown beside a data mask.
type SoftKeyMask struct {
	ID               ID    `yaml:"id"`
	BackgroundColour uint8 `yaml:"background_colour"`
	Objects          []ID  `yaml:"objects"`
}

func (m SoftKeyMask) ObjectID() ID { return m.ID }
func (SoftKeyMask) Type() Type     { return TypeSoftKeyMask }

// Key is a single soft key. Its size is fixed by the terminal, not the
// object.
type Key struct {
	ID               ID      `yaml:"id"`
	BackgroundColour uint8   `yaml:"background_colour"`
	KeyCode          uint8   `yaml:"key_code"`
	Objects          []Child `yaml:"objects"`
}

func (k Key) ObjectID() ID { return k.ID }
func (Key) Type() Type     { return TypeKey }

package recording

import (
	"fmt"
	"io"

	"github.com/davecgh/go-spew/spew"
)

var dumpConfig = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	DisableMethods:          true,
}

// Dump writes a readable listing of every command to w. Path commands
// are followed by the elements of the path they reference.
func (r *Recording) Dump(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "recording %gx%g, %d commands\n", r.width, r.height, len(r.commands)); err != nil {
		return err
	}
	for i, cmd := range r.commands {
		if _, err := fmt.Fprintf(w, "#%d %s ", i, cmd.Type()); err != nil {
			return err
		}
		dumpConfig.Fdump(w, cmd)
		var ref PathRef
		switch cmd := cmd.(type) {
		case FillPathCommand:
			ref = cmd.Path
		case StrokePathCommand:
			ref = cmd.Path
		default:
			continue
		}
		if p := r.resources.GetPath(ref); p != nil {
			dumpConfig.Fdump(w, p.Elements())
		}
	}
	return nil
}

// String returns a compact rendering of the command list.
func (r *Recording) String() string {
	return dumpConfig.Sprint(r.commands)
}

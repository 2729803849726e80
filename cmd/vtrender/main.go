// Command vtrender draws objects of a VT working set.
//
// Usage:
//
//	vtrender render -ws pool.yaml -id 1000 -o key.png
//	vtrender export -ws pool.yaml -dir out
//	vtrender dump   -ws pool.yaml -id 1000
//	vtrender serve  -ws pool.yaml -addr :8080
//
// The working set is a YAML file in the format read by workingset.Load.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"time"

	"github.com/gorilla/handlers"
	"github.com/pkg/errors"

	"github.com/gogpu/isovt"
	"github.com/gogpu/isovt/internal/preview"
	"github.com/gogpu/isovt/object"
	"github.com/gogpu/isovt/raster"
	"github.com/gogpu/isovt/render"
	"github.com/gogpu/isovt/workingset"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error
	switch cmd, args := os.Args[1], os.Args[2:]; cmd {
	case "render":
		err = runRender(args)
	case "export":
		err = runExport(args)
	case "dump":
		err = runDump(args)
	case "serve":
		err = runServe(args)
	case "-h", "-help", "help":
		usage()
		return
	default:
		fmt.Fprintf(os.Stderr, "vtrender: unknown command %q\n", cmd)
		usage()
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "vtrender: %v\n", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: vtrender render|export|dump|serve [flags]")
	fmt.Fprintln(os.Stderr, "run 'vtrender <command> -h' for the flags of a command")
}

// common holds the flags shared by every command.
type common struct {
	ws         string
	verbose    bool
	scale      float64
	background string
	keys       keyFlags
}

func (c *common) register(fs *flag.FlagSet) {
	fs.StringVar(&c.ws, "ws", "", "working set YAML file (required)")
	fs.BoolVar(&c.verbose, "v", false, "log debug output to stderr")
	fs.Float64Var(&c.scale, "scale", 1, "pixels per VT pixel")
	fs.StringVar(&c.background, "bg", "", "background colour as #rrggbb (default transparent)")
	c.keys.register(fs)
}

// open installs the logger and builds a preview for the working set.
func (c *common) open(extra ...preview.Option) (*preview.Preview, error) {
	if c.verbose {
		isovt.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}
	if c.ws == "" {
		return nil, errors.New("-ws is required")
	}
	ws, err := workingset.LoadFile(c.ws)
	if err != nil {
		return nil, err
	}

	rasterOpts := []raster.Option{raster.WithScale(c.scale)}
	if c.background != "" {
		bg, err := parseHex(c.background)
		if err != nil {
			return nil, err
		}
		rasterOpts = append(rasterOpts, raster.WithBackground(bg))
	}
	opts := append([]preview.Option{
		preview.WithRenderOptions(render.WithDimensions(c.keys.dimensions())),
		preview.WithRasterOptions(rasterOpts...),
	}, extra...)
	return preview.New(ws, opts...), nil
}

// keyFlags describes the terminal's soft-key area.
type keyFlags struct {
	height, keyWidth, keyHeight int
	columns, rows, padding      int
	orientation, order          uint
}

func (k *keyFlags) register(fs *flag.FlagSet) {
	d := render.DefaultDimensions()
	fs.IntVar(&k.height, "mask-height", d.Height, "soft key mask height")
	fs.IntVar(&k.keyWidth, "key-width", d.KeyWidth, "soft key width")
	fs.IntVar(&k.keyHeight, "key-height", d.KeyHeight, "soft key height")
	fs.IntVar(&k.columns, "key-columns", d.KeyColumnCount, "soft key columns")
	fs.IntVar(&k.rows, "key-rows", d.KeyRowCount, "soft key rows")
	fs.IntVar(&k.padding, "key-padding", d.KeyPadding, "padding around soft keys")
	fs.UintVar(&k.orientation, "key-orientation", uint(d.KeyOrientation), "soft key area orientation (0-9)")
	fs.UintVar(&k.order, "key-order", uint(d.KeyOrder), "corner of the first soft key (0-3)")
}

func (k *keyFlags) dimensions() render.Dimensions {
	return render.Dimensions{
		Height:         k.height,
		KeyHeight:      k.keyHeight,
		KeyWidth:       k.keyWidth,
		KeyColumnCount: k.columns,
		KeyRowCount:    k.rows,
		KeyOrientation: render.KeyOrientation(k.orientation), // #nosec G115 -- flag value, range checked by the renderer
		KeyOrder:       render.KeyOrder(k.order),             // #nosec G115
		KeyPadding:     k.padding,
	}
}

func runRender(args []string) error {
	fs := flag.NewFlagSet("render", flag.ExitOnError)
	var c common
	c.register(fs)
	id := fs.Uint("id", 0, "object ID to draw")
	out := fs.String("o", "", "output PNG file (default <id>.png)")
	fs.Parse(args)

	p, err := c.open()
	if err != nil {
		return err
	}
	oid, err := objectID(*id)
	if err != nil {
		return err
	}
	name := *out
	if name == "" {
		name = strconv.FormatUint(uint64(oid), 10) + ".png"
	}

	f, err := os.Create(name)
	if err != nil {
		return errors.Wrap(err, "create output")
	}
	if err := p.WritePNG(f, oid); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return errors.Wrap(err, "close output")
	}
	isovt.Logger().Info("vtrender: wrote image", "id", oid, "file", name)
	return nil
}

func runExport(args []string) error {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	var c common
	c.register(fs)
	dir := fs.String("dir", ".", "output directory")
	workers := fs.Int("j", 0, "parallel renders (default GOMAXPROCS)")
	fs.Parse(args)

	p, err := c.open()
	if err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	files, err := p.Export(ctx, *dir, *workers)
	if err != nil {
		return err
	}
	for _, f := range files {
		fmt.Println(f)
	}
	return nil
}

func runDump(args []string) error {
	fs := flag.NewFlagSet("dump", flag.ExitOnError)
	var c common
	c.register(fs)
	id := fs.Uint("id", 0, "object ID to record")
	fs.Parse(args)

	p, err := c.open()
	if err != nil {
		return err
	}
	oid, err := objectID(*id)
	if err != nil {
		return err
	}
	return p.WriteDump(os.Stdout, oid)
}

func runServe(args []string) error {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	var c common
	c.register(fs)
	addr := fs.String("addr", "localhost:8080", "listen address")
	images := fs.Int("cache", 64, "number of encoded images to keep (0 disables)")
	fs.Parse(args)

	p, err := c.open(preview.WithImageCache(*images))
	if err != nil {
		return err
	}
	h := handlers.LoggingHandler(os.Stderr, p.Handler())
	isovt.Logger().Info("vtrender: serving", "addr", *addr, "objects", p.WorkingSet().Len())
	fmt.Fprintf(os.Stderr, "serving %s on http://%s/objects\n", c.ws, *addr)
	srv := &http.Server{
		Addr:              *addr,
		Handler:           h,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return errors.Wrap(srv.ListenAndServe(), "serve")
}

func objectID(v uint) (object.ID, error) {
	if v >= uint(object.NullID) {
		return 0, errors.Errorf("object ID %d out of range", v)
	}
	return object.ID(v), nil
}

func parseHex(s string) (isovt.RGBA, error) {
	if len(s) > 0 && s[0] == '#' {
		s = s[1:]
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil || len(s) != 6 {
		return isovt.RGBA{}, errors.Errorf("colour %q: want #rrggbb", s)
	}
	return isovt.RGB8(uint8(v>>16), uint8(v>>8), uint8(v)), nil
}

// Copyright (c) 2026, The Vecmark Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"compress/gzip"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/aymerick/douceur/css"

	"github.com/vecmark/vecmark/base/xmlx"
	"github.com/vecmark/vecmark/units"
)

// Versions is the SVG specification version written on the root.
type Versions int32

const (
	// SVG10 is SVG 1.0.
	SVG10 Versions = iota

	// SVG11 is SVG 1.1, the default.
	SVG11

	// SVG20 is SVG 2.0.
	SVG20
)

var versionNames = [...]string{
	SVG10: "1.0",
	SVG11: "1.1",
	SVG20: "2.0",
}

func (v Versions) String() string {
	if int(v) < len(versionNames) {
		return versionNames[v]
	}
	return ""
}

// Drawing is the document root: an ordered container of parts plus
// the definitions set, attached stylesheet rules, page dimensions and
// the device-scale configuration used at serialization.
type Drawing struct {
	NodeBase
	Container

	// Width, Height are the page dimensions.
	Width, Height units.Value

	// Defs holds the reusable definitions referenced by id.
	Defs *Defs

	// Version is the SVG version written on the root.
	Version Versions

	viewBox    [4]float32
	hasViewBox bool
	rules      []*css.Rule
	ctx        *units.Context
}

// NewDrawing returns an empty drawing with the default device scales
// (72 device units per inch, 1 per pixel).
func NewDrawing() *Drawing {
	ctx := &units.Context{}
	ctx.Defaults()
	return &Drawing{
		NodeBase: newBase(),
		Defs:     NewDefs(),
		Version:  SVG11,
		ctx:      ctx,
	}
}

// SetContext overrides the device-scale configuration.
func (d *Drawing) SetContext(ctx *units.Context) *Drawing {
	d.ctx = ctx
	return d
}

// Context returns the drawing's device-scale configuration.
func (d *Drawing) Context() *units.Context {
	return d.ctx
}

// SetSize sets the page dimensions.
func (d *Drawing) SetSize(w, h units.Value) error {
	if err := checkSize("width", w); err != nil {
		return err
	}
	if err := checkSize("height", h); err != nil {
		return err
	}
	d.Width = w
	d.Height = h
	return nil
}

// SetPaperSize sets the page dimensions to an ISO 216 paper size in
// portrait orientation.
func (d *Drawing) SetPaperSize(ps PaperSizes) *Drawing {
	d.Width, d.Height = ps.Dimensions()
	return d
}

// SetViewBox sets the root viewBox in user coordinates.
func (d *Drawing) SetViewBox(minX, minY, w, h float32) *Drawing {
	d.viewBox = [4]float32{minX, minY, w, h}
	d.hasViewBox = true
	return d
}

// SetVersion sets the SVG version written on the root.
func (d *Drawing) SetVersion(v Versions) *Drawing {
	d.Version = v
	return d
}

// AddDef adds a node to the definitions set.
func (d *Drawing) AddDef(n Node) {
	d.Defs.Add(n)
}

// AddStylesheet attaches every rule of a pre-parsed stylesheet.
// Parsing CSS text is the caller's job, e.g. with douceur/parser.
func (d *Drawing) AddStylesheet(sheet *css.Stylesheet) {
	d.rules = append(d.rules, sheet.Rules...)
}

// AddStyleRules attaches pre-parsed stylesheet rules.
func (d *Drawing) AddStyleRules(rules ...*css.Rule) {
	d.rules = append(d.rules, rules...)
}

// Emit builds the svg root element with the given device scales.
func (d *Drawing) Emit(ctx *units.Context) (*xmlx.Element, error) {
	e := xmlx.New("svg")
	e.SetAttr("xmlns", "http://www.w3.org/2000/svg")
	e.SetAttr("xmlns:xlink", "http://www.w3.org/1999/xlink")
	e.SetAttr("version", d.Version.String())
	if err := setQuantity(e, "width", d.Width); err != nil {
		return nil, err
	}
	if err := setQuantity(e, "height", d.Height); err != nil {
		return nil, err
	}
	if d.hasViewBox {
		vb := d.viewBox
		e.SetAttr("viewBox", fmt.Sprintf("%s %s %s %s",
			fnum(vb[0]), fnum(vb[1]), fnum(vb[2]), fnum(vb[3])))
	}

	if d.Defs.Len() > 0 {
		de, err := d.Defs.Emit(ctx)
		if err != nil {
			return nil, err
		}
		e.AddChild(de)
	}

	if len(d.rules) > 0 {
		style := xmlx.New("style")
		toks := make([]string, len(d.rules))
		for i, r := range d.rules {
			toks[i] = r.String()
		}
		style.Text = strings.Join(toks, "\n")
		e.AddChild(style)
	}

	if err := d.emitChildren(e, ctx); err != nil {
		return nil, err
	}
	return e, nil
}

// Root builds the svg root element with the drawing's own device
// scales.
func (d *Drawing) Root() (*xmlx.Element, error) {
	return d.Emit(d.ctx)
}

// WriteXML serializes the drawing as indented markup.
func (d *Drawing) WriteXML(w io.Writer) error {
	root, err := d.Root()
	if err != nil {
		return err
	}
	return root.WriteXML(w, true)
}

// Save writes the drawing to path + ".svg".
func (d *Drawing) Save(path string) error {
	fname := path + ".svg"
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := d.WriteXML(f); err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	slog.Debug("saved drawing", "path", fname, "parts", d.Len())
	return nil
}

// SaveCompressed writes the drawing gzip-compressed to path +
// ".svgz".
func (d *Drawing) SaveCompressed(path string) error {
	fname := path + ".svgz"
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer f.Close()
	zw := gzip.NewWriter(f)
	if err := d.WriteXML(zw); err != nil {
		return err
	}
	if err := zw.Close(); err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	slog.Debug("saved drawing", "path", fname, "parts", d.Len())
	return nil
}

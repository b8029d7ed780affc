// Copyright (c) 2026, The Vecmark Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"strings"

	"github.com/vecmark/vecmark/base/xmlx"
	"github.com/vecmark/vecmark/styles"
	"github.com/vecmark/vecmark/units"
)

// Text is a run of text anchored on its baseline start point.
type Text struct {
	NodeBase
	styles.Styling
	styles.Stroke
	styles.Fill
	styles.Font
	styles.TextLayout
	styles.Clip
	styles.Transform

	// Text is the rendered string.
	Text string

	// X, Y anchor the start of the baseline.
	X, Y units.Value

	// DX, DY shift the baseline start from the previous text element.
	DX, DY units.Value

	// Rotate gives a rotation angle in degrees per glyph.
	Rotate []float32
}

// NewText returns a text run anchored at (x, y).
func NewText(text string, x, y units.Value) (*Text, error) {
	if err := checkCoord("x", x); err != nil {
		return nil, err
	}
	if err := checkCoord("y", y); err != nil {
		return nil, err
	}
	return &Text{NodeBase: newBase(), Text: text, X: x, Y: y}, nil
}

// SetShift sets the baseline shift from the previous text element.
func (n *Text) SetShift(dx, dy units.Value) error {
	if err := checkCoord("dx", dx); err != nil {
		return err
	}
	if err := checkCoord("dy", dy); err != nil {
		return err
	}
	n.DX = dx
	n.DY = dy
	return nil
}

// SetRotate sets the per-glyph rotation angles in degrees.
func (n *Text) SetRotate(degs []float32) *Text {
	n.Rotate = degs
	return n
}

// Emit builds the text element.
func (n *Text) Emit(ctx *units.Context) (*xmlx.Element, error) {
	e := xmlx.New("text")
	e.SetAttr("id", n.Id)
	e.Text = n.Text
	for _, q := range []struct {
		name string
		v    units.Value
	}{{"x", n.X}, {"y", n.Y}, {"dx", n.DX}, {"dy", n.DY}} {
		if err := setQuantity(e, q.name, q.v); err != nil {
			return nil, err
		}
	}
	if len(n.Rotate) > 0 {
		toks := make([]string, len(n.Rotate))
		for i, r := range n.Rotate {
			toks[i] = fnum(r)
		}
		e.SetAttr("rotate", strings.Join(toks, " "))
	}
	if err := contribute(e, ctx,
		&n.Styling, &n.Stroke, &n.Fill, &n.Font, &n.TextLayout, &n.Clip, &n.Transform); err != nil {
		return nil, err
	}
	return e, nil
}

// TextPathSides is which side of the path text is rendered on.
type TextPathSides int32

const (
	// TextPathSideNone leaves the attribute unset.
	TextPathSideNone TextPathSides = iota

	// TextPathSideLeft renders on the left of the path direction.
	TextPathSideLeft

	// TextPathSideRight renders on the right of the path direction.
	TextPathSideRight
)

var textPathSideNames = [...]string{
	TextPathSideNone:  "",
	TextPathSideLeft:  "left",
	TextPathSideRight: "right",
}

func (ts TextPathSides) String() string {
	if int(ts) < len(textPathSideNames) {
		return textPathSideNames[ts]
	}
	return ""
}

// TextPath is text rendered along a referenced or inline path.
type TextPath struct {
	NodeBase
	styles.Styling
	styles.Stroke
	styles.Fill
	styles.Font
	styles.TextLayout
	styles.Clip
	styles.Transform

	// Text is the rendered string.
	Text string

	// HRef references the path entity to follow, by id.
	HRef string

	// Side is which side of the path the text sits on.
	Side TextPathSides

	// StartOffset displaces the text start along the path.
	StartOffset units.Value

	// Path is an inline path to follow, instead of a reference.
	Path *RawPath
}

// NewTextPath returns text following the path entity with the given
// id.
func NewTextPath(text, href string) *TextPath {
	return &TextPath{NodeBase: newBase(), Text: text, HRef: href}
}

// SetSide sets which side of the path the text renders on.
func (n *TextPath) SetSide(s TextPathSides) *TextPath {
	n.Side = s
	return n
}

// SetStartOffset displaces the text start along the path.
func (n *TextPath) SetStartOffset(v units.Value) error {
	if err := checkCoord("startOffset", v); err != nil {
		return err
	}
	n.StartOffset = v
	return nil
}

// SetPath attaches an inline path to follow.
func (n *TextPath) SetPath(rp *RawPath) *TextPath {
	n.Path = rp
	return n
}

// Emit builds a text element wrapping the textPath element.
func (n *TextPath) Emit(ctx *units.Context) (*xmlx.Element, error) {
	outer := xmlx.New("text")
	outer.SetAttr("id", n.Id)

	e := xmlx.New("textPath")
	e.Text = n.Text
	if n.HRef != "" {
		e.SetAttr("href", "#"+n.HRef)
	}
	if n.Side != TextPathSideNone {
		e.SetAttr("side", n.Side.String())
	}
	if err := setQuantity(e, "startOffset", n.StartOffset); err != nil {
		return nil, err
	}
	if n.Path != nil {
		d, err := n.Path.Data(ctx)
		if err != nil {
			return nil, err
		}
		e.SetAttr("path", d)
	}
	if err := contribute(e, ctx,
		&n.Styling, &n.Stroke, &n.Fill, &n.Font, &n.TextLayout, &n.Clip, &n.Transform); err != nil {
		return nil, err
	}
	outer.AddChild(e)
	return outer, nil
}

// Copyright (c) 2026, The Vecmark Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"fmt"
	"strings"

	"github.com/vecmark/vecmark/base/xmlx"
	"github.com/vecmark/vecmark/styles"
	"github.com/vecmark/vecmark/units"
)

// Command is one path-data segment, formattable to its mini-language
// token with coordinates scaled to device units.
type Command interface {
	Token(ctx *units.Context) (string, error)
}

// tokenize renders a command name followed by scaled coordinates.
func tokenize(ctx *units.Context, name string, coords ...units.Value) (string, error) {
	var sb strings.Builder
	sb.WriteString(name)
	for _, c := range coords {
		d, err := deviceNum(c, ctx)
		if err != nil {
			return "", fmt.Errorf("svg: path %s: %w", name, err)
		}
		sb.WriteByte(' ')
		sb.WriteString(fnum(d))
	}
	return sb.String(), nil
}

// MoveTo lifts the pen to the absolute point (X, Y).
type MoveTo struct {
	X, Y units.Value
}

func (c MoveTo) Token(ctx *units.Context) (string, error) {
	return tokenize(ctx, "M", c.X, c.Y)
}

// MoveToDelta lifts the pen by the offset (DX, DY).
type MoveToDelta struct {
	DX, DY units.Value
}

func (c MoveToDelta) Token(ctx *units.Context) (string, error) {
	return tokenize(ctx, "m", c.DX, c.DY)
}

// LineTo draws to the absolute point (X, Y).
type LineTo struct {
	X, Y units.Value
}

func (c LineTo) Token(ctx *units.Context) (string, error) {
	return tokenize(ctx, "L", c.X, c.Y)
}

// LineToDelta draws by the offset (DX, DY).
type LineToDelta struct {
	DX, DY units.Value
}

func (c LineToDelta) Token(ctx *units.Context) (string, error) {
	return tokenize(ctx, "l", c.DX, c.DY)
}

// PathLine is a detached segment from (X1, Y1) to (X2, Y2): a move
// followed by a line.
type PathLine struct {
	X1, Y1, X2, Y2 units.Value
}

func (c PathLine) Token(ctx *units.Context) (string, error) {
	m, err := tokenize(ctx, "M", c.X1, c.Y1)
	if err != nil {
		return "", err
	}
	l, err := tokenize(ctx, "L", c.X2, c.Y2)
	if err != nil {
		return "", err
	}
	return m + " " + l, nil
}

// HLineTo draws horizontally to the absolute x coordinate.
type HLineTo struct {
	X units.Value
}

func (c HLineTo) Token(ctx *units.Context) (string, error) {
	return tokenize(ctx, "H", c.X)
}

// HLineToDelta draws horizontally by the offset DX.
type HLineToDelta struct {
	DX units.Value
}

func (c HLineToDelta) Token(ctx *units.Context) (string, error) {
	return tokenize(ctx, "h", c.DX)
}

// HLine is a detached horizontal segment from X1 to X2 at height Y.
type HLine struct {
	X1, X2, Y units.Value
}

func (c HLine) Token(ctx *units.Context) (string, error) {
	m, err := tokenize(ctx, "M", c.X1, c.Y)
	if err != nil {
		return "", err
	}
	h, err := tokenize(ctx, "H", c.X2)
	if err != nil {
		return "", err
	}
	return m + " " + h, nil
}

// VLineTo draws vertically to the absolute y coordinate.
type VLineTo struct {
	Y units.Value
}

func (c VLineTo) Token(ctx *units.Context) (string, error) {
	return tokenize(ctx, "V", c.Y)
}

// VLineToDelta draws vertically by the offset DY.
type VLineToDelta struct {
	DY units.Value
}

func (c VLineToDelta) Token(ctx *units.Context) (string, error) {
	return tokenize(ctx, "v", c.DY)
}

// VLine is a detached vertical segment from Y1 to Y2 at X.
type VLine struct {
	X, Y1, Y2 units.Value
}

func (c VLine) Token(ctx *units.Context) (string, error) {
	m, err := tokenize(ctx, "M", c.X, c.Y1)
	if err != nil {
		return "", err
	}
	v, err := tokenize(ctx, "V", c.Y2)
	if err != nil {
		return "", err
	}
	return m + " " + v, nil
}

// CubicBezierTo draws a cubic bezier through the absolute control
// points (X1, Y1), (X2, Y2) to the end point (X, Y).
type CubicBezierTo struct {
	X1, Y1, X2, Y2, X, Y units.Value
}

func (c CubicBezierTo) Token(ctx *units.Context) (string, error) {
	return tokenize(ctx, "C", c.X1, c.Y1, c.X2, c.Y2, c.X, c.Y)
}

// CubicBezierToDelta draws a cubic bezier with all coordinates
// relative to the current point.
type CubicBezierToDelta struct {
	DX1, DY1, DX2, DY2, DX, DY units.Value
}

func (c CubicBezierToDelta) Token(ctx *units.Context) (string, error) {
	return tokenize(ctx, "c", c.DX1, c.DY1, c.DX2, c.DY2, c.DX, c.DY)
}

// QuadraticBezierTo draws a quadratic bezier through the absolute
// control point (X1, Y1) to the end point (X, Y).
type QuadraticBezierTo struct {
	X1, Y1, X, Y units.Value
}

func (c QuadraticBezierTo) Token(ctx *units.Context) (string, error) {
	return tokenize(ctx, "Q", c.X1, c.Y1, c.X, c.Y)
}

// QuadraticBezierToDelta draws a quadratic bezier with all coordinates
// relative to the current point.
type QuadraticBezierToDelta struct {
	DX1, DY1, DX, DY units.Value
}

func (c QuadraticBezierToDelta) Token(ctx *units.Context) (string, error) {
	return tokenize(ctx, "q", c.DX1, c.DY1, c.DX, c.DY)
}

// RawPath is an ordered command sequence plus a closed flag.
type RawPath struct {
	Commands []Command
	Closed   bool
}

// NewRawPath returns an empty open path.
func NewRawPath() *RawPath {
	return &RawPath{}
}

// Add appends commands and returns the path.
func (rp *RawPath) Add(cmds ...Command) *RawPath {
	rp.Commands = append(rp.Commands, cmds...)
	return rp
}

// Close marks the path closed and returns it.
func (rp *RawPath) Close() *RawPath {
	rp.Closed = true
	return rp
}

// Data renders the path-data string: tokens joined by single spaces,
// with a close marker appended when the path is closed.
func (rp *RawPath) Data(ctx *units.Context) (string, error) {
	toks := make([]string, 0, len(rp.Commands)+1)
	for _, c := range rp.Commands {
		tok, err := c.Token(ctx)
		if err != nil {
			return "", err
		}
		toks = append(toks, tok)
	}
	if rp.Closed {
		toks = append(toks, "Z")
	}
	return strings.Join(toks, " "), nil
}

// Path is a drawable free-form path entity.
type Path struct {
	NodeBase
	styles.Styling
	styles.Stroke
	styles.Fill
	styles.Clip
	styles.Transform

	// Raw is the command sequence the entity renders.
	Raw *RawPath
}

// NewPath returns a path entity over the given command sequence.
func NewPath(raw *RawPath) *Path {
	if raw == nil {
		raw = NewRawPath()
	}
	return &Path{NodeBase: newBase(), Raw: raw}
}

// Emit builds the path element.
func (p *Path) Emit(ctx *units.Context) (*xmlx.Element, error) {
	e := xmlx.New("path")
	e.SetAttr("id", p.Id)
	d, err := p.Raw.Data(ctx)
	if err != nil {
		return nil, err
	}
	e.SetAttr("d", d)
	if err := contribute(e, ctx,
		&p.Styling, &p.Stroke, &p.Fill, &p.Clip, &p.Transform); err != nil {
		return nil, err
	}
	return e, nil
}

// contribute runs bundle contributions in the fixed documented order.
func contribute(e *xmlx.Element, ctx *units.Context, bundles ...interface {
	Contribute(*xmlx.Element, *units.Context) error
}) error {
	for _, b := range bundles {
		if err := b.Contribute(e, ctx); err != nil {
			return err
		}
	}
	return nil
}

// Copyright (c) 2026, The Vecmark Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package styles

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vecmark/vecmark/base/xmlx"
	"github.com/vecmark/vecmark/units"
)

// LineCaps is how the ends of stroked lines are drawn.
type LineCaps int32

const (
	// LineCapNone leaves the attribute unset.
	LineCapNone LineCaps = iota

	// LineCapButt squares the stroke off right at the end of the line.
	LineCapButt

	// LineCapRound rounds the end, extending past it by half the
	// stroke width.
	LineCapRound

	// LineCapSquare squares the end off, extending past it by half the
	// stroke width.
	LineCapSquare
)

var lineCapNames = [...]string{
	LineCapNone:   "",
	LineCapButt:   "butt",
	LineCapRound:  "round",
	LineCapSquare: "square",
}

func (lc LineCaps) String() string {
	if int(lc) < len(lineCapNames) {
		return lineCapNames[lc]
	}
	return ""
}

// LineJoins is how corners between stroked segments are drawn.
type LineJoins int32

const (
	// LineJoinNone leaves the attribute unset.
	LineJoinNone LineJoins = iota

	// LineJoinArc joins with a smooth arc.
	LineJoinArc

	// LineJoinBevel cuts the corner with a straight edge.
	LineJoinBevel

	// LineJoinMiter extends the edges to a sharp point.
	LineJoinMiter

	// LineJoinMiterClip miters but clips at the miter limit.
	LineJoinMiterClip

	// LineJoinRound rounds the corner.
	LineJoinRound
)

var lineJoinNames = [...]string{
	LineJoinNone:      "",
	LineJoinArc:       "arc",
	LineJoinBevel:     "bevel",
	LineJoinMiter:     "miter",
	LineJoinMiterClip: "miter-clip",
	LineJoinRound:     "round",
}

func (lj LineJoins) String() string {
	if int(lj) < len(lineJoinNames) {
		return lineJoinNames[lj]
	}
	return ""
}

// Stroke carries the outline attributes of an entity.
type Stroke struct {
	// Color is the stroke paint: a color name or hex string.
	Color string

	// DashArray is the dash and gap length pattern.
	DashArray []units.Value

	// DashOffset shifts the start of the dash pattern.
	DashOffset units.Value

	// Cap is how line ends are drawn.
	Cap LineCaps

	// Join is how segment corners are drawn.
	Join LineJoins

	// MiterLimit bounds miter length; only written when set.
	MiterLimit float32

	// Opacity is the stroke opacity in [0, 1]; only written when set.
	Opacity float32

	// Width is the stroke width, a length or pixel quantity.
	Width units.Value

	hasMiterLimit bool
	hasOpacity    bool
}

// SetColor sets the stroke paint.
func (s *Stroke) SetColor(v string) *Stroke {
	s.Color = v
	return s
}

// SetDashArray sets the dash pattern. Entries must be lengths, pixels,
// or percentages.
func (s *Stroke) SetDashArray(dashes []units.Value) error {
	for i, d := range dashes {
		switch d.Dim() {
		case units.DimLength, units.DimPixel, units.DimPercent:
		default:
			return fmt.Errorf("%w: dash %d is %v, want length, pixel or percent", ErrInvalidUnit, i, d.Dim())
		}
	}
	s.DashArray = dashes
	return nil
}

// SetDashOffset sets the dash pattern shift, a length or pixel
// quantity.
func (s *Stroke) SetDashOffset(v units.Value) error {
	switch v.Dim() {
	case units.DimLength, units.DimPixel:
	default:
		return fmt.Errorf("%w: dash offset is %v, want length or pixel", ErrInvalidUnit, v.Dim())
	}
	s.DashOffset = v
	return nil
}

// SetCap sets the line cap.
func (s *Stroke) SetCap(v LineCaps) *Stroke {
	s.Cap = v
	return s
}

// SetJoin sets the line join.
func (s *Stroke) SetJoin(v LineJoins) *Stroke {
	s.Join = v
	return s
}

// SetMiterLimit sets the miter limit.
func (s *Stroke) SetMiterLimit(v float32) *Stroke {
	s.MiterLimit = v
	s.hasMiterLimit = true
	return s
}

// SetOpacity sets the stroke opacity, clamped to [0, 1].
func (s *Stroke) SetOpacity(v float32) *Stroke {
	s.Opacity = clampOpacity(v)
	s.hasOpacity = true
	return s
}

// SetWidth sets the stroke width. Only length and pixel quantities are
// accepted; percentages, device units and raw numbers are not.
func (s *Stroke) SetWidth(v units.Value) error {
	switch v.Dim() {
	case units.DimLength, units.DimPixel:
	default:
		return fmt.Errorf("%w: stroke width is %v, want length or pixel", ErrInvalidUnit, v.Dim())
	}
	s.Width = v
	return nil
}

// Contribute writes the stroke attributes in a fixed order: stroke,
// stroke-dasharray, stroke-dashoffset, stroke-linecap, stroke-linejoin,
// stroke-miterlimit, stroke-opacity, stroke-width.
func (s *Stroke) Contribute(e *xmlx.Element, ctx *units.Context) error {
	if s.Color != "" {
		e.SetAttr("stroke", s.Color)
	}
	if len(s.DashArray) > 0 {
		toks := make([]string, len(s.DashArray))
		for i, d := range s.DashArray {
			tok, err := d.Format()
			if err != nil {
				return fmt.Errorf("styles: stroke-dasharray: %w", err)
			}
			toks[i] = tok
		}
		e.SetAttr("stroke-dasharray", strings.Join(toks, " "))
	}
	if s.DashOffset.IsSet() {
		tok, err := s.DashOffset.Format()
		if err != nil {
			return fmt.Errorf("styles: stroke-dashoffset: %w", err)
		}
		e.SetAttr("stroke-dashoffset", tok)
	}
	if s.Cap != LineCapNone {
		e.SetAttr("stroke-linecap", s.Cap.String())
	}
	if s.Join != LineJoinNone {
		e.SetAttr("stroke-linejoin", s.Join.String())
	}
	if s.hasMiterLimit {
		e.SetAttr("stroke-miterlimit", formatNumber(s.MiterLimit))
	}
	if s.hasOpacity {
		e.SetAttr("stroke-opacity", formatNumber(s.Opacity))
	}
	if s.Width.IsSet() {
		tok, err := s.Width.Format()
		if err != nil {
			return fmt.Errorf("styles: stroke-width: %w", err)
		}
		e.SetAttr("stroke-width", tok)
	}
	return nil
}

// Fill carries the interior paint attributes of an entity.
type Fill struct {
	// Color is the fill paint: a color name or hex string.
	Color string

	// Opacity is the fill opacity in [0, 1]; only written when set.
	Opacity float32

	hasOpacity bool
}

// SetColor sets the fill paint.
func (f *Fill) SetColor(v string) *Fill {
	f.Color = v
	return f
}

// SetOpacity sets the fill opacity, clamped to [0, 1].
func (f *Fill) SetOpacity(v float32) *Fill {
	f.Opacity = clampOpacity(v)
	f.hasOpacity = true
	return f
}

// Contribute writes the fill attributes: fill, fill-opacity.
func (f *Fill) Contribute(e *xmlx.Element, ctx *units.Context) error {
	if f.Color != "" {
		e.SetAttr("fill", f.Color)
	}
	if f.hasOpacity {
		e.SetAttr("fill-opacity", formatNumber(f.Opacity))
	}
	return nil
}

// formatNumber renders a plain attribute numeral.
func formatNumber(v float32) string {
	return strconv.FormatFloat(float64(v), 'g', -1, 32)
}

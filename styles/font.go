// Copyright (c) 2026, The Vecmark Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package styles

import (
	"fmt"
	"strconv"

	"github.com/vecmark/vecmark/base/xmlx"
	"github.com/vecmark/vecmark/units"
)

// FontStyles is the slant of the face.
type FontStyles int32

const (
	// FontStyleNone leaves the attribute unset.
	FontStyleNone FontStyles = iota

	// FontStyleNormal is the upright face.
	FontStyleNormal

	// FontStyleItalic is the italic face.
	FontStyleItalic

	// FontStyleOblique is a slanted version of the normal face.
	FontStyleOblique
)

var fontStyleNames = [...]string{
	FontStyleNone:    "",
	FontStyleNormal:  "normal",
	FontStyleItalic:  "italic",
	FontStyleOblique: "oblique",
}

func (fs FontStyles) String() string {
	if int(fs) < len(fontStyleNames) {
		return fontStyleNames[fs]
	}
	return ""
}

// FontVariants selects small-caps rendering.
type FontVariants int32

const (
	// FontVariantNone leaves the attribute unset.
	FontVariantNone FontVariants = iota

	// FontVariantNormal is plain rendering.
	FontVariantNormal

	// FontVariantSmallCaps renders lowercase as small capitals.
	FontVariantSmallCaps
)

var fontVariantNames = [...]string{
	FontVariantNone:      "",
	FontVariantNormal:    "normal",
	FontVariantSmallCaps: "small-caps",
}

func (fv FontVariants) String() string {
	if int(fv) < len(fontVariantNames) {
		return fontVariantNames[fv]
	}
	return ""
}

// FontStretches is the keyword form of horizontal condensing or
// expanding of the face.
type FontStretches int32

const (
	// FontStretchNone leaves the attribute unset.
	FontStretchNone FontStretches = iota

	FontStretchNormal
	FontStretchUltraCondensed
	FontStretchExtraCondensed
	FontStretchCondensed
	FontStretchSemiCondensed
	FontStretchSemiExpanded
	FontStretchExpanded
	FontStretchExtraExpanded
	FontStretchUltraExpanded
)

var fontStretchNames = [...]string{
	FontStretchNone:           "",
	FontStretchNormal:         "normal",
	FontStretchUltraCondensed: "ultra-condensed",
	FontStretchExtraCondensed: "extra-condensed",
	FontStretchCondensed:      "condensed",
	FontStretchSemiCondensed:  "semi-condensed",
	FontStretchSemiExpanded:   "semi-expanded",
	FontStretchExpanded:       "expanded",
	FontStretchExtraExpanded:  "extra-expanded",
	FontStretchUltraExpanded:  "ultra-expanded",
}

func (fs FontStretches) String() string {
	if int(fs) < len(fontStretchNames) {
		return fontStretchNames[fs]
	}
	return ""
}

// FontWeights is the keyword form of stroke weight.
type FontWeights int32

const (
	// FontWeightNone leaves the attribute unset.
	FontWeightNone FontWeights = iota

	FontWeightNormal
	FontWeightBold
	FontWeightLighter
	FontWeightBolder
)

var fontWeightNames = [...]string{
	FontWeightNone:    "",
	FontWeightNormal:  "normal",
	FontWeightBold:    "bold",
	FontWeightLighter: "lighter",
	FontWeightBolder:  "bolder",
}

func (fw FontWeights) String() string {
	if int(fw) < len(fontWeightNames) {
		return fontWeightNames[fw]
	}
	return ""
}

// FontSizes is the keyword form of face size.
type FontSizes int32

const (
	// FontSizeNone leaves the attribute unset.
	FontSizeNone FontSizes = iota

	FontSizeXXSmall
	FontSizeXSmall
	FontSizeSmall
	FontSizeMedium
	FontSizeLarge
	FontSizeXLarge
	FontSizeXXLarge
	FontSizeSmaller
	FontSizeLarger
)

var fontSizeNames = [...]string{
	FontSizeNone:    "",
	FontSizeXXSmall: "xx-small",
	FontSizeXSmall:  "x-small",
	FontSizeSmall:   "small",
	FontSizeMedium:  "medium",
	FontSizeLarge:   "large",
	FontSizeXLarge:  "x-large",
	FontSizeXXLarge: "xx-large",
	FontSizeSmaller: "smaller",
	FontSizeLarger:  "larger",
}

func (fs FontSizes) String() string {
	if int(fs) < len(fontSizeNames) {
		return fontSizeNames[fs]
	}
	return ""
}

// Font carries the typeface attributes for text entities. Size,
// stretch and weight each take either a quantity or a keyword; setting
// one form clears the other.
type Font struct {
	// Family is the font family list.
	Family string

	// Size is the face size as a length or pixel quantity.
	Size units.Value

	// SizeKeyword is the face size as a CSS keyword.
	SizeKeyword FontSizes

	// Stretch is the face stretch as a percentage.
	Stretch units.Value

	// StretchKeyword is the face stretch as a CSS keyword.
	StretchKeyword FontStretches

	// Style is the slant.
	Style FontStyles

	// Variant selects small caps.
	Variant FontVariants

	// Weight is the numeric weight; only written when set.
	Weight int

	// WeightKeyword is the weight as a CSS keyword.
	WeightKeyword FontWeights

	hasWeight bool
}

// SetFamily sets the font family list.
func (f *Font) SetFamily(v string) *Font {
	f.Family = v
	return f
}

// SetSize sets the face size, a length or pixel quantity.
func (f *Font) SetSize(v units.Value) error {
	switch v.Dim() {
	case units.DimLength, units.DimPixel:
	default:
		return fmt.Errorf("%w: font size is %v, want length or pixel", ErrInvalidUnit, v.Dim())
	}
	f.Size = v
	f.SizeKeyword = FontSizeNone
	return nil
}

// SetSizeKeyword sets the face size keyword.
func (f *Font) SetSizeKeyword(v FontSizes) *Font {
	f.SizeKeyword = v
	f.Size = units.Value{}
	return f
}

// SetStretch sets the face stretch, a percentage quantity.
func (f *Font) SetStretch(v units.Value) error {
	if v.Dim() != units.DimPercent {
		return fmt.Errorf("%w: font stretch is %v, want percent", ErrInvalidUnit, v.Dim())
	}
	f.Stretch = v
	f.StretchKeyword = FontStretchNone
	return nil
}

// SetStretchKeyword sets the face stretch keyword.
func (f *Font) SetStretchKeyword(v FontStretches) *Font {
	f.StretchKeyword = v
	f.Stretch = units.Value{}
	return f
}

// SetStyle sets the slant.
func (f *Font) SetStyle(v FontStyles) *Font {
	f.Style = v
	return f
}

// SetVariant sets the variant.
func (f *Font) SetVariant(v FontVariants) *Font {
	f.Variant = v
	return f
}

// SetWeight sets the numeric weight, which must be non-negative.
func (f *Font) SetWeight(v int) error {
	if v < 0 {
		return fmt.Errorf("%w: font weight %d is negative", ErrInvalidValue, v)
	}
	f.Weight = v
	f.hasWeight = true
	f.WeightKeyword = FontWeightNone
	return nil
}

// SetWeightKeyword sets the weight keyword.
func (f *Font) SetWeightKeyword(v FontWeights) *Font {
	f.WeightKeyword = v
	f.hasWeight = false
	return f
}

// Contribute writes the font attributes in a fixed order: font-family,
// font-size, font-stretch, font-style, font-variant, font-weight.
func (f *Font) Contribute(e *xmlx.Element, ctx *units.Context) error {
	if f.Family != "" {
		e.SetAttr("font-family", f.Family)
	}
	if f.Size.IsSet() {
		tok, err := f.Size.Format()
		if err != nil {
			return fmt.Errorf("styles: font-size: %w", err)
		}
		e.SetAttr("font-size", tok)
	} else if f.SizeKeyword != FontSizeNone {
		e.SetAttr("font-size", f.SizeKeyword.String())
	}
	if f.Stretch.IsSet() {
		tok, err := f.Stretch.Format()
		if err != nil {
			return fmt.Errorf("styles: font-stretch: %w", err)
		}
		e.SetAttr("font-stretch", tok)
	} else if f.StretchKeyword != FontStretchNone {
		e.SetAttr("font-stretch", f.StretchKeyword.String())
	}
	if f.Style != FontStyleNone {
		e.SetAttr("font-style", f.Style.String())
	}
	if f.Variant != FontVariantNone {
		e.SetAttr("font-variant", f.Variant.String())
	}
	if f.hasWeight {
		e.SetAttr("font-weight", strconv.Itoa(f.Weight))
	} else if f.WeightKeyword != FontWeightNone {
		e.SetAttr("font-weight", f.WeightKeyword.String())
	}
	return nil
}

// TextAnchors aligns text relative to its anchor point.
type TextAnchors int32

const (
	// TextAnchorNone leaves the attribute unset.
	TextAnchorNone TextAnchors = iota

	// TextAnchorStart puts the anchor at the start of the text.
	TextAnchorStart

	// TextAnchorMiddle centers the text on the anchor.
	TextAnchorMiddle

	// TextAnchorEnd puts the anchor at the end of the text.
	TextAnchorEnd
)

var textAnchorNames = [...]string{
	TextAnchorNone:   "",
	TextAnchorStart:  "start",
	TextAnchorMiddle: "middle",
	TextAnchorEnd:    "end",
}

func (ta TextAnchors) String() string {
	if int(ta) < len(textAnchorNames) {
		return textAnchorNames[ta]
	}
	return ""
}

// TextLayout carries text placement attributes.
type TextLayout struct {
	// Anchor aligns the text on its anchor point.
	Anchor TextAnchors
}

// SetAnchor sets the text anchor.
func (t *TextLayout) SetAnchor(v TextAnchors) *TextLayout {
	t.Anchor = v
	return t
}

// Contribute writes the text-anchor attribute.
func (t *TextLayout) Contribute(e *xmlx.Element, ctx *units.Context) error {
	if t.Anchor != TextAnchorNone {
		e.SetAttr("text-anchor", t.Anchor.String())
	}
	return nil
}

// Copyright (c) 2026, The Vecmark Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import "github.com/vecmark/vecmark/units"

// PaperSizes is the ISO 216 A-series paper sizes.
type PaperSizes int32

const (
	// PaperA0 is 841 x 1189 mm.
	PaperA0 PaperSizes = iota

	// PaperA1 is 594 x 841 mm.
	PaperA1

	// PaperA2 is 420 x 594 mm.
	PaperA2

	// PaperA3 is 297 x 420 mm.
	PaperA3

	// PaperA4 is 210 x 297 mm.
	PaperA4

	// PaperA5 is 148 x 210 mm.
	PaperA5

	// PaperA6 is 105 x 148 mm.
	PaperA6

	// PaperA7 is 74 x 105 mm.
	PaperA7

	// PaperA8 is 52 x 74 mm.
	PaperA8

	// PaperA9 is 37 x 52 mm.
	PaperA9

	// PaperA10 is 26 x 37 mm.
	PaperA10
)

// portrait dimensions in mm
var paperSizesMm = [...][2]float32{
	PaperA0:  {841, 1189},
	PaperA1:  {594, 841},
	PaperA2:  {420, 594},
	PaperA3:  {297, 420},
	PaperA4:  {210, 297},
	PaperA5:  {148, 210},
	PaperA6:  {105, 148},
	PaperA7:  {74, 105},
	PaperA8:  {52, 74},
	PaperA9:  {37, 52},
	PaperA10: {26, 37},
}

// Dimensions returns the portrait width and height of the paper size.
func (ps PaperSizes) Dimensions() (w, h units.Value) {
	d := paperSizesMm[ps]
	return units.Mm(d[0]), units.Mm(d[1])
}

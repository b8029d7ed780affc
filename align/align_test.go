// Copyright (c) 2026, The Vecmark Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package align

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vecmark/vecmark/units"
)

// makePair rotates the segment (0,0)-(sx,sy) by deg and shifts it by
// (tx, ty), giving the target point pair.
func makePair(sx, sy, deg, tx, ty float64) (bx, by [2]float32) {
	sin, cos := math.Sincos(deg * math.Pi / 180)
	bx[0] = float32(tx)
	by[0] = float32(ty)
	bx[1] = float32(sx*cos - sy*sin + tx)
	by[1] = float32(sx*sin + sy*cos + ty)
	return bx, by
}

func TestTwoPointRecovery(t *testing.T) {
	ax := [2]float32{0, 1}
	ay := [2]float32{0, 0}

	tests := []struct {
		deg, tx, ty float64
	}{
		{0, 5, -2},
		{30, 2, 3},
		{90, 0, 0},
		{135, -4, 1.5},
		{250, 10, -7},
	}
	for _, tc := range tests {
		bx, by := makePair(1, 0, tc.deg, tc.tx, tc.ty)
		aff, err := TwoPoint(ax, ay, bx, by, nil)
		assert.NoError(t, err)

		for i := range 2 {
			px, py, err := aff.Apply(units.Scalar(ax[i]), units.Scalar(ay[i]))
			assert.NoError(t, err)
			assert.InDelta(t, bx[i], px.Value, 1e-3, "deg=%v point %d x", tc.deg, i)
			assert.InDelta(t, by[i], py.Value, 1e-3, "deg=%v point %d y", tc.deg, i)
		}
	}
}

func TestTwoPointLongSegment(t *testing.T) {
	// a segment not anchored at the origin
	ax := [2]float32{3, 7}
	ay := [2]float32{-1, 2}
	sin, cos := math.Sincos(60 * math.Pi / 180)
	var bx, by [2]float32
	for i := range 2 {
		x, y := float64(ax[i]), float64(ay[i])
		bx[i] = float32(x*cos - y*sin - 2)
		by[i] = float32(x*sin + y*cos + 4)
	}

	aff, err := TwoPoint(ax, ay, bx, by, nil)
	assert.NoError(t, err)
	for i := range 2 {
		px, py, err := aff.Apply(units.Scalar(ax[i]), units.Scalar(ay[i]))
		assert.NoError(t, err)
		assert.InDelta(t, bx[i], px.Value, 1e-3)
		assert.InDelta(t, by[i], py.Value, 1e-3)
	}
}

func TestTwoPointCustomConfig(t *testing.T) {
	cfg := &Config{}
	cfg.Defaults()
	assert.Equal(t, 50, cfg.MaxIterations)
	assert.Equal(t, 0.95, cfg.RateDrop)
	assert.Equal(t, 1e-6, cfg.Tolerance)

	ax := [2]float32{0, 1}
	ay := [2]float32{0, 0}
	bx, by := makePair(1, 0, 45, 1, 1)
	aff, err := TwoPoint(ax, ay, bx, by, cfg)
	assert.NoError(t, err)
	px, py, err := aff.Apply(units.Scalar(1), units.Scalar(0))
	assert.NoError(t, err)
	assert.InDelta(t, bx[1], px.Value, 1e-3)
	assert.InDelta(t, by[1], py.Value, 1e-3)
}

func TestTwoPointNonConvergence(t *testing.T) {
	// a degenerate source pair has no rotation signal: the cost is
	// flat and no descending step exists
	ax := [2]float32{0, 0}
	ay := [2]float32{0, 0}
	bx := [2]float32{0, 1}
	by := [2]float32{0, 0}
	_, err := TwoPoint(ax, ay, bx, by, nil)
	assert.ErrorIs(t, err, ErrNonConvergence)
}

// Copyright (c) 2026, The Vecmark Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vecmark/vecmark/styles"
	"github.com/vecmark/vecmark/units"
)

func TestLineEmit(t *testing.T) {
	ctx := newCtx()
	n, err := NewLine(units.Mm(1), units.Mm(2), units.Mm(3), units.Mm(4))
	require.NoError(t, err)
	n.SetID("seg")

	e, err := n.Emit(ctx)
	require.NoError(t, err)
	assert.Equal(t, "line", e.Tag)

	names := make([]string, len(e.Attr))
	vals := make([]string, len(e.Attr))
	for i, at := range e.Attr {
		names[i] = at.Name.Local
		vals[i] = at.Value
	}
	assert.Equal(t, []string{"id", "x1", "y1", "x2", "y2"}, names)
	assert.Equal(t, []string{"seg", "1.000000mm", "2.000000mm", "3.000000mm", "4.000000mm"}, vals)
}

func TestLineToPath(t *testing.T) {
	ctx := newCtx()
	n, err := NewLine(units.Px(0), units.Px(0), units.Px(3), units.Px(4))
	require.NoError(t, err)
	rp, err := n.ToPath()
	require.NoError(t, err)
	assert.False(t, rp.Closed)
	d, err := rp.Data(ctx)
	require.NoError(t, err)
	assert.Equal(t, "M 0 0 L 3 4", d)
}

func TestCircleEmit(t *testing.T) {
	ctx := newCtx()
	n, err := NewCircle(units.Cm(1), units.Cm(2), units.Cm(0.5))
	require.NoError(t, err)
	e, err := n.Emit(ctx)
	require.NoError(t, err)
	assert.Equal(t, "circle", e.Tag)
	cx, _ := e.AttrByName("cx")
	assert.Equal(t, "10.000000mm", cx)
	r, _ := e.AttrByName("r")
	assert.Equal(t, "5.000000mm", r)
}

func TestCircleToPath(t *testing.T) {
	n, err := NewCircle(units.Px(0), units.Px(0), units.Px(16))
	require.NoError(t, err)
	rp, err := n.ToPath()
	require.NoError(t, err)
	require.Len(t, rp.Commands, 32)
	assert.True(t, rp.Closed)

	mv, ok := rp.Commands[0].(MoveTo)
	require.True(t, ok)
	assert.InDelta(t, 16, mv.X.Value, 1e-4)
	assert.InDelta(t, 0, mv.Y.Value, 1e-4)

	// a quarter of the way round, the sample sits at (0, 16)
	q, ok := rp.Commands[8].(LineTo)
	require.True(t, ok)
	assert.InDelta(t, 0, q.X.Value, 1e-4)
	assert.InDelta(t, 16, q.Y.Value, 1e-4)

	// every sample is on the circle
	for _, c := range rp.Commands[1:] {
		lt := c.(LineTo)
		d := math.Hypot(float64(lt.X.Value), float64(lt.Y.Value))
		assert.InDelta(t, 16, d, 1e-3)
	}
}

func TestEllipseToPath(t *testing.T) {
	n, err := NewEllipse(units.Px(0), units.Px(0), units.Px(20), units.Px(10))
	require.NoError(t, err)
	rp, err := n.ToPath()
	require.NoError(t, err)
	require.Len(t, rp.Commands, 32)
	assert.True(t, rp.Closed)
	mv := rp.Commands[0].(MoveTo)
	assert.InDelta(t, 20, mv.X.Value, 1e-4)
	q := rp.Commands[8].(LineTo)
	assert.InDelta(t, 10, q.Y.Value, 1e-4)
}

func TestRectEmit(t *testing.T) {
	ctx := newCtx()
	n, err := NewRect(units.Mm(1), units.Mm(2), units.Mm(3), units.Mm(4))
	require.NoError(t, err)
	require.NoError(t, n.SetCornerRadius(units.Mm(0.5), units.Mm(0.5)))
	e, err := n.Emit(ctx)
	require.NoError(t, err)
	assert.Equal(t, "rect", e.Tag)
	w, _ := e.AttrByName("width")
	assert.Equal(t, "3.000000mm", w)
	h, _ := e.AttrByName("height")
	assert.Equal(t, "4.000000mm", h)
	rx, _ := e.AttrByName("rx")
	assert.Equal(t, "0.500000mm", rx)
}

func TestPolylineEmit(t *testing.T) {
	ctx := newCtx()
	n, err := NewPolyline(
		[]units.Value{units.Px(0), units.Px(10), units.Px(20)},
		[]units.Value{units.Px(0), units.Px(5), units.Px(0)})
	require.NoError(t, err)
	e, err := n.Emit(ctx)
	require.NoError(t, err)
	assert.Equal(t, "polyline", e.Tag)
	pts, ok := e.AttrByName("points")
	require.True(t, ok)
	assert.Equal(t, "0,0 10,5 20,0", pts)

	rp, err := n.ToPath()
	require.NoError(t, err)
	assert.False(t, rp.Closed)
	require.Len(t, rp.Commands, 3)
}

func TestPolygonEmit(t *testing.T) {
	ctx := newCtx()
	n, err := NewPolygon(
		[]units.Value{units.Mm(25.4), units.Mm(50.8)},
		[]units.Value{units.Mm(0), units.Mm(25.4)})
	require.NoError(t, err)
	e, err := n.Emit(ctx)
	require.NoError(t, err)
	assert.Equal(t, "polygon", e.Tag)
	pts, _ := e.AttrByName("points")
	assert.Equal(t, "72,0 144,72", pts)

	rp, err := n.ToPath()
	require.NoError(t, err)
	assert.True(t, rp.Closed)
}

func TestShapeValidation(t *testing.T) {
	_, err := NewCircle(units.Px(0), units.Px(0), units.Deg(5))
	require.ErrorIs(t, err, styles.ErrInvalidUnit)

	_, err = NewCircle(units.Px(0), units.Px(0), units.Px(-1))
	require.ErrorIs(t, err, styles.ErrInvalidValue)

	_, err = NewRect(units.Px(0), units.Px(0), units.Px(-5), units.Px(5))
	require.ErrorIs(t, err, styles.ErrInvalidValue)

	_, err = NewLine(units.Scalar(1), units.Px(0), units.Px(0), units.Px(0))
	require.ErrorIs(t, err, styles.ErrInvalidUnit)

	_, err = NewPolyline(
		[]units.Value{units.Px(0), units.Px(1)},
		[]units.Value{units.Px(0)})
	require.ErrorIs(t, err, ErrLengthMismatch)

	_, err = NewPolyline(nil, nil)
	require.ErrorIs(t, err, styles.ErrInvalidValue)
}

func TestEquilateralTriangle(t *testing.T) {
	n, err := NewEquilateralTriangle(units.Mm(10), units.Mm(20), units.Mm(6))
	require.NoError(t, err)
	require.Len(t, n.XS, 3)
	require.Len(t, n.YS, 3)

	// all three sides come out the requested length
	for i := range 3 {
		j := (i + 1) % 3
		dx := float64(n.XS[j].Value - n.XS[i].Value)
		dy := float64(n.YS[j].Value - n.YS[i].Value)
		assert.InDelta(t, 6, math.Hypot(dx, dy), 1e-4)
	}

	// centroid is the anchor
	var cx, cy float64
	for i := range 3 {
		cx += float64(n.XS[i].Value) / 3
		cy += float64(n.YS[i].Value) / 3
	}
	assert.InDelta(t, 10, cx, 1e-4)
	assert.InDelta(t, 20, cy, 1e-4)

	// apex first, pointing up
	assert.InDelta(t, 10, float64(n.XS[0].Value), 1e-4)
	assert.Less(t, n.YS[0].Value, n.YS[1].Value)
}

func TestEquilateralTriangleUnitMix(t *testing.T) {
	// side in a convertible unit is fine
	n, err := NewEquilateralTriangle(units.Mm(0), units.Mm(0), units.Cm(1))
	require.NoError(t, err)
	assert.InDelta(t, 5, float64(n.XS[1].Value), 1e-4)

	// pixels do not convert to lengths
	_, err = NewEquilateralTriangle(units.Mm(0), units.Mm(0), units.Px(10))
	require.ErrorIs(t, err, units.ErrUnitMismatch)
}

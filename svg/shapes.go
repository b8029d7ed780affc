// Copyright (c) 2026, The Vecmark Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"fmt"
	"strings"

	"cogentcore.org/core/math32"

	"github.com/vecmark/vecmark/base/xmlx"
	"github.com/vecmark/vecmark/styles"
	"github.com/vecmark/vecmark/units"
)

// fixed polygonization constants for shape-to-path conversion
const (
	ellipseSamples = 32
	cornerArcSteps = 8
)

// addMul returns base + r*f, for sampling curves in unit space.
func addMul(base, r units.Value, f float32) (units.Value, error) {
	return base.Add(r.MulScalar(f))
}

// Line is a straight segment between two points. Lines have no
// interior, so they carry no fill bundle.
type Line struct {
	NodeBase
	styles.Styling
	styles.Stroke
	styles.Clip
	styles.Transform

	X1, Y1, X2, Y2 units.Value
}

// NewLine returns a line from (x1, y1) to (x2, y2).
func NewLine(x1, y1, x2, y2 units.Value) (*Line, error) {
	for _, c := range []struct {
		name string
		v    units.Value
	}{{"x1", x1}, {"y1", y1}, {"x2", x2}, {"y2", y2}} {
		if err := checkCoord(c.name, c.v); err != nil {
			return nil, err
		}
	}
	return &Line{NodeBase: newBase(), X1: x1, Y1: y1, X2: x2, Y2: y2}, nil
}

// Emit builds the line element.
func (n *Line) Emit(ctx *units.Context) (*xmlx.Element, error) {
	e := xmlx.New("line")
	e.SetAttr("id", n.Id)
	for _, q := range []struct {
		name string
		v    units.Value
	}{{"x1", n.X1}, {"y1", n.Y1}, {"x2", n.X2}, {"y2", n.Y2}} {
		if err := setQuantity(e, q.name, q.v); err != nil {
			return nil, err
		}
	}
	if err := contribute(e, ctx, &n.Styling, &n.Stroke, &n.Clip, &n.Transform); err != nil {
		return nil, err
	}
	return e, nil
}

// ToPath converts the line to an open move-line command pair.
func (n *Line) ToPath() (*RawPath, error) {
	return NewRawPath().Add(MoveTo{X: n.X1, Y: n.Y1}, LineTo{X: n.X2, Y: n.Y2}), nil
}

// Circle is a circle given by center and radius.
type Circle struct {
	NodeBase
	styles.Styling
	styles.Stroke
	styles.Fill
	styles.Clip
	styles.Transform

	CX, CY, R units.Value
}

// NewCircle returns a circle centered at (cx, cy) with radius r.
func NewCircle(cx, cy, r units.Value) (*Circle, error) {
	if err := checkCoord("cx", cx); err != nil {
		return nil, err
	}
	if err := checkCoord("cy", cy); err != nil {
		return nil, err
	}
	if err := checkSize("r", r); err != nil {
		return nil, err
	}
	return &Circle{NodeBase: newBase(), CX: cx, CY: cy, R: r}, nil
}

// Emit builds the circle element.
func (n *Circle) Emit(ctx *units.Context) (*xmlx.Element, error) {
	e := xmlx.New("circle")
	e.SetAttr("id", n.Id)
	for _, q := range []struct {
		name string
		v    units.Value
	}{{"cx", n.CX}, {"cy", n.CY}, {"r", n.R}} {
		if err := setQuantity(e, q.name, q.v); err != nil {
			return nil, err
		}
	}
	if err := contribute(e, ctx, &n.Styling, &n.Stroke, &n.Fill, &n.Clip, &n.Transform); err != nil {
		return nil, err
	}
	return e, nil
}

// ToPath converts the circle to a closed 32-gon.
func (n *Circle) ToPath() (*RawPath, error) {
	return ellipsePath(n.CX, n.CY, n.R, n.R)
}

// Ellipse is an axis-aligned ellipse given by center and radii.
type Ellipse struct {
	NodeBase
	styles.Styling
	styles.Stroke
	styles.Fill
	styles.Clip
	styles.Transform

	CX, CY, RX, RY units.Value
}

// NewEllipse returns an ellipse centered at (cx, cy) with radii rx
// and ry.
func NewEllipse(cx, cy, rx, ry units.Value) (*Ellipse, error) {
	if err := checkCoord("cx", cx); err != nil {
		return nil, err
	}
	if err := checkCoord("cy", cy); err != nil {
		return nil, err
	}
	if err := checkSize("rx", rx); err != nil {
		return nil, err
	}
	if err := checkSize("ry", ry); err != nil {
		return nil, err
	}
	return &Ellipse{NodeBase: newBase(), CX: cx, CY: cy, RX: rx, RY: ry}, nil
}

// Emit builds the ellipse element.
func (n *Ellipse) Emit(ctx *units.Context) (*xmlx.Element, error) {
	e := xmlx.New("ellipse")
	e.SetAttr("id", n.Id)
	for _, q := range []struct {
		name string
		v    units.Value
	}{{"cx", n.CX}, {"cy", n.CY}, {"rx", n.RX}, {"ry", n.RY}} {
		if err := setQuantity(e, q.name, q.v); err != nil {
			return nil, err
		}
	}
	if err := contribute(e, ctx, &n.Styling, &n.Stroke, &n.Fill, &n.Clip, &n.Transform); err != nil {
		return nil, err
	}
	return e, nil
}

// ToPath converts the ellipse to a closed 32-gon.
func (n *Ellipse) ToPath() (*RawPath, error) {
	return ellipsePath(n.CX, n.CY, n.RX, n.RY)
}

// ellipsePath samples the ellipse at 32 evenly spaced angles and joins
// them into a closed polygonal path.
func ellipsePath(cx, cy, rx, ry units.Value) (*RawPath, error) {
	rp := NewRawPath()
	for i := range ellipseSamples {
		sin, cos := math32.Sincos(2 * math32.Pi * float32(i) / ellipseSamples)
		px, err := addMul(cx, rx, cos)
		if err != nil {
			return nil, fmt.Errorf("svg: ellipse path: %w", err)
		}
		py, err := addMul(cy, ry, sin)
		if err != nil {
			return nil, fmt.Errorf("svg: ellipse path: %w", err)
		}
		if i == 0 {
			rp.Add(MoveTo{X: px, Y: py})
		} else {
			rp.Add(LineTo{X: px, Y: py})
		}
	}
	return rp.Close(), nil
}

// Rect is an axis-aligned rectangle, optionally with rounded corners.
type Rect struct {
	NodeBase
	styles.Styling
	styles.Stroke
	styles.Fill
	styles.Clip
	styles.Transform

	X, Y, W, H units.Value

	// RX, RY are the corner radii; unset for sharp corners.
	RX, RY units.Value
}

// NewRect returns a rectangle with top-left corner (x, y) and the
// given width and height.
func NewRect(x, y, w, h units.Value) (*Rect, error) {
	if err := checkCoord("x", x); err != nil {
		return nil, err
	}
	if err := checkCoord("y", y); err != nil {
		return nil, err
	}
	if err := checkSize("width", w); err != nil {
		return nil, err
	}
	if err := checkSize("height", h); err != nil {
		return nil, err
	}
	return &Rect{NodeBase: newBase(), X: x, Y: y, W: w, H: h}, nil
}

// SetCornerRadius rounds the corners with the given radii.
func (n *Rect) SetCornerRadius(rx, ry units.Value) error {
	if err := checkSize("rx", rx); err != nil {
		return err
	}
	if err := checkSize("ry", ry); err != nil {
		return err
	}
	n.RX = rx
	n.RY = ry
	return nil
}

// Emit builds the rect element.
func (n *Rect) Emit(ctx *units.Context) (*xmlx.Element, error) {
	e := xmlx.New("rect")
	e.SetAttr("id", n.Id)
	for _, q := range []struct {
		name string
		v    units.Value
	}{{"x", n.X}, {"y", n.Y}, {"width", n.W}, {"height", n.H}, {"rx", n.RX}, {"ry", n.RY}} {
		if err := setQuantity(e, q.name, q.v); err != nil {
			return nil, err
		}
	}
	if err := contribute(e, ctx, &n.Styling, &n.Stroke, &n.Fill, &n.Clip, &n.Transform); err != nil {
		return nil, err
	}
	return e, nil
}

// ToPath converts the rectangle to a closed path: a move and four
// edge deltas for sharp corners, or edges stitched with 8-step corner
// arcs for rounded ones.
func (n *Rect) ToPath() (*RawPath, error) {
	if !n.RX.IsSet() && !n.RY.IsSet() {
		return NewRawPath().Add(
			MoveTo{X: n.X, Y: n.Y},
			HLineToDelta{DX: n.W},
			VLineToDelta{DY: n.H},
			HLineToDelta{DX: n.W.Neg()},
			VLineToDelta{DY: n.H.Neg()},
		).Close(), nil
	}
	return n.roundedPath()
}

// roundedPath walks the rectangle clockwise starting just past the
// top-left corner, sampling each quarter-circle corner in 8 steps.
func (n *Rect) roundedPath() (*RawPath, error) {
	right, err := n.X.Add(n.W)
	if err != nil {
		return nil, fmt.Errorf("svg: rect path: %w", err)
	}
	bottom, err := n.Y.Add(n.H)
	if err != nil {
		return nil, fmt.Errorf("svg: rect path: %w", err)
	}
	// corner centers
	cxl, err := n.X.Add(n.RX)
	if err != nil {
		return nil, fmt.Errorf("svg: rect path: %w", err)
	}
	cxr, err := right.Sub(n.RX)
	if err != nil {
		return nil, fmt.Errorf("svg: rect path: %w", err)
	}
	cyt, err := n.Y.Add(n.RY)
	if err != nil {
		return nil, fmt.Errorf("svg: rect path: %w", err)
	}
	cyb, err := bottom.Sub(n.RY)
	if err != nil {
		return nil, fmt.Errorf("svg: rect path: %w", err)
	}

	rp := NewRawPath().Add(MoveTo{X: cxl, Y: n.Y})
	rp.Add(HLineTo{X: cxr})
	if err := cornerArc(rp, cxr, cyt, n.RX, n.RY, -90); err != nil {
		return nil, err
	}
	rp.Add(VLineTo{Y: cyb})
	if err := cornerArc(rp, cxr, cyb, n.RX, n.RY, 0); err != nil {
		return nil, err
	}
	rp.Add(HLineTo{X: cxl})
	if err := cornerArc(rp, cxl, cyb, n.RX, n.RY, 90); err != nil {
		return nil, err
	}
	rp.Add(VLineTo{Y: cyt})
	if err := cornerArc(rp, cxl, cyt, n.RX, n.RY, 180); err != nil {
		return nil, err
	}
	return rp.Close(), nil
}

// cornerArc appends one quarter-circle corner, sampled in 8 steps
// clockwise from the given start angle in degrees.
func cornerArc(rp *RawPath, cx, cy, rx, ry units.Value, startDeg float32) error {
	for i := 1; i <= cornerArcSteps; i++ {
		ang := math32.DegToRad(startDeg + 90*float32(i)/cornerArcSteps)
		sin, cos := math32.Sincos(ang)
		px, err := addMul(cx, rx, cos)
		if err != nil {
			return fmt.Errorf("svg: rect corner: %w", err)
		}
		py, err := addMul(cy, ry, sin)
		if err != nil {
			return fmt.Errorf("svg: rect corner: %w", err)
		}
		rp.Add(LineTo{X: px, Y: py})
	}
	return nil
}

// Polyline is an open run of connected segments.
type Polyline struct {
	NodeBase
	styles.Styling
	styles.Stroke
	styles.Fill
	styles.Clip
	styles.Transform

	XS, YS []units.Value
}

// NewPolyline returns a polyline through the given vertices.
func NewPolyline(xs, ys []units.Value) (*Polyline, error) {
	if err := checkVertices(xs, ys); err != nil {
		return nil, err
	}
	return &Polyline{NodeBase: newBase(), XS: xs, YS: ys}, nil
}

// Emit builds the polyline element.
func (n *Polyline) Emit(ctx *units.Context) (*xmlx.Element, error) {
	e := xmlx.New("polyline")
	e.SetAttr("id", n.Id)
	pts, err := pointList(n.XS, n.YS, ctx)
	if err != nil {
		return nil, err
	}
	e.SetAttr("points", pts)
	if err := contribute(e, ctx, &n.Styling, &n.Stroke, &n.Fill, &n.Clip, &n.Transform); err != nil {
		return nil, err
	}
	return e, nil
}

// ToPath converts the polyline to an open move-then-lines path.
func (n *Polyline) ToPath() (*RawPath, error) {
	return verticesPath(n.XS, n.YS, false), nil
}

// Polygon is a closed run of connected segments.
type Polygon struct {
	NodeBase
	styles.Styling
	styles.Stroke
	styles.Fill
	styles.Clip
	styles.Transform

	XS, YS []units.Value
}

// NewPolygon returns a polygon through the given vertices.
func NewPolygon(xs, ys []units.Value) (*Polygon, error) {
	if err := checkVertices(xs, ys); err != nil {
		return nil, err
	}
	return &Polygon{NodeBase: newBase(), XS: xs, YS: ys}, nil
}

// Emit builds the polygon element.
func (n *Polygon) Emit(ctx *units.Context) (*xmlx.Element, error) {
	e := xmlx.New("polygon")
	e.SetAttr("id", n.Id)
	pts, err := pointList(n.XS, n.YS, ctx)
	if err != nil {
		return nil, err
	}
	e.SetAttr("points", pts)
	if err := contribute(e, ctx, &n.Styling, &n.Stroke, &n.Fill, &n.Clip, &n.Transform); err != nil {
		return nil, err
	}
	return e, nil
}

// ToPath converts the polygon to a closed move-then-lines path.
func (n *Polygon) ToPath() (*RawPath, error) {
	return verticesPath(n.XS, n.YS, true), nil
}

// checkVertices validates paired vertex slices.
func checkVertices(xs, ys []units.Value) error {
	if len(xs) != len(ys) {
		return fmt.Errorf("%w: %d x vs %d y", ErrLengthMismatch, len(xs), len(ys))
	}
	if len(xs) == 0 {
		return fmt.Errorf("%w: no vertices", styles.ErrInvalidValue)
	}
	for i := range xs {
		if err := checkCoord(fmt.Sprintf("x[%d]", i), xs[i]); err != nil {
			return err
		}
		if err := checkCoord(fmt.Sprintf("y[%d]", i), ys[i]); err != nil {
			return err
		}
	}
	return nil
}

// pointList renders vertices as the unit-free points attribute.
func pointList(xs, ys []units.Value, ctx *units.Context) (string, error) {
	toks := make([]string, len(xs))
	for i := range xs {
		x, err := deviceNum(xs[i], ctx)
		if err != nil {
			return "", fmt.Errorf("svg: points: %w", err)
		}
		y, err := deviceNum(ys[i], ctx)
		if err != nil {
			return "", fmt.Errorf("svg: points: %w", err)
		}
		toks[i] = fnum(x) + "," + fnum(y)
	}
	return strings.Join(toks, " "), nil
}

// verticesPath joins vertices into a path.
func verticesPath(xs, ys []units.Value, closed bool) *RawPath {
	rp := NewRawPath()
	for i := range xs {
		if i == 0 {
			rp.Add(MoveTo{X: xs[i], Y: ys[i]})
		} else {
			rp.Add(LineTo{X: xs[i], Y: ys[i]})
		}
	}
	rp.Closed = closed
	return rp
}

// EquilateralTriangle is a polygon with three equal sides, anchored at
// its centroid with the apex pointing up (toward smaller y).
type EquilateralTriangle struct {
	Polygon

	X, Y, Side units.Value
}

// NewEquilateralTriangle returns an equilateral triangle with centroid
// (x, y) and the given side length. The side is converted to the
// anchor coordinate units, so all three must share a dimension.
func NewEquilateralTriangle(x, y, side units.Value) (*EquilateralTriangle, error) {
	if err := checkCoord("x", x); err != nil {
		return nil, err
	}
	if err := checkCoord("y", y); err != nil {
		return nil, err
	}
	if err := checkSize("side", side); err != nil {
		return nil, err
	}
	sx, err := side.Convert(x.Unit)
	if err != nil {
		return nil, fmt.Errorf("svg: triangle side: %w", err)
	}
	sy, err := side.Convert(y.Unit)
	if err != nil {
		return nil, fmt.Errorf("svg: triangle side: %w", err)
	}

	// circumradius s/sqrt(3), inradius s/(2*sqrt(3))
	sqrt3 := math32.Sqrt(3)
	apexY, err := y.Sub(sy.DivScalar(sqrt3))
	if err != nil {
		return nil, err
	}
	baseY, err := y.Add(sy.DivScalar(2 * sqrt3))
	if err != nil {
		return nil, err
	}
	rightX, err := x.Add(sx.DivScalar(2))
	if err != nil {
		return nil, err
	}
	leftX, err := x.Sub(sx.DivScalar(2))
	if err != nil {
		return nil, err
	}

	poly, err := NewPolygon(
		[]units.Value{x, rightX, leftX},
		[]units.Value{apexY, baseY, baseY})
	if err != nil {
		return nil, err
	}
	return &EquilateralTriangle{Polygon: *poly, X: x, Y: y, Side: side}, nil
}

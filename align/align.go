// Copyright (c) 2026, The Vecmark Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package align solves the 2D two-point alignment problem: given point
pairs {A0, A1} and {B0, B1}, find the rotation and translation that
carry A onto B in the least-squares sense. The rotation angle is found
by a coarse 1-degree sweep followed by gradient descent with an
adaptive step; the translation then follows analytically from the
first correspondence.
*/
package align

import (
	"errors"
	"fmt"
	"math"

	"github.com/vecmark/vecmark/transform"
	"github.com/vecmark/vecmark/units"
)

// ErrNonConvergence is returned when the descent cannot find a
// cost-decreasing step within its halving budget.
var ErrNonConvergence = errors.New("align: solver did not converge")

// descent budget per iteration
const maxStepHalvings = 10

// Config holds the solver knobs.
type Config struct {
	// MaxIterations bounds the gradient-descent iterations.
	MaxIterations int

	// RateDrop is the per-iteration decay factor on the descent rate.
	RateDrop float64

	// Tolerance is the relative angle change below which the descent
	// stops.
	Tolerance float64
}

// Defaults sets the standard solver knobs.
func (c *Config) Defaults() {
	c.MaxIterations = 50
	c.RateDrop = 0.95
	c.Tolerance = 1e-6
}

// cost is the RMS mismatch of the relative vectors A0-A1 and B0-B1
// under a rotation by th.
func cost(ax, ay, bx, by [2]float64, th float64) float64 {
	sin, cos := math.Sincos(th)
	dx := (ax[0]-ax[1])*cos - (ay[0]-ay[1])*sin - bx[0] + bx[1]
	dy := (ax[0]-ax[1])*sin + (ay[0]-ay[1])*cos - by[0] + by[1]
	return math.Sqrt(dx*dx + dy*dy)
}

// deriv is the derivative of the squared mismatch with respect to th.
func deriv(ax, ay, bx, by [2]float64, th float64) float64 {
	sin, cos := math.Sincos(th)
	dx := (ax[0]-ax[1])*cos - (ay[0]-ay[1])*sin - bx[0] + bx[1]
	ddx := -(ax[0]-ax[1])*sin - (ay[0]-ay[1])*cos
	dy := (ax[0]-ax[1])*sin + (ay[0]-ay[1])*cos - by[0] + by[1]
	ddy := (ax[0]-ax[1])*cos - (ay[0]-ay[1])*sin
	return 2*dx*ddx + 2*dy*ddy
}

// TwoPoint finds the rotation angle and translation aligning point
// pair A = {(ax[0], ay[0]), (ax[1], ay[1])} onto pair B in the
// least-squares sense, and returns them as a transform applying the
// rotation first and the translation second. A nil config uses
// [Config.Defaults].
func TwoPoint(ax, ay, bx, by [2]float32, cfg *Config) (*transform.Affine, error) {
	if cfg == nil {
		cfg = &Config{}
		cfg.Defaults()
	}
	fax := [2]float64{float64(ax[0]), float64(ax[1])}
	fay := [2]float64{float64(ay[0]), float64(ay[1])}
	fbx := [2]float64{float64(bx[0]), float64(bx[1])}
	fby := [2]float64{float64(by[0]), float64(by[1])}

	// coarse sweep at 1-degree resolution
	th := 0.0
	best := math.Inf(1)
	for i := 0; i < 360; i++ {
		cand := float64(i) * math.Pi / 180
		if c := cost(fax, fay, fbx, fby, cand); c < best {
			best = c
			th = cand
		}
	}

	if best >= 1e-7 {
		rate := math.Pi / 180
		for iter := 0; iter < cfg.MaxIterations; iter++ {
			cur := cost(fax, fay, fbx, fby, th)
			grad := deriv(fax, fay, fbx, fby, th)
			next := th
			descended := false
			for h := 0; h < maxStepHalvings; h++ {
				next = th - grad*rate
				if cost(fax, fay, fbx, fby, next) < cur {
					descended = true
					break
				}
				rate /= 2
			}
			if !descended {
				return nil, fmt.Errorf("%w: no descending step after %d halvings at angle %.6f rad",
					ErrNonConvergence, maxStepHalvings, th)
			}
			dth := math.Abs(grad * rate)
			th = next
			if math.Abs(dth/th) < cfg.Tolerance {
				break
			}
			rate *= cfg.RateDrop
		}
	}

	// back out the translation from the first correspondence
	sin, cos := math.Sincos(th)
	tx := fbx[0] - fax[0]*cos + fay[0]*sin
	ty := fby[0] - fax[0]*sin - fay[0]*cos

	aff := transform.Identity().
		Rotate(units.Deg(float32(th * 180 / math.Pi))).
		Translate(units.Scalar(float32(tx)), units.Scalar(float32(ty)))
	return aff, aff.Err()
}

/*
 * shape_test.go, part of ElliptiCBn.
 *
 * Copyright 2024 The ElliptiCBn Authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package ellipticbn

import (
	"math"
	"testing"

	v3 "github.com/harmslab/ElliptiCBn/v3"
)

func coordsOf(Te *testing.T, data []float64) *v3.Matrix {
	m, err := v3.NewMatrix(data)
	if err != nil {
		Te.Fatal(err)
	}
	return m
}

//TestShapeCircle checks that a perfect circle has aspect ratio ~1 and
//ellipticity ~0.
func TestShapeCircle(Te *testing.T) {
	shape, err := MeasureShape(coordsOf(Te, ringXYZ(12, 1.5, 0, 0, 0)))
	if err != nil {
		Te.Fatal(err)
	}
	if ar := shape.AspectRatio(); math.Abs(ar-1) > 0.01 {
		Te.Errorf("Circle aspect ratio %f, expected ~1", ar)
	}
	if e := shape.Ellipticity(); math.Abs(e) > 0.01 {
		Te.Errorf("Circle ellipticity %f, expected ~0", e)
	}
	if !shape.Pass(3) {
		Te.Error("A circle must pass the default filter")
	}
}

//TestShapeStretched stretches the same circle 4x along x and expects the
//filter to reject it.
func TestShapeStretched(Te *testing.T) {
	coords := ringXYZ(12, 1.5, 0, 0, 0)
	for i := 0; i < len(coords); i += 3 {
		coords[i] *= 4
	}
	shape, err := MeasureShape(coordsOf(Te, coords))
	if err != nil {
		Te.Fatal(err)
	}
	if ar := shape.AspectRatio(); ar <= 3 {
		Te.Errorf("4x stretched ring aspect ratio %f, expected > 3", ar)
	}
	if shape.Pass(3) {
		Te.Error("4x stretched ring must fail the default filter")
	}
	if e := shape.Ellipticity(); e < 0.5 {
		Te.Errorf("4x stretched ring ellipticity %f, expected well above 0.5", e)
	}
}

//TestShapeDegenerate checks that collinear and coincident point sets are
//rejected without dividing by zero.
func TestShapeDegenerate(Te *testing.T) {
	collinear := make([]float64, 0, 30)
	for i := 0; i < 10; i++ {
		collinear = append(collinear, float64(i)*1.5, 0, 0)
	}
	for name, data := range map[string][]float64{
		"collinear":  collinear,
		"coincident": {1, 2, 3, 1, 2, 3, 1, 2, 3, 1, 2, 3},
	} {
		shape, err := MeasureShape(coordsOf(Te, data))
		if err != nil {
			Te.Fatalf("%s: %v", name, err)
		}
		if !shape.Degenerate {
			Te.Errorf("%s point set not flagged degenerate", name)
		}
		if !math.IsInf(shape.AspectRatio(), 1) {
			Te.Errorf("%s aspect ratio should be +Inf, got %f", name, shape.AspectRatio())
		}
		if shape.Pass(1e12) {
			Te.Errorf("%s must fail any finite filter", name)
		}
	}
}

//TestShapePrincipalAxes checks the axis convention: the first axis of a
//stretched ring must point along the stretch, the third out of plane.
func TestShapePrincipalAxes(Te *testing.T) {
	coords := ringXYZ(12, 1.5, 0, 0, 0)
	for i := 0; i < len(coords); i += 3 {
		coords[i] *= 2
	}
	shape, err := MeasureShape(coordsOf(Te, coords))
	if err != nil {
		Te.Fatal(err)
	}
	if x := math.Abs(shape.Axes.At(0, 0)); x < 0.99 {
		Te.Errorf("First principal axis should be ~x, |x component| = %f", x)
	}
	if z := math.Abs(shape.Axes.At(2, 2)); z < 0.99 {
		Te.Errorf("Third principal axis should be ~z, |z component| = %f", z)
	}
	//unit vectors
	for i := 0; i < 3; i++ {
		norm := shape.Axes.VecView(i).Norm()
		if math.Abs(norm-1) > 0.001 {
			Te.Errorf("Axis %d not unit: norm %f", i, norm)
		}
	}
}

//TestEllipticityBounds checks 0 <= ellipticity < 1 over a family of
//increasingly squashed ellipses.
func TestEllipticityBounds(Te *testing.T) {
	prev := -1.0
	for _, squash := range []float64{1, 1.2, 1.5, 2, 3, 5, 10} {
		coords := ringXYZ(16, 1.5, 0, 0, 0)
		for i := 1; i < len(coords); i += 3 {
			coords[i] /= squash
		}
		shape, err := MeasureShape(coordsOf(Te, coords))
		if err != nil {
			Te.Fatal(err)
		}
		e := shape.Ellipticity()
		if e < 0 || e >= 1 {
			Te.Errorf("Squash %f: ellipticity %f out of [0,1)", squash, e)
		}
		if e < prev {
			Te.Errorf("Squash %f: ellipticity %f decreased (was %f)", squash, e, prev)
		}
		prev = e
	}
}

//TestFilterMonotonicity checks that raising the filter never rejects a
//previously accepted shape.
func TestFilterMonotonicity(Te *testing.T) {
	coords := ringXYZ(12, 1.5, 0, 0, 0)
	for i := 0; i < len(coords); i += 3 {
		coords[i] *= 2.5
	}
	shape, err := MeasureShape(coordsOf(Te, coords))
	if err != nil {
		Te.Fatal(err)
	}
	filters := []float64{0.5, 1, 2, 2.5, 3, 5, 10, 100}
	accepted := false
	for _, f := range filters {
		pass := shape.Pass(f)
		if accepted && !pass {
			Te.Errorf("Filter %f rejected a shape accepted at a lower filter", f)
		}
		if pass {
			accepted = true
		}
	}
}

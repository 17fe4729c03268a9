/*
 * shape.go, part of ElliptiCBn.
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

	v3 "github.com/harmslab/ElliptiCBn/v3"
)

//ShapeMetrics is the principal-component decomposition of a cycle's
//geometry. Spreads holds sigma1 >= sigma2 >= sigma3, the square roots of
//the moment tensor eigenvalues; Axes the corresponding unit eigenvectors,
//one per row. sigma1 and sigma2 span the plane of the cycle, sigma3
//captures the out-of-plane pucker.
type ShapeMetrics struct {
	Spreads  [3]float64
	Axes     *v3.Matrix
	Centroid *v3.Matrix
	//Degenerate marks a rank-deficient point set (collinear or
	//coincident), for which the aspect ratio is taken as infinite.
	Degenerate bool
}

//MeasureShape computes the principal components of the points in coords.
//An error here means the eigendecomposition itself failed, which for a
//well-formed moment tensor should not happen.
func MeasureShape(coords *v3.Matrix) (*ShapeMetrics, error) {
	centroid := Centroid(coords)
	moment := MomentTensor(coords)
	evecs, evals, err := v3.EigenWrap(moment, -1)
	if err != nil {
		return nil, errDecorate(&CError{msg: err.Error()}, "MeasureShape")
	}
	M := &ShapeMetrics{Axes: evecs, Centroid: centroid}
	for i, ev := range evals {
		if ev < 0 { //only roundoff can make a moment tensor eigenvalue negative
			ev = 0
		}
		M.Spreads[i] = math.Sqrt(ev)
	}
	if M.Spreads[1] <= appzero {
		M.Degenerate = true
	}
	return M, nil
}

//AspectRatio returns sigma1/sigma2, the in-plane elongation of the point
//set. For a degenerate point set it returns +Inf, which no filter accepts.
func (M *ShapeMetrics) AspectRatio() float64 {
	if M.Degenerate {
		return math.Inf(1)
	}
	return M.Spreads[0] / M.Spreads[1]
}

//Pass is true if the shape survives the aspect-ratio filter, i.e. if the
//candidate is not too elongated to be a plausible macrocycle.
func (M *ShapeMetrics) Pass(aspectRatioFilter float64) bool {
	return M.AspectRatio() <= aspectRatioFilter
}

//Ellipticity returns the ellipticity of the shape: 1 - sigma2/sigma1,
//which is 0 for a circular cycle and approaches 1 as the cycle elongates.
//The axis convention is the same as in AspectRatio, so any shape passing
//the filter has a finite, well-defined ellipticity.
func (M *ShapeMetrics) Ellipticity() float64 {
	if M.Spreads[0] <= appzero {
		return 0 //all points coincident; the shape filter rejects this anyway
	}
	return 1 - M.Spreads[1]/M.Spreads[0]
}

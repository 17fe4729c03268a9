/*
 * geometric.go, part of ElliptiCBn.
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
	"gonum.org/v1/gonum/mat"

	v3 "github.com/harmslab/ElliptiCBn/v3"
)

//appzero is the smallest positive number considered different from zero.
//Everything equal or smaller is taken as zero, to correct for floating
//point errors.
const appzero float64 = 0.0000001

//Centroid returns the geometric center of the points in geometry.
func Centroid(geometry *v3.Matrix) *v3.Matrix {
	n := geometry.NVecs()
	cen := v3.Zeros(1)
	for i := 0; i < n; i++ {
		cen.Add(cen.Dense, geometry.VecView(i).Dense)
	}
	cen.Scale(1.0/float64(n), cen.Dense)
	return cen
}

//Centrate returns a copy of in centered on its own centroid, plus the
//centroid itself. The input is not modified.
func Centrate(in *v3.Matrix) (*v3.Matrix, *v3.Matrix) {
	cen := Centroid(in)
	centered := v3.Zeros(in.NVecs())
	centered.SubVec(in, cen)
	return centered, cen
}

//MomentTensor returns the 3x3 moment tensor (the unnormalized covariance
//matrix) of the points in A, centered on their centroid.
func MomentTensor(A *v3.Matrix) *v3.Matrix {
	centered, _ := Centrate(A)
	moment := mat.NewDense(3, 3, nil)
	moment.Mul(centered.Dense.T(), centered.Dense)
	return v3.Dense2Matrix(moment)
}

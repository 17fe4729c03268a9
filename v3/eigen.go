/*
 * eigen.go, part of ElliptiCBn.
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

package v3

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

//EigenWrap wraps the gonum symmetric eigendecomposition in order to guarantee
//that the eigenvectors and eigenvalues are sorted by decreasing eigenvalue,
//and that the eigenvector matrix is right-handed. in must be a symmetric 3x3
//matrix (only the upper triangle is read). The eigenvectors are returned as
//the rows of the returned Matrix. If epsilon is negative, a default
//value is used to check orthonormality.
func EigenWrap(in *Matrix, epsilon float64) (*Matrix, []float64, error) {
	if epsilon < 0 {
		epsilon = appzero
	}
	r, c := in.Dims()
	if r != 3 || c != 3 {
		return nil, nil, Error{string(ErrEigen), []string{"EigenWrap"}, true}
	}
	sym := mat.NewSymDense(3, nil)
	for i := 0; i < 3; i++ {
		for j := i; j < 3; j++ {
			sym.SetSym(i, j, in.At(i, j))
		}
	}
	var eig mat.EigenSym
	if ok := eig.Factorize(sym, true); !ok {
		return nil, nil, Error{string(ErrEigen), []string{"EigenWrap"}, true}
	}
	ascvals := eig.Values(nil) //gonum returns the eigenvalues in ascending order
	var vecs mat.Dense
	eig.VectorsTo(&vecs) //eigenvectors are the columns, in the order of ascvals
	evals := make([]float64, 3)
	evecs := Zeros(3)
	for i := 0; i < 3; i++ {
		evals[i] = ascvals[2-i]
		for k := 0; k < 3; k++ {
			evecs.Set(i, k, vecs.At(k, 2-i))
		}
	}
	//The gonum symmetric solver should already give orthonormal vectors,
	//but it costs little to verify.
	for i := 0; i < 3; i++ {
		vectori := evecs.VecView(i)
		for j := i + 1; j < 3; j++ {
			vectorj := evecs.VecView(j)
			if math.Abs(vectori.Dot(vectorj)) > epsilon {
				reterr := Error{fmt.Sprintf("Eigenvectors %d and %d not orthogonal. Dot: %f", i, j, math.Abs(vectori.Dot(vectorj))), []string{"EigenWrap"}, true}
				return evecs, evals, reterr
			}
		}
	}
	//Checking and fixing the handedness of the matrix.
	if det(evecs) < 0 {
		evecs.Scale(-1, evecs.Dense)
	}
	return evecs, evals, nil
}

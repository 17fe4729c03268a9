/*
 * ellipticbn_test.go, part of ElliptiCBn.
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

//Helpers to build synthetic systems for the tests.

//ringXYZ returns the coordinates of n atoms evenly placed on a circle in
//the xy-plane, with consecutive atoms separated by bond Angstroms, at the
//given z and displaced by (dx,dy).
func ringXYZ(n int, bond, dx, dy, z float64) []float64 {
	radius := bond / (2 * math.Sin(math.Pi/float64(n)))
	coords := make([]float64, 0, n*3)
	for i := 0; i < n; i++ {
		t := 2 * math.Pi * float64(i) / float64(n)
		coords = append(coords, dx+radius*math.Cos(t), dy+radius*math.Sin(t), z)
	}
	return coords
}

//elongatedLoopXYZ returns a closed chain of carbons shaped like a stadium:
//two parallel rows at y=-1 and y=1, x spaced by 1.5, joined by one cap
//atom at each end. Every consecutive pair is within usual C-C cycle bond
//lengths while the loop as a whole is far from circular.
func elongatedLoopXYZ(perRow int) []float64 {
	coords := make([]float64, 0, (2*perRow+2)*3)
	last := 1.5 * float64(perRow-1)
	coords = append(coords, -1.1, 0, 0) //left cap
	for i := 0; i < perRow; i++ {
		coords = append(coords, 1.5*float64(i), 1, 0)
	}
	coords = append(coords, last+1.1, 0, 0) //right cap
	for i := perRow - 1; i >= 0; i-- {
		coords = append(coords, 1.5*float64(i), -1, 0)
	}
	return coords
}

//mustMatrix builds a coordinate matrix or panics; for test data only.
func mustMatrix(coords []float64) *v3.Matrix {
	m, err := v3.NewMatrix(coords)
	if err != nil {
		panic(err.Error())
	}
	return m
}

//system builds a System where every atom has the given symbol.
func system(symbol string, coords []float64) *System {
	m, err := v3.NewMatrix(coords)
	if err != nil {
		panic(err.Error())
	}
	atoms := make([]*Atom, m.NVecs())
	for i := range atoms {
		atoms[i] = &Atom{Symbol: symbol, ID: i}
	}
	return &System{Atoms: atoms, Coords: m}
}

//withAtom appends one atom of the given symbol to a copy of sys.
func withAtom(sys *System, symbol string, x, y, z float64) *System {
	n := sys.Len()
	coords := make([]float64, 0, (n+1)*3)
	for i := 0; i < n; i++ {
		coords = append(coords, sys.Coords.At(i, 0), sys.Coords.At(i, 1), sys.Coords.At(i, 2))
	}
	coords = append(coords, x, y, z)
	newsys := system("C", coords)
	for i := 0; i < n; i++ {
		newsys.Atoms[i].Symbol = sys.Atoms[i].Symbol
	}
	newsys.Atoms[n].Symbol = symbol
	return newsys
}

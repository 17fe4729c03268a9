/*
 * ellipticity.go, part of ElliptiCBn.
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

//EllipticityResult is the final record for one accepted cycle. It owns all
//its data, so it stays valid whatever happens to the parent System, and it
//serializes to a flat row.
type EllipticityResult struct {
	//Tag of the originating System, for merged summary tables.
	Tag string
	//Index of the originating molecule in the partition of the System.
	Molecule    int
	Ellipticity float64
	RingSize    int
	RingAtoms   []int //system atom indices, in cycle order.
	//Principal unit axes, by decreasing spread, anchored at Centroid.
	Axes     [3][3]float64
	Spreads  [3]float64
	Centroid [3]float64
}

//NewEllipticityResult derives the result record for the cycle ring of the
//system sys from its (already accepted) shape metrics. Pure function of
//its arguments.
func NewEllipticityResult(sys *System, ring *RingCandidate, shape *ShapeMetrics) *EllipticityResult {
	res := &EllipticityResult{
		Tag:         sys.Tag,
		Molecule:    ring.Molecule,
		Ellipticity: shape.Ellipticity(),
		RingSize:    ring.Size(),
		RingAtoms:   append([]int(nil), ring.Atoms...),
		Spreads:     shape.Spreads,
	}
	for i := 0; i < 3; i++ {
		res.Centroid[i] = shape.Centroid.At(0, i)
		for k := 0; k < 3; k++ {
			res.Axes[i][k] = shape.Axes.At(i, k)
		}
	}
	return res
}

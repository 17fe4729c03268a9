/*
 * atoms.go, part of ElliptiCBn.
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
	v3 "github.com/harmslab/ElliptiCBn/v3"
)

//Atom contains the atoms read except for the coordinates, which are kept
//in a separate matrix. Atoms are not modified after loading.
type Atom struct {
	Symbol string
	ID     int //position of the atom in the snapshot, starting from 0.
}

//Copy returns a copy of the Atom object.
func (A *Atom) Copy() *Atom {
	if A == nil {
		panic("Attempted to copy a nil atom")
	}
	return &Atom{Symbol: A.Symbol, ID: A.ID}
}

//System is one structure snapshot: the atoms and their coordinates, plus
//an opaque tag identifying the snapshot in batch runs. The tag is not a
//filesystem path.
type System struct {
	Atoms  []*Atom
	Coords *v3.Matrix
	Tag    string
}

//Len returns the number of atoms in the system.
func (S *System) Len() int {
	return len(S.Atoms)
}

//Atom returns the atom corresponding to the index i. Panics if out of range.
func (S *System) Atom(i int) *Atom {
	if i >= S.Len() {
		panic("System: Requested Atom out of bounds")
	}
	return S.Atoms[i]
}

//Dist returns the Euclidean distance between atoms i and j of the system.
func (S *System) Dist(i, j int) float64 {
	d := v3.Zeros(1)
	d.Sub(S.Coords.VecView(j), S.Coords.VecView(i))
	return d.Norm()
}

//Molecule is one connected component of the bond graph of a System: the
//indices, in ascending order, of the atoms that form it.
type Molecule []int

//RingCandidate is the central carbon cycle of one molecule. It owns a copy
//of the cycle coordinates, so later stages cannot alter the parent system.
type RingCandidate struct {
	Atoms    []int //system indices, in cycle order.
	Coords   *v3.Matrix
	Molecule int //index of the parent molecule in the partition.
}

//Size returns the number of atoms in the cycle.
func (R *RingCandidate) Size() int {
	return len(R.Atoms)
}

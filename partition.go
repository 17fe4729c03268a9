/*
 * partition.go, part of ElliptiCBn.
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
	"sort"

	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

//Partition splits the atoms of sys into molecules: any two atoms closer
//than bondDist are bonded, and a molecule is a connected component of the
//resulting graph. Atoms with no neighbor within bondDist form singleton
//molecules; they are kept, and dropped later by the cycle size bounds.
//The molecules, and the atom indices within each of them, come out in
//ascending order, so identical input always gives an identical partition.
func Partition(sys *System, bondDist float64) []Molecule {
	n := sys.Len()
	if n == 0 {
		return nil
	}
	g := simple.NewUndirectedGraph()
	for i := 0; i < n; i++ {
		g.AddNode(simple.Node(i))
	}
	//The O(N^2) pairwise test. Might get slow for very large systems;
	//it's really not thought for proteins or macromolecules.
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if sys.Dist(i, j) < bondDist {
				g.SetEdge(simple.Edge{F: simple.Node(i), T: simple.Node(j)})
			}
		}
	}
	comps := topo.ConnectedComponents(g)
	mols := make([]Molecule, 0, len(comps))
	for _, comp := range comps {
		mol := make(Molecule, 0, len(comp))
		for _, node := range comp {
			mol = append(mol, int(node.ID()))
		}
		sort.Ints(mol)
		mols = append(mols, mol)
	}
	sort.Slice(mols, func(i, j int) bool { return mols[i][0] < mols[j][0] })
	return mols
}

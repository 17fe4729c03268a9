/*
 * macrocycle.go, part of ElliptiCBn.
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

	v3 "github.com/harmslab/ElliptiCBn/v3"
)

//ExtractMacrocycle looks for the central carbon cycle of the molecule mol
//(the molIndex-th molecule of sys). It returns nil if the molecule has no
//cycle satisfying the parameters, which is an ordinary outcome: most
//molecules in a snapshot are solvent or guests, not hosts.
//
//The central carbons are those not within opts.OxygenDistCutoff of any
//oxygen of the same molecule (rim carbons sit next to the portal oxygens,
//backbone carbons don't). Bonds between them count only if their length
//lies in [opts.MinCCBondLength, opts.MaxCCBondLength]. Among the cycles of
//a deterministic cycle basis of that subgraph whose size lies in
//[opts.MinNumCarbons, opts.MaxNumCarbons], the largest is returned; ties go
//to the cycle with the lexicographically smallest canonical atom sequence.
func ExtractMacrocycle(sys *System, mol Molecule, molIndex int, opts *Options) *RingCandidate {
	carbons := centralCarbons(sys, mol, opts.OxygenDistCutoff)
	if len(carbons) < opts.MinNumCarbons {
		return nil
	}
	adj := ccBondGraph(sys, carbons, opts.MinCCBondLength, opts.MaxCCBondLength)
	var best []int
	for _, cycle := range cycleBasis(carbons, adj) {
		if len(cycle) < opts.MinNumCarbons || len(cycle) > opts.MaxNumCarbons {
			continue
		}
		cycle = canonicalCycle(cycle)
		if best == nil || len(cycle) > len(best) ||
			(len(cycle) == len(best) && lessIntSeq(cycle, best)) {
			best = cycle
		}
	}
	if best == nil {
		return nil
	}
	coords := v3.Zeros(len(best))
	coords.SomeVecs(sys.Coords, best)
	return &RingCandidate{Atoms: best, Coords: coords, Molecule: molIndex}
}

//centralCarbons returns, in ascending order, the carbons of mol that are
//at least oxygenDistCutoff away from every oxygen of mol.
func centralCarbons(sys *System, mol Molecule, oxygenDistCutoff float64) []int {
	oxygens := make([]int, 0, len(mol))
	for _, i := range mol {
		if sys.Atom(i).Symbol == "O" {
			oxygens = append(oxygens, i)
		}
	}
	carbons := make([]int, 0, len(mol))
	for _, i := range mol {
		if sys.Atom(i).Symbol != "C" {
			continue
		}
		buried := true
		for _, j := range oxygens {
			if sys.Dist(i, j) < oxygenDistCutoff {
				buried = false
				break
			}
		}
		if buried {
			carbons = append(carbons, i)
		}
	}
	return carbons
}

//ccBondGraph builds the adjacency lists of the carbon-carbon subgraph,
//keeping only bonds with length in [minLen, maxLen]. Neighbor lists come
//out sorted, which keeps the cycle search deterministic.
func ccBondGraph(sys *System, carbons []int, minLen, maxLen float64) map[int][]int {
	adj := make(map[int][]int, len(carbons))
	for a, i := range carbons {
		for _, j := range carbons[a+1:] {
			d := sys.Dist(i, j)
			if d >= minLen && d <= maxLen {
				adj[i] = append(adj[i], j)
				adj[j] = append(adj[j], i)
			}
		}
	}
	for i := range adj {
		sort.Ints(adj[i])
	}
	return adj
}

//cycleBasis returns a cycle basis of the graph given by nodes and adj: one
//cycle per non-tree edge of a depth-first spanning forest. The forest is
//grown from the lowest-index node of each component, visiting neighbors in
//ascending order, so the basis only depends on the input graph.
func cycleBasis(nodes []int, adj map[int][]int) [][]int {
	parent := make(map[int]int, len(nodes))
	depth := make(map[int]int, len(nodes))
	visited := make(map[int]bool, len(nodes))
	cycles := make([][]int, 0, 2)
	type backEdge struct{ u, v int }
	for _, root := range nodes {
		if visited[root] {
			continue
		}
		visited[root] = true
		parent[root] = -1
		depth[root] = 0
		stack := []int{root}
		backs := make([]backEdge, 0, 2)
		for len(stack) > 0 {
			u := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			for _, v := range adj[u] {
				if !visited[v] {
					visited[v] = true
					parent[v] = u
					depth[v] = depth[u] + 1
					stack = append(stack, v)
					continue
				}
				if v != parent[u] && u < v {
					backs = append(backs, backEdge{u, v})
				}
			}
		}
		//One basis cycle per non-tree edge of this component.
		sort.Slice(backs, func(i, j int) bool {
			if backs[i].u != backs[j].u {
				return backs[i].u < backs[j].u
			}
			return backs[i].v < backs[j].v
		})
		for _, be := range backs {
			cycles = append(cycles, treeCycle(be.u, be.v, parent, depth))
		}
	}
	return cycles
}

//treeCycle returns the cycle closed by the non-tree edge (u,v): the tree
//path from u up to the lowest common ancestor, then back down to v.
func treeCycle(u, v int, parent, depth map[int]int) []int {
	up := []int{u}
	down := []int{v}
	for depth[u] > depth[v] {
		u = parent[u]
		up = append(up, u)
	}
	for depth[v] > depth[u] {
		v = parent[v]
		down = append(down, v)
	}
	for u != v {
		u = parent[u]
		v = parent[v]
		up = append(up, u)
		down = append(down, v)
	}
	//up ends at the common ancestor, which down also contains as its last
	//element; walk down in reverse, skipping that duplicate.
	for i := len(down) - 2; i >= 0; i-- {
		up = append(up, down[i])
	}
	return up
}

//canonicalCycle rewrites cycle in its canonical form: starting at the
//smallest atom index and running towards the smaller of its two cycle
//neighbors. Rotations and reflections of the same cycle all map to the
//same sequence.
func canonicalCycle(cycle []int) []int {
	n := len(cycle)
	start := 0
	for i, v := range cycle {
		if v < cycle[start] {
			start = i
		}
	}
	next := cycle[(start+1)%n]
	prev := cycle[(start-1+n)%n]
	out := make([]int, 0, n)
	if next <= prev {
		for i := 0; i < n; i++ {
			out = append(out, cycle[(start+i)%n])
		}
	} else {
		for i := 0; i < n; i++ {
			out = append(out, cycle[(start-i+n)%n])
		}
	}
	return out
}

//lessIntSeq compares two int sequences lexicographically.
func lessIntSeq(a, b []int) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return len(a) < len(b)
}

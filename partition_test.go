/*
 * partition_test.go, part of ElliptiCBn.
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

import "testing"

//TestPartitionDisjoint checks that a 12-ring and a 6-atom fragment 20 A
//away end up in different molecules.
func TestPartitionDisjoint(Te *testing.T) {
	coords := append(ringXYZ(12, 1.5, 0, 0, 0), ringXYZ(6, 1.5, 20, 0, 0)...)
	sys := system("C", coords)
	mols := Partition(sys, 2.5)
	if len(mols) != 2 {
		Te.Fatalf("Expected 2 molecules, got %d", len(mols))
	}
	if len(mols[0]) != 12 || len(mols[1]) != 6 {
		Te.Errorf("Wrong molecule sizes: %d and %d", len(mols[0]), len(mols[1]))
	}
}

//TestPartitionCovers checks that the molecules are a partition: every atom
//in exactly one molecule.
func TestPartitionCovers(Te *testing.T) {
	coords := append(ringXYZ(12, 1.5, 0, 0, 0), 50, 50, 50) //a far-away singleton
	sys := system("C", coords)
	mols := Partition(sys, 2.5)
	seen := make(map[int]int)
	for _, mol := range mols {
		for _, i := range mol {
			seen[i]++
		}
	}
	if len(seen) != sys.Len() {
		Te.Errorf("Partition covers %d of %d atoms", len(seen), sys.Len())
	}
	for i, times := range seen {
		if times != 1 {
			Te.Errorf("Atom %d appears in %d molecules", i, times)
		}
	}
	if len(mols) != 2 {
		Te.Errorf("Expected ring + singleton, got %d molecules", len(mols))
	}
}

//TestPartitionBonded checks that two atoms within bondDist always share a
//molecule.
func TestPartitionBonded(Te *testing.T) {
	sys := system("C", []float64{0, 0, 0, 1.0, 0, 0, 2.0, 0, 0})
	mols := Partition(sys, 1.5)
	if len(mols) != 1 {
		Te.Errorf("Chain transitively bonded, expected 1 molecule, got %d", len(mols))
	}
}

//TestPartitionEmpty checks the degenerate input.
func TestPartitionEmpty(Te *testing.T) {
	sys := &System{}
	mols := Partition(sys, 2.5)
	if len(mols) != 0 {
		Te.Errorf("Empty input should yield an empty partition, got %d molecules", len(mols))
	}
}

//TestPartitionDeterminism checks that repeated runs on the same system
//give identical partitions.
func TestPartitionDeterminism(Te *testing.T) {
	coords := append(ringXYZ(12, 1.5, 0, 0, 0), ringXYZ(10, 1.5, 15, 3, -2)...)
	sys := system("C", coords)
	first := Partition(sys, 2.5)
	for run := 0; run < 5; run++ {
		again := Partition(sys, 2.5)
		if len(again) != len(first) {
			Te.Fatalf("Run %d: %d molecules vs %d", run, len(again), len(first))
		}
		for m := range first {
			if len(first[m]) != len(again[m]) {
				Te.Fatalf("Run %d: molecule %d changed size", run, m)
			}
			for k := range first[m] {
				if first[m][k] != again[m][k] {
					Te.Errorf("Run %d: molecule %d differs at %d", run, m, k)
				}
			}
		}
	}
}

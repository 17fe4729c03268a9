/*
 * pipeline_test.go, part of ElliptiCBn.
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
)

//TestAnalyzeCircle runs the whole pipeline on the perfect-circle scenario:
//12 carbons on a circle of ~2.9 A radius, 1.5 A apart, no oxygens.
func TestAnalyzeCircle(Te *testing.T) {
	sys := system("C", ringXYZ(12, 1.5, 0, 0, 0))
	sys.Tag = "circle"
	outcomes, err := Analyze(sys, nil)
	if err != nil {
		Te.Fatal(err)
	}
	if len(outcomes) != 1 {
		Te.Fatalf("Expected 1 molecule, got %d", len(outcomes))
	}
	out := outcomes[0]
	if out.Verdict != Accepted {
		Te.Fatalf("Expected accepted, got %v", out.Verdict)
	}
	res := out.Result
	if res.RingSize != 12 {
		Te.Errorf("Ring size %d, expected 12", res.RingSize)
	}
	if math.Abs(res.Ellipticity) > 0.01 {
		Te.Errorf("Circle ellipticity %f, expected ~0", res.Ellipticity)
	}
	if res.Tag != "circle" {
		Te.Errorf("Result not tagged with the system tag: %q", res.Tag)
	}
}

//TestAnalyzeElongated feeds a closed but stadium-shaped 20-carbon loop:
//the cycle is found but the shape filter must reject it, and the rejection
//must be distinguishable from a missing ring.
func TestAnalyzeElongated(Te *testing.T) {
	sys := system("C", elongatedLoopXYZ(9))
	outcomes, err := Analyze(sys, nil)
	if err != nil {
		Te.Fatal(err)
	}
	if len(outcomes) != 1 {
		Te.Fatalf("Expected 1 molecule, got %d", len(outcomes))
	}
	out := outcomes[0]
	if out.Verdict != ShapeRejected {
		Te.Fatalf("Expected shape rejection, got %v", out.Verdict)
	}
	if out.Ring == nil || out.Shape == nil {
		Te.Error("A shape rejection must keep the ring and its metrics for diagnostics")
	}
	if out.Result != nil {
		Te.Error("A rejected ring must not produce a result")
	}
	if len(Results(outcomes)) != 0 {
		Te.Error("Rejected ring leaked into the accepted results")
	}
}

//TestAnalyzeTwoMolecules mixes a host ring with a small fragment 20 A
//away: two molecules, one accepted, one without a ring.
func TestAnalyzeTwoMolecules(Te *testing.T) {
	coords := append(ringXYZ(12, 1.5, 0, 0, 0), ringXYZ(6, 1.5, 20, 0, 0)...)
	sys := system("C", coords)
	outcomes, err := Analyze(sys, nil)
	if err != nil {
		Te.Fatal(err)
	}
	if len(outcomes) != 2 {
		Te.Fatalf("Expected 2 molecules, got %d", len(outcomes))
	}
	if outcomes[0].Verdict != Accepted {
		Te.Errorf("12-ring: expected accepted, got %v", outcomes[0].Verdict)
	}
	if outcomes[1].Verdict != NoRingFound {
		Te.Errorf("6-ring fragment: expected no ring found, got %v", outcomes[1].Verdict)
	}
	if n := len(Results(outcomes)); n != 1 {
		Te.Errorf("Expected 1 result, got %d", n)
	}
}

//TestAnalyzeSolvent checks that isolated solvent-like molecules come out
//as NoRingFound, not as errors.
func TestAnalyzeSolvent(Te *testing.T) {
	sys := system("C", ringXYZ(12, 1.5, 0, 0, 0))
	sys = withAtom(sys, "O", 30, 0, 0)
	sys = withAtom(sys, "H", 30.96, 0, 0)
	sys = withAtom(sys, "H", 29.76, 0.93, 0)
	outcomes, err := Analyze(sys, nil)
	if err != nil {
		Te.Fatal(err)
	}
	if len(outcomes) != 2 {
		Te.Fatalf("Expected ring + water, got %d molecules", len(outcomes))
	}
	if outcomes[1].Verdict != NoRingFound {
		Te.Errorf("Water molecule: expected no ring found, got %v", outcomes[1].Verdict)
	}
}

//TestAnalyzeDeterminism runs the pipeline twice and expects bit-identical
//results.
func TestAnalyzeDeterminism(Te *testing.T) {
	coords := append(ringXYZ(12, 1.5, 0, 0, 0), ringXYZ(14, 1.5, 25, 1, 2)...)
	sys := system("C", coords)
	first, err := Analyze(sys, nil)
	if err != nil {
		Te.Fatal(err)
	}
	second, err := Analyze(sys, nil)
	if err != nil {
		Te.Fatal(err)
	}
	if len(first) != len(second) {
		Te.Fatalf("Outcome count changed between runs")
	}
	for i := range first {
		a, b := first[i], second[i]
		if a.Verdict != b.Verdict {
			Te.Fatalf("Molecule %d: verdict changed between runs", i)
		}
		if a.Verdict != Accepted {
			continue
		}
		if a.Result.Ellipticity != b.Result.Ellipticity {
			Te.Errorf("Molecule %d: ellipticity not bit-identical", i)
		}
		for k := range a.Result.RingAtoms {
			if a.Result.RingAtoms[k] != b.Result.RingAtoms[k] {
				Te.Errorf("Molecule %d: ring atoms differ at %d", i, k)
			}
		}
	}
}

//TestAnalyzeBadOptions checks that inconsistent parameters are caught
//before any geometry is touched.
func TestAnalyzeBadOptions(Te *testing.T) {
	sys := system("C", ringXYZ(12, 1.5, 0, 0, 0))
	opts := DefaultOptions()
	opts.BondDist = -1
	if _, err := Analyze(sys, opts); err == nil {
		Te.Error("Negative bond_dist should be an error")
	}
	opts = DefaultOptions()
	opts.MinNumCarbons = 30 //greater than MaxNumCarbons
	if _, err := Analyze(sys, opts); err == nil {
		Te.Error("min_num_carbons > max_num_carbons should be an error")
	}
}

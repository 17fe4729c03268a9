/*
 * pipeline.go, part of ElliptiCBn.
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

//Verdict says what the pipeline decided about one molecule.
type Verdict int

const (
	//Accepted: the molecule has a central cycle that survived the shape
	//filter; the outcome carries an EllipticityResult.
	Accepted Verdict = iota
	//NoRingFound: no cycle satisfying the parameters. The normal verdict
	//for solvent and guest molecules.
	NoRingFound
	//ShapeRejected: a cycle was found but its aspect ratio failed the
	//filter, or its geometry was degenerate.
	ShapeRejected
)

func (v Verdict) String() string {
	switch v {
	case Accepted:
		return "accepted"
	case NoRingFound:
		return "no ring found"
	case ShapeRejected:
		return "shape rejected"
	}
	return "unknown"
}

//Outcome is the per-molecule product of the pipeline. Ring and Shape are
//nil for NoRingFound; Result is non-nil only for Accepted.
type Outcome struct {
	Molecule int
	Verdict  Verdict
	Ring     *RingCandidate
	Shape    *ShapeMetrics
	Result   *EllipticityResult
}

//Analyze runs the whole pipeline on one snapshot: partition into
//molecules, central-cycle extraction, shape filter and ellipticity. It
//returns one Outcome per molecule, in molecule order. The error return is
//only for invalid options or a failed eigendecomposition; molecules
//without an acceptable cycle are reported through their Outcome.
func Analyze(sys *System, opts *Options) ([]Outcome, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	if err := opts.Validate(); err != nil {
		return nil, errDecorate(err, "Analyze")
	}
	mols := Partition(sys, opts.BondDist)
	outcomes := make([]Outcome, 0, len(mols))
	for mi, mol := range mols {
		out := Outcome{Molecule: mi}
		ring := ExtractMacrocycle(sys, mol, mi, opts)
		if ring == nil {
			out.Verdict = NoRingFound
			outcomes = append(outcomes, out)
			continue
		}
		out.Ring = ring
		shape, err := MeasureShape(ring.Coords)
		if err != nil {
			return nil, errDecorate(err, "Analyze")
		}
		out.Shape = shape
		if !shape.Pass(opts.AspectRatioFilter) {
			out.Verdict = ShapeRejected
			outcomes = append(outcomes, out)
			continue
		}
		out.Verdict = Accepted
		out.Result = NewEllipticityResult(sys, ring, shape)
		outcomes = append(outcomes, out)
	}
	return outcomes, nil
}

//Results filters the accepted results out of a slice of outcomes.
func Results(outcomes []Outcome) []*EllipticityResult {
	res := make([]*EllipticityResult, 0, len(outcomes))
	for _, out := range outcomes {
		if out.Verdict == Accepted {
			res = append(res, out.Result)
		}
	}
	return res
}

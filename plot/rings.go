/*
 * rings.go, part of ElliptiCBn.
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

//Package ellipplot renders accepted macrocycles: the cycle atoms projected
//on their principal plane, with the fitted ellipse on top.
package ellipplot

import (
	"fmt"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	ellipticbn "github.com/harmslab/ElliptiCBn"
)

func basicRingPlot(title string) *plot.Plot {
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = "PCA 1 (Å)"
	p.Y.Label.Text = "PCA 2 (Å)"
	p.Add(plotter.NewGrid())
	return p
}

//project returns the in-plane coordinates of the cycle atoms of res: each
//atom position relative to the cycle centroid, dotted with the first two
//principal axes.
func project(ring *ellipticbn.RingCandidate, res *ellipticbn.EllipticityResult) plotter.XYs {
	n := ring.Size()
	xys := make(plotter.XYs, n+1)
	for i := 0; i < n; i++ {
		var d [3]float64
		for k := 0; k < 3; k++ {
			d[k] = ring.Coords.At(i, k) - res.Centroid[k]
		}
		for k := 0; k < 3; k++ {
			xys[i].X += d[k] * res.Axes[0][k]
			xys[i].Y += d[k] * res.Axes[1][k]
		}
	}
	xys[n] = xys[0] //close the cycle when drawn as a line.
	return xys
}

//semiaxes returns the in-plane ellipse semiaxes matching the RMS extent of
//the cycle along its first two principal axes.
func semiaxes(res *ellipticbn.EllipticityResult) (float64, float64) {
	//An unnormalized spread sigma over n points on an ellipse semiaxis a
	//satisfies sigma = a*sqrt(n/2).
	scale := math.Sqrt(2.0 / float64(res.RingSize))
	return res.Spreads[0] * scale, res.Spreads[1] * scale
}

//ellipse samples the fitted ellipse.
func ellipse(res *ellipticbn.EllipticityResult, npoints int) plotter.XYs {
	a, b := semiaxes(res)
	xys := make(plotter.XYs, npoints+1)
	for i := 0; i <= npoints; i++ {
		t := 2 * math.Pi * float64(i) / float64(npoints)
		xys[i].X = a * math.Cos(t)
		xys[i].Y = b * math.Sin(t)
	}
	return xys
}

//axes returns the two in-plane principal axes as segments through the
//centroid, which projects to the origin.
func axes(res *ellipticbn.EllipticityResult) (plotter.XYs, plotter.XYs) {
	a, b := semiaxes(res)
	major := plotter.XYs{{X: -a, Y: 0}, {X: a, Y: 0}}
	minor := plotter.XYs{{X: 0, Y: -b}, {X: 0, Y: b}}
	return major, minor
}

//Rings plots every accepted cycle of a snapshot into the file plotname.
//The format is taken from the extension, as gonum/plot does. Snapshots
//with no accepted cycle yield an empty, labeled plot rather than nothing,
//so a batch always produces one image per input.
func Rings(outcomes []ellipticbn.Outcome, plotname string) error {
	p := basicRingPlot("Macrocycle ellipticity")
	ci := 0
	for _, out := range outcomes {
		if out.Verdict != ellipticbn.Accepted {
			continue
		}
		points := project(out.Ring, out.Result)
		sc, err := plotter.NewScatter(points[:len(points)-1])
		if err != nil {
			return err
		}
		sc.GlyphStyle.Radius = vg.Points(2.5)
		sc.GlyphStyle.Color = plotutil.Color(ci)
		ring, err := plotter.NewLine(points)
		if err != nil {
			return err
		}
		ring.LineStyle.Color = plotutil.Color(ci)
		fit, err := plotter.NewLine(ellipse(out.Result, 120))
		if err != nil {
			return err
		}
		fit.LineStyle.Color = plotutil.Color(ci)
		fit.LineStyle.Dashes = plotutil.Dashes(1)
		majorXY, minorXY := axes(out.Result)
		major, err := plotter.NewLine(majorXY)
		if err != nil {
			return err
		}
		minor, err := plotter.NewLine(minorXY)
		if err != nil {
			return err
		}
		major.LineStyle.Color = plotutil.Color(ci)
		major.LineStyle.Dashes = plotutil.Dashes(2)
		minor.LineStyle.Color = plotutil.Color(ci)
		minor.LineStyle.Dashes = plotutil.Dashes(2)
		p.Add(sc, ring, fit, major, minor)
		p.Legend.Add(fmt.Sprintf("molecule %d: %.3f", out.Molecule, out.Result.Ellipticity), sc)
		ci++
	}
	return p.Save(14*vg.Centimeter, 14*vg.Centimeter, plotname)
}

/*
 * report.go, part of ElliptiCBn.
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

//Package report serializes ellipticity results to tabular files. It only
//consumes the flat result records; the core pipeline knows nothing about
//the formats written here.
package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	ellipticbn "github.com/harmslab/ElliptiCBn"
)

//Header is the column layout of every table written by this package.
var Header = []string{
	"file", "molecule", "ellipticity", "ring_size", "ring_atoms",
	"pca_axis_1_x", "pca_axis_1_y", "pca_axis_1_z",
	"pca_axis_2_x", "pca_axis_2_y", "pca_axis_2_z",
	"pca_axis_3_x", "pca_axis_3_y", "pca_axis_3_z",
	"pca_spread_1", "pca_spread_2", "pca_spread_3",
}

//Row flattens one result into the Header columns. The ring atom indices
//are joined with spaces so the row stays a flat record.
func Row(res *ellipticbn.EllipticityResult) []string {
	atoms := make([]string, len(res.RingAtoms))
	for i, a := range res.RingAtoms {
		atoms[i] = strconv.Itoa(a)
	}
	row := []string{
		res.Tag,
		strconv.Itoa(res.Molecule),
		strconv.FormatFloat(res.Ellipticity, 'f', 6, 64),
		strconv.Itoa(res.RingSize),
		strings.Join(atoms, " "),
	}
	for i := 0; i < 3; i++ {
		for k := 0; k < 3; k++ {
			row = append(row, strconv.FormatFloat(res.Axes[i][k], 'f', 6, 64))
		}
	}
	for i := 0; i < 3; i++ {
		row = append(row, strconv.FormatFloat(res.Spreads[i], 'f', 6, 64))
	}
	return row
}

//WriteCSV writes the results as a CSV table with name filename.
func WriteCSV(filename string, results []*ellipticbn.EllipticityResult) error {
	out, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("report: can't create %s: %v", filename, err)
	}
	defer out.Close()
	w := csv.NewWriter(out)
	if err := w.Write(Header); err != nil {
		return fmt.Errorf("report: can't write to %s: %v", filename, err)
	}
	for _, res := range results {
		if err := w.Write(Row(res)); err != nil {
			return fmt.Errorf("report: can't write to %s: %v", filename, err)
		}
	}
	w.Flush()
	return w.Error()
}

//CheckOutput decides where the output file someFile goes and whether it
//may be written. A bare file name lands in outputDir; a name with any path
//component goes to the specified location. An existing file is an error
//unless overwrite is given, in which case it is removed.
func CheckOutput(someFile, outputDir string, overwrite bool) (string, error) {
	if filepath.Dir(someFile) == "." && filepath.Base(someFile) == someFile {
		someFile = filepath.Join(outputDir, someFile)
	}
	if _, err := os.Stat(someFile); err == nil {
		if !overwrite {
			return "", fmt.Errorf("output file '%s' already exists", someFile)
		}
		if err := os.Remove(someFile); err != nil {
			return "", fmt.Errorf("can't overwrite output file '%s': %v", someFile, err)
		}
	}
	return someFile, nil
}

//EnsureOutputDir creates outputDir if needed. An existing non-directory of
//that name is an error unless overwrite is given.
func EnsureOutputDir(outputDir string, overwrite bool) error {
	info, err := os.Stat(outputDir)
	if err != nil {
		return os.MkdirAll(outputDir, 0755)
	}
	if info.IsDir() {
		return nil
	}
	if !overwrite {
		return fmt.Errorf("output directory %s already exists but is not a directory", outputDir)
	}
	if err := os.Remove(outputDir); err != nil {
		return err
	}
	return os.MkdirAll(outputDir, 0755)
}

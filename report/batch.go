/*
 * batch.go, part of ElliptiCBn.
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

package report

import (
	"fmt"
	"log"
	"path/filepath"
	"sync"

	"github.com/google/uuid"

	ellipticbn "github.com/harmslab/ElliptiCBn"
	ellipplot "github.com/harmslab/ElliptiCBn/plot"
)

//FileResult is the outcome of one file of a batch run.
type FileResult struct {
	File     string
	Tag      string //opaque identifier attached to every result row of the file.
	System   *ellipticbn.System
	Outcomes []ellipticbn.Outcome
	Err      error //a load or analysis failure; only aborts this file.
}

//BatchOptions controls a RunAll invocation.
type BatchOptions struct {
	OutputDir   string
	SummaryFile string //merged table name for multi-file runs; .csv only.
	Overwrite   bool
	Plots       bool
}

//DefaultBatchOptions returns the defaults for RunAll.
func DefaultBatchOptions() *BatchOptions {
	return &BatchOptions{OutputDir: ".", SummaryFile: "summary.csv", Plots: true}
}

//RunAll runs the whole pipeline on each of the given XYZ files and writes
//one CSV (and, optionally, one plot) per file to bopts.OutputDir. With
//more than one file it also writes a merged summary table, only after
//every per-file run has finished. The per-file pipelines are independent
//and run concurrently; a failure in one file is recorded in its FileResult
//and does not stop the others. The returned error covers problems with the
//batch itself (no files, unusable output locations).
func RunAll(files []string, opts *ellipticbn.Options, bopts *BatchOptions) ([]FileResult, error) {
	if len(files) == 0 {
		return nil, fmt.Errorf("no file(s) specified")
	}
	if bopts == nil {
		bopts = DefaultBatchOptions()
	}
	if err := EnsureOutputDir(bopts.OutputDir, bopts.Overwrite); err != nil {
		return nil, err
	}
	var summaryFile string
	if len(files) > 1 {
		if filepath.Ext(bopts.SummaryFile) != ".csv" {
			return nil, fmt.Errorf("summary file %s must have a .csv extension", bopts.SummaryFile)
		}
		var err error
		summaryFile, err = CheckOutput(bopts.SummaryFile, bopts.OutputDir, bopts.Overwrite)
		if err != nil {
			return nil, err
		}
	}
	results := make([]FileResult, len(files))
	var wg sync.WaitGroup
	for i, name := range files {
		wg.Add(1)
		go func(i int, name string) {
			defer wg.Done()
			results[i] = runOne(name, opts)
		}(i, name)
	}
	wg.Wait() //all per-file runs join here, before anything is written.
	var all []*ellipticbn.EllipticityResult
	for _, fr := range results {
		if fr.Err != nil {
			log.Printf("%s: %v (file skipped)", fr.File, fr.Err)
			continue
		}
		logRejections(fr)
		base := filepath.Base(fr.File)
		csvFile, err := CheckOutput(base+".csv", bopts.OutputDir, bopts.Overwrite)
		if err != nil {
			return results, err
		}
		if err := WriteCSV(csvFile, ellipticbn.Results(fr.Outcomes)); err != nil {
			return results, err
		}
		if bopts.Plots {
			pngFile, err := CheckOutput(base+".png", bopts.OutputDir, bopts.Overwrite)
			if err != nil {
				return results, err
			}
			if err := ellipplot.Rings(fr.Outcomes, pngFile); err != nil {
				return results, err
			}
		}
		all = append(all, ellipticbn.Results(fr.Outcomes)...)
	}
	if len(files) > 1 {
		if err := WriteCSV(summaryFile, all); err != nil {
			return results, err
		}
	}
	return results, nil
}

//runOne is the per-file pipeline: load, tag, analyze. The result rows are
//tagged with the base file name; the uuid identifies the run itself.
func runOne(name string, opts *ellipticbn.Options) FileResult {
	fr := FileResult{File: name, Tag: uuid.NewString()}
	sys, err := ellipticbn.XYZRead(name)
	if err != nil {
		fr.Err = err
		return fr
	}
	sys.Tag = filepath.Base(name)
	fr.System = sys
	fr.Outcomes, fr.Err = ellipticbn.Analyze(sys, opts)
	return fr
}

//logRejections records the non-accepted molecules of a file, telling a
//missing ring apart from a rejected one.
func logRejections(fr FileResult) {
	for _, out := range fr.Outcomes {
		switch out.Verdict {
		case ellipticbn.NoRingFound:
			log.Printf("%s: molecule %d: no ring found", fr.File, out.Molecule)
		case ellipticbn.ShapeRejected:
			log.Printf("%s: molecule %d: shape rejected (aspect ratio %.2f)", fr.File, out.Molecule, out.Shape.AspectRatio())
		}
	}
}

/*
 * config.go, part of ElliptiCBn.
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
	"os"

	"gopkg.in/yaml.v3"
)

//Options holds the numeric parameters of the pipeline. All distances are
//in Angstroms.
type Options struct {
	//Any two atoms closer than BondDist are taken as bonded, and thus
	//part of a single molecule.
	BondDist float64 `yaml:"bond_dist"`
	//Candidate cycles with a PCA aspect ratio greater than
	//AspectRatioFilter are rejected. An aspect ratio of 1 corresponds to
	//a circular cycle; 10 would be long and skinny.
	AspectRatioFilter float64 `yaml:"aspect_ratio_filter"`
	//When selecting the central macrocycle, carbons closer than
	//OxygenDistCutoff to an oxygen are left out.
	OxygenDistCutoff float64 `yaml:"oxygen_dist_cutoff"`
	//Central cycles with fewer than MinNumCarbons or more than
	//MaxNumCarbons atoms are rejected.
	MinNumCarbons int `yaml:"min_num_carbons"`
	MaxNumCarbons int `yaml:"max_num_carbons"`
	//Carbon-carbon bonds are part of the cycle only if their length lies
	//in [MinCCBondLength, MaxCCBondLength].
	MinCCBondLength float64 `yaml:"min_cycle_cc_bond_length"`
	MaxCCBondLength float64 `yaml:"max_cycle_cc_bond_length"`
}

//DefaultOptions returns the default parameter set for cucurbiturils.
func DefaultOptions() *Options {
	return &Options{
		BondDist:          2.5,
		AspectRatioFilter: 3,
		OxygenDistCutoff:  2.9,
		MinNumCarbons:     10,
		MaxNumCarbons:     20,
		MinCCBondLength:   1.3,
		MaxCCBondLength:   1.7,
	}
}

//Validate checks that the options are usable.
func (O *Options) Validate() error {
	if O.BondDist <= 0 {
		return dataError("Options.Validate", "bond_dist must be positive, got %f", O.BondDist)
	}
	if O.AspectRatioFilter <= 0 {
		return dataError("Options.Validate", "aspect_ratio_filter must be positive, got %f", O.AspectRatioFilter)
	}
	if O.OxygenDistCutoff < 0 {
		return dataError("Options.Validate", "oxygen_dist_cutoff must not be negative, got %f", O.OxygenDistCutoff)
	}
	if O.MinNumCarbons <= 0 {
		return dataError("Options.Validate", "min_num_carbons must be positive, got %d", O.MinNumCarbons)
	}
	if O.MinNumCarbons > O.MaxNumCarbons {
		return dataError("Options.Validate", "min_num_carbons (%d) greater than max_num_carbons (%d)", O.MinNumCarbons, O.MaxNumCarbons)
	}
	if O.MinCCBondLength <= 0 {
		return dataError("Options.Validate", "min_cycle_cc_bond_length must be positive, got %f", O.MinCCBondLength)
	}
	if O.MinCCBondLength > O.MaxCCBondLength {
		return dataError("Options.Validate", "min_cycle_cc_bond_length (%f) greater than max_cycle_cc_bond_length (%f)", O.MinCCBondLength, O.MaxCCBondLength)
	}
	return nil
}

//LoadOptions reads a YAML parameter file, on top of the defaults: any field
//missing from the file keeps its default value.
func LoadOptions(filename string) (*Options, error) {
	O := DefaultOptions()
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, dataError("LoadOptions", "can't read parameter file %s: %v", filename, err)
	}
	if err := yaml.Unmarshal(data, O); err != nil {
		return nil, dataError("LoadOptions", "can't parse parameter file %s: %v", filename, err)
	}
	if err := O.Validate(); err != nil {
		return nil, errDecorate(err, "LoadOptions")
	}
	return O, nil
}

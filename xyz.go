/*
 * xyz.go, part of ElliptiCBn.
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
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"

	v3 "github.com/harmslab/ElliptiCBn/v3"
)

//XYZRead reads the XYZ file xyzname and returns the System it contains.
//Files ending in ".gz" are decompressed on the fly. The returned System
//carries an empty Tag; batch drivers are expected to set their own.
func XYZRead(xyzname string) (*System, error) {
	xyzfile, err := os.Open(xyzname)
	if err != nil {
		return nil, dataError("XYZRead", "can't open XYZ file: %v", err)
	}
	defer xyzfile.Close()
	var r io.Reader = xyzfile
	if strings.HasSuffix(xyzname, ".gz") {
		gz, err := gzip.NewReader(xyzfile)
		if err != nil {
			return nil, dataError("XYZRead", "can't decompress XYZ file %s: %v", xyzname, err)
		}
		defer gz.Close()
		r = gz
	}
	sys, err := XYZReadFrom(r)
	if err != nil {
		return nil, errDecorate(err, "XYZRead "+xyzname)
	}
	return sys, nil
}

//XYZReadFrom reads one XYZ-formatted snapshot from r: an atom count line,
//a comment line, and then one "symbol x y z" line per atom. Any malformed
//or missing line makes the whole snapshot unusable.
func XYZReadFrom(r io.Reader) (*System, error) {
	xyz := bufio.NewReader(r)
	line, err := xyz.ReadString('\n')
	if err != nil {
		return nil, dataError("XYZReadFrom", "ill formatted XYZ: missing atom count line")
	}
	natoms, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return nil, dataError("XYZReadFrom", "ill formatted XYZ: bad atom count line %q", strings.TrimSpace(line))
	}
	if natoms <= 0 {
		return nil, dataError("XYZReadFrom", "XYZ snapshot with no atoms")
	}
	if _, err := xyz.ReadString('\n'); err != nil {
		return nil, dataError("XYZReadFrom", "ill formatted XYZ: missing comment line")
	}
	atoms := make([]*Atom, natoms)
	coords := make([]float64, natoms*3)
	for i := 0; i < natoms; i++ {
		line, err = xyz.ReadString('\n')
		if err != nil && !(err == io.EOF && line != "") {
			return nil, dataError("XYZReadFrom", "ill formatted XYZ: %d atoms declared, %d found", natoms, i)
		}
		fields := strings.Fields(line)
		if len(fields) < 4 {
			return nil, dataError("XYZReadFrom", "line %d of the XYZ ill formed: %q", i+2, strings.TrimSpace(line))
		}
		if fields[0] == "" {
			return nil, dataError("XYZReadFrom", "line %d of the XYZ lacks an element label", i+2)
		}
		atoms[i] = &Atom{Symbol: fields[0], ID: i}
		for k := 0; k < 3; k++ {
			coords[i*3+k], err = strconv.ParseFloat(fields[k+1], 64)
			if err != nil {
				return nil, dataError("XYZReadFrom", "non-numeric coordinate %q at line %d of the XYZ", fields[k+1], i+2)
			}
		}
	}
	mcoords, err := v3.NewMatrix(coords)
	if err != nil {
		return nil, errDecorate(&CError{msg: err.Error()}, "XYZReadFrom")
	}
	return &System{Atoms: atoms, Coords: mcoords}, nil
}

//XYZWrite writes the system sys to an XYZ file with name xyzname, which
//will be created. If the file exists it will be overwritten.
func XYZWrite(xyzname string, sys *System) error {
	out, err := os.Create(xyzname)
	if err != nil {
		return dataError("XYZWrite", "can't create XYZ file: %v", err)
	}
	defer out.Close()
	fmt.Fprintf(out, "%-4d\n", sys.Len())
	fmt.Fprintf(out, "\n")
	for i, at := range sys.Atoms {
		_, err = fmt.Fprintf(out, "%-2s  %12.6f%12.6f%12.6f\n", at.Symbol, sys.Coords.At(i, 0), sys.Coords.At(i, 1), sys.Coords.At(i, 2))
		if err != nil {
			return dataError("XYZWrite", "can't write to XYZ file: %v", err)
		}
	}
	return nil
}

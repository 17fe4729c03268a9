/*
 * errors.go, part of ElliptiCBn.
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

import "fmt"

//Error is the error interface of the package. Errors can be decorated with
//the names of the callers they cross on their way up, and report whether
//they are critical for the snapshot being processed.
type Error interface {
	Error() string
	Decorate(string) []string //Decorate with the name of the calling function, return the decoration trail.
	Critical() bool
}

//CError is the concrete error type of the package.
type CError struct {
	msg  string
	deco []string
}

func (err *CError) Error() string { return err.msg }

//Decorate adds dec to the decoration trail of the error and returns the
//resulting trail.
func (err *CError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//Critical is true for every CError: anything recoverable in this package
//(no cycle found, a rejected cycle) is a value, not an error.
func (err *CError) Critical() bool { return true }

//dataError builds the Error for malformed or insufficient input. It aborts
//only the snapshot being loaded, never a whole batch.
func dataError(caller, format string, a ...interface{}) *CError {
	err := new(CError)
	err.msg = fmt.Sprintf(format, a...)
	err.Decorate(caller)
	return err
}

//errDecorate asserts that err implements Error, decorates it with the
//caller's name and returns it. Calling it with any other error type is a
//programming mistake, and panics.
func errDecorate(err error, caller string) error {
	err2, ok := err.(Error)
	if !ok {
		panic("errDecorate: Got an error of an unknown type: " + err.Error())
	}
	err2.Decorate(caller)
	return err2
}

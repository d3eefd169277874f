// seehuhn.de/go/fontinfo - read metadata from OpenType and TrueType fonts
// Copyright (C) 2023  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package parser

import "math"

// CheckUint16 verifies that v can be stored in a uint16 field.
// The field name is used in the error message.
func CheckUint16(field string, v int) error {
	if v < 0 || v > math.MaxUint16 {
		return &RangeError{Field: field, Value: int64(v), Max: math.MaxUint16}
	}
	return nil
}

// CheckUint32 verifies that v can be stored in a uint32 field.
// The field name is used in the error message.
func CheckUint32(field string, v int64) error {
	if v < 0 || v > math.MaxUint32 {
		return &RangeError{Field: field, Value: v, Max: math.MaxUint32}
	}
	return nil
}

// Checker collects the first range error found in a sequence of checks.
//
// A typical use is
//
//	var c parser.Checker
//	c.Uint16("UnitsPerEm", info.UnitsPerEm)
//	c.Uint32("MinMemType42", info.MinMemType42)
//	return c.Err()
type Checker struct {
	err error
}

// Uint16 checks a uint16 field, unless an earlier check has failed.
func (c *Checker) Uint16(field string, v int) {
	if c.err == nil {
		c.err = CheckUint16(field, v)
	}
}

// Uint32 checks a uint32 field, unless an earlier check has failed.
func (c *Checker) Uint32(field string, v int64) {
	if c.err == nil {
		c.err = CheckUint32(field, v)
	}
}

// Err returns the first error found, or nil.
func (c *Checker) Err() error {
	return c.err
}

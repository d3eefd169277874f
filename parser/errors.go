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

import (
	"errors"
	"strconv"
)

// InvalidFontError indicates a problem with the font file.
type InvalidFontError struct {
	SubSystem string
	Reason    string
}

func (err *InvalidFontError) Error() string {
	return err.SubSystem + ": " + err.Reason
}

// NotSupportedError indicates that a font file seems valid but uses a
// feature (typically a table version) which is not supported by this library.
type NotSupportedError struct {
	SubSystem string
	Feature   string
}

func (err *NotSupportedError) Error() string {
	return err.SubSystem + ": " + err.Feature + " not supported"
}

// RangeError indicates that a value does not fit into the unsigned
// integer type used for the corresponding field in the font file.
type RangeError struct {
	Field string
	Value int64
	Max   uint64
}

func (err *RangeError) Error() string {
	return err.Field + ": value " + strconv.FormatInt(err.Value, 10) +
		" outside range [0, " + strconv.FormatUint(err.Max, 10) + "]"
}

// IsFormatError returns true if err reports a malformed or unsupported font
// file, as opposed to an I/O problem or an out-of-range argument.
func IsFormatError(err error) bool {
	var e1 *InvalidFontError
	var e2 *NotSupportedError
	return errors.As(err, &e1) || errors.As(err, &e2)
}

// IsUnsupported returns true if the error is a NotSupportedError.
func IsUnsupported(err error) bool {
	var e *NotSupportedError
	return errors.As(err, &e)
}

// IsRangeError returns true if the error is a RangeError.
func IsRangeError(err error) bool {
	var e *RangeError
	return errors.As(err, &e)
}

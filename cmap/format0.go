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

package cmap

import (
	"seehuhn.de/go/fontinfo/glyph"
)

// Format0 represents a format 0 cmap subtable.
// Every single-byte code is mapped to a glyph index in the range 0-255.
//
// https://docs.microsoft.com/en-us/typography/opentype/spec/cmap#format-0-byte-encoding-table
type Format0 struct {
	Data [256]byte
}

func decodeFormat0(data []byte) (Subtable, error) {
	data = data[6:]
	if len(data) < 256 {
		return nil, errMalformedSubtable
	}

	res := &Format0{}
	copy(res.Data[:], data)

	return res, nil
}

// Lookup implements the [Subtable] interface.
func (cmap *Format0) Lookup(code uint32) glyph.ID {
	if code > 255 {
		return 0
	}
	return glyph.ID(cmap.Data[code])
}

// CodeRange implements the [Subtable] interface.
func (cmap *Format0) CodeRange() (low, high uint32) {
	first := true
	for c, gid := range cmap.Data {
		if gid == 0 {
			continue
		}
		if first {
			low = uint32(c)
			first = false
		}
		high = uint32(c)
	}
	return
}

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

import "seehuhn.de/go/fontinfo/glyph"

// Subtable represents a decoded cmap subtable.
//
// The concrete types are *Format0, *Format2, *Format4, *Format6,
// *Format10 and *Format12 (which also represents formats 8 and 13).
type Subtable interface {
	// Lookup returns the glyph index for the given character code.
	// If the code is not mapped, Lookup returns 0 (the ".notdef" glyph).
	Lookup(code uint32) glyph.ID

	// CodeRange returns the smallest and largest mapped character code.
	// If no codes are mapped, both values are 0.
	CodeRange() (low, high uint32)
}

// From the font files on my laptop, I extracted all cmap subtables
// and removed duplicates.  The following table is the result.
//
//    count | format |
//   -------+--------+-----------------------------------
//     1668 |    4   | Segment mapping to delta values
//      625 |    6   | Trimmed table mapping
//      554 |   12   | Segmented coverage
//      226 |    0   | Byte encoding table
//       54 |   14   | Unicode Variation Sequences
//       47 |    2   | High-byte mapping through table
//        2 |   10   | Trimmed array
//        1 |    8   | mixed 16-bit and 32-bit coverage
//        1 |   13   | Many-to-one range mappings

var decoders = map[uint16]func([]byte) (Subtable, error){
	0:  decodeFormat0,
	2:  decodeFormat2,
	4:  decodeFormat4,
	6:  decodeFormat6,
	8:  decodeFormat8,
	10: decodeFormat10,
	12: decodeFormat12,
	13: decodeFormat12,
}

func uint16At(data []byte, pos int) uint16 {
	return uint16(data[pos])<<8 | uint16(data[pos+1])
}

func uint32At(data []byte, pos int) uint32 {
	return uint32(data[pos])<<24 | uint32(data[pos+1])<<16 |
		uint32(data[pos+2])<<8 | uint32(data[pos+3])
}

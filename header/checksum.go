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

package header

import "encoding/binary"

// Checksum computes the checksum of an sfnt table.
// The data is interpreted as a sequence of big-endian uint32 values,
// padded with zeros to a multiple of four bytes.
func Checksum(data []byte) uint32 {
	var sum uint32
	for len(data) >= 4 {
		sum += binary.BigEndian.Uint32(data)
		data = data[4:]
	}
	if len(data) > 0 {
		var buf [4]byte
		copy(buf[:], data)
		sum += binary.BigEndian.Uint32(buf[:])
	}
	return sum
}

// headChecksum computes the checksum of a "head" table, ignoring the
// checksumAdjustment field at offset 8.
func headChecksum(data []byte) uint32 {
	sum := Checksum(data)
	if len(data) >= 12 {
		sum -= binary.BigEndian.Uint32(data[8:12])
	}
	return sum
}

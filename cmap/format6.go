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
	"seehuhn.de/go/fontinfo/parser"
)

// Format6 represents a format 6 cmap subtable.
// A single contiguous range of codes is mapped through a glyph ID array.
//
// https://docs.microsoft.com/en-us/typography/opentype/spec/cmap#format-6-trimmed-table-mapping
type Format6 struct {
	FirstCode    int
	GlyphIDArray []glyph.ID
}

func decodeFormat6(data []byte) (Subtable, error) {
	if len(data) < 10 {
		return nil, errMalformedSubtable
	}

	firstCode := int(data[6])<<8 | int(data[7])
	count := int(data[8])<<8 | int(data[9])

	// some fonts have an excess 0x0000 at the end of the table,
	// so only a lower bound on the length is checked
	if len(data) < 10+2*count {
		return nil, errMalformedSubtable
	}

	res := &Format6{
		FirstCode:    firstCode,
		GlyphIDArray: make([]glyph.ID, count),
	}
	for i := range res.GlyphIDArray {
		res.GlyphIDArray[i] = glyph.ID(uint16At(data, 10+2*i))
	}
	if err := res.Check(); err != nil {
		return nil, err
	}
	return res, nil
}

// Check verifies that all fields fit into the binary representation of the
// subtable.
func (cmap *Format6) Check() error {
	var c parser.Checker
	c.Uint16("cmap format 6 firstCode", cmap.FirstCode)
	c.Uint16("cmap format 6 entryCount", len(cmap.GlyphIDArray))
	if len(cmap.GlyphIDArray) > 0 {
		c.Uint16("cmap format 6 last code", cmap.FirstCode+len(cmap.GlyphIDArray)-1)
	}
	for _, gid := range cmap.GlyphIDArray {
		c.Uint16("cmap format 6 glyphIdArray", int(gid))
	}
	return c.Err()
}

// Lookup implements the [Subtable] interface.
func (cmap *Format6) Lookup(code uint32) glyph.ID {
	if int64(code) < int64(cmap.FirstCode) ||
		int64(code) >= int64(cmap.FirstCode)+int64(len(cmap.GlyphIDArray)) {
		return 0
	}
	return cmap.GlyphIDArray[int64(code)-int64(cmap.FirstCode)]
}

// CodeRange implements the [Subtable] interface.
func (cmap *Format6) CodeRange() (low, high uint32) {
	return trimmedRange(int64(cmap.FirstCode), cmap.GlyphIDArray)
}

// trimmedRange returns the first and last code with a non-zero glyph in a
// trimmed array starting at first.
func trimmedRange(first int64, gids []glyph.ID) (low, high uint32) {
	i := 0
	for i < len(gids) && gids[i] == 0 {
		i++
	}
	if i == len(gids) {
		return
	}
	low = uint32(first + int64(i))

	i = len(gids) - 1
	for gids[i] == 0 {
		i--
	}
	high = uint32(first + int64(i))
	return
}

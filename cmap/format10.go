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

// Format10 represents a format 10 cmap subtable.  This is the 32-bit
// version of [Format6].
//
// https://docs.microsoft.com/en-us/typography/opentype/spec/cmap#format-10-trimmed-array
type Format10 struct {
	StartCharCode int64
	GlyphIDArray  []glyph.ID
}

func decodeFormat10(data []byte) (Subtable, error) {
	if len(data) < 20 {
		return nil, errMalformedSubtable
	}
	startCharCode := uint32At(data, 12)
	numChars := uint32At(data, 16)
	if uint64(numChars) > uint64(len(data)-20)/2 {
		return nil, errMalformedSubtable
	}

	res := &Format10{
		StartCharCode: int64(startCharCode),
		GlyphIDArray:  make([]glyph.ID, numChars),
	}
	for i := range res.GlyphIDArray {
		res.GlyphIDArray[i] = glyph.ID(uint16At(data, 20+2*i))
	}
	if err := res.Check(); err != nil {
		return nil, err
	}
	return res, nil
}

// Check verifies that all fields fit into the binary representation of the
// subtable.
func (cmap *Format10) Check() error {
	var c parser.Checker
	c.Uint32("cmap format 10 startCharCode", cmap.StartCharCode)
	c.Uint32("cmap format 10 numChars", int64(len(cmap.GlyphIDArray)))
	if len(cmap.GlyphIDArray) > 0 {
		c.Uint32("cmap format 10 last code", cmap.StartCharCode+int64(len(cmap.GlyphIDArray))-1)
	}
	for _, gid := range cmap.GlyphIDArray {
		c.Uint16("cmap format 10 glyphs", int(gid))
	}
	return c.Err()
}

// Lookup implements the [Subtable] interface.
func (cmap *Format10) Lookup(code uint32) glyph.ID {
	c := int64(code)
	if c < cmap.StartCharCode || c >= cmap.StartCharCode+int64(len(cmap.GlyphIDArray)) {
		return 0
	}
	return cmap.GlyphIDArray[c-cmap.StartCharCode]
}

// CodeRange implements the [Subtable] interface.
func (cmap *Format10) CodeRange() (low, high uint32) {
	return trimmedRange(cmap.StartCharCode, cmap.GlyphIDArray)
}

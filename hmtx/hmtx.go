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

// Package hmtx reads the "hmtx" table of an sfnt file.
// https://docs.microsoft.com/en-us/typography/opentype/spec/hmtx
package hmtx

// The "hmtx" table stores NumOfLongHorMetrics pairs of advance width and
// left side bearing, followed by left side bearings for the remaining glyphs.
// Glyphs without an explicit advance width use the last width given.
// The value NumOfLongHorMetrics is stored in the "hhea" table, the number of
// glyphs in the "maxp" table.

import (
	"bytes"

	"seehuhn.de/go/postscript/funit"

	"seehuhn.de/go/fontinfo/glyph"
	"seehuhn.de/go/fontinfo/header"
	"seehuhn.de/go/fontinfo/parser"
)

// Info contains the advance widths and left side bearings of all glyphs.
type Info struct {
	Widths []funit.Int16
	LSBs   []funit.Int16
}

// Tag returns the table tag "hmtx".
func (*Info) Tag() header.Tag {
	return header.TagHmtx
}

// Decode decodes the "hmtx" table.
// The arguments numLong and numGlyphs are taken from the "hhea" and "maxp"
// tables, respectively.
func Decode(data []byte, numLong, numGlyphs int) (*Info, error) {
	if numGlyphs < 0 || numLong < 0 {
		panic("negative glyph count")
	}
	if numLong > numGlyphs {
		numLong = numGlyphs
	}
	if numLong == 0 && numGlyphs > 0 {
		return nil, &parser.InvalidFontError{
			SubSystem: "sfnt/hmtx",
			Reason:    "no advance widths",
		}
	}

	p := parser.New("hmtx", bytes.NewReader(data))
	long, err := p.ReadUint16s(2 * numLong)
	if err != nil {
		return nil, err
	}
	short, err := p.ReadUint16s(numGlyphs - numLong)
	if err != nil {
		return nil, err
	}

	info := &Info{
		Widths: make([]funit.Int16, numGlyphs),
		LSBs:   make([]funit.Int16, numGlyphs),
	}
	for i := 0; i < numLong; i++ {
		info.Widths[i] = funit.Int16(long[2*i])
		info.LSBs[i] = funit.Int16(long[2*i+1])
	}
	var last funit.Int16
	if numLong > 0 {
		last = info.Widths[numLong-1]
	}
	for i, lsb := range short {
		info.Widths[numLong+i] = last
		info.LSBs[numLong+i] = funit.Int16(lsb)
	}
	return info, nil
}

// NumGlyphs returns the number of glyphs described by the table.
func (info *Info) NumGlyphs() int {
	return len(info.Widths)
}

// GlyphWidth returns the advance width of the given glyph.
// If the glyph does not exist, 0 is returned.
func (info *Info) GlyphWidth(gid glyph.ID) funit.Int16 {
	if uint64(gid) >= uint64(len(info.Widths)) {
		return 0
	}
	return info.Widths[gid]
}

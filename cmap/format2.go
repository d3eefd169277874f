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

// Format2 represents a format 2 cmap subtable.  This format is used for
// the mixed 8/16-bit encodings of Chinese, Japanese and Korean fonts.
//
// https://docs.microsoft.com/en-us/typography/opentype/spec/cmap#format-2-high-byte-mapping-through-table
type Format2 struct {
	// Keys maps every high byte to an index into SubHeaders.
	// Index 0 is used for single-byte codes.
	Keys [256]uint16

	SubHeaders      []Format2SubHeader
	GlyphIndexArray []uint16
}

// Format2SubHeader describes the range of low bytes which are valid after
// a given high byte.
type Format2SubHeader struct {
	FirstCode  uint16
	EntryCount uint16
	IDDelta    uint16
	StartIndex int // position of the entry for FirstCode in GlyphIndexArray
}

func decodeFormat2(data []byte) (Subtable, error) {
	const keysStart = 6
	const subHeadersStart = keysStart + 2*256
	if len(data) < subHeadersStart+8 {
		return nil, errMalformedSubtable
	}

	res := &Format2{}
	numSubHeaders := 0
	for i := range res.Keys {
		key := uint16At(data, keysStart+2*i)
		if key%8 != 0 {
			return nil, errMalformedSubtable
		}
		res.Keys[i] = key / 8
		numSubHeaders = max(numSubHeaders, int(key/8)+1)
	}

	glyphsStart := subHeadersStart + 8*numSubHeaders
	if glyphsStart > len(data) {
		return nil, errMalformedSubtable
	}
	res.SubHeaders = make([]Format2SubHeader, numSubHeaders)
	for k := range res.SubHeaders {
		pos := subHeadersStart + 8*k
		firstCode := uint16At(data, pos)
		entryCount := uint16At(data, pos+2)
		if int(firstCode)+int(entryCount) > 256 {
			return nil, errMalformedSubtable
		}

		// idRangeOffset counts bytes from the location of the
		// idRangeOffset field itself.
		target := pos + 6 + int(uint16At(data, pos+6))
		if target < glyphsStart || (target-glyphsStart)%2 != 0 {
			if entryCount == 0 {
				target = glyphsStart
			} else {
				return nil, errMalformedSubtable
			}
		}

		res.SubHeaders[k] = Format2SubHeader{
			FirstCode:  firstCode,
			EntryCount: entryCount,
			IDDelta:    uint16At(data, pos+4),
			StartIndex: (target - glyphsStart) / 2,
		}
	}

	res.GlyphIndexArray = make([]uint16, (len(data)-glyphsStart)/2)
	for i := range res.GlyphIndexArray {
		res.GlyphIndexArray[i] = uint16At(data, glyphsStart+2*i)
	}

	return res, nil
}

// Lookup implements the [Subtable] interface.
func (cmap *Format2) Lookup(code uint32) glyph.ID {
	if code > 0xFFFF {
		return 0
	}

	var k uint16
	var low uint32
	if code < 256 {
		k = cmap.Keys[code]
		if k != 0 {
			// code is the first byte of a two-byte sequence
			return 0
		}
		low = code
	} else {
		high := (code >> 8) & 0xFF
		k = cmap.Keys[high]
		if k == 0 {
			return 0
		}
		low = code & 0xFF
	}
	if int(k) >= len(cmap.SubHeaders) {
		return 0
	}

	sh := &cmap.SubHeaders[k]
	first := uint32(sh.FirstCode)
	if low < first || low >= first+uint32(sh.EntryCount) {
		return 0
	}
	idx := sh.StartIndex + int(low-first)
	if idx >= len(cmap.GlyphIndexArray) {
		return 0
	}
	gid := cmap.GlyphIndexArray[idx]
	if gid == 0 {
		return 0
	}
	return glyph.ID(gid + sh.IDDelta)
}

// CodeRange implements the [Subtable] interface.
func (cmap *Format2) CodeRange() (low, high uint32) {
	first := true
	for code := uint32(0); code <= 0xFFFF; code++ {
		if cmap.Lookup(code) == 0 {
			continue
		}
		if first {
			low = code
			first = false
		}
		high = code
	}
	return
}

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
	"sort"

	"seehuhn.de/go/fontinfo/glyph"
)

// Format4 represents a format 4 cmap subtable.
//
// https://docs.microsoft.com/en-us/typography/opentype/spec/cmap#format-4-segment-mapping-to-delta-values
type Format4 struct {
	Segments     []Format4Segment // sorted by code
	GlyphIDArray []uint16
}

// Format4Segment describes a contiguous range of character codes
// in a format 4 subtable.
type Format4Segment struct {
	StartCode uint16
	EndCode   uint16
	IDDelta   uint16

	// Offset is the position of the entry for StartCode in GlyphIDArray,
	// or NoOffset if codes are mapped by adding IDDelta directly.
	Offset int
}

// NoOffset marks segments which do not use the glyph ID array.
const NoOffset = -1

func decodeFormat4(in []byte) (Subtable, error) {
	if len(in) < 16 {
		return nil, errMalformedSubtable
	}
	if len(in)%2 != 0 {
		in = in[:len(in)-1]
	}

	segCountX2 := int(in[6])<<8 | int(in[7])
	if segCountX2%2 != 0 || 4*segCountX2+16 > len(in) {
		return nil, errMalformedSubtable
	}
	segCount := segCountX2 / 2

	words := make([]uint16, 0, (len(in)-14)/2)
	for i := 14; i < len(in); i += 2 {
		words = append(words, uint16(in[i])<<8|uint16(in[i+1]))
	}
	endCode := words[:segCount]
	// reservedPad omitted
	startCode := words[segCount+1 : 2*segCount+1]
	idDelta := words[2*segCount+1 : 3*segCount+1]
	idRangeOffset := words[3*segCount+1 : 4*segCount+1]
	glyphIDArray := words[4*segCount+1:]

	res := &Format4{
		Segments:     make([]Format4Segment, 0, segCount),
		GlyphIDArray: glyphIDArray,
	}
	prevEnd := uint32(0)
	for k := 0; k < segCount; k++ {
		start := uint32(startCode[k])
		end := uint32(endCode[k]) + 1
		if start < prevEnd || end <= start {
			return nil, errMalformedSubtable
		}
		prevEnd = end

		seg := Format4Segment{
			StartCode: startCode[k],
			EndCode:   endCode[k],
			IDDelta:   idDelta[k],
			Offset:    NoOffset,
		}
		if idRangeOffset[k] != 0 {
			d := int(idRangeOffset[k])/2 - (segCount - k)
			if d < 0 {
				if start == 0xFFFF {
					// some fonts seem to have invalid data for the last segment
					continue
				}
				return nil, errMalformedSubtable
			}
			seg.Offset = d
		}
		res.Segments = append(res.Segments, seg)
	}
	return res, nil
}

// Lookup implements the [Subtable] interface.
func (cmap *Format4) Lookup(code uint32) glyph.ID {
	if code > 0xFFFF {
		return 0
	}
	c := uint16(code)

	idx := sort.Search(len(cmap.Segments), func(i int) bool {
		return cmap.Segments[i].EndCode >= c
	})
	if idx == len(cmap.Segments) || cmap.Segments[idx].StartCode > c {
		return 0
	}
	seg := &cmap.Segments[idx]

	if seg.Offset == NoOffset {
		return glyph.ID(c + seg.IDDelta)
	}
	pos := seg.Offset + int(c-seg.StartCode)
	if pos >= len(cmap.GlyphIDArray) {
		return 0
	}
	gid := cmap.GlyphIDArray[pos]
	if gid == 0 {
		return 0
	}
	return glyph.ID(gid + seg.IDDelta)
}

// CodeRange implements the [Subtable] interface.
func (cmap *Format4) CodeRange() (low, high uint32) {
	first := true
	for _, seg := range cmap.Segments {
		for c := uint32(seg.StartCode); c <= uint32(seg.EndCode); c++ {
			if cmap.Lookup(c) == 0 {
				continue
			}
			if first {
				low = c
				first = false
			}
			high = c
		}
	}
	return
}

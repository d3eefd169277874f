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

// Format12 represents a cmap subtable in format 8, 12 or 13.
// All three formats map 32-bit character codes using a sorted list of
// groups.  In formats 8 and 12 consecutive codes in a group are mapped to
// consecutive glyphs; in format 13 all codes of a group map to the same
// glyph.
//
// https://docs.microsoft.com/en-us/typography/opentype/spec/cmap#format-12-segmented-coverage
type Format12 struct {
	Format uint16 // 8, 12 or 13
	Groups []Group
}

// Group is a range of character codes in a [Format12] subtable.
type Group struct {
	StartCharCode uint32
	EndCharCode   uint32
	StartGlyphID  uint32
}

// IsManyToOne returns true for format 13 subtables.
func (cmap *Format12) IsManyToOne() bool {
	return cmap.Format == 13
}

// decodeFormat8 decodes a format 8 subtable.  The is32 bitmap is only needed
// to split a byte stream into character codes, so it is skipped here.
func decodeFormat8(data []byte) (Subtable, error) {
	const is32Size = 8192
	const groupsStart = 12 + is32Size + 4
	if len(data) < groupsStart {
		return nil, errMalformedSubtable
	}
	return decodeGroups(8, data, groupsStart)
}

func decodeFormat12(data []byte) (Subtable, error) {
	if len(data) < 16 {
		return nil, errMalformedSubtable
	}
	format := uint16At(data, 0)
	return decodeGroups(format, data, 16)
}

func decodeGroups(format uint16, data []byte, groupsStart int) (Subtable, error) {
	nGroups := uint32At(data, groupsStart-4)
	if uint64(nGroups) > uint64(len(data)-groupsStart)/12 {
		return nil, errMalformedSubtable
	}

	res := &Format12{
		Format: format,
		Groups: make([]Group, nGroups),
	}
	var prevEnd uint32
	for i := range res.Groups {
		base := groupsStart + 12*i
		g := Group{
			StartCharCode: uint32At(data, base),
			EndCharCode:   uint32At(data, base+4),
			StartGlyphID:  uint32At(data, base+8),
		}
		if (i > 0 && g.StartCharCode <= prevEnd) || g.EndCharCode < g.StartCharCode {
			return nil, errMalformedSubtable
		}
		prevEnd = g.EndCharCode
		res.Groups[i] = g
	}

	return res, nil
}

// Lookup implements the [Subtable] interface.
func (cmap *Format12) Lookup(code uint32) glyph.ID {
	idx := sort.Search(len(cmap.Groups), func(i int) bool {
		return cmap.Groups[i].EndCharCode >= code
	})
	if idx == len(cmap.Groups) || cmap.Groups[idx].StartCharCode > code {
		return 0
	}
	g := &cmap.Groups[idx]
	if cmap.IsManyToOne() {
		return glyph.ID(g.StartGlyphID)
	}
	return glyph.ID(g.StartGlyphID + (code - g.StartCharCode))
}

// CodeRange implements the [Subtable] interface.
func (cmap *Format12) CodeRange() (low, high uint32) {
	if len(cmap.Groups) == 0 {
		return 0, 0
	}
	return cmap.Groups[0].StartCharCode, cmap.Groups[len(cmap.Groups)-1].EndCharCode
}

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

// Package cmap reads "cmap" tables.
// https://docs.microsoft.com/en-us/typography/opentype/spec/cmap
package cmap

import (
	"slices"
	"sort"
	"strconv"

	"github.com/npillmayer/schuko/tracing"

	"seehuhn.de/go/fontinfo/header"
	"seehuhn.de/go/fontinfo/parser"
)

func tracer() tracing.Trace {
	return tracing.Select("fontinfo.cmap")
}

// Platform IDs used in cmap and name tables.
const (
	PlatformUnicode   = 0
	PlatformMacintosh = 1
	PlatformISO       = 2
	PlatformWindows   = 3
	PlatformCustom    = 4
)

// Key selects a subtable of a cmap table.
type Key struct {
	PlatformID uint16 // Platform ID.
	EncodingID uint16 // Platform-specific encoding ID.
	Language   uint16 // Only used for the Macintosh platform.
}

// Mapping is one decoded subtable of a cmap table.
type Mapping struct {
	Key
	Format   uint16
	Subtable Subtable
}

// Table contains all supported subtables of a cmap table,
// in the order in which the encoding records appear in the file.
type Table []Mapping

// Tag returns the table tag "cmap".
func (Table) Tag() header.Tag {
	return header.TagCmap
}

// Decode reads a "cmap" table and decodes all subtables.
//
// Subtables which use a format not supported by this library (for example
// format 14) are skipped.  A malformed subtable in a supported format makes
// the whole table invalid.
func Decode(data []byte) (Table, error) {
	const minLength = 6 // format, length and language fields

	if len(data) < 4 {
		return nil, errMalformedTable
	}
	version := uint16(data[0])<<8 | uint16(data[1])
	if version != 0 {
		return nil, &parser.NotSupportedError{
			SubSystem: "sfnt/cmap",
			Feature:   "cmap table version " + strconv.Itoa(int(version)),
		}
	}
	numTables := int(data[2])<<8 | int(data[3])
	if len(data) < 4+8*numTables {
		return nil, errMalformedTable
	}

	endOfHeader := uint32(4 + 8*numTables)
	endOfData := uint32(len(data))

	type seg struct {
		start, end uint32
	}
	var segs []seg
	decoded := make(map[uint32]Subtable)

	var res Table
	for i := 0; i < numTables; i++ {
		rec := data[4+8*i : 12+8*i]
		platformID := uint16(rec[0])<<8 | uint16(rec[1])
		encodingID := uint16(rec[2])<<8 | uint16(rec[3])
		o := uint32(rec[4])<<24 | uint32(rec[5])<<16 | uint32(rec[6])<<8 | uint32(rec[7])
		if o < endOfHeader || endOfData < minLength || o > endOfData-minLength {
			return nil, errMalformedTable
		}

		var language uint16
		var length uint32
		format := uint16(data[o])<<8 | uint16(data[o+1])
		switch format {
		case 0, 2, 4, 6:
			length = uint32(data[o+2])<<8 | uint32(data[o+3])
			language = uint16(data[o+4])<<8 | uint16(data[o+5])
		case 8, 10, 12, 13:
			if o > endOfData-12 {
				return nil, errMalformedTable
			}
			length = uint32(data[o+4])<<24 |
				uint32(data[o+5])<<16 |
				uint32(data[o+6])<<8 |
				uint32(data[o+7])
			language = uint16(data[o+10])<<8 | uint16(data[o+11])
		default:
			tracer().Debugf("cmap: skipping (%d,%d) subtable in format %d",
				platformID, encodingID, format)
			continue
		}
		if length < minLength || length > endOfData-o {
			return nil, errMalformedTable
		}

		if platformID != PlatformMacintosh {
			language = 0
		}

		// check that subtables are either disjoint or identical
		idx := sort.Search(len(segs), func(i int) bool {
			return o <= segs[i].start
		})
		if idx == len(segs) || o != segs[idx].start {
			if idx > 0 && o < segs[idx-1].end ||
				idx < len(segs) && o+length > segs[idx].start {
				return nil, errMalformedTable
			}
			segs = slices.Insert(segs, idx, seg{o, o + length})
		}

		sub, seen := decoded[o]
		if !seen {
			var err error
			sub, err = decoders[format](data[o : o+length])
			if err != nil {
				return nil, err
			}
			decoded[o] = sub
		}

		res = append(res, Mapping{
			Key: Key{
				PlatformID: platformID,
				EncodingID: encodingID,
				Language:   language,
			},
			Format:   format,
			Subtable: sub,
		})
	}

	return res, nil
}

// Get returns the subtable for the given key, or nil if the key is not
// present.
func (t Table) Get(key Key) Subtable {
	for _, m := range t {
		if m.Key == key {
			return m.Subtable
		}
	}
	return nil
}

// GetNoLang returns the first subtable with the given platform and
// encoding, independent of the language.
func (t Table) GetNoLang(platformID, encodingID uint16) Subtable {
	if m := t.find(platformID, encodingID); m != nil {
		return m.Subtable
	}
	return nil
}

func (t Table) find(platformID, encodingID uint16) *Mapping {
	for i := range t {
		if t[i].PlatformID == platformID && t[i].EncodingID == encodingID {
			return &t[i]
		}
	}
	return nil
}

var (
	errMalformedTable = &parser.InvalidFontError{
		SubSystem: "sfnt/cmap",
		Reason:    "malformed table",
	}
	errMalformedSubtable = &parser.InvalidFontError{
		SubSystem: "sfnt/cmap",
		Reason:    "malformed subtable",
	}
)

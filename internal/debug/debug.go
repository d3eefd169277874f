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

// Package debug builds sfnt files for use in unit tests.
package debug

import (
	"bytes"
	"encoding/binary"
	"math/bits"
	"sort"

	"seehuhn.de/go/fontinfo/header"
)

// MakeFont returns an sfnt file containing the given tables.
// Tables are written in the recommended order, with the directory
// records sorted by tag.  Tables where the data is nil are not written,
// use a zero-length slice to write an empty table.
//
// If a "head" table is present, a copy with an updated checksum
// adjustment is written.  The data in the map is not modified.
func MakeFont(scalerType uint32, tables map[header.Tag][]byte) []byte {
	var tags []header.Tag
	for tag, data := range tables {
		if data != nil {
			tags = append(tags, tag)
		}
	}
	numTables := len(tags)

	sort.Slice(tags, func(i, j int) bool {
		iPrio := ttTableOrder[tags[i]]
		jPrio := ttTableOrder[tags[j]]
		if iPrio != jPrio {
			return iPrio > jPrio
		}
		return bytes.Compare(tags[i][:], tags[j][:]) < 0
	})

	bodies := make(map[header.Tag][]byte, numTables)
	for _, tag := range tags {
		bodies[tag] = tables[tag]
	}
	headData, hasHead := bodies[header.TagHead]
	if hasHead && len(headData) >= 12 {
		headData = bytes.Clone(headData)
		binary.BigEndian.PutUint32(headData[8:12], 0)
		bodies[header.TagHead] = headData
	}

	entrySelector := max(bits.Len(uint(numTables))-1, 0)
	hdr := &offsets{
		ScalerType:    scalerType,
		NumTables:     uint16(numTables),
		SearchRange:   uint16(1 << (entrySelector + 4)),
		EntrySelector: uint16(entrySelector),
		RangeShift:    uint16(16*numTables - 1<<(entrySelector+4)),
	}
	if numTables == 0 {
		hdr.SearchRange = 0
		hdr.RangeShift = 0
	}

	var totalSum uint32
	offset := uint32(12 + 16*numTables)
	records := make([]rawRecord, numTables)
	for i, tag := range tags {
		body := bodies[tag]
		length := uint32(len(body))
		checksum := header.Checksum(body)

		records[i] = rawRecord{
			Tag:      tag,
			CheckSum: checksum,
			Offset:   offset,
			Length:   length,
		}

		totalSum += checksum
		offset += 4 * ((length + 3) / 4)
	}
	sort.Slice(records, func(i, j int) bool {
		return bytes.Compare(records[i].Tag[:], records[j].Tag[:]) < 0
	})

	buf := &bytes.Buffer{}
	_ = binary.Write(buf, binary.BigEndian, hdr)
	_ = binary.Write(buf, binary.BigEndian, records)
	totalSum += header.Checksum(buf.Bytes())

	if hasHead && len(headData) >= 12 {
		binary.BigEndian.PutUint32(headData[8:12], 0xB1B0AFBA-totalSum)
	}

	var pad [3]byte
	for _, tag := range tags {
		body := bodies[tag]
		buf.Write(body)
		if k := len(body) % 4; k != 0 {
			buf.Write(pad[:4-k])
		}
	}
	return buf.Bytes()
}

// Tables extracts all tables from an sfnt file.
// The result can be modified and passed to MakeFont, to create
// variants of an existing font.
func Tables(data []byte) (uint32, map[header.Tag][]byte, error) {
	r := bytes.NewReader(data)
	info, err := header.Read(r)
	if err != nil {
		return 0, nil, err
	}
	tables := make(map[header.Tag][]byte, len(info.Toc))
	for tag := range info.Toc {
		body, err := info.ReadTableBytes(r, tag)
		if err != nil {
			return 0, nil, err
		}
		tables[tag] = body
	}
	return info.ScalerType, tables, nil
}

type offsets struct {
	ScalerType    uint32
	NumTables     uint16
	SearchRange   uint16
	EntrySelector uint16
	RangeShift    uint16
}

type rawRecord struct {
	Tag      header.Tag
	CheckSum uint32
	Offset   uint32
	Length   uint32
}

// https://docs.microsoft.com/en-us/typography/opentype/spec/recom#optimized-table-ordering
var ttTableOrder = map[header.Tag]int{
	header.MakeTag("head"): 95,
	header.MakeTag("hhea"): 90,
	header.MakeTag("maxp"): 85,
	header.MakeTag("OS/2"): 80,
	header.MakeTag("hmtx"): 75,
	header.MakeTag("LTSH"): 70,
	header.MakeTag("VDMX"): 65,
	header.MakeTag("hdmx"): 60,
	header.MakeTag("cmap"): 55,
	header.MakeTag("fpgm"): 50,
	header.MakeTag("prep"): 45,
	header.MakeTag("cvt "): 40,
	header.MakeTag("loca"): 35,
	header.MakeTag("glyf"): 30,
	header.MakeTag("kern"): 25,
	header.MakeTag("name"): 20,
	header.MakeTag("post"): 15,
	header.MakeTag("gasp"): 10,
	header.MakeTag("DSIG"): 5,
}

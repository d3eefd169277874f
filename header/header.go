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

// Package header reads the table directory at the start of an sfnt file.
//
// https://docs.microsoft.com/en-us/typography/opentype/spec/otff#table-directory
package header

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"seehuhn.de/go/fontinfo/parser"
)

// Possible values for the ScalerType field in an sfnt file.
const (
	ScalerTypeTrueType = 0x00010000
	ScalerTypeCFF      = 0x4F54544F // "OTTO"
)

// The largest number of tables accepted in a table directory.
// Real fonts have a few dozen tables at most.
const maxTables = 280

// Info contains the information from the table directory of an sfnt file.
type Info struct {
	ScalerType    uint32
	SearchRange   uint16
	EntrySelector uint16
	RangeShift    uint16

	Toc map[Tag]Record
}

// Record contains information about a single sfnt table.
type Record struct {
	Checksum uint32
	Offset   uint32
	Length   uint32
}

// Read reads the table directory of an sfnt file.
// The contents of the tables are not read.
func Read(r io.ReaderAt) (*Info, error) {
	var buf [12]byte
	_, err := r.ReadAt(buf[:4], 0)
	if err != nil {
		return nil, truncated(err)
	}
	scalerType := binary.BigEndian.Uint32(buf[:4])
	if scalerType != ScalerTypeTrueType && scalerType != ScalerTypeCFF {
		return nil, &parser.InvalidFontError{
			SubSystem: "sfnt/header",
			Reason:    fmt.Sprintf("invalid scaler type 0x%08X", scalerType),
		}
	}

	_, err = r.ReadAt(buf[4:], 4)
	if err != nil {
		return nil, truncated(err)
	}
	numTables := int(binary.BigEndian.Uint16(buf[4:6]))
	if numTables > maxTables {
		return nil, &parser.InvalidFontError{
			SubSystem: "sfnt/header",
			Reason:    fmt.Sprintf("too many tables (%d)", numTables),
		}
	}

	info := &Info{
		ScalerType:    scalerType,
		SearchRange:   binary.BigEndian.Uint16(buf[6:8]),
		EntrySelector: binary.BigEndian.Uint16(buf[8:10]),
		RangeShift:    binary.BigEndian.Uint16(buf[10:12]),
		Toc:           make(map[Tag]Record, numTables),
	}
	if numTables == 0 {
		return info, nil
	}

	recs := make([]byte, 16*numTables)
	_, err = r.ReadAt(recs, 12)
	if err != nil {
		return nil, truncated(err)
	}
	for i := 0; i < numTables; i++ {
		rec := recs[16*i : 16*i+16]
		var tag Tag
		copy(tag[:], rec[:4])
		if !tag.IsValid() {
			return nil, &parser.InvalidFontError{
				SubSystem: "sfnt/header",
				Reason:    fmt.Sprintf("malformed table tag %q", tag[:]),
			}
		}
		if _, dup := info.Toc[tag]; dup {
			return nil, &parser.InvalidFontError{
				SubSystem: "sfnt/header",
				Reason:    fmt.Sprintf("duplicate table %q", tag),
			}
		}
		info.Toc[tag] = Record{
			Checksum: binary.BigEndian.Uint32(rec[4:8]),
			Offset:   binary.BigEndian.Uint32(rec[8:12]),
			Length:   binary.BigEndian.Uint32(rec[12:16]),
		}
	}

	return info, nil
}

func truncated(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return &parser.InvalidFontError{
			SubSystem: "sfnt/header",
			Reason:    "file too short for table directory",
		}
	}
	return err
}

// IsCFF returns true if the font uses CFF-based glyph outlines.
func (info *Info) IsCFF() bool {
	return info.ScalerType == ScalerTypeCFF
}

// Kind returns a human readable description of the font type.
func (info *Info) Kind() string {
	if info.IsCFF() {
		return "CFF"
	}
	return "TrueType"
}

// Has returns true if all the given tables are present in the font.
func (info *Info) Has(tags ...Tag) bool {
	for _, tag := range tags {
		if _, ok := info.Toc[tag]; !ok {
			return false
		}
	}
	return true
}

// Tags returns the tags of all tables in the font, in the order in which
// the table bodies appear in the file.
func (info *Info) Tags() []Tag {
	tags := make([]Tag, 0, len(info.Toc))
	for tag := range info.Toc {
		tags = append(tags, tag)
	}
	sort.Slice(tags, func(i, j int) bool {
		oi := info.Toc[tags[i]].Offset
		oj := info.Toc[tags[j]].Offset
		if oi != oj {
			return oi < oj
		}
		return tags[i].String() < tags[j].String()
	})
	return tags
}

var requiredTables = []Tag{
	TagCmap, TagHead, TagHhea, TagHmtx, TagMaxp, TagName, TagOS2, TagPost,
}

// CheckValidity verifies that all tables required for a conformant font
// are present.  For TrueType fonts these are the tables in requiredTables
// together with "glyf" and "loca", for CFF fonts a "CFF " or "CFF2" table
// is needed instead.
func (info *Info) CheckValidity() error {
	var missing []string
	for _, tag := range requiredTables {
		if !info.Has(tag) {
			missing = append(missing, tag.String())
		}
	}
	if info.IsCFF() {
		if !info.Has(TagCFF) && !info.Has(TagCFF2) {
			missing = append(missing, TagCFF.String())
		}
	} else {
		for _, tag := range []Tag{TagGlyf, TagLoca} {
			if !info.Has(tag) {
				missing = append(missing, tag.String())
			}
		}
	}
	if len(missing) > 0 {
		return &parser.InvalidFontError{
			SubSystem: "sfnt/header",
			Reason: info.Kind() + " font is missing tables: " +
				strings.Join(missing, ", "),
		}
	}
	return nil
}

// ErrNoTable indicates that a required table is missing from a font.
type ErrNoTable struct {
	Tag Tag
}

func (err *ErrNoTable) Error() string {
	return fmt.Sprintf("sfnt: missing %q table", err.Tag)
}

// IsMissing returns true if err indicates a missing sfnt table.
func IsMissing(err error) bool {
	var e *ErrNoTable
	return errors.As(err, &e)
}

// Find returns the directory record for the given table.
func (info *Info) Find(tag Tag) (Record, error) {
	rec, ok := info.Toc[tag]
	if !ok {
		return rec, &ErrNoTable{Tag: tag}
	}
	return rec, nil
}

// ReadTableBytes reads the body of a table.
// The reader r must be the one used to read the table directory.
func (info *Info) ReadTableBytes(r io.ReaderAt, tag Tag) ([]byte, error) {
	rec, err := info.Find(tag)
	if err != nil {
		return nil, err
	}
	if rec.Length == 0 {
		return []byte{}, nil
	}

	end := int64(rec.Offset) + int64(rec.Length)
	size, sizeKnown := readerSize(r)
	if sizeKnown && end > size {
		return nil, beyondEOF(tag)
	}

	var res []byte
	if sizeKnown {
		res = make([]byte, rec.Length)
		var n int
		n, err = r.ReadAt(res, int64(rec.Offset))
		if n == len(res) {
			err = nil
		}
	} else {
		// grows with the data actually present
		res, err = io.ReadAll(io.NewSectionReader(r, int64(rec.Offset), int64(rec.Length)))
		if err == nil && uint32(len(res)) < rec.Length {
			err = io.EOF
		}
	}
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, beyondEOF(tag)
		}
		return nil, err
	}
	return res, nil
}

func beyondEOF(tag Tag) error {
	return &parser.InvalidFontError{
		SubSystem: "sfnt/header",
		Reason:    fmt.Sprintf("table %q extends beyond end of file", tag),
	}
}

// readerSize returns the total length of r, if r can report it.
// This covers *bytes.Reader, *io.SectionReader and *mmap.ReaderAt.
func readerSize(r io.ReaderAt) (int64, bool) {
	switch r := r.(type) {
	case interface{ Size() int64 }:
		return r.Size(), true
	case interface{ Len() int }:
		return int64(r.Len()), true
	}
	return 0, false
}

// VerifyChecksum reads the given table and compares its checksum with the
// value stored in the table directory.  For the "head" table the
// checksumAdjustment field is ignored.
func (info *Info) VerifyChecksum(r io.ReaderAt, tag Tag) error {
	data, err := info.ReadTableBytes(r, tag)
	if err != nil {
		return err
	}
	var sum uint32
	if tag == TagHead {
		sum = headChecksum(data)
	} else {
		sum = Checksum(data)
	}
	if want := info.Toc[tag].Checksum; sum != want {
		return &parser.InvalidFontError{
			SubSystem: "sfnt/header",
			Reason: fmt.Sprintf("checksum mismatch for %q: 0x%08X != 0x%08X",
				tag, sum, want),
		}
	}
	return nil
}

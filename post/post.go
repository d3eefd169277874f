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

// Package post reads the "post" table of an sfnt file.
// https://docs.microsoft.com/en-us/typography/opentype/spec/post
package post

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"seehuhn.de/go/postscript/funit"

	"seehuhn.de/go/fontinfo/header"
	"seehuhn.de/go/fontinfo/parser"
)

// Version is the version number of a "post" table.
type Version uint32

// The "post" table versions understood by this package.
const (
	Version1  Version = 0x00010000
	Version2  Version = 0x00020000
	Version25 Version = 0x00025000
	Version3  Version = 0x00030000
	Version4  Version = 0x00040000
)

func (v Version) String() string {
	return fmt.Sprintf("%d.%d", v>>16, (v>>12)&0xF)
}

// Info contains information from the "post" table.
type Info struct {
	Version Version

	ItalicAngle        float64     // Italic angle in degrees
	UnderlinePosition  funit.Int16 // Underline position (negative)
	UnderlineThickness funit.Int16 // Underline thickness
	IsFixedPitch       bool

	// Memory usage hints for PostScript printers.  Zero means unknown.
	MinMemType42 int64
	MaxMemType42 int64
	MinMemType1  int64
	MaxMemType1  int64

	// Names lists the glyph names, indexed by glyph ID.
	// This is nil for version 3 and 4 tables.
	Names []string

	// CharCodes maps glyph IDs to character codes in the font's
	// native encoding.  This is only set for version 4 tables.
	CharCodes []uint16
}

// Tag returns the table tag "post".
func (*Info) Tag() header.Tag {
	return header.TagPost
}

// Check verifies that the memory usage hints can be stored in the
// "post" table.
func (info *Info) Check() error {
	var c parser.Checker
	c.Uint32("post.MinMemType42", info.MinMemType42)
	c.Uint32("post.MaxMemType42", info.MaxMemType42)
	c.Uint32("post.MinMemType1", info.MinMemType1)
	c.Uint32("post.MaxMemType1", info.MaxMemType1)
	return c.Err()
}

// Decode decodes the "post" table.
// The Names slice of a version 1 table is shared between all fonts
// and must not be modified.
func Decode(data []byte) (*Info, error) {
	if len(data) < postHeaderLength {
		return nil, &parser.InvalidFontError{
			SubSystem: "sfnt/post",
			Reason:    "table too short",
		}
	}
	enc := &postEnc{}
	err := binary.Read(bytes.NewReader(data), binary.BigEndian, enc)
	if err != nil {
		return nil, err
	}

	info := &Info{
		Version:            enc.Version,
		ItalicAngle:        float64(enc.ItalicAngle) / 65536,
		UnderlinePosition:  enc.UnderlinePosition,
		UnderlineThickness: enc.UnderlineThickness,
		IsFixedPitch:       enc.IsFixedPitch != 0,
		MinMemType42:       int64(enc.MinMemType42),
		MaxMemType42:       int64(enc.MaxMemType42),
		MinMemType1:        int64(enc.MinMemType1),
		MaxMemType1:        int64(enc.MaxMemType1),
	}

	p := parser.New("post", bytes.NewReader(data))
	err = p.SeekPos(postHeaderLength)
	if err != nil {
		return nil, err
	}

	switch enc.Version {
	case Version1:
		info.Names = macNames
	case Version2:
		info.Names, err = readNamesV2(p)
	case Version25:
		info.Names, err = readNamesV25(p)
	case Version3:
		// pass
	case Version4:
		// https://developer.apple.com/fonts/TrueType-Reference-Manual/RM06/Chap6post.html
		info.CharCodes, err = p.ReadUint16s(int(p.Size()-p.Pos()) / 2)
	default:
		return nil, &parser.NotSupportedError{
			SubSystem: "sfnt/post",
			Feature:   fmt.Sprintf("table version 0x%08x", uint32(enc.Version)),
		}
	}
	if err != nil {
		return nil, err
	}

	err = info.Check()
	if err != nil {
		return nil, err
	}
	return info, nil
}

// readNamesV2 reads the glyph name index and the Pascal string storage of
// a version 2.0 table.  Only the strings referenced by the index are read.
func readNamesV2(p *parser.Parser) ([]string, error) {
	index, err := p.ReadUint16Slice()
	if err != nil {
		return nil, err
	}

	nMac := len(macNames)
	var custom []string
	seen := make(map[string]int)
	names := make([]string, len(index))
	for gid, idx := range index {
		if int(idx) < nMac {
			names[gid] = macNames[idx]
			continue
		}
		k := int(idx) - nMac
		for len(custom) <= k {
			l, err := p.ReadUint8()
			if err != nil {
				return nil, err
			}
			buf, err := p.ReadBytes(int(l))
			if err != nil {
				return nil, err
			}
			name := string(buf)
			if prev, dup := seen[name]; dup {
				return nil, p.Error("glyph name %q stored twice (strings %d and %d)",
					name, prev+nMac, len(custom)+nMac)
			}
			seen[name] = len(custom)
			custom = append(custom, name)
		}
		names[gid] = custom[k]
	}
	return names, nil
}

// readNamesV25 reads a version 2.5 table, where every glyph name is
// given as an offset into the standard Macintosh glyph order.
func readNamesV25(p *parser.Parser) ([]string, error) {
	numGlyphs, err := p.ReadUint16()
	if err != nil {
		return nil, err
	}
	offsets := make([]byte, numGlyphs)
	_, err = p.Read(offsets)
	if err != nil {
		return nil, err
	}

	names := make([]string, numGlyphs)
	for gid, o := range offsets {
		idx := gid + int(int8(o))
		if idx < 0 || idx >= len(macNames) {
			return nil, p.Error("glyph %d: standard name index %d out of range", gid, idx)
		}
		names[gid] = macNames[idx]
	}
	return names, nil
}

const postHeaderLength = 32

type postEnc struct {
	Version            Version
	ItalicAngle        int32
	UnderlinePosition  funit.Int16
	UnderlineThickness funit.Int16
	IsFixedPitch       uint32
	MinMemType42       uint32
	MaxMemType42       uint32
	MinMemType1        uint32
	MaxMemType1        uint32
}

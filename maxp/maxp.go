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

// Package maxp reads the "maxp" table of an sfnt file.
// https://docs.microsoft.com/en-us/typography/opentype/spec/maxp
package maxp

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"seehuhn.de/go/fontinfo/header"
	"seehuhn.de/go/fontinfo/parser"
)

// Info contains information from the "maxp" table.
type Info struct {
	// NumGlyphs is number of glyphs in the font, in the range 1, ..., 65535.
	NumGlyphs int

	// TTF contains additional information for TrueType fonts.
	// This is nil for version 0.5 tables, as used by CFF-based fonts.
	TTF *TTFInfo
}

// TTFInfo contains TrueType-specific information from the "maxp" table.
type TTFInfo struct {
	MaxPoints             uint16
	MaxContours           uint16
	MaxCompositePoints    uint16
	MaxCompositeContours  uint16
	MaxZones              uint16
	MaxTwilightPoints     uint16
	MaxStorage            uint16
	MaxFunctionDefs       uint16
	MaxInstructionDefs    uint16
	MaxStackElements      uint16
	MaxSizeOfInstructions uint16
	MaxComponentElements  uint16
	MaxComponentDepth     uint16
}

// Tag returns the table tag "maxp".
func (*Info) Tag() header.Tag {
	return header.TagMaxp
}

// Check verifies that NumGlyphs can be stored in the "maxp" table.
func (info *Info) Check() error {
	return parser.CheckUint16("maxp.NumGlyphs", info.NumGlyphs)
}

// Decode decodes the "maxp" table.
func Decode(data []byte) (*Info, error) {
	return Read(bytes.NewReader(data))
}

// Read reads the "maxp" table.
func Read(r io.Reader) (*Info, error) {
	var buf [6]byte
	_, err := io.ReadFull(r, buf[:])
	if err != nil {
		return nil, tooShort(err)
	}

	version := uint32(buf[0])<<24 | uint32(buf[1])<<16 | uint32(buf[2])<<8 | uint32(buf[3])
	if version != 0x00005000 && version != 0x00010000 {
		return nil, &parser.NotSupportedError{
			SubSystem: "sfnt/maxp",
			Feature:   fmt.Sprintf("maxp table version 0x%08x", version),
		}
	}

	numGlyphs := int(buf[4])<<8 | int(buf[5])
	if numGlyphs == 0 {
		return nil, &parser.InvalidFontError{
			SubSystem: "sfnt/maxp",
			Reason:    "numGlyphs is zero",
		}
	}
	info := &Info{
		NumGlyphs: numGlyphs,
	}
	if version != 0x00005000 {
		info.TTF, err = readTTF(r)
		if err != nil {
			return nil, err
		}
	}

	err = info.Check()
	if err != nil {
		return nil, err
	}
	return info, nil
}

func readTTF(r io.Reader) (*TTFInfo, error) {
	var buf [26]byte
	_, err := io.ReadFull(r, buf[:])
	if err != nil {
		return nil, tooShort(err)
	}
	ttf := &TTFInfo{
		MaxPoints:             uint16(buf[0])<<8 | uint16(buf[1]),
		MaxContours:           uint16(buf[2])<<8 | uint16(buf[3]),
		MaxCompositePoints:    uint16(buf[4])<<8 | uint16(buf[5]),
		MaxCompositeContours:  uint16(buf[6])<<8 | uint16(buf[7]),
		MaxZones:              uint16(buf[8])<<8 | uint16(buf[9]),
		MaxTwilightPoints:     uint16(buf[10])<<8 | uint16(buf[11]),
		MaxStorage:            uint16(buf[12])<<8 | uint16(buf[13]),
		MaxFunctionDefs:       uint16(buf[14])<<8 | uint16(buf[15]),
		MaxInstructionDefs:    uint16(buf[16])<<8 | uint16(buf[17]),
		MaxStackElements:      uint16(buf[18])<<8 | uint16(buf[19]),
		MaxSizeOfInstructions: uint16(buf[20])<<8 | uint16(buf[21]),
		MaxComponentElements:  uint16(buf[22])<<8 | uint16(buf[23]),
		MaxComponentDepth:     uint16(buf[24])<<8 | uint16(buf[25]),
	}
	return ttf, nil
}

func tooShort(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return &parser.InvalidFontError{
			SubSystem: "sfnt/maxp",
			Reason:    "table too short",
		}
	}
	return err
}

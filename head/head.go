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

// Package head reads the "head" table of an sfnt file.
// https://docs.microsoft.com/en-us/typography/opentype/spec/head
package head

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"time"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/postscript/funit"

	"seehuhn.de/go/fontinfo/header"
	"seehuhn.de/go/fontinfo/parser"
)

const headLength = 54

// Info represents the information in the "head" table of a font.
type Info struct {
	FontRevision Version // set by font manufacturer

	HasYBaseAt0 bool // baseline for font at y=0
	HasXBaseAt0 bool // left sidebearing point at x=0 (only for TrueType)
	IsNonlinear bool // outline/advance width may change nonlinearly

	UnitsPerEm int // font design units per em square, 16 to 16384
	Created    time.Time
	Modified   time.Time
	FontBBox   funit.Rect16

	IsBold       bool
	IsItalic     bool
	HasUnderline bool
	IsOutline    bool
	HasShadow    bool
	IsCondensed  bool
	IsExtended   bool

	LowestRecPPEM     int   // smallest readable size in pixels
	FontDirectionHint int16 // deprecated, normally 2
	HasLongOffsets    bool  // 'loca' table uses 32 bit offsets

	ChecksumAdjustment uint32
}

// Tag returns the table tag "head".
func (*Info) Tag() header.Tag {
	return header.TagHead
}

// Check verifies that all fields which are stored as unsigned integers in
// the font file have values in the allowed range.
func (info *Info) Check() error {
	var c parser.Checker
	c.Uint16("head.UnitsPerEm", info.UnitsPerEm)
	c.Uint16("head.LowestRecPPEM", info.LowestRecPPEM)
	return c.Err()
}

// Decode decodes the binary representation of the head table.
func Decode(data []byte) (*Info, error) {
	return Read(bytes.NewReader(data))
}

// Read reads and decodes the binary representation of the head table.
func Read(r io.Reader) (*Info, error) {
	enc := &binaryHead{}
	err := binary.Read(r, binary.BigEndian, enc)
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return nil, errTooShort
	} else if err != nil {
		return nil, err
	}

	if enc.Version != 0x00010000 {
		return nil, &parser.NotSupportedError{
			SubSystem: "sfnt/head",
			Feature:   fmt.Sprintf("head table version 0x%08x", enc.Version),
		}
	}
	if enc.MagicNumber != 0x5F0F3CF5 {
		return nil, &parser.InvalidFontError{
			SubSystem: "sfnt/head",
			Reason:    fmt.Sprintf("invalid magic number 0x%08x", enc.MagicNumber),
		}
	}
	if enc.UnitsPerEm == 0 {
		return nil, &parser.InvalidFontError{
			SubSystem: "sfnt/head",
			Reason:    "unitsPerEm is zero",
		}
	}

	info := &Info{
		FontRevision: Version(enc.FontRevision),

		HasYBaseAt0: enc.Flags&(1<<0) != 0,
		HasXBaseAt0: enc.Flags&(1<<1) != 0,
		IsNonlinear: enc.Flags&(1<<2) != 0 || enc.Flags&(1<<4) != 0,

		UnitsPerEm: int(enc.UnitsPerEm),
		Created:    decodeTime(enc.Created),
		Modified:   decodeTime(enc.Modified),
		FontBBox: funit.Rect16{
			LLx: enc.XMin,
			LLy: enc.YMin,
			URx: enc.XMax,
			URy: enc.YMax,
		},

		IsBold:       enc.MacStyle&(1<<0) != 0,
		IsItalic:     enc.MacStyle&(1<<1) != 0,
		HasUnderline: enc.MacStyle&(1<<2) != 0,
		IsOutline:    enc.MacStyle&(1<<3) != 0,
		HasShadow:    enc.MacStyle&(1<<4) != 0,
		IsCondensed:  enc.MacStyle&(1<<5) != 0,
		IsExtended:   enc.MacStyle&(1<<6) != 0,

		LowestRecPPEM:     int(enc.LowestRecPPEM),
		FontDirectionHint: enc.FontDirectionHint,
		HasLongOffsets:    enc.IndexToLocFormat != 0,

		ChecksumAdjustment: enc.CheckSumAdjustment,
	}
	err = info.Check()
	if err != nil {
		return nil, err
	}
	return info, nil
}

// FontMatrix returns the matrix which maps font design units to text space
// units.
func (info *Info) FontMatrix() matrix.Matrix {
	q := 1 / float64(info.UnitsPerEm)
	return matrix.Matrix{q, 0, 0, q, 0, 0}
}

type binaryHead struct {
	Version            uint32
	FontRevision       uint32
	CheckSumAdjustment uint32
	MagicNumber        uint32
	Flags              uint16
	UnitsPerEm         uint16
	Created            int64
	Modified           int64

	XMin funit.Int16
	YMin funit.Int16
	XMax funit.Int16
	YMax funit.Int16

	MacStyle uint16

	LowestRecPPEM     uint16
	FontDirectionHint int16

	IndexToLocFormat int16
	GlyphDataFormat  int16
}

// Version represents the font revision in 16.16 fixed point format.
type Version uint32

func (v Version) String() string {
	return fmt.Sprintf("%.03f", float64(v)/65536)
}

var errTooShort = &parser.InvalidFontError{
	SubSystem: "sfnt/head",
	Reason:    "table too short",
}

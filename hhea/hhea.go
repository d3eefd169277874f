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

// Package hhea reads the "hhea" table of an sfnt file.
// https://docs.microsoft.com/en-us/typography/opentype/spec/hhea
package hhea

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"

	"seehuhn.de/go/postscript/funit"

	"seehuhn.de/go/fontinfo/header"
	"seehuhn.de/go/fontinfo/parser"
)

const hheaLength = 36

// Info contains the information from the "hhea" table.
type Info struct {
	Ascent  funit.Int16
	Descent funit.Int16 // negative
	LineGap funit.Int16

	AdvanceWidthMax     int // maximum advance width in the "hmtx" table
	MinLeftSideBearing  funit.Int16
	MinRightSideBearing funit.Int16
	XMaxExtent          funit.Int16

	CaretSlopeRise int16 // 1 for vertical caret
	CaretSlopeRun  int16 // 0 for vertical caret
	CaretOffset    funit.Int16

	// NumOfLongHorMetrics is the number of advance widths stored
	// in the "hmtx" table.
	NumOfLongHorMetrics int
}

// Tag returns the table tag "hhea".
func (*Info) Tag() header.Tag {
	return header.TagHhea
}

// Check verifies that all fields which are stored as unsigned integers in
// the font file have values in the allowed range.
func (info *Info) Check() error {
	var c parser.Checker
	c.Uint16("hhea.AdvanceWidthMax", info.AdvanceWidthMax)
	c.Uint16("hhea.NumOfLongHorMetrics", info.NumOfLongHorMetrics)
	return c.Err()
}

// Decode decodes the binary representation of the hhea table.
func Decode(data []byte) (*Info, error) {
	return Read(bytes.NewReader(data))
}

// Read reads and decodes the binary representation of the hhea table.
func Read(r io.Reader) (*Info, error) {
	enc := &binaryHhea{}
	err := binary.Read(r, binary.BigEndian, enc)
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return nil, &parser.InvalidFontError{
			SubSystem: "sfnt/hhea",
			Reason:    "table too short",
		}
	} else if err != nil {
		return nil, err
	}

	if enc.Version != 0x00010000 {
		return nil, &parser.NotSupportedError{
			SubSystem: "sfnt/hhea",
			Feature:   fmt.Sprintf("hhea table version 0x%08x", enc.Version),
		}
	}
	if enc.MetricDataFormat != 0 {
		return nil, &parser.NotSupportedError{
			SubSystem: "sfnt/hhea",
			Feature:   fmt.Sprintf("metric data format %d", enc.MetricDataFormat),
		}
	}

	info := &Info{
		Ascent:              enc.Ascent,
		Descent:             enc.Descent,
		LineGap:             enc.LineGap,
		AdvanceWidthMax:     int(enc.AdvanceWidthMax),
		MinLeftSideBearing:  enc.MinLeftSideBearing,
		MinRightSideBearing: enc.MinRightSideBearing,
		XMaxExtent:          enc.XMaxExtent,
		CaretSlopeRise:      enc.CaretSlopeRise,
		CaretSlopeRun:       enc.CaretSlopeRun,
		CaretOffset:         enc.CaretOffset,
		NumOfLongHorMetrics: int(enc.NumOfLongHorMetrics),
	}
	err = info.Check()
	if err != nil {
		return nil, err
	}
	return info, nil
}

// CaretAngle returns the angle of the caret in radians.
// The angle is 0 for a vertical caret and negative for italic fonts.
func (info *Info) CaretAngle() float64 {
	rise := info.CaretSlopeRise
	run := info.CaretSlopeRun

	// avoid numbers with no negative
	if rise == math.MinInt16 {
		rise = -math.MaxInt16
	}
	if run == math.MinInt16 {
		run = -math.MaxInt16
	}
	if rise == 0 && run == 0 {
		return 0
	}
	return math.Atan2(float64(rise), float64(run)) - math.Pi/2
}

type binaryHhea struct {
	Version             uint32
	Ascent              funit.Int16
	Descent             funit.Int16
	LineGap             funit.Int16
	AdvanceWidthMax     uint16
	MinLeftSideBearing  funit.Int16
	MinRightSideBearing funit.Int16
	XMaxExtent          funit.Int16
	CaretSlopeRise      int16
	CaretSlopeRun       int16
	CaretOffset         funit.Int16
	_                   int16
	_                   int16
	_                   int16
	_                   int16
	MetricDataFormat    int16
	NumOfLongHorMetrics uint16
}

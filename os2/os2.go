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

// Package os2 reads "OS/2" tables.
// https://docs.microsoft.com/en-us/typography/opentype/spec/os2
package os2

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"seehuhn.de/go/postscript/funit"

	"seehuhn.de/go/fontinfo/header"
	"seehuhn.de/go/fontinfo/parser"
)

// Table sizes of the different versions.  Version 0 exists in two
// variants: the original Apple table ends after LastCharIndex, the
// Microsoft variant adds the typographic metrics.
const (
	lenV0Apple = 68
	lenV0MS    = 78
	lenV1      = 86
	lenV2      = 96
	lenV5      = 100
)

// Info contains information from the "OS/2" table.
type Info struct {
	Version int

	WeightClass Weight
	WidthClass  Width

	IsBold         bool // glyphs are emboldened
	IsItalic       bool // font contains italic or oblique glyphs
	IsRegular      bool // glyphs are in the standard weight/style for the font
	IsOblique      bool // font contains oblique glyphs
	HasUnderline   bool
	IsOutlined     bool
	UseTypoMetrics bool // use Ascent, Descent and LineGap for line spacing

	FirstCharIndex int
	LastCharIndex  int

	AvgGlyphWidth funit.Int16 // arithmetic average of the width of all non-zero width glyphs

	SubscriptXSize     funit.Int16
	SubscriptYSize     funit.Int16
	SubscriptXOffset   funit.Int16
	SubscriptYOffset   funit.Int16
	SuperscriptXSize   funit.Int16
	SuperscriptYSize   funit.Int16
	SuperscriptXOffset funit.Int16
	SuperscriptYOffset funit.Int16
	StrikeoutSize      funit.Int16
	StrikeoutPosition  funit.Int16

	FamilyClass int16    // https://docs.microsoft.com/en-us/typography/opentype/spec/ibmfc
	Panose      [10]byte // https://monotype.github.io/panose/
	Vendor      string   // https://docs.microsoft.com/en-us/typography/opentype/spec/os2#achvendid

	UnicodeRange UnicodeRange

	PermUse          Permissions
	PermNoSubsetting bool // the font may not be subsetted prior to embedding
	PermOnlyBitmap   bool // only bitmaps contained in the font may be embedded

	// Metrics is nil for the Apple variant of the version 0 table.
	Metrics *Metrics

	// CodePageRange is present in version 1 and later.
	CodePageRange *CodePageRange

	// V2 is present in version 2 and later.
	V2 *V2Info

	// OpticalSize is present in version 5.
	OpticalSize *OpticalSize
}

// Metrics contains the typographic and Windows metrics.
type Metrics struct {
	Ascent     funit.Int16
	Descent    funit.Int16 // negative
	LineGap    funit.Int16
	WinAscent  int
	WinDescent int // positive
}

// V2Info contains the fields added in version 2 of the table.
type V2Info struct {
	XHeight     funit.Int16
	CapHeight   funit.Int16
	DefaultChar int
	BreakChar   int
	MaxContext  int
}

// OpticalSize gives the range of sizes, in TWIPs (1/20 point), for which
// the font has been designed.
type OpticalSize struct {
	Lower int
	Upper int
}

// Tag returns the table tag "OS/2".
func (*Info) Tag() header.Tag {
	return header.TagOS2
}

// Check verifies that all fields which are stored as unsigned integers in
// the font file have values in the allowed range.
func (info *Info) Check() error {
	var c parser.Checker
	c.Uint16("OS/2.FirstCharIndex", info.FirstCharIndex)
	c.Uint16("OS/2.LastCharIndex", info.LastCharIndex)
	if m := info.Metrics; m != nil {
		c.Uint16("OS/2.WinAscent", m.WinAscent)
		c.Uint16("OS/2.WinDescent", m.WinDescent)
	}
	if v2 := info.V2; v2 != nil {
		c.Uint16("OS/2.DefaultChar", v2.DefaultChar)
		c.Uint16("OS/2.BreakChar", v2.BreakChar)
		c.Uint16("OS/2.MaxContext", v2.MaxContext)
	}
	if o := info.OpticalSize; o != nil {
		c.Uint16("OS/2.LowerOpticalPointSize", o.Lower)
		c.Uint16("OS/2.UpperOpticalPointSize", o.Upper)
	}
	return c.Err()
}

// Decode decodes an "OS/2" table.
func Decode(data []byte) (*Info, error) {
	if len(data) < lenV0Apple {
		return nil, &parser.InvalidFontError{
			SubSystem: "sfnt/os2",
			Reason:    fmt.Sprintf("table too short (%d bytes)", len(data)),
		}
	}

	v0 := &v0Data{}
	_ = binary.Read(bytes.NewReader(data[:lenV0Apple]), binary.BigEndian, v0)
	if v0.Version > 5 {
		return nil, &parser.NotSupportedError{
			SubSystem: "sfnt/os2",
			Feature:   fmt.Sprintf("OS/2 table version %d", v0.Version),
		}
	}
	var minLen int
	switch v0.Version {
	case 0:
		minLen = lenV0Apple
	case 1:
		minLen = lenV1
	case 2, 3, 4:
		minLen = lenV2
	default:
		minLen = lenV5
	}
	if len(data) < minLen {
		return nil, &parser.InvalidFontError{
			SubSystem: "sfnt/os2",
			Reason: fmt.Sprintf("version %d table too short (%d < %d bytes)",
				v0.Version, len(data), minLen),
		}
	}

	permBits := v0.Type
	if v0.Version < 3 {
		permBits &= 0xF
	}
	var permUse Permissions
	if permBits&8 != 0 {
		permUse = PermEdit
	} else if permBits&4 != 0 {
		permUse = PermView
	} else if permBits&2 != 0 {
		permUse = PermRestricted
	} else {
		permUse = PermInstall
	}

	sel := v0.Selection
	if v0.Version <= 3 {
		// Applications should ignore bits 7 to 15 in a font that has a
		// version 0 to version 3 OS/2 table.
		sel &= 0x007F
	}

	unicodeRange, err := DecodeUnicodeRange(v0.UnicodeRange[:])
	if err != nil {
		return nil, err
	}

	info := &Info{
		Version: int(v0.Version),

		WeightClass: Weight(v0.WeightClass),
		WidthClass:  Width(v0.WidthClass),

		IsBold:         sel&0x0060 == 0x0020,
		IsItalic:       sel&0x0041 == 0x0001,
		IsRegular:      sel&0x0040 != 0,
		IsOblique:      sel&0x0200 != 0,
		HasUnderline:   sel&0x0042 == 0x0002,
		IsOutlined:     sel&0x0048 == 0x0008,
		UseTypoMetrics: sel&0x0080 != 0,

		FirstCharIndex: int(v0.FirstCharIndex),
		LastCharIndex:  int(v0.LastCharIndex),

		AvgGlyphWidth: v0.AvgCharWidth,

		SubscriptXSize:     v0.SubscriptXSize,
		SubscriptYSize:     v0.SubscriptYSize,
		SubscriptXOffset:   v0.SubscriptXOffset,
		SubscriptYOffset:   v0.SubscriptYOffset,
		SuperscriptXSize:   v0.SuperscriptXSize,
		SuperscriptYSize:   v0.SuperscriptYSize,
		SuperscriptXOffset: v0.SuperscriptXOffset,
		SuperscriptYOffset: v0.SuperscriptYOffset,
		StrikeoutSize:      v0.StrikeoutSize,
		StrikeoutPosition:  v0.StrikeoutPosition,

		FamilyClass: v0.FamilyClass,
		Panose:      v0.Panose,
		Vendor:      string(v0.VendID[:]),

		UnicodeRange: unicodeRange,

		PermUse:          permUse,
		PermNoSubsetting: permBits&0x0100 != 0,
		PermOnlyBitmap:   permBits&0x0200 != 0,
	}

	if len(data) >= lenV0MS {
		ms := &v0MsData{}
		_ = binary.Read(bytes.NewReader(data[lenV0Apple:lenV0MS]), binary.BigEndian, ms)
		info.Metrics = &Metrics{
			Ascent:     ms.TypoAscender,
			Descent:    ms.TypoDescender,
			LineGap:    ms.TypoLineGap,
			WinAscent:  int(ms.WinAscent),
			WinDescent: int(ms.WinDescent),
		}
	}

	if v0.Version >= 1 {
		cpr, err := DecodeCodePageRange(data[lenV0MS:lenV1])
		if err != nil {
			return nil, err
		}
		info.CodePageRange = &cpr
	}

	if v0.Version >= 2 {
		v2 := &v2Data{}
		_ = binary.Read(bytes.NewReader(data[lenV1:lenV2]), binary.BigEndian, v2)
		info.V2 = &V2Info{
			XHeight:     v2.XHeight,
			CapHeight:   v2.CapHeight,
			DefaultChar: int(v2.DefaultChar),
			BreakChar:   int(v2.BreakChar),
			MaxContext:  int(v2.MaxContext),
		}
	}

	if v0.Version >= 5 {
		info.OpticalSize = &OpticalSize{
			Lower: int(data[lenV2])<<8 | int(data[lenV2+1]),
			Upper: int(data[lenV2+2])<<8 | int(data[lenV2+3]),
		}
	}

	err = info.Check()
	if err != nil {
		return nil, err
	}
	return info, nil
}

// Permissions describes rights to embed and use a font.
type Permissions int

func (perm Permissions) String() string {
	switch perm {
	case PermInstall:
		return "can install"
	case PermEdit:
		return "can edit"
	case PermView:
		return "can view"
	case PermRestricted:
		return "restricted"
	default:
		return fmt.Sprintf("Permissions(%d)", perm)
	}
}

// The possible permission values.
// https://learn.microsoft.com/en-us/typography/opentype/spec/os2#fstype
const (
	PermInstall    Permissions = iota // bits 0-3 unset
	PermEdit                          // only bit 3 set
	PermView                          // only bit 2 set
	PermRestricted                    // only bit 1 set
)

type v0Data struct {
	Version            uint16
	AvgCharWidth       funit.Int16
	WeightClass        uint16
	WidthClass         uint16
	Type               uint16
	SubscriptXSize     funit.Int16
	SubscriptYSize     funit.Int16
	SubscriptXOffset   funit.Int16
	SubscriptYOffset   funit.Int16
	SuperscriptXSize   funit.Int16
	SuperscriptYSize   funit.Int16
	SuperscriptXOffset funit.Int16
	SuperscriptYOffset funit.Int16
	StrikeoutSize      funit.Int16
	StrikeoutPosition  funit.Int16
	FamilyClass        int16
	Panose             [10]byte
	UnicodeRange       [16]byte
	VendID             [4]byte
	Selection          uint16
	FirstCharIndex     uint16
	LastCharIndex      uint16
}

type v0MsData struct {
	TypoAscender  funit.Int16
	TypoDescender funit.Int16
	TypoLineGap   funit.Int16
	WinAscent     uint16
	WinDescent    uint16 // positive
}

type v2Data struct {
	XHeight     funit.Int16
	CapHeight   funit.Int16
	DefaultChar uint16
	BreakChar   uint16
	MaxContext  uint16
}

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

package os2

import (
	"seehuhn.de/go/fontinfo/bitfield"
	"seehuhn.de/go/fontinfo/parser"
)

// UnicodeRange is a bitfield which describes which unicode
// blocks or ranges are "functional" in a font.
// https://learn.microsoft.com/en-us/typography/opentype/spec/os2#ur
type UnicodeRange [4]uint32

// UnicodeRangeBit is the position of a bit in a [UnicodeRange].
type UnicodeRangeBit int

// Set sets the given bit in the unicode range.
func (ur *UnicodeRange) Set(bit UnicodeRangeBit) {
	ur[bit/32] |= 1 << (bit % 32)
}

// IsSet reports whether the given bit is set.
func (ur UnicodeRange) IsSet(bit UnicodeRangeBit) bool {
	if bit < 0 || bit >= 128 {
		return false
	}
	return ur[bit/32]&(1<<(bit%32)) != 0
}

func (ur UnicodeRange) String() string {
	return unicodeRangeLayout.Format(func(index int) bool {
		return ur.IsSet(UnicodeRangeBit(index))
	})
}

// DecodeUnicodeRange decodes the 16 bytes of the ulUnicodeRange1, ...,
// ulUnicodeRange4 fields.  Reserved bits are ignored.
func DecodeUnicodeRange(data []byte) (UnicodeRange, error) {
	var ur UnicodeRange
	err := unicodeRangeLayout.Decode(data, func(pos int, bits [8]bool) {
		for b, on := range bits {
			k := wordBit(pos, b)
			if on && unicodeRangeNames[k] != "" {
				ur.Set(UnicodeRangeBit(k))
			}
		}
	})
	if err != nil {
		return ur, &parser.InvalidFontError{
			SubSystem: "sfnt/os2",
			Reason:    err.Error(),
		}
	}
	return ur, nil
}

// CodePageRange is a bitmask of code pages supported by a font.
type CodePageRange uint64

// Set sets the given bit in the code page range.
func (cpr *CodePageRange) Set(bit CodePage) {
	*cpr |= 1 << bit
}

// IsSet reports whether the given code page is marked as supported.
func (cpr CodePageRange) IsSet(bit CodePage) bool {
	if bit < 0 || bit >= 64 {
		return false
	}
	return cpr&(1<<bit) != 0
}

func (cpr CodePageRange) String() string {
	return codePageLayout.Format(func(index int) bool {
		return cpr.IsSet(CodePage(index))
	})
}

// DecodeCodePageRange decodes the 8 bytes of the ulCodePageRange1 and
// ulCodePageRange2 fields.  Reserved bits are ignored.
func DecodeCodePageRange(data []byte) (CodePageRange, error) {
	var cpr CodePageRange
	err := codePageLayout.Decode(data, func(pos int, bits [8]bool) {
		for b, on := range bits {
			k := wordBit(pos, b)
			if on && codePageNames[k] != "" {
				cpr.Set(CodePage(k))
			}
		}
	})
	if err != nil {
		return 0, &parser.InvalidFontError{
			SubSystem: "sfnt/os2",
			Reason:    err.Error(),
		}
	}
	return cpr, nil
}

// CodePage represents the positions of individual bits which may be set in a
// [CodePageRange].
type CodePage int

// List of code pages supported by the "OS/2" table.
const (
	CP1252      CodePage = 0  // CP1252, Latin 1
	CP1250      CodePage = 1  // CP1250, Latin 2: Eastern Europe
	CP1251      CodePage = 2  // CP1251, Cyrillic
	CP1253      CodePage = 3  // CP1253, Greek
	CP1254      CodePage = 4  // CP1254, Turkish
	CP1255      CodePage = 5  // CP1255, Hebrew
	CP1256      CodePage = 6  // CP1256, Arabic
	CP1257      CodePage = 7  // CP1257, Windows Baltic
	CP1258      CodePage = 8  // CP1258, Vietnamese
	CP874       CodePage = 16 // CP874, Thai
	CP932       CodePage = 17 // CP932, JIS/Japan
	CP936       CodePage = 18 // CP936, Chinese: Simplified chars, PRC and Singapore
	CP949       CodePage = 19 // CP949, Korean Wansung
	CP950       CodePage = 20 // CP950, Chinese: Traditional chars, Taiwan and Hong Kong
	CP1361      CodePage = 21 // CP1361, Korean Johab
	CPMacintosh CodePage = 29 // Macintosh Character Set (US Roman)
	CPOEM       CodePage = 30 // OEM Character Set
	CPSymbol    CodePage = 31 // Symbol Character Set
	CP869       CodePage = 48 // CP869, IBM Greek
	CP866       CodePage = 49 // CP866, MS-DOS Russian
	CP865       CodePage = 50 // CP865, MS-DOS Nordic
	CP864       CodePage = 51 // CP864, Arabic
	CP863       CodePage = 52 // CP863, MS-DOS Canadian French
	CP862       CodePage = 53 // CP862, Hebrew
	CP861       CodePage = 54 // CP861, MS-DOS Icelandic
	CP860       CodePage = 55 // CP860, MS-DOS Portuguese
	CP857       CodePage = 56 // CP857, IBM Turkish
	CP855       CodePage = 57 // CP855, IBM Cyrillic; primarily Russian
	CP852       CodePage = 58 // CP852, Latin 2
	CP775       CodePage = 59 // CP775, MS-DOS Baltic
	CP737       CodePage = 60 // CP737, Greek; former 437 G
	CP708       CodePage = 61 // CP708, Arabic; ASMO 708
	CP850       CodePage = 62 // CP850, WE/Latin 1
	CP437       CodePage = 63 // CP437, US
)

// wordBit converts a byte position and a bit within this byte into the
// bit number of a sequence of big-endian 32-bit words, where bit 0 is the
// least significant bit of the first word.
func wordBit(pos, bit int) int {
	return 32*(pos/4) + 8*(3-pos%4) + bit
}

// wordLayout declares one flag for every non-empty name.
func wordLayout(size int, names []string) *bitfield.Layout {
	var flags []bitfield.Flag
	for k, name := range names {
		if name == "" {
			continue
		}
		w, b := k/32, k%32
		flags = append(flags, bitfield.Flag{
			Pos:   4*w + 3 - b/8,
			Bit:   uint8(b % 8),
			Index: k,
			Name:  name,
		})
	}
	return bitfield.NewLayout(size, flags...)
}

var (
	unicodeRangeLayout = wordLayout(16, unicodeRangeNames[:])
	codePageLayout     = wordLayout(8, codePageNames[:])
)

var codePageNames = [64]string{
	CP1252:      "Latin 1",
	CP1250:      "Latin 2: Eastern Europe",
	CP1251:      "Cyrillic",
	CP1253:      "Greek",
	CP1254:      "Turkish",
	CP1255:      "Hebrew",
	CP1256:      "Arabic",
	CP1257:      "Windows Baltic",
	CP1258:      "Vietnamese",
	CP874:       "Thai",
	CP932:       "JIS/Japan",
	CP936:       "Chinese: Simplified chars",
	CP949:       "Korean Wansung",
	CP950:       "Chinese: Traditional chars",
	CP1361:      "Korean Johab",
	CPMacintosh: "Macintosh Character Set (US Roman)",
	CPOEM:       "OEM Character Set",
	CPSymbol:    "Symbol Character Set",
	CP869:       "IBM Greek",
	CP866:       "MS-DOS Russian",
	CP865:       "MS-DOS Nordic",
	CP864:       "Arabic (CP864)",
	CP863:       "MS-DOS Canadian French",
	CP862:       "Hebrew (CP862)",
	CP861:       "MS-DOS Icelandic",
	CP860:       "MS-DOS Portuguese",
	CP857:       "IBM Turkish",
	CP855:       "IBM Cyrillic",
	CP852:       "Latin 2",
	CP775:       "MS-DOS Baltic",
	CP737:       "Greek; former 437 G",
	CP708:       "Arabic; ASMO 708",
	CP850:       "WE/Latin 1",
	CP437:       "US",
}

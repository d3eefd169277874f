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

package name

import (
	"bytes"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
	"golang.org/x/text/encoding/unicode"
)

// Platform IDs used in name records.
const (
	PlatformUnicode   = 0
	PlatformMacintosh = 1
	PlatformISO       = 2
	PlatformWindows   = 3
)

var utf16BE = unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)

// textEncoding returns the text encoding used for name records with the
// given platform and encoding ID, or nil if the encoding is not supported.
// The second return value indicates whether the strings are stored
// as sequences of 16 bit values, padded with zero bytes.
func textEncoding(platformID, encodingID uint16) (encoding.Encoding, bool) {
	switch platformID {
	case PlatformUnicode:
		return utf16BE, false

	case PlatformMacintosh:
		// https://unicode.org/Public/MAPPINGS/VENDORS/APPLE/ReadMe.txt
		switch encodingID {
		case 0: // Roman
			return charmap.Macintosh, false
		case 1: // Japanese
			return japanese.ShiftJIS, false
		case 2: // Chinese (Traditional)
			return traditionalchinese.Big5, false
		case 3: // Korean
			return korean.EUCKR, false
		case 7: // Russian
			return charmap.MacintoshCyrillic, false
		case 25: // Chinese (Simplified)
			return simplifiedchinese.GBK, false
		}

	case PlatformISO:
		switch encodingID {
		case 0: // 7-bit ASCII
			return charmap.Windows1252, false
		case 1: // ISO 10646
			return utf16BE, false
		case 2: // ISO 8859-1
			return charmap.ISO8859_1, false
		}

	case PlatformWindows:
		switch encodingID {
		case 0, 1, 10: // Symbol, Unicode BMP, Unicode full repertoire
			return utf16BE, false
		case 2: // ShiftJIS
			return japanese.ShiftJIS, true
		case 3: // PRC
			return simplifiedchinese.GBK, true
		case 4: // Big5
			return traditionalchinese.Big5, true
		case 5: // Wansung
			return korean.EUCKR, true
		}
	}
	return nil, false
}

// decodeText converts the bytes of a name record to a string.
// The boolean result is false if the encoding is not supported,
// or if the data cannot be decoded.
func decodeText(platformID, encodingID uint16, data []byte) (string, bool) {
	enc, padded := textEncoding(platformID, encodingID)
	if enc == nil {
		return "", false
	}
	if padded {
		data = bytes.ReplaceAll(data, []byte{0}, nil)
	}
	res, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return "", false
	}
	return string(res), true
}

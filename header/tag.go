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

package header

import "fmt"

// Tag is the 4-byte identifier of an sfnt table.
type Tag [4]byte

// MakeTag converts a string of length 4 bytes to a Tag.
// Shorter strings are padded with spaces, as is customary for tags
// like "cvt " or "CFF ".  MakeTag panics if s is longer than 4 bytes.
func MakeTag(s string) Tag {
	if len(s) > 4 {
		panic(fmt.Sprintf("invalid tag %q", s))
	}
	tag := Tag{' ', ' ', ' ', ' '}
	copy(tag[:], s)
	return tag
}

func (tag Tag) String() string {
	return string(tag[:])
}

// IsValid returns true if all bytes of the tag are printable ASCII
// characters.
func (tag Tag) IsValid() bool {
	for _, c := range tag {
		if c < 0x20 || c > 0x7E {
			return false
		}
	}
	return true
}

// Tags of the tables understood by this library, and of the outline tables
// needed to check font validity.
var (
	TagCmap = MakeTag("cmap")
	TagHead = MakeTag("head")
	TagHhea = MakeTag("hhea")
	TagHmtx = MakeTag("hmtx")
	TagMaxp = MakeTag("maxp")
	TagName = MakeTag("name")
	TagOS2  = MakeTag("OS/2")
	TagPost = MakeTag("post")

	TagGlyf = MakeTag("glyf")
	TagLoca = MakeTag("loca")
	TagCFF  = MakeTag("CFF ")
	TagCFF2 = MakeTag("CFF2")
)

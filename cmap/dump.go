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

package cmap

import (
	"fmt"
	"io"
)

// Dump writes a human readable description of all subtables to w.
func (t Table) Dump(w io.Writer) error {
	for _, m := range t {
		_, err := fmt.Fprintf(w, "platform %d, encoding %d, language %d:\n",
			m.PlatformID, m.EncodingID, m.Language)
		if err != nil {
			return err
		}
		err = Dump(w, m.Subtable)
		if err != nil {
			return err
		}
	}
	return nil
}

// Dump writes a human readable description of a subtable to w.
func Dump(w io.Writer, sub Subtable) error {
	low, high := sub.CodeRange()
	var err error
	p := func(format string, args ...any) {
		if err == nil {
			_, err = fmt.Fprintf(w, format, args...)
		}
	}

	switch s := sub.(type) {
	case *Format0:
		p("  format 0, codes 0x%02X-0x%02X\n", low, high)
		for c, gid := range s.Data {
			if gid != 0 {
				p("    0x%02X -> %d\n", c, gid)
			}
		}
	case *Format2:
		p("  format 2, %d subheaders, %d glyph indices\n",
			len(s.SubHeaders), len(s.GlyphIndexArray))
		for hi, k := range s.Keys {
			if k == 0 && hi != 0 || int(k) >= len(s.SubHeaders) {
				continue
			}
			sh := s.SubHeaders[k]
			p("    high byte 0x%02X: subheader %d, low bytes 0x%02X+%d, delta %d, start %d\n",
				hi, k, sh.FirstCode, sh.EntryCount, int16(sh.IDDelta), sh.StartIndex)
		}
	case *Format4:
		p("  format 4, %d segments, codes 0x%04X-0x%04X\n", len(s.Segments), low, high)
		for _, seg := range s.Segments {
			if seg.Offset == NoOffset {
				p("    0x%04X-0x%04X delta %d\n",
					seg.StartCode, seg.EndCode, int16(seg.IDDelta))
			} else {
				p("    0x%04X-0x%04X delta %d, array offset %d\n",
					seg.StartCode, seg.EndCode, int16(seg.IDDelta), seg.Offset)
			}
		}
	case *Format6:
		p("  format 6, first code 0x%04X, %d entries\n", s.FirstCode, len(s.GlyphIDArray))
		for i, gid := range s.GlyphIDArray {
			p("    0x%04X -> %d\n", s.FirstCode+i, gid)
		}
	case *Format10:
		p("  format 10, first code 0x%X, %d entries\n", s.StartCharCode, len(s.GlyphIDArray))
		for i, gid := range s.GlyphIDArray {
			p("    0x%X -> %d\n", s.StartCharCode+int64(i), gid)
		}
	case *Format12:
		p("  format %d, %d groups, codes 0x%X-0x%X\n", s.Format, len(s.Groups), low, high)
		for _, g := range s.Groups {
			p("    0x%X-0x%X -> %d\n", g.StartCharCode, g.EndCharCode, g.StartGlyphID)
		}
	default:
		p("  unknown subtable type %T\n", sub)
	}
	return err
}

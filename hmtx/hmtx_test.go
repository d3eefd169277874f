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

package hmtx

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"seehuhn.de/go/postscript/funit"

	"seehuhn.de/go/fontinfo/glyph"
	"seehuhn.de/go/fontinfo/header"
	"seehuhn.de/go/fontinfo/hhea"
	"seehuhn.de/go/fontinfo/parser"
)

func words(ww ...int) []byte {
	res := make([]byte, 0, 2*len(ww))
	for _, w := range ww {
		res = append(res, byte(w>>8), byte(w))
	}
	return res
}

func TestDecode(t *testing.T) {
	data := words(
		500, 10, // glyph 0
		600, 0xFFFF, // glyph 1
		700, 20, // glyph 2
		30, // glyph 3, width repeated
		40, // glyph 4, width repeated
	)
	info, err := Decode(data, 3, 5)
	if err != nil {
		t.Fatal(err)
	}
	expected := &Info{
		Widths: []funit.Int16{500, 600, 700, 700, 700},
		LSBs:   []funit.Int16{10, -1, 20, 30, 40},
	}
	if d := cmp.Diff(expected, info); d != "" {
		t.Error(d)
	}
	if w := info.GlyphWidth(4); w != 700 {
		t.Errorf("GlyphWidth(4) = %d", w)
	}
	if w := info.GlyphWidth(5); w != 0 {
		t.Errorf("GlyphWidth(5) = %d", w)
	}
	if w := info.GlyphWidth(glyph.ID(1 << 31)); w != 0 {
		t.Errorf("GlyphWidth(1<<31) = %d", w)
	}
}

func TestDecodeErrors(t *testing.T) {
	if _, err := Decode(words(500, 10, 600), 2, 2); !parser.IsFormatError(err) {
		t.Errorf("short long metrics: %v", err)
	}
	if _, err := Decode(words(500, 10), 1, 3); !parser.IsFormatError(err) {
		t.Errorf("missing side bearings: %v", err)
	}
	if _, err := Decode(words(10, 20), 0, 2); !parser.IsFormatError(err) {
		t.Errorf("no widths: %v", err)
	}

	// numLong larger than the number of glyphs is clamped
	info, err := Decode(words(500, 10), 7, 1)
	if err != nil {
		t.Fatal(err)
	}
	if info.NumGlyphs() != 1 {
		t.Errorf("wrong number of glyphs %d", info.NumGlyphs())
	}
}

func TestGoFonts(t *testing.T) {
	for _, ttf := range [][]byte{goregular.TTF, gomono.TTF} {
		ref, err := sfnt.Parse(ttf)
		if err != nil {
			t.Fatal(err)
		}
		numGlyphs := ref.NumGlyphs()
		ppem := fixed.I(int(ref.UnitsPerEm()))

		r := bytes.NewReader(ttf)
		toc, err := header.Read(r)
		if err != nil {
			t.Fatal(err)
		}
		data, err := toc.ReadTableBytes(r, header.TagHmtx)
		if err != nil {
			t.Fatal(err)
		}
		hheaData, err := toc.ReadTableBytes(r, header.TagHhea)
		if err != nil {
			t.Fatal(err)
		}
		hheaInfo, err := hhea.Decode(hheaData)
		if err != nil {
			t.Fatal(err)
		}
		info, err := Decode(data, hheaInfo.NumOfLongHorMetrics, numGlyphs)
		if err != nil {
			t.Fatal(err)
		}

		var buf sfnt.Buffer
		for gid := 0; gid < numGlyphs; gid++ {
			adv, err := ref.GlyphAdvance(&buf, sfnt.GlyphIndex(gid), ppem, font.HintingNone)
			if err != nil {
				t.Fatal(err)
			}
			if got := info.GlyphWidth(glyph.ID(gid)); int(got) != adv.Round() {
				t.Errorf("glyph %d: width %d != %d", gid, got, adv.Round())
			}
		}
	}
}

func FuzzDecode(f *testing.F) {
	f.Add(words(500, 10, 600, 20, 30), 2, 3)
	f.Fuzz(func(t *testing.T, data []byte, numLong, numGlyphs int) {
		if numLong < 0 || numGlyphs < 0 || numGlyphs > 1<<16 {
			return
		}
		info, err := Decode(data, numLong, numGlyphs)
		if err != nil {
			return
		}
		if len(info.Widths) != numGlyphs || len(info.LSBs) != numGlyphs {
			t.Errorf("wrong number of entries")
		}
	})
}

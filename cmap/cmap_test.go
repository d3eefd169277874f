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
	"bytes"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"

	"seehuhn.de/go/fontinfo/header"
	"seehuhn.de/go/fontinfo/parser"
)

type record struct {
	platformID, encodingID uint16
	body                   []byte
}

// makeCmap assembles a cmap table.  Records with a nil body share the
// subtable of the preceding record.
func makeCmap(recs ...record) []byte {
	res := words(0, uint16(len(recs)))
	var bodies []byte
	offset := 4 + 8*len(recs)
	prev := offset
	for _, rec := range recs {
		o := offset + len(bodies)
		if rec.body == nil {
			o = prev
		}
		res = append(res, words(rec.platformID, rec.encodingID)...)
		res = append(res, dwords(uint32(o))...)
		bodies = append(bodies, rec.body...)
		prev = o
	}
	return append(res, bodies...)
}

func TestDecode(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontinfo.cmap")
	defer teardown()

	format14 := append(words(14), dwords(10, 0)...)
	data := makeCmap(
		record{0, 3, makeFormat4()},
		record{0, 5, format14},
		record{1, 0, words(6, 12, 17, 'A', 1, 9)},
		record{3, 1, nil},
		record{3, 10, makeFormat12(12)},
	)

	table, err := Decode(data)
	if err != nil {
		t.Fatal(err)
	}
	if len(table) != 4 {
		t.Fatalf("expected 4 subtables, got %d", len(table))
	}

	wantKeys := []Key{
		{PlatformID: 0, EncodingID: 3},
		{PlatformID: 1, EncodingID: 0, Language: 17},
		{PlatformID: 3, EncodingID: 1},
		{PlatformID: 3, EncodingID: 10},
	}
	wantFormats := []uint16{4, 6, 6, 12}
	for i, m := range table {
		if m.Key != wantKeys[i] || m.Format != wantFormats[i] {
			t.Errorf("%d: got %v/%d, want %v/%d", i, m.Key, m.Format, wantKeys[i], wantFormats[i])
		}
	}

	// records pointing to the same data share the decoded subtable
	if table[1].Subtable != table[2].Subtable {
		t.Error("shared subtable decoded twice")
	}

	if gid := table.GetNoLang(1, 0).Lookup('A'); gid != 9 {
		t.Errorf("mac lookup: got %d", gid)
	}
	if sub := table.Get(Key{PlatformID: 1, EncodingID: 0}); sub != nil {
		t.Error("language ignored for Macintosh subtables")
	}
	if m := table.SelectPlatform(PlatformWindows); m == nil || m.Subtable.Lookup('B') != 3 {
		t.Error("wrong Windows subtable")
	}
}

func TestDecodeErrors(t *testing.T) {
	cases := map[string][]byte{
		"short":        {0, 0, 0},
		"version":      words(1, 0),
		"records":      words(0, 3, 3, 1),
		"offset":       append(words(0, 1, 3, 1), dwords(3)...),
		"beyond end":   append(words(0, 1, 3, 1), dwords(1000)...),
		"length":       makeCmap(record{3, 1, words(6, 200, 0, 0, 0)}),
		"bad subtable": makeCmap(record{3, 1, words(4, 16, 0, 2, 0, 0, 0, 0)}),
	}
	for name, data := range cases {
		_, err := Decode(data)
		if !parser.IsFormatError(err) {
			t.Errorf("%s: expected format error, got %v", name, err)
		}
	}
}

func TestOverlappingSubtables(t *testing.T) {
	// the first subtable claims to be longer than it is, and extends into
	// the second one
	body0 := words(6, 22, 0, 'A', 1, 9)
	body1 := words(6, 12, 0, 'B', 1, 10)
	_, err := Decode(makeCmap(record{3, 1, body0}, record{1, 0, body1}))
	if !parser.IsFormatError(err) {
		t.Errorf("overlapping subtables accepted: %v", err)
	}
}

func TestGoRegular(t *testing.T) {
	r := bytes.NewReader(goregular.TTF)
	info, err := header.Read(r)
	if err != nil {
		t.Fatal(err)
	}
	data, err := info.ReadTableBytes(r, header.TagCmap)
	if err != nil {
		t.Fatal(err)
	}
	table, err := Decode(data)
	if err != nil {
		t.Fatal(err)
	}
	best, err := table.GetBest()
	if err != nil {
		t.Fatal(err)
	}

	ref, err := sfnt.Parse(goregular.TTF)
	if err != nil {
		t.Fatal(err)
	}
	var buf sfnt.Buffer
	for _, r := range []rune("AZaz09 .,;?!äöüßÆæŁłΩπЖж€“”…ﬁ") {
		want, err := ref.GlyphIndex(&buf, r)
		if err != nil {
			t.Fatal(err)
		}
		got := best.Lookup(uint32(r))
		if uint32(got) != uint32(want) {
			t.Errorf("%q: got glyph %d, want %d", r, got, want)
		}
	}
}

func TestDump(t *testing.T) {
	table, err := Decode(makeCmap(
		record{3, 1, makeFormat4()},
		record{3, 10, makeFormat12(13)},
	))
	if err != nil {
		t.Fatal(err)
	}
	out := &strings.Builder{}
	err = table.Dump(out)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{
		"platform 3, encoding 1",
		"format 4, 3 segments",
		"0x0041-0x0043 delta 10, array offset 0",
		"format 13, 2 groups",
	} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("missing %q in\n%s", want, out)
		}
	}
}

func FuzzDecode(f *testing.F) {
	f.Add(makeCmap(record{3, 1, makeFormat4()}))
	f.Add(makeCmap(record{3, 10, makeFormat12(12)}, record{1, 0, words(6, 12, 17, 'A', 1, 9)}))
	f.Add(makeCmap(record{3, 1, makeFormat2()}))
	f.Fuzz(func(t *testing.T, data []byte) {
		table, err := Decode(data)
		if err != nil {
			return
		}
		for _, m := range table {
			low, high := m.Subtable.CodeRange()
			m.Subtable.Lookup(low)
			m.Subtable.Lookup(high)
		}
		table.SelectPlatform(PlatformWindows)
		table.SelectPlatform(PlatformMacintosh)
	})
}

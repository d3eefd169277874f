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
	"testing"

	"seehuhn.de/go/fontinfo/glyph"
)

func makeTable(keys ...Key) Table {
	var res Table
	for i, key := range keys {
		res = append(res, Mapping{
			Key:      key,
			Format:   6,
			Subtable: &Format6{GlyphIDArray: []glyph.ID{glyph.ID(i + 1)}},
		})
	}
	return res
}

func TestSelect(t *testing.T) {
	win1 := Key{PlatformID: 3, EncodingID: 1}
	win10 := Key{PlatformID: 3, EncodingID: 10}
	mac0 := Key{PlatformID: 1, EncodingID: 0}
	table := makeTable(win1, win10, mac0)

	type testCase struct {
		platformID, encodingID uint16
		want                   *Key
	}
	cases := []testCase{
		{3, 1, &win1},
		{3, 10, &win10},
		{3, 3, &win10}, // encoding 10 is preferred over encoding 1
		{1, 0, &mac0},
		{1, 7, &mac0},
		{0, 3, nil},
		{2, 0, nil},
	}
	for _, test := range cases {
		m := table.Select(test.platformID, test.encodingID)
		switch {
		case test.want == nil && m != nil:
			t.Errorf("Select(%d,%d): unexpected %v", test.platformID, test.encodingID, m.Key)
		case test.want != nil && m == nil:
			t.Errorf("Select(%d,%d): no mapping found", test.platformID, test.encodingID)
		case test.want != nil && m.Key != *test.want:
			t.Errorf("Select(%d,%d): got %v, want %v",
				test.platformID, test.encodingID, m.Key, *test.want)
		}
	}

	if m := table.SelectPlatform(PlatformMacintosh); m == nil || m.Key != mac0 {
		t.Errorf("SelectPlatform(Macintosh) = %v", m)
	}
	if m := table.SelectPlatform(PlatformWindows); m == nil || m.Key != win10 {
		t.Errorf("SelectPlatform(Windows) = %v", m)
	}
}

func TestSelectWindowsBMP(t *testing.T) {
	win0 := Key{PlatformID: 3, EncodingID: 0}
	win1 := Key{PlatformID: 3, EncodingID: 1}

	table := makeTable(win0, win1)
	if m := table.SelectPlatform(PlatformWindows); m == nil || m.Key != win1 {
		t.Errorf("SelectPlatform(Windows) = %v", m)
	}

	// The symbol encoding is only used when requested explicitly.
	table = makeTable(win0)
	if m := table.Select(PlatformWindows, 1); m != nil {
		t.Errorf("Select(3,1) = %v", m.Key)
	}
	if m := table.Select(PlatformWindows, 0); m == nil || m.Key != win0 {
		t.Errorf("Select(3,0) = %v", m)
	}
}

func TestSelectMacFirst(t *testing.T) {
	mac1 := Key{PlatformID: 1, EncodingID: 1}
	mac2 := Key{PlatformID: 1, EncodingID: 2}
	table := makeTable(mac1, mac2)
	if m := table.SelectPlatform(PlatformMacintosh); m == nil || m.Key != mac1 {
		t.Errorf("SelectPlatform(Macintosh) = %v", m)
	}
}

func TestSelectOtherLast(t *testing.T) {
	uni3 := Key{PlatformID: 0, EncodingID: 3}
	uni4 := Key{PlatformID: 0, EncodingID: 4}
	win1 := Key{PlatformID: 3, EncodingID: 1}
	table := makeTable(uni3, uni4, win1)

	if m := table.SelectPlatform(PlatformUnicode); m == nil || m.Key != uni4 {
		t.Errorf("SelectPlatform(Unicode) = %v", m)
	}
	if m := table.Select(PlatformUnicode, 3); m == nil || m.Key != uni3 {
		t.Errorf("Select(0,3) = %v", m)
	}
	if m := table.SelectPlatform(PlatformCustom); m != nil {
		t.Errorf("SelectPlatform(Custom) = %v", m.Key)
	}
}

func TestGetBest(t *testing.T) {
	table := makeTable(Key{PlatformID: 1, EncodingID: 0}, Key{PlatformID: 3, EncodingID: 1})
	sub, err := table.GetBest()
	if err != nil {
		t.Fatal(err)
	}
	if sub != table[1].Subtable {
		t.Error("wrong subtable selected")
	}

	_, err = makeTable(Key{PlatformID: 3, EncodingID: 0}).GetBest()
	if err == nil {
		t.Error("symbol subtable selected")
	}
}

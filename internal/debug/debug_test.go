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

package debug

import (
	"bytes"
	"testing"

	"golang.org/x/image/font/gofont/goregular"

	"seehuhn.de/go/fontinfo/header"
)

func TestRoundTrip(t *testing.T) {
	scalerType, tables, err := Tables(goregular.TTF)
	if err != nil {
		t.Fatal(err)
	}
	font := MakeFont(scalerType, tables)

	if sum := header.Checksum(font); sum != 0xB1B0AFBA {
		t.Errorf("file checksum 0x%08X", sum)
	}

	r := bytes.NewReader(font)
	info, err := header.Read(r)
	if err != nil {
		t.Fatal(err)
	}
	if len(info.Toc) != len(tables) {
		t.Fatalf("%d tables, expected %d", len(info.Toc), len(tables))
	}
	for tag, orig := range tables {
		err := info.VerifyChecksum(r, tag)
		if err != nil {
			t.Error(err)
		}
		body, err := info.ReadTableBytes(r, tag)
		if err != nil {
			t.Fatal(err)
		}
		if tag == header.TagHead {
			body = append([]byte{}, body...)
			copy(body[8:12], orig[8:12])
		}
		if !bytes.Equal(body, orig) {
			t.Errorf("table %q changed", tag)
		}
	}
}

func TestEmpty(t *testing.T) {
	font := MakeFont(header.ScalerTypeCFF, nil)
	if len(font) != 12 {
		t.Fatalf("%d bytes, expected 12", len(font))
	}
	info, err := header.Read(bytes.NewReader(font))
	if err != nil {
		t.Fatal(err)
	}
	if !info.IsCFF() || len(info.Toc) != 0 {
		t.Errorf("unexpected directory %v", info)
	}
}

func TestSearchFields(t *testing.T) {
	tables := make(map[header.Tag][]byte)
	for _, s := range []string{"aaaa", "bbbb", "cccc", "dddd", "eeee"} {
		tables[header.MakeTag(s)] = []byte{1, 2, 3}
	}
	info, err := header.Read(bytes.NewReader(MakeFont(header.ScalerTypeTrueType, tables)))
	if err != nil {
		t.Fatal(err)
	}
	if info.SearchRange != 64 || info.EntrySelector != 2 || info.RangeShift != 16 {
		t.Errorf("got %d %d %d", info.SearchRange, info.EntrySelector, info.RangeShift)
	}
}

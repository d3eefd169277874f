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

package post

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"

	"seehuhn.de/go/fontinfo/header"
	"seehuhn.de/go/fontinfo/parser"
)

// makePost returns a "post" table with the given version, followed by body.
func makePost(version Version, body ...byte) []byte {
	buf := &bytes.Buffer{}
	enc := &postEnc{
		Version:            version,
		ItalicAngle:        -12 << 16,
		UnderlinePosition:  -100,
		UnderlineThickness: 50,
		IsFixedPitch:       1,
		MinMemType42:       1,
		MaxMemType42:       2,
		MinMemType1:        3,
		MaxMemType1:        4,
	}
	_ = binary.Write(buf, binary.BigEndian, enc)
	buf.Write(body)
	return buf.Bytes()
}

func TestHeaderFields(t *testing.T) {
	info, err := Decode(makePost(Version3))
	if err != nil {
		t.Fatal(err)
	}
	expected := &Info{
		Version:            Version3,
		ItalicAngle:        -12,
		UnderlinePosition:  -100,
		UnderlineThickness: 50,
		IsFixedPitch:       true,
		MinMemType42:       1,
		MaxMemType42:       2,
		MinMemType1:        3,
		MaxMemType1:        4,
	}
	if d := cmp.Diff(expected, info); d != "" {
		t.Error(d)
	}
}

func TestVersion1(t *testing.T) {
	info, err := Decode(makePost(Version1))
	if err != nil {
		t.Fatal(err)
	}
	if len(info.Names) != 258 {
		t.Fatalf("%d names, expected 258", len(info.Names))
	}
	if info.Names[3] != "space" || info.Names[257] != "dcroat" {
		t.Errorf("unexpected names %q, %q", info.Names[3], info.Names[257])
	}
}

func TestVersion2(t *testing.T) {
	body := []byte{
		0, 4, // numGlyphs
		0, 0, // .notdef
		1, 3, // "foo"
		0, 36, // A
		1, 2, // "bar"
		3, 'b', 'a', 'r',
		3, 'f', 'o', 'o',
	}
	info, err := Decode(makePost(Version2, body...))
	if err != nil {
		t.Fatal(err)
	}
	expected := []string{".notdef", "foo", "A", "bar"}
	if d := cmp.Diff(expected, info.Names); d != "" {
		t.Error(d)
	}
}

func TestVersion2Duplicate(t *testing.T) {
	body := []byte{
		0, 2,
		1, 2,
		1, 3,
		1, 'x',
		1, 'x',
	}
	_, err := Decode(makePost(Version2, body...))
	if !parser.IsFormatError(err) {
		t.Errorf("duplicate name: got %v", err)
	}
}

func TestVersion2Truncated(t *testing.T) {
	cases := [][]byte{
		{0},
		{0, 3, 0, 0},
		{0, 1, 1, 2},
		{0, 1, 1, 2, 5, 'a', 'b'},
	}
	for i, body := range cases {
		_, err := Decode(makePost(Version2, body...))
		if !parser.IsFormatError(err) {
			t.Errorf("%d: got %v", i, err)
		}
	}
}

func TestVersion25(t *testing.T) {
	body := []byte{
		0, 3,
		0,    // .notdef
		35,   // 1+35 = "A"
		0xFE, // 2-2 = .notdef
	}
	info, err := Decode(makePost(Version25, body...))
	if err != nil {
		t.Fatal(err)
	}
	expected := []string{".notdef", "A", ".notdef"}
	if d := cmp.Diff(expected, info.Names); d != "" {
		t.Error(d)
	}

	_, err = Decode(makePost(Version25, 0, 1, 0xFF))
	if !parser.IsFormatError(err) {
		t.Errorf("negative index: got %v", err)
	}
}

func TestVersion4(t *testing.T) {
	info, err := Decode(makePost(Version4, 0xFF, 0xFF, 0, 65, 0, 66, 7))
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff([]uint16{0xFFFF, 65, 66}, info.CharCodes); d != "" {
		t.Error(d)
	}
	if info.Names != nil {
		t.Errorf("unexpected names %q", info.Names)
	}
}

func TestDecodeErrors(t *testing.T) {
	if _, err := Decode(makePost(0x00050000)); !parser.IsUnsupported(err) {
		t.Errorf("version 5: got %v", err)
	}
	if _, err := Decode(makePost(Version3)[:31]); !parser.IsFormatError(err) {
		t.Errorf("short table: got %v", err)
	}
}

func TestCheck(t *testing.T) {
	info := &Info{MaxMemType1: 4294967295}
	if err := info.Check(); err != nil {
		t.Errorf("4294967295: %v", err)
	}
	info.MinMemType42 = 4294967296
	if err := info.Check(); !parser.IsRangeError(err) {
		t.Errorf("4294967296: got %v", err)
	}
	info.MinMemType42 = -1
	if err := info.Check(); !parser.IsRangeError(err) {
		t.Errorf("-1: got %v", err)
	}
}

func TestVersionString(t *testing.T) {
	for v, s := range map[Version]string{
		Version1:  "1.0",
		Version2:  "2.0",
		Version25: "2.5",
		Version3:  "3.0",
		Version4:  "4.0",
	} {
		if v.String() != s {
			t.Errorf("%08x: %q != %q", uint32(v), v.String(), s)
		}
	}
}

func TestGoRegular(t *testing.T) {
	ref, err := sfnt.Parse(goregular.TTF)
	if err != nil {
		t.Fatal(err)
	}

	r := bytes.NewReader(goregular.TTF)
	toc, err := header.Read(r)
	if err != nil {
		t.Fatal(err)
	}
	data, err := toc.ReadTableBytes(r, header.TagPost)
	if err != nil {
		t.Fatal(err)
	}
	info, err := Decode(data)
	if err != nil {
		t.Fatal(err)
	}
	if info.Names == nil {
		return
	}
	if len(info.Names) != ref.NumGlyphs() {
		t.Fatalf("%d names for %d glyphs", len(info.Names), ref.NumGlyphs())
	}

	var buf sfnt.Buffer
	for gid, name := range info.Names {
		want, err := ref.GlyphName(&buf, sfnt.GlyphIndex(gid))
		if err != nil {
			continue
		}
		if name != want {
			t.Errorf("glyph %d: %q != %q", gid, name, want)
		}
	}
}

func FuzzDecode(f *testing.F) {
	f.Add(makePost(Version1))
	f.Add(makePost(Version2, 0, 2, 0, 3, 1, 2, 1, 'x'))
	f.Add(makePost(Version25, 0, 2, 0, 1))
	f.Add(makePost(Version3))
	f.Add(makePost(Version4, 0, 65))
	f.Fuzz(func(t *testing.T, data []byte) {
		info, err := Decode(data)
		if err != nil {
			return
		}
		if err := info.Check(); err != nil {
			t.Error(err)
		}
	})
}

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

package head

import (
	"bytes"
	"encoding/binary"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"

	"seehuhn.de/go/postscript/funit"

	"seehuhn.de/go/fontinfo/header"
	"seehuhn.de/go/fontinfo/parser"
)

func encode(enc *binaryHead) []byte {
	buf := &bytes.Buffer{}
	_ = binary.Write(buf, binary.BigEndian, enc)
	return buf.Bytes()
}

func sample() *binaryHead {
	return &binaryHead{
		Version:          0x00010000,
		FontRevision:     0x00018000,
		MagicNumber:      0x5F0F3CF5,
		Flags:            1<<0 | 1<<4,
		UnitsPerEm:       1000,
		Created:          3_600_000_000,
		XMin:             -50,
		YMin:             -200,
		XMax:             1000,
		YMax:             900,
		MacStyle:         1<<1 | 1<<5,
		LowestRecPPEM:    9,
		IndexToLocFormat: 1,
	}
}

func TestDecode(t *testing.T) {
	data := encode(sample())
	if len(data) != headLength {
		t.Fatalf("wrong head length %d", len(data))
	}
	info, err := Decode(data)
	if err != nil {
		t.Fatal(err)
	}

	created := time.Date(1904, time.January, 1, 0, 0, 0, 0, time.UTC).
		Add(3_600_000_000 * time.Second)
	expected := &Info{
		FontRevision:   0x00018000,
		HasYBaseAt0:    true,
		IsNonlinear:    true,
		UnitsPerEm:     1000,
		Created:        created,
		FontBBox:       funit.Rect16{LLx: -50, LLy: -200, URx: 1000, URy: 900},
		IsItalic:       true,
		IsCondensed:    true,
		LowestRecPPEM:  9,
		HasLongOffsets: true,
	}
	if d := cmp.Diff(expected, info); d != "" {
		t.Error(d)
	}
	if s := info.FontRevision.String(); s != "1.500" {
		t.Errorf("wrong revision string %q", s)
	}
	if info.Tag() != header.TagHead {
		t.Error("wrong tag")
	}

	M := info.FontMatrix()
	if x, y := M.Apply(1000, 500); x != 1 || y != 0.5 {
		t.Errorf("wrong font matrix %v", M)
	}
}

func TestDecodeErrors(t *testing.T) {
	badMagic := sample()
	badMagic.MagicNumber = 0x12345678
	badVersion := sample()
	badVersion.Version = 0x00020000
	zeroUnits := sample()
	zeroUnits.UnitsPerEm = 0

	if _, err := Decode(encode(badMagic)); !parser.IsFormatError(err) {
		t.Errorf("bad magic: %v", err)
	}
	if _, err := Decode(encode(badVersion)); !parser.IsUnsupported(err) {
		t.Errorf("bad version: %v", err)
	}
	if _, err := Decode(encode(zeroUnits)); !parser.IsFormatError(err) {
		t.Errorf("zero unitsPerEm: %v", err)
	}
	if _, err := Decode(encode(sample())[:40]); !parser.IsFormatError(err) {
		t.Errorf("truncated table: %v", err)
	}
}

func TestCheck(t *testing.T) {
	info := &Info{UnitsPerEm: 65535, LowestRecPPEM: 0}
	if err := info.Check(); err != nil {
		t.Error(err)
	}
	info.UnitsPerEm = 65536
	if err := info.Check(); !parser.IsRangeError(err) {
		t.Errorf("UnitsPerEm=65536 accepted: %v", err)
	}
	info.UnitsPerEm = 1000
	info.LowestRecPPEM = -1
	if err := info.Check(); !parser.IsRangeError(err) {
		t.Errorf("LowestRecPPEM=-1 accepted: %v", err)
	}
}

func TestEpoch(t *testing.T) {
	epoch := time.Date(1904, time.January, 1, 0, 0, 0, 0, time.UTC)
	if zeroTime != epoch.Unix() {
		t.Errorf("zeroTime != %d", epoch.Unix())
	}
	if !decodeTime(0).IsZero() {
		t.Error("decodeTime(0) != zero")
	}
	for _, x := range []int64{1, 1000, 1000000000, -1} {
		if decodeTime(x+1).Unix() != decodeTime(x).Unix()+1 {
			t.Errorf("decodeTime(%d+1) != decodeTime(%d)+1", x, x)
		}
	}
}

func TestGoRegular(t *testing.T) {
	r := bytes.NewReader(goregular.TTF)
	toc, err := header.Read(r)
	if err != nil {
		t.Fatal(err)
	}
	data, err := toc.ReadTableBytes(r, header.TagHead)
	if err != nil {
		t.Fatal(err)
	}
	info, err := Decode(data)
	if err != nil {
		t.Fatal(err)
	}

	ref, err := sfnt.Parse(goregular.TTF)
	if err != nil {
		t.Fatal(err)
	}
	if info.UnitsPerEm != int(ref.UnitsPerEm()) {
		t.Errorf("UnitsPerEm = %d, expected %d", info.UnitsPerEm, ref.UnitsPerEm())
	}
	if info.FontBBox.IsZero() {
		t.Error("empty font bounding box")
	}
}

func FuzzDecode(f *testing.F) {
	f.Add(encode(sample()))
	f.Fuzz(func(t *testing.T, data []byte) {
		info, err := Decode(data)
		if err != nil {
			return
		}
		if info.UnitsPerEm == 0 {
			t.Error("zero unitsPerEm accepted")
		}
	})
}

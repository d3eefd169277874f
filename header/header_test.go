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

import (
	"bytes"
	"encoding/binary"
	"io"
	"runtime"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/image/font/gofont/goregular"

	"seehuhn.de/go/fontinfo/parser"
)

// makeDirectory returns the bytes of a table directory with the given
// tags, followed by four bytes of body for every table.
func makeDirectory(scalerType uint32, tags ...string) []byte {
	n := len(tags)
	buf := make([]byte, 12+16*n+4*n)
	binary.BigEndian.PutUint32(buf[0:], scalerType)
	binary.BigEndian.PutUint16(buf[4:], uint16(n))
	binary.BigEndian.PutUint16(buf[6:], 16)
	for i, tag := range tags {
		rec := buf[12+16*i:]
		copy(rec[:4], tag)
		binary.BigEndian.PutUint32(rec[8:], uint32(12+16*n+4*i))
		binary.BigEndian.PutUint32(rec[12:], 4)
	}
	return buf
}

func TestReadGoRegular(t *testing.T) {
	r := bytes.NewReader(goregular.TTF)
	info, err := Read(r)
	if err != nil {
		t.Fatal(err)
	}
	if info.ScalerType != ScalerTypeTrueType || info.IsCFF() {
		t.Errorf("wrong scaler type 0x%08X", info.ScalerType)
	}
	if err := info.CheckValidity(); err != nil {
		t.Error(err)
	}
	for _, tag := range info.Tags() {
		err := info.VerifyChecksum(r, tag)
		if err != nil {
			t.Error(err)
		}
	}

	tags := info.Tags()
	for i := 1; i < len(tags); i++ {
		if info.Toc[tags[i-1]].Offset > info.Toc[tags[i]].Offset {
			t.Errorf("tags not sorted by offset: %q before %q", tags[i-1], tags[i])
		}
	}
}

func TestBadMagic(t *testing.T) {
	data := makeDirectory(0xDEADBEEF, "cmap")
	_, err := Read(bytes.NewReader(data))
	if !parser.IsFormatError(err) {
		t.Fatalf("expected format error, got %v", err)
	}

	// The magic number is checked before the rest of the directory is read.
	_, err = Read(bytes.NewReader([]byte{0xDE, 0xAD, 0xBE, 0xEF}))
	if !parser.IsFormatError(err) || !strings.Contains(err.Error(), "0xDEADBEEF") {
		t.Errorf("unexpected error %v", err)
	}
}

func TestEmptyDirectory(t *testing.T) {
	data := makeDirectory(ScalerTypeTrueType)
	info, err := Read(bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	if len(info.Toc) != 0 {
		t.Fatalf("unexpected tables %v", info.Toc)
	}

	err = info.CheckValidity()
	if !parser.IsFormatError(err) {
		t.Fatalf("expected format error, got %v", err)
	}
	for _, name := range []string{"cmap", "head", "hhea", "hmtx", "maxp", "name", "OS/2", "post", "glyf", "loca"} {
		if !strings.Contains(err.Error(), name) {
			t.Errorf("missing table %q not reported in %q", name, err)
		}
	}
}

func TestCheckValidityCFF(t *testing.T) {
	tags := []string{"cmap", "head", "hhea", "hmtx", "maxp", "name", "OS/2", "post"}
	info, err := Read(bytes.NewReader(makeDirectory(ScalerTypeCFF, tags...)))
	if err != nil {
		t.Fatal(err)
	}
	err = info.CheckValidity()
	if err == nil || !strings.Contains(err.Error(), "CFF ") {
		t.Errorf("missing CFF table not reported: %v", err)
	}
	if strings.Contains(err.Error(), "glyf") {
		t.Errorf("glyf reported for CFF font: %v", err)
	}

	info, err = Read(bytes.NewReader(makeDirectory(ScalerTypeCFF, append(tags, "CFF2")...)))
	if err != nil {
		t.Fatal(err)
	}
	if err := info.CheckValidity(); err != nil {
		t.Error(err)
	}
}

func TestDuplicateTag(t *testing.T) {
	data := makeDirectory(ScalerTypeTrueType, "head", "cmap", "head")
	_, err := Read(bytes.NewReader(data))
	if !parser.IsFormatError(err) {
		t.Errorf("duplicate tag not detected: %v", err)
	}
}

func TestMalformedTag(t *testing.T) {
	data := makeDirectory(ScalerTypeTrueType, "he\x01d")
	_, err := Read(bytes.NewReader(data))
	if !parser.IsFormatError(err) {
		t.Errorf("malformed tag not detected: %v", err)
	}
}

func TestTruncatedDirectory(t *testing.T) {
	data := makeDirectory(ScalerTypeTrueType, "head", "cmap")
	_, err := Read(bytes.NewReader(data[:30]))
	if !parser.IsFormatError(err) {
		t.Errorf("truncated directory not detected: %v", err)
	}
}

func TestReadTableBytes(t *testing.T) {
	data := makeDirectory(ScalerTypeTrueType, "abcd", "efgh")
	body := data[12+32:]
	copy(body, "1234WXYZ")
	r := bytes.NewReader(data)
	info, err := Read(r)
	if err != nil {
		t.Fatal(err)
	}

	got, err := info.ReadTableBytes(r, MakeTag("efgh"))
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff([]byte("WXYZ"), got); d != "" {
		t.Error(d)
	}

	_, err = info.ReadTableBytes(r, MakeTag("xxxx"))
	if !IsMissing(err) {
		t.Errorf("expected missing table error, got %v", err)
	}

	_, err = info.ReadTableBytes(bytes.NewReader(data[:len(data)-1]), MakeTag("efgh"))
	if !parser.IsFormatError(err) {
		t.Errorf("expected format error, got %v", err)
	}
}

// readerAt hides the Size method of the underlying reader.
type readerAt struct {
	r io.ReaderAt
}

func (r readerAt) ReadAt(p []byte, off int64) (int, error) {
	return r.r.ReadAt(p, off)
}

func TestReadTableBytesHugeLength(t *testing.T) {
	data := makeDirectory(ScalerTypeTrueType, "cmap")
	binary.BigEndian.PutUint32(data[12+12:], 0xC0000000)

	info, err := Read(bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}

	readers := map[string]io.ReaderAt{
		"bytes.Reader":  bytes.NewReader(data),
		"SectionReader": io.NewSectionReader(bytes.NewReader(data), 0, int64(len(data))),
		"unsized":       readerAt{bytes.NewReader(data)},
	}
	for name, r := range readers {
		t.Run(name, func(t *testing.T) {
			var before, after runtime.MemStats
			runtime.ReadMemStats(&before)
			_, err := info.ReadTableBytes(r, TagCmap)
			runtime.ReadMemStats(&after)

			if !parser.IsFormatError(err) {
				t.Errorf("expected format error, got %v", err)
			}
			if alloc := after.TotalAlloc - before.TotalAlloc; alloc > 16<<20 {
				t.Errorf("reading a %d byte file allocated %d bytes", len(data), alloc)
			}
		})
	}
}

func TestReadTableBytesUnsized(t *testing.T) {
	data := makeDirectory(ScalerTypeTrueType, "abcd", "efgh")
	copy(data[12+32:], "1234WXYZ")
	info, err := Read(bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}

	got, err := info.ReadTableBytes(readerAt{bytes.NewReader(data)}, MakeTag("efgh"))
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff([]byte("WXYZ"), got); d != "" {
		t.Error(d)
	}

	short := readerAt{bytes.NewReader(data[:len(data)-1])}
	_, err = info.ReadTableBytes(short, MakeTag("efgh"))
	if !parser.IsFormatError(err) {
		t.Errorf("expected format error, got %v", err)
	}
}

func TestTag(t *testing.T) {
	if MakeTag("cvt") != (Tag{'c', 'v', 't', ' '}) {
		t.Error("tag not padded")
	}
	if TagOS2.String() != "OS/2" {
		t.Error("wrong string")
	}
	if !TagCFF.IsValid() || (Tag{0, 'a', 'b', 'c'}).IsValid() {
		t.Error("IsValid is wrong")
	}
}

func TestChecksum(t *testing.T) {
	cases := []struct {
		Body     []byte
		Expected uint32
	}{
		{[]byte{0, 1, 2, 3}, 0x00010203},
		{[]byte{0, 1, 2, 3, 4, 5, 6, 7}, 0x0406080a},
		{[]byte{1}, 0x01000000},
		{[]byte{1, 2, 3}, 0x01020300},
		{[]byte{1, 0, 0, 0, 1}, 0x02000000},
		{[]byte{255, 255, 255, 255, 0, 0, 0, 1}, 0},
	}

	for i, test := range cases {
		computed := Checksum(test.Body)
		if computed != test.Expected {
			t.Errorf("test %d failed: %08x != %08x",
				i+1, computed, test.Expected)
		}
	}
}

func FuzzRead(f *testing.F) {
	f.Add(makeDirectory(ScalerTypeTrueType, "head", "cmap"))
	f.Add(makeDirectory(ScalerTypeCFF))
	f.Add(goregular.TTF[:200])
	f.Fuzz(func(t *testing.T, data []byte) {
		info, err := Read(bytes.NewReader(data))
		if err != nil {
			return
		}
		for tag := range info.Toc {
			if !tag.IsValid() {
				t.Errorf("invalid tag %q accepted", tag)
			}
		}
	})
}

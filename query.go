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

package fontinfo

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/postscript/funit"

	"seehuhn.de/go/fontinfo/glyph"
	"seehuhn.de/go/fontinfo/name"
	"seehuhn.de/go/fontinfo/parser"
)

// GlyphID returns the glyph which the "cmap" table maps the given
// character code to.  The subtable is chosen using
// cmap.Table.SelectPlatform.
//
// Codes outside the range of uint32 give a *parser.RangeError.  If the
// font has no cmap subtable for the platform, or if the code is not
// mapped, glyph 0 is returned.
func (f *Font) GlyphID(platformID uint16, code int64) (glyph.ID, error) {
	err := parser.CheckUint32("code", code)
	if err != nil {
		return 0, err
	}
	table, err := f.CMap()
	if err != nil {
		return 0, err
	}
	m := table.SelectPlatform(platformID)
	if m == nil {
		return 0, nil
	}
	return m.Subtable.Lookup(uint32(code)), nil
}

// AdvanceWidth returns the advance width of the glyph for the given
// character code, in font design units.
// Unmapped codes give the width of glyph 0.
func (f *Font) AdvanceWidth(platformID uint16, code int64) (funit.Int16, error) {
	gid, err := f.GlyphID(platformID, code)
	if err != nil {
		return 0, err
	}
	hmtxInfo, err := f.Hmtx()
	if err != nil || hmtxInfo == nil {
		return 0, err
	}
	return hmtxInfo.GlyphWidth(gid), nil
}

// HasGlyphDefined reports whether the given character code is mapped to
// a glyph other than glyph 0.
func (f *Font) HasGlyphDefined(platformID uint16, code int64) (bool, error) {
	gid, err := f.GlyphID(platformID, code)
	if err != nil {
		return false, err
	}
	return gid != 0, nil
}

// NumGlyphs returns the number of glyphs in the font,
// as given in the "maxp" table.
func (f *Font) NumGlyphs() (int, error) {
	maxpInfo, err := f.Maxp()
	if err != nil || maxpInfo == nil {
		return 0, err
	}
	return maxpInfo.NumGlyphs, nil
}

// FamilyName returns the font family name.
// The typographic family name is used if present.
func (f *Font) FamilyName() (string, error) {
	return f.lookupName(name.TypographicFamily, name.Family)
}

// FullName returns the full name of the font.
func (f *Font) FullName() (string, error) {
	return f.lookupName(name.FullName)
}

// PostScriptName returns the PostScript name of the font.
func (f *Font) PostScriptName() (string, error) {
	return f.lookupName(name.PostScriptName)
}

func (f *Font) lookupName(ids ...name.ID) (string, error) {
	nameInfo, err := f.Name()
	if err != nil || nameInfo == nil {
		return "", err
	}
	for _, id := range ids {
		if s := nameInfo.Get(id); s != "" {
			return s, nil
		}
	}
	return "", nil
}

// FontMatrix returns the matrix which maps font design units to text
// space units.
func (f *Font) FontMatrix() (matrix.Matrix, error) {
	headInfo, err := f.Head()
	if err != nil {
		return matrix.Matrix{}, err
	}
	if headInfo == nil {
		return matrix.Matrix{}, &parser.InvalidFontError{
			SubSystem: "sfnt",
			Reason:    "missing head table",
		}
	}
	return headInfo.FontMatrix(), nil
}

// BBoxPDF returns the font bounding box from the "head" table in PDF glyph
// space units (1/1000th of a text space unit).
func (f *Font) BBoxPDF() (rect.Rect, error) {
	headInfo, err := f.Head()
	if err != nil || headInfo == nil {
		return rect.Rect{}, err
	}

	var bbox rect.Rect
	b := headInfo.FontBBox
	if b.IsZero() {
		return bbox, nil
	}
	M := headInfo.FontMatrix().Mul(matrix.Scale(1000, 1000))
	type p16 struct {
		x, y funit.Int16
	}
	first := true
	for _, p := range []p16{{b.LLx, b.LLy}, {b.URx, b.LLy}, {b.URx, b.URy}, {b.LLx, b.URy}} {
		x, y := M.Apply(float64(p.x), float64(p.y))
		if first || x < bbox.LLx {
			bbox.LLx = x
		}
		if first || x > bbox.URx {
			bbox.URx = x
		}
		if first || y < bbox.LLy {
			bbox.LLy = y
		}
		if first || y > bbox.URy {
			bbox.URy = y
		}
		first = false
	}
	return bbox, nil
}

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

// Package name reads OpenType "name" tables.
// These tables contain localized strings associated with a font.
// https://docs.microsoft.com/en-us/typography/opentype/spec/name
package name

import (
	"fmt"
	"sort"
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/text/language"

	"seehuhn.de/go/fontinfo/header"
	"seehuhn.de/go/fontinfo/parser"
)

func tracer() tracing.Trace {
	return tracing.Select("fontinfo.name")
}

// Info contains information from the "name" table.
type Info struct {
	Version int
	Records []Record

	// LangTags contains the language-tag records of a version 1 table.
	// Language ID 0x8000+i refers to LangTags[i].
	LangTags []string
}

// Record is one entry of a name table.
type Record struct {
	PlatformID uint16
	EncodingID uint16
	LanguageID uint16
	NameID     ID

	// Language is the BCP 47 tag corresponding to LanguageID,
	// or the empty string if the language is unknown.
	Language string

	Value string

	// Filler is set if the text encoding of the record is not supported.
	// Such records have an empty Value and are never returned by the lookup
	// methods.
	Filler bool
}

// Tag returns the table tag "name".
func (*Info) Tag() header.Tag {
	return header.TagName
}

// Decode extracts information from the "name" table.
func Decode(data []byte) (*Info, error) {
	if len(data) < 6 {
		return nil, errMalformedNames
	}
	version := uint16(data[0])<<8 | uint16(data[1])
	numRec := int(data[2])<<8 | int(data[3])
	storageOffset := int(data[4])<<8 | int(data[5])

	if version > 1 {
		return nil, &parser.NotSupportedError{
			SubSystem: "sfnt/name",
			Feature:   fmt.Sprintf("name table version %d", version),
		}
	}

	recBase := 6
	endOfHeader := recBase + 12*numRec
	if endOfHeader > len(data) {
		return nil, errMalformedNames
	}

	info := &Info{
		Version: int(version),
	}

	if version > 0 {
		if endOfHeader+2 > len(data) {
			return nil, errMalformedNames
		}
		numLang := int(data[endOfHeader])<<8 | int(data[endOfHeader+1])
		langBase := endOfHeader + 2
		endOfHeader = langBase + 4*numLang
		if endOfHeader > len(data) {
			return nil, errMalformedNames
		}
		for i := 0; i < numLang; i++ {
			pos := langBase + 4*i
			tagLen := int(data[pos])<<8 | int(data[pos+1])
			tagOffset := int(data[pos+2])<<8 | int(data[pos+3])
			start := storageOffset + tagOffset
			if start+tagLen > len(data) {
				return nil, errMalformedNames
			}
			tag, ok := decodeText(PlatformUnicode, 1, data[start:start+tagLen])
			if !ok {
				return nil, errMalformedNames
			}
			info.LangTags = append(info.LangTags, tag)
		}
	}
	if storageOffset < endOfHeader || storageOffset > len(data) {
		return nil, errMalformedNames
	}

	info.Records = make([]Record, numRec)
	for i := 0; i < numRec; i++ {
		pos := recBase + i*12
		rec := &info.Records[i]
		rec.PlatformID = uint16(data[pos])<<8 | uint16(data[pos+1])
		rec.EncodingID = uint16(data[pos+2])<<8 | uint16(data[pos+3])
		rec.LanguageID = uint16(data[pos+4])<<8 | uint16(data[pos+5])
		rec.NameID = ID(data[pos+6])<<8 | ID(data[pos+7])
		nameLen := int(data[pos+8])<<8 | int(data[pos+9])
		nameOffset := int(data[pos+10])<<8 | int(data[pos+11])

		if storageOffset+nameOffset+nameLen > len(data) {
			return nil, errMalformedNames
		}
		nameBytes := data[storageOffset+nameOffset : storageOffset+nameOffset+nameLen]

		rec.Language = info.language(rec.PlatformID, rec.LanguageID)
		val, ok := decodeText(rec.PlatformID, rec.EncodingID, nameBytes)
		if !ok {
			tracer().Debugf("name: keeping (%d,%d) record for name %d as filler",
				rec.PlatformID, rec.EncodingID, rec.NameID)
			rec.Filler = true
			continue
		}
		rec.Value = val
	}

	return info, nil
}

func (info *Info) language(platformID, languageID uint16) string {
	if languageID >= 0x8000 {
		idx := int(languageID - 0x8000)
		if idx < len(info.LangTags) {
			return info.LangTags[idx]
		}
		return ""
	}
	switch platformID {
	case PlatformMacintosh:
		return appleBCP[languageID]
	case PlatformWindows:
		return msBCP[languageID]
	}
	return ""
}

// Lookup returns the string for the given platform, encoding, language and
// name ID.  Filler records are skipped.
func (info *Info) Lookup(platformID, encodingID, languageID uint16, nameID ID) (string, bool) {
	for i := range info.Records {
		rec := &info.Records[i]
		if rec.Filler || rec.PlatformID != platformID ||
			rec.EncodingID != encodingID || rec.LanguageID != languageID ||
			rec.NameID != nameID {
			continue
		}
		return rec.Value, true
	}
	return "", false
}

// Get returns the string with the given name ID which best matches the
// given language preferences.  If no preferences are given, American
// English is used.  If the table has no usable record with the given name
// ID, the empty string is returned.
func (info *Info) Get(nameID ID, prefs ...language.Tag) string {
	type cand struct {
		rank  int
		value string
	}
	byLang := make(map[string]cand)
	for i := range info.Records {
		rec := &info.Records[i]
		if rec.Filler || rec.NameID != nameID || rec.Value == "" {
			continue
		}
		c := cand{rank: platformRank(rec.PlatformID), value: rec.Value}
		if old, ok := byLang[rec.Language]; ok && old.rank <= c.rank {
			continue
		}
		byLang[rec.Language] = c
	}
	if len(byLang) == 0 {
		return ""
	}

	keys := make([]string, 0, len(byLang))
	for key := range byLang {
		keys = append(keys, key)
	}
	sortLanguages(keys)

	tags := make([]language.Tag, len(keys))
	for i, key := range keys {
		tag, err := language.Parse(key)
		if err != nil {
			tag = language.Und
		}
		tags[i] = tag
	}
	if len(prefs) == 0 {
		prefs = []language.Tag{language.AmericanEnglish}
	}
	_, index, _ := language.NewMatcher(tags).Match(prefs...)
	return byLang[keys[index]].value
}

// Languages returns the languages for which the table contains strings.
// The result is sorted, with English variants first.
func (info *Info) Languages() []string {
	seen := make(map[string]bool)
	var res []string
	for i := range info.Records {
		rec := &info.Records[i]
		if rec.Filler || rec.Language == "" || seen[rec.Language] {
			continue
		}
		seen[rec.Language] = true
		res = append(res, rec.Language)
	}
	sortLanguages(res)
	return res
}

// sortLanguages puts American English first, followed by the other
// variants of English, followed by all other languages in alphabetical
// order.  The first entry is used by the language matcher when none of the
// preferences match.
func sortLanguages(keys []string) {
	score := func(key string) int {
		switch {
		case key == "en-US":
			return 0
		case key == "en" || strings.HasPrefix(key, "en-"):
			return 1
		case key == "":
			return 3
		default:
			return 2
		}
	}
	sort.Slice(keys, func(i, j int) bool {
		si, sj := score(keys[i]), score(keys[j])
		if si != sj {
			return si < sj
		}
		return keys[i] < keys[j]
	})
}

func platformRank(platformID uint16) int {
	switch platformID {
	case PlatformWindows:
		return 0
	case PlatformUnicode:
		return 1
	case PlatformMacintosh:
		return 2
	default:
		return 3
	}
}

var errMalformedNames = &parser.InvalidFontError{
	SubSystem: "sfnt/name",
	Reason:    "malformed name table",
}

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
	"sync"
	"sync/atomic"

	"seehuhn.de/go/fontinfo/cmap"
	"seehuhn.de/go/fontinfo/head"
	"seehuhn.de/go/fontinfo/header"
	"seehuhn.de/go/fontinfo/hhea"
	"seehuhn.de/go/fontinfo/hmtx"
	"seehuhn.de/go/fontinfo/maxp"
	"seehuhn.de/go/fontinfo/name"
	"seehuhn.de/go/fontinfo/os2"
	"seehuhn.de/go/fontinfo/parser"
	"seehuhn.de/go/fontinfo/post"
)

// Table is a decoded sfnt table.
//
// The decoded tables are *head.Info, *hhea.Info, *hmtx.Info, *maxp.Info,
// *os2.Info, *name.Info, *post.Info and cmap.Table.  All other tables are
// returned as *Raw.
type Table interface {
	Tag() header.Tag
}

// Raw holds the undecoded contents of a table.
type Raw struct {
	TableTag header.Tag
	Data     []byte
}

// Tag returns the tag of the table.
func (r *Raw) Tag() header.Tag {
	return r.TableTag
}

// State describes the decoding state of a table.
type State int32

// These are the possible values of State.
const (
	NotLoaded State = iota // the table has not been accessed yet
	Loaded                 // the table was decoded successfully
	Failed                 // decoding the table failed
	Absent                 // the font has no such table
)

func (s State) String() string {
	switch s {
	case NotLoaded:
		return "not loaded"
	case Loaded:
		return "loaded"
	case Failed:
		return "failed"
	case Absent:
		return "absent"
	default:
		return "invalid state"
	}
}

// A slot holds the decoded form of one table.  The table is decoded at
// most once, and the result (or the error) is kept.
type slot struct {
	once  sync.Once
	state atomic.Int32

	table Table
	err   error
}

// State returns the decoding state of the table with the given tag.
func (f *Font) State(tag header.Tag) State {
	s := f.slots[tag]
	if s == nil {
		return Absent
	}
	return State(s.state.Load())
}

// Table returns the decoded table with the given tag.
// If the font has no such table, (nil, nil) is returned.
//
// Each table is decoded only once.  Later calls return the same table, or
// the same error, as the first call.
func (f *Font) Table(tag header.Tag) (Table, error) {
	s := f.slots[tag]
	if s == nil {
		return nil, nil
	}
	s.once.Do(func() {
		table, err := f.decode(tag)
		if err != nil {
			tracer().Errorf("%s: cannot decode %q table: %v", f.Source, tag, err)
			s.err = err
			s.state.Store(int32(Failed))
			return
		}
		tracer().Debugf("%s: decoded %q table", f.Source, tag)
		s.table = table
		s.state.Store(int32(Loaded))
	})
	return s.table, s.err
}

func (f *Font) decode(tag header.Tag) (Table, error) {
	data, err := f.Header.ReadTableBytes(f.r, tag)
	if err != nil {
		return nil, err
	}

	switch tag {
	case header.TagHead:
		return head.Decode(data)
	case header.TagHhea:
		return hhea.Decode(data)
	case header.TagHmtx:
		hheaInfo, err := f.Hhea()
		if err != nil {
			return nil, err
		}
		maxpInfo, err := f.Maxp()
		if err != nil {
			return nil, err
		}
		if hheaInfo == nil || maxpInfo == nil {
			return nil, &parser.InvalidFontError{
				SubSystem: "sfnt/hmtx",
				Reason:    "hmtx table requires hhea and maxp",
			}
		}
		return hmtx.Decode(data, hheaInfo.NumOfLongHorMetrics, maxpInfo.NumGlyphs)
	case header.TagMaxp:
		return maxp.Decode(data)
	case header.TagOS2:
		return os2.Decode(data)
	case header.TagName:
		return name.Decode(data)
	case header.TagPost:
		return post.Decode(data)
	case header.TagCmap:
		return cmap.Decode(data)
	default:
		return &Raw{TableTag: tag, Data: data}, nil
	}
}

func get[T Table](f *Font, tag header.Tag) (T, error) {
	var zero T
	table, err := f.Table(tag)
	if err != nil || table == nil {
		return zero, err
	}
	return table.(T), nil
}

// Head returns the decoded "head" table.
func (f *Font) Head() (*head.Info, error) {
	return get[*head.Info](f, header.TagHead)
}

// Hhea returns the decoded "hhea" table.
func (f *Font) Hhea() (*hhea.Info, error) {
	return get[*hhea.Info](f, header.TagHhea)
}

// Hmtx returns the decoded "hmtx" table.
// Decoding this table also decodes the "hhea" and "maxp" tables.
func (f *Font) Hmtx() (*hmtx.Info, error) {
	return get[*hmtx.Info](f, header.TagHmtx)
}

// Maxp returns the decoded "maxp" table.
func (f *Font) Maxp() (*maxp.Info, error) {
	return get[*maxp.Info](f, header.TagMaxp)
}

// OS2 returns the decoded "OS/2" table.
func (f *Font) OS2() (*os2.Info, error) {
	return get[*os2.Info](f, header.TagOS2)
}

// Name returns the decoded "name" table.
func (f *Font) Name() (*name.Info, error) {
	return get[*name.Info](f, header.TagName)
}

// Post returns the decoded "post" table.
func (f *Font) Post() (*post.Info, error) {
	return get[*post.Info](f, header.TagPost)
}

// CMap returns the decoded "cmap" table.
func (f *Font) CMap() (cmap.Table, error) {
	return get[cmap.Table](f, header.TagCmap)
}

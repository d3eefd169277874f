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

// Package bitfield decodes wide flag fields, stored as a sequence of bytes,
// into named boolean properties.
//
// A bitfield type declares a [Layout] which lists, for every byte position
// it uses, which bits carry which named flags.  Decoding walks the byte
// sequence once and hands the eight bits of every used byte to a setter
// provided by the bitfield type.
package bitfield

import (
	"fmt"
	"sort"
	"strings"
)

// NoFlags is the string representation of a bitfield where no flag is set.
const NoFlags = "(none)"

// Flag declares one named bit in a [Layout].
type Flag struct {
	Pos   int    // byte position in the encoded data
	Bit   uint8  // bit within the byte, 0 = least significant
	Index int    // logical bit number used by the bitfield type
	Name  string // human readable name
}

// Layout describes the named bits of a bitfield which occupies a fixed
// number of bytes.
type Layout struct {
	size   int
	used   []bool // used[pos] is true if the byte carries declared flags
	byIdx  []Flag // sorted by Index
	byName map[string]int
}

// NewLayout creates a new layout for a bitfield of the given size in bytes.
// NewLayout panics if a flag lies outside the bitfield, or if two flags share
// a bit, an index or a name.
func NewLayout(size int, flags ...Flag) *Layout {
	l := &Layout{
		size:   size,
		used:   make([]bool, size),
		byName: make(map[string]int, len(flags)),
	}
	seenBit := make(map[[2]int]bool, len(flags))
	seenIdx := make(map[int]bool, len(flags))
	for _, f := range flags {
		if f.Pos < 0 || f.Pos >= size || f.Bit > 7 {
			panic(fmt.Sprintf("bitfield: flag %q outside of %d bytes", f.Name, size))
		}
		key := [2]int{f.Pos, int(f.Bit)}
		if seenBit[key] || seenIdx[f.Index] {
			panic(fmt.Sprintf("bitfield: duplicate flag %q", f.Name))
		}
		if _, dup := l.byName[f.Name]; dup {
			panic(fmt.Sprintf("bitfield: duplicate name %q", f.Name))
		}
		seenBit[key] = true
		seenIdx[f.Index] = true
		l.byName[f.Name] = f.Index
		l.used[f.Pos] = true
		l.byIdx = append(l.byIdx, f)
	}
	sort.Slice(l.byIdx, func(i, j int) bool {
		return l.byIdx[i].Index < l.byIdx[j].Index
	})
	return l
}

// Size returns the number of bytes occupied by the bitfield.
func (l *Layout) Size() int {
	return l.size
}

// Flags returns the declared flags, ordered by index.
func (l *Layout) Flags() []Flag {
	return l.byIdx
}

// Index returns the logical bit number of the flag with the given name.
func (l *Layout) Index(name string) (int, bool) {
	idx, ok := l.byName[name]
	return idx, ok
}

// Decode walks the first l.Size() bytes of data.  For every byte position
// which carries declared flags, set is called with the eight bits of the
// byte.  Decode never looks at bytes beyond l.Size().
func (l *Layout) Decode(data []byte, set func(pos int, bits [8]bool)) error {
	if len(data) < l.size {
		return fmt.Errorf("bitfield: need %d bytes, got %d", l.size, len(data))
	}
	for pos := 0; pos < l.size; pos++ {
		if !l.used[pos] {
			continue
		}
		set(pos, ByteBits(data[pos]))
	}
	return nil
}

// Format returns the names of all flags for which isSet returns true,
// separated by commas.  If no flag is set, [NoFlags] is returned.
func (l *Layout) Format(isSet func(index int) bool) string {
	var names []string
	for _, f := range l.byIdx {
		if isSet(f.Index) {
			names = append(names, f.Name)
		}
	}
	if len(names) == 0 {
		return NoFlags
	}
	return strings.Join(names, ", ")
}

// ByteBits splits a byte into its bits, least significant bit first.
func ByteBits(b byte) [8]bool {
	var res [8]bool
	for i := range res {
		res[i] = b&(1<<i) != 0
	}
	return res
}

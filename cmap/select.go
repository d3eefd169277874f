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
	"errors"
)

// Select returns the best subtable for the given platform and encoding.
//
// If no subtable matches exactly, the following fallbacks are tried:
// For the Windows platform, encoding 10 (full Unicode) and then encoding 1
// (Unicode BMP) are used.  For the Macintosh platform, encoding 0 (Roman) and
// then the first subtable for the platform are used.  For all other
// platforms, the last subtable for the platform is used.
//
// If no suitable subtable exists, nil is returned.
func (t Table) Select(platformID, encodingID uint16) *Mapping {
	if m := t.find(platformID, encodingID); m != nil {
		return m
	}

	switch platformID {
	case PlatformWindows:
		if m := t.find(PlatformWindows, 10); m != nil {
			return m
		}
		return t.find(PlatformWindows, 1)
	case PlatformMacintosh:
		if m := t.find(PlatformMacintosh, 0); m != nil {
			return m
		}
		for i := range t {
			if t[i].PlatformID == PlatformMacintosh {
				return &t[i]
			}
		}
	default:
		for i := len(t) - 1; i >= 0; i-- {
			if t[i].PlatformID == platformID {
				return &t[i]
			}
		}
	}
	return nil
}

// SelectPlatform returns the best subtable for the given platform.
// For the Windows platform this prefers encoding 10 (full Unicode),
// for all other platforms the fallback rules of [Table.Select] apply.
func (t Table) SelectPlatform(platformID uint16) *Mapping {
	encodingID := uint16(255)
	if platformID == PlatformWindows {
		encodingID = 10
	}
	return t.Select(platformID, encodingID)
}

// GetBest selects the "best" Unicode subtable from a cmap table.
func (t Table) GetBest() (Subtable, error) {
	candidates := []struct {
		PlatformID uint16
		EncodingID uint16
	}{
		{3, 10}, // full unicode
		{0, 4},
		{3, 1}, // BMP
		{0, 3},
		{1, 0}, // vintage Apple format
	}

	for _, c := range candidates {
		if sub := t.Get(Key{c.PlatformID, c.EncodingID, 0}); sub != nil {
			return sub, nil
		}
	}
	return nil, errors.New("cmap: no suitable subtable found")
}

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

package name

import "strconv"

// ID is the identifier of a string in the name table.
// https://docs.microsoft.com/en-us/typography/opentype/spec/name#name-ids
type ID uint16

// Name IDs defined in the OpenType specification.
const (
	Copyright            ID = 0
	Family               ID = 1
	Subfamily            ID = 2
	Identifier           ID = 3
	FullName             ID = 4
	Version              ID = 5
	PostScriptName       ID = 6
	Trademark            ID = 7
	Manufacturer         ID = 8
	Designer             ID = 9
	Description          ID = 10
	VendorURL            ID = 11
	DesignerURL          ID = 12
	License              ID = 13
	LicenseURL           ID = 14
	TypographicFamily    ID = 16
	TypographicSubfamily ID = 17
	CompatibleFullName   ID = 18
	SampleText           ID = 19
	PostScriptCIDName    ID = 20
	WWSFamily            ID = 21
	WWSSubfamily         ID = 22
	LightBackground      ID = 23
	DarkBackground       ID = 24
	VariationsPrefix     ID = 25
)

var idNames = map[ID]string{
	Copyright:            "Copyright",
	Family:               "Family",
	Subfamily:            "Subfamily",
	Identifier:           "Identifier",
	FullName:             "FullName",
	Version:              "Version",
	PostScriptName:       "PostScriptName",
	Trademark:            "Trademark",
	Manufacturer:         "Manufacturer",
	Designer:             "Designer",
	Description:          "Description",
	VendorURL:            "VendorURL",
	DesignerURL:          "DesignerURL",
	License:              "License",
	LicenseURL:           "LicenseURL",
	TypographicFamily:    "TypographicFamily",
	TypographicSubfamily: "TypographicSubfamily",
	CompatibleFullName:   "CompatibleFullName",
	SampleText:           "SampleText",
	PostScriptCIDName:    "PostScriptCIDName",
	WWSFamily:            "WWSFamily",
	WWSSubfamily:         "WWSSubfamily",
	LightBackground:      "LightBackground",
	DarkBackground:       "DarkBackground",
	VariationsPrefix:     "VariationsPrefix",
}

func (id ID) String() string {
	if s, ok := idNames[id]; ok {
		return s
	}
	return "ID" + strconv.Itoa(int(id))
}

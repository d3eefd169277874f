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

package parser

import (
	"errors"
	"math"
	"testing"
)

func TestCheckUint16(t *testing.T) {
	cases := []struct {
		v  int
		ok bool
	}{
		{0, true},
		{1, true},
		{65535, true},
		{65536, false},
		{-1, false},
		{math.MaxInt32, false},
	}
	for _, test := range cases {
		err := CheckUint16("numGlyphs", test.v)
		if (err == nil) != test.ok {
			t.Errorf("%d: unexpected result %v", test.v, err)
		}
		if err == nil {
			continue
		}
		var rangeErr *RangeError
		if !errors.As(err, &rangeErr) {
			t.Errorf("%d: wrong error type %T", test.v, err)
		} else if rangeErr.Field != "numGlyphs" || rangeErr.Max != 65535 {
			t.Errorf("%d: wrong error contents %#v", test.v, rangeErr)
		}
	}
}

func TestCheckUint32(t *testing.T) {
	cases := []struct {
		v  int64
		ok bool
	}{
		{0, true},
		{65536, true},
		{4294967295, true},
		{4294967296, false},
		{-1, false},
	}
	for _, test := range cases {
		err := CheckUint32("length", test.v)
		if (err == nil) != test.ok {
			t.Errorf("%d: unexpected result %v", test.v, err)
		}
		if err != nil && !IsRangeError(err) {
			t.Errorf("%d: wrong error type %T", test.v, err)
		}
	}
}

func TestChecker(t *testing.T) {
	var c Checker
	c.Uint16("a", 1)
	c.Uint16("b", 70000)
	c.Uint32("c", -5)
	err := c.Err()
	var rangeErr *RangeError
	if !errors.As(err, &rangeErr) {
		t.Fatalf("expected a range error, got %v", err)
	}
	if rangeErr.Field != "b" {
		t.Errorf("first failing field not reported: %q", rangeErr.Field)
	}
}

func TestErrorKinds(t *testing.T) {
	var err error = &InvalidFontError{SubSystem: "sfnt/head", Reason: "bad magic"}
	if !IsFormatError(err) || IsUnsupported(err) || IsRangeError(err) {
		t.Error("InvalidFontError misclassified")
	}
	err = &NotSupportedError{SubSystem: "sfnt/post", Feature: "version 7"}
	if !IsFormatError(err) || !IsUnsupported(err) {
		t.Error("NotSupportedError misclassified")
	}
	err = &RangeError{Field: "x", Value: -1, Max: 65535}
	if IsFormatError(err) || !IsRangeError(err) {
		t.Error("RangeError misclassified")
	}
}

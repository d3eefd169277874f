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

// Package fontinfo reads metadata from OpenType and TrueType font files.
//
// A Font gives access to the table directory of a font file.  The tables
// themselves are decoded on first use, and the decoded tables are kept
// for the lifetime of the Font.
package fontinfo

import (
	"io"
	"sync"

	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/exp/mmap"

	"seehuhn.de/go/fontinfo/header"
)

func tracer() tracing.Trace {
	return tracing.Select("fontinfo")
}

// Font represents an open sfnt file.
// All methods are safe for concurrent use.
type Font struct {
	// Source identifies the font in diagnostic messages.
	// For fonts opened with OpenFile this is the file name.
	Source string

	// Header is the table directory of the font.
	Header *header.Info

	r      io.ReaderAt
	closer io.Closer

	slots map[header.Tag]*slot

	closeOnce sync.Once
}

// Option changes how a font is opened.
type Option func(*config)

type config struct {
	skipValidity bool
}

// SkipValidity allows to open fonts which lack some of the tables
// required for a conformant font file.  This is useful for tools which
// inspect broken fonts.
func SkipValidity() Option {
	return func(c *config) {
		c.skipValidity = true
	}
}

// Open reads the table directory of a font from r.
// The name is only used in diagnostic messages.
//
// Unless the SkipValidity option is given, Open fails if required tables
// are missing.  The reader must stay usable for as long as tables are
// accessed through the returned Font.
func Open(r io.ReaderAt, name string, opts ...Option) (*Font, error) {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}

	info, err := header.Read(r)
	if err != nil {
		return nil, err
	}
	if !cfg.skipValidity {
		err = info.CheckValidity()
		if err != nil {
			return nil, err
		}
	}

	f := &Font{
		Source: name,
		Header: info,
		r:      r,
		slots:  make(map[header.Tag]*slot, len(info.Toc)),
	}
	for tag := range info.Toc {
		f.slots[tag] = &slot{}
	}
	tracer().Debugf("opened %q: %s font, %d tables", name, info.Kind(), len(info.Toc))
	return f, nil
}

// OpenFile memory-maps the named file and reads its table directory.
// The font must be closed after use.
func OpenFile(path string, opts ...Option) (*Font, error) {
	ra, err := mmap.Open(path)
	if err != nil {
		return nil, err
	}
	f, err := Open(ra, path, opts...)
	if err != nil {
		ra.Close()
		return nil, err
	}
	f.closer = ra
	return f, nil
}

// Close releases the resources associated with a font opened by OpenFile.
// Only the first call has an effect, later calls return nil.
// Tables which have not been decoded before Close cannot be read
// afterwards.
func (f *Font) Close() error {
	var err error
	f.closeOnce.Do(func() {
		if f.closer != nil {
			err = f.closer.Close()
		}
	})
	return err
}

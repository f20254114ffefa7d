// Copyright (C) The Lightning Authors. All rights reserved.
//
// SPDX-License-Identifier: AGPL-3.0

package tilefmt

import (
	"bufio"
	"encoding/gob"
	"io"
	"io/ioutil"

	"github.com/klauspost/pgzip"
)

// ReadLevelSetGob decodes a LevelSet from rdr's gob stream, optionally
// gzip-compressed, the same streaming decode-until-EOF loop the reference
// library-entry decoder uses.
func ReadLevelSetGob(rdr io.Reader, gz bool) (*LevelSet, error) {
	zrdr := ioutil.NopCloser(rdr)
	var err error
	if gz {
		zrdr, err = pgzip.NewReader(bufio.NewReaderSize(rdr, 1<<20))
		if err != nil {
			return nil, err
		}
	}
	set := NewLevelSet()
	dec := gob.NewDecoder(zrdr)
	for {
		var l Level
		err = dec.Decode(&l)
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, err
		}
		set.Append(&l)
	}
	return set, zrdr.Close()
}

// WriteLevelSetGob encodes set to w as a sequence of gob-encoded Level
// values, one per level, optionally gzip-compressed.
func WriteLevelSetGob(w io.Writer, set *LevelSet, gz bool) error {
	out := w
	var zw *pgzip.Writer
	if gz {
		zw = pgzip.NewWriter(w)
		out = zw
	}
	enc := gob.NewEncoder(out)
	for _, l := range set.Levels {
		if err := enc.Encode(l); err != nil {
			return err
		}
	}
	if zw != nil {
		return zw.Close()
	}
	return nil
}

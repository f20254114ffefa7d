// Copyright (C) The Lightning Authors. All rights reserved.
//
// SPDX-License-Identifier: AGPL-3.0

package tilefmt

import (
	"bufio"
	"bytes"
	"io/ioutil"

	"github.com/klauspost/pgzip"
)

// ReadDATGz decodes a gzip-compressed G1 container, for callers that keep
// their level-set archives gzipped on disk.
func ReadDATGz(data []byte, maxLevelSize int) (*LevelSet, error) {
	zr, err := pgzip.NewReader(bufio.NewReaderSize(bytes.NewReader(data), 1<<20))
	if err != nil {
		return nil, wrapError(Truncated, err, "opening gzip stream")
	}
	defer zr.Close()
	raw, err := ioutil.ReadAll(zr)
	if err != nil {
		return nil, wrapError(Truncated, err, "reading gzip stream")
	}
	return ReadDAT(raw, maxLevelSize)
}

// WriteDATGz encodes set as a G1 container and gzip-compresses it with a
// parallel writer.
func WriteDATGz(set *LevelSet) ([]byte, error) {
	raw, err := WriteDAT(set)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	zw := pgzip.NewWriter(&buf)
	if _, err := zw.Write(raw); err != nil {
		return nil, wrapError(Truncated, err, "writing gzip stream")
	}
	if err := zw.Close(); err != nil {
		return nil, wrapError(Truncated, err, "closing gzip stream")
	}
	return buf.Bytes(), nil
}

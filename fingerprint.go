// Copyright (C) The Lightning Authors. All rights reserved.
//
// SPDX-License-Identifier: AGPL-3.0

package tilefmt

import "golang.org/x/crypto/blake2b"

// Fingerprint hashes level i's canonical map bytes (top layer then
// bottom layer, row-major, pre-RLE): two levels with identical map
// contents fingerprint identically regardless of title/password/hint
// metadata.
func (s *LevelSet) Fingerprint(i int) [blake2b.Size256]byte {
	return s.Levels[i].Fingerprint()
}

// Fingerprint hashes l's canonical map bytes.
func (l *Level) Fingerprint() [blake2b.Size256]byte {
	buf := make([]byte, 0, 2*GridSize*GridSize)
	for y := 0; y < GridSize; y++ {
		for x := 0; x < GridSize; x++ {
			buf = append(buf, byte(l.Map[y][x].Top))
		}
	}
	for y := 0; y < GridSize; y++ {
		for x := 0; x < GridSize; x++ {
			buf = append(buf, byte(l.Map[y][x].Bottom))
		}
	}
	return blake2b.Sum256(buf)
}

// Copyright (C) The Lightning Authors. All rights reserved.
//
// SPDX-License-Identifier: AGPL-3.0

// Package rle implements the marker-based run-length encoding used on the
// 1024-byte G1 map layers.
package rle

import "fmt"

// LayerSize is the fixed decoded length of a G1 map layer.
const LayerSize = 1024

// marker is the byte that introduces a run: marker, count, value.
const marker = 0xFF

// minRunLength is the shortest run worth encoding as a run rather than as
// literals: below this, the 3-byte run marker costs at least as much as
// the literals it would replace.
const minRunLength = 4

// Decode expands b (a run-length encoded layer) and verifies the
// expansion is exactly LayerSize bytes.
func Decode(b []byte) ([]byte, error) {
	out := make([]byte, 0, LayerSize)
	for i := 0; i < len(b); i++ {
		if b[i] != marker {
			out = append(out, b[i])
			continue
		}
		if i+2 >= len(b) {
			return nil, fmt.Errorf("rle: truncated run marker at offset %d", i)
		}
		n := b[i+1]
		v := b[i+2]
		if n < 2 {
			return nil, fmt.Errorf("rle: invalid run count %d at offset %d", n, i)
		}
		for k := byte(0); k < n; k++ {
			out = append(out, v)
		}
		i += 2
	}
	if len(out) != LayerSize {
		return nil, fmt.Errorf("rle: decoded length %d, want %d", len(out), LayerSize)
	}
	return out, nil
}

// Encode run-length encodes a LayerSize-byte layer. Runs of length >= 4
// are emitted as marker/count/value; shorter runs are emitted literally.
// Every byte must be a valid tile code (< marker); G1 map layers never
// contain the marker value as data, since tile codes top out at 0x6F.
func Encode(layer []byte) ([]byte, error) {
	if len(layer) != LayerSize {
		return nil, fmt.Errorf("rle: input length %d, want %d", len(layer), LayerSize)
	}
	out := make([]byte, 0, LayerSize)
	for i := 0; i < len(layer); {
		if layer[i] == marker {
			return nil, fmt.Errorf("rle: marker byte 0x%02X in input at offset %d", marker, i)
		}
		j := i + 1
		for j < len(layer) && layer[j] == layer[i] && j-i < 255 {
			j++
		}
		runLen := j - i
		if runLen >= minRunLength {
			out = append(out, marker, byte(runLen), layer[i])
			i = j
		} else {
			out = append(out, layer[i])
			i++
		}
	}
	return out, nil
}

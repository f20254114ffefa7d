// Copyright (C) The Lightning Authors. All rights reserved.
//
// SPDX-License-Identifier: AGPL-3.0

package g2

// Container holds an as-yet-unparsed G2 container's raw bytes. Full
// container parsing (sections outside the packed map payload) is outside
// this package's scope; Container exists so callers that only need the
// map can route past the sections they don't care about.
type Container struct {
	Raw []byte
}

func le16(b []byte) int { return int(b[0]) | int(b[1])<<8 }

func appendLE16(b []byte, v int) []byte {
	return append(b, byte(v), byte(v>>8))
}

func le32(b []byte) int {
	return int(b[0]) | int(b[1])<<8 | int(b[2])<<16 | int(b[3])<<24
}

func appendLE32(b []byte, v int) []byte {
	return append(b, byte(v), byte(v>>8), byte(v>>16), byte(v>>24))
}

// readLengthPrefix reads the packed-section's decompressed-length prefix:
// a plain 2-byte little-endian count, or a 4-byte count when the first
// byte is the 0xFF escape (used whenever the 2-byte form's low byte
// would itself read as 0xFF, which would otherwise be ambiguous).
func readLengthPrefix(data []byte) (length, consumed int, err error) {
	if len(data) < 2 {
		return 0, 0, newError(Truncated, "length prefix needs 2 bytes, have %d", len(data))
	}
	if data[0] != 0xFF {
		return le16(data), 2, nil
	}
	if len(data) < 5 {
		return 0, 0, newError(Truncated, "extended length prefix needs 5 bytes, have %d", len(data))
	}
	return le32(data[1:5]), 5, nil
}

func appendLengthPrefix(b []byte, length int) []byte {
	// The 2-byte form's low byte doubles as the 0xFF escape sentinel, so
	// it can't be used whenever that byte would itself be 0xFF.
	if length < 0x10000 && length&0xFF != 0xFF {
		return appendLE16(b, length)
	}
	b = append(b, 0xFF)
	return appendLE32(b, length)
}

// PackMap encodes width, height, and cells as a length-prefixed, LZ-
// packed map payload.
func PackMap(width, height int, cells []Cell) ([]byte, error) {
	elems, err := EncodeCells(cells)
	if err != nil {
		return nil, err
	}
	body, err := EncodeElements(elems)
	if err != nil {
		return nil, err
	}
	raw := appendLE16(appendLE16(nil, width), height)
	raw = append(raw, body...)

	packed := Pack(raw)
	out := appendLengthPrefix(nil, len(raw))
	out = append(out, packed...)
	return out, nil
}

// UnpackMap decodes a length-prefixed, LZ-packed map payload into its
// width, height, and cells.
func UnpackMap(data []byte) (width, height int, cells []Cell, err error) {
	wantLen, n, err := readLengthPrefix(data)
	if err != nil {
		return 0, 0, nil, err
	}
	raw, err := Unpack(data[n:])
	if err != nil {
		return 0, 0, nil, err
	}
	if len(raw) != wantLen {
		return 0, 0, nil, newError(BadFieldLength, "decompressed length %d, header said %d", len(raw), wantLen)
	}
	if len(raw) < 4 {
		return 0, 0, nil, newError(Truncated, "map payload shorter than its width/height header")
	}
	width = le16(raw[0:2])
	height = le16(raw[2:4])
	elems, err := DecodeElements(raw[4:])
	if err != nil {
		return 0, 0, nil, err
	}
	cells, err = DecodeCells(elems, width, height)
	if err != nil {
		return 0, 0, nil, err
	}
	return width, height, cells, nil
}

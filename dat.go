// Copyright (C) The Lightning Authors. All rights reserved.
//
// SPDX-License-Identifier: AGPL-3.0

package tilefmt

import (
	"encoding/binary"

	log "github.com/sirupsen/logrus"

	"github.com/latticegames/tilefmt/internal/rle"
)

// DefaultMaxLevelSize bounds the declared sizes (field lengths, record
// lengths, layer lengths) ReadDAT will trust before allocating, per the
// resource-model requirement that decoders reject pathological inputs.
const DefaultMaxLevelSize = 16 << 20

var (
	magicCanonical = [4]byte{0xAC, 0xAA, 0x02, 0x00}
	magicHistoric  = [4]byte{0xAC, 0xAA, 0x02, 0x01}
)

const (
	fieldTitle      = 3
	fieldTraps      = 4
	fieldCloners    = 5
	fieldPassword   = 6
	fieldHint       = 7
	fieldAltPass    = 8
	fieldMovement   = 10
	fieldAuthor     = 11
	passwordXOR     = 0x99
	mapDetailValue1 = 1
)

// ReadDAT decodes a full G1 container. maxLevelSize bounds every declared
// length field encountered; pass 0 to use DefaultMaxLevelSize.
func ReadDAT(data []byte, maxLevelSize int) (*LevelSet, error) {
	if maxLevelSize <= 0 {
		maxLevelSize = DefaultMaxLevelSize
	}
	r := &byteReader{buf: data}
	magic, err := r.take(4)
	if err != nil {
		return nil, wrapError(BadMagic, err, "reading magic")
	}
	if !(bytesEqual4(magic, magicCanonical) || bytesEqual4(magic, magicHistoric)) {
		return nil, newError(BadMagic, "magic %x not recognized", magic)
	}
	count, err := r.u16()
	if err != nil {
		return nil, wrapError(Truncated, err, "reading level count")
	}
	set := &LevelSet{}
	for i := 0; i < int(count); i++ {
		lvl, err := readLevelRecord(r, maxLevelSize)
		if err != nil {
			return nil, err
		}
		set.Append(lvl)
	}
	log.Debugf("ReadDAT: decoded %d levels", len(set.Levels))
	return set, nil
}

func readLevelRecord(r *byteReader, maxLevelSize int) (*Level, error) {
	recLen, err := r.u16()
	if err != nil {
		return nil, wrapError(Truncated, err, "reading record length")
	}
	if int(recLen) > maxLevelSize {
		return nil, newError(LayerTooLarge, "record length %d exceeds limit %d", recLen, maxLevelSize)
	}
	rec, err := r.take(int(recLen))
	if err != nil {
		return nil, wrapError(Truncated, err, "reading record body")
	}
	rr := &byteReader{buf: rec}

	if _, err := rr.u16(); err != nil { // level number (not modeled on Level; positional)
		return nil, wrapError(Truncated, err, "reading level number")
	}
	timeVal, err := rr.u16()
	if err != nil {
		return nil, wrapError(Truncated, err, "reading time")
	}
	chips, err := rr.u16()
	if err != nil {
		return nil, wrapError(Truncated, err, "reading chip count")
	}
	if _, err := rr.u16(); err != nil { // map-detail, always 1
		return nil, wrapError(Truncated, err, "reading map detail")
	}

	topRLE, err := readLengthPrefixed(rr, maxLevelSize)
	if err != nil {
		return nil, err
	}
	top, derr := rle.Decode(topRLE)
	if derr != nil {
		return nil, wrapError(BadRLE, derr, "decoding top layer")
	}
	botRLE, err := readLengthPrefixed(rr, maxLevelSize)
	if err != nil {
		return nil, err
	}
	bottom, derr := rle.Decode(botRLE)
	if derr != nil {
		return nil, wrapError(BadRLE, derr, "decoding bottom layer")
	}

	optLen, err := rr.u16()
	if err != nil {
		return nil, wrapError(Truncated, err, "reading optional-fields length")
	}
	if int(optLen) > maxLevelSize {
		return nil, newError(LayerTooLarge, "optional-fields length %d exceeds limit %d", optLen, maxLevelSize)
	}
	optBytes, err := rr.take(int(optLen))
	if err != nil {
		return nil, wrapError(Truncated, err, "reading optional fields")
	}

	lvl := NewLevel()
	lvl.Time = timeVal
	lvl.Chips = chips
	for y := 0; y < GridSize; y++ {
		for x := 0; x < GridSize; x++ {
			i := y*GridSize + x
			lvl.Map[y][x] = Cell{Top: TileCode(top[i]), Bottom: TileCode(bottom[i])}
		}
	}

	if err := readOptionalFields(lvl, optBytes); err != nil {
		return nil, err
	}
	return lvl, nil
}

func readLengthPrefixed(r *byteReader, maxLevelSize int) ([]byte, error) {
	n, err := r.u16()
	if err != nil {
		return nil, wrapError(Truncated, err, "reading length prefix")
	}
	if int(n) > maxLevelSize {
		return nil, newError(LayerTooLarge, "length %d exceeds limit %d", n, maxLevelSize)
	}
	return r.take(int(n))
}

func readOptionalFields(lvl *Level, b []byte) error {
	r := &byteReader{buf: b}
	for r.remaining() > 0 {
		id, err := r.u8()
		if err != nil {
			return wrapError(BadFieldLength, err, "reading field id")
		}
		n, err := r.u8()
		if err != nil {
			return wrapError(BadFieldLength, err, "reading field length")
		}
		payload, err := r.take(int(n))
		if err != nil {
			return wrapError(BadFieldLength, err, "reading field %d payload", id)
		}
		switch id {
		case fieldTitle:
			lvl.Title = cstring(payload)
		case fieldHint:
			lvl.Hint = cstring(payload)
		case fieldAuthor:
			lvl.Author = cstring(payload)
		case fieldPassword:
			deobf := make([]byte, len(payload))
			for i, c := range payload {
				deobf[i] = c ^ passwordXOR
			}
			copy(lvl.Password[:], cstring(deobf))
		case fieldAltPass:
			copy(lvl.Password[:], cstring(payload))
		case fieldTraps:
			if len(payload)%10 != 0 {
				return newError(BadFieldLength, "trap field length %d not a multiple of 10", len(payload))
			}
			for i := 0; i+10 <= len(payload); i += 10 {
				bx := le16(payload[i : i+2])
				by := le16(payload[i+2 : i+4])
				tx := le16(payload[i+4 : i+6])
				ty := le16(payload[i+6 : i+8])
				lvl.Traps[Coord{int(bx), int(by)}] = Coord{int(tx), int(ty)}
			}
		case fieldCloners:
			if len(payload)%8 != 0 {
				return newError(BadFieldLength, "cloner field length %d not a multiple of 8", len(payload))
			}
			for i := 0; i+8 <= len(payload); i += 8 {
				bx := le16(payload[i : i+2])
				by := le16(payload[i+2 : i+4])
				cx := le16(payload[i+4 : i+6])
				cy := le16(payload[i+6 : i+8])
				lvl.Cloners[Coord{int(bx), int(by)}] = Coord{int(cx), int(cy)}
			}
		case fieldMovement:
			if len(payload)%2 != 0 {
				return newError(BadFieldLength, "movement field length %d not even", len(payload))
			}
			lvl.Movement = lvl.Movement[:0]
			for i := 0; i+2 <= len(payload); i += 2 {
				lvl.Movement = append(lvl.Movement, Coord{int(payload[i]), int(payload[i+1])})
			}
		default:
			// unknown field id: ignore the payload, keep decoding.
		}
	}
	return nil
}

// WriteDAT encodes a full G1 container. Every level must satisfy
// IsValid(); the first invalid level aborts the write.
func WriteDAT(set *LevelSet) ([]byte, error) {
	var out []byte
	out = append(out, magicCanonical[:]...)
	out = appendU16(out, uint16(len(set.Levels)))
	for i, lvl := range set.Levels {
		if !lvl.IsValid() {
			return nil, newError(InvariantViolated, "level %d failed IsValid", i)
		}
		rec, err := writeLevelRecord(i, lvl)
		if err != nil {
			return nil, err
		}
		out = appendU16(out, uint16(len(rec)))
		out = append(out, rec...)
	}
	return out, nil
}

func writeLevelRecord(levelNumber int, lvl *Level) ([]byte, error) {
	var rec []byte
	rec = appendU16(rec, uint16(levelNumber+1))
	rec = appendU16(rec, lvl.Time)
	rec = appendU16(rec, lvl.Chips)
	rec = appendU16(rec, mapDetailValue1)

	top := make([]byte, GridSize*GridSize)
	bottom := make([]byte, GridSize*GridSize)
	for y := 0; y < GridSize; y++ {
		for x := 0; x < GridSize; x++ {
			i := y*GridSize + x
			c := lvl.Map[y][x]
			top[i] = byte(c.Top)
			bottom[i] = byte(c.Bottom)
		}
	}
	topRLE, err := rle.Encode(top)
	if err != nil {
		return nil, wrapError(BadRLE, err, "encoding top layer")
	}
	botRLE, err := rle.Encode(bottom)
	if err != nil {
		return nil, wrapError(BadRLE, err, "encoding bottom layer")
	}
	log.Debugf("writeLevelRecord %d: top %d bytes, bottom %d bytes RLE-encoded", levelNumber, len(topRLE), len(botRLE))
	rec = appendU16(rec, uint16(len(topRLE)))
	rec = append(rec, topRLE...)
	rec = appendU16(rec, uint16(len(botRLE)))
	rec = append(rec, botRLE...)

	opt := writeOptionalFields(lvl)
	rec = appendU16(rec, uint16(len(opt)))
	rec = append(rec, opt...)
	return rec, nil
}

func writeOptionalFields(lvl *Level) []byte {
	var out []byte
	out = appendField(out, fieldTitle, cbytes(lvl.Title))
	if len(lvl.Traps) > 0 {
		var p []byte
		for b, t := range lvl.Traps {
			p = appendU16(p, uint16(b.X))
			p = appendU16(p, uint16(b.Y))
			p = appendU16(p, uint16(t.X))
			p = appendU16(p, uint16(t.Y))
			p = appendU16(p, 0) // padding
		}
		out = appendField(out, fieldTraps, p)
	}
	if len(lvl.Cloners) > 0 {
		var p []byte
		for b, c := range lvl.Cloners {
			p = appendU16(p, uint16(b.X))
			p = appendU16(p, uint16(b.Y))
			p = appendU16(p, uint16(c.X))
			p = appendU16(p, uint16(c.Y))
		}
		out = appendField(out, fieldCloners, p)
	}
	pw := make([]byte, 0, 5)
	pw = append(pw, lvl.Password[:]...)
	pw = append(pw, 0)
	for i := range pw {
		pw[i] ^= passwordXOR
	}
	out = appendField(out, fieldPassword, pw)
	if lvl.Hint != "" {
		out = appendField(out, fieldHint, cbytes(lvl.Hint))
	}
	if len(lvl.Movement) > 0 {
		p := make([]byte, 0, len(lvl.Movement)*2)
		for _, m := range lvl.Movement {
			p = append(p, byte(m.X), byte(m.Y))
		}
		out = appendField(out, fieldMovement, p)
	}
	if lvl.Author != "" {
		out = appendField(out, fieldAuthor, cbytes(lvl.Author))
	}
	return out
}

func appendField(out []byte, id byte, payload []byte) []byte {
	out = append(out, id, byte(len(payload)))
	return append(out, payload...)
}

func cbytes(s string) []byte {
	return append([]byte(s), 0)
}

func cstring(b []byte) string {
	for i, c := range b {
		if c == 0 {
			return string(b[:i])
		}
	}
	return string(b)
}

func bytesEqual4(b []byte, want [4]byte) bool {
	return len(b) == 4 && b[0] == want[0] && b[1] == want[1] && b[2] == want[2] && b[3] == want[3]
}

func le16(b []byte) uint16 {
	return binary.LittleEndian.Uint16(b)
}

func appendU16(b []byte, v uint16) []byte {
	return append(b, byte(v), byte(v>>8))
}

// byteReader is a minimal cursor over a byte slice used by the DAT
// decoder; it never re-slices beyond the declared length of a field.
type byteReader struct {
	buf []byte
	pos int
}

func (r *byteReader) remaining() int { return len(r.buf) - r.pos }

func (r *byteReader) take(n int) ([]byte, error) {
	if n < 0 || r.pos+n > len(r.buf) {
		return nil, newError(Truncated, "need %d bytes, have %d", n, r.remaining())
	}
	b := r.buf[r.pos : r.pos+n]
	r.pos += n
	return b, nil
}

func (r *byteReader) u8() (byte, error) {
	b, err := r.take(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (r *byteReader) u16() (uint16, error) {
	b, err := r.take(2)
	if err != nil {
		return 0, err
	}
	return le16(b), nil
}

// Copyright (C) The Lightning Authors. All rights reserved.
//
// SPDX-License-Identifier: AGPL-3.0

package tws

import log "github.com/sirupsen/logrus"

// Move is one decoded step of a solution's move stream: a tick offset
// from the previous move, and the direction pressed. Unknown is set when
// the token could not be interpreted (an escape token cut off by the end
// of the stream); Direction is then best-effort, Time is zero, and it is
// the last move DecodeMoves returns.
type Move struct {
	Time      uint32
	Direction int
	Unknown   bool
}

// moveDirMask is the 3 low bits of a move token: one of the four
// cardinal directions (0-3) or one of four diagonal compounds (4-7).
const moveDirMask = 0x07

// shortDeltaMax is the largest delta-time value the 5 high bits of a
// single token byte can hold directly; the escape value (all 1s) signals
// that four more bytes carry a 32-bit little-endian addition to the delta.
const shortDeltaMax = 0x1E
const shortDeltaEscape = 0x1F

// DecodeMoves reads data as a sequence of move tokens. It never returns
// an error: a token it cannot fully decode (e.g. an escape sequence run
// past the end of data) becomes an Unknown record and decoding stops,
// since no further token boundary can be recovered from a truncated
// escape. Every other byte sequence is a structurally valid 1- or 5-byte
// token, so truncation is the only source of an Unknown record.
func DecodeMoves(data []byte) []Move {
	var out []Move
	for i := 0; i < len(data); {
		b := data[i]
		i++
		dir := int(b & moveDirMask)
		delta := uint32(b >> 3)
		if delta == shortDeltaEscape {
			if i+4 > len(data) {
				log.Warnf("tws: truncated escape token at byte %d, stopping move decode", i)
				out = append(out, Move{Direction: dir, Unknown: true})
				break
			}
			delta = shortDeltaMax + le32(data[i:i+4])
			i += 4
		}
		out = append(out, Move{Time: delta, Direction: dir})
	}
	return out
}

// EncodeMoves is the inverse of DecodeMoves for well-formed (non-Unknown)
// moves.
func EncodeMoves(moves []Move) []byte {
	var out []byte
	for _, m := range moves {
		dir := byte(m.Direction & moveDirMask)
		if m.Time <= shortDeltaMax {
			out = append(out, dir|byte(m.Time)<<3)
			continue
		}
		out = append(out, dir|byte(shortDeltaEscape)<<3)
		out = appendLE32(out, m.Time-shortDeltaMax)
	}
	return out
}

// Copyright (C) The Lightning Authors. All rights reserved.
//
// SPDX-License-Identifier: AGPL-3.0

package tws

// recordFixedFields is the byte count of a record's fields after its
// own length prefix and before its move stream: level number (2),
// password (4), flags (1), ruleset (1), init-dir (1), reserved (1),
// solution time (4).
const recordFixedFields = 2 + 4 + 1 + 1 + 1 + 1 + 4

// Record is one level's solution: its number, the password in effect,
// recorded flags, the ruleset and initial facing it was played under,
// the solve time in ticks, and the decoded move stream.
type Record struct {
	LevelNumber   uint16
	Password      [4]byte
	Flags         byte
	Ruleset       Ruleset
	InitDir       byte
	SolutionTicks uint32
	Moves         []Move
}

func decodeRecord(data []byte) (Record, int, error) {
	if len(data) < 4 {
		return Record{}, 0, newError(Truncated, "record length prefix needs 4 bytes, have %d", len(data))
	}
	length := int(le32(data[0:4]))
	if length < recordFixedFields {
		return Record{}, 0, newError(BadFieldLength, "record length %d shorter than fixed fields %d", length, recordFixedFields)
	}
	if len(data) < 4+length {
		return Record{}, 0, newError(Truncated, "record declares %d bytes, have %d", length, len(data)-4)
	}
	body := data[4 : 4+length]

	var r Record
	r.LevelNumber = uint16(body[0]) | uint16(body[1])<<8
	copy(r.Password[:], body[2:6])
	r.Flags = body[6]
	r.Ruleset = Ruleset(body[7])
	r.InitDir = body[8]
	// body[9] is reserved.
	r.SolutionTicks = le32(body[10:14])
	r.Moves = DecodeMoves(body[recordFixedFields:])
	return r, 4 + length, nil
}

func encodeRecord(r Record) []byte {
	body := make([]byte, recordFixedFields)
	body[0] = byte(r.LevelNumber)
	body[1] = byte(r.LevelNumber >> 8)
	copy(body[2:6], r.Password[:])
	body[6] = r.Flags
	body[7] = byte(r.Ruleset)
	body[8] = r.InitDir
	body[9] = 0
	copy(body[10:14], appendLE32(nil, r.SolutionTicks))
	body = append(body, EncodeMoves(r.Moves)...)

	out := appendLE32(nil, uint32(len(body)))
	out = append(out, body...)
	return out
}

// Copyright (C) The Lightning Authors. All rights reserved.
//
// SPDX-License-Identifier: AGPL-3.0

package tws

// DefaultMaxRecordSize bounds a single record's declared length when the
// caller does not supply its own ceiling, guarding against pathological
// allocations from a corrupt or hostile length field.
const DefaultMaxRecordSize = 16 << 20

// Replay is a fully decoded TWS file: its header and the ordered list of
// per-level solution records.
type Replay struct {
	Header  Header
	Records []Record
}

// Decode parses a complete TWS file. maxRecordSize bounds any one
// record's declared length; 0 selects DefaultMaxRecordSize.
func Decode(data []byte, maxRecordSize int) (*Replay, error) {
	if maxRecordSize <= 0 {
		maxRecordSize = DefaultMaxRecordSize
	}
	h, n, err := decodeHeader(data)
	if err != nil {
		return nil, err
	}
	rest := data[n:]

	var records []Record
	for len(rest) > 0 {
		if len(rest) < 4 {
			return nil, newError(Truncated, "trailing %d bytes too short for a record length", len(rest))
		}
		length := int(le32(rest[0:4]))
		if length > maxRecordSize {
			return nil, newError(BadFieldLength, "record length %d exceeds ceiling %d", length, maxRecordSize)
		}
		r, consumed, err := decodeRecord(rest)
		if err != nil {
			return nil, err
		}
		records = append(records, r)
		rest = rest[consumed:]
	}

	return &Replay{Header: h, Records: records}, nil
}

// Encode serializes a Replay back to TWS bytes.
func Encode(r *Replay) []byte {
	out := encodeHeader(r.Header)
	for _, rec := range r.Records {
		out = append(out, encodeRecord(rec)...)
	}
	return out
}

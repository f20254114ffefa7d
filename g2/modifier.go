// Copyright (C) The Lightning Authors. All rights reserved.
//
// SPDX-License-Identifier: AGPL-3.0

package g2

// BuildModifier returns the modifier bytes for e, per its opcode's
// ModifierKind. Elements whose opcode takes no modifier return nil.
func BuildModifier(e Element) ([]byte, error) {
	switch e.Opcode.modifierKind() {
	case ModNone:
		return nil, nil
	case ModWired:
		return []byte{byte(e.Wires) | byte(e.WireTunnels)<<4}, nil
	case ModLetter:
		return []byte{e.Char}, nil
	case ModClone:
		return []byte{byte(e.Directions)}, nil
	case ModCustomColor:
		return []byte{byte(e.Color)}, nil
	case ModGate:
		idx, ok := gateIndex(e.Gate)
		if !ok {
			return nil, newError(UnsupportedModifier, "no lookup index for gate %+v", e.Gate)
		}
		return []byte{idx}, nil
	case ModRailroad:
		active, ok := trackIndex(e.ActiveTrack)
		if !ok {
			return nil, newError(UnsupportedModifier, "active track %v is not a single segment", e.ActiveTrack)
		}
		b2 := byte(active&0x0F) | byte(e.InitialEntry&3)<<4
		return []byte{byte(e.Tracks), b2}, nil
	case ModThinWall:
		b := byte(e.Wires)
		if e.Canopy {
			b |= 0x10
		}
		return []byte{b}, nil
	case ModMobDir:
		return []byte{byte(e.Direction)}, nil
	default:
		return nil, newError(UnsupportedModifier, "opcode %d has no known modifier kind", e.Opcode)
	}
}

// ParseModifier reads the modifier bytes for opcode op from the front of
// data and returns the populated Element plus the number of bytes
// consumed.
func ParseModifier(op Opcode, data []byte) (Element, int, error) {
	e := Element{Opcode: op}
	kind := op.modifierKind()
	n := kind.byteCount()
	if len(data) < n {
		return Element{}, 0, newError(Truncated, "opcode %s needs %d modifier bytes, have %d", op.Name(), n, len(data))
	}
	switch kind {
	case ModNone:
		return e, 0, nil
	case ModWired:
		b := data[0]
		e.Wires = Wires(b & 0x0F)
		e.WireTunnels = Wires(b >> 4)
		return e, 1, nil
	case ModLetter:
		e.Char = data[0]
		return e, 1, nil
	case ModClone:
		e.Directions = Wires(data[0])
		return e, 1, nil
	case ModCustomColor:
		if data[0] > byte(Blue) {
			return Element{}, 0, newError(UnsupportedModifier, "color index %d out of range", data[0])
		}
		e.Color = Color(data[0])
		return e, 1, nil
	case ModGate:
		g, ok := gateFromIndex(data[0])
		if !ok {
			return Element{}, 0, newError(UnsupportedModifier, "gate index %d out of range", data[0])
		}
		e.Gate = g
		return e, 1, nil
	case ModRailroad:
		e.Tracks = Tracks(data[0])
		activeIdx := data[1] & 0x0F
		active, ok := trackFromIndex(activeIdx)
		if !ok {
			return Element{}, 0, newError(UnsupportedModifier, "active track index %d out of range", activeIdx)
		}
		e.ActiveTrack = active
		dir, ok := directionFromIndex((data[1] >> 4) & 0x3)
		if !ok {
			return Element{}, 0, newError(UnsupportedModifier, "initial entry direction out of range")
		}
		e.InitialEntry = dir
		return e, 2, nil
	case ModThinWall:
		e.Wires = Wires(data[0] & 0x0F)
		e.Canopy = data[0]&0x10 != 0
		return e, 1, nil
	case ModMobDir:
		dir, ok := directionFromIndex(data[0])
		if !ok {
			return Element{}, 0, newError(UnsupportedModifier, "direction index %d out of range", data[0])
		}
		e.Direction = dir
		return e, 1, nil
	default:
		return Element{}, 0, newError(UnsupportedModifier, "opcode %d has no known modifier kind", op)
	}
}

// Copyright (C) The Lightning Authors. All rights reserved.
//
// SPDX-License-Identifier: AGPL-3.0

package g2

// Opcode is a single byte in the G2 tile stream, identifying one tile.
type Opcode byte

// Layer identifies which of a cell's five optional slots an opcode's
// family fills. Values increase in the priority order the map codec
// lays cells out in: terrain, pickup, not-allowed, mob, panel.
type Layer int

const (
	LayerTerrain Layer = iota
	LayerPickup
	LayerNotAllowed
	LayerMob
	LayerPanel
)

// ModifierKind selects how a tile's trailing modifier bytes, if any, are
// interpreted. Every opcode has exactly one ModifierKind, consulted by
// the decoder instead of computing interpretation from the opcode value.
type ModifierKind int

const (
	ModNone ModifierKind = iota
	ModWired
	ModLetter
	ModClone
	ModCustomColor
	ModGate
	ModRailroad
	ModThinWall
	ModMobDir
)

type tileDef struct {
	code     Opcode
	name     string
	layer    Layer
	modifier ModifierKind
}

// Opcode constants. Values are assigned in catalog order at init time;
// callers must not depend on specific numeric values across versions of
// this package, only on the named constants.
var (
	FLOOR             Opcode
	WALL              Opcode
	WATER             Opcode
	FIRE              Opcode
	DIRT              Opcode
	GRAVEL            Opcode
	INVISIBLE_WALL    Opcode
	ICE               Opcode
	ICE_NE            Opcode
	ICE_SE            Opcode
	ICE_SW            Opcode
	ICE_NW            Opcode
	FORCE_N           Opcode
	FORCE_E           Opcode
	FORCE_S           Opcode
	FORCE_W           Opcode
	FORCE_RANDOM      Opcode
	TELEPORT          Opcode
	TRAP              Opcode
	TRAP_BUTTON       Opcode
	CLONE_BUTTON      Opcode
	BUTTON_GREEN      Opcode
	BUTTON_RED        Opcode
	BUTTON_BROWN      Opcode
	BUTTON_BLUE       Opcode
	EXIT              Opcode
	WIRE_FLOOR        Opcode
	SWITCH_ON         Opcode
	SWITCH_OFF        Opcode
	STEEL_WALL_WIRED  Opcode
	LOGIC_GATE_FLOOR  Opcode
	CUSTOM_WALL       Opcode
	CUSTOM_FLOOR      Opcode
	RAILROAD_TRACK    Opcode
	CLONE_MACHINE     Opcode
	THIN_WALL         Opcode
	LOGIC_GATE        Opcode
	CHIP              Opcode
	KEY_RED           Opcode
	KEY_BLUE          Opcode
	KEY_YELLOW        Opcode
	KEY_GREEN         Opcode
	BOOT_WATER        Opcode
	BOOT_FIRE         Opcode
	BOOT_ICE          Opcode
	BOOT_FORCEFLOOR   Opcode
	EXTRA_CHIP        Opcode
	LETTER_TILE_SPACE Opcode
	NOT_ALLOWED_MARKER Opcode
	PLAYER            Opcode
	TANK_BLUE         Opcode
	TANK_YELLOW       Opcode
	GLIDER            Opcode
	FIREBALL          Opcode
	BALL              Opcode
	WALKER            Opcode
	TEETH             Opcode
	BLOB              Opcode
	PARAMECIUM        Opcode
	ROVER             Opcode
	BLOCK             Opcode
)

var (
	byOpcode map[Opcode]tileDef
	byName   map[string]Opcode
)

func define(code *Opcode, name string, layer Layer, modifier ModifierKind) {
	*code = Opcode(len(byOpcode))
	byOpcode[*code] = tileDef{code: *code, name: name, layer: layer, modifier: modifier}
	byName[name] = *code
}

func init() {
	byOpcode = map[Opcode]tileDef{}
	byName = map[string]Opcode{}

	define(&FLOOR, "FLOOR", LayerTerrain, ModNone)
	define(&WALL, "WALL", LayerTerrain, ModNone)
	define(&WATER, "WATER", LayerTerrain, ModNone)
	define(&FIRE, "FIRE", LayerTerrain, ModNone)
	define(&DIRT, "DIRT", LayerTerrain, ModNone)
	define(&GRAVEL, "GRAVEL", LayerTerrain, ModNone)
	define(&INVISIBLE_WALL, "INVISIBLE_WALL", LayerTerrain, ModNone)
	define(&ICE, "ICE", LayerTerrain, ModNone)
	define(&ICE_NE, "ICE_NE", LayerTerrain, ModNone)
	define(&ICE_SE, "ICE_SE", LayerTerrain, ModNone)
	define(&ICE_SW, "ICE_SW", LayerTerrain, ModNone)
	define(&ICE_NW, "ICE_NW", LayerTerrain, ModNone)
	define(&FORCE_N, "FORCE_N", LayerTerrain, ModNone)
	define(&FORCE_E, "FORCE_E", LayerTerrain, ModNone)
	define(&FORCE_S, "FORCE_S", LayerTerrain, ModNone)
	define(&FORCE_W, "FORCE_W", LayerTerrain, ModNone)
	define(&FORCE_RANDOM, "FORCE_RANDOM", LayerTerrain, ModNone)
	define(&TELEPORT, "TELEPORT", LayerTerrain, ModNone)
	define(&TRAP, "TRAP", LayerTerrain, ModNone)
	define(&TRAP_BUTTON, "TRAP_BUTTON", LayerTerrain, ModNone)
	define(&CLONE_BUTTON, "CLONE_BUTTON", LayerTerrain, ModNone)
	define(&BUTTON_GREEN, "BUTTON_GREEN", LayerTerrain, ModNone)
	define(&BUTTON_RED, "BUTTON_RED", LayerTerrain, ModNone)
	define(&BUTTON_BROWN, "BUTTON_BROWN", LayerTerrain, ModNone)
	define(&BUTTON_BLUE, "BUTTON_BLUE", LayerTerrain, ModNone)
	define(&EXIT, "EXIT", LayerTerrain, ModNone)

	define(&WIRE_FLOOR, "WIRE_FLOOR", LayerTerrain, ModWired)
	define(&SWITCH_ON, "SWITCH_ON", LayerTerrain, ModWired)
	define(&SWITCH_OFF, "SWITCH_OFF", LayerTerrain, ModWired)
	define(&STEEL_WALL_WIRED, "STEEL_WALL_WIRED", LayerTerrain, ModWired)
	define(&LOGIC_GATE_FLOOR, "LOGIC_GATE_FLOOR", LayerTerrain, ModWired)

	define(&CUSTOM_WALL, "CUSTOM_WALL", LayerTerrain, ModCustomColor)
	define(&CUSTOM_FLOOR, "CUSTOM_FLOOR", LayerTerrain, ModCustomColor)

	define(&RAILROAD_TRACK, "RAILROAD_TRACK", LayerTerrain, ModRailroad)
	define(&CLONE_MACHINE, "CLONE_MACHINE", LayerTerrain, ModClone)

	define(&THIN_WALL, "THIN_WALL", LayerPanel, ModThinWall)
	define(&LOGIC_GATE, "LOGIC_GATE", LayerPanel, ModGate)

	define(&CHIP, "CHIP", LayerPickup, ModNone)
	define(&KEY_RED, "KEY_RED", LayerPickup, ModNone)
	define(&KEY_BLUE, "KEY_BLUE", LayerPickup, ModNone)
	define(&KEY_YELLOW, "KEY_YELLOW", LayerPickup, ModNone)
	define(&KEY_GREEN, "KEY_GREEN", LayerPickup, ModNone)
	define(&BOOT_WATER, "BOOT_WATER", LayerPickup, ModNone)
	define(&BOOT_FIRE, "BOOT_FIRE", LayerPickup, ModNone)
	define(&BOOT_ICE, "BOOT_ICE", LayerPickup, ModNone)
	define(&BOOT_FORCEFLOOR, "BOOT_FORCEFLOOR", LayerPickup, ModNone)
	define(&EXTRA_CHIP, "EXTRA_CHIP", LayerPickup, ModNone)
	define(&LETTER_TILE_SPACE, "LETTER_TILE_SPACE", LayerPickup, ModLetter)

	define(&NOT_ALLOWED_MARKER, "NOT_ALLOWED_MARKER", LayerNotAllowed, ModNone)

	define(&PLAYER, "PLAYER", LayerMob, ModMobDir)
	define(&TANK_BLUE, "TANK_BLUE", LayerMob, ModMobDir)
	define(&TANK_YELLOW, "TANK_YELLOW", LayerMob, ModMobDir)
	define(&GLIDER, "GLIDER", LayerMob, ModMobDir)
	define(&FIREBALL, "FIREBALL", LayerMob, ModMobDir)
	define(&BALL, "BALL", LayerMob, ModMobDir)
	define(&WALKER, "WALKER", LayerMob, ModMobDir)
	define(&TEETH, "TEETH", LayerMob, ModMobDir)
	define(&BLOB, "BLOB", LayerMob, ModMobDir)
	define(&PARAMECIUM, "PARAMECIUM", LayerMob, ModMobDir)
	define(&ROVER, "ROVER", LayerMob, ModMobDir)
	define(&BLOCK, "BLOCK", LayerMob, ModMobDir)
}

func lookup(code Opcode) (tileDef, bool) {
	d, ok := byOpcode[code]
	return d, ok
}

// Name returns op's mnemonic, or "" if op is not a known opcode.
func (op Opcode) Name() string {
	if d, ok := byOpcode[op]; ok {
		return d.name
	}
	return ""
}

// Layer returns the cell slot op's family occupies.
func (op Opcode) Layer() (Layer, bool) {
	d, ok := byOpcode[op]
	return d.layer, ok
}

func (op Opcode) modifierKind() ModifierKind {
	return byOpcode[op].modifier
}

// byteCount returns how many trailing modifier bytes an element
// with this opcode carries.
func (k ModifierKind) byteCount() int {
	switch k {
	case ModRailroad:
		return 2
	case ModNone:
		return 0
	default:
		return 1
	}
}

// Copyright (C) The Lightning Authors. All rights reserved.
//
// SPDX-License-Identifier: AGPL-3.0

package tilefmt

import "fmt"

// GridSize is the fixed width and height of a G1 level map.
const GridSize = 32

// Coord is a zero-based (column, row) position on the G1 grid.
type Coord struct {
	X, Y int
}

func (c Coord) inBounds() bool {
	return c.X >= 0 && c.X < GridSize && c.Y >= 0 && c.Y < GridSize
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Matcher is satisfied by both TileCode (exact match) and TileSet
// (membership), letting Level.Count and Replace accept either a single
// tile or a whole family of tiles.
type Matcher interface {
	Match(TileCode) bool
}

// Match implements Matcher for a single tile code.
func (t TileCode) Match(x TileCode) bool { return t == x }

// Match implements Matcher for a tile set.
func (s TileSet) Match(x TileCode) bool { return s.Contains(x) }

// Level is a G1 level: the 32x32 map plus the three side-tables the
// consistency engine keeps in sync with it.
type Level struct {
	Title    string
	Chips    uint16
	Time     uint16
	Password [4]byte
	Hint     string
	Author   string

	Map [GridSize][GridSize]Cell

	// Movement holds autonomous-monster coordinates in the engine's
	// update order. Insertion order is preserved across every edit
	// except explicit removal.
	Movement []Coord

	// Traps and Cloners map a button coordinate to the coordinate of
	// the object it controls. Buttons may be absent (unconnected);
	// endpoints may have no entry pointing to them (orphaned). Both are
	// tolerated by IsValid.
	Traps   map[Coord]Coord
	Cloners map[Coord]Coord
}

// NewLevel returns a fresh level: all floor except a PLAYER_S at the
// origin, password "AAAA", no wiring, no movement.
func NewLevel() *Level {
	l := newEmptyLevel()
	l.Password = [4]byte{'A', 'A', 'A', 'A'}
	// A freshly created level starts with its player placed at the
	// origin, matching the reference editor's behavior of never
	// producing a playerless level: IsValid requires exactly one
	// player start, so an "empty" level is this, not a blank grid.
	l.Add(Coord{0, 0}, PLAYER_S)
	return l
}

// At returns the cell at xy. Out-of-bounds coordinates return EmptyCell.
func (l *Level) At(xy Coord) Cell {
	if !xy.inBounds() {
		return EmptyCell
	}
	return l.Map[xy.Y][xy.X]
}

func (l *Level) set(xy Coord, c Cell) {
	l.Map[xy.Y][xy.X] = c
}

func (l *Level) movementIndex(xy Coord) int {
	for i, m := range l.Movement {
		if m == xy {
			return i
		}
	}
	return -1
}

// Add applies Cell.Add at xy and reconciles the side-tables: a newly
// added monster is appended to Movement (if not already tracked); a
// newly added trap/clone button or endpoint is left unconnected.
func (l *Level) Add(xy Coord, tile TileCode) {
	if !xy.inBounds() {
		return
	}
	l.set(xy, l.At(xy).Add(tile))
	if tile.IsMonster() && l.movementIndex(xy) < 0 {
		l.Movement = append(l.Movement, xy)
	}
}

// Remove applies Cell.Remove at xy and reconciles the side-tables: a
// monster no longer present after removal drops out of Movement; a
// removed button drops its wiring entry; a removed trap/cloner endpoint
// drops any entry pointing at it.
func (l *Level) Remove(xy Coord, tile TileCode) {
	if !xy.inBounds() {
		return
	}
	before := l.At(xy)
	if !before.Contains(tile) {
		return
	}
	l.set(xy, before.Remove(tile))

	if tile.IsMonster() && before.Top == tile {
		if i := l.movementIndex(xy); i >= 0 {
			l.Movement = append(l.Movement[:i], l.Movement[i+1:]...)
		}
	}
	switch tile {
	case TRAP_BUTTON, CLONE_BUTTON:
		delete(l.wireTableFor(tile), xy)
	case TRAP:
		l.dropValue(l.Traps, xy)
	default:
		if tile.IsCloner() {
			l.dropValue(l.Cloners, xy)
		}
	}
}

func (l *Level) wireTableFor(button TileCode) map[Coord]Coord {
	if button == TRAP_BUTTON {
		return l.Traps
	}
	return l.Cloners
}

func (l *Level) dropValue(table map[Coord]Coord, value Coord) {
	for k, v := range table {
		if v == value {
			delete(table, k)
		}
	}
}

// Connect wires button coordinate a to endpoint coordinate b. Which wire
// table is used is decided by the tile sitting at a; b must currently
// hold the matching endpoint tile. Connect overwrites any prior
// connection from a.
func (l *Level) Connect(a, b Coord) error {
	ca, cb := l.At(a), l.At(b)
	switch {
	case ca.Contains(TRAP_BUTTON):
		if !cb.Contains(TRAP) {
			return &Error{Kind: InvariantViolated, Msg: fmt.Sprintf("connect: %v has no TRAP for button at %v", b, a)}
		}
		l.Traps[a] = b
	case ca.Contains(CLONE_BUTTON):
		if !(cb.Top.IsCloner() || cb.Bottom.IsCloner()) {
			return &Error{Kind: InvariantViolated, Msg: fmt.Sprintf("connect: %v has no CLONER for button at %v", b, a)}
		}
		l.Cloners[a] = b
	default:
		return &Error{Kind: InvariantViolated, Msg: fmt.Sprintf("connect: %v holds no button", a)}
	}
	return nil
}

// Count returns the number of occurrences of m across both layers of
// every cell.
func (l *Level) Count(m Matcher) int {
	n := 0
	for y := range l.Map {
		for x := range l.Map[y] {
			c := l.Map[y][x]
			if m.Match(c.Top) {
				n++
			}
			if m.Match(c.Bottom) {
				n++
			}
		}
	}
	return n
}

// IsValid reports whether every cell obeys the two-layer invariant, every
// tracked monster still has a matching top-layer tile, every trap/cloner
// entry still has its matching tiles in place, and exactly one player
// start exists.
func (l *Level) IsValid() bool {
	for y := range l.Map {
		for x := range l.Map[y] {
			if !l.Map[y][x].IsValid() {
				return false
			}
		}
	}
	for _, xy := range l.Movement {
		if !l.At(xy).Top.IsMonster() {
			return false
		}
	}
	for button, trap := range l.Traps {
		if !l.At(button).Contains(TRAP_BUTTON) || !l.At(trap).Contains(TRAP) {
			return false
		}
	}
	for button, cloner := range l.Cloners {
		cb := l.At(cloner)
		if !l.At(button).Contains(CLONE_BUTTON) || !(cb.Top.IsCloner() || cb.Bottom.IsCloner()) {
			return false
		}
	}
	return l.Count(Players) == 1
}

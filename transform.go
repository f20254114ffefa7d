// Copyright (C) The Lightning Authors. All rights reserved.
//
// SPDX-License-Identifier: AGPL-3.0

package tilefmt

// TransformOptions tunes the rotate/flip family. The zero value matches
// the historical engine's documented (if surprising) behavior.
type TransformOptions struct {
	// AllowLossyPanelRotate forces rotate/flip to proceed even when the
	// level contains PANEL_SE, the asymmetric recessed-wall corner tile
	// the historical engine rotates incorrectly. By default (false)
	// rotate/flip instead return an unchanged copy of the level, per
	// the reference implementation's documented compatibility behavior.
	AllowLossyPanelRotate bool
}

func newEmptyLevel() *Level {
	l := &Level{
		Traps:   map[Coord]Coord{},
		Cloners: map[Coord]Coord{},
	}
	for y := range l.Map {
		for x := range l.Map[y] {
			l.Map[y][x] = EmptyCell
		}
	}
	return l
}

// cloneLevel returns a deep, independent copy of l.
func cloneLevel(l *Level) *Level {
	out := *l
	out.Traps = make(map[Coord]Coord, len(l.Traps))
	for k, v := range l.Traps {
		out.Traps[k] = v
	}
	out.Cloners = make(map[Coord]Coord, len(l.Cloners))
	for k, v := range l.Cloners {
		out.Cloners[k] = v
	}
	out.Movement = append([]Coord(nil), l.Movement...)
	return &out
}

// Replace returns a new level with every occurrence of a tile matching
// old replaced by newTile, using Level.Remove/Add so movement and wire
// tables stay consistent.
func Replace(l *Level, old Matcher, newTile TileCode) *Level {
	out := cloneLevel(l)
	for y := 0; y < GridSize; y++ {
		for x := 0; x < GridSize; x++ {
			xy := Coord{x, y}
			c := out.At(xy)
			if old.Match(c.Top) {
				out.Remove(xy, c.Top)
				out.Add(xy, newTile)
			}
			// bottom may have changed if top collapsed into it; re-read.
			c = out.At(xy)
			if old.Match(c.Bottom) {
				out.Remove(xy, c.Bottom)
				out.Add(xy, newTile)
			}
		}
	}
	return out
}

// ReplaceMobs replaces every mob in oldSet with the lowest-coded member
// of newSet whose Dirs() equals its own; mobs with no matching-direction
// replacement are left untouched.
func ReplaceMobs(l *Level, oldSet, newSet TileSet) *Level {
	out := cloneLevel(l)
	for y := 0; y < GridSize; y++ {
		for x := 0; x < GridSize; x++ {
			xy := Coord{x, y}
			top := out.At(xy).Top
			if !oldSet.Contains(top) {
				continue
			}
			dirs := top.Dirs()
			var repl TileCode
			found := false
			for code := TileCode(0); code <= MaxTileCode; code++ {
				if newSet.Contains(code) && code.Dirs() == dirs {
					repl = code
					found = true
					break
				}
			}
			if !found {
				continue
			}
			out.Remove(xy, top)
			out.Add(xy, repl)
		}
	}
	return out
}

// Keep retains only tiles in keepSet; every other tile becomes FLOOR.
// The movement list is rebuilt from the resulting map in raster order;
// a trap or cloner entry is kept only if its button and endpoint tiles
// both survive.
func Keep(l *Level, keepSet TileSet) *Level {
	out := newEmptyLevel()
	out.Title, out.Chips, out.Time, out.Password, out.Hint, out.Author =
		l.Title, l.Chips, l.Time, l.Password, l.Hint, l.Author

	for y := 0; y < GridSize; y++ {
		for x := 0; x < GridSize; x++ {
			c := l.Map[y][x]
			nc := Cell{Top: FLOOR, Bottom: FLOOR}
			if keepSet.Contains(c.Top) {
				nc.Top = c.Top
			}
			if keepSet.Contains(c.Bottom) {
				nc.Bottom = c.Bottom
			}
			out.Map[y][x] = nc
		}
	}

	for y := 0; y < GridSize; y++ {
		for x := 0; x < GridSize; x++ {
			if out.Map[y][x].Top.IsMonster() {
				out.Movement = append(out.Movement, Coord{x, y})
			}
		}
	}
	for b, t := range l.Traps {
		if out.At(b).Contains(TRAP_BUTTON) && out.At(t).Contains(TRAP) {
			out.Traps[b] = t
		}
	}
	for b, c := range l.Cloners {
		cb := out.At(c)
		if out.At(b).Contains(CLONE_BUTTON) && (cb.Top.IsCloner() || cb.Bottom.IsCloner()) {
			out.Cloners[b] = c
		}
	}
	return out
}

type coordMap func(Coord) Coord
type tileMap func(TileCode) TileCode

func (m tileMap) apply(c Cell) Cell {
	return Cell{Top: m(c.Top), Bottom: m(c.Bottom)}
}

func rotateGrid(l *Level, cm coordMap, tm tileMap, opts TransformOptions) *Level {
	if !opts.AllowLossyPanelRotate && l.Count(PANEL_SE) > 0 {
		return cloneLevel(l)
	}
	out := newEmptyLevel()
	out.Title, out.Chips, out.Time, out.Password, out.Hint, out.Author =
		l.Title, l.Chips, l.Time, l.Password, l.Hint, l.Author

	for y := 0; y < GridSize; y++ {
		for x := 0; x < GridSize; x++ {
			xy := Coord{x, y}
			out.set(cm(xy), tm.apply(l.At(xy)))
		}
	}
	for _, xy := range l.Movement {
		out.Movement = append(out.Movement, cm(xy))
	}
	for b, t := range l.Traps {
		out.Traps[cm(b)] = cm(t)
	}
	for b, c := range l.Cloners {
		out.Cloners[cm(b)] = cm(c)
	}
	return out
}

const gridMax = GridSize - 1

func rot90Coord(c Coord) Coord  { return Coord{gridMax - c.Y, c.X} }
func rot180Coord(c Coord) Coord { return Coord{gridMax - c.X, gridMax - c.Y} }
func rot270Coord(c Coord) Coord { return Coord{c.Y, gridMax - c.X} }

func flipHCoord(c Coord) Coord     { return Coord{gridMax - c.X, c.Y} }
func flipVCoord(c Coord) Coord     { return Coord{c.X, gridMax - c.Y} }
func flipNESWCoord(c Coord) Coord  { return Coord{gridMax - c.Y, gridMax - c.X} }
func flipNWSECoord(c Coord) Coord  { return Coord{c.Y, c.X} }

func rightTile(t TileCode) TileCode   { return t.Right() }
func reverseTile(t TileCode) TileCode { return t.Reverse() }
func leftTile(t TileCode) TileCode    { return t.Left() }

func dirMapTile(f func(Direction) Direction) tileMap {
	return func(t TileCode) TileCode {
		d := t.Direction()
		if d == DirNone {
			return t
		}
		return t.WithDirs(f(d).String())
	}
}

func flipHDir(d Direction) Direction {
	switch d {
	case DirE:
		return DirW
	case DirW:
		return DirE
	case DirNE:
		return DirNW
	case DirNW:
		return DirNE
	case DirSE:
		return DirSW
	case DirSW:
		return DirSE
	default:
		return d
	}
}

func flipVDir(d Direction) Direction {
	switch d {
	case DirN:
		return DirS
	case DirS:
		return DirN
	case DirNE:
		return DirSE
	case DirSE:
		return DirNE
	case DirNW:
		return DirSW
	case DirSW:
		return DirNW
	default:
		return d
	}
}

func flipNESWDir(d Direction) Direction {
	switch d {
	case DirN:
		return DirE
	case DirE:
		return DirN
	case DirS:
		return DirW
	case DirW:
		return DirS
	case DirNW:
		return DirSE
	case DirSE:
		return DirNW
	default:
		return d // NE, SW, DirNone fixed
	}
}

func flipNWSEDir(d Direction) Direction {
	switch d {
	case DirN:
		return DirW
	case DirW:
		return DirN
	case DirS:
		return DirE
	case DirE:
		return DirS
	case DirNE:
		return DirSW
	case DirSW:
		return DirNE
	default:
		return d // NW, SE, DirNone fixed
	}
}

// Rotate90 rotates the level 90 degrees clockwise.
func Rotate90(l *Level, opts TransformOptions) *Level {
	return rotateGrid(l, rot90Coord, rightTile, opts)
}

// Rotate180 rotates the level 180 degrees.
func Rotate180(l *Level, opts TransformOptions) *Level {
	return rotateGrid(l, rot180Coord, reverseTile, opts)
}

// Rotate270 rotates the level 90 degrees counter-clockwise.
func Rotate270(l *Level, opts TransformOptions) *Level {
	return rotateGrid(l, rot270Coord, leftTile, opts)
}

// FlipHorizontal mirrors the level left-right.
func FlipHorizontal(l *Level, opts TransformOptions) *Level {
	return rotateGrid(l, flipHCoord, dirMapTile(flipHDir), opts)
}

// FlipVertical mirrors the level top-bottom.
func FlipVertical(l *Level, opts TransformOptions) *Level {
	return rotateGrid(l, flipVCoord, dirMapTile(flipVDir), opts)
}

// FlipNESW mirrors the level across the NE-SW diagonal.
func FlipNESW(l *Level, opts TransformOptions) *Level {
	return rotateGrid(l, flipNESWCoord, dirMapTile(flipNESWDir), opts)
}

// FlipNWSE mirrors the level across the NW-SE diagonal.
func FlipNWSE(l *Level, opts TransformOptions) *Level {
	return rotateGrid(l, flipNWSECoord, dirMapTile(flipNWSEDir), opts)
}

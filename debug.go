// Copyright (C) The Lightning Authors. All rights reserved.
//
// SPDX-License-Identifier: AGPL-3.0

package tilefmt

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// dumpCells renders a level's map as one tile-mnemonic pair per line, in
// raster order, for use as diff input.
func dumpCells(l *Level) string {
	var b strings.Builder
	for y := 0; y < GridSize; y++ {
		for x := 0; x < GridSize; x++ {
			c := l.Map[y][x]
			fmt.Fprintf(&b, "%d,%d %s/%s\n", x, y, c.Top, c.Bottom)
		}
	}
	return b.String()
}

// DiffLevels returns a human-readable line diff between two levels' map
// contents (diffmatchpatch pretty text, with insertions and deletions
// marked by ANSI colour codes), or "" when they are equal, for tests and
// interactive debugging (e.g.
// asserting that a transform round-trip left a level unchanged).
// Metadata fields (title, password, hint, author) are not compared.
func DiffLevels(a, b *Level) string {
	dmp := diffmatchpatch.New()
	ta, tb, lines := dmp.DiffLinesToChars(dumpCells(a), dumpCells(b))
	diffs := dmp.DiffMain(ta, tb, false)
	diffs = dmp.DiffCharsToLines(diffs, lines)
	if len(diffs) == 1 && diffs[0].Type == diffmatchpatch.DiffEqual {
		return ""
	}
	return dmp.DiffPrettyText(diffs)
}

// Package game implements the Dodo board: hex geometry, board topology and
// the immutable game-state model used by the search.
package game

import "fmt"

// Cell is an axial hex coordinate. It is a plain value type: two Cells with
// equal Q and R compare equal and hash identically as a map key.
type Cell struct {
	Q, R int
}

// String renders a Cell as "(q,r)", used by logging and DOT export.
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Q, c.R)
}

// Direction indexes one of the six axial unit displacements.
type Direction int

// The six hex directions, indexed 0..5. Direction i and i+3 (mod 6) are
// opposites.
const (
	Dir0 Direction = iota
	Dir1
	Dir2
	Dir3
	Dir4
	Dir5
)

// directionVectors is the axial displacement for each Direction. Index i and
// (i+3)%6 are negations of each other.
var directionVectors = [6]Cell{
	Dir0: {Q: 0, R: -1},
	Dir1: {Q: 1, R: 0},
	Dir2: {Q: 1, R: 1},
	Dir3: {Q: 0, R: 1},
	Dir4: {Q: -1, R: 0},
	Dir5: {Q: -1, R: -1},
}

// RForward is the set of directions Red is permitted to move along.
var RForward = [3]Direction{Dir1, Dir2, Dir3}

// BForward is the set of directions Blue is permitted to move along. It is
// the exact opposite of RForward, which enforces Dodo's "move toward the
// opponent" rule for both sides.
var BForward = [3]Direction{Dir0, Dir4, Dir5}

// neighbor returns the cell adjacent to c along the given direction. It does
// not check whether the result is on the board; callers filter against a
// board's cell set (see GenerateNeighbors).
func neighbor(c Cell, d Direction) Cell {
	v := directionVectors[d]
	return Cell{Q: c.Q + v.Q, R: c.R + v.R}
}

package game

// StartOccupancy builds the standard Dodo starting position for a size-N
// board: Red fills the upper-left wedge (-q > r + (N-3)), Blue fills the
// lower-right wedge (r > -q + (N-3)), everything else is empty. Red always
// moves first, regardless of which side the agent itself plays.
//
// The wedge formulas assume N >= 3; ValidateOccupancy rejects N < 3.
func StartOccupancy(size int, neighbors *NeighborTables) map[Cell]Player {
	occupancy := make(map[Cell]Player, len(neighbors.Cells))
	for _, c := range neighbors.Cells {
		switch {
		case -c.Q > c.R+(size-3):
			occupancy[c] = R
		case c.R > -c.Q+(size-3):
			occupancy[c] = B
		default:
			occupancy[c] = Empty
		}
	}
	return occupancy
}

// NewStart builds the initial Dodo state for a size-N board.
func NewStart(size int) (*State, *NeighborTables) {
	neighbors := NewNeighborTables(size)
	return New(StartOccupancy(size, neighbors), R, neighbors), neighbors
}

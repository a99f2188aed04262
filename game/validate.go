package game

import (
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
)

// Placement is one entry of the harness's sparse state-exchange format: a
// cell and the player occupying it. Cells absent from a state are empty.
type Placement struct {
	Cell   Cell
	Player Player
}

// ValidateOccupancy checks a harness-supplied sparse board against a size-N
// board's cell set, collecting every violation it finds (rather than
// stopping at the first) via go-multierror:
//   - size must be >= 3 (the starting-wedge formulas are undefined below that)
//   - every placed cell must be on the board
//   - no cell may be placed twice
//   - every placement's player must be R or B (never Empty)
//
// On success it returns the dense occupancy (every board cell present,
// defaulting to Empty).
func ValidateOccupancy(size int, placements []Placement, neighbors *NeighborTables) (map[Cell]Player, error) {
	var errs *multierror.Error

	if size < 3 {
		errs = multierror.Append(errs, errors.Errorf("board size %d is below the minimum of 3", size))
	}

	onBoard := make(map[Cell]bool, len(neighbors.Cells))
	for _, c := range neighbors.Cells {
		onBoard[c] = false
	}

	for _, p := range placements {
		present, known := onBoard[p.Cell]
		if !known {
			errs = multierror.Append(errs, errors.Errorf("placement at %v is off the size-%d board", p.Cell, size))
			continue
		}
		if present {
			errs = multierror.Append(errs, errors.Errorf("cell %v is placed more than once", p.Cell))
		}
		if p.Player != R && p.Player != B {
			errs = multierror.Append(errs, errors.Errorf("placement at %v has invalid player code %d", p.Cell, p.Player))
		}
		onBoard[p.Cell] = true
	}

	if err := errs.ErrorOrNil(); err != nil {
		return nil, err
	}

	occupancy := make(map[Cell]Player, len(neighbors.Cells))
	for _, c := range neighbors.Cells {
		occupancy[c] = Empty
	}
	for _, p := range placements {
		occupancy[p.Cell] = p.Player
	}
	return occupancy, nil
}

// ToPlacements converts a dense occupancy back into the harness's sparse
// state-exchange format (non-empty cells only), in NeighborTables.Cells
// order, so round-tripping through a harness is deterministic.
func ToPlacements(occupancy map[Cell]Player, neighbors *NeighborTables) []Placement {
	var out []Placement
	for _, c := range neighbors.Cells {
		if p := occupancy[c]; p != Empty {
			out = append(out, Placement{Cell: c, Player: p})
		}
	}
	return out
}

package game

// Player identifies a side. Player codes match the harness wire format:
// R = 1, B = 2. Empty cells are represented by the zero value.
type Player int

// Player and occupancy codes.
const (
	Empty Player = 0
	R     Player = 1
	B     Player = 2
)

// String renders a player code for logging.
func (p Player) String() string {
	switch p {
	case R:
		return "R"
	case B:
		return "B"
	default:
		return "empty"
	}
}

// Opponent returns the other side. Empty has no opponent and returns Empty.
func (p Player) Opponent() Player {
	switch p {
	case R:
		return B
	case B:
		return R
	default:
		return Empty
	}
}

// Action is a single Dodo move: relocate the piece at Src to Dst.
type Action struct {
	Src, Dst Cell
}

// State is an immutable Dodo position. Every State value owns its own
// occupancy map and legal-action list; Move never mutates the receiver, it
// returns a fresh State.
type State struct {
	size      int
	neighbors *NeighborTables
	toMove    Player
	occupancy map[Cell]Player
	rCells    map[Cell]struct{}
	bCells    map[Cell]struct{}
	legal     []Action
}

// Occupancy is a sparse harness-facing board representation: only non-empty
// cells are listed.
type Occupancy map[Cell]Player

// New builds a Dodo state from a dense occupancy (every board cell must be
// present) and a side to move. It precomputes the owned-cell index sets and
// the legal-action list.
func New(occupancy map[Cell]Player, toMove Player, neighbors *NeighborTables) *State {
	s := &State{
		size:      neighbors.Size,
		neighbors: neighbors,
		toMove:    toMove,
		occupancy: occupancy,
		rCells:    make(map[Cell]struct{}),
		bCells:    make(map[Cell]struct{}),
	}
	for c, p := range occupancy {
		switch p {
		case R:
			s.rCells[c] = struct{}{}
		case B:
			s.bCells[c] = struct{}{}
		}
	}
	s.legal = s.generateLegalActions()
	return s
}

func (s *State) ownedCells() map[Cell]struct{} {
	if s.toMove == R {
		return s.rCells
	}
	return s.bCells
}

func (s *State) neighborTable() NeighborTable {
	if s.toMove == R {
		return s.neighbors.R
	}
	return s.neighbors.B
}

// generateLegalActions computes {(src, dst) : src owned by side-to-move,
// dst a forward neighbor of src, dst empty}. Iteration order follows
// NeighborTables.Cells so the result is deterministic across runs.
func (s *State) generateLegalActions() []Action {
	owned := s.ownedCells()
	table := s.neighborTable()
	var legal []Action
	for _, src := range s.neighbors.Cells {
		if _, ok := owned[src]; !ok {
			continue
		}
		for _, dst := range table[src] {
			if s.occupancy[dst] == Empty {
				legal = append(legal, Action{Src: src, Dst: dst})
			}
		}
	}
	return legal
}

// Size returns the board size this state was built on.
func (s *State) Size() int { return s.size }

// ToMove returns the side to move.
func (s *State) ToMove() Player { return s.toMove }

// At returns the occupant of cell c (Empty if c is vacant or off-board).
func (s *State) At(c Cell) Player { return s.occupancy[c] }

// LegalActions returns the cached legal-action list for the side to move.
// Callers must not mutate the returned slice.
func (s *State) LegalActions() []Action { return s.legal }

// IsTerminal reports whether the side to move has no legal action.
func (s *State) IsTerminal() bool { return len(s.legal) == 0 }

// Winner returns the side to move at a terminal state: in Dodo, the player
// who cannot move wins (misere blockade). It panics with an InvariantError
// if the state is not terminal.
func (s *State) Winner() Player {
	if !s.IsTerminal() {
		panic(newInvariantError("Winner called on non-terminal state (to-move %v has %d legal actions)", s.toMove, len(s.legal)))
	}
	return s.toMove
}

// Move applies a legal action and returns the resulting state. It panics
// with an InvariantError if action is not present in LegalActions().
func (s *State) Move(action Action) *State {
	if !s.isLegal(action) {
		panic(newInvariantError("illegal move %v->%v for %v", action.Src, action.Dst, s.toMove))
	}

	next := make(map[Cell]Player, len(s.occupancy))
	for c, p := range s.occupancy {
		next[c] = p
	}
	next[action.Src] = Empty
	next[action.Dst] = s.toMove

	return New(next, s.toMove.Opponent(), s.neighbors)
}

func (s *State) isLegal(action Action) bool {
	for _, a := range s.legal {
		if a == action {
			return true
		}
	}
	return false
}

// RCells returns the set of cells currently occupied by Red.
func (s *State) RCells() map[Cell]struct{} { return s.rCells }

// BCells returns the set of cells currently occupied by Blue.
func (s *State) BCells() map[Cell]struct{} { return s.bCells }

// DenseOccupancy returns a copy of the full board mapping, including empty
// cells, suitable for re-exporting to a harness via ToPlacements.
func (s *State) DenseOccupancy() map[Cell]Player {
	out := make(map[Cell]Player, len(s.occupancy))
	for c, p := range s.occupancy {
		out[c] = p
	}
	return out
}

package dodo

import (
	"testing"
	"time"

	"github.com/kestrelgames/dodo/game"
	"github.com/stretchr/testify/require"
)

func startConfig(size int) (Config, []Placement) {
	nt := game.NewNeighborTables(size)
	dense := game.StartOccupancy(size, nt)
	return Config{
		BoardSize: size,
		TotalTime: 5,
		C:         0.1768,
		P:         0.1768,
		F:         1,
		Seed:      7,
	}, game.ToPlacements(dense, nt)
}

func TestInitializeBuildsRootAtStartingPosition(t *testing.T) {
	cfg, placements := startConfig(4)
	agent, err := Initialize(cfg, placements, game.R)
	require.NoError(t, err)
	require.Equal(t, game.R, agent.Player())
	require.False(t, agent.root.IsTerminal())
	require.Equal(t, game.R, agent.root.State().ToMove())
}

func TestInitializeRejectsInvalidBoard(t *testing.T) {
	cfg, _ := startConfig(4)
	_, err := Initialize(cfg, []Placement{{Cell: game.Cell{Q: 0, R: 0}, Player: game.Empty}}, game.R)
	require.Error(t, err)
}

func TestUpdateStateSplicesOpponentMoveIntoTree(t *testing.T) {
	cfg, placements := startConfig(4)
	agent, err := Initialize(cfg, placements, game.B)
	require.NoError(t, err)

	rMove := agent.root.State().LegalActions()[0]
	observed := agent.root.State().DenseOccupancy()
	observed[rMove.Src] = game.Empty
	observed[rMove.Dst] = game.R

	require.NoError(t, agent.UpdateState(observed))
	require.Nil(t, agent.root.Parent())
	require.Equal(t, game.B, agent.root.State().ToMove())
}

func TestUpdateStateRejectsUnmatchedDelta(t *testing.T) {
	cfg, placements := startConfig(4)
	agent, err := Initialize(cfg, placements, game.B)
	require.NoError(t, err)

	observed := agent.root.State().DenseOccupancy()
	require.Error(t, agent.UpdateState(observed))
}

func TestSelectBestMoveAdvancesRootAndReturnsEdgeAction(t *testing.T) {
	cfg, placements := startConfig(4)
	cfg.TotalTime = 1
	agent, err := Initialize(cfg, placements, game.R)
	require.NoError(t, err)

	oldRoot := agent.root
	outcome := agent.SelectBestMove(0.2)
	require.False(t, outcome.NoMove)
	require.Same(t, agent.root, oldRoot.FindChild(outcome.Action))
	require.Nil(t, agent.root.Parent())
}

func TestSelectBestMoveWithZeroTimeLeftSignalsNoMove(t *testing.T) {
	cfg, placements := startConfig(4)
	agent, err := Initialize(cfg, placements, game.R)
	require.NoError(t, err)

	outcome := agent.SelectBestMove(0)
	require.True(t, outcome.NoMove)
}

func TestStrategySkipsReconciliationOnOpeningMove(t *testing.T) {
	cfg, placements := startConfig(4)
	agent, err := Initialize(cfg, placements, game.R)
	require.NoError(t, err)

	observed := agent.root.State().DenseOccupancy()
	_, ok, err := Strategy(agent, observed, 0.2)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestNewStateAppliesActionToExternalBoard(t *testing.T) {
	cfg, placements := startConfig(4)
	agent, err := Initialize(cfg, placements, game.R)
	require.NoError(t, err)

	action := agent.root.State().LegalActions()[0]
	observed := agent.root.State().DenseOccupancy()
	next := NewState(observed, action, game.R)

	require.Equal(t, game.Empty, next[action.Src])
	require.Equal(t, game.R, next[action.Dst])
}

func TestFullSelfPlayTerminatesWithinBoundedTime(t *testing.T) {
	if testing.Short() {
		t.Skip("full self-play game is slow; skip in -short")
	}

	size := 3
	cfgR, placementsR := startConfig(size)
	cfgB := cfgR
	cfgB.Seed = 9
	agentR, err := Initialize(cfgR, placementsR, game.R)
	require.NoError(t, err)
	agentB, err := Initialize(cfgB, placementsR, game.B)
	require.NoError(t, err)

	occupancy := agentR.root.State().DenseOccupancy()
	toMove := game.R
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		agent := agentR
		if toMove == game.B {
			agent = agentB
		}
		action, ok, err := Strategy(agent, occupancy, 0.1)
		require.NoError(t, err)
		if !ok {
			return
		}
		occupancy = NewState(occupancy, action, toMove)
		toMove = toMove.Opponent()
	}
	t.Fatal("self-play game did not terminate within the deadline")
}

// Package search implements adversarial game-tree search over a two-player,
// zero-sum, perfect-information game. Three strategies share one result
// shape: exhaustive minimax, alpha-beta-pruned minimax, and a stochastic
// sampling search. Board representation, legality, move application, and
// static evaluation are external collaborators behind the game.Rules
// contract; this package owns only the tree exploration itself.
package search

import (
	"errors"
	"io"
	"strings"

	"github.com/samber/lo"
	"lukechampine.com/frand"

	"github.com/fiftymoves/lookahead/game"
)

var (
	ErrNegativeDepth  = errors.New("search depth must be non-negative")
	ErrInvalidBreadth = errors.New("sample breadth must be positive")
	ErrNilChooser     = errors.New("stochastic search requires a chooser")
	ErrInvalidSide    = errors.New("side to move must be white or black")
)

// Chooser selects one move from a non-empty candidate list. It is injected
// into the stochastic searcher so tests can substitute a deterministic
// selection for true randomness.
type Chooser func(moves []game.Move) game.Move

// RandomChooser returns a Chooser backed by a fast CSPRNG.
func RandomChooser() Chooser {
	return func(moves []game.Move) game.Move {
		return moves[frand.Intn(len(moves))]
	}
}

// Variation is the result of a search: the value of the searched line, the
// principal move sequence from the root, and the tree of every move expanded
// along the way.
type Variation struct {
	Value float64
	Moves []game.Move
	// Explored records every move actually expanded during the search, not
	// just the principal line. It has no effect on Value or Moves; it exists
	// for post-hoc inspection.
	Explored MoveTree
}

// String renders the principal variation, e.g. "e2e4 e7e5 g1f3".
func (v Variation) String() string {
	return strings.Join(lo.Map(v.Moves, func(m game.Move, _ int) string {
		return m.String()
	}), " ")
}

// Solver runs the three search strategies against a single Rules
// implementation. It is purely synchronous and keeps no state between
// searches beyond the node counter of the most recent one; it is not safe
// for concurrent use.
type Solver struct {
	rules      game.Rules
	totalNodes int
	logStream  io.Writer
}

// NewSolver creates a solver over the given rules collaborator.
func NewSolver(rules game.Rules) *Solver {
	return &Solver{rules: rules}
}

// NodesExpanded returns the number of nodes visited by the most recent
// search.
func (s *Solver) NodesExpanded() int {
	return s.totalNodes
}

// SetLogStream directs the stochastic searcher to write a YAML record of
// every candidate move's samples to w. Set to nil to disable.
func (s *Solver) SetLogStream(w io.Writer) {
	s.logStream = w
}

func checkSearchArgs(side game.Side, depth int) error {
	if !side.Valid() {
		return ErrInvalidSide
	}
	if depth < 0 {
		return ErrNegativeDepth
	}
	return nil
}

// leaf is the shared base case: the position's static value with an empty
// sequence and an empty explored tree.
func (s *Solver) leaf(board game.Board) Variation {
	return Variation{Value: s.rules.Evaluate(board), Explored: MoveTree{}}
}

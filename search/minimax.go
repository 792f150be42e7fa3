package search

import (
	"math"

	"github.com/rs/zerolog/log"

	"github.com/fiftymoves/lookahead/game"
)

// Minimax searches exhaustively to the given depth and returns the
// game-theoretically optimal value and move sequence under full enumeration.
// White maximizes, Black minimizes.
func (s *Solver) Minimax(side game.Side, board game.Board, flags game.Flags, depth int) (Variation, error) {
	if err := checkSearchArgs(side, depth); err != nil {
		return Variation{}, err
	}
	s.totalNodes = 0
	v := s.minimax(side, board, flags, depth)
	log.Debug().
		Int("depth", depth).
		Int("nodes", s.totalNodes).
		Float64("value", v.Value).
		Str("pv", v.String()).
		Msg("minimax-done")
	return v, nil
}

func (s *Solver) minimax(side game.Side, board game.Board, flags game.Flags, depth int) Variation {
	s.totalNodes++
	if depth == 0 {
		return s.leaf(board)
	}
	moves := s.GenerateMoves(side, board, flags)
	if len(moves) == 0 {
		// Terminal position (mate or stalemate); the evaluator owns the
		// distinction.
		return s.leaf(board)
	}

	best := math.Inf(-1)
	if !side.Maximizing() {
		best = math.Inf(1)
	}
	var bestSeq []game.Move
	explored := MoveTree{}

	for _, m := range moves {
		nextSide, nextBoard, nextFlags := s.rules.Apply(side, board, m.From, m.To, flags, m.Promotion)
		child := s.minimax(nextSide, nextBoard, nextFlags, depth-1)
		explored[m.Key()] = child.Explored
		// Strict improvement only: the first move to reach a value keeps it.
		if side.Maximizing() && child.Value > best ||
			!side.Maximizing() && child.Value < best {
			best = child.Value
			bestSeq = append([]game.Move{m}, child.Moves...)
		}
	}
	return Variation{Value: best, Moves: bestSeq, Explored: explored}
}

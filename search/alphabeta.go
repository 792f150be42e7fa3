package search

import (
	"math"

	"github.com/rs/zerolog/log"

	"github.com/fiftymoves/lookahead/game"
)

// thanks Wikipedia:
/**function alphabeta(node, depth, α, β, maximizingPlayer) is
    if depth = 0 or node is a terminal node then
        return the heuristic value of node
    if maximizingPlayer then
        value := −∞
        for each child of node do
            value := max(value, alphabeta(child, depth − 1, α, β, FALSE))
            α := max(α, value)
            if α ≥ β then
                break (* β cut-off *)
        return value
    else
        value := +∞
        for each child of node do
            value := min(value, alphabeta(child, depth − 1, α, β, TRUE))
            β := min(β, value)
            if α ≥ β then
                break (* α cut-off *)
        return value
(* Initial call *)
alphabeta(origin, depth, −∞, +∞, TRUE)
**/

// AlphaBeta searches to the given depth with alpha-beta pruning. It returns
// the same value and move sequence as Minimax on identical inputs, but skips
// branches that cannot change the result, so its explored tree is a subset
// of Minimax's and it expands no more nodes.
func (s *Solver) AlphaBeta(side game.Side, board game.Board, flags game.Flags, depth int) (Variation, error) {
	if err := checkSearchArgs(side, depth); err != nil {
		return Variation{}, err
	}
	s.totalNodes = 0
	v := s.alphabeta(side, board, flags, depth, math.Inf(-1), math.Inf(1))
	log.Debug().
		Int("depth", depth).
		Int("nodes", s.totalNodes).
		Float64("value", v.Value).
		Str("pv", v.String()).
		Msg("alphabeta-done")
	return v, nil
}

func (s *Solver) alphabeta(side game.Side, board game.Board, flags game.Flags, depth int, α, β float64) Variation {
	s.totalNodes++
	if depth == 0 {
		return s.leaf(board)
	}
	moves := s.GenerateMoves(side, board, flags)
	if len(moves) == 0 {
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
		child := s.alphabeta(nextSide, nextBoard, nextFlags, depth-1, α, β)
		explored[m.Key()] = child.Explored
		if side.Maximizing() {
			if child.Value > best {
				best = child.Value
				bestSeq = append([]game.Move{m}, child.Moves...)
			}
			α = math.Max(α, child.Value)
			if α >= β {
				break // β cut-off
			}
		} else {
			if child.Value < best {
				best = child.Value
				bestSeq = append([]game.Move{m}, child.Moves...)
			}
			β = math.Min(β, child.Value)
			if α >= β {
				break // α cut-off
			}
		}
	}
	return Variation{Value: best, Moves: bestSeq, Explored: explored}
}

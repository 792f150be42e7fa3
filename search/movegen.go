package search

import "github.com/fiftymoves/lookahead/game"

// GenerateMoves enumerates every legal move for the side to move, each with
// its promotion piece attached when the oracle says the move promotes. The
// order is whatever the oracle yields; it is deterministic for a
// deterministic oracle but carries no game-theoretic meaning. Ties between
// equal-valued lines are broken by this order, earliest first.
func (s *Solver) GenerateMoves(side game.Side, board game.Board, flags game.Flags) []game.Move {
	var moves []game.Move
	for _, from := range s.rules.PieceSquares(side, board) {
		for _, to := range s.rules.LegalDestinations(side, board, from, flags) {
			moves = append(moves, game.Move{
				From:      from,
				To:        to,
				Promotion: s.rules.Promotion(side, board, from, to),
			})
		}
	}
	return moves
}

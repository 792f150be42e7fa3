// Package standard implements the game.Rules contract for standard chess,
// delegating board representation, legality, and move application to
// dragontoothmg. Boards are passed around by value, so applying a move to a
// copy never disturbs the pre-move state held by sibling branches.
package standard

import (
	"fmt"
	"math/bits"

	dragon "github.com/dylhunn/dragontoothmg"

	"github.com/fiftymoves/lookahead/game"
)

// Flags is empty for standard chess: castling rights and en passant
// eligibility ride inside the dragontoothmg board itself. It exists to
// satisfy the contract's ownership discipline.
type Flags struct{}

// Rules is stateless; the zero value is ready to use.
type Rules struct{}

// NewGame returns the initial position.
func NewGame() (game.Side, game.Board, game.Flags) {
	side, board, flags, err := FromFEN(dragon.Startpos)
	if err != nil {
		panic(err)
	}
	return side, board, flags
}

// FromFEN parses a FEN string into a (side, board, flags) triple.
func FromFEN(fen string) (game.Side, game.Board, game.Flags, error) {
	pos := dragon.ParseFen(fen)
	side := game.White
	if !pos.Wtomove {
		side = game.Black
	}
	return side, pos, Flags{}, nil
}

func (Rules) PieceSquares(side game.Side, b game.Board) []game.Square {
	pos := b.(dragon.Board)
	bb := pos.White.All
	if side == game.Black {
		bb = pos.Black.All
	}
	var sqs []game.Square
	for bb != 0 {
		sqs = append(sqs, game.Square(bits.TrailingZeros64(bb)))
		bb &= bb - 1
	}
	return sqs
}

func (Rules) LegalDestinations(side game.Side, b game.Board, from game.Square, _ game.Flags) []game.Square {
	pos := b.(dragon.Board)
	var dests []game.Square
	seen := map[game.Square]bool{}
	for _, m := range pos.GenerateLegalMoves() {
		if game.Square(m.From()) != from {
			continue
		}
		// Underpromotions collapse to one destination; Promotion picks the
		// piece.
		to := game.Square(m.To())
		if !seen[to] {
			seen[to] = true
			dests = append(dests, to)
		}
	}
	return dests
}

func (Rules) Promotion(side game.Side, b game.Board, from, to game.Square) game.Piece {
	pos := b.(dragon.Board)
	best := game.NoPiece
	for _, m := range pos.GenerateLegalMoves() {
		if game.Square(m.From()) != from || game.Square(m.To()) != to {
			continue
		}
		if p := pieceFromDragon(m.Promote()); p > best {
			best = p
		}
	}
	return best
}

func (Rules) Apply(side game.Side, b game.Board, from, to game.Square, flags game.Flags, promotion game.Piece) (game.Side, game.Board, game.Flags) {
	pos := b.(dragon.Board)
	for _, m := range pos.GenerateLegalMoves() {
		if game.Square(m.From()) == from && game.Square(m.To()) == to &&
			pieceFromDragon(m.Promote()) == promotion {
			pos.Apply(m)
			return side.Opponent(), pos, flags
		}
	}
	panic(fmt.Sprintf("illegal move %v%v for %v", from, to, side))
}

func pieceFromDragon(p dragon.Piece) game.Piece {
	switch p {
	case dragon.Knight:
		return game.Knight
	case dragon.Bishop:
		return game.Bishop
	case dragon.Rook:
		return game.Rook
	case dragon.Queen:
		return game.Queen
	}
	return game.NoPiece
}

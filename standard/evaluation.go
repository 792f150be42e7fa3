package standard

import (
	"math/bits"

	dragon "github.com/dylhunn/dragontoothmg"

	"github.com/fiftymoves/lookahead/game"
)

// Material values in centipawns.
const (
	pawnValue   = 100
	knightValue = 320
	bishopValue = 330
	rookValue   = 500
	queenValue  = 900
)

// Evaluate scores the position by material balance, positive for White.
// Mate and stalemate are not detected here; a terminal position simply
// evaluates to its material count.
func (Rules) Evaluate(b game.Board) float64 {
	pos := b.(dragon.Board)
	score := pawnValue*count(pos.White.Pawns, pos.Black.Pawns) +
		knightValue*count(pos.White.Knights, pos.Black.Knights) +
		bishopValue*count(pos.White.Bishops, pos.Black.Bishops) +
		rookValue*count(pos.White.Rooks, pos.Black.Rooks) +
		queenValue*count(pos.White.Queens, pos.Black.Queens)
	return float64(score)
}

func count(white, black uint64) int {
	return bits.OnesCount64(white) - bits.OnesCount64(black)
}

package game

// Move is an (origin, destination, promotion) triple. Promotion is NoPiece
// unless the legality oracle says the move promotes a pawn.
type Move struct {
	From      Square
	To        Square
	Promotion Piece
}

// Key is a canonical encoding of a move, injective over distinct moves. It is
// used only as a dictionary key in the explored-move tree; it carries no game
// logic.
type Key uint16

// Key packs from, to, and promotion into a single comparable value.
func (m Move) Key() Key {
	return Key(m.From) | Key(m.To)<<6 | Key(m.Promotion)<<12
}

// Move recovers the move a Key encodes.
func (k Key) Move() Move {
	return Move{
		From:      Square(k & 0x3f),
		To:        Square(k >> 6 & 0x3f),
		Promotion: Piece(k >> 12),
	}
}

// String renders the move in long algebraic (UCI) form, e.g. "e2e4", "e7e8q".
func (m Move) String() string {
	return m.From.String() + m.To.String() + m.Promotion.String()
}

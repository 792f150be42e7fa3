// Package game defines the domain types shared by every search strategy:
// sides, squares, moves, and the collaborator contracts that supply chess
// legality, move application, and static evaluation.
package game

import "fmt"

// Side identifies the player to move. The roles are fixed: White always
// maximizes and Black always minimizes. This is an asymmetric minimax
// convention, not negamax.
type Side uint8

const (
	White Side = iota
	Black
)

// Maximizing reports whether this side plays the maximizing role.
func (s Side) Maximizing() bool {
	return s == White
}

// Opponent returns the other side.
func (s Side) Opponent() Side {
	if s == White {
		return Black
	}
	return White
}

// Valid reports whether s is one of the two defined sides.
func (s Side) Valid() bool {
	return s == White || s == Black
}

func (s Side) String() string {
	if s == White {
		return "white"
	}
	return "black"
}

// Square is a board square, 0 through 63, a1 = 0 and h8 = 63.
type Square uint8

func (sq Square) String() string {
	return fmt.Sprintf("%c%c", 'a'+sq%8, '1'+sq/8)
}

// ParseSquare parses algebraic notation like "e4".
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 || s[0] < 'a' || s[0] > 'h' || s[1] < '1' || s[1] > '8' {
		return 0, fmt.Errorf("invalid square %q", s)
	}
	return Square(s[0]-'a') + 8*Square(s[1]-'1'), nil
}

// Piece is a promotion choice. It is NoPiece for every move that is not a
// pawn promotion; the legality oracle supplies it otherwise.
type Piece uint8

const (
	NoPiece Piece = iota
	Knight
	Bishop
	Rook
	Queen
)

func (p Piece) String() string {
	switch p {
	case Knight:
		return "n"
	case Bishop:
		return "b"
	case Rook:
		return "r"
	case Queen:
		return "q"
	}
	return ""
}

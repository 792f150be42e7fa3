package game

// Board is the opaque position state owned by a Rules implementation. The
// search core never constructs or mutates one; every transition goes through
// Rules.Apply, which must return a fresh value.
type Board interface{}

// Flags is opaque auxiliary game state (castling rights, en passant
// eligibility, and so on) that travels alongside the board under the same
// ownership discipline.
type Flags interface{}

// Rules bundles the external collaborators the search core depends on:
// the legality oracle, move application, and the static evaluator. Every
// method must be deterministic per call, and Apply must not mutate its inputs
// since callers reuse the pre-move state across sibling branches.
type Rules interface {
	// PieceSquares returns the origin squares occupied by the given side.
	PieceSquares(side Side, board Board) []Square

	// LegalDestinations returns every legal destination for the piece on
	// from, for the side to move.
	LegalDestinations(side Side, board Board, from Square, flags Flags) []Square

	// Promotion returns the promotion piece for the move, or NoPiece if the
	// move does not promote.
	Promotion(side Side, board Board, from, to Square) Piece

	// Apply plays the move and returns the resulting side to move, board,
	// and flags. Copy-on-write: the input board and flags are left untouched.
	Apply(side Side, board Board, from, to Square, flags Flags, promotion Piece) (Side, Board, Flags)

	// Evaluate scores the position. Higher is better for White (the
	// maximizer), lower for Black. Results must be finite.
	Evaluate(board Board) float64
}

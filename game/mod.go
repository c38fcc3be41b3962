package game

// Size is the side length of the board.
const Size = 3

// Cells is the number of cells on the board.
const Cells = Size * Size

// Owner is the occupant of a cell, and doubles as a player id.
type Owner int

const (
	None Owner = iota
	PlayerOne
	PlayerTwo
)

// Opponent returns the other player. None has no opponent.
func (o Owner) Opponent() Owner {
	switch o {
	case PlayerOne:
		return PlayerTwo
	case PlayerTwo:
		return PlayerOne
	}
	return None
}

func (o Owner) String() string {
	switch o {
	case PlayerOne:
		return "X"
	case PlayerTwo:
		return "O"
	}
	return "-"
}

// Winner is the outcome of a board: PlayerOne or PlayerTwo once someone has
// completed a line, Draw for a full board without a line, Undecided otherwise.
type Winner int

const (
	Undecided Winner = -1
	Draw      Winner = 0
)

// Is reports whether w is a win for player o.
func (w Winner) Is(o Owner) bool {
	return w > 0 && Owner(w) == o
}

func (w Winner) String() string {
	switch w {
	case Undecided:
		return "undecided"
	case Draw:
		return "draw"
	}
	return "player " + Owner(w).String()
}

// Move places the next mark at (Row, Col), both zero-indexed.
type Move struct {
	Row, Col int
}

// Successor is a board reachable with one move, identified by its fingerprint
// and carrying the move that produces it.
type Successor struct {
	Move        Move
	Fingerprint Fingerprint
}

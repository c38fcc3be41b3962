package game

import "strings"

// Board is a 3x3 tic-tac-toe game. Player one always moves first.
//
// The zero value is not ready for use; call NewBoard.
type Board struct {
	cells  [Cells]Owner
	turn   int // 1-based number of the next move
	winner Owner
	last   Move
}

// NewBoard returns an empty board with player one to move.
func NewBoard() *Board {
	return &Board{turn: 1}
}

// Copy returns a deep copy of b.
func (b *Board) Copy() *Board {
	c := *b
	return &c
}

// Play places the mark of the player to move at (row, col). It returns false,
// leaving the board untouched, if the cell is off the board or taken, or if
// the game is already over.
func (b *Board) Play(row, col int) bool {
	if !onBoard(row, col) || b.IsOver() || b.cells[row*Size+col] != None {
		return false
	}

	player := b.ToMove()
	b.cells[row*Size+col] = player
	b.evalWinner(row, col, player)
	b.last = Move{Row: row, Col: col}
	b.turn++
	return true
}

// LastMove returns the most recent move, or false on an empty board.
func (b *Board) LastMove() (Move, bool) {
	return b.last, b.turn > 1
}

// evalWinner checks the lines through the last move for a win by player.
func (b *Board) evalWinner(row, col int, player Owner) {
	horizontal, vertical := true, true
	diagonal, antiDiagonal := row == col, row+col == Size-1
	for i := 0; i < Size; i++ {
		if b.PlayerAt(row, i) != player {
			horizontal = false
		}
		if b.PlayerAt(i, col) != player {
			vertical = false
		}
		if b.PlayerAt(i, i) != player {
			diagonal = false
		}
		if b.PlayerAt(i, Size-1-i) != player {
			antiDiagonal = false
		}
	}
	if horizontal || vertical || diagonal || antiDiagonal {
		b.winner = player
	}
}

// ToMove returns the player whose turn it is.
func (b *Board) ToMove() Owner {
	if b.turn%2 == 0 {
		return PlayerTwo
	}
	return PlayerOne
}

// TurnNum returns the 1-based number of the next move.
func (b *Board) TurnNum() int { return b.turn }

// PlayerAt returns the owner of a cell. Off-board cells are empty.
func (b *Board) PlayerAt(row, col int) Owner {
	if !onBoard(row, col) {
		return None
	}
	return b.cells[row*Size+col]
}

// NumEmpty returns the number of cells nobody has played.
func (b *Board) NumEmpty() int {
	empty := 0
	for _, c := range b.cells {
		if c == None {
			empty++
		}
	}
	return empty
}

func (b *Board) IsFull() bool { return b.NumEmpty() == 0 }

// IsOver reports whether someone has won or the board is full.
func (b *Board) IsOver() bool {
	return b.winner != None || b.IsFull()
}

// Winner returns the outcome of the board so far.
func (b *Board) Winner() Winner {
	switch {
	case b.winner != None:
		return Winner(b.winner)
	case b.IsFull():
		return Draw
	}
	return Undecided
}

// LegalMoves returns the empty cells in row-major order, or nil once the game
// is over.
func (b *Board) LegalMoves() []Move {
	if b.IsOver() {
		return nil
	}
	moves := make([]Move, 0, b.NumEmpty())
	for i, c := range b.cells {
		if c == None {
			moves = append(moves, Move{Row: i / Size, Col: i % Size})
		}
	}
	return moves
}

// Successors returns one successor per legal move, in row-major order.
func (b *Board) Successors() []Successor {
	moves := b.LegalMoves()
	if len(moves) == 0 {
		return nil
	}
	successors := make([]Successor, 0, len(moves))
	for _, m := range moves {
		next := b.Copy()
		next.Play(m.Row, m.Col)
		successors = append(successors, Successor{Move: m, Fingerprint: next.Fingerprint()})
	}
	return successors
}

func (b *Board) String() string {
	return render(b.cells)
}

func render(cells [Cells]Owner) string {
	var sb strings.Builder
	for i, c := range cells {
		sb.WriteString(c.String())
		if i%Size == Size-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func onBoard(row, col int) bool {
	return row >= 0 && row < Size && col >= 0 && col < Size
}

package domain

import "fmt"

// Player is one of the two sides of a game. There is no "neither" player;
// an unoccupied cell is represented by Cell, not by Player.
type Player int

const (
	First  Player = 1
	Second Player = 2
)

// Other returns the opponent of p.
func (p Player) Other() Player {
	if p == First {
		return Second
	}
	return First
}

// Marker is the character used when a board is drawn as text.
func (p Player) Marker() byte {
	if p == First {
		return 'X'
	}
	return 'O'
}

func (p Player) String() string {
	switch p {
	case First:
		return "first"
	case Second:
		return "second"
	}
	return fmt.Sprintf("Player(%d)", int(p))
}

// Cell is the content of one grid position: Empty or occupied by a player.
type Cell int

const Empty Cell = 0

// CellOf returns the cell occupied by p.
func CellOf(p Player) Cell {
	return Cell(p)
}

// Occupant reports which player holds the cell, if any.
func (c Cell) Occupant() (Player, bool) {
	if c == Empty {
		return 0, false
	}
	return Player(c), true
}

// supported board widths; height is always width-1
const (
	MinWidth = 5
	MaxWidth = 7
	ToWin    = 4
)

// ValidWidth reports whether width is one of the supported board sizes.
func ValidWidth(width int) bool {
	return width >= MinWidth && width <= MaxWidth
}

// to represent the stage of a game
type Stage string

const (
	StageAwaitingSize Stage = "awaiting_size"
	StageAwaitingMove Stage = "awaiting_move"
	StageFinished     Stage = "finished"
)

type OutcomeKind string

const (
	OutcomeWin  OutcomeKind = "win"
	OutcomeDraw OutcomeKind = "draw"
)

// Outcome is the result of a finished game. Winner is only set for a win.
type Outcome struct {
	Kind   OutcomeKind
	Winner Player
}

func Win(p Player) Outcome { return Outcome{Kind: OutcomeWin, Winner: p} }

func Draw() Outcome { return Outcome{Kind: OutcomeDraw} }

func (o Outcome) String() string {
	if o.Kind == OutcomeWin {
		return fmt.Sprintf("win(%s)", o.Winner)
	}
	return string(o.Kind)
}

// Phase is the current stage of a game. Current is meaningful only while
// awaiting a move and Outcome only once finished.
type Phase struct {
	Stage   Stage
	Current Player
	Outcome Outcome
}

func (p Phase) String() string {
	switch p.Stage {
	case StageAwaitingMove:
		return fmt.Sprintf("awaiting_move(%s)", p.Current)
	case StageFinished:
		return fmt.Sprintf("finished(%s)", p.Outcome)
	}
	return string(p.Stage)
}

// basic errors that can occur
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	ErrInvalidWidth    Error = "board width must be 5, 6 or 7"
	ErrNotAwaitingSize Error = "game is not awaiting a board size"
	ErrNotAwaitingMove Error = "game is not awaiting a move"
	ErrIllegalColumn   Error = "illegal column"
	ErrGameInProgress  Error = "game is still in progress"
)

// ConfigurationError reports a rejected board width.
type ConfigurationError struct {
	Width int
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s: got %d", ErrInvalidWidth, e.Width)
}

func (e *ConfigurationError) Unwrap() error { return ErrInvalidWidth }

// MoveError reports a column that is out of range or already full.
type MoveError struct {
	Column int
}

func (e *MoveError) Error() string {
	return fmt.Sprintf("%s %d", ErrIllegalColumn, e.Column)
}

func (e *MoveError) Unwrap() error { return ErrIllegalColumn }

// Totals counts finished games by result.
type Totals struct {
	FirstWins  int64
	SecondWins int64
	Draws      int64
}

// Add counts one more finished game.
func (t *Totals) Add(o Outcome) {
	switch {
	case o.Kind == OutcomeDraw:
		t.Draws++
	case o.Winner == First:
		t.FirstWins++
	case o.Winner == Second:
		t.SecondWins++
	}
}

func (t Totals) Games() int64 { return t.FirstWins + t.SecondWins + t.Draws }

package domain

// Engine runs a single game: size selection, alternating moves and the
// win/draw decision after each placement. It holds no locks; callers that
// share an Engine between goroutines must serialize every call.
type Engine struct {
	board     *Board
	stage     Stage
	lastMover Player
	outcome   Outcome
	moveCount int
}

// MoveResult describes an accepted move and the phase it led to.
type MoveResult struct {
	Column int
	Row    int
	Player Player
	Phase  Phase
}

func NewEngine() *Engine {
	return &Engine{stage: StageAwaitingSize}
}

// SelectSize builds the board and hands the first move to First.
func (e *Engine) SelectSize(width int) error {
	if e.stage != StageAwaitingSize {
		return ErrNotAwaitingSize
	}

	board, err := NewBoard(width)
	if err != nil {
		return err
	}

	e.board = board
	e.stage = StageAwaitingMove
	// the mover is flipped before every move, so starting from Second
	// makes First the opening player
	e.lastMover = Second
	e.outcome = Outcome{}
	e.moveCount = 0
	return nil
}

// SubmitMove drops a disc for the player to move. An illegal column leaves
// the game untouched and the same player must choose again.
func (e *Engine) SubmitMove(column int) (MoveResult, error) {
	if e.stage != StageAwaitingMove {
		return MoveResult{}, ErrNotAwaitingMove
	}

	player := e.lastMover.Other()
	row, err := e.board.Drop(column, player)
	if err != nil {
		return MoveResult{}, err
	}

	e.lastMover = player
	e.moveCount++

	// a win on the move that fills the board is still a win
	switch {
	case WinsAt(e.board, column, row):
		e.finish(Win(player))
	case e.board.IsFull():
		e.finish(Draw())
	}

	return MoveResult{
		Column: column,
		Row:    row,
		Player: player,
		Phase:  e.CurrentPhase(),
	}, nil
}

func (e *Engine) finish(o Outcome) {
	e.stage = StageFinished
	e.outcome = o
}

// NewGame returns a finished game to size selection. It is a no-op while
// still awaiting a size.
func (e *Engine) NewGame() error {
	switch e.stage {
	case StageAwaitingMove:
		return ErrGameInProgress
	case StageFinished:
		e.board = nil
		e.stage = StageAwaitingSize
		e.outcome = Outcome{}
		e.moveCount = 0
	}
	return nil
}

func (e *Engine) CurrentPhase() Phase {
	switch e.stage {
	case StageAwaitingMove:
		return Phase{Stage: StageAwaitingMove, Current: e.lastMover.Other()}
	case StageFinished:
		return Phase{Stage: StageFinished, Outcome: e.outcome}
	}
	return Phase{Stage: StageAwaitingSize}
}

// CurrentOutcome returns the result once the game is finished.
func (e *Engine) CurrentOutcome() (Outcome, bool) {
	if e.stage != StageFinished {
		return Outcome{}, false
	}
	return e.outcome, true
}

// Board returns a copy of the grid, or nil before a size is selected.
func (e *Engine) Board() [][]Cell {
	if e.board == nil {
		return nil
	}
	return e.board.Snapshot()
}

// Width is the selected board width, 0 before selection.
func (e *Engine) Width() int {
	if e.board == nil {
		return 0
	}
	return e.board.Width()
}

func (e *Engine) MoveCount() int { return e.moveCount }

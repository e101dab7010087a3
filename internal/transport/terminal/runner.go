package terminal

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/iamasit07/4-in-a-row/engine/internal/domain"
	"github.com/iamasit07/4-in-a-row/engine/internal/service/game"
	"github.com/rs/zerolog"
)

// TotalsReader reports the outcome tally shown between games.
type TotalsReader interface {
	Totals(ctx context.Context) (domain.Totals, error)
}

// Runner drives games from a MoveSource and writes the board and messages
// to out. It plays game after game until the source runs dry.
type Runner struct {
	Sessions *game.SessionManager
	Source   MoveSource
	Out      io.Writer
	Width    int // preselected width; 0 asks the player
	Totals   TotalsReader
	logger   zerolog.Logger
}

func NewRunner(sm *game.SessionManager, source MoveSource, out io.Writer, logger zerolog.Logger) *Runner {
	return &Runner{
		Sessions: sm,
		Source:   source,
		Out:      out,
		logger:   logger.With().Str("component", "terminal").Logger(),
	}
}

// Run returns nil when input ends and ctx.Err() when cancelled.
func (r *Runner) Run(ctx context.Context) error {
	session, err := r.Sessions.CreateSession()
	if err != nil {
		return err
	}
	defer func() {
		if err := r.Sessions.RemoveSession(session.GameID); err != nil {
			r.logger.Debug().Err(err).Msg("session already gone")
		}
	}()

	release, err := r.Sessions.Hold(session.GameID)
	if err != nil {
		return err
	}
	defer release()

	gameID := session.GameID
	for {
		err := r.playOne(ctx, gameID)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		r.printTotals(ctx)
		r.printf("Press enter to play another game.\n")
		if _, err := r.Source.NextColumn(ctx); err != nil && !errors.Is(err, ErrNotANumber) {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		if err := r.Sessions.NewGame(gameID); err != nil {
			return err
		}
	}
}

func (r *Runner) playOne(ctx context.Context, gameID string) error {
	if err := r.selectSize(ctx, gameID); err != nil {
		return err
	}
	if err := r.drawBoard(gameID); err != nil {
		return err
	}

	for {
		phase, err := r.Sessions.Phase(gameID)
		if err != nil {
			return err
		}
		if phase.Stage == domain.StageFinished {
			r.announce(phase.Outcome)
			return nil
		}

		board, err := r.Sessions.Board(gameID)
		if err != nil {
			return err
		}
		r.printf("Player %c, choose a column (1-%d): ", phase.Current.Marker(), len(board))

		choice, err := r.Source.NextColumn(ctx)
		if errors.Is(err, ErrNotANumber) {
			r.printf("Please enter a column number.\n")
			continue
		}
		if err != nil {
			return err
		}

		if _, err := r.Sessions.SubmitMove(ctx, gameID, choice-1); err != nil {
			if errors.Is(err, domain.ErrIllegalColumn) {
				r.printf("Column %d is not playable, try again.\n", choice)
				continue
			}
			return err
		}
		if err := r.drawBoard(gameID); err != nil {
			return err
		}
	}
}

func (r *Runner) selectSize(ctx context.Context, gameID string) error {
	width := r.Width
	for {
		if width == 0 {
			r.printf("Choose a size: 5, 6, or 7\n")
			n, err := r.Source.NextColumn(ctx)
			if errors.Is(err, ErrNotANumber) {
				continue
			}
			if err != nil {
				return err
			}
			width = n
		}

		_, err := r.Sessions.SelectSize(gameID, width)
		if errors.Is(err, domain.ErrInvalidWidth) {
			r.logger.Debug().Int("width", width).Msg("rejected board width")
			r.printf("%d is not a valid size.\n", width)
			width = 0
			continue
		}
		return err
	}
}

func (r *Runner) drawBoard(gameID string) error {
	board, err := r.Sessions.Board(gameID)
	if err != nil {
		return err
	}
	return Render(r.Out, board)
}

func (r *Runner) announce(o domain.Outcome) {
	if o.Kind == domain.OutcomeDraw {
		r.printf("There was a draw! Good luck next time.\n")
		return
	}
	r.printf("%c wins!\n", o.Winner.Marker())
}

func (r *Runner) printTotals(ctx context.Context) {
	if r.Totals == nil {
		return
	}
	totals, err := r.Totals.Totals(ctx)
	if err != nil {
		r.logger.Warn().Err(err).Msg("could not read outcome totals")
		return
	}
	r.printf("Games: %d  X: %d  O: %d  draws: %d\n",
		totals.Games(), totals.FirstWins, totals.SecondWins, totals.Draws)
}

func (r *Runner) printf(format string, args ...any) {
	fmt.Fprintf(r.Out, format, args...)
}

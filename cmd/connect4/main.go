package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/iamasit07/4-in-a-row/engine/internal/config"
	"github.com/iamasit07/4-in-a-row/engine/internal/domain"
	"github.com/iamasit07/4-in-a-row/engine/internal/repository/memory"
	"github.com/iamasit07/4-in-a-row/engine/internal/repository/redis"
	"github.com/iamasit07/4-in-a-row/engine/internal/service/cleanup"
	"github.com/iamasit07/4-in-a-row/engine/internal/service/game"
	"github.com/iamasit07/4-in-a-row/engine/internal/transport/terminal"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// tally is both where outcomes go and where the between-games totals come from
type tally interface {
	game.OutcomeRecorder
	terminal.TotalsReader
	Reset(ctx context.Context) error
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file found")
	}

	// logs go to stderr so they never interleave with the board on stdout
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg := config.LoadConfig()
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var results tally = memory.NewTally()
	if cfg.RedisURL != "" {
		client, err := redis.Connect(ctx, cfg.RedisURL, cfg.RedisPassword)
		if err != nil {
			log.Warn().Err(err).Msg("redis unavailable, keeping totals in memory")
		} else {
			defer client.Close()
			results = redis.NewTally(client)
		}
	}

	if cfg.ResetTotals {
		if err := results.Reset(ctx); err != nil {
			log.Warn().Err(err).Msg("could not reset outcome totals")
		} else {
			log.Info().Msg("outcome totals reset")
		}
	}

	sessionManager := game.NewSessionManager(results, log.Logger)

	cleanupWorker := cleanup.NewWorker(sessionManager, cfg.SessionIdleTime, cfg.CleanupInterval, log.Logger)
	go cleanupWorker.Start(ctx)

	runner := terminal.NewRunner(sessionManager, terminal.NewLineSource(os.Stdin), os.Stdout, log.Logger)
	runner.Totals = results
	if cfg.BoardWidth != 0 {
		if domain.ValidWidth(cfg.BoardWidth) {
			runner.Width = cfg.BoardWidth
		} else {
			log.Warn().Int("width", cfg.BoardWidth).Msg("ignoring BOARD_WIDTH, must be 5, 6 or 7")
		}
	}

	if err := runner.Run(ctx); err != nil && ctx.Err() == nil {
		log.Fatal().Err(err).Msg("game loop failed")
	}
	log.Info().Msg("goodbye")
}

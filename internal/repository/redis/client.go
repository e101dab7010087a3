package redis

import (
	"context"
	"fmt"
	"strconv"

	"github.com/iamasit07/4-in-a-row/engine/internal/domain"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const outcomesKey = "connect4:outcomes"

const (
	fieldFirstWins  = "first_wins"
	fieldSecondWins = "second_wins"
	fieldDraws      = "draws"
)

// Connect opens a client and checks it with a ping. The caller decides
// whether a failure is fatal; the engine runs fine without a tally.
func Connect(ctx context.Context, addr, password string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", addr, err)
	}

	log.Info().Str("addr", addr).Msg("redis connected")
	return client, nil
}

// Tally keeps outcome counters in a single Redis hash so several driver
// processes can share them.
type Tally struct {
	client *redis.Client
	key    string
}

func NewTally(client *redis.Client) *Tally {
	return &Tally{client: client, key: outcomesKey}
}

// RecordOutcome increments the counter for one finished game
func (t *Tally) RecordOutcome(ctx context.Context, outcome domain.Outcome) error {
	return t.client.HIncrBy(ctx, t.key, outcomeField(outcome), 1).Err()
}

// Totals reads all counters; missing fields count as zero.
func (t *Tally) Totals(ctx context.Context) (domain.Totals, error) {
	fields, err := t.client.HGetAll(ctx, t.key).Result()
	if err != nil {
		return domain.Totals{}, err
	}
	return parseTotals(fields)
}

// Reset clears every counter.
func (t *Tally) Reset(ctx context.Context) error {
	return t.client.Del(ctx, t.key).Err()
}

func outcomeField(outcome domain.Outcome) string {
	if outcome.Kind == domain.OutcomeDraw {
		return fieldDraws
	}
	if outcome.Winner == domain.First {
		return fieldFirstWins
	}
	return fieldSecondWins
}

func parseTotals(fields map[string]string) (domain.Totals, error) {
	var totals domain.Totals
	targets := map[string]*int64{
		fieldFirstWins:  &totals.FirstWins,
		fieldSecondWins: &totals.SecondWins,
		fieldDraws:      &totals.Draws,
	}
	for name, dst := range targets {
		raw, ok := fields[name]
		if !ok {
			continue
		}
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return domain.Totals{}, fmt.Errorf("outcome counter %s: %w", name, err)
		}
		*dst = n
	}
	return totals, nil
}

package memory

import (
	"context"
	"sync"

	"github.com/iamasit07/4-in-a-row/engine/internal/domain"
)

// Tally is the in-process outcome counter used when Redis is not configured.
type Tally struct {
	mu     sync.Mutex
	totals domain.Totals
}

func NewTally() *Tally {
	return &Tally{}
}

func (t *Tally) RecordOutcome(_ context.Context, outcome domain.Outcome) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.totals.Add(outcome)
	return nil
}

func (t *Tally) Totals(_ context.Context) (domain.Totals, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.totals, nil
}

func (t *Tally) Reset(_ context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.totals = domain.Totals{}
	return nil
}

package game

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/iamasit07/4-in-a-row/engine/internal/domain"
	"github.com/iamasit07/4-in-a-row/engine/pkg/uid"
	"github.com/rs/zerolog"
)

var ErrSessionNotFound = errors.New("session not found")

// OutcomeRecorder receives the result of every finished game exactly once.
type OutcomeRecorder interface {
	RecordOutcome(ctx context.Context, outcome domain.Outcome) error
}

// GameSession owns one engine. The engine is not safe for concurrent use,
// so every call into it goes through mu.
type GameSession struct {
	GameID       string
	CreatedAt    time.Time
	lastActivity time.Time
	engine       *domain.Engine
	recorded     bool
	holders      int // drivers attached to the session; held sessions are never swept
	mu           sync.Mutex
}

// SessionManager manages active game sessions
type SessionManager struct {
	Session  map[string]*GameSession // gameID → GameSession
	mu       sync.RWMutex
	recorder OutcomeRecorder
	logger   zerolog.Logger
	now      func() time.Time
}

// NewSessionManager creates a manager. recorder may be nil.
func NewSessionManager(recorder OutcomeRecorder, logger zerolog.Logger) *SessionManager {
	return &SessionManager{
		Session:  make(map[string]*GameSession),
		recorder: recorder,
		logger:   logger.With().Str("component", "sessions").Logger(),
		now:      time.Now,
	}
}

func (sm *SessionManager) CreateSession() (*GameSession, error) {
	gameID, err := uid.GenerateGameID()
	if err != nil {
		return nil, err
	}

	now := sm.now()
	session := &GameSession{
		GameID:       gameID,
		CreatedAt:    now,
		lastActivity: now,
		engine:       domain.NewEngine(),
	}

	sm.mu.Lock()
	sm.Session[gameID] = session
	sm.mu.Unlock()

	sm.logger.Info().Str("game_id", gameID).Msg("session created")
	return session, nil
}

// Hold marks the session as attached to a live driver so idle cleanup
// skips it, however long the player takes. The returned func releases it.
func (sm *SessionManager) Hold(gameID string) (func(), error) {
	session, err := sm.lookup(gameID)
	if err != nil {
		return nil, err
	}

	session.mu.Lock()
	session.holders++
	session.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			session.mu.Lock()
			session.holders--
			session.lastActivity = sm.now()
			session.mu.Unlock()
		})
	}, nil
}

func (sm *SessionManager) GetSession(gameID string) (*GameSession, bool) {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	session, exists := sm.Session[gameID]
	return session, exists
}

func (sm *SessionManager) lookup(gameID string) (*GameSession, error) {
	session, exists := sm.GetSession(gameID)
	if !exists {
		return nil, fmt.Errorf("game %s: %w", gameID, ErrSessionNotFound)
	}
	return session, nil
}

func (sm *SessionManager) SelectSize(gameID string, width int) (domain.Phase, error) {
	session, err := sm.lookup(gameID)
	if err != nil {
		return domain.Phase{}, err
	}

	session.mu.Lock()
	defer session.mu.Unlock()

	session.lastActivity = sm.now()
	if err := session.engine.SelectSize(width); err != nil {
		return session.engine.CurrentPhase(), err
	}

	sm.logger.Debug().Str("game_id", gameID).Int("width", width).Msg("board size selected")
	return session.engine.CurrentPhase(), nil
}

// SubmitMove plays column for whoever is to move in the game. Once the game
// finishes, its outcome is handed to the recorder; a recorder failure is
// logged but does not undo the move.
func (sm *SessionManager) SubmitMove(ctx context.Context, gameID string, column int) (domain.MoveResult, error) {
	session, err := sm.lookup(gameID)
	if err != nil {
		return domain.MoveResult{}, err
	}

	session.mu.Lock()
	defer session.mu.Unlock()

	session.lastActivity = sm.now()
	result, err := session.engine.SubmitMove(column)
	if err != nil {
		return result, err
	}

	sm.logger.Debug().
		Str("game_id", gameID).
		Stringer("player", result.Player).
		Int("column", column).
		Int("row", result.Row).
		Msg("move accepted")

	if result.Phase.Stage == domain.StageFinished && !session.recorded {
		session.recorded = true
		sm.logger.Info().Str("game_id", gameID).Stringer("outcome", result.Phase.Outcome).
			Int("moves", session.engine.MoveCount()).Msg("game finished")

		if sm.recorder != nil {
			if err := sm.recorder.RecordOutcome(ctx, result.Phase.Outcome); err != nil {
				sm.logger.Warn().Err(err).Str("game_id", gameID).Msg("failed to record outcome")
			}
		}
	}

	return result, nil
}

func (sm *SessionManager) Phase(gameID string) (domain.Phase, error) {
	session, err := sm.lookup(gameID)
	if err != nil {
		return domain.Phase{}, err
	}

	session.mu.Lock()
	defer session.mu.Unlock()
	return session.engine.CurrentPhase(), nil
}

// Board returns a copy of the session's grid, nil before a size is chosen.
func (sm *SessionManager) Board(gameID string) ([][]domain.Cell, error) {
	session, err := sm.lookup(gameID)
	if err != nil {
		return nil, err
	}

	session.mu.Lock()
	defer session.mu.Unlock()
	return session.engine.Board(), nil
}

// NewGame sends a finished session back to size selection.
func (sm *SessionManager) NewGame(gameID string) error {
	session, err := sm.lookup(gameID)
	if err != nil {
		return err
	}

	session.mu.Lock()
	defer session.mu.Unlock()

	if err := session.engine.NewGame(); err != nil {
		return err
	}
	session.recorded = false
	session.lastActivity = sm.now()
	return nil
}

func (sm *SessionManager) RemoveSession(gameID string) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	return sm.removeSessionLocked(gameID)
}

// removeSessionLocked removes session from the map without acquiring lock (caller must hold it)
func (sm *SessionManager) removeSessionLocked(gameID string) error {
	if _, exists := sm.Session[gameID]; !exists {
		return fmt.Errorf("game %s: %w", gameID, ErrSessionNotFound)
	}

	delete(sm.Session, gameID)
	sm.logger.Info().Str("game_id", gameID).Msg("session removed")
	return nil
}

// CleanupIdleSessions drops every unheld session untouched for longer than
// maxIdle and returns how many were removed.
func (sm *SessionManager) CleanupIdleSessions(maxIdle time.Duration) int {
	cutoff := sm.now().Add(-maxIdle)

	sm.mu.Lock()
	defer sm.mu.Unlock()

	removed := 0
	for gameID, session := range sm.Session {
		session.mu.Lock()
		idle := session.holders == 0 && session.lastActivity.Before(cutoff)
		session.mu.Unlock()

		if idle {
			_ = sm.removeSessionLocked(gameID) // gameID comes from the map under sm.mu
			removed++
		}
	}
	return removed
}

func (sm *SessionManager) ActiveCount() int {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return len(sm.Session)
}

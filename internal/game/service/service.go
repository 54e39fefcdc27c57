// Package service implements the round-lifecycle operations: launch, spin,
// gamble and take-win over versioned sessions.
package service

import (
	"log"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/nishatiwari24/game-backend/internal/game/config"
	"github.com/nishatiwari24/game-backend/internal/game/domain"
	"github.com/nishatiwari24/game-backend/internal/game/engine"
	"github.com/nishatiwari24/game-backend/internal/id"
	"github.com/nishatiwari24/game-backend/internal/storage"
)

// Stores groups the persistence contracts the service depends on.
type Stores struct {
	Session storage.SessionStore
	Request storage.SessionRequestStore
	Player  storage.PlayerStore
	History storage.HistoryStore
	Wallet  storage.WalletStore
}

// OutcomeEngine produces spin outcomes and gamble card draws.
type OutcomeEngine interface {
	Compute(game *config.Game, betPerLine int64, lines int) (*engine.Outcome, error)
	DrawCard() domain.Card
}

// Service orchestrates the round lifecycle. All mutations of session state go
// through the session store's conditional writes; wallet and history effects
// happen only after the session commit that claims them.
type Service struct {
	stores Stores
	games  *config.Registry
	engine OutcomeEngine
	tracer trace.Tracer
	now    func() time.Time
	newID  func() (string, error)
}

// New creates the round-lifecycle service.
func New(stores Stores, games *config.Registry, eng OutcomeEngine) *Service {
	return &Service{
		stores: stores,
		games:  games,
		engine: eng,
		tracer: otel.Tracer("github.com/nishatiwari24/game-backend/internal/game/service"),
		now:    time.Now,
		newID:  id.NewID,
	}
}

func logAction(action, playerID, gameID, cycleID string, bet, win int64) {
	log.Printf("%s player_id=%s game_id=%s game_cycle_id=%s bet=%d win=%d",
		action, playerID, gameID, cycleID, bet, win)
}

// Package storage defines the persistence contracts of the game backend.
package storage

import (
	"context"
	"errors"
	"time"

	"github.com/nishatiwari24/game-backend/internal/game/domain"
)

var (
	// ErrNotFound indicates the requested record does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrAlreadyExists indicates a create collided with an existing record.
	ErrAlreadyExists = errors.New("record already exists")
	// ErrVersionMismatch indicates a conditional write lost to a concurrent update.
	ErrVersionMismatch = errors.New("session version mismatch")
)

// SessionRecord pairs a session with the version observed when it was read.
type SessionRecord struct {
	Session domain.Session
	Version int64
}

// RequestStatus tracks the admission handshake of a spin request.
type RequestStatus string

const (
	RequestStatusInit     RequestStatus = "init"
	RequestStatusReady    RequestStatus = "ready"
	RequestStatusConsumed RequestStatus = "consumed"
)

// SessionRequest is the per-(player, game) spin admission record.
type SessionRequest struct {
	PlayerID string
	GameID   string
	ClientID string
	Status   RequestStatus
	Version  int64
}

// PlayerInfo is the wallet-facing view of a player.
type PlayerInfo struct {
	PlayerID   string
	BaseGameID string
	Balance    int64
	Currency   string
}

// ActionType labels a round-history entry.
type ActionType string

const (
	ActionSpin    ActionType = "SPIN"
	ActionGamble  ActionType = "GAMBLE"
	ActionTakeWin ActionType = "TAKE_WIN"
)

// GameAction is one append-only round-history entry.
type GameAction struct {
	PlayerID    string
	GameID      string
	GameCycleID string
	ActionTime  time.Time
	Type        ActionType
	Bet         int64
	Win         int64
}

// CreditPath distinguishes main-game from bonus-game win credits.
type CreditPath string

const (
	CreditPathMain  CreditPath = "main"
	CreditPathBonus CreditPath = "bonus"
)

// WalletCredit is one idempotent win credit keyed by (game cycle, path).
type WalletCredit struct {
	PlayerID    string
	GameID      string
	SkinID      string
	BaseGameID  string
	GameCycleID string
	Amount      int64
	Path        CreditPath
}

// SessionStore persists versioned round-lifecycle sessions.
type SessionStore interface {
	// GetSession returns the session and its current version.
	GetSession(ctx context.Context, playerID, gameID string) (*SessionRecord, error)
	// CreateSession writes a brand-new session at version 1.
	CreateSession(ctx context.Context, sess *domain.Session) error
	// PutSessionWithVersion writes the session only if the stored version
	// still matches, returning the new version on success and
	// ErrVersionMismatch when a concurrent writer got there first.
	PutSessionWithVersion(ctx context.Context, sess *domain.Session, version int64) (int64, error)
	// PutSession writes the session unconditionally, bumping the version.
	PutSession(ctx context.Context, sess *domain.Session) error
}

// SessionRequestStore persists spin admission records.
type SessionRequestStore interface {
	GetSessionRequest(ctx context.Context, playerID, gameID string) (*SessionRequest, error)
	PutSessionRequest(ctx context.Context, req *SessionRequest) error
	// ConsumeSessionRequest flips an open admission to consumed only if its
	// version still matches, returning ErrVersionMismatch otherwise.
	ConsumeSessionRequest(ctx context.Context, req *SessionRequest) error
}

// PlayerStore persists player wallet views.
type PlayerStore interface {
	GetPlayer(ctx context.Context, playerID string) (*PlayerInfo, error)
	PutPlayer(ctx context.Context, player *PlayerInfo) error
	// DebitBalance atomically subtracts amount from the player's balance and
	// returns the balance after the debit. Concurrent credits are never lost.
	DebitBalance(ctx context.Context, playerID string, amount int64) (int64, error)
}

// HistoryStore appends and lists round-history entries.
type HistoryStore interface {
	AppendGameAction(ctx context.Context, action *GameAction) error
	ListGameActions(ctx context.Context, playerID, gameID string, limit int) ([]GameAction, error)
}

// WalletStore credits wins. CreditWin is idempotent per (game cycle, path):
// replaying a credit is a no-op, not an error.
type WalletStore interface {
	CreditWin(ctx context.Context, credit *WalletCredit) error
}

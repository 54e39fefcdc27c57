package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/nishatiwari24/game-backend/internal/game/domain"
	"github.com/nishatiwari24/game-backend/internal/storage"
)

// GetSession implements storage.SessionStore.
func (s *Store) GetSession(ctx context.Context, playerID, gameID string) (*storage.SessionRecord, error) {
	row := s.db.QueryRowContext(ctx, `
SELECT player_id, game_id, secure_token, client_id, spin_state, pick_status,
       game_cycle_id, language, event_data, gamble, version
FROM sessions WHERE player_id = ? AND game_id = ?`, playerID, gameID)

	var (
		record    storage.SessionRecord
		eventData string
		gamble    sql.NullString
		spinState string
		pick      string
	)
	sess := &record.Session
	err := row.Scan(&sess.PlayerID, &sess.GameID, &sess.SecureToken, &sess.ClientID,
		&spinState, &pick, &sess.GameCycleID, &sess.Language, &eventData, &gamble,
		&record.Version)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("get session: %w", err)
	}
	sess.SpinState = domain.SpinState(spinState)
	sess.PickStatus = domain.PickStatus(pick)
	if err := json.Unmarshal([]byte(eventData), &sess.EventData); err != nil {
		return nil, fmt.Errorf("decode session event data: %w", err)
	}
	if gamble.Valid && strings.TrimSpace(gamble.String) != "" {
		sess.Gamble = &domain.Gamble{}
		if err := json.Unmarshal([]byte(gamble.String), sess.Gamble); err != nil {
			return nil, fmt.Errorf("decode session gamble: %w", err)
		}
	}
	return &record, nil
}

// CreateSession implements storage.SessionStore.
func (s *Store) CreateSession(ctx context.Context, sess *domain.Session) error {
	eventData, gamble, err := encodeSession(sess)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, `
INSERT INTO sessions (player_id, game_id, secure_token, client_id, spin_state,
                      pick_status, game_cycle_id, language, event_data, gamble,
                      version, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, 1, ?)`,
		sess.PlayerID, sess.GameID, sess.SecureToken, sess.ClientID,
		string(sess.SpinState), string(sess.PickStatus), sess.GameCycleID,
		sess.Language, eventData, gamble, s.now().UnixMilli())
	if err != nil {
		if isUniqueViolation(err) {
			return storage.ErrAlreadyExists
		}
		return fmt.Errorf("create session: %w", err)
	}
	return nil
}

// PutSessionWithVersion implements storage.SessionStore. The write commits
// only when the stored version still matches the version the caller read.
func (s *Store) PutSessionWithVersion(ctx context.Context, sess *domain.Session, version int64) (int64, error) {
	eventData, gamble, err := encodeSession(sess)
	if err != nil {
		return 0, err
	}
	res, err := s.db.ExecContext(ctx, `
UPDATE sessions SET secure_token = ?, client_id = ?, spin_state = ?,
                    pick_status = ?, game_cycle_id = ?, language = ?,
                    event_data = ?, gamble = ?, version = version + 1,
                    updated_at = ?
WHERE player_id = ? AND game_id = ? AND version = ?`,
		sess.SecureToken, sess.ClientID, string(sess.SpinState),
		string(sess.PickStatus), sess.GameCycleID, sess.Language,
		eventData, gamble, s.now().UnixMilli(),
		sess.PlayerID, sess.GameID, version)
	if err != nil {
		return 0, fmt.Errorf("put session: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("put session: %w", err)
	}
	if affected == 0 {
		var exists int
		row := s.db.QueryRowContext(ctx,
			"SELECT 1 FROM sessions WHERE player_id = ? AND game_id = ?",
			sess.PlayerID, sess.GameID)
		if scanErr := row.Scan(&exists); scanErr != nil {
			if scanErr == sql.ErrNoRows {
				return 0, storage.ErrNotFound
			}
			return 0, fmt.Errorf("put session: %w", scanErr)
		}
		return 0, storage.ErrVersionMismatch
	}
	return version + 1, nil
}

// PutSession implements storage.SessionStore. Used for terminal writes where
// the caller already holds the round via an earlier conditional commit.
func (s *Store) PutSession(ctx context.Context, sess *domain.Session) error {
	eventData, gamble, err := encodeSession(sess)
	if err != nil {
		return err
	}
	res, err := s.db.ExecContext(ctx, `
UPDATE sessions SET secure_token = ?, client_id = ?, spin_state = ?,
                    pick_status = ?, game_cycle_id = ?, language = ?,
                    event_data = ?, gamble = ?, version = version + 1,
                    updated_at = ?
WHERE player_id = ? AND game_id = ?`,
		sess.SecureToken, sess.ClientID, string(sess.SpinState),
		string(sess.PickStatus), sess.GameCycleID, sess.Language,
		eventData, gamble, s.now().UnixMilli(),
		sess.PlayerID, sess.GameID)
	if err != nil {
		return fmt.Errorf("put session: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("put session: %w", err)
	}
	if affected == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func encodeSession(sess *domain.Session) (eventData string, gamble sql.NullString, err error) {
	raw, err := json.Marshal(sess.EventData)
	if err != nil {
		return "", sql.NullString{}, fmt.Errorf("encode session event data: %w", err)
	}
	eventData = string(raw)
	if sess.Gamble != nil {
		raw, err := json.Marshal(sess.Gamble)
		if err != nil {
			return "", sql.NullString{}, fmt.Errorf("encode session gamble: %w", err)
		}
		gamble = sql.NullString{String: string(raw), Valid: true}
	}
	return eventData, gamble, nil
}

func isUniqueViolation(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") || strings.Contains(msg, "constraint failed")
}

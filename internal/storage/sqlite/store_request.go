package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/nishatiwari24/game-backend/internal/storage"
)

// GetSessionRequest implements storage.SessionRequestStore.
func (s *Store) GetSessionRequest(ctx context.Context, playerID, gameID string) (*storage.SessionRequest, error) {
	row := s.db.QueryRowContext(ctx, `
SELECT player_id, game_id, client_id, status, version
FROM session_requests WHERE player_id = ? AND game_id = ?`, playerID, gameID)

	var req storage.SessionRequest
	var status string
	err := row.Scan(&req.PlayerID, &req.GameID, &req.ClientID, &status, &req.Version)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("get session request: %w", err)
	}
	req.Status = storage.RequestStatus(status)
	return &req, nil
}

// PutSessionRequest implements storage.SessionRequestStore.
func (s *Store) PutSessionRequest(ctx context.Context, req *storage.SessionRequest) error {
	_, err := s.db.ExecContext(ctx, `
INSERT INTO session_requests (player_id, game_id, client_id, status, version, updated_at)
VALUES (?, ?, ?, ?, 1, ?)
ON CONFLICT (player_id, game_id) DO UPDATE SET
    client_id = excluded.client_id,
    status = excluded.status,
    version = session_requests.version + 1,
    updated_at = excluded.updated_at`,
		req.PlayerID, req.GameID, req.ClientID, string(req.Status), s.now().UnixMilli())
	if err != nil {
		return fmt.Errorf("put session request: %w", err)
	}
	return nil
}

// ConsumeSessionRequest implements storage.SessionRequestStore. The flip to
// consumed is the admission fence: only one spin may claim an open request.
func (s *Store) ConsumeSessionRequest(ctx context.Context, req *storage.SessionRequest) error {
	res, err := s.db.ExecContext(ctx, `
UPDATE session_requests SET status = ?, version = version + 1, updated_at = ?
WHERE player_id = ? AND game_id = ? AND status != ? AND version = ?`,
		string(storage.RequestStatusConsumed), s.now().UnixMilli(),
		req.PlayerID, req.GameID, string(storage.RequestStatusConsumed), req.Version)
	if err != nil {
		return fmt.Errorf("consume session request: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("consume session request: %w", err)
	}
	if affected == 0 {
		return storage.ErrVersionMismatch
	}
	return nil
}

package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/nishatiwari24/game-backend/internal/storage"
)

// AppendGameAction implements storage.HistoryStore.
func (s *Store) AppendGameAction(ctx context.Context, action *storage.GameAction) error {
	when := action.ActionTime
	if when.IsZero() {
		when = s.now()
	}
	_, err := s.db.ExecContext(ctx, `
INSERT INTO game_actions (player_id, game_id, game_cycle_id, action_time, action_type, bet, win)
VALUES (?, ?, ?, ?, ?, ?, ?)`,
		action.PlayerID, action.GameID, action.GameCycleID, when.UnixMilli(),
		string(action.Type), action.Bet, action.Win)
	if err != nil {
		return fmt.Errorf("append game action: %w", err)
	}
	return nil
}

// ListGameActions implements storage.HistoryStore, newest first.
func (s *Store) ListGameActions(ctx context.Context, playerID, gameID string, limit int) ([]storage.GameAction, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.QueryContext(ctx, `
SELECT player_id, game_id, game_cycle_id, action_time, action_type, bet, win
FROM game_actions WHERE player_id = ? AND game_id = ?
ORDER BY action_time DESC, id DESC LIMIT ?`, playerID, gameID, limit)
	if err != nil {
		return nil, fmt.Errorf("list game actions: %w", err)
	}
	defer rows.Close()

	var actions []storage.GameAction
	for rows.Next() {
		var action storage.GameAction
		var actionTime int64
		var actionType string
		err := rows.Scan(&action.PlayerID, &action.GameID, &action.GameCycleID,
			&actionTime, &actionType, &action.Bet, &action.Win)
		if err != nil {
			return nil, fmt.Errorf("scan game action: %w", err)
		}
		action.ActionTime = time.UnixMilli(actionTime).UTC()
		action.Type = storage.ActionType(actionType)
		actions = append(actions, action)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list game actions: %w", err)
	}
	return actions, nil
}

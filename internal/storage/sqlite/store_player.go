package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/nishatiwari24/game-backend/internal/storage"
)

// GetPlayer implements storage.PlayerStore.
func (s *Store) GetPlayer(ctx context.Context, playerID string) (*storage.PlayerInfo, error) {
	row := s.db.QueryRowContext(ctx, `
SELECT player_id, base_game_id, balance, currency
FROM players WHERE player_id = ?`, playerID)

	var player storage.PlayerInfo
	err := row.Scan(&player.PlayerID, &player.BaseGameID, &player.Balance, &player.Currency)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("get player: %w", err)
	}
	return &player, nil
}

// DebitBalance implements storage.PlayerStore. The subtraction happens in
// the database so a credit landing between a read and this write survives.
func (s *Store) DebitBalance(ctx context.Context, playerID string, amount int64) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("debit balance: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		"UPDATE players SET balance = balance - ?, updated_at = ? WHERE player_id = ?",
		amount, s.now().UnixMilli(), playerID)
	if err != nil {
		return 0, fmt.Errorf("debit balance: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("debit balance: %w", err)
	}
	if affected == 0 {
		return 0, storage.ErrNotFound
	}

	var balance int64
	row := tx.QueryRowContext(ctx, "SELECT balance FROM players WHERE player_id = ?", playerID)
	if err := row.Scan(&balance); err != nil {
		return 0, fmt.Errorf("debit balance: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("debit balance: %w", err)
	}
	return balance, nil
}

// PutPlayer implements storage.PlayerStore.
func (s *Store) PutPlayer(ctx context.Context, player *storage.PlayerInfo) error {
	_, err := s.db.ExecContext(ctx, `
INSERT INTO players (player_id, base_game_id, balance, currency, updated_at)
VALUES (?, ?, ?, ?, ?)
ON CONFLICT (player_id) DO UPDATE SET
    base_game_id = excluded.base_game_id,
    balance = excluded.balance,
    currency = excluded.currency,
    updated_at = excluded.updated_at`,
		player.PlayerID, player.BaseGameID, player.Balance, player.Currency,
		s.now().UnixMilli())
	if err != nil {
		return fmt.Errorf("put player: %w", err)
	}
	return nil
}

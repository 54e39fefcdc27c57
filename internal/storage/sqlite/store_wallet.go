package sqlite

import (
	"context"
	"fmt"

	"github.com/nishatiwari24/game-backend/internal/storage"
)

// CreditWin implements storage.WalletStore. The credit ledger row and the
// balance update commit together; a replayed (game cycle, path) pair is a
// no-op so retries after partial failures never double-pay.
func (s *Store) CreditWin(ctx context.Context, credit *storage.WalletCredit) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("credit win: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `
INSERT OR IGNORE INTO wallet_credits
    (game_cycle_id, credit_path, player_id, game_id, skin_id, base_game_id, amount, credited_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		credit.GameCycleID, string(credit.Path), credit.PlayerID, credit.GameID,
		credit.SkinID, credit.BaseGameID, credit.Amount, s.now().UnixMilli())
	if err != nil {
		return fmt.Errorf("credit win: %w", err)
	}
	inserted, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("credit win: %w", err)
	}
	if inserted == 0 {
		// Already credited for this cycle and path.
		return nil
	}

	res, err = tx.ExecContext(ctx,
		"UPDATE players SET balance = balance + ?, updated_at = ? WHERE player_id = ?",
		credit.Amount, s.now().UnixMilli(), credit.PlayerID)
	if err != nil {
		return fmt.Errorf("credit win: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("credit win: %w", err)
	}
	if affected == 0 {
		return storage.ErrNotFound
	}
	return tx.Commit()
}

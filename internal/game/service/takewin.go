package service

import (
	"context"
	stderrors "errors"

	"github.com/nishatiwari24/game-backend/internal/errors"
	"github.com/nishatiwari24/game-backend/internal/game/domain"
	"github.com/nishatiwari24/game-backend/internal/storage"
)

// TakeWinRequest collects the pending win of the open round.
type TakeWinRequest struct {
	PlayerID    string
	GameID      string
	SecureToken string
	ClientID    string
}

// TakeWinResult reports the credited amount and the settled session.
type TakeWinResult struct {
	Amount    int64
	Balance   int64
	Currency  string
	SpinState domain.SpinState
}

// TakeWin locks the pick status with a conditional write, credits the wallet
// exactly once per (cycle, path) and closes the round. Losing the lock race
// means another collection is in flight and no wallet call is made.
func (s *Service) TakeWin(ctx context.Context, req TakeWinRequest) (*TakeWinResult, error) {
	ctx, span := s.tracer.Start(ctx, "game.TakeWin")
	defer span.End()

	record, err := s.stores.Session.GetSession(ctx, req.PlayerID, req.GameID)
	if err != nil {
		if stderrors.Is(err, storage.ErrNotFound) {
			return nil, errors.New(errors.CodeTakeWinNotAllowedNoGameClick, "no session for player "+req.PlayerID)
		}
		return nil, errors.Wrap(errors.CodeUnknown, "load session", err)
	}
	sess := &record.Session
	locale := sess.Language

	if sess.SecureToken != req.SecureToken {
		return nil, errors.New(errors.CodeInvalidSecureToken, "secure token mismatch").WithLocale(locale)
	}
	if err := s.checkDuplicateSession(ctx, sess, req.ClientID); err != nil {
		return nil, err
	}

	if !sess.SpinState.Collectible() {
		return nil, errors.New(errors.CodeNoWinsToCollect,
			"nothing to collect in state "+string(sess.SpinState)).WithLocale(locale)
	}
	pending := sess.PendingWin()
	if pending <= 0 {
		return nil, errors.New(errors.CodeNoWinsToCollect, "no pending win on open round").WithLocale(locale)
	}
	if sess.PickStatus.Locked() {
		return nil, errors.New(errors.CodeWinBeingPicked, "win collection already in flight").WithLocale(locale)
	}

	sess.PickStatus = domain.PickStatusLocked
	if _, err := s.stores.Session.PutSessionWithVersion(ctx, sess, record.Version); err != nil {
		if stderrors.Is(err, storage.ErrVersionMismatch) {
			return nil, errors.New(errors.CodeSessionConflict, "session changed since read").WithLocale(locale)
		}
		return nil, errors.Wrap(errors.CodeUnknown, "lock pick status", err).WithLocale(locale)
	}

	settled := false
	defer func() {
		if settled {
			return
		}
		sess.PickStatus = domain.PickStatusUnlocked
		if err := s.stores.Session.PutSession(ctx, sess); err != nil {
			logAction("pick_unlock_error", req.PlayerID, req.GameID, sess.GameCycleID, 0, pending)
		}
	}()

	player, err := s.stores.Player.GetPlayer(ctx, req.PlayerID)
	if err != nil {
		return nil, errors.Wrap(errors.CodeWalletCreditFailed, "load player", err).WithLocale(locale)
	}

	err = s.stores.Wallet.CreditWin(ctx, &storage.WalletCredit{
		PlayerID:    req.PlayerID,
		GameID:      req.GameID,
		BaseGameID:  player.BaseGameID,
		GameCycleID: sess.GameCycleID,
		Amount:      pending,
		Path:        creditPath(sess),
	})
	if err != nil {
		return nil, errors.Wrap(errors.CodeWalletCreditFailed, "credit win", err).WithLocale(locale)
	}

	cycleID := sess.GameCycleID
	err = s.stores.History.AppendGameAction(ctx, &storage.GameAction{
		PlayerID:    req.PlayerID,
		GameID:      req.GameID,
		GameCycleID: cycleID,
		ActionTime:  s.now(),
		Type:        storage.ActionTakeWin,
		Win:         pending,
	})
	if err != nil {
		logAction("takewin_history_error", req.PlayerID, req.GameID, cycleID, 0, pending)
	}

	sess.CloseCycle()
	if err := s.stores.Session.PutSession(ctx, sess); err != nil {
		return nil, errors.Wrap(errors.CodeUnknown, "close round", err).WithLocale(locale)
	}
	settled = true

	player, err = s.stores.Player.GetPlayer(ctx, req.PlayerID)
	if err != nil {
		return nil, errors.Wrap(errors.CodeUnknown, "reload player", err).WithLocale(locale)
	}
	logAction("take_win", req.PlayerID, req.GameID, cycleID, 0, pending)
	return &TakeWinResult{
		Amount:    pending,
		Balance:   player.Balance,
		Currency:  player.Currency,
		SpinState: sess.SpinState,
	}, nil
}

// checkDuplicateSession rejects a collection from a client other than the one
// holding the current admission record.
func (s *Service) checkDuplicateSession(ctx context.Context, sess *domain.Session, clientID string) error {
	admission, err := s.stores.Request.GetSessionRequest(ctx, sess.PlayerID, sess.GameID)
	if err != nil {
		if stderrors.Is(err, storage.ErrNotFound) {
			return nil
		}
		return errors.Wrap(errors.CodeUnknown, "load admission record", err).WithLocale(sess.Language)
	}
	if admission.ClientID != clientID {
		return errors.New(errors.CodeInvalidClient, "client mismatch on admission record").WithLocale(sess.Language)
	}
	return nil
}

// creditPath selects the wallet path for the credit. A cycle that entered its
// free-spin sequence settles on the bonus path.
func creditPath(sess *domain.Session) storage.CreditPath {
	r := sess.EventData.ReSpin
	if r != nil && r.CurrentReSpin > 0 && r.NoOfReSpins-r.CurrentReSpin >= 0 {
		return storage.CreditPathBonus
	}
	return storage.CreditPathMain
}

package service

import (
	"context"
	stderrors "errors"

	"github.com/nishatiwari24/game-backend/internal/errors"
	"github.com/nishatiwari24/game-backend/internal/game/domain"
	"github.com/nishatiwari24/game-backend/internal/storage"
)

// LaunchRequest opens (or restores) a player's session for a game and arms
// the spin admission record.
type LaunchRequest struct {
	PlayerID    string
	GameID      string
	SecureToken string
	ClientID    string
	Language    string
}

// LaunchResult is the restored session snapshot returned to the client.
type LaunchResult struct {
	SpinState   domain.SpinState
	PendingWin  int64
	Balance     int64
	Currency    string
	CurrentBet  int64
	Lines       int
	ReSpin      *domain.ReSpin
	Offer       domain.GambleOffer
	GameCycleID string
}

// Launch resolves the game, provisions the player wallet row if missing,
// creates or rebinds the session and arms the admission record so the next
// spin is allowed. Reconnecting mid-round restores the pending state instead
// of resetting it.
func (s *Service) Launch(ctx context.Context, req LaunchRequest) (*LaunchResult, error) {
	ctx, span := s.tracer.Start(ctx, "game.Launch")
	defer span.End()

	game, ok := s.games.Lookup(req.GameID)
	if !ok {
		return nil, errors.New(errors.CodeGameNotFound, "game not found: "+req.GameID)
	}

	player, err := s.stores.Player.GetPlayer(ctx, req.PlayerID)
	if err != nil {
		if !stderrors.Is(err, storage.ErrNotFound) {
			return nil, errors.Wrap(errors.CodeUnknown, "load player", err)
		}
		player = &storage.PlayerInfo{
			PlayerID:   req.PlayerID,
			BaseGameID: req.GameID,
			Currency:   "USD",
		}
		if err := s.stores.Player.PutPlayer(ctx, player); err != nil {
			return nil, errors.Wrap(errors.CodeUnknown, "provision player", err)
		}
	}

	record, err := s.stores.Session.GetSession(ctx, req.PlayerID, req.GameID)
	switch {
	case stderrors.Is(err, storage.ErrNotFound):
		sess := &domain.Session{
			PlayerID:    req.PlayerID,
			GameID:      req.GameID,
			SecureToken: req.SecureToken,
			ClientID:    req.ClientID,
			SpinState:   domain.SpinStateDone,
			PickStatus:  domain.PickStatusUnlocked,
			Language:    req.Language,
			EventData: domain.EventData{
				CurrentBet:   game.MinBetPerLine,
				CurrentLines: game.DefaultLines(),
			},
		}
		if err := s.stores.Session.CreateSession(ctx, sess); err != nil {
			if !stderrors.Is(err, storage.ErrAlreadyExists) {
				return nil, errors.Wrap(errors.CodeUnknown, "create session", err)
			}
			// A concurrent launch won the create; pick up its session.
			record, err = s.stores.Session.GetSession(ctx, req.PlayerID, req.GameID)
			if err != nil {
				return nil, errors.Wrap(errors.CodeUnknown, "load session", err)
			}
		} else {
			record = &storage.SessionRecord{Session: *sess, Version: 1}
		}
	case err != nil:
		return nil, errors.Wrap(errors.CodeUnknown, "load session", err)
	}

	sess := &record.Session
	if sess.SecureToken != req.SecureToken || sess.ClientID != req.ClientID || sess.Language != req.Language {
		sess.SecureToken = req.SecureToken
		sess.ClientID = req.ClientID
		if req.Language != "" {
			sess.Language = req.Language
		}
		if err := s.stores.Session.PutSession(ctx, sess); err != nil {
			return nil, errors.Wrap(errors.CodeUnknown, "rebind session", err)
		}
	}

	err = s.stores.Request.PutSessionRequest(ctx, &storage.SessionRequest{
		PlayerID: req.PlayerID,
		GameID:   req.GameID,
		ClientID: req.ClientID,
		Status:   storage.RequestStatusReady,
	})
	if err != nil {
		return nil, errors.Wrap(errors.CodeUnknown, "arm admission record", err)
	}

	pending := sess.PendingWin()
	result := &LaunchResult{
		SpinState:   sess.SpinState,
		PendingWin:  pending,
		Balance:     player.Balance,
		Currency:    player.Currency,
		CurrentBet:  sess.EventData.CurrentBet,
		Lines:       sess.EventData.CurrentLines,
		ReSpin:      sess.EventData.ReSpin,
		GameCycleID: sess.GameCycleID,
	}
	if sess.SpinState == domain.SpinStateTakeOrGamble || sess.SpinState == domain.SpinStateGambleActive {
		result.Offer = s.remainingOffers(game, sess)
	}
	return result, nil
}

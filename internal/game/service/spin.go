package service

import (
	"context"
	stderrors "errors"
	"strconv"

	"github.com/nishatiwari24/game-backend/internal/errors"
	"github.com/nishatiwari24/game-backend/internal/game/config"
	"github.com/nishatiwari24/game-backend/internal/game/domain"
	"github.com/nishatiwari24/game-backend/internal/game/engine"
	"github.com/nishatiwari24/game-backend/internal/storage"
)

// SpinRequest places one bet on the reels.
type SpinRequest struct {
	PlayerID    string
	GameID      string
	SecureToken string
	ClientID    string
	BetPerLine  int64
	Lines       int
}

// SpinResult is the evaluated outcome plus the resulting session snapshot.
type SpinResult struct {
	Viewzone    [][]config.Symbol
	LineWins    []engine.LineWin
	TotalWin    int64
	PendingWin  int64
	SpinState   domain.SpinState
	Balance     int64
	GameCycleID string
	ReSpin      *domain.ReSpin
	Offer       domain.GambleOffer
}

// Spin validates the bet against the session and the player's balance,
// consumes the spin admission record, computes the outcome and resolves the
// session. The bet debit and the history entry happen only after the
// conditional session write commits.
func (s *Service) Spin(ctx context.Context, req SpinRequest) (*SpinResult, error) {
	ctx, span := s.tracer.Start(ctx, "game.Spin")
	defer span.End()

	game, ok := s.games.Lookup(req.GameID)
	if !ok {
		return nil, errors.New(errors.CodeGameNotFound, "game not found: "+req.GameID)
	}

	record, err := s.stores.Session.GetSession(ctx, req.PlayerID, req.GameID)
	if err != nil {
		if stderrors.Is(err, storage.ErrNotFound) {
			return nil, errors.New(errors.CodeNoUserSession, "no session for player "+req.PlayerID)
		}
		return nil, errors.Wrap(errors.CodeSpinFailed, "load session", err)
	}
	sess := &record.Session
	locale := sess.Language

	if sess.SecureToken != req.SecureToken {
		return nil, errors.New(errors.CodeInvalidSecureToken, "secure token mismatch").WithLocale(locale)
	}

	player, err := s.stores.Player.GetPlayer(ctx, req.PlayerID)
	if err != nil {
		if stderrors.Is(err, storage.ErrNotFound) {
			return nil, errors.New(errors.CodeSpinNotAllowedNoGameClick,
				"no player profile for "+req.PlayerID).WithLocale(locale)
		}
		return nil, errors.Wrap(errors.CodeSpinFailed, "load player", err).WithLocale(locale)
	}

	inReSpin := sess.BetLocked()
	if err := validateSpinBet(game, sess, player, req.BetPerLine, req.Lines, inReSpin); err != nil {
		return nil, err
	}

	if sess.SpinState != domain.SpinStateDone {
		return nil, errors.New(errors.CodeSpinNotAllowed,
			"spin not allowed in state "+string(sess.SpinState)).WithLocale(locale)
	}

	admission, err := s.stores.Request.GetSessionRequest(ctx, req.PlayerID, req.GameID)
	if err != nil {
		if stderrors.Is(err, storage.ErrNotFound) {
			return nil, errors.New(errors.CodeSpinNotAllowedNoGameClick, "no admission record").WithLocale(locale)
		}
		return nil, errors.Wrap(errors.CodeSpinFailed, "load admission record", err).WithLocale(locale)
	}
	if admission.Status == storage.RequestStatusConsumed && !inReSpin {
		return nil, errors.New(errors.CodeSpinNotAllowedNoGameClick,
			"admission record already consumed").WithLocale(locale)
	}
	if admission.ClientID != req.ClientID {
		return nil, errors.New(errors.CodeInvalidClient, "client mismatch on admission record").WithLocale(locale)
	}
	if admission.Status != storage.RequestStatusConsumed {
		if err := s.stores.Request.ConsumeSessionRequest(ctx, admission); err != nil {
			if stderrors.Is(err, storage.ErrVersionMismatch) {
				return nil, errors.New(errors.CodeSessionConflict, "admission record already claimed").WithLocale(locale)
			}
			return nil, errors.Wrap(errors.CodeSpinFailed, "consume admission record", err).WithLocale(locale)
		}
	}

	outcome, err := s.engine.Compute(game, req.BetPerLine, req.Lines)
	if err != nil {
		return nil, errors.Wrap(errors.CodeSpinFailed, "compute outcome", err).WithLocale(locale)
	}

	totalBet := req.BetPerLine * int64(req.Lines)
	if sess.GameCycleID == "" {
		cycleID, err := s.newID()
		if err != nil {
			return nil, errors.Wrap(errors.CodeSpinFailed, "new game cycle id", err).WithLocale(locale)
		}
		sess.GameCycleID = cycleID
	}
	cycleID := sess.GameCycleID
	sess.EventData.CurrentBet = req.BetPerLine
	sess.EventData.CurrentLines = req.Lines

	if inReSpin {
		sess.EventData.ReSpin.CurrentReSpin++
	}
	if outcome.TotalWin > 0 {
		if sess.Gamble == nil {
			sess.Gamble = &domain.Gamble{}
		}
		sess.Gamble.WinAmount += outcome.TotalWin
	}
	if outcome.ReSpinsAwarded > 0 {
		if sess.EventData.ReSpin == nil {
			sess.EventData.ReSpin = &domain.ReSpin{NoOfReSpins: outcome.ReSpinsAwarded}
		} else {
			sess.EventData.ReSpin.NoOfReSpins += outcome.ReSpinsAwarded
		}
	}

	var offer domain.GambleOffer
	switch {
	case sess.EventData.ReSpin != nil && sess.EventData.ReSpin.Remaining() > 0:
		// The free-spin sequence continues; the round stays open.
	case sess.PendingWin() > 0:
		offer = s.remainingOffers(game, sess)
		target := domain.SpinStateTakeWin
		if offer.Any() {
			target = domain.SpinStateTakeOrGamble
		}
		if err := sess.Transition(target); err != nil {
			return nil, errors.Wrap(errors.CodeSpinFailed, "resolve spin", err).WithLocale(locale)
		}
	default:
		sess.CloseCycle()
	}

	if _, err := s.stores.Session.PutSessionWithVersion(ctx, sess, record.Version); err != nil {
		if stderrors.Is(err, storage.ErrVersionMismatch) {
			return nil, errors.New(errors.CodeSessionConflict, "session changed since read").WithLocale(locale)
		}
		return nil, errors.Wrap(errors.CodeSpinFailed, "commit session", err).WithLocale(locale)
	}

	// The round is claimed; side effects below must not abort it.
	balance := player.Balance
	if !inReSpin {
		balance, err = s.stores.Player.DebitBalance(ctx, req.PlayerID, totalBet)
		if err != nil {
			return nil, errors.Wrap(errors.CodeSpinFailed, "debit bet", err).WithLocale(locale)
		}
	}

	action := &storage.GameAction{
		PlayerID:    req.PlayerID,
		GameID:      req.GameID,
		GameCycleID: cycleID,
		ActionTime:  s.now(),
		Type:        storage.ActionSpin,
		Win:         outcome.TotalWin,
	}
	if !inReSpin {
		action.Bet = totalBet
	}
	if err := s.stores.History.AppendGameAction(ctx, action); err != nil {
		logAction("spin_history_error", req.PlayerID, req.GameID, cycleID, action.Bet, action.Win)
	}
	logAction("spin", req.PlayerID, req.GameID, cycleID, action.Bet, outcome.TotalWin)

	return &SpinResult{
		Viewzone:    outcome.Viewzone,
		LineWins:    outcome.LineWins,
		TotalWin:    outcome.TotalWin,
		PendingWin:  sess.PendingWin(),
		SpinState:   sess.SpinState,
		Balance:     balance,
		GameCycleID: cycleID,
		ReSpin:      sess.EventData.ReSpin,
		Offer:       offer,
	}, nil
}

// validateSpinBet enforces bet freezing during free spins, table limits and
// sufficient balance. Re-spins are on the house and skip the balance check.
func validateSpinBet(game *config.Game, sess *domain.Session, player *storage.PlayerInfo, betPerLine int64, lines int, inReSpin bool) error {
	locale := sess.Language
	if inReSpin &&
		(betPerLine != sess.EventData.CurrentBet || lines != sess.EventData.CurrentLines) {
		return errors.New(errors.CodeBetAlterDeniedFreeSpinActive,
			"bet change during free-spin sequence").WithLocale(locale)
	}
	if betPerLine < game.MinBetPerLine || betPerLine > game.MaxBetPerLine ||
		lines < 1 || lines > game.DefaultLines() {
		return errors.WithMetadata(errors.CodeBetOutOfRange, "bet outside table limits",
			map[string]string{
				"Min": strconv.FormatInt(game.MinBetPerLine, 10),
				"Max": strconv.FormatInt(game.MaxBetPerLine, 10),
			}).WithLocale(locale)
	}
	if !inReSpin && player.Balance < betPerLine*int64(lines) {
		return errors.New(errors.CodeInsufficientBalance, "balance below total bet").WithLocale(locale)
	}
	return nil
}

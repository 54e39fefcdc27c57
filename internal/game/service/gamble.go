package service

import (
	"context"
	stderrors "errors"
	"strconv"

	"github.com/nishatiwari24/game-backend/internal/errors"
	"github.com/nishatiwari24/game-backend/internal/game/config"
	"github.com/nishatiwari24/game-backend/internal/game/domain"
	"github.com/nishatiwari24/game-backend/internal/storage"
)

// GambleRequest stakes part of the pending win on one card pick.
type GambleRequest struct {
	PlayerID    string
	GameID      string
	SecureToken string
	Type        domain.GambleType
	Pick        domain.Card
}

// GambleResult is the resolved pick. WinAmount is the remaining pending win
// after a winning pick and zero after a losing one.
type GambleResult struct {
	Drawn     domain.Card
	Won       bool
	Stake     int64
	WinAmount int64
	Count     int
	SpinState domain.SpinState
	Offer     domain.GambleOffer
}

// Gamble validates the pick against the ladder rules, claims the attempt
// with a conditional session write and only then draws the card. Losing the
// full stake closes the round.
func (s *Service) Gamble(ctx context.Context, req GambleRequest) (*GambleResult, error) {
	ctx, span := s.tracer.Start(ctx, "game.Gamble")
	defer span.End()

	record, err := s.stores.Session.GetSession(ctx, req.PlayerID, req.GameID)
	if err != nil {
		if stderrors.Is(err, storage.ErrNotFound) {
			return nil, errors.New(errors.CodeNoUserSession, "no session for player "+req.PlayerID)
		}
		return nil, errors.Wrap(errors.CodeUnknown, "load session", err)
	}
	sess := &record.Session
	locale := sess.Language

	if !req.Type.Valid() || !req.Pick.Valid() {
		return nil, errors.New(errors.CodeGambleNotAllowed, "invalid gamble type or pick").WithLocale(locale)
	}
	if sess.SecureToken != req.SecureToken {
		return nil, errors.New(errors.CodeInvalidSecureToken, "secure token mismatch").WithLocale(locale)
	}
	game, ok := s.games.Lookup(req.GameID)
	if !ok {
		return nil, errors.New(errors.CodeGameNotFound, "game not found: "+req.GameID).WithLocale(locale)
	}

	if sess.SpinState != domain.SpinStateTakeOrGamble && sess.SpinState != domain.SpinStateGambleActive {
		return nil, errors.New(errors.CodeGambleNotAllowed,
			"gamble not allowed in state "+string(sess.SpinState)).WithLocale(locale)
	}
	pending := sess.PendingWin()
	if pending <= 0 {
		return nil, errors.New(errors.CodeGambleNotAllowed, "no pending win to stake").WithLocale(locale)
	}
	if sess.Gamble.Count >= game.Gamble.MaxRounds {
		return nil, errors.New(errors.CodeGambleLimitReached,
			"gamble ladder exhausted after "+strconv.Itoa(sess.Gamble.Count)+" picks").WithLocale(locale)
	}

	stake := domain.StakeAmount(req.Type, pending)
	if stake < game.Gamble.MinStake || stake > game.Gamble.MaxStake {
		return nil, errors.WithMetadata(errors.CodeGambleAmountExceeded, "stake outside gamble limits",
			map[string]string{
				"Stake": strconv.FormatInt(stake, 10),
				"Max":   strconv.FormatInt(game.Gamble.MaxStake, 10),
			}).WithLocale(locale)
	}

	if err := sess.BeginGamble(req.Pick); err != nil {
		return nil, errors.Wrap(errors.CodeGambleNotAllowed, "enter gamble", err).WithLocale(locale)
	}

	// Claiming the attempt before the draw fences concurrent picks: only one
	// writer per observed version reaches the card.
	if _, err := s.stores.Session.PutSessionWithVersion(ctx, sess, record.Version); err != nil {
		if stderrors.Is(err, storage.ErrVersionMismatch) {
			return nil, errors.New(errors.CodeSessionConflict, "session changed since read").WithLocale(locale)
		}
		return nil, errors.Wrap(errors.CodeUnknown, "claim gamble attempt", err).WithLocale(locale)
	}

	cycleID := sess.GameCycleID
	drawn := s.engine.DrawCard()
	won := drawn == req.Pick

	result := &GambleResult{Drawn: drawn, Won: won, Stake: stake, Count: sess.Gamble.Count}
	switch {
	case won:
		sess.ApplyGambleWin(stake)
		result.WinAmount = sess.PendingWin()
		result.Offer = s.remainingOffers(game, sess)
	case req.Type == domain.GambleFull:
		sess.CloseCycle()
	default:
		sess.ApplyGambleLoss(stake)
		if sess.PendingWin() > 0 {
			result.Offer = s.remainingOffers(game, sess)
		} else {
			sess.CloseCycle()
		}
	}
	result.SpinState = sess.SpinState

	if err := s.stores.Session.PutSession(ctx, sess); err != nil {
		return nil, errors.Wrap(errors.CodeUnknown, "commit gamble result", err).WithLocale(locale)
	}

	// Winning picks record the full pending win after the double, not the stake.
	var historyWin int64
	if won {
		historyWin = result.WinAmount
	}
	err = s.stores.History.AppendGameAction(ctx, &storage.GameAction{
		PlayerID:    req.PlayerID,
		GameID:      req.GameID,
		GameCycleID: cycleID,
		ActionTime:  s.now(),
		Type:        storage.ActionGamble,
		Bet:         stake,
		Win:         historyWin,
	})
	if err != nil {
		logAction("gamble_history_error", req.PlayerID, req.GameID, cycleID, stake, historyWin)
	}
	logAction("gamble", req.PlayerID, req.GameID, cycleID, stake, historyWin)
	return result, nil
}

// remainingOffers computes the ladder rungs still playable, none once the
// pick limit is reached.
func (s *Service) remainingOffers(game *config.Game, sess *domain.Session) domain.GambleOffer {
	if sess.Gamble != nil && sess.Gamble.Count >= game.Gamble.MaxRounds {
		return domain.GambleOffer{}
	}
	return domain.NextOffers(sess.PendingWin(), game.Gamble.MinStake, game.Gamble.MaxStake)
}

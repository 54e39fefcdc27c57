// Package rest exposes the round-lifecycle operations over HTTP JSON.
package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/nishatiwari24/game-backend/internal/errors"
	"github.com/nishatiwari24/game-backend/internal/game/config"
	"github.com/nishatiwari24/game-backend/internal/game/domain"
	"github.com/nishatiwari24/game-backend/internal/game/engine"
	"github.com/nishatiwari24/game-backend/internal/game/service"
	"github.com/nishatiwari24/game-backend/internal/storage"
)

// GameService is the surface of the service layer the handlers call.
type GameService interface {
	Launch(ctx context.Context, req service.LaunchRequest) (*service.LaunchResult, error)
	Spin(ctx context.Context, req service.SpinRequest) (*service.SpinResult, error)
	Gamble(ctx context.Context, req service.GambleRequest) (*service.GambleResult, error)
	TakeWin(ctx context.Context, req service.TakeWinRequest) (*service.TakeWinResult, error)
}

// Handler routes game requests to the service layer.
type Handler struct {
	svc     GameService
	history storage.HistoryStore
}

// NewHandler builds the HTTP router for the game API.
func NewHandler(svc GameService, history storage.HistoryStore) http.Handler {
	h := &Handler{svc: svc, history: history}

	router := mux.NewRouter()
	router.Use(requestID, recoverPanic)
	router.HandleFunc("/game/launch", h.launch).Methods(http.MethodPost)
	router.HandleFunc("/game/spin", h.spin).Methods(http.MethodPost)
	router.HandleFunc("/game/gamble", h.gamble).Methods(http.MethodPost)
	router.HandleFunc("/game/take-win", h.takeWin).Methods(http.MethodPost)
	router.HandleFunc("/game/history", h.listHistory).Methods(http.MethodGet)
	router.HandleFunc("/health", h.health).Methods(http.MethodGet)
	router.HandleFunc("/ping", h.ping).Methods(http.MethodGet)
	return router
}

type offerBody struct {
	ByHalf    bool `json:"byHalf"`
	ByQuarter bool `json:"byQuarter"`
	ByFull    bool `json:"byFull"`
}

func toOfferBody(o domain.GambleOffer) offerBody {
	return offerBody{ByHalf: o.ByHalf, ByQuarter: o.ByQuarter, ByFull: o.ByFull}
}

type launchBody struct {
	PlayerID    string `json:"playerId"`
	GameID      string `json:"gameId"`
	SecureToken string `json:"secureToken"`
	ClientID    string `json:"clientId"`
	Language    string `json:"language"`
}

type launchResponse struct {
	SpinState   domain.SpinState `json:"spinState"`
	PendingWin  int64            `json:"pendingWin"`
	Balance     int64            `json:"balance"`
	Currency    string           `json:"currency"`
	CurrentBet  int64            `json:"currentBet"`
	Lines       int              `json:"lines"`
	ReSpin      *domain.ReSpin   `json:"reSpin,omitempty"`
	Offer       offerBody        `json:"offer"`
	GameCycleID string           `json:"gameCycleId,omitempty"`
}

func (h *Handler) launch(w http.ResponseWriter, r *http.Request) {
	var body launchBody
	if err := decodeBody(r, &body); err != nil {
		writeError(w, err)
		return
	}
	result, err := h.svc.Launch(r.Context(), service.LaunchRequest{
		PlayerID:    body.PlayerID,
		GameID:      body.GameID,
		SecureToken: body.SecureToken,
		ClientID:    body.ClientID,
		Language:    body.Language,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, launchResponse{
		SpinState:   result.SpinState,
		PendingWin:  result.PendingWin,
		Balance:     result.Balance,
		Currency:    result.Currency,
		CurrentBet:  result.CurrentBet,
		Lines:       result.Lines,
		ReSpin:      result.ReSpin,
		Offer:       toOfferBody(result.Offer),
		GameCycleID: result.GameCycleID,
	})
}

type spinBody struct {
	PlayerID    string `json:"playerId"`
	GameID      string `json:"gameId"`
	SecureToken string `json:"secureToken"`
	ClientID    string `json:"clientId"`
	TotalBet    int64  `json:"totalBet"`
	Lines       int    `json:"lines"`
}

type spinResponse struct {
	Viewzone    [][]config.Symbol `json:"viewzone"`
	LineWins    []engine.LineWin  `json:"lineWins"`
	TotalWin    int64             `json:"totalWin"`
	PendingWin  int64             `json:"pendingWin"`
	SpinState   domain.SpinState  `json:"spinState"`
	Balance     int64             `json:"balance"`
	GameCycleID string            `json:"gameCycleId"`
	ReSpin      *domain.ReSpin    `json:"reSpin,omitempty"`
	Offer       offerBody         `json:"offer"`
}

func (h *Handler) spin(w http.ResponseWriter, r *http.Request) {
	var body spinBody
	if err := decodeBody(r, &body); err != nil {
		writeError(w, err)
		return
	}
	// The wire carries the total bet; the engine works per line.
	var betPerLine int64
	if body.Lines > 0 {
		betPerLine = body.TotalBet / int64(body.Lines)
	}
	result, err := h.svc.Spin(r.Context(), service.SpinRequest{
		PlayerID:    body.PlayerID,
		GameID:      body.GameID,
		SecureToken: body.SecureToken,
		ClientID:    body.ClientID,
		BetPerLine:  betPerLine,
		Lines:       body.Lines,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, spinResponse{
		Viewzone:    result.Viewzone,
		LineWins:    result.LineWins,
		TotalWin:    result.TotalWin,
		PendingWin:  result.PendingWin,
		SpinState:   result.SpinState,
		Balance:     result.Balance,
		GameCycleID: result.GameCycleID,
		ReSpin:      result.ReSpin,
		Offer:       toOfferBody(result.Offer),
	})
}

type gambleBody struct {
	PlayerID    string `json:"playerId"`
	GameID      string `json:"gameId"`
	SecureToken string `json:"secureToken"`
	GambleType  string `json:"gambleType"`
	Pick        string `json:"pick"`
}

type gambleResponse struct {
	DrawnCard domain.Card      `json:"drawnCard"`
	Won       bool             `json:"won"`
	Stake     int64            `json:"stake"`
	WinAmount int64            `json:"winAmount"`
	Count     int              `json:"count"`
	SpinState domain.SpinState `json:"spinState"`
	Offer     offerBody        `json:"offer"`
}

func (h *Handler) gamble(w http.ResponseWriter, r *http.Request) {
	var body gambleBody
	if err := decodeBody(r, &body); err != nil {
		writeError(w, err)
		return
	}
	result, err := h.svc.Gamble(r.Context(), service.GambleRequest{
		PlayerID:    body.PlayerID,
		GameID:      body.GameID,
		SecureToken: body.SecureToken,
		Type:        domain.GambleType(body.GambleType),
		Pick:        domain.Card(body.Pick),
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, gambleResponse{
		DrawnCard: result.Drawn,
		Won:       result.Won,
		Stake:     result.Stake,
		WinAmount: result.WinAmount,
		Count:     result.Count,
		SpinState: result.SpinState,
		Offer:     toOfferBody(result.Offer),
	})
}

type takeWinBody struct {
	PlayerID    string `json:"playerId"`
	GameID      string `json:"gameId"`
	SecureToken string `json:"secureToken"`
	ClientID    string `json:"clientId"`
}

type takeWinResponse struct {
	Amount    int64            `json:"amount"`
	Balance   int64            `json:"balance"`
	Currency  string           `json:"currency"`
	SpinState domain.SpinState `json:"spinState"`
}

func (h *Handler) takeWin(w http.ResponseWriter, r *http.Request) {
	var body takeWinBody
	if err := decodeBody(r, &body); err != nil {
		writeError(w, err)
		return
	}
	result, err := h.svc.TakeWin(r.Context(), service.TakeWinRequest{
		PlayerID:    body.PlayerID,
		GameID:      body.GameID,
		SecureToken: body.SecureToken,
		ClientID:    body.ClientID,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, takeWinResponse{
		Amount:    result.Amount,
		Balance:   result.Balance,
		Currency:  result.Currency,
		SpinState: result.SpinState,
	})
}

type historyEntry struct {
	GameCycleID string `json:"gameCycleId"`
	ActionTime  string `json:"actionTime"`
	Type        string `json:"type"`
	Bet         int64  `json:"bet"`
	Win         int64  `json:"win"`
}

func (h *Handler) listHistory(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	limit, _ := strconv.Atoi(query.Get("limit"))
	actions, err := h.history.ListGameActions(r.Context(), query.Get("playerId"), query.Get("gameId"), limit)
	if err != nil {
		writeError(w, errors.Wrap(errors.CodeUnknown, "list history", err))
		return
	}
	entries := make([]historyEntry, 0, len(actions))
	for _, action := range actions {
		entries = append(entries, historyEntry{
			GameCycleID: action.GameCycleID,
			ActionTime:  action.ActionTime.UTC().Format("2006-01-02T15:04:05.000Z"),
			Type:        string(action.Type),
			Bet:         action.Bet,
			Win:         action.Win,
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"actions": entries})
}

func (h *Handler) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) ping(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"ping": "pong"})
}

func decodeBody(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return errors.Wrap(errors.CodeUnknown, "decode request body", err)
	}
	return nil
}

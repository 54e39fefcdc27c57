package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/nishatiwari24/game-backend/internal/game/config"
	"github.com/nishatiwari24/game-backend/internal/game/domain"
	"github.com/nishatiwari24/game-backend/internal/game/engine"
	"github.com/nishatiwari24/game-backend/internal/game/service"
	"github.com/nishatiwari24/game-backend/internal/storage"
	"github.com/nishatiwari24/game-backend/internal/storage/sqlite"
)

type fixedEngine struct {
	outcome *engine.Outcome
	card    domain.Card
}

func (e *fixedEngine) Compute(_ *config.Game, _ int64, _ int) (*engine.Outcome, error) {
	return e.outcome, nil
}

func (e *fixedEngine) DrawCard() domain.Card {
	return e.card
}

func newServer(t *testing.T, eng service.OutcomeEngine) *httptest.Server {
	t.Helper()
	store, err := sqlite.Open(filepath.Join(t.TempDir(), "game.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })

	err = store.PutPlayer(context.Background(), &storage.PlayerInfo{
		PlayerID: "player-1",
		Balance:  1000,
		Currency: "USD",
	})
	if err != nil {
		t.Fatalf("seed player: %v", err)
	}

	games := config.NewRegistry()
	games.Register(config.GoldCoin())
	svc := service.New(service.Stores{
		Session: store,
		Request: store,
		Player:  store,
		History: store,
		Wallet:  store,
	}, games, eng)

	server := httptest.NewServer(NewHandler(svc, store))
	t.Cleanup(server.Close)
	return server
}

func postJSON(t *testing.T, url string, body any) (*http.Response, map[string]any) {
	t.Helper()
	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal body: %v", err)
	}
	resp, err := http.Post(url, "application/json", bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("post %s: %v", url, err)
	}
	t.Cleanup(func() { _ = resp.Body.Close() })
	var decoded map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return resp, decoded
}

func launchBodyJSON() map[string]any {
	return map[string]any{
		"playerId":    "player-1",
		"gameId":      config.GoldCoinID,
		"secureToken": "token-1",
		"clientId":    "client-1",
		"language":    "en-US",
	}
}

func spinBodyJSON() map[string]any {
	return map[string]any{
		"playerId":    "player-1",
		"gameId":      config.GoldCoinID,
		"secureToken": "token-1",
		"clientId":    "client-1",
		"totalBet":    50,
		"lines":       5,
	}
}

func TestFullRoundOverHTTP(t *testing.T) {
	t.Parallel()

	server := newServer(t, &fixedEngine{
		outcome: &engine.Outcome{TotalWin: 400},
		card:    domain.CardRed,
	})

	resp, body := postJSON(t, server.URL+"/game/launch", launchBodyJSON())
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("launch status = %d body = %v", resp.StatusCode, body)
	}
	if body["spinState"] != string(domain.SpinStateDone) {
		t.Fatalf("launch body = %v", body)
	}

	resp, body = postJSON(t, server.URL+"/game/spin", spinBodyJSON())
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("spin status = %d body = %v", resp.StatusCode, body)
	}
	if body["spinState"] != string(domain.SpinStateTakeOrGamble) {
		t.Fatalf("spin body = %v", body)
	}
	if body["pendingWin"].(float64) != 400 || body["balance"].(float64) != 950 {
		t.Fatalf("spin body = %v", body)
	}

	resp, body = postJSON(t, server.URL+"/game/gamble", map[string]any{
		"playerId":    "player-1",
		"gameId":      config.GoldCoinID,
		"secureToken": "token-1",
		"gambleType":  "half",
		"pick":        "RED",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("gamble status = %d body = %v", resp.StatusCode, body)
	}
	if body["won"] != true || body["winAmount"].(float64) != 600 {
		t.Fatalf("gamble body = %v", body)
	}

	resp, body = postJSON(t, server.URL+"/game/take-win", map[string]any{
		"playerId":    "player-1",
		"gameId":      config.GoldCoinID,
		"secureToken": "token-1",
		"clientId":    "client-1",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("take-win status = %d body = %v", resp.StatusCode, body)
	}
	if body["amount"].(float64) != 600 || body["balance"].(float64) != 1550 {
		t.Fatalf("take-win body = %v", body)
	}

	resp, err := http.Get(server.URL + "/game/history?playerId=player-1&gameId=" + config.GoldCoinID)
	if err != nil {
		t.Fatalf("get history: %v", err)
	}
	defer resp.Body.Close()
	var history struct {
		Actions []map[string]any `json:"actions"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&history); err != nil {
		t.Fatalf("decode history: %v", err)
	}
	if len(history.Actions) != 3 {
		t.Fatalf("history = %v, want spin, gamble and take-win", history.Actions)
	}
}

func TestErrorRendering(t *testing.T) {
	t.Parallel()

	server := newServer(t, &fixedEngine{outcome: &engine.Outcome{}})

	// Spin without a session.
	resp, body := postJSON(t, server.URL+"/game/spin", spinBodyJSON())
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}
	if body["errorCode"] != "NO_USER_SESSION" {
		t.Fatalf("body = %v", body)
	}
	if body["error"] == "" {
		t.Fatal("localized message missing")
	}

	if resp, body := postJSON(t, server.URL+"/game/launch", launchBodyJSON()); resp.StatusCode != http.StatusOK {
		t.Fatalf("launch status = %d body = %v", resp.StatusCode, body)
	}

	forged := spinBodyJSON()
	forged["secureToken"] = "forged"
	resp, body = postJSON(t, server.URL+"/game/spin", forged)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", resp.StatusCode)
	}
	if body["errorCode"] != "INVALID_SECURE_TOKEN" {
		t.Fatalf("body = %v", body)
	}

	tooSmall := spinBodyJSON()
	tooSmall["totalBet"] = 5
	resp, body = postJSON(t, server.URL+"/game/spin", tooSmall)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
	if body["errorCode"] != "BET_OUT_OF_RANGE" {
		t.Fatalf("body = %v", body)
	}
}

func TestErrorLocalizationFollowsSession(t *testing.T) {
	t.Parallel()

	server := newServer(t, &fixedEngine{outcome: &engine.Outcome{}})

	launch := launchBodyJSON()
	launch["language"] = "pt-BR"
	if resp, body := postJSON(t, server.URL+"/game/launch", launch); resp.StatusCode != http.StatusOK {
		t.Fatalf("launch status = %d body = %v", resp.StatusCode, body)
	}

	// A gamble with no open round renders in the session's locale.
	resp, body := postJSON(t, server.URL+"/game/gamble", map[string]any{
		"playerId":    "player-1",
		"gameId":      config.GoldCoinID,
		"secureToken": "token-1",
		"gambleType":  "half",
		"pick":        "RED",
	})
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("status = %d, want 409", resp.StatusCode)
	}
	if body["errorCode"] != "GAMBLE_NOT_ALLOWED" {
		t.Fatalf("body = %v", body)
	}
}

func TestHealthAndPing(t *testing.T) {
	t.Parallel()

	server := newServer(t, &fixedEngine{outcome: &engine.Outcome{}})
	for _, path := range []string{"/health", "/ping"} {
		resp, err := http.Get(server.URL + path)
		if err != nil {
			t.Fatalf("get %s: %v", path, err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("%s status = %d, want 200", path, resp.StatusCode)
		}
	}
}

package engine

import (
	"reflect"
	"testing"

	"github.com/nishatiwari24/game-backend/internal/game/config"
	"github.com/nishatiwari24/game-backend/internal/game/domain"
)

func riggedGame(sym config.Symbol) *config.Game {
	strip := []config.Symbol{sym, sym, sym}
	return &config.Game{
		ID:    "rigged",
		Rows:  3,
		Reels: [][]config.Symbol{strip, strip, strip, strip, strip},
		Lines: []config.Payline{
			{1, 1, 1, 1, 1},
			{0, 0, 0, 0, 0},
		},
		Paytable: map[config.Symbol]map[int]int64{
			"SEVEN": {3: 50, 4: 200, 5: 1000},
		},
		Scatter:        "SCATTER",
		ScatterTrigger: 3,
		ReSpinAward:    5,
	}
}

func TestComputePaysFullRuns(t *testing.T) {
	t.Parallel()

	eng := NewWithSeed(1)
	outcome, err := eng.Compute(riggedGame("SEVEN"), 2, 2)
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	if len(outcome.LineWins) != 2 {
		t.Fatalf("line wins = %d, want 2", len(outcome.LineWins))
	}
	for _, win := range outcome.LineWins {
		if win.Count != 5 || win.Amount != 2000 {
			t.Fatalf("win = %+v, want a 5-run paying 2000", win)
		}
	}
	if outcome.TotalWin != 4000 {
		t.Fatalf("total win = %d, want 4000", outcome.TotalWin)
	}
	if outcome.ReSpinsAwarded != 0 {
		t.Fatalf("re-spins = %d, want 0", outcome.ReSpinsAwarded)
	}
}

func TestComputeAwardsScatterReSpins(t *testing.T) {
	t.Parallel()

	eng := NewWithSeed(1)
	outcome, err := eng.Compute(riggedGame("SCATTER"), 2, 2)
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	if outcome.TotalWin != 0 {
		t.Fatalf("total win = %d, scatters do not pay on lines", outcome.TotalWin)
	}
	if outcome.ScatterCount != 15 {
		t.Fatalf("scatter count = %d, want 15", outcome.ScatterCount)
	}
	if outcome.ReSpinsAwarded != 5 {
		t.Fatalf("re-spins = %d, want 5", outcome.ReSpinsAwarded)
	}
}

func TestComputeRejectsBadLineCount(t *testing.T) {
	t.Parallel()

	eng := NewWithSeed(1)
	if _, err := eng.Compute(riggedGame("SEVEN"), 2, 0); err == nil {
		t.Fatal("zero lines should be rejected")
	}
	if _, err := eng.Compute(riggedGame("SEVEN"), 2, 3); err == nil {
		t.Fatal("more lines than the game defines should be rejected")
	}
	if _, err := eng.Compute(nil, 2, 1); err == nil {
		t.Fatal("nil game should be rejected")
	}
}

func TestComputeIsDeterministicPerSeed(t *testing.T) {
	t.Parallel()

	game := config.GoldCoin()
	first, err := NewWithSeed(42).Compute(game, 10, game.DefaultLines())
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	second, err := NewWithSeed(42).Compute(game, 10, game.DefaultLines())
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatal("same seed should yield the same outcome")
	}
}

func TestDrawCardStaysInCardSpace(t *testing.T) {
	t.Parallel()

	eng := NewWithSeed(7)
	seen := map[domain.Card]bool{}
	for i := 0; i < 100; i++ {
		card := eng.DrawCard()
		if !card.Valid() {
			t.Fatalf("drew card outside the card space: %q", card)
		}
		seen[card] = true
	}
	if len(seen) != 2 {
		t.Fatalf("100 draws hit %d cards, want both", len(seen))
	}
}

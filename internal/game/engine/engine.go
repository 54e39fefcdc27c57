// Package engine computes spin outcomes from a game configuration.
package engine

import (
	"fmt"
	"math/rand"
	"sync"

	"github.com/nishatiwari24/game-backend/internal/game/config"
	"github.com/nishatiwari24/game-backend/internal/game/domain"
	"github.com/nishatiwari24/game-backend/internal/random"
)

// LineWin is one winning left-aligned run on a payline.
type LineWin struct {
	Line   int           `json:"line"`
	Symbol config.Symbol `json:"symbol"`
	Count  int           `json:"count"`
	Amount int64         `json:"amount"`
}

// Outcome is the full result of evaluating one spin.
type Outcome struct {
	Viewzone       [][]config.Symbol `json:"viewzone"`
	LineWins       []LineWin         `json:"lineWins"`
	TotalWin       int64             `json:"totalWin"`
	ScatterCount   int               `json:"scatterCount"`
	ReSpinsAwarded int               `json:"reSpinsAwarded"`
}

// Engine draws reel stops and gamble cards from a shared random source.
type Engine struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// New creates an engine seeded from the operating system's entropy source.
func New() (*Engine, error) {
	seed, err := random.NewSeed()
	if err != nil {
		return nil, fmt.Errorf("seed engine: %w", err)
	}
	return NewWithSeed(seed), nil
}

// NewWithSeed creates an engine with a fixed seed. Intended for tests.
func NewWithSeed(seed int64) *Engine {
	return &Engine{rng: rand.New(rand.NewSource(seed))}
}

// Compute spins the reels once and evaluates paylines and scatters.
func (e *Engine) Compute(game *config.Game, betPerLine int64, lines int) (*Outcome, error) {
	if game == nil {
		return nil, fmt.Errorf("compute outcome: no game configuration")
	}
	if lines <= 0 || lines > len(game.Lines) {
		return nil, fmt.Errorf("compute outcome: %d lines outside 1..%d", lines, len(game.Lines))
	}

	stops := make([]int, len(game.Reels))
	e.mu.Lock()
	for i, strip := range game.Reels {
		stops[i] = e.rng.Intn(len(strip))
	}
	e.mu.Unlock()

	viewzone := make([][]config.Symbol, len(game.Reels))
	for i, strip := range game.Reels {
		column := make([]config.Symbol, game.Rows)
		for row := 0; row < game.Rows; row++ {
			column[row] = strip[(stops[i]+row)%len(strip)]
		}
		viewzone[i] = column
	}

	outcome := &Outcome{Viewzone: viewzone}
	for lineIdx := 0; lineIdx < lines; lineIdx++ {
		line := game.Lines[lineIdx]
		first := viewzone[0][line[0]]
		if first == game.Scatter {
			continue
		}
		count := 1
		for reel := 1; reel < len(viewzone); reel++ {
			if viewzone[reel][line[reel]] != first {
				break
			}
			count++
		}
		amount := game.LinePayout(first, count, betPerLine)
		if amount <= 0 {
			continue
		}
		outcome.LineWins = append(outcome.LineWins, LineWin{
			Line:   lineIdx,
			Symbol: first,
			Count:  count,
			Amount: amount,
		})
		outcome.TotalWin += amount
	}

	for _, column := range viewzone {
		for _, sym := range column {
			if sym == game.Scatter {
				outcome.ScatterCount++
			}
		}
	}
	if game.ScatterTrigger > 0 && outcome.ScatterCount >= game.ScatterTrigger {
		outcome.ReSpinsAwarded = game.ReSpinAward
	}
	return outcome, nil
}

// DrawCard picks one card uniformly from the gamble card space.
func (e *Engine) DrawCard() domain.Card {
	cards := domain.Cards()
	e.mu.Lock()
	defer e.mu.Unlock()
	return cards[e.rng.Intn(len(cards))]
}

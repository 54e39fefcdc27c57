// Package config defines slot game configurations and their lookup registry.
package config

import (
	"strings"
	"sync"
)

// Symbol is one reel symbol.
type Symbol string

// Payline maps each reel to the viewzone row it crosses.
type Payline []int

// GambleLimits bounds the double-or-nothing ladder. Amounts are in cents.
type GambleLimits struct {
	MinStake  int64
	MaxStake  int64
	MaxRounds int
}

// Game is a full slot game definition.
type Game struct {
	ID             string
	Reels          [][]Symbol
	Rows           int
	Lines          []Payline
	Paytable       map[Symbol]map[int]int64 // run length -> multiplier of the per-line bet
	Scatter        Symbol
	ScatterTrigger int // scatters in view required to award re-spins
	ReSpinAward    int
	MinBetPerLine  int64
	MaxBetPerLine  int64
	Gamble         GambleLimits
}

// DefaultLines returns the number of paylines played when a session has none recorded.
func (g *Game) DefaultLines() int {
	return len(g.Lines)
}

// LinePayout returns the win for a left-aligned run of a symbol on one line.
func (g *Game) LinePayout(sym Symbol, count int, betPerLine int64) int64 {
	multipliers, ok := g.Paytable[sym]
	if !ok {
		return 0
	}
	return multipliers[count] * betPerLine
}

// Registry is an explicit read-through cache of game configurations.
type Registry struct {
	mu    sync.RWMutex
	games map[string]*Game
}

// NewRegistry creates an empty game registry.
func NewRegistry() *Registry {
	return &Registry{games: make(map[string]*Game)}
}

// Register adds or replaces a game configuration.
func (r *Registry) Register(game *Game) {
	if game == nil || strings.TrimSpace(game.ID) == "" {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.games[game.ID] = game
}

// Lookup returns the configuration for a game id.
func (r *Registry) Lookup(gameID string) (*Game, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	game, ok := r.games[strings.TrimSpace(gameID)]
	return game, ok
}

package config

// Symbols of the goldcoin title.
const (
	SymbolCoin    Symbol = "COIN"
	SymbolSeven   Symbol = "SEVEN"
	SymbolBell    Symbol = "BELL"
	SymbolStar    Symbol = "STAR"
	SymbolCherry  Symbol = "CHERRY"
	SymbolLemon   Symbol = "LEMON"
	SymbolScatter Symbol = "SCATTER"
)

// GoldCoinID is the game id of the builtin goldcoin title.
const GoldCoinID = "goldcoin"

// GoldCoin returns the builtin goldcoin definition: 5 reels, 3 rows,
// 5 paylines, scatter-triggered re-spins and a card gamble ladder.
func GoldCoin() *Game {
	strip := func(symbols ...Symbol) []Symbol { return symbols }
	return &Game{
		ID:   GoldCoinID,
		Rows: 3,
		Reels: [][]Symbol{
			strip(SymbolCoin, SymbolLemon, SymbolBell, SymbolCherry, SymbolSeven, SymbolLemon, SymbolStar, SymbolCherry, SymbolScatter, SymbolLemon, SymbolBell, SymbolCherry, SymbolCoin, SymbolLemon, SymbolStar, SymbolCherry, SymbolBell, SymbolLemon, SymbolSeven, SymbolCherry),
			strip(SymbolLemon, SymbolCoin, SymbolCherry, SymbolBell, SymbolLemon, SymbolStar, SymbolCherry, SymbolSeven, SymbolLemon, SymbolScatter, SymbolCherry, SymbolBell, SymbolLemon, SymbolCoin, SymbolCherry, SymbolStar, SymbolLemon, SymbolBell, SymbolCherry, SymbolLemon),
			strip(SymbolCherry, SymbolLemon, SymbolCoin, SymbolBell, SymbolCherry, SymbolLemon, SymbolSeven, SymbolStar, SymbolCherry, SymbolLemon, SymbolScatter, SymbolBell, SymbolCherry, SymbolCoin, SymbolLemon, SymbolStar, SymbolCherry, SymbolBell, SymbolLemon, SymbolCherry),
			strip(SymbolBell, SymbolCherry, SymbolLemon, SymbolCoin, SymbolStar, SymbolCherry, SymbolLemon, SymbolScatter, SymbolBell, SymbolCherry, SymbolSeven, SymbolLemon, SymbolCherry, SymbolStar, SymbolCoin, SymbolLemon, SymbolBell, SymbolCherry, SymbolLemon, SymbolCherry),
			strip(SymbolLemon, SymbolStar, SymbolCherry, SymbolBell, SymbolLemon, SymbolCoin, SymbolCherry, SymbolLemon, SymbolSeven, SymbolScatter, SymbolCherry, SymbolBell, SymbolLemon, SymbolStar, SymbolCherry, SymbolCoin, SymbolLemon, SymbolCherry, SymbolBell, SymbolLemon),
		},
		Lines: []Payline{
			{1, 1, 1, 1, 1}, // middle
			{0, 0, 0, 0, 0}, // top
			{2, 2, 2, 2, 2}, // bottom
			{0, 1, 2, 1, 0}, // v
			{2, 1, 0, 1, 2}, // inverted v
		},
		Paytable: map[Symbol]map[int]int64{
			SymbolSeven:  {3: 50, 4: 200, 5: 1000},
			SymbolCoin:   {3: 20, 4: 80, 5: 400},
			SymbolStar:   {3: 10, 4: 40, 5: 150},
			SymbolBell:   {3: 8, 4: 25, 5: 100},
			SymbolCherry: {3: 5, 4: 15, 5: 60},
			SymbolLemon:  {3: 4, 4: 10, 5: 40},
		},
		Scatter:        SymbolScatter,
		ScatterTrigger: 3,
		ReSpinAward:    5,
		MinBetPerLine:  10,    // $0.10
		MaxBetPerLine:  10000, // $100.00
		Gamble: GambleLimits{
			MinStake:  10,
			MaxStake:  500000, // $5,000.00
			MaxRounds: 5,
		},
	}
}

package domain

import "errors"

// SpinState describes the session's position in the spin/gamble/take-win protocol.
type SpinState string

const (
	// SpinStateDone indicates no pending action; initial and terminal state.
	SpinStateDone SpinState = "DONE"
	// SpinStateTakeWin indicates a win is collectible and no gamble is offered.
	SpinStateTakeWin SpinState = "TAKE_WIN"
	// SpinStateTakeOrGamble indicates a win is collectible and gamble is offered.
	SpinStateTakeOrGamble SpinState = "TAKE_OR_GAMBLE"
	// SpinStateGambleActive indicates a gamble ladder is in progress.
	SpinStateGambleActive SpinState = "GAMBLE_ACTIVE"
)

// Valid reports whether the state belongs to the closed spin-state set.
func (s SpinState) Valid() bool {
	switch s {
	case SpinStateDone, SpinStateTakeWin, SpinStateTakeOrGamble, SpinStateGambleActive:
		return true
	}
	return false
}

// Collectible reports whether an outstanding win can be collected in this state.
func (s SpinState) Collectible() bool {
	switch s {
	case SpinStateTakeWin, SpinStateTakeOrGamble, SpinStateGambleActive:
		return true
	}
	return false
}

// ErrTransitionNotAllowed indicates a spin-state transition outside the protocol table.
var ErrTransitionNotAllowed = errors.New("spin state transition not allowed")

// transitions enumerates every legal spin-state change. No other code path
// may write SpinState except CloseCycle, which resolves a round back to DONE.
var transitions = map[SpinState]map[SpinState]bool{
	SpinStateDone:         {SpinStateTakeWin: true, SpinStateTakeOrGamble: true},
	SpinStateTakeWin:      {SpinStateDone: true},
	SpinStateTakeOrGamble: {SpinStateDone: true, SpinStateGambleActive: true},
	SpinStateGambleActive: {SpinStateGambleActive: true, SpinStateDone: true},
}

// CanTransition reports whether the protocol allows moving from one state to another.
func CanTransition(from, to SpinState) bool {
	return transitions[from][to]
}

// PickStatus is the soft lock guarding win collection.
type PickStatus string

const (
	// PickStatusUnlocked allows a win to be collected.
	PickStatusUnlocked PickStatus = "unlocked"
	// PickStatusLocked marks a win collection in progress.
	PickStatusLocked PickStatus = "locked"
)

// Locked reports whether a win collection currently holds the pick lock.
func (p PickStatus) Locked() bool {
	return p == PickStatusLocked
}

// ReSpin tracks a bounded free-spin sequence with a fixed bet.
type ReSpin struct {
	NoOfReSpins   int `json:"noOfReSpins"`
	CurrentReSpin int `json:"currentReSpin"`
}

// Remaining returns the number of re-spins still owed to the player.
func (r *ReSpin) Remaining() int {
	if r == nil {
		return 0
	}
	return r.NoOfReSpins - r.CurrentReSpin
}

// EventData holds the bet shape of the current betting round.
type EventData struct {
	CurrentBet   int64   `json:"currentBet"`
	CurrentLines int     `json:"currentLines"`
	ReSpin       *ReSpin `json:"reSpin,omitempty"`
}

// Gamble tracks an active double-or-nothing ladder and the pending win at risk.
type Gamble struct {
	Count     int    `json:"count"`
	History   []Card `json:"history"`
	WinAmount int64  `json:"winAmount"`
}

// Session is the versioned per-(player, game) round-lifecycle record.
// All amounts are in cents.
type Session struct {
	PlayerID    string
	GameID      string
	SecureToken string
	ClientID    string
	SpinState   SpinState
	PickStatus  PickStatus
	GameCycleID string
	Language    string
	EventData   EventData
	Gamble      *Gamble
}

// Key returns the store key for the session.
func (s *Session) Key() string {
	return s.PlayerID + "::" + s.GameID
}

// BetLocked reports whether a free-spin sequence pins the current bet.
func (s *Session) BetLocked() bool {
	return s.EventData.ReSpin != nil
}

// PendingWin returns the collectible amount carried by the open cycle.
func (s *Session) PendingWin() int64 {
	if s.Gamble == nil {
		return 0
	}
	return s.Gamble.WinAmount
}

// Transition moves the session to a new spin state, enforcing the protocol table.
func (s *Session) Transition(to SpinState) error {
	if !CanTransition(s.SpinState, to) {
		return ErrTransitionNotAllowed
	}
	s.SpinState = to
	return nil
}

// BeginGamble enters (or continues) the gamble ladder for the given pick.
func (s *Session) BeginGamble(choice Card) error {
	if s.Gamble == nil {
		return ErrTransitionNotAllowed
	}
	if err := s.Transition(SpinStateGambleActive); err != nil {
		return err
	}
	s.Gamble.Count++
	s.Gamble.History = append(s.Gamble.History, choice)
	return nil
}

// ApplyGambleWin doubles the staked portion into the pending win.
func (s *Session) ApplyGambleWin(stake int64) {
	if s.Gamble == nil {
		return
	}
	s.Gamble.WinAmount += stake
}

// ApplyGambleLoss removes a lost partial stake from the pending win.
func (s *Session) ApplyGambleLoss(stake int64) {
	if s.Gamble == nil {
		return
	}
	s.Gamble.WinAmount -= stake
	if s.Gamble.WinAmount < 0 {
		s.Gamble.WinAmount = 0
	}
}

// CloseCycle resolves the betting round: no pending win, no open cycle,
// pick lock released, re-spin sequence cleared.
func (s *Session) CloseCycle() {
	s.SpinState = SpinStateDone
	s.GameCycleID = ""
	s.Gamble = nil
	s.PickStatus = PickStatusUnlocked
	s.EventData.ReSpin = nil
}

package domain

import (
	"errors"
	"testing"
)

func TestCanTransitionTable(t *testing.T) {
	t.Parallel()

	allowed := []struct{ from, to SpinState }{
		{SpinStateDone, SpinStateTakeWin},
		{SpinStateDone, SpinStateTakeOrGamble},
		{SpinStateTakeWin, SpinStateDone},
		{SpinStateTakeOrGamble, SpinStateDone},
		{SpinStateTakeOrGamble, SpinStateGambleActive},
		{SpinStateGambleActive, SpinStateGambleActive},
		{SpinStateGambleActive, SpinStateDone},
	}
	for _, tc := range allowed {
		if !CanTransition(tc.from, tc.to) {
			t.Fatalf("transition %s -> %s should be allowed", tc.from, tc.to)
		}
	}

	denied := []struct{ from, to SpinState }{
		{SpinStateDone, SpinStateGambleActive},
		{SpinStateTakeWin, SpinStateGambleActive},
		{SpinStateTakeWin, SpinStateTakeOrGamble},
		{SpinStateGambleActive, SpinStateTakeWin},
		{SpinStateGambleActive, SpinStateTakeOrGamble},
		{SpinStateDone, SpinStateDone},
	}
	for _, tc := range denied {
		if CanTransition(tc.from, tc.to) {
			t.Fatalf("transition %s -> %s should be rejected", tc.from, tc.to)
		}
	}
}

func TestTransitionRejectsOutsideTable(t *testing.T) {
	t.Parallel()

	sess := Session{SpinState: SpinStateTakeWin}
	err := sess.Transition(SpinStateGambleActive)
	if !errors.Is(err, ErrTransitionNotAllowed) {
		t.Fatalf("err = %v, want %v", err, ErrTransitionNotAllowed)
	}
	if sess.SpinState != SpinStateTakeWin {
		t.Fatalf("state mutated to %s on rejected transition", sess.SpinState)
	}
}

func TestBeginGambleTracksLadder(t *testing.T) {
	t.Parallel()

	sess := Session{
		SpinState: SpinStateTakeOrGamble,
		Gamble:    &Gamble{WinAmount: 400},
	}
	if err := sess.BeginGamble(CardRed); err != nil {
		t.Fatalf("begin gamble: %v", err)
	}
	if sess.SpinState != SpinStateGambleActive {
		t.Fatalf("state = %s, want %s", sess.SpinState, SpinStateGambleActive)
	}
	if sess.Gamble.Count != 1 {
		t.Fatalf("count = %d, want 1", sess.Gamble.Count)
	}
	if err := sess.BeginGamble(CardBlack); err != nil {
		t.Fatalf("continue gamble: %v", err)
	}
	if got := sess.Gamble.History; len(got) != 2 || got[0] != CardRed || got[1] != CardBlack {
		t.Fatalf("history = %v", got)
	}
}

func TestBeginGambleWithoutPendingWin(t *testing.T) {
	t.Parallel()

	sess := Session{SpinState: SpinStateTakeOrGamble}
	if err := sess.BeginGamble(CardRed); !errors.Is(err, ErrTransitionNotAllowed) {
		t.Fatalf("err = %v, want %v", err, ErrTransitionNotAllowed)
	}
}

func TestCloseCycleResolvesRound(t *testing.T) {
	t.Parallel()

	sess := Session{
		SpinState:   SpinStateGambleActive,
		PickStatus:  PickStatusLocked,
		GameCycleID: "cycle-1",
		Gamble:      &Gamble{Count: 2, WinAmount: 100},
		EventData: EventData{
			CurrentBet:   2,
			CurrentLines: 5,
			ReSpin:       &ReSpin{NoOfReSpins: 5, CurrentReSpin: 5},
		},
	}
	sess.CloseCycle()
	if sess.SpinState != SpinStateDone {
		t.Fatalf("state = %s, want %s", sess.SpinState, SpinStateDone)
	}
	if sess.GameCycleID != "" {
		t.Fatalf("game cycle id = %q, want empty", sess.GameCycleID)
	}
	if sess.Gamble != nil {
		t.Fatal("gamble should be cleared")
	}
	if sess.PickStatus.Locked() {
		t.Fatal("pick status should be released")
	}
	if sess.EventData.ReSpin != nil {
		t.Fatal("re-spin sequence should be cleared")
	}
	if sess.EventData.CurrentBet != 2 || sess.EventData.CurrentLines != 5 {
		t.Fatal("bet shape should survive cycle close")
	}
}

func TestBetLockedFollowsReSpin(t *testing.T) {
	t.Parallel()

	sess := Session{}
	if sess.BetLocked() {
		t.Fatal("bet should not be locked without a re-spin sequence")
	}
	sess.EventData.ReSpin = &ReSpin{NoOfReSpins: 3}
	if !sess.BetLocked() {
		t.Fatal("bet should be locked while a re-spin sequence is active")
	}
}

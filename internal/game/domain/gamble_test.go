package domain

import "testing"

func TestStakeAmount(t *testing.T) {
	t.Parallel()

	cases := []struct {
		gambleType GambleType
		winAmount  int64
		want       int64
	}{
		{GambleHalf, 400, 200},
		{GambleQuarter, 400, 100},
		{GambleFull, 400, 400},
		{GambleHalf, 0, 0},
		{GambleFull, -10, 0},
		{GambleType("bogus"), 400, 0},
	}
	for _, tc := range cases {
		if got := StakeAmount(tc.gambleType, tc.winAmount); got != tc.want {
			t.Fatalf("StakeAmount(%s, %d) = %d, want %d", tc.gambleType, tc.winAmount, got, tc.want)
		}
	}
}

func TestNextOffersRespectsStakeLimits(t *testing.T) {
	t.Parallel()

	offer := NextOffers(400, 100, 1000)
	if !offer.ByHalf || !offer.ByQuarter || !offer.ByFull {
		t.Fatalf("offer = %+v, want all rungs", offer)
	}

	// A quarter stake below the minimum drops off the ladder.
	offer = NextOffers(200, 100, 1000)
	if offer.ByQuarter {
		t.Fatalf("offer = %+v, quarter stake 50 is below the minimum", offer)
	}
	if !offer.ByHalf || !offer.ByFull {
		t.Fatalf("offer = %+v, half and full should remain", offer)
	}

	// A full stake above the maximum drops off the ladder.
	offer = NextOffers(2000, 100, 1000)
	if offer.ByFull {
		t.Fatalf("offer = %+v, full stake 2000 exceeds the maximum", offer)
	}

	if NextOffers(0, 100, 1000).Any() {
		t.Fatal("no rung should be offered without a pending win")
	}
}

func TestHalfLossLadderMath(t *testing.T) {
	t.Parallel()

	sess := Session{SpinState: SpinStateTakeOrGamble, Gamble: &Gamble{WinAmount: 400}}
	if err := sess.BeginGamble(CardRed); err != nil {
		t.Fatalf("begin gamble: %v", err)
	}
	stake := StakeAmount(GambleHalf, sess.Gamble.WinAmount)
	sess.ApplyGambleLoss(stake)
	if sess.Gamble.WinAmount != 200 {
		t.Fatalf("win amount after half loss = %d, want 200", sess.Gamble.WinAmount)
	}

	// Winning a half stake doubles the staked portion.
	stake = StakeAmount(GambleHalf, sess.Gamble.WinAmount)
	sess.ApplyGambleWin(stake)
	if sess.Gamble.WinAmount != 300 {
		t.Fatalf("win amount after half win = %d, want 300", sess.Gamble.WinAmount)
	}
}

func TestCardValidation(t *testing.T) {
	t.Parallel()

	if !CardRed.Valid() || !CardBlack.Valid() {
		t.Fatal("deck cards should be valid")
	}
	if Card("GREEN").Valid() {
		t.Fatal("unknown card should be invalid")
	}
	if len(Cards()) != 2 {
		t.Fatalf("card space = %v, want two cards", Cards())
	}
	if !GambleHalf.Valid() || !GambleQuarter.Valid() || !GambleFull.Valid() {
		t.Fatal("gamble types should be valid")
	}
	if GambleType("double").Valid() {
		t.Fatal("unknown gamble type should be invalid")
	}
}

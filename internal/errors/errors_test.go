package errors

import (
	stderrors "errors"
	"testing"

	"google.golang.org/grpc/codes"
)

func TestGetCodeUnwrapsChain(t *testing.T) {
	t.Parallel()

	cause := stderrors.New("boom")
	err := Wrap(CodeSpinFailed, "compute outcome", cause)
	if got := GetCode(err); got != CodeSpinFailed {
		t.Fatalf("code = %s, want %s", got, CodeSpinFailed)
	}
	if !stderrors.Is(err, cause) {
		t.Fatal("expected wrapped cause to be reachable")
	}
	if got := GetCode(cause); got != CodeUnknown {
		t.Fatalf("code for plain error = %s, want %s", got, CodeUnknown)
	}
}

func TestIsMatchesByCode(t *testing.T) {
	t.Parallel()

	err := New(CodeWinBeingPicked, "pick status is locked")
	if !stderrors.Is(err, New(CodeWinBeingPicked, "other message")) {
		t.Fatal("expected errors with the same code to match")
	}
	if stderrors.Is(err, New(CodeSessionConflict, "")) {
		t.Fatal("expected errors with different codes not to match")
	}
}

func TestLocalizeUsesErrorLocale(t *testing.T) {
	t.Parallel()

	err := New(CodeNoWinsToCollect, "no pending win").WithLocale("pt-BR")
	localized := Localize(err)
	if localized.Code != CodeNoWinsToCollect {
		t.Fatalf("code = %s, want %s", localized.Code, CodeNoWinsToCollect)
	}
	if localized.Locale != "pt-BR" {
		t.Fatalf("locale = %q, want %q", localized.Locale, "pt-BR")
	}
	if localized.Message != "Não há prêmios para coletar" {
		t.Fatalf("message = %q", localized.Message)
	}
}

func TestLocalizePlainErrorFallsBack(t *testing.T) {
	t.Parallel()

	localized := Localize(stderrors.New("boom"))
	if localized.Code != CodeUnknown {
		t.Fatalf("code = %s, want %s", localized.Code, CodeUnknown)
	}
	if localized.Locale != DefaultLocale {
		t.Fatalf("locale = %q, want %q", localized.Locale, DefaultLocale)
	}
}

func TestGRPCCodeMapping(t *testing.T) {
	t.Parallel()

	cases := []struct {
		code Code
		want codes.Code
	}{
		{CodeInvalidSecureToken, codes.Unauthenticated},
		{CodeInvalidClient, codes.PermissionDenied},
		{CodeSessionConflict, codes.Aborted},
		{CodeWinBeingPicked, codes.Aborted},
		{CodeGameNotFound, codes.NotFound},
		{CodeSpinNotAllowed, codes.FailedPrecondition},
		{CodeBetOutOfRange, codes.InvalidArgument},
		{CodeSpinFailed, codes.Internal},
		{CodeUnknown, codes.Internal},
	}
	for _, tc := range cases {
		if got := tc.code.GRPCCode(); got != tc.want {
			t.Fatalf("GRPCCode(%s) = %s, want %s", tc.code, got, tc.want)
		}
	}
}

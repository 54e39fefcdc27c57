// Package errors provides structured error handling with i18n support.
package errors

import "google.golang.org/grpc/codes"

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Spin errors
	CodeSpinFailed                   Code = "SPIN_FAILED"
	CodeGameNotFound                 Code = "GAME_NOT_FOUND"
	CodeSpinNotAllowedNoGameClick    Code = "SPIN_NOT_ALLOWED_NO_GAME_CLICK"
	CodeSpinNotAllowed               Code = "SPIN_NOT_ALLOWED"
	CodeBetAlterDeniedFreeSpinActive Code = "BET_ALTER_DENIED_FREE_SPIN_ACTIVE"
	CodeBetOutOfRange                Code = "BET_OUT_OF_RANGE"
	CodeInsufficientBalance          Code = "INSUFFICIENT_BALANCE"

	// Authentication errors
	CodeInvalidSecureToken Code = "INVALID_SECURE_TOKEN"
	CodeInvalidClient      Code = "INVALID_CLIENT"
	CodeNoUserSession      Code = "NO_USER_SESSION"

	// Gamble errors
	CodeGambleNotAllowed     Code = "GAMBLE_NOT_ALLOWED"
	CodeGambleAmountExceeded Code = "GAMBLE_AMOUNT_EXCEEDED"
	CodeGambleLimitReached   Code = "GAMBLE_LIMIT_REACHED"

	// Win collection errors
	CodeTakeWinNotAllowedNoGameClick Code = "TAKE_WIN_NOT_ALLOWED_NO_GAME_CLICK"
	CodeNoWinsToCollect              Code = "NO_WINS_TO_COLLECT"
	CodeWinBeingPicked               Code = "WIN_BEING_PICKED"
	CodeWalletCreditFailed           Code = "WALLET_CREDIT_FAILED"

	// Concurrency errors
	CodeSessionConflict Code = "SESSION_CONFLICT"
)

// GRPCCode maps domain codes to gRPC status codes.
func (c Code) GRPCCode() codes.Code {
	switch c {
	// InvalidArgument - validation failures, bad input
	case CodeBetOutOfRange,
		CodeGambleAmountExceeded:
		return codes.InvalidArgument

	// FailedPrecondition - state doesn't allow operation
	case CodeSpinNotAllowed,
		CodeBetAlterDeniedFreeSpinActive,
		CodeInsufficientBalance,
		CodeNoWinsToCollect,
		CodeGambleNotAllowed,
		CodeGambleLimitReached:
		return codes.FailedPrecondition

	// Aborted - lost a concurrency race, safe to retry from a fresh read
	case CodeSessionConflict,
		CodeWinBeingPicked:
		return codes.Aborted

	// NotFound - resource doesn't exist
	case CodeGameNotFound,
		CodeNoUserSession,
		CodeSpinNotAllowedNoGameClick,
		CodeTakeWinNotAllowedNoGameClick:
		return codes.NotFound

	case CodeInvalidSecureToken:
		return codes.Unauthenticated

	case CodeInvalidClient:
		return codes.PermissionDenied

	default:
		return codes.Internal
	}
}

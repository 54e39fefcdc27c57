package i18n

// Error codes must match the codes defined in internal/errors/codes.go.
// These are duplicated as strings to avoid an import cycle.
const (
	CodeUnknown                      = "UNKNOWN"
	CodeSpinFailed                   = "SPIN_FAILED"
	CodeGameNotFound                 = "GAME_NOT_FOUND"
	CodeSpinNotAllowedNoGameClick    = "SPIN_NOT_ALLOWED_NO_GAME_CLICK"
	CodeSpinNotAllowed               = "SPIN_NOT_ALLOWED"
	CodeBetAlterDeniedFreeSpinActive = "BET_ALTER_DENIED_FREE_SPIN_ACTIVE"
	CodeBetOutOfRange                = "BET_OUT_OF_RANGE"
	CodeInsufficientBalance          = "INSUFFICIENT_BALANCE"
	CodeInvalidSecureToken           = "INVALID_SECURE_TOKEN"
	CodeInvalidClient                = "INVALID_CLIENT"
	CodeNoUserSession                = "NO_USER_SESSION"
	CodeGambleNotAllowed             = "GAMBLE_NOT_ALLOWED"
	CodeGambleAmountExceeded         = "GAMBLE_AMOUNT_EXCEEDED"
	CodeGambleLimitReached           = "GAMBLE_LIMIT_REACHED"
	CodeTakeWinNotAllowedNoGameClick = "TAKE_WIN_NOT_ALLOWED_NO_GAME_CLICK"
	CodeNoWinsToCollect              = "NO_WINS_TO_COLLECT"
	CodeWinBeingPicked               = "WIN_BEING_PICKED"
	CodeWalletCreditFailed           = "WALLET_CREDIT_FAILED"
	CodeSessionConflict              = "SESSION_CONFLICT"
)

var enUSCatalog = &Catalog{
	locale: "en-US",
	messages: map[Code]string{
		CodeUnknown:    "An unexpected error occurred",
		CodeSpinFailed: "Spin could not be completed, please try again",

		// Spin errors
		CodeGameNotFound:                 "Game not found",
		CodeSpinNotAllowedNoGameClick:    "Spin is not allowed before entering the game",
		CodeSpinNotAllowed:               "Spin is not allowed right now, collect your pending win first",
		CodeBetAlterDeniedFreeSpinActive: "Bet cannot be changed while free spins are active",
		CodeBetOutOfRange:                "Bet per line must be between {{.Min}} and {{.Max}}",
		CodeInsufficientBalance:          "Balance is too low for this bet",

		// Authentication errors
		CodeInvalidSecureToken: "Invalid secure token",
		CodeInvalidClient:      "Another client is already playing this game",
		CodeNoUserSession:      "No active game session",

		// Gamble errors
		CodeGambleNotAllowed:     "Gamble is not available right now",
		CodeGambleAmountExceeded: "Gamble stake {{.Stake}} exceeds the limit {{.Max}}",
		CodeGambleLimitReached:   "Gamble round limit reached",

		// Win collection errors
		CodeTakeWinNotAllowedNoGameClick: "Win collection is not allowed before entering the game",
		CodeNoWinsToCollect:              "There are no wins to collect",
		CodeWinBeingPicked:               "Your win is already being collected",
		CodeWalletCreditFailed:           "Win could not be credited, please try again",

		// Concurrency errors
		CodeSessionConflict: "The game session changed, please retry",
	},
}

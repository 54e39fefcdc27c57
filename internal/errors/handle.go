package errors

import (
	"errors"

	"github.com/nishatiwari24/game-backend/internal/errors/i18n"
)

// DefaultLocale is the default locale for error messages.
const DefaultLocale = "en-US"

// Localized carries the boundary-facing rendering of a domain error.
type Localized struct {
	Code    Code
	Message string
	Locale  string
}

// Localize renders the user-facing message for an error using the locale
// recorded on the error, defaulting to en-US for unknown errors or errors
// produced before a session could be resolved.
func Localize(err error) Localized {
	var appErr *Error
	if !errors.As(err, &appErr) {
		catalog := i18n.GetCatalog(DefaultLocale)
		return Localized{
			Code:    CodeUnknown,
			Message: catalog.Format(string(CodeUnknown), nil),
			Locale:  catalog.Locale(),
		}
	}

	locale := appErr.Locale
	if locale == "" {
		locale = DefaultLocale
	}
	catalog := i18n.GetCatalog(locale)
	return Localized{
		Code:    appErr.Code,
		Message: catalog.Format(string(appErr.Code), appErr.Metadata),
		Locale:  catalog.Locale(),
	}
}

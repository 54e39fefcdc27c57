package rest

import (
	"encoding/json"
	"log"
	"net/http"

	"google.golang.org/grpc/codes"

	"github.com/nishatiwari24/game-backend/internal/errors"
)

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("write response err=%v", err)
	}
}

type errorBody struct {
	Error     string `json:"error"`
	ErrorCode string `json:"errorCode"`
}

// writeError renders a domain error as the client-facing localized message
// plus its machine-readable code.
func writeError(w http.ResponseWriter, err error) {
	localized := errors.Localize(err)
	writeJSON(w, httpStatus(localized.Code), errorBody{
		Error:     localized.Message,
		ErrorCode: string(localized.Code),
	})
}

func httpStatus(code errors.Code) int {
	switch code.GRPCCode() {
	case codes.InvalidArgument:
		return http.StatusBadRequest
	case codes.FailedPrecondition, codes.Aborted:
		return http.StatusConflict
	case codes.NotFound:
		return http.StatusNotFound
	case codes.Unauthenticated:
		return http.StatusUnauthorized
	case codes.PermissionDenied:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

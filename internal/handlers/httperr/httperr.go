package httperr

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/Amitjang/XAlISS-SERVER/internal/domain"
	"github.com/Amitjang/XAlISS-SERVER/internal/schedule"
	"github.com/Amitjang/XAlISS-SERVER/internal/service/contractservice"
	"github.com/Amitjang/XAlISS-SERVER/pkg/ledger"
	"github.com/Amitjang/XAlISS-SERVER/pkg/utils"
)

// Status maps a service error to the HTTP status reported to the client.
func Status(err error) int {
	switch {
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, ledger.ErrAccountNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrAlreadyCollected):
		return http.StatusConflict
	case errors.Is(err, domain.ErrInvalidAmount):
		return http.StatusBadRequest
	case errors.Is(err, contractservice.ErrInvalidContract),
		errors.Is(err, schedule.ErrUnknownCadence),
		errors.Is(err, schedule.ErrInvalidDuration),
		errors.Is(err, ledger.ErrRejected):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrLedgerUnavailable):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// Respond writes err as a JSON error body. Internal failures are logged and
// reported without detail.
func Respond(w http.ResponseWriter, err error) {
	code := Status(err)
	if code == http.StatusInternalServerError {
		zap.L().Error("request failed", zap.Error(err))
		utils.RespondWithError(w, code, "Internal server error")
		return
	}
	if code == http.StatusBadGateway {
		zap.L().Warn("ledger unavailable", zap.Error(err))
		utils.RespondWithError(w, code, "Ledger unavailable, try again later")
		return
	}
	utils.RespondWithError(w, code, err.Error())
}

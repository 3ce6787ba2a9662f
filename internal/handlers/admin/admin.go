package admin

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/Amitjang/XAlISS-SERVER/internal/dto"
	"github.com/Amitjang/XAlISS-SERVER/internal/handlers/httperr"
	"github.com/Amitjang/XAlISS-SERVER/internal/schedule"
	"github.com/Amitjang/XAlISS-SERVER/internal/service/contractservice"
	"github.com/Amitjang/XAlISS-SERVER/internal/service/reconcileservice"
	"github.com/Amitjang/XAlISS-SERVER/pkg/utils"
)

//go:generate mockgen -source=admin.go -destination=mock_admin.go -package=admin

const monthLayout = "2006-01"

type Reconciler interface {
	RunForMonth(ctx context.Context, day time.Time) ([]reconcileservice.Outcome, error)
}

type StatsService interface {
	Stats(ctx context.Context) (*contractservice.Stats, error)
}

type AdminHandler struct {
	reconciler Reconciler
	stats      StatsService
	loc        *time.Location
	now        func() time.Time
}

func New(reconciler Reconciler, stats StatsService, loc *time.Location) *AdminHandler {
	if loc == nil {
		loc = time.UTC
	}
	return &AdminHandler{
		reconciler: reconciler,
		stats:      stats,
		loc:        loc,
		now:        time.Now,
	}
}

// reconciliationDay picks the day whose month is settled. A month can be
// settled from its last day on, so without a month the most recently ended
// one is used: today on a last day, the previous month otherwise.
func (h *AdminHandler) reconciliationDay(month string) (time.Time, bool) {
	today := schedule.StartOfDay(h.now().In(h.loc))
	current := schedule.StartOfMonth(today)
	if month == "" {
		if schedule.IsLastDayOfMonth(today) {
			return today, true
		}
		return current.AddDate(0, 0, -1), true
	}
	m, err := time.ParseInLocation(monthLayout, month, h.loc)
	if err != nil {
		return time.Time{}, false
	}
	switch {
	case m.After(current):
		return time.Time{}, false
	case m.Equal(current):
		return today, schedule.IsLastDayOfMonth(today)
	default:
		return schedule.LastDayOfMonth(m), true
	}
}

// RunReconciliation godoc
//
//	@Summary		Run month-end reconciliation
//	@Description	Settle fees and agent bonuses for a month that has ended. The current month is accepted only on its last day. Steps already settled are skipped, so the call is safe to repeat.
//	@Tags			Internal
//	@Produce		json
//	@Param			month	query	string	false	"Month to settle, YYYY-MM; defaults to the most recently ended month"
//	@Security		InternalKey
//	@Success		200	{object}	dto.ReconciliationResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid month"
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Failure		409	{object}	utils.Response	"Reconciliation already running"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/internal/reconciliation/run [post]
func (h *AdminHandler) RunReconciliation(w http.ResponseWriter, r *http.Request) {
	day, ok := h.reconciliationDay(r.URL.Query().Get("month"))
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid month")
		return
	}
	outcomes, err := h.reconciler.RunForMonth(r.Context(), day)
	if err != nil {
		switch {
		case errors.Is(err, reconcileservice.ErrAlreadyRunning):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
			return
		case errors.Is(err, reconcileservice.ErrMonthNotEnded):
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid month")
			return
		}
		httperr.Respond(w, err)
		return
	}
	monthEnd := schedule.LastDayOfMonth(day).Format(dto.DateLayout)
	utils.RespondWithJSON(w, http.StatusOK, dto.NewReconciliationResponse(monthEnd, outcomes))
}

// GetStats godoc
//
//	@Summary		Operator statistics
//	@Tags			Internal
//	@Produce		json
//	@Security		InternalKey
//	@Success		200	{object}	contractservice.Stats
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/internal/stats [get]
func (h *AdminHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.stats.Stats(r.Context())
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, stats)
}

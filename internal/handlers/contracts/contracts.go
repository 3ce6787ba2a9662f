package contracts

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/Amitjang/XAlISS-SERVER/internal/domain"
	"github.com/Amitjang/XAlISS-SERVER/internal/dto"
	"github.com/Amitjang/XAlISS-SERVER/internal/handlers/httperr"
	"github.com/Amitjang/XAlISS-SERVER/internal/service/contractservice"
	"github.com/Amitjang/XAlISS-SERVER/pkg/auth"
	"github.com/Amitjang/XAlISS-SERVER/pkg/utils"
)

//go:generate mockgen -source=contracts.go -destination=mock_contracts.go -package=contracts

type Service interface {
	Create(ctx context.Context, agentID int64, req contractservice.CreateRequest) (*domain.Contract, error)
	Get(ctx context.Context, agentID, id int64) (*domain.Contract, error)
	Cancel(ctx context.Context, agentID, id int64) error
	Schedule(ctx context.Context, agentID, id int64) (*contractservice.Schedule, error)
}

type ContractHandler struct {
	contractService Service
}

func New(contractService Service) *ContractHandler {
	return &ContractHandler{
		contractService: contractService,
	}
}

func contractID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	return id, err == nil && id > 0
}

// Create godoc
//
//	@Summary		Create a savings contract
//	@Description	Open a contract for one of the agent's customers; the end date follows from the duration code
//	@Tags			Contracts
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dto.CreateContractRequestDTO	true	"Contract request"
//	@Security		BearerAuth
//	@Success		201	{object}	dto.ContractResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid request body"
//	@Failure		401	{object}	utils.Response	"Agent not authorized"
//	@Failure		404	{object}	utils.Response	"Customer not found"
//	@Failure		422	{object}	utils.Response	"Invalid contract"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/contracts [post]
func (h *ContractHandler) Create(w http.ResponseWriter, r *http.Request) {
	agentID, ok := auth.AgentIDFrom(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	var req dto.CreateContractRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.UserID <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	first, err := time.Parse(dto.DateLayout, req.FirstPaymentDate)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid first payment date")
		return
	}
	c, err := h.contractService.Create(r.Context(), agentID, contractservice.CreateRequest{
		UserID:           req.UserID,
		SavingType:       domain.Cadence(req.SavingType),
		Amount:           req.Amount,
		Duration:         req.Duration,
		FirstPaymentDate: first,
		Address:          req.Address,
		Comment:          req.Comment,
	})
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewContractResponse(*c))
}

// Get godoc
//
//	@Summary		Get a contract
//	@Tags			Contracts
//	@Produce		json
//	@Param			id	path	int	true	"Contract ID"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.ContractResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid contract id"
//	@Failure		401	{object}	utils.Response	"Agent not authorized"
//	@Failure		404	{object}	utils.Response	"Contract not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/contracts/{id} [get]
func (h *ContractHandler) Get(w http.ResponseWriter, r *http.Request) {
	agentID, ok := auth.AgentIDFrom(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	id, ok := contractID(r)
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid contract id")
		return
	}
	c, err := h.contractService.Get(r.Context(), agentID, id)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewContractResponse(*c))
}

// GetSchedule godoc
//
//	@Summary		Contract due dates
//	@Description	Every due date of the contract from the first payment date to the end date
//	@Tags			Contracts
//	@Produce		json
//	@Param			id	path	int	true	"Contract ID"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.ScheduleResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid contract id"
//	@Failure		401	{object}	utils.Response	"Agent not authorized"
//	@Failure		404	{object}	utils.Response	"Contract not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/contracts/{id}/schedule [get]
func (h *ContractHandler) GetSchedule(w http.ResponseWriter, r *http.Request) {
	agentID, ok := auth.AgentIDFrom(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	id, ok := contractID(r)
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid contract id")
		return
	}
	s, err := h.contractService.Schedule(r.Context(), agentID, id)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewScheduleResponse(s.Contract, s.DueDates))
}

// Cancel godoc
//
//	@Summary		Cancel a contract
//	@Description	A cancelled contract no longer appears in pending collections or month-end settlement
//	@Tags			Contracts
//	@Produce		json
//	@Param			id	path	int	true	"Contract ID"
//	@Security		BearerAuth
//	@Success		200	{object}	utils.Response	"Contract cancelled"
//	@Failure		400	{object}	utils.Response	"Invalid contract id"
//	@Failure		401	{object}	utils.Response	"Agent not authorized"
//	@Failure		404	{object}	utils.Response	"Contract not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/contracts/{id}/cancel [post]
func (h *ContractHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	agentID, ok := auth.AgentIDFrom(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	id, ok := contractID(r)
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid contract id")
		return
	}
	if err := h.contractService.Cancel(r.Context(), agentID, id); err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Contract cancelled", Status: "success"})
}

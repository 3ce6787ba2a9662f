package collections

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/Amitjang/XAlISS-SERVER/internal/domain"
	"github.com/Amitjang/XAlISS-SERVER/internal/dto"
	"github.com/Amitjang/XAlISS-SERVER/internal/handlers/httperr"
	"github.com/Amitjang/XAlISS-SERVER/internal/service/collectionservice"
	"github.com/Amitjang/XAlISS-SERVER/pkg/auth"
	"github.com/Amitjang/XAlISS-SERVER/pkg/utils"
)

//go:generate mockgen -source=collections.go -destination=mock_collections.go -package=collections

type Service interface {
	Today() time.Time
	ListTodaysPendingCollections(ctx context.Context, agentID int64, today time.Time) ([]domain.Contract, error)
	AuthorizeAgentCollection(ctx context.Context, agentID, contractID int64, today time.Time) (*collectionservice.Authorization, error)
	Collect(ctx context.Context, req collectionservice.CollectionRequest) (*domain.Transaction, error)
}

type CollectionHandler struct {
	collectionService Service
}

func New(collectionService Service) *CollectionHandler {
	return &CollectionHandler{
		collectionService: collectionService,
	}
}

// GetToday godoc
//
//	@Summary		Today's pending collections
//	@Description	List the agent's contracts that are due today and not yet collected
//	@Tags			Collections
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		dto.ContractResponseDTO
//	@Failure		401	{object}	utils.Response	"Agent not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/collections/today [get]
func (h *CollectionHandler) GetToday(w http.ResponseWriter, r *http.Request) {
	agentID, ok := auth.AgentIDFrom(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	contracts, err := h.collectionService.ListTodaysPendingCollections(r.Context(), agentID, h.collectionService.Today())
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewContractList(contracts))
}

// Collect godoc
//
//	@Summary		Collect a payment
//	@Description	Move the payment from the agent's wallet to the customer's wallet and tag it with today's due date when one applies
//	@Tags			Collections
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dto.CollectRequestDTO	true	"Collection request"
//	@Security		BearerAuth
//	@Success		201	{object}	dto.TransactionResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid request body"
//	@Failure		401	{object}	utils.Response	"Agent not authorized"
//	@Failure		404	{object}	utils.Response	"Contract or wallet not found"
//	@Failure		409	{object}	utils.Response	"Already collected for the due date"
//	@Failure		422	{object}	utils.Response	"Transfer rejected by the ledger"
//	@Failure		502	{object}	utils.Response	"Ledger unavailable"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/collections [post]
func (h *CollectionHandler) Collect(w http.ResponseWriter, r *http.Request) {
	agentID, ok := auth.AgentIDFrom(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	var req dto.CollectRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ContractID <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	txn, err := h.collectionService.Collect(r.Context(), collectionservice.CollectionRequest{
		AgentID:    agentID,
		ContractID: req.ContractID,
		Amount:     req.Amount,
	})
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewTransactionResponse(txn))
}

// GetAuthorization godoc
//
//	@Summary		Check the collection gate
//	@Description	Dry run of the gate: tells whether a payment for the contract may proceed today
//	@Tags			Collections
//	@Produce		json
//	@Param			contractID	path	int	true	"Contract ID"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.AuthorizationResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid contract id"
//	@Failure		401	{object}	utils.Response	"Agent not authorized"
//	@Failure		404	{object}	utils.Response	"Contract not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/collections/{contractID}/authorization [get]
func (h *CollectionHandler) GetAuthorization(w http.ResponseWriter, r *http.Request) {
	agentID, ok := auth.AgentIDFrom(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	contractID, err := strconv.ParseInt(chi.URLParam(r, "contractID"), 10, 64)
	if err != nil || contractID <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid contract id")
		return
	}
	verdict, err := h.collectionService.AuthorizeAgentCollection(r.Context(), agentID, contractID, h.collectionService.Today())
	if err != nil && !(verdict != nil && errors.Is(err, domain.ErrAlreadyCollected)) {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewAuthorizationResponse(verdict))
}

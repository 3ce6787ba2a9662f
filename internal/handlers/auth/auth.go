package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Amitjang/XAlISS-SERVER/internal/domain"
	"github.com/Amitjang/XAlISS-SERVER/internal/dto"
	"github.com/Amitjang/XAlISS-SERVER/internal/service/authservice"
	"github.com/Amitjang/XAlISS-SERVER/pkg/utils"
)

//go:generate mockgen -source=auth.go -destination=mock_auth.go -package=auth

type Service interface {
	Authenticate(ctx context.Context, dialCode, phone, pin string) (*domain.Agent, error)
	GenerateToken(agentID int64) (string, error)
}

type AuthHandler struct {
	authService Service
}

func New(authService Service) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Login godoc
//
//	@Summary		Authenticate agent
//	@Description	Log in with the agent's phone number and PIN and get a JWT token
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.LoginRequestDTO	true	"Login request body"
//	@Success		200		{object}	dto.LoginResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"Invalid credentials"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/agents/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequestDTO
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil || req.DialCode == "" || req.PhoneNumber == "" || req.PIN == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	agent, err := h.authService.Authenticate(r.Context(), req.DialCode, req.PhoneNumber, req.PIN)
	if err != nil {
		if errors.Is(err, authservice.ErrInvalidCredentials) {
			utils.RespondWithError(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	token, err := h.authService.GenerateToken(agent.ID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error generating token")
		return
	}
	w.Header().Set("Authorization", "Bearer "+token)
	utils.RespondWithJSON(w, http.StatusOK, dto.LoginResponseDTO{
		Message: "Agent successfully authenticated",
		Token:   token,
	})
}

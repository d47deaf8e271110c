package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/GlebRadaev/rewardcore/internal/domain"
	"github.com/GlebRadaev/rewardcore/internal/dto"
	"github.com/GlebRadaev/rewardcore/internal/service/authservice"
	"github.com/GlebRadaev/rewardcore/pkg/utils"
)

type Service interface {
	Register(ctx context.Context, username, password string) (*domain.Account, error)
	Authenticate(ctx context.Context, username, password string) (*domain.Account, error)
	GenerateToken(accountID string) (string, error)
}

type AuthHandler struct {
	authService Service
}

func New(authService Service) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Register godoc
//
//	@Summary		Register a new account
//	@Description	Create an account with balance 0, level 1 and role user, and issue a session token.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.RegisterRequestDTO	true	"Credentials"
//	@Success		200		{object}	dto.RegisterResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request"
//	@Failure		409		{object}	utils.Response	"Username already taken"
//	@Router			/api/user/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request format")
		return
	}
	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" || req.Password == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Username and password are required")
		return
	}

	acc, err := h.authService.Register(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, authservice.ErrUsernameTaken) {
			utils.RespondWithError(w, http.StatusConflict, "Username already taken")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	token, err := h.authService.GenerateToken(acc.ID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	w.Header().Set("Authorization", "Bearer "+token)
	utils.RespondWithJSON(w, http.StatusOK, dto.RegisterResponseDTO{Message: "Successfully registered"})
}

// Login godoc
//
//	@Summary	Authenticate an account
//	@Tags		Auth
//	@Accept		json
//	@Produce	json
//	@Param		request	body		dto.LoginRequestDTO	true	"Credentials"
//	@Success	200		{object}	dto.LoginResponseDTO
//	@Failure	401		{object}	utils.Response	"Invalid credentials"
//	@Router		/api/user/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request format")
		return
	}

	acc, err := h.authService.Authenticate(r.Context(), strings.TrimSpace(req.Username), req.Password)
	if err != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := h.authService.GenerateToken(acc.ID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	w.Header().Set("Authorization", "Bearer "+token)
	utils.RespondWithJSON(w, http.StatusOK, dto.LoginResponseDTO{Message: "Successfully authenticated"})
}

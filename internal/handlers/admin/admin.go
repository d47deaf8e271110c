package admin

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/GlebRadaev/rewardcore/internal/domain"
	"github.com/GlebRadaev/rewardcore/internal/dto"
	"github.com/GlebRadaev/rewardcore/internal/service/adminservice"
	"github.com/GlebRadaev/rewardcore/internal/service/transferservice"
	"github.com/GlebRadaev/rewardcore/pkg/auth"
	"github.com/GlebRadaev/rewardcore/pkg/utils"
)

type AdminService interface {
	SetRole(ctx context.Context, actorID, targetUsername string, role domain.Role) error
	SetLevel(ctx context.Context, actorID, targetUsername string, level int) error
	SetBans(ctx context.Context, actorID, targetUsername string, chatBan, coinBan bool, reason string) error
}

type TransferService interface {
	AdminAdjust(ctx context.Context, actorID, targetUsername string, delta int64, reason string) (*domain.Account, error)
}

type AdminHandler struct {
	adminService    AdminService
	transferService TransferService
}

func New(adminService AdminService, transferService TransferService) *AdminHandler {
	return &AdminHandler{
		adminService:    adminService,
		transferService: transferService,
	}
}

// Adjust godoc
//
//	@Summary		Adjust a user's balance by a signed delta
//	@Description	The new balance is clamped at zero; the ledger records the unsigned magnitude.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.AdminAdjustRequestDTO	true	"Adjustment"
//	@Success		200		{object}	dto.ProfileResponseDTO
//	@Router			/api/admin/adjust [post]
func (h *AdminHandler) Adjust(w http.ResponseWriter, r *http.Request) {
	actorID := r.Context().Value(auth.AccountIDKey).(string)

	var req dto.AdminAdjustRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request format")
		return
	}

	acc, err := h.transferService.AdminAdjust(r.Context(), actorID, req.Username, req.Delta, req.Reason)
	if err != nil {
		respondAdminError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.ProfileResponseDTO{
		Username:          acc.Username,
		Role:              string(acc.Role),
		Level:             acc.Level,
		Balance:           acc.Balance,
		AchievementPoints: acc.AchievementPoints,
		BannedFromChat:    acc.BannedFromChat,
		BannedFromCoins:   acc.BannedFromCoins,
	})
}

// SetRole godoc
//
//	@Summary	Set a user's role
//	@Tags		Admin
//	@Security	BearerAuth
//	@Accept		json
//	@Param		request	body	dto.AdminSetRoleRequestDTO	true	"Role change"
//	@Success	200
//	@Router		/api/admin/role [post]
func (h *AdminHandler) SetRole(w http.ResponseWriter, r *http.Request) {
	actorID := r.Context().Value(auth.AccountIDKey).(string)

	var req dto.AdminSetRoleRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.adminService.SetRole(r.Context(), actorID, req.Username, domain.Role(req.Role)); err != nil {
		respondAdminError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Role updated"})
}

// SetLevel godoc
//
//	@Summary	Set a user's level directly
//	@Tags		Admin
//	@Security	BearerAuth
//	@Accept		json
//	@Param		request	body	dto.AdminSetLevelRequestDTO	true	"Level change"
//	@Success	200
//	@Router		/api/admin/level [post]
func (h *AdminHandler) SetLevel(w http.ResponseWriter, r *http.Request) {
	actorID := r.Context().Value(auth.AccountIDKey).(string)

	var req dto.AdminSetLevelRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.adminService.SetLevel(r.Context(), actorID, req.Username, req.Level); err != nil {
		respondAdminError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Level updated"})
}

// SetBans godoc
//
//	@Summary	Set a user's ban flags
//	@Tags		Admin
//	@Security	BearerAuth
//	@Accept		json
//	@Param		request	body	dto.AdminSetBansRequestDTO	true	"Ban change"
//	@Success	200
//	@Router		/api/admin/bans [post]
func (h *AdminHandler) SetBans(w http.ResponseWriter, r *http.Request) {
	actorID := r.Context().Value(auth.AccountIDKey).(string)

	var req dto.AdminSetBansRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.adminService.SetBans(r.Context(), actorID, req.Username, req.BannedFromChat, req.BannedFromCoins, req.Reason); err != nil {
		respondAdminError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Bans updated"})
}

func respondAdminError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, adminservice.ErrNotAdmin), errors.Is(err, transferservice.ErrNotAdmin):
		utils.RespondWithError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, adminservice.ErrInvalidRole),
		errors.Is(err, adminservice.ErrInvalidLevel),
		errors.Is(err, transferservice.ErrInvalidAmount):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, adminservice.ErrTargetNotFound),
		errors.Is(err, adminservice.ErrAccountNotFound),
		errors.Is(err, transferservice.ErrRecipientNotFound),
		errors.Is(err, transferservice.ErrAccountNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

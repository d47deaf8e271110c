package actions

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/GlebRadaev/rewardcore/internal/domain"
	"github.com/GlebRadaev/rewardcore/internal/dto"
	"github.com/GlebRadaev/rewardcore/internal/service/statservice"
	"github.com/GlebRadaev/rewardcore/pkg/auth"
	"github.com/GlebRadaev/rewardcore/pkg/utils"
)

type StatService interface {
	RecordAction(ctx context.Context, accountID, featureKey, statKey string, delta int64) (int64, bool, error)
}

type AwardService interface {
	GetAchievements(ctx context.Context, accountID string) ([]domain.AchievementEarned, error)
}

type ActionsHandler struct {
	statService  StatService
	awardService AwardService
}

func New(statService StatService, awardService AwardService) *ActionsHandler {
	return &ActionsHandler{
		statService:  statService,
		awardService: awardService,
	}
}

// RecordAction godoc
//
//	@Summary		Record a feature action
//	@Description	Increment a stat counter; crossing catalog milestones pays achievement points once.
//	@Tags			Actions
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.RecordActionRequestDTO	true	"Action"
//	@Success		200		{object}	dto.RecordActionResponseDTO
//	@Router			/api/user/actions [post]
func (h *ActionsHandler) RecordAction(w http.ResponseWriter, r *http.Request) {
	accountID := r.Context().Value(auth.AccountIDKey).(string)

	var req dto.RecordActionRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request format")
		return
	}

	value, recorded, err := h.statService.RecordAction(r.Context(), accountID, req.Feature, req.Stat, req.Delta)
	if err != nil {
		if errors.Is(err, statservice.ErrAccountNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "Account not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.RecordActionResponseDTO{Value: value, Recorded: recorded})
}

// GetAchievements godoc
//
//	@Summary	List earned achievements
//	@Tags		Actions
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{array}	dto.AchievementResponseDTO
//	@Router		/api/user/achievements [get]
func (h *ActionsHandler) GetAchievements(w http.ResponseWriter, r *http.Request) {
	accountID := r.Context().Value(auth.AccountIDKey).(string)

	earned, err := h.awardService.GetAchievements(r.Context(), accountID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	resp := make([]dto.AchievementResponseDTO, 0, len(earned))
	for _, a := range earned {
		resp = append(resp, dto.AchievementResponseDTO{Code: a.Code, EarnedAt: a.EarnedAt})
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

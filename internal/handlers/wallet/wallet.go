package wallet

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/GlebRadaev/rewardcore/internal/domain"
	"github.com/GlebRadaev/rewardcore/internal/dto"
	"github.com/GlebRadaev/rewardcore/internal/service/transferservice"
	"github.com/GlebRadaev/rewardcore/pkg/auth"
	"github.com/GlebRadaev/rewardcore/pkg/utils"
)

type Service interface {
	Transfer(ctx context.Context, fromID, toUsername string, amount int64) (*domain.LedgerEntry, error)
	PurchaseFeature(ctx context.Context, accountID, featureKey string) (*domain.LedgerEntry, error)
	LevelUp(ctx context.Context, accountID string, targetLevel int) (*domain.Account, error)
	AdminAdjust(ctx context.Context, actorID, targetUsername string, delta int64, reason string) (*domain.Account, error)
	GetHistory(ctx context.Context, accountID string) ([]domain.LedgerEntry, error)
}

type Accounts interface {
	GetAccount(ctx context.Context, accountID string) (*domain.Account, error)
}

type WalletHandler struct {
	transferService Service
	accounts        Accounts
}

func New(transferService Service, accounts Accounts) *WalletHandler {
	return &WalletHandler{
		transferService: transferService,
		accounts:        accounts,
	}
}

// GetProfile godoc
//
//	@Summary	Get the authenticated account's economic state
//	@Tags		Wallet
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{object}	dto.ProfileResponseDTO
//	@Router		/api/user/profile [get]
func (h *WalletHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	accountID := r.Context().Value(auth.AccountIDKey).(string)

	acc, err := h.accounts.GetAccount(r.Context(), accountID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if acc == nil {
		utils.RespondWithError(w, http.StatusNotFound, "Account not found")
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

// Transfer godoc
//
//	@Summary	Send coins to another account
//	@Tags		Wallet
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		request	body	dto.TransferRequestDTO	true	"Transfer"
//	@Success	200		{object}	dto.LedgerEntryResponseDTO
//	@Failure	402		{object}	utils.Response	"Insufficient balance"
//	@Failure	429		{object}	utils.Response	"Transfer quota exceeded"
//	@Router		/api/user/wallet/transfer [post]
func (h *WalletHandler) Transfer(w http.ResponseWriter, r *http.Request) {
	accountID := r.Context().Value(auth.AccountIDKey).(string)

	var req dto.TransferRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request format")
		return
	}

	entry, err := h.transferService.Transfer(r.Context(), accountID, req.To, req.Amount)
	if err != nil {
		respondTransferError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toLedgerDTO(entry))
}

// Purchase godoc
//
//	@Summary	Buy a feature unlock
//	@Tags		Wallet
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		request	body	dto.PurchaseRequestDTO	true	"Feature"
//	@Success	200		{object}	dto.LedgerEntryResponseDTO
//	@Router		/api/user/wallet/purchase [post]
func (h *WalletHandler) Purchase(w http.ResponseWriter, r *http.Request) {
	accountID := r.Context().Value(auth.AccountIDKey).(string)

	var req dto.PurchaseRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request format")
		return
	}

	entry, err := h.transferService.PurchaseFeature(r.Context(), accountID, req.Feature)
	if err != nil {
		respondTransferError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toLedgerDTO(entry))
}

// LevelUp godoc
//
//	@Summary	Raise the account level, paying 100 coins per level
//	@Tags		Wallet
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		request	body	dto.LevelUpRequestDTO	true	"Target level"
//	@Success	200		{object}	dto.ProfileResponseDTO
//	@Router		/api/user/wallet/levelup [post]
func (h *WalletHandler) LevelUp(w http.ResponseWriter, r *http.Request) {
	accountID := r.Context().Value(auth.AccountIDKey).(string)

	var req dto.LevelUpRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request format")
		return
	}

	acc, err := h.transferService.LevelUp(r.Context(), accountID, req.TargetLevel)
	if err != nil {
		respondTransferError(w, err)
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

// GetHistory godoc
//
//	@Summary	List recent ledger entries for the account
//	@Tags		Wallet
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{array}	dto.LedgerEntryResponseDTO
//	@Router		/api/user/wallet/history [get]
func (h *WalletHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	accountID := r.Context().Value(auth.AccountIDKey).(string)

	entries, err := h.transferService.GetHistory(r.Context(), accountID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	resp := make([]dto.LedgerEntryResponseDTO, 0, len(entries))
	for i := range entries {
		resp = append(resp, toLedgerDTO(&entries[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

func toLedgerDTO(entry *domain.LedgerEntry) dto.LedgerEntryResponseDTO {
	return dto.LedgerEntryResponseDTO{
		Type:        string(entry.Type),
		From:        entry.FromName,
		To:          entry.ToName,
		Amount:      entry.Amount,
		Description: entry.Description,
		CreatedAt:   entry.CreatedAt,
	}
}

func respondTransferError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, transferservice.ErrInvalidAmount),
		errors.Is(err, transferservice.ErrUnknownFeature),
		errors.Is(err, transferservice.ErrInvalidTargetLevel),
		errors.Is(err, transferservice.ErrSelfTransfer):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, transferservice.ErrAccountNotFound),
		errors.Is(err, transferservice.ErrRecipientNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, transferservice.ErrInsufficientFunds):
		utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
	case errors.Is(err, transferservice.ErrCoinBanned),
		errors.Is(err, transferservice.ErrAlreadyUnlocked):
		utils.RespondWithError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, transferservice.ErrQuotaExceeded):
		utils.RespondWithError(w, http.StatusTooManyRequests, err.Error())
	case errors.Is(err, transferservice.ErrNotAdmin):
		utils.RespondWithError(w, http.StatusForbidden, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

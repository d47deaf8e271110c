package dto

import "time"

type ProfileResponseDTO struct {
	Username          string `json:"username"`
	Role              string `json:"role"`
	Level             int    `json:"level"`
	Balance           int64  `json:"balance" example:"500"`
	AchievementPoints int64  `json:"achievement_points"`
	BannedFromChat    bool   `json:"banned_from_chat"`
	BannedFromCoins   bool   `json:"banned_from_coins"`
}

type TransferRequestDTO struct {
	To     string `json:"to" example:"gopher42"`
	Amount int64  `json:"amount" example:"100"`
}

type PurchaseRequestDTO struct {
	Feature string `json:"feature" example:"chat"`
}

type LevelUpRequestDTO struct {
	TargetLevel int `json:"target_level" example:"3"`
}

type LedgerEntryResponseDTO struct {
	Type        string    `json:"type"`
	From        string    `json:"from,omitempty"`
	To          string    `json:"to,omitempty"`
	Amount      int64     `json:"amount"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

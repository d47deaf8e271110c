package dto

type AdminAdjustRequestDTO struct {
	Username string `json:"username"`
	Delta    int64  `json:"delta" example:"-50"`
	Reason   string `json:"reason"`
}

type AdminSetRoleRequestDTO struct {
	Username string `json:"username"`
	Role     string `json:"role" example:"mod"`
}

type AdminSetLevelRequestDTO struct {
	Username string `json:"username"`
	Level    int    `json:"level" example:"5"`
}

type AdminSetBansRequestDTO struct {
	Username        string `json:"username"`
	BannedFromChat  bool   `json:"banned_from_chat"`
	BannedFromCoins bool   `json:"banned_from_coins"`
	Reason          string `json:"reason"`
}

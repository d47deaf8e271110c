package dto

import "time"

type RecordActionRequestDTO struct {
	Feature string `json:"feature" example:"chat"`
	Stat    string `json:"stat" example:"messages_sent"`
	Delta   int64  `json:"delta" example:"1"`
}

type RecordActionResponseDTO struct {
	Value    int64 `json:"value"`
	Recorded bool  `json:"recorded"`
}

type AchievementResponseDTO struct {
	Code     string    `json:"code"`
	EarnedAt time.Time `json:"earned_at"`
}

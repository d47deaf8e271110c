package statservice

import (
	"context"
	"errors"
	"testing"

	"github.com/GlebRadaev/rewardcore/internal/catalog"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockRepo) {
	ctrl := gomock.NewController(t)
	accountRepo := NewMockRepo(ctrl)
	cat, err := catalog.Load("")
	assert.NoError(t, err)
	service := New(accountRepo, cat)
	defer ctrl.Finish()
	return service, accountRepo
}

func TestRecordAction(t *testing.T) {
	service, accountRepo := NewMock(t)

	accountID := "8a6f1c2e-64dc-4b0a-9c2f-0a8f6f1c2e64"

	tests := []struct {
		name             string
		featureKey       string
		statKey          string
		delta            int64
		prepareMock      func()
		expectedValue    int64
		expectedRecorded bool
		expectedError    error
	}{
		{
			name:       "Increment below every threshold awards nothing",
			featureKey: "chat",
			statKey:    "messages_sent",
			delta:      1,
			prepareMock: func() {
				accountRepo.EXPECT().
					IncrementStat(gomock.Any(), accountID, "messages_sent", int64(1)).
					Return(int64(3), true, nil)
			},
			expectedValue:    3,
			expectedRecorded: true,
		},
		{
			name:       "Crossing one threshold awards its milestone",
			featureKey: "chat",
			statKey:    "messages_sent",
			delta:      1,
			prepareMock: func() {
				accountRepo.EXPECT().
					IncrementStat(gomock.Any(), accountID, "messages_sent", int64(1)).
					Return(int64(10), true, nil)
				accountRepo.EXPECT().
					AwardMilestone(gomock.Any(), accountID, "CHAT_MESSAGES_10", int64(5)).
					Return(true, nil)
			},
			expectedValue:    10,
			expectedRecorded: true,
		},
		{
			name:       "Large jump awards every milestone passed",
			featureKey: "chat",
			statKey:    "messages_sent",
			delta:      150,
			prepareMock: func() {
				accountRepo.EXPECT().
					IncrementStat(gomock.Any(), accountID, "messages_sent", int64(150)).
					Return(int64(150), true, nil)
				accountRepo.EXPECT().
					AwardMilestone(gomock.Any(), accountID, "CHAT_MESSAGES_10", int64(5)).
					Return(true, nil)
				accountRepo.EXPECT().
					AwardMilestone(gomock.Any(), accountID, "CHAT_MESSAGES_100", int64(20)).
					Return(true, nil)
			},
			expectedValue:    150,
			expectedRecorded: true,
		},
		{
			name:       "Replayed milestone stays idempotent",
			featureKey: "chat",
			statKey:    "messages_sent",
			delta:      1,
			prepareMock: func() {
				accountRepo.EXPECT().
					IncrementStat(gomock.Any(), accountID, "messages_sent", int64(1)).
					Return(int64(11), true, nil)
				accountRepo.EXPECT().
					AwardMilestone(gomock.Any(), accountID, "CHAT_MESSAGES_10", int64(5)).
					Return(false, nil)
			},
			expectedValue:    11,
			expectedRecorded: true,
		},
		{
			name:       "Milestone award failure does not fail the increment",
			featureKey: "chat",
			statKey:    "messages_sent",
			delta:      1,
			prepareMock: func() {
				accountRepo.EXPECT().
					IncrementStat(gomock.Any(), accountID, "messages_sent", int64(1)).
					Return(int64(10), true, nil)
				accountRepo.EXPECT().
					AwardMilestone(gomock.Any(), accountID, "CHAT_MESSAGES_10", int64(5)).
					Return(false, errors.New("db error"))
			},
			expectedValue:    10,
			expectedRecorded: true,
		},
		{
			name:       "Unknown feature increments without milestones",
			featureKey: "forum",
			statKey:    "threads_opened",
			delta:      5,
			prepareMock: func() {
				accountRepo.EXPECT().
					IncrementStat(gomock.Any(), accountID, "threads_opened", int64(5)).
					Return(int64(5), true, nil)
			},
			expectedValue:    5,
			expectedRecorded: true,
		},
		{
			name:       "Zero delta is a no-op",
			featureKey: "chat",
			statKey:    "messages_sent",
			delta:      0,
		},
		{
			name:       "Blank stat key is a no-op",
			featureKey: "chat",
			statKey:    "   ",
			delta:      1,
		},
		{
			name:       "Missing account",
			featureKey: "chat",
			statKey:    "messages_sent",
			delta:      1,
			prepareMock: func() {
				accountRepo.EXPECT().
					IncrementStat(gomock.Any(), accountID, "messages_sent", int64(1)).
					Return(int64(0), false, nil)
			},
			expectedError: ErrAccountNotFound,
		},
		{
			name:       "Increment failure surfaces",
			featureKey: "chat",
			statKey:    "messages_sent",
			delta:      1,
			prepareMock: func() {
				accountRepo.EXPECT().
					IncrementStat(gomock.Any(), accountID, "messages_sent", int64(1)).
					Return(int64(0), false, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			value, recorded, err := service.RecordAction(context.Background(), accountID, tt.featureKey, tt.statKey, tt.delta)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedValue, value)
				assert.Equal(t, tt.expectedRecorded, recorded)
			}
		})
	}
}

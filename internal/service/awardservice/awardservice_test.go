package awardservice

import (
	"context"
	"errors"
	"testing"

	"github.com/GlebRadaev/rewardcore/internal/catalog"
	"github.com/GlebRadaev/rewardcore/internal/domain"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockRepo, *MockLedgerRepo) {
	ctrl := gomock.NewController(t)
	accountRepo := NewMockRepo(ctrl)
	ledgerRepo := NewMockLedgerRepo(ctrl)
	cat, err := catalog.Load("")
	assert.NoError(t, err)
	service := New(accountRepo, ledgerRepo, cat)
	defer ctrl.Finish()
	return service, accountRepo, ledgerRepo
}

func TestGrantOnce(t *testing.T) {
	service, accountRepo, ledgerRepo := NewMock(t)

	accountID := "8a6f1c2e-64dc-4b0a-9c2f-0a8f6f1c2e64"
	account := &domain.Account{ID: accountID, Username: "gopher", Balance: 125}

	tests := []struct {
		name            string
		code            string
		prepareMock     func()
		expectedGranted bool
		expectedAccount *domain.Account
		expectedError   error
	}{
		{
			name: "Grant with coins succeeds and records ledger entry",
			code: "FIRST_TRANSFER",
			prepareMock: func() {
				accountRepo.EXPECT().
					GrantAchievementWithCoins(gomock.Any(), accountID, "FIRST_TRANSFER", int64(25)).
					Return(true, nil)
				ledgerRepo.EXPECT().
					Append(gomock.Any(), &domain.LedgerEntry{
						Type:        domain.LedgerAchievementReward,
						ToAccountID: accountID,
						Amount:      25,
						Description: "achievement reward: Sent your first transfer",
					}).
					Return(&domain.LedgerEntry{}, nil)
				accountRepo.EXPECT().FindByID(gomock.Any(), accountID).Return(account, nil)
			},
			expectedGranted: true,
			expectedAccount: account,
		},
		{
			name: "Coin-banned account falls back to coinless grant without ledger entry",
			code: "FIRST_TRANSFER",
			prepareMock: func() {
				accountRepo.EXPECT().
					GrantAchievementWithCoins(gomock.Any(), accountID, "FIRST_TRANSFER", int64(25)).
					Return(false, nil)
				accountRepo.EXPECT().
					GrantAchievement(gomock.Any(), accountID, "FIRST_TRANSFER").
					Return(true, nil)
				accountRepo.EXPECT().FindByID(gomock.Any(), accountID).Return(account, nil)
			},
			expectedGranted: true,
			expectedAccount: account,
		},
		{
			name: "Already granted is a no-op success",
			code: "FIRST_TRANSFER",
			prepareMock: func() {
				accountRepo.EXPECT().
					GrantAchievementWithCoins(gomock.Any(), accountID, "FIRST_TRANSFER", int64(25)).
					Return(false, nil)
				accountRepo.EXPECT().
					GrantAchievement(gomock.Any(), accountID, "FIRST_TRANSFER").
					Return(false, nil)
				accountRepo.EXPECT().FindByID(gomock.Any(), accountID).Return(account, nil)
			},
			expectedGranted: false,
			expectedAccount: account,
		},
		{
			name: "Unknown code grants without coins",
			code: "NO_SUCH_CODE",
			prepareMock: func() {
				accountRepo.EXPECT().
					GrantAchievement(gomock.Any(), accountID, "NO_SUCH_CODE").
					Return(true, nil)
				accountRepo.EXPECT().FindByID(gomock.Any(), accountID).Return(account, nil)
			},
			expectedGranted: true,
			expectedAccount: account,
		},
		{
			name: "Missing account",
			code: "NO_SUCH_CODE",
			prepareMock: func() {
				accountRepo.EXPECT().
					GrantAchievement(gomock.Any(), accountID, "NO_SUCH_CODE").
					Return(false, nil)
				accountRepo.EXPECT().FindByID(gomock.Any(), accountID).Return(nil, nil)
			},
			expectedGranted: false,
			expectedError:   ErrAccountNotFound,
		},
		{
			name: "Ledger append failure surfaces",
			code: "FIRST_TRANSFER",
			prepareMock: func() {
				accountRepo.EXPECT().
					GrantAchievementWithCoins(gomock.Any(), accountID, "FIRST_TRANSFER", int64(25)).
					Return(true, nil)
				ledgerRepo.EXPECT().
					Append(gomock.Any(), gomock.Any()).
					Return(nil, errors.New("db error"))
			},
			expectedGranted: false,
			expectedError:   errors.New("db error"),
		},
		{
			name: "Repo failure surfaces",
			code: "FIRST_TRANSFER",
			prepareMock: func() {
				accountRepo.EXPECT().
					GrantAchievementWithCoins(gomock.Any(), accountID, "FIRST_TRANSFER", int64(25)).
					Return(false, errors.New("db error"))
			},
			expectedGranted: false,
			expectedError:   errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			granted, acc, err := service.GrantOnce(context.Background(), accountID, tt.code)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedGranted, granted)
				assert.Equal(t, tt.expectedAccount, acc)
			}
		})
	}
}

func TestGetAchievements(t *testing.T) {
	service, accountRepo, _ := NewMock(t)

	accountID := "8a6f1c2e-64dc-4b0a-9c2f-0a8f6f1c2e64"
	earned := []domain.AchievementEarned{
		{Code: "FIRST_TRANSFER"},
		{Code: "GROUP_FOUNDER"},
	}

	tests := []struct {
		name           string
		prepareMock    func()
		expectedResult []domain.AchievementEarned
		expectedError  error
	}{
		{
			name: "Retrieve achievements successfully",
			prepareMock: func() {
				accountRepo.EXPECT().GetAchievements(gomock.Any(), accountID).Return(earned, nil)
			},
			expectedResult: earned,
		},
		{
			name: "Error retrieving achievements",
			prepareMock: func() {
				accountRepo.EXPECT().GetAchievements(gomock.Any(), accountID).Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			result, err := service.GetAchievements(context.Background(), accountID)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedResult, result)
			}
		})
	}
}

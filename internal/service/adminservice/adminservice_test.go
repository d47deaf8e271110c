package adminservice

import (
	"context"
	"errors"
	"testing"

	"github.com/GlebRadaev/rewardcore/internal/domain"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockRepo, *MockLedgerRepo, *MockAudit) {
	ctrl := gomock.NewController(t)
	accountRepo := NewMockRepo(ctrl)
	ledgerRepo := NewMockLedgerRepo(ctrl)
	audit := NewMockAudit(ctrl)
	service := New(accountRepo, ledgerRepo, audit)
	defer ctrl.Finish()
	return service, accountRepo, ledgerRepo, audit
}

var (
	actorID  = "8a6f1c2e-64dc-4b0a-9c2f-0a8f6f1c2e64"
	targetID = "2b9d4e71-3fa5-4c88-b1d0-9e52b9d4e713"
	actor    = &domain.Account{ID: actorID, Username: "admin", Role: domain.RoleAdmin}
	target   = &domain.Account{ID: targetID, Username: "gopher", Role: domain.RoleUser}
)

func TestSetRole(t *testing.T) {
	service, accountRepo, ledgerRepo, audit := NewMock(t)

	tests := []struct {
		name          string
		role          domain.Role
		prepareMock   func()
		expectedError error
	}{
		{
			name: "Role change records ledger entry and audit event",
			role: domain.RoleMod,
			prepareMock: func() {
				accountRepo.EXPECT().FindByID(gomock.Any(), actorID).Return(actor, nil)
				accountRepo.EXPECT().FindByUsername(gomock.Any(), "gopher").Return(target, nil)
				accountRepo.EXPECT().UpdateRole(gomock.Any(), targetID, domain.RoleMod).Return(true, nil)
				ledgerRepo.EXPECT().
					Append(gomock.Any(), &domain.LedgerEntry{
						Type:          domain.LedgerAdminSetRole,
						FromAccountID: actorID,
						FromName:      "admin",
						ToAccountID:   targetID,
						ToName:        "gopher",
						Description:   "role set to mod",
					}).
					Return(&domain.LedgerEntry{}, nil)
				audit.EXPECT().Record(gomock.AssignableToTypeOf(domain.AuditEvent{}))
			},
		},
		{
			name:          "Unknown role",
			role:          domain.Role("superuser"),
			expectedError: ErrInvalidRole,
		},
		{
			name: "Non-admin actor",
			role: domain.RoleMod,
			prepareMock: func() {
				accountRepo.EXPECT().FindByID(gomock.Any(), actorID).
					Return(&domain.Account{ID: actorID, Username: "mod", Role: domain.RoleMod}, nil)
			},
			expectedError: ErrNotAdmin,
		},
		{
			name: "Missing target",
			role: domain.RoleMod,
			prepareMock: func() {
				accountRepo.EXPECT().FindByID(gomock.Any(), actorID).Return(actor, nil)
				accountRepo.EXPECT().FindByUsername(gomock.Any(), "gopher").Return(nil, nil)
			},
			expectedError: ErrTargetNotFound,
		},
		{
			name: "Update failure surfaces",
			role: domain.RoleMod,
			prepareMock: func() {
				accountRepo.EXPECT().FindByID(gomock.Any(), actorID).Return(actor, nil)
				accountRepo.EXPECT().FindByUsername(gomock.Any(), "gopher").Return(target, nil)
				accountRepo.EXPECT().UpdateRole(gomock.Any(), targetID, domain.RoleMod).Return(false, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			err := service.SetRole(context.Background(), actorID, "gopher", tt.role)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSetLevel(t *testing.T) {
	service, accountRepo, ledgerRepo, audit := NewMock(t)

	tests := []struct {
		name          string
		level         int
		prepareMock   func()
		expectedError error
	}{
		{
			name:  "Level change records ledger entry and audit event",
			level: 5,
			prepareMock: func() {
				accountRepo.EXPECT().FindByID(gomock.Any(), actorID).Return(actor, nil)
				accountRepo.EXPECT().FindByUsername(gomock.Any(), "gopher").Return(target, nil)
				accountRepo.EXPECT().UpdateLevel(gomock.Any(), targetID, 5).Return(true, nil)
				ledgerRepo.EXPECT().
					Append(gomock.Any(), &domain.LedgerEntry{
						Type:          domain.LedgerAdminSetLevel,
						FromAccountID: actorID,
						FromName:      "admin",
						ToAccountID:   targetID,
						ToName:        "gopher",
						Description:   "level set to 5",
					}).
					Return(&domain.LedgerEntry{}, nil)
				audit.EXPECT().Record(gomock.AssignableToTypeOf(domain.AuditEvent{}))
			},
		},
		{
			name:          "Level below the floor",
			level:         0,
			expectedError: ErrInvalidLevel,
		},
		{
			name:          "Level above the cap",
			level:         11,
			expectedError: ErrInvalidLevel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			err := service.SetLevel(context.Background(), actorID, "gopher", tt.level)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSetBans(t *testing.T) {
	service, accountRepo, ledgerRepo, audit := NewMock(t)

	tests := []struct {
		name          string
		chatBan       bool
		coinBan       bool
		prepareMock   func()
		expectedError error
	}{
		{
			name:    "Ban change records ledger entry and audit event",
			chatBan: true,
			coinBan: false,
			prepareMock: func() {
				accountRepo.EXPECT().FindByID(gomock.Any(), actorID).Return(actor, nil)
				accountRepo.EXPECT().FindByUsername(gomock.Any(), "gopher").Return(target, nil)
				accountRepo.EXPECT().UpdateBans(gomock.Any(), targetID, true, false, "spam").Return(true, nil)
				ledgerRepo.EXPECT().
					Append(gomock.Any(), &domain.LedgerEntry{
						Type:          domain.LedgerAdminSetBans,
						FromAccountID: actorID,
						FromName:      "admin",
						ToAccountID:   targetID,
						ToName:        "gopher",
						Description:   "bans set chat=true coins=false: spam",
					}).
					Return(&domain.LedgerEntry{}, nil)
				audit.EXPECT().Record(gomock.AssignableToTypeOf(domain.AuditEvent{}))
			},
		},
		{
			name:    "Missing actor",
			chatBan: true,
			prepareMock: func() {
				accountRepo.EXPECT().FindByID(gomock.Any(), actorID).Return(nil, nil)
			},
			expectedError: ErrAccountNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			err := service.SetBans(context.Background(), actorID, "gopher", tt.chatBan, tt.coinBan, "spam")
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

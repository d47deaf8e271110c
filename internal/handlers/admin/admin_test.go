package admin

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/GlebRadaev/rewardcore/internal/domain"
	"github.com/GlebRadaev/rewardcore/internal/dto"
	"github.com/GlebRadaev/rewardcore/internal/service/adminservice"
	"github.com/GlebRadaev/rewardcore/internal/service/transferservice"
	"github.com/GlebRadaev/rewardcore/pkg/auth"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

const actorID = "8a6f1c2e-64dc-4b0a-9c2f-0a8f6f1c2e64"

func NewMock(t *testing.T) (*AdminHandler, *MockAdminService, *MockTransferService) {
	ctrl := gomock.NewController(t)
	adminService := NewMockAdminService(ctrl)
	transferService := NewMockTransferService(ctrl)
	handler := New(adminService, transferService)
	defer ctrl.Finish()
	return handler, adminService, transferService
}

func newRequest(method, path, body string) *http.Request {
	var r *http.Request
	if body == "" {
		r = httptest.NewRequest(method, path, nil)
	} else {
		r = httptest.NewRequest(method, path, bytes.NewBufferString(body))
	}
	return r.WithContext(context.WithValue(r.Context(), auth.AccountIDKey, actorID))
}

func TestAdjustHandler(t *testing.T) {
	handler, _, transferService := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
		expectedBody dto.ProfileResponseDTO
	}{
		{
			name: "Successful adjustment",
			body: `{"username":"gopher","delta":200,"reason":"bonus"}`,
			prepareMock: func() {
				transferService.EXPECT().
					AdminAdjust(gomock.Any(), actorID, "gopher", int64(200), "bonus").
					Return(&domain.Account{
						Username: "gopher", Role: domain.RoleUser, Level: 1, Balance: 250,
					}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: dto.ProfileResponseDTO{
				Username: "gopher", Role: "user", Level: 1, Balance: 250,
			},
		},
		{
			name:         "Invalid JSON",
			body:         `{not json`,
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Not an admin",
			body: `{"username":"gopher","delta":200,"reason":"bonus"}`,
			prepareMock: func() {
				transferService.EXPECT().
					AdminAdjust(gomock.Any(), actorID, "gopher", int64(200), "bonus").
					Return(nil, transferservice.ErrNotAdmin)
			},
			expectedCode: http.StatusForbidden,
		},
		{
			name: "Zero delta",
			body: `{"username":"gopher","delta":0,"reason":"bonus"}`,
			prepareMock: func() {
				transferService.EXPECT().
					AdminAdjust(gomock.Any(), actorID, "gopher", int64(0), "bonus").
					Return(nil, transferservice.ErrInvalidAmount)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Unknown target",
			body: `{"username":"nobody","delta":200,"reason":"bonus"}`,
			prepareMock: func() {
				transferService.EXPECT().
					AdminAdjust(gomock.Any(), actorID, "nobody", int64(200), "bonus").
					Return(nil, transferservice.ErrRecipientNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "Internal error",
			body: `{"username":"gopher","delta":200,"reason":"bonus"}`,
			prepareMock: func() {
				transferService.EXPECT().
					AdminAdjust(gomock.Any(), actorID, "gopher", int64(200), "bonus").
					Return(nil, errors.New("db error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}
			r := newRequest(http.MethodPost, "/api/admin/adjust", tt.body)
			w := httptest.NewRecorder()
			handler.Adjust(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body dto.ProfileResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, tt.expectedBody, body)
			}
		})
	}
}

func TestSetRoleHandler(t *testing.T) {
	handler, adminService, _ := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Successful role change",
			body: `{"username":"gopher","role":"mod"}`,
			prepareMock: func() {
				adminService.EXPECT().
					SetRole(gomock.Any(), actorID, "gopher", domain.RoleMod).
					Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Invalid JSON",
			body:         `{not json`,
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Unknown role",
			body: `{"username":"gopher","role":"superuser"}`,
			prepareMock: func() {
				adminService.EXPECT().
					SetRole(gomock.Any(), actorID, "gopher", domain.Role("superuser")).
					Return(adminservice.ErrInvalidRole)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Not an admin",
			body: `{"username":"gopher","role":"mod"}`,
			prepareMock: func() {
				adminService.EXPECT().
					SetRole(gomock.Any(), actorID, "gopher", domain.RoleMod).
					Return(adminservice.ErrNotAdmin)
			},
			expectedCode: http.StatusForbidden,
		},
		{
			name: "Unknown target",
			body: `{"username":"nobody","role":"mod"}`,
			prepareMock: func() {
				adminService.EXPECT().
					SetRole(gomock.Any(), actorID, "nobody", domain.RoleMod).
					Return(adminservice.ErrTargetNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}
			r := newRequest(http.MethodPost, "/api/admin/role", tt.body)
			w := httptest.NewRecorder()
			handler.SetRole(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestSetLevelHandler(t *testing.T) {
	handler, adminService, _ := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Successful level change",
			body: `{"username":"gopher","level":5}`,
			prepareMock: func() {
				adminService.EXPECT().
					SetLevel(gomock.Any(), actorID, "gopher", 5).
					Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Invalid JSON",
			body:         `{not json`,
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Level out of range",
			body: `{"username":"gopher","level":11}`,
			prepareMock: func() {
				adminService.EXPECT().
					SetLevel(gomock.Any(), actorID, "gopher", 11).
					Return(adminservice.ErrInvalidLevel)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Not an admin",
			body: `{"username":"gopher","level":5}`,
			prepareMock: func() {
				adminService.EXPECT().
					SetLevel(gomock.Any(), actorID, "gopher", 5).
					Return(adminservice.ErrNotAdmin)
			},
			expectedCode: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}
			r := newRequest(http.MethodPost, "/api/admin/level", tt.body)
			w := httptest.NewRecorder()
			handler.SetLevel(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestSetBansHandler(t *testing.T) {
	handler, adminService, _ := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Successful ban change",
			body: `{"username":"gopher","banned_from_chat":true,"banned_from_coins":false,"reason":"spam"}`,
			prepareMock: func() {
				adminService.EXPECT().
					SetBans(gomock.Any(), actorID, "gopher", true, false, "spam").
					Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Invalid JSON",
			body:         `{not json`,
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Not an admin",
			body: `{"username":"gopher","banned_from_chat":true,"banned_from_coins":false,"reason":"spam"}`,
			prepareMock: func() {
				adminService.EXPECT().
					SetBans(gomock.Any(), actorID, "gopher", true, false, "spam").
					Return(adminservice.ErrNotAdmin)
			},
			expectedCode: http.StatusForbidden,
		},
		{
			name: "Unknown target",
			body: `{"username":"nobody","banned_from_chat":true,"banned_from_coins":false,"reason":"spam"}`,
			prepareMock: func() {
				adminService.EXPECT().
					SetBans(gomock.Any(), actorID, "nobody", true, false, "spam").
					Return(adminservice.ErrTargetNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}
			r := newRequest(http.MethodPost, "/api/admin/bans", tt.body)
			w := httptest.NewRecorder()
			handler.SetBans(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

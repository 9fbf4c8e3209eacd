package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-commission-api/internal/config"
	"github.com/vfg2006/sales-commission-api/internal/domain"
	"github.com/vfg2006/sales-commission-api/internal/usecases/authenticating"
	authmocks "github.com/vfg2006/sales-commission-api/internal/usecases/authenticating/mocks"
	catalogingmocks "github.com/vfg2006/sales-commission-api/internal/usecases/cataloging/mocks"
	"github.com/vfg2006/sales-commission-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func testConfig() *config.Config {
	return &config.Config{
		App:    config.App{AllowedOrigins: []string{"http://localhost:5173"}},
		Server: config.Server{Host: "localhost", Port: "8080"},
		Import: config.Import{MaxUploadMB: 10},
	}
}

func TestNew(t *testing.T) {
	_, err := New(testConfig(), Services{})
	assert.Error(t, err)
}

func TestNewHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuth := authmocks.NewMockAuthenticator(ctrl)
	mockCatalog := catalogingmocks.NewMockCatalogService(ctrl)

	h := NewHandler(testConfig(), Services{Authenticator: mockAuth, Catalog: mockCatalog})

	sellerClaims := &domain.Claims{RoleID: domain.RoleSeller, RegisteredClaims: jwt.RegisteredClaims{Subject: "v1"}}

	tests := []struct {
		name           string
		method         string
		path           string
		token          string
		setup          func()
		expectedStatus int
	}{
		{
			name:           "Healthcheck é público",
			method:         http.MethodGet,
			path:           "/healthcheck",
			setup:          func() {},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Sem token",
			method:         http.MethodGet,
			path:           "/v1/sellers",
			setup:          func() {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:   "Token expirado",
			method: http.MethodGet,
			path:   "/v1/sellers",
			token:  "expirado",
			setup: func() {
				mockAuth.EXPECT().ValidateToken("expirado").
					Return(nil, authenticating.NewAuthError(authenticating.ErrExpiredToken, apiErrors.ErrExpiredToken, "Token expirado"))
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:   "Vendedor lista vendedores",
			method: http.MethodGet,
			path:   "/v1/sellers",
			token:  "valido",
			setup: func() {
				mockAuth.EXPECT().ValidateToken("valido").Return(sellerClaims, nil)
				mockCatalog.EXPECT().ListSellers(gomock.Any(), true).Return([]*domain.SellerResponse{}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "Vendedor não dispara cron",
			method: http.MethodPost,
			path:   "/v1/cron/all/run",
			token:  "valido",
			setup: func() {
				mockAuth.EXPECT().ValidateToken("valido").Return(sellerClaims, nil)
			},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "Preflight não exige token",
			method:         http.MethodOptions,
			path:           "/v1/sales",
			setup:          func() {},
			expectedStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			req := httptest.NewRequest(tt.method, tt.path, nil)
			req.Header.Set("Origin", "http://localhost:5173")
			if tt.token != "" {
				req.Header.Set("Authorization", "Bearer "+tt.token)
			}

			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))
			require.NotEmpty(t, rec.Header().Get("X-Request-ID"))
		})
	}
}

package handler

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-commission-api/internal/domain"
	"github.com/vfg2006/sales-commission-api/internal/usecases/importing"
	importingmocks "github.com/vfg2006/sales-commission-api/internal/usecases/importing/mocks"
	"github.com/vfg2006/sales-commission-api/internal/usecases/reporting"
	reportingmocks "github.com/vfg2006/sales-commission-api/internal/usecases/reporting/mocks"
	"github.com/vfg2006/sales-commission-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func TestRunImport(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockImporting := importingmocks.NewMockImportingService(ctrl)
	routes := Imports(mockImporting, nil, 1)
	csv := []byte("id;cliente;valor\nA1;Ana;100\n")

	tests := []struct {
		name           string
		request        func() *http.Request
		user           *domain.Claims
		setup          func()
		expectedStatus int
		validate       func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			name: "Importa com as escolhas da tela",
			request: func() *http.Request {
				return multipartRequest(t, "/v1/imports", "vendas.csv", csv, map[string]string{
					"request": `{"platform":"hotmart","seller_id":"seller-9","dry_run":true}`,
				})
			},
			user: manager,
			setup: func() {
				mockImporting.EXPECT().Import(gomock.Any(), "vendas.csv", csv, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, _ []byte, request *domain.ImportRequest) (*domain.ImportResult, error) {
						assert.Equal(t, domain.PlatformHotmart, request.Platform)
						assert.Equal(t, "seller-9", request.SellerID)
						assert.True(t, request.DryRun)
						require.NotNil(t, request.ImportedBy)
						assert.Equal(t, "manager-1", *request.ImportedBy)
						return &domain.ImportResult{Processed: 1, Created: 1, DryRun: true}, nil
					})
			},
			expectedStatus: http.StatusOK,
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				result := decodeBody[domain.ImportResult](t, rec)
				assert.Equal(t, 1, result.Created)
			},
		},
		{
			name: "Falha ao gravar o log devolve o resultado nos detalhes",
			request: func() *http.Request {
				return multipartRequest(t, "/v1/imports", "vendas.csv", csv, map[string]string{
					"request": `{"seller_id":"seller-9"}`,
				})
			},
			user: admin,
			setup: func() {
				mockImporting.EXPECT().Import(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(&domain.ImportResult{Processed: 1, Updated: 1},
						importing.NewImportError(importing.ErrSaveImportLog, apiErrors.ErrDatabaseOperation, "Falha ao registrar a importação"))
			},
			expectedStatus: http.StatusInternalServerError,
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var body struct {
					Code    string              `json:"code"`
					Details domain.ImportResult `json:"details"`
				}
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
				assert.Equal(t, apiErrors.ErrDatabaseOperation, body.Code)
				assert.Equal(t, 1, body.Details.Updated)
			},
		},
		{
			name: "Sem arquivo",
			request: func() *http.Request {
				return multipartRequest(t, "/v1/imports", "", nil, map[string]string{"request": "{}"})
			},
			user:           admin,
			setup:          func() {},
			expectedStatus: http.StatusBadRequest,
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, apiErrors.ErrMissingRequiredData, apiErrorCode(t, rec))
			},
		},
		{
			name: "Campo request inválido",
			request: func() *http.Request {
				return multipartRequest(t, "/v1/imports", "vendas.csv", csv, map[string]string{"request": "{"})
			},
			user:           admin,
			setup:          func() {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Arquivo acima do limite",
			request: func() *http.Request {
				return multipartRequest(t, "/v1/imports", "grande.csv", bytes.Repeat([]byte("a"), 3<<20), nil)
			},
			user:           admin,
			setup:          func() {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Vendedor não importa",
			request: func() *http.Request {
				return multipartRequest(t, "/v1/imports", "vendas.csv", csv, nil)
			},
			user:           seller,
			setup:          func() {},
			expectedStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			rec := serve(routes, tt.request(), tt.user)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.validate != nil {
				tt.validate(t, rec)
			}
		})
	}
}

func TestPreviewImport(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockImporting := importingmocks.NewMockImportingService(ctrl)
	routes := Imports(mockImporting, nil, 0)

	mockImporting.EXPECT().Preview(gomock.Any(), "vendas.csv", []byte("id;valor\n")).
		Return(nil, importing.NewImportError(importing.ErrEmptyFile, apiErrors.ErrInvalidRequest, "O arquivo não possui linhas de dados"))

	rec := serve(routes, multipartRequest(t, "/v1/imports/preview", "vendas.csv", []byte("id;valor\n"), nil), admin)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, apiErrors.ErrInvalidRequest, apiErrorCode(t, rec))
}

func TestListImports(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockImporting := importingmocks.NewMockImportingService(ctrl)
	routes := Imports(mockImporting, nil, 0)

	t.Run("Limite padrão", func(t *testing.T) {
		mockImporting.EXPECT().ListLogs(gomock.Any(), uint64(defaultLogsLimit)).Return(nil, nil)

		rec := serve(routes, httptest.NewRequest(http.MethodGet, "/v1/imports", nil), admin)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, "[]", rec.Body.String())
	})

	t.Run("Limite inválido", func(t *testing.T) {
		rec := serve(routes, httptest.NewRequest(http.MethodGet, "/v1/imports?limit=-1", nil), admin)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestDownloadImportErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReporting := reportingmocks.NewMockReportingService(ctrl)
	routes := Imports(nil, mockReporting, 0)

	t.Run("Baixa o CSV", func(t *testing.T) {
		mockReporting.EXPECT().ImportErrors(gomock.Any(), "log-1").Return(&domain.ExportFile{
			Filename:    "importacao_log-1_erros.csv",
			ContentType: "text/csv; charset=utf-8",
			Content:     []byte("linha;erro\n2;falha\n"),
		}, nil)

		rec := serve(routes, httptest.NewRequest(http.MethodGet, "/v1/imports/log-1/errors", nil), manager)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, `attachment; filename="importacao_log-1_erros.csv"`, rec.Header().Get("Content-Disposition"))
		assert.Equal(t, "linha;erro\n2;falha\n", rec.Body.String())
	})

	t.Run("Log inexistente", func(t *testing.T) {
		mockReporting.EXPECT().ImportErrors(gomock.Any(), "x").
			Return(nil, reporting.NewReportError(reporting.ErrImportLogNotFound, apiErrors.ErrNotFound, "Importação não encontrada"))

		rec := serve(routes, httptest.NewRequest(http.MethodGet, "/v1/imports/x/errors", nil), manager)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

package platform

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-commission-api/infrastructure/integrator/platform/platformclient"
	"github.com/vfg2006/sales-commission-api/internal/config"
	"github.com/vfg2006/sales-commission-api/internal/domain"
)

const hotmartLookup = `{
  "summary": {
    "items": [{
      "buyer": {"name": " Maria Silva ", "email": "maria@email.com", "checkout_phone": "11999990000"},
      "product": {"id": "123", "name": "Mentoria"},
      "purchase": {
        "transaction": "HP123",
        "order_date": 1705330800000,
        "price": {"value": 297.5},
        "payment": {"installments_number": 3}
      }
    }]
  }
}`

func newTestServer(t *testing.T, status int, body string, inspect func(r *http.Request)) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if inspect != nil {
			inspect(r)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		io.WriteString(w, body)
	}))
	t.Cleanup(server.Close)

	return server
}

func newIntegrator(url string) PlatformIntegrator {
	return New(platformclient.NewClient(config.PlatformFunctions{URL: url, Token: "token-123"}))
}

func TestPlatformService_LookupTransaction(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		validate func(t *testing.T, err error, transactionFound bool)
	}{
		{
			name:   "Formato desconhecido é ausência de dados",
			status: http.StatusOK,
			body:   `{"data": []}`,
			validate: func(t *testing.T, err error, found bool) {
				assert.NoError(t, err)
				assert.False(t, found)
			},
		},
		{
			name:   "Lista vazia",
			status: http.StatusOK,
			body:   `{"summary": {"items": []}}`,
			validate: func(t *testing.T, err error, found bool) {
				assert.NoError(t, err)
				assert.False(t, found)
			},
		},
		{
			name:   "Corpo que não é objeto",
			status: http.StatusOK,
			body:   `[1, 2]`,
			validate: func(t *testing.T, err error, found bool) {
				assert.NoError(t, err)
				assert.False(t, found)
			},
		},
		{
			name:   "Erro da função remota",
			status: http.StatusBadGateway,
			body:   `{"error": "timeout"}`,
			validate: func(t *testing.T, err error, found bool) {
				assert.Error(t, err)
				assert.False(t, found)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := newTestServer(t, tt.status, tt.body, nil)

			transaction, err := newIntegrator(server.URL).LookupTransaction(context.Background(), domain.PlatformHotmart, "HP123")
			tt.validate(t, err, transaction != nil)
		})
	}

	t.Run("Lê comprador, produto e compra do primeiro item", func(t *testing.T) {
		server := newTestServer(t, http.StatusOK, hotmartLookup, func(r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/functions/v1/hotmart-transaction-lookup", r.URL.Path)
			assert.Equal(t, "Bearer token-123", r.Header.Get("Authorization"))

			body, err := io.ReadAll(r.Body)
			require.NoError(t, err)
			assert.JSONEq(t, `{"transaction_id": "HP123"}`, string(body))
		})

		transaction, err := newIntegrator(server.URL+"/functions/v1").LookupTransaction(context.Background(), domain.PlatformHotmart, " HP123 ")
		require.NoError(t, err)
		require.NotNil(t, transaction)

		assert.Equal(t, "HP123", transaction.TransactionID)
		assert.Equal(t, "Maria Silva", transaction.ClientName)
		assert.Equal(t, "maria@email.com", transaction.ClientEmail)
		assert.Equal(t, "11999990000", transaction.ClientPhone)
		assert.Equal(t, "Mentoria", transaction.ProductName)
		assert.Equal(t, "297.50", transaction.TotalValue.StringFixed(2))
		assert.Equal(t, 3, transaction.InstallmentsCount)
		require.NotNil(t, transaction.SaleDate)
		assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), *transaction.SaleDate)
	})

	t.Run("Cancelamento do contexto interrompe a chamada", func(t *testing.T) {
		server := newTestServer(t, http.StatusOK, hotmartLookup, nil)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		transaction, err := newIntegrator(server.URL).LookupTransaction(ctx, domain.PlatformHotmart, "HP123")
		assert.Error(t, err)
		assert.Nil(t, transaction)
	})
}

func TestPlatformService_SyncTransactions(t *testing.T) {
	start := time.Date(2024, 3, 7, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	t.Run("Resultado completo", func(t *testing.T) {
		server := newTestServer(t, http.StatusOK, `{"success": true, "created": 4, "updated": 9}`, func(r *http.Request) {
			assert.Equal(t, "/asaas-sync", r.URL.Path)

			body, err := io.ReadAll(r.Body)
			require.NoError(t, err)
			assert.JSONEq(t, `{"start_date": "2024-03-07", "end_date": "2024-03-10"}`, string(body))
		})

		result, err := newIntegrator(server.URL).SyncTransactions(context.Background(), domain.PlatformAsaas, start, end)
		require.NoError(t, err)
		require.NotNil(t, result)
		assert.Equal(t, "asaas", result.Platform)
		assert.True(t, result.Success)
		assert.Equal(t, 4, result.Created)
		assert.Equal(t, 9, result.Updated)
	})

	t.Run("Campos faltando é ausência de dados", func(t *testing.T) {
		server := newTestServer(t, http.StatusOK, `{"success": true}`, nil)

		result, err := newIntegrator(server.URL).SyncTransactions(context.Background(), domain.PlatformAsaas, start, end)
		require.NoError(t, err)
		assert.Nil(t, result)
	})

	t.Run("Status de erro", func(t *testing.T) {
		server := newTestServer(t, http.StatusInternalServerError, `{}`, nil)

		_, err := newIntegrator(server.URL).SyncTransactions(context.Background(), domain.PlatformAsaas, start, end)
		assert.Error(t, err)
	})
}

package importing

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-commission-api/infrastructure/database/databasetest"
	"github.com/vfg2006/sales-commission-api/infrastructure/repository"
	"github.com/vfg2006/sales-commission-api/internal/config"
	"github.com/vfg2006/sales-commission-api/internal/domain"
	"github.com/vfg2006/sales-commission-api/internal/usecases/commissioning"
)

type importFixture struct {
	service         ImportingService
	saleRepo        repository.SaleRepository
	installmentRepo repository.InstallmentRepository
	commissionRepo  repository.CommissionRepository
	csvImportRepo   repository.CsvImportRepository
}

func newImportFixture(t *testing.T) *importFixture {
	conn := databasetest.NewSQLite(t)

	f := &importFixture{
		saleRepo:        repository.NewSaleRepository(conn),
		installmentRepo: repository.NewInstallmentRepository(conn),
		commissionRepo:  repository.NewCommissionRepository(conn),
		csvImportRepo:   repository.NewCsvImportRepository(conn),
	}

	saleCreator := commissioning.NewService(conn, f.saleRepo, f.installmentRepo, f.commissionRepo)
	f.service = NewService(saleCreator, f.saleRepo, f.csvImportRepo, repository.NewProductRepository(conn), config.Import{})

	return f
}

func hotmartRequest() *domain.ImportRequest {
	percent := decimal.RequireFromString("10")
	return &domain.ImportRequest{
		Platform:          domain.PlatformHotmart,
		SellerID:          "seller-1",
		CommissionPercent: &percent,
	}
}

func TestService_Import_Reimportacao(t *testing.T) {
	ctx := context.Background()
	f := newImportFixture(t)

	data := []byte("id,cliente,valor,parcelas,data\n" +
		"A1,Maria Silva,300,3,15/01/2024\n" +
		",Sem identificador,100,1,15/01/2024\n" +
		"A2,João Pereira,120,2,2024-02-01\n")

	first, err := f.service.Import(ctx, "vendas.csv", data, hotmartRequest())
	require.NoError(t, err)
	assert.Equal(t, 2, first.Processed)
	assert.Equal(t, 2, first.Created)
	assert.Equal(t, 0, first.Updated)
	assert.Equal(t, 0, first.Failed)
	assert.Equal(t, 1, first.Skipped)
	assert.Empty(t, first.PreviousImportID)
	require.NotEmpty(t, first.LogID)

	sales, err := f.saleRepo.List(ctx, domain.SaleFilters{})
	require.NoError(t, err)
	require.Len(t, sales, 2)

	saleIDs := []string{sales[0].ID, sales[1].ID}
	installments, err := f.installmentRepo.ListBySaleIDs(ctx, saleIDs)
	require.NoError(t, err)
	assert.Len(t, installments, 5)

	second, err := f.service.Import(ctx, "vendas.csv", data, hotmartRequest())
	require.NoError(t, err)
	assert.Equal(t, 2, second.Processed)
	assert.Equal(t, 0, second.Created)
	assert.Equal(t, 2, second.Updated)
	assert.Equal(t, first.LogID, second.PreviousImportID)

	sales, err = f.saleRepo.List(ctx, domain.SaleFilters{})
	require.NoError(t, err)
	assert.Len(t, sales, 2)

	installments, err = f.installmentRepo.ListBySaleIDs(ctx, saleIDs)
	require.NoError(t, err)
	assert.Len(t, installments, 5)

	commissions, err := f.commissionRepo.ListBySaleIDs(ctx, saleIDs)
	require.NoError(t, err)
	assert.Len(t, commissions, 5)

	logs, err := f.csvImportRepo.List(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, logs, 2)
}

func TestService_Import_VirgulaDecimal(t *testing.T) {
	ctx := context.Background()

	validate := func(t *testing.T, f *importFixture) {
		sale, err := f.saleRepo.GetByExternalID(ctx, "ABC123")
		require.NoError(t, err)
		require.NotNil(t, sale)

		assert.Equal(t, "Maria Silva", sale.ClientName)
		assert.Equal(t, "300.00", sale.TotalValue.StringFixed(2))
		assert.Equal(t, 3, sale.InstallmentsCount)
		assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), sale.SaleDate.UTC())

		installments, err := f.installmentRepo.ListBySaleIDs(ctx, []string{sale.ID})
		require.NoError(t, err)
		require.Len(t, installments, 3)
		for _, inst := range installments {
			assert.Equal(t, "100.00", inst.Value.StringFixed(2))
		}

		commissions, err := f.commissionRepo.ListBySaleIDs(ctx, []string{sale.ID})
		require.NoError(t, err)
		require.Len(t, commissions, 3)
		for _, c := range commissions {
			assert.Equal(t, "10.00", c.CommissionValue.StringFixed(2))
		}
	}

	t.Run("Valor entre aspas com mapeamento automático", func(t *testing.T) {
		f := newImportFixture(t)
		data := []byte("id,cliente,valor,parcelas,data\nABC123,Maria Silva,\"300,00\",3,15/01/2024\n")

		result, err := f.service.Import(ctx, "vendas.csv", data, hotmartRequest())
		require.NoError(t, err)
		assert.Equal(t, 1, result.Created)

		validate(t, f)
	})

	t.Run("Valor sem aspas quebra em duas colunas e o mapeamento manual contorna", func(t *testing.T) {
		f := newImportFixture(t)
		data := []byte("id,cliente,valor,centavos,parcelas,data\nABC123,Maria Silva,300,00,3,15/01/2024\n")

		request := hotmartRequest()
		request.Mapping = &domain.ColumnMapping{
			ExternalID:   intPtr(0),
			ClientName:   intPtr(1),
			TotalValue:   intPtr(2),
			Installments: intPtr(4),
			SaleDate:     intPtr(5),
		}

		result, err := f.service.Import(ctx, "vendas.csv", data, request)
		require.NoError(t, err)
		assert.Equal(t, 1, result.Created)

		validate(t, f)
	})
}

func TestService_Import_Simulacao(t *testing.T) {
	ctx := context.Background()
	f := newImportFixture(t)

	request := hotmartRequest()
	request.DryRun = true

	result, err := f.service.Import(ctx, "vendas.csv", []byte("id;valor\nA1;50\nA2;70"), request)
	require.NoError(t, err)
	assert.True(t, result.DryRun)
	assert.Equal(t, 2, result.Created)
	assert.Empty(t, result.LogID)

	sales, err := f.saleRepo.List(ctx, domain.SaleFilters{})
	require.NoError(t, err)
	assert.Empty(t, sales)

	logs, err := f.csvImportRepo.List(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, logs)
}

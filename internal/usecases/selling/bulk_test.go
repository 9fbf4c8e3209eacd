package selling

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-commission-api/infrastructure/database/databasetest"
	"github.com/vfg2006/sales-commission-api/infrastructure/repository"
	"github.com/vfg2006/sales-commission-api/internal/domain"
	"github.com/vfg2006/sales-commission-api/internal/usecases/commissioning"
)

type bulkFixture struct {
	service         *Service
	saleRepo        repository.SaleRepository
	installmentRepo repository.InstallmentRepository
	commissionRepo  repository.CommissionRepository
}

func newBulkFixture(t *testing.T, sales int) *bulkFixture {
	ctx := context.Background()
	conn := databasetest.NewSQLite(t)

	f := &bulkFixture{
		saleRepo:        repository.NewSaleRepository(conn),
		installmentRepo: repository.NewInstallmentRepository(conn),
		commissionRepo:  repository.NewCommissionRepository(conn),
	}

	saleCreator := commissioning.NewService(conn, f.saleRepo, f.installmentRepo, f.commissionRepo)
	f.service = NewService(conn, saleCreator, f.saleRepo, f.installmentRepo, f.commissionRepo, nil)
	f.service.now = func() time.Time { return now }

	for i := 1; i <= sales; i++ {
		_, err := saleCreator.CreateSale(ctx, &domain.Sale{
			ID:                fmt.Sprintf("sale-%d", i),
			ExternalID:        fmt.Sprintf("HP%d", i),
			ClientName:        "Cliente",
			ProductName:       "Curso",
			TotalValue:        decimal.RequireFromString("300"),
			InstallmentsCount: 3,
			SaleDate:          time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
			Platform:          domain.PlatformHotmart,
			SellerID:          stringPtr("seller-1"),
			CommissionPercent: decimal.RequireFromString("10"),
			Status:            domain.SaleStatusActive,
		})
		require.NoError(t, err)
	}

	return f
}

func TestService_BulkAction_Cancelamento(t *testing.T) {
	ctx := context.Background()
	f := newBulkFixture(t, 3)

	// uma comissão já liberada também é cancelada junto com a venda
	commissions, err := f.commissionRepo.ListBySaleIDs(ctx, []string{"sale-1"})
	require.NoError(t, err)
	_, err = f.commissionRepo.UpdateStatus(ctx, []string{commissions[0].ID}, domain.CommissionStatusReleased, now)
	require.NoError(t, err)

	result, err := f.service.BulkAction(ctx, &domain.BulkActionRequest{
		Action:  domain.BulkActionCancel,
		SaleIDs: []string{"sale-1", "sale-2"},
	})
	require.NoError(t, err)
	assert.Equal(t, domain.BulkActionCancel, result.Action)
	assert.Equal(t, 2, result.Affected)

	for _, id := range []string{"sale-1", "sale-2"} {
		sale, err := f.saleRepo.GetByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, domain.SaleStatusCancelled, sale.Status)

		installments, err := f.installmentRepo.ListBySaleIDs(ctx, []string{id})
		require.NoError(t, err)
		require.Len(t, installments, 3)
		for _, inst := range installments {
			assert.Equal(t, domain.InstallmentStatusCancelled, inst.Status)
		}

		commissions, err := f.commissionRepo.ListBySaleIDs(ctx, []string{id})
		require.NoError(t, err)
		require.Len(t, commissions, 3)
		for _, c := range commissions {
			assert.Equal(t, domain.CommissionStatusCancelled, c.Status)
		}
	}

	sale, err := f.saleRepo.GetByID(ctx, "sale-3")
	require.NoError(t, err)
	assert.Equal(t, domain.SaleStatusActive, sale.Status)

	installments, err := f.installmentRepo.ListBySaleIDs(ctx, []string{"sale-3"})
	require.NoError(t, err)
	for _, inst := range installments {
		assert.Equal(t, domain.InstallmentStatusPending, inst.Status)
	}

	untouched, err := f.commissionRepo.ListBySaleIDs(ctx, []string{"sale-3"})
	require.NoError(t, err)
	for _, c := range untouched {
		assert.Equal(t, domain.CommissionStatusPending, c.Status)
	}

	t.Run("Reativar muda só a venda", func(t *testing.T) {
		result, err := f.service.BulkAction(ctx, &domain.BulkActionRequest{
			Action:  domain.BulkActionActivate,
			SaleIDs: []string{"sale-1"},
		})
		require.NoError(t, err)
		assert.Equal(t, 1, result.Affected)

		sale, err := f.saleRepo.GetByID(ctx, "sale-1")
		require.NoError(t, err)
		assert.Equal(t, domain.SaleStatusActive, sale.Status)

		commissions, err := f.commissionRepo.ListBySaleIDs(ctx, []string{"sale-1"})
		require.NoError(t, err)
		for _, c := range commissions {
			assert.Equal(t, domain.CommissionStatusCancelled, c.Status)
		}
	})
}

func TestService_BulkAction_Exclusao(t *testing.T) {
	ctx := context.Background()
	f := newBulkFixture(t, 2)

	result, err := f.service.BulkAction(ctx, &domain.BulkActionRequest{
		Action:  domain.BulkActionDelete,
		SaleIDs: []string{"sale-1"},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Affected)

	sale, err := f.saleRepo.GetByID(ctx, "sale-1")
	require.NoError(t, err)
	assert.Nil(t, sale)

	installments, err := f.installmentRepo.ListBySaleIDs(ctx, []string{"sale-1", "sale-2"})
	require.NoError(t, err)
	assert.Len(t, installments, 3)

	commissions, err := f.commissionRepo.ListBySaleIDs(ctx, []string{"sale-1", "sale-2"})
	require.NoError(t, err)
	assert.Len(t, commissions, 3)
	for _, c := range commissions {
		assert.Equal(t, "sale-2", c.SaleID)
	}
}

func TestService_BulkAction_Reatribuicao(t *testing.T) {
	ctx := context.Background()
	f := newBulkFixture(t, 2)

	commissions, err := f.commissionRepo.ListBySaleIDs(ctx, []string{"sale-1"})
	require.NoError(t, err)
	released := commissions[0].ID
	_, err = f.commissionRepo.UpdateStatus(ctx, []string{released}, domain.CommissionStatusReleased, now)
	require.NoError(t, err)

	percent := decimal.RequireFromString("20")
	result, err := f.service.BulkAction(ctx, &domain.BulkActionRequest{
		Action:            domain.BulkActionReassignSeller,
		SaleIDs:           []string{"sale-1"},
		SellerID:          stringPtr("seller-2"),
		CommissionPercent: &percent,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Affected)

	sale, err := f.saleRepo.GetByID(ctx, "sale-1")
	require.NoError(t, err)
	assert.Equal(t, "seller-2", *sale.SellerID)
	assert.True(t, percent.Equal(sale.CommissionPercent))

	commissions, err = f.commissionRepo.ListBySaleIDs(ctx, []string{"sale-1"})
	require.NoError(t, err)
	for _, c := range commissions {
		if c.ID == released {
			assert.Equal(t, "seller-1", *c.SellerID)
			assert.Equal(t, "10.00", c.CommissionValue.StringFixed(2))
			continue
		}
		assert.Equal(t, "seller-2", *c.SellerID)
		assert.Equal(t, "20.00", c.CommissionValue.StringFixed(2))
	}

	other, err := f.saleRepo.GetByID(ctx, "sale-2")
	require.NoError(t, err)
	assert.Equal(t, "seller-1", *other.SellerID)

	t.Run("Percentual inválido não altera nada", func(t *testing.T) {
		invalid := decimal.RequireFromString("150")
		_, err := f.service.BulkAction(ctx, &domain.BulkActionRequest{
			Action:            domain.BulkActionReassignSeller,
			SaleIDs:           []string{"sale-2"},
			SellerID:          stringPtr("seller-3"),
			CommissionPercent: &invalid,
		})
		assert.ErrorIs(t, err, commissioning.ErrInvalidPercent)

		other, err := f.saleRepo.GetByID(ctx, "sale-2")
		require.NoError(t, err)
		assert.Equal(t, "seller-1", *other.SellerID)
	})
}

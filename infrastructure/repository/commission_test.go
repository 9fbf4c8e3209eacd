package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-commission-api/infrastructure/database"
	"github.com/vfg2006/sales-commission-api/infrastructure/database/databasetest"
	"github.com/vfg2006/sales-commission-api/internal/domain"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// seedSaleWithInstallments grava uma venda com duas parcelas de 150 e comissões de 10%
func seedSaleWithInstallments(t *testing.T, conn *database.Connection, saleID, externalID string, sellerID *string) {
	t.Helper()
	ctx := context.Background()

	sale := newTestSale(saleID, externalID, sellerID)
	sale.InstallmentsCount = 2
	require.NoError(t, NewSaleRepository(conn).Create(ctx, sale))

	installments := []*domain.Installment{
		{ID: saleID + "-i1", SaleID: saleID, InstallmentNumber: 1, TotalInstallments: 2, Value: decimal.RequireFromString("150"), DueDate: date(2024, 1, 15), Status: domain.InstallmentStatusPaid, CreatedAt: fixedNow, UpdatedAt: fixedNow},
		{ID: saleID + "-i2", SaleID: saleID, InstallmentNumber: 2, TotalInstallments: 2, Value: decimal.RequireFromString("150"), DueDate: date(2024, 2, 15), Status: domain.InstallmentStatusPending, CreatedAt: fixedNow, UpdatedAt: fixedNow},
	}
	require.NoError(t, NewInstallmentRepository(conn).CreateBatch(ctx, installments))

	commissions := []*domain.Commission{
		{ID: saleID + "-c1", InstallmentID: saleID + "-i1", SaleID: saleID, SellerID: sellerID, CommissionPercent: decimal.RequireFromString("10"), CommissionValue: decimal.RequireFromString("15"), CompetenceMonth: date(2024, 1, 1), Status: domain.CommissionStatusReleased, CreatedAt: fixedNow, UpdatedAt: fixedNow},
		{ID: saleID + "-c2", InstallmentID: saleID + "-i2", SaleID: saleID, SellerID: sellerID, CommissionPercent: decimal.RequireFromString("10"), CommissionValue: decimal.RequireFromString("15"), CompetenceMonth: date(2024, 2, 1), Status: domain.CommissionStatusPending, CreatedAt: fixedNow, UpdatedAt: fixedNow},
	}
	require.NoError(t, NewCommissionRepository(conn).CreateBatch(ctx, commissions))
}

func TestInstallmentRepository_MarkOverdue(t *testing.T) {
	ctx := context.Background()
	conn := databasetest.NewSQLite(t)
	seedSaleWithInstallments(t, conn, "s1", "A1", nil)
	repo := NewInstallmentRepository(conn)

	t.Run("Antes do vencimento nada muda", func(t *testing.T) {
		affected, err := repo.MarkOverdue(ctx, date(2024, 2, 15), fixedNow)
		require.NoError(t, err)
		assert.Zero(t, affected)
	})

	t.Run("Somente parcelas pendentes vencidas viram atrasadas", func(t *testing.T) {
		affected, err := repo.MarkOverdue(ctx, date(2024, 3, 1), fixedNow)
		require.NoError(t, err)
		assert.Equal(t, int64(1), affected)

		installments, err := repo.ListBySaleIDs(ctx, []string{"s1"})
		require.NoError(t, err)
		require.Len(t, installments, 2)
		assert.Equal(t, domain.InstallmentStatusPaid, installments[0].Status)
		assert.Equal(t, domain.InstallmentStatusOverdue, installments[1].Status)
		assert.True(t, date(2024, 2, 15).Equal(installments[1].DueDate))
		assert.Equal(t, "150.00", installments[1].Value.StringFixed(2))
	})
}

func TestCommissionRepository_ListPendingBySaleIDs(t *testing.T) {
	ctx := context.Background()
	conn := databasetest.NewSQLite(t)
	seedSaleWithInstallments(t, conn, "s1", "A1", stringPtr("seller-1"))
	repo := NewCommissionRepository(conn)

	pending, err := repo.ListPendingBySaleIDs(ctx, []string{"s1"})
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "s1-c2", pending[0].Commission.ID)
	assert.Equal(t, "150.00", pending[0].InstallmentValue.StringFixed(2))
}

func TestCommissionRepository_UpdateAssignment(t *testing.T) {
	ctx := context.Background()
	conn := databasetest.NewSQLite(t)
	seedSaleWithInstallments(t, conn, "s1", "A1", stringPtr("seller-1"))
	repo := NewCommissionRepository(conn)

	err := repo.UpdateAssignment(ctx, "s1-c2", "seller-2", decimal.RequireFromString("20"), decimal.RequireFromString("30"), fixedNow)
	require.NoError(t, err)

	commissions, err := repo.ListBySaleIDs(ctx, []string{"s1"})
	require.NoError(t, err)
	require.Len(t, commissions, 2)

	assert.Equal(t, "seller-1", *commissions[0].SellerID)
	assert.Equal(t, "seller-2", *commissions[1].SellerID)
	assert.Equal(t, "20.00", commissions[1].CommissionPercent.StringFixed(2))
	assert.Equal(t, "30.00", commissions[1].CommissionValue.StringFixed(2))
}

func TestCommissionRepository_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	conn := databasetest.NewSQLite(t)
	seedSaleWithInstallments(t, conn, "s1", "A1", nil)
	repo := NewCommissionRepository(conn)

	_, err := repo.UpdateStatus(ctx, []string{"s1-c1"}, domain.CommissionStatusCancelled, fixedNow)
	require.NoError(t, err)

	affected, err := repo.UpdateStatus(ctx, []string{"s1-c1", "s1-c2"}, domain.CommissionStatusSuspended, fixedNow)
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected, "comissão cancelada não pode ser alterada")

	commissions, err := repo.ListBySaleIDs(ctx, []string{"s1"})
	require.NoError(t, err)
	assert.Equal(t, domain.CommissionStatusCancelled, commissions[0].Status)
	assert.Equal(t, domain.CommissionStatusSuspended, commissions[1].Status)
}

func TestCommissionRepository_ListDetails(t *testing.T) {
	ctx := context.Background()
	conn := databasetest.NewSQLite(t)
	seedProfile(t, conn, "seller-1", "Ana Souza")
	seedSaleWithInstallments(t, conn, "s1", "A1", stringPtr("seller-1"))
	seedSaleWithInstallments(t, conn, "s2", "B2", nil)
	repo := NewCommissionRepository(conn)

	asaas := domain.PlatformAsaas

	tests := []struct {
		name     string
		filters  domain.ReportFilters
		validate func(t *testing.T, details []*domain.CommissionDetail)
	}{
		{
			name:    "Sem filtros retorna todas as comissões ordenadas por competência",
			filters: domain.ReportFilters{},
			validate: func(t *testing.T, details []*domain.CommissionDetail) {
				require.Len(t, details, 4)
				assert.Equal(t, "s1-c1", details[0].CommissionID)
				assert.Equal(t, "s2-c1", details[1].CommissionID)
				assert.Equal(t, "s1-c2", details[2].CommissionID)
				assert.Equal(t, "s2-c2", details[3].CommissionID)

				first := details[0]
				assert.Equal(t, "A1", first.ExternalID)
				assert.Equal(t, "seller-1", first.SellerID)
				assert.Equal(t, "Ana Souza", first.SellerName)
				assert.Equal(t, domain.PlatformHotmart, first.Platform)
				assert.Equal(t, "300.00", first.SaleTotalValue.StringFixed(2))
				assert.Equal(t, 1, first.InstallmentNumber)
				assert.Equal(t, 2, first.TotalInstallments)
				assert.Equal(t, domain.InstallmentStatusPaid, first.InstallmentStatus)
				assert.Equal(t, domain.CommissionStatusReleased, first.CommissionStatus)
				assert.True(t, date(2024, 1, 1).Equal(first.CompetenceMonth))

				// venda sem vendedor
				assert.Equal(t, "", details[1].SellerID)
				assert.Equal(t, "", details[1].SellerName)
			},
		},
		{
			name:    "Filtro por intervalo de competência",
			filters: domain.ReportFilters{StartMonth: date(2024, 2, 1), EndMonth: date(2024, 2, 1)},
			validate: func(t *testing.T, details []*domain.CommissionDetail) {
				require.Len(t, details, 2)
				for _, d := range details {
					assert.True(t, date(2024, 2, 1).Equal(d.CompetenceMonth))
				}
			},
		},
		{
			name:    "Filtro por vendedor",
			filters: domain.ReportFilters{SellerID: stringPtr("seller-1")},
			validate: func(t *testing.T, details []*domain.CommissionDetail) {
				require.Len(t, details, 2)
				assert.Equal(t, "s1", details[0].SaleID)
				assert.Equal(t, "s1", details[1].SaleID)
			},
		},
		{
			name:    "Filtro por plataforma sem resultados",
			filters: domain.ReportFilters{Platform: &asaas},
			validate: func(t *testing.T, details []*domain.CommissionDetail) {
				assert.Empty(t, details)
			},
		},
		{
			name:    "Filtro por produto",
			filters: domain.ReportFilters{Product: stringPtr("Curso Completo")},
			validate: func(t *testing.T, details []*domain.CommissionDetail) {
				assert.Len(t, details, 4)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			details, err := repo.ListDetails(ctx, tt.filters)
			require.NoError(t, err)
			tt.validate(t, details)
		})
	}
}

func TestRepositories_BulkBySaleIDs(t *testing.T) {
	ctx := context.Background()
	conn := databasetest.NewSQLite(t)
	seedSaleWithInstallments(t, conn, "s1", "A1", nil)
	seedSaleWithInstallments(t, conn, "s2", "B2", nil)

	installmentRepo := NewInstallmentRepository(conn)
	commissionRepo := NewCommissionRepository(conn)

	t.Run("Cancela parcelas e comissões da venda", func(t *testing.T) {
		affected, err := installmentRepo.UpdateStatusBySaleIDs(ctx, []string{"s1"}, domain.InstallmentStatusCancelled, fixedNow)
		require.NoError(t, err)
		assert.Equal(t, int64(2), affected)

		affected, err = commissionRepo.UpdateStatusBySaleIDs(ctx, []string{"s1"}, domain.CommissionStatusCancelled, fixedNow)
		require.NoError(t, err)
		assert.Equal(t, int64(2), affected)
	})

	t.Run("Exclui parcelas e comissões da venda", func(t *testing.T) {
		affected, err := commissionRepo.DeleteBySaleIDs(ctx, []string{"s2"})
		require.NoError(t, err)
		assert.Equal(t, int64(2), affected)

		affected, err = installmentRepo.DeleteBySaleIDs(ctx, []string{"s2"})
		require.NoError(t, err)
		assert.Equal(t, int64(2), affected)

		installments, err := installmentRepo.ListBySaleIDs(ctx, []string{"s1", "s2"})
		require.NoError(t, err)
		assert.Len(t, installments, 2)
	})
}

func TestRepositories_WithTx(t *testing.T) {
	ctx := context.Background()
	conn := databasetest.NewSQLite(t)
	saleRepo := NewSaleRepository(conn)

	err := conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if err := saleRepo.WithTx(tx).Create(ctx, newTestSale("s1", "A1", nil)); err != nil {
			return err
		}
		return saleRepo.WithTx(tx).Create(ctx, newTestSale("s2", "A1", nil))
	})
	require.ErrorIs(t, err, ErrDuplicateExternalID)

	sale, err := saleRepo.GetByID(ctx, "s1")
	require.NoError(t, err)
	assert.Nil(t, sale, "a transação deveria ter sido desfeita")
}

package commissioning

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-commission-api/internal/domain"
)

var now = time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

func stringPtr(s string) *string {
	return &s
}

func newSale(total string, count int, percent string, saleDate time.Time) *domain.Sale {
	return &domain.Sale{
		ID:                "sale-1",
		ExternalID:        "ABC123",
		TotalValue:        decimal.RequireFromString(total),
		InstallmentsCount: count,
		SaleDate:          saleDate,
		SellerID:          stringPtr("seller-1"),
		CommissionPercent: decimal.RequireFromString(percent),
	}
}

func TestGenerateInstallments(t *testing.T) {
	tests := []struct {
		name     string
		sale     *domain.Sale
		validate func(t *testing.T, installments []*domain.Installment)
	}{
		{
			name: "Venda de 300 em 3 parcelas",
			sale: newSale("300.00", 3, "10", time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)),
			validate: func(t *testing.T, installments []*domain.Installment) {
				require.Len(t, installments, 3)
				for i, inst := range installments {
					assert.Equal(t, i+1, inst.InstallmentNumber)
					assert.Equal(t, 3, inst.TotalInstallments)
					assert.Equal(t, "100.00", inst.Value.StringFixed(2))
					assert.Equal(t, domain.InstallmentStatusPending, inst.Status)
					assert.Equal(t, "sale-1", inst.SaleID)
					assert.NotEmpty(t, inst.ID)
				}
				assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), installments[0].DueDate)
				assert.Equal(t, time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC), installments[1].DueDate)
				assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), installments[2].DueDate)
			},
		},
		{
			name: "Sem correção do resto na divisão",
			sale: newSale("100.00", 3, "10", time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)),
			validate: func(t *testing.T, installments []*domain.Installment) {
				require.Len(t, installments, 3)
				for _, inst := range installments {
					assert.Equal(t, "33.33", inst.Value.StringFixed(2))
				}
			},
		},
		{
			name: "Quantidade menor que 1 gera parcela única",
			sale: newSale("50.00", 0, "10", time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)),
			validate: func(t *testing.T, installments []*domain.Installment) {
				require.Len(t, installments, 1)
				assert.Equal(t, "50.00", installments[0].Value.StringFixed(2))
				assert.Equal(t, 1, installments[0].TotalInstallments)
			},
		},
		{
			name: "Vencimento soma meses sem ajuste de fim de mês",
			sale: newSale("200.00", 2, "10", time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)),
			validate: func(t *testing.T, installments []*domain.Installment) {
				require.Len(t, installments, 2)
				// 31/02 normaliza para 02/03 em ano bissexto
				assert.Equal(t, time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC), installments[1].DueDate)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, GenerateInstallments(tt.sale, now))
		})
	}
}

func TestGenerateInstallments_DiferencaDeArredondamento(t *testing.T) {
	cent := decimal.RequireFromString("0.01")

	for _, total := range []string{"100.00", "99.99", "1234.57", "10.00", "0.05", "997.31"} {
		for count := 1; count <= 12; count++ {
			sale := newSale(total, count, "10", time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC))
			installments := GenerateInstallments(sale, now)
			require.Len(t, installments, count)

			sum := decimal.Zero
			for _, inst := range installments {
				sum = sum.Add(inst.Value)
			}

			limit := cent.Mul(decimal.NewFromInt(int64(count - 1)))
			drift := sum.Sub(sale.TotalValue).Abs()
			assert.True(t, drift.LessThanOrEqual(limit), "total %s em %d parcelas: diferença %s", total, count, drift)
		}
	}
}

func TestGenerateCommissions(t *testing.T) {
	sale := newSale("300.00", 3, "10", time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC))
	installments := GenerateInstallments(sale, now)

	commissions := GenerateCommissions(sale, installments, now)
	require.Len(t, commissions, 3)

	expectedMonths := []time.Month{time.January, time.February, time.March}
	for i, c := range commissions {
		assert.Equal(t, installments[i].ID, c.InstallmentID)
		assert.Equal(t, "sale-1", c.SaleID)
		assert.Equal(t, "seller-1", *c.SellerID)
		assert.Equal(t, "10.00", c.CommissionValue.StringFixed(2))
		assert.True(t, decimal.RequireFromString("10").Equal(c.CommissionPercent))
		assert.Equal(t, time.Date(2024, expectedMonths[i], 1, 0, 0, 0, 0, time.UTC), c.CompetenceMonth)
		assert.Equal(t, domain.CommissionStatusPending, c.Status)
	}

	t.Run("Venda sem vendedor gera comissões sem vendedor", func(t *testing.T) {
		sale.SellerID = nil
		commissions := GenerateCommissions(sale, installments, now)
		require.Len(t, commissions, 3)
		for _, c := range commissions {
			assert.Nil(t, c.SellerID)
		}
	})
}

func TestCommissionValue(t *testing.T) {
	tests := []struct {
		name        string
		installment string
		percent     string
		expected    string
	}{
		{name: "Percentual inteiro", installment: "100.00", percent: "10", expected: "10.00"},
		{name: "Percentual fracionado", installment: "33.33", percent: "12.5", expected: "4.17"},
		{name: "Percentual zero", installment: "100.00", percent: "0", expected: "0.00"},
		{name: "Percentual total", installment: "57.19", percent: "100", expected: "57.19"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value := CommissionValue(decimal.RequireFromString(tt.installment), decimal.RequireFromString(tt.percent))
			assert.Equal(t, tt.expected, value.StringFixed(2))
		})
	}
}

func TestValidPercent(t *testing.T) {
	assert.True(t, ValidPercent(decimal.Zero))
	assert.True(t, ValidPercent(decimal.NewFromInt(100)))
	assert.True(t, ValidPercent(decimal.RequireFromString("12.5")))
	assert.False(t, ValidPercent(decimal.RequireFromString("-0.01")))
	assert.False(t, ValidPercent(decimal.RequireFromString("100.01")))
}

package commissioning

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/sales-commission-api/internal/domain"
)

var hundred = decimal.NewFromInt(100)

// GenerateInstallments divide o valor da venda em parcelas mensais iguais.
// O valor de cada parcela é arredondado para duas casas sem correção do resto.
func GenerateInstallments(sale *domain.Sale, now time.Time) []*domain.Installment {
	count := sale.InstallmentsCount
	if count < 1 {
		count = 1
	}

	value := sale.TotalValue.Div(decimal.NewFromInt(int64(count))).Round(2)

	installments := make([]*domain.Installment, 0, count)
	for i := 1; i <= count; i++ {
		installments = append(installments, &domain.Installment{
			ID:                uuid.NewString(),
			SaleID:            sale.ID,
			InstallmentNumber: i,
			TotalInstallments: count,
			Value:             value,
			DueDate:           sale.SaleDate.AddDate(0, i-1, 0),
			Status:            domain.InstallmentStatusPending,
			CreatedAt:         now,
			UpdatedAt:         now,
		})
	}

	return installments
}

// GenerateCommissions cria exatamente uma comissão pendente por parcela, com competência
// no primeiro dia do mês de vencimento
func GenerateCommissions(sale *domain.Sale, installments []*domain.Installment, now time.Time) []*domain.Commission {
	commissions := make([]*domain.Commission, 0, len(installments))
	for _, inst := range installments {
		commissions = append(commissions, &domain.Commission{
			ID:                uuid.NewString(),
			InstallmentID:     inst.ID,
			SaleID:            sale.ID,
			SellerID:          sale.SellerID,
			CommissionPercent: sale.CommissionPercent,
			CommissionValue:   CommissionValue(inst.Value, sale.CommissionPercent),
			CompetenceMonth:   FirstDayOfMonth(inst.DueDate),
			Status:            domain.CommissionStatusPending,
			CreatedAt:         now,
			UpdatedAt:         now,
		})
	}

	return commissions
}

func CommissionValue(installmentValue, percent decimal.Decimal) decimal.Decimal {
	return installmentValue.Mul(percent).Div(hundred).Round(2)
}

func FirstDayOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// ValidPercent indica se o percentual está entre 0 e 100
func ValidPercent(percent decimal.Decimal) bool {
	return !percent.IsNegative() && percent.LessThanOrEqual(hundred)
}

package reporting

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-commission-api/internal/domain"
)

func month(y int, m time.Month) time.Time {
	return time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)
}

func money(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

type detailOption func(d *domain.CommissionDetail)

func newDetail(saleID, sellerID, sellerName string, competence time.Time, opts ...detailOption) *domain.CommissionDetail {
	d := &domain.CommissionDetail{
		CommissionID:      saleID + "-" + competence.Format("200601"),
		SaleID:            saleID,
		ExternalID:        "EXT-" + saleID,
		ClientName:        "Cliente " + saleID,
		ProductName:       "Curso",
		Platform:          domain.PlatformHotmart,
		SaleTotalValue:    money("300"),
		SaleDate:          time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		SellerID:          sellerID,
		SellerName:        sellerName,
		InstallmentNumber: 1,
		TotalInstallments: 3,
		InstallmentValue:  money("100"),
		DueDate:           competence.AddDate(0, 0, 14),
		InstallmentStatus: domain.InstallmentStatusPending,
		CommissionPercent: money("10"),
		CommissionValue:   money("10"),
		CompetenceMonth:   competence,
		CommissionStatus:  domain.CommissionStatusPending,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func paid(d *domain.CommissionDetail) {
	d.InstallmentStatus = domain.InstallmentStatusPaid
	d.CommissionStatus = domain.CommissionStatusReleased
}

func overdue(d *domain.CommissionDetail) {
	d.InstallmentStatus = domain.InstallmentStatusOverdue
}

func suspended(d *domain.CommissionDetail) {
	d.CommissionStatus = domain.CommissionStatusSuspended
}

func cancelled(d *domain.CommissionDetail) {
	d.InstallmentStatus = domain.InstallmentStatusCancelled
	d.CommissionStatus = domain.CommissionStatusCancelled
}

func TestAggregate(t *testing.T) {
	details := []*domain.CommissionDetail{
		newDetail("s1", "v1", "Bruna", month(2024, 1), paid),
		newDetail("s1", "v1", "Bruna", month(2024, 2), overdue),
		newDetail("s1", "v1", "Bruna", month(2024, 3)),
		newDetail("s2", "v2", "Ana", month(2024, 1), suspended),
		newDetail("s3", "", "", month(2024, 2)),
		newDetail("s4", "v1", "Bruna", month(2024, 2), cancelled),
	}

	sales := []*domain.Sale{
		{ID: "s1", TotalValue: money("300"), SaleDate: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), Status: domain.SaleStatusActive},
		{ID: "s2", TotalValue: money("150"), SaleDate: time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC), Status: domain.SaleStatusActive},
		{ID: "s3", TotalValue: money("80"), SaleDate: time.Date(2023, 12, 20, 0, 0, 0, 0, time.UTC), Status: domain.SaleStatusActive},
		{ID: "s4", TotalValue: money("999"), SaleDate: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), Status: domain.SaleStatusCancelled},
	}

	filters := domain.ReportFilters{StartMonth: month(2024, 1), EndMonth: month(2024, 3)}
	report := Aggregate(details, sales, filters)

	require.Len(t, report.Sellers, 3)
	assert.Equal(t, "Ana", report.Sellers[0].SellerName)
	assert.Equal(t, "Bruna", report.Sellers[1].SellerName)
	assert.Equal(t, UnassignedSellerName, report.Sellers[2].SellerName)
	assert.Equal(t, "", report.Sellers[2].SellerID)

	bruna := report.Sellers[1]
	assert.Equal(t, 1, bruna.SalesCount)
	assert.Equal(t, "300.00", bruna.Revenue.StringFixed(2))
	assert.Equal(t, "10.00", bruna.CommissionReleased.StringFixed(2))
	assert.Equal(t, "20.00", bruna.CommissionPending.StringFixed(2))
	assert.True(t, bruna.CommissionSuspended.IsZero())
	assert.Equal(t, 1, bruna.InstallmentsPaid)
	assert.Equal(t, 1, bruna.InstallmentsPending)
	assert.Equal(t, 1, bruna.InstallmentsOverdue)
	assert.Equal(t, "100.00", bruna.ReceivedValue.StringFixed(2))
	assert.Equal(t, "100.00", bruna.PendingValue.StringFixed(2))
	assert.Equal(t, "100.00", bruna.OverdueValue.StringFixed(2))

	ana := report.Sellers[0]
	assert.Equal(t, "10.00", ana.CommissionSuspended.StringFixed(2))

	require.Len(t, report.Months, 3)
	assert.Equal(t, month(2024, 1), report.Months[0].CompetenceMonth)
	assert.Equal(t, "20.00", report.Months[0].CommissionTotal.StringFixed(2))
	assert.Equal(t, "100.00", report.Months[0].ReceivedValue.StringFixed(2))
	assert.Equal(t, "200.00", report.Months[1].InstallmentTotal.StringFixed(2))

	// receita por data da venda: s1 e s2 no período, s3 fora, s4 cancelada
	assert.Equal(t, 2, report.Totals.SalesBySaleDate)
	assert.Equal(t, "450.00", report.Totals.RevenueBySaleDate.StringFixed(2))
	assert.Equal(t, "100.00", report.Totals.ReceivedByCompetence.StringFixed(2))
	assert.Equal(t, "300.00", report.Totals.PendingByCompetence.StringFixed(2))
	assert.Equal(t, "100.00", report.Totals.OverdueByCompetence.StringFixed(2))
	assert.Equal(t, "50.00", report.Totals.CommissionTotal.StringFixed(2))
}

func TestAggregate_Filtros(t *testing.T) {
	asaas := domain.PlatformAsaas
	seller := "v1"
	product := "Mentoria"

	details := []*domain.CommissionDetail{
		newDetail("s1", "v1", "Bruna", month(2024, 1)),
		newDetail("s2", "v1", "Bruna", month(2024, 2), func(d *domain.CommissionDetail) { d.Platform = domain.PlatformAsaas }),
		newDetail("s3", "v2", "Ana", month(2024, 2), func(d *domain.CommissionDetail) { d.ProductName = "Mentoria" }),
		newDetail("s4", "v2", "Ana", month(2024, 4)),
	}

	tests := []struct {
		name          string
		filters       domain.ReportFilters
		expectedSales int
	}{
		{name: "Intervalo de competência inclusivo", filters: domain.ReportFilters{StartMonth: month(2024, 1), EndMonth: month(2024, 2)}, expectedSales: 3},
		{name: "Data no meio do mês conta pelo mês", filters: domain.ReportFilters{StartMonth: time.Date(2024, 2, 20, 0, 0, 0, 0, time.UTC), EndMonth: time.Date(2024, 4, 3, 0, 0, 0, 0, time.UTC)}, expectedSales: 3},
		{name: "Por plataforma", filters: domain.ReportFilters{Platform: &asaas}, expectedSales: 1},
		{name: "Por vendedor", filters: domain.ReportFilters{SellerID: &seller}, expectedSales: 2},
		{name: "Por produto", filters: domain.ReportFilters{Product: &product}, expectedSales: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := Aggregate(details, nil, tt.filters)

			total := 0
			for _, s := range report.Sellers {
				total += s.SalesCount
			}
			assert.Equal(t, tt.expectedSales, total)
		})
	}
}

func TestAggregate_VendaContadaUmaVezPorVendedor(t *testing.T) {
	details := []*domain.CommissionDetail{
		newDetail("s1", "v1", "Bruna", month(2024, 1)),
		newDetail("s1", "v1", "Bruna", month(2024, 2)),
		newDetail("s1", "v1", "Bruna", month(2024, 3)),
	}

	report := Aggregate(details, nil, domain.ReportFilters{})
	require.Len(t, report.Sellers, 1)
	assert.Equal(t, 1, report.Sellers[0].SalesCount)
	assert.Equal(t, "300.00", report.Sellers[0].Revenue.StringFixed(2))
	assert.Equal(t, 3, report.Sellers[0].InstallmentsPending)
}

func TestAggregate_SemDados(t *testing.T) {
	report := Aggregate(nil, nil, domain.ReportFilters{})
	assert.Empty(t, report.Sellers)
	assert.Empty(t, report.Months)
	assert.True(t, report.Totals.RevenueBySaleDate.IsZero())
}

package reporting

import (
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/sales-commission-api/internal/domain"
)

// UnassignedSellerName agrupa as comissões sem vendedor
const UnassignedSellerName = "Sem vendedor"

// MonthStart normaliza a data para o primeiro dia do mês em UTC
func MonthStart(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// MonthEnd devolve o último dia do mês (data sem hora)
func MonthEnd(t time.Time) time.Time {
	return MonthStart(t).AddDate(0, 1, -1)
}

func matchesDetail(d *domain.CommissionDetail, filters domain.ReportFilters) bool {
	month := MonthStart(d.CompetenceMonth)
	if !filters.StartMonth.IsZero() && month.Before(MonthStart(filters.StartMonth)) {
		return false
	}
	if !filters.EndMonth.IsZero() && month.After(MonthStart(filters.EndMonth)) {
		return false
	}
	if filters.Platform != nil && d.Platform != *filters.Platform {
		return false
	}
	if filters.SellerID != nil && d.SellerID != *filters.SellerID {
		return false
	}
	if filters.Product != nil && d.ProductName != *filters.Product {
		return false
	}
	return d.CommissionStatus != domain.CommissionStatusCancelled
}

func matchesSale(s *domain.Sale, filters domain.ReportFilters) bool {
	if s.Status == domain.SaleStatusCancelled {
		return false
	}
	date := s.SaleDate.UTC()
	if !filters.StartMonth.IsZero() && date.Before(MonthStart(filters.StartMonth)) {
		return false
	}
	if !filters.EndMonth.IsZero() && !date.Before(MonthStart(filters.EndMonth).AddDate(0, 1, 0)) {
		return false
	}
	if filters.Platform != nil && s.Platform != *filters.Platform {
		return false
	}
	if filters.SellerID != nil && (s.SellerID == nil || *s.SellerID != *filters.SellerID) {
		return false
	}
	if filters.Product != nil && s.ProductName != *filters.Product {
		return false
	}
	return true
}

func newSellerSummary(id, name string) *domain.SellerSummary {
	if id == "" {
		name = UnassignedSellerName
	}
	return &domain.SellerSummary{
		SellerID:            id,
		SellerName:          name,
		Revenue:             decimal.Zero,
		CommissionReleased:  decimal.Zero,
		CommissionPending:   decimal.Zero,
		CommissionSuspended: decimal.Zero,
		ReceivedValue:       decimal.Zero,
		PendingValue:        decimal.Zero,
		OverdueValue:        decimal.Zero,
	}
}

// Aggregate dobra as linhas de comissão em resumos por vendedor e por competência.
// A receita por data da venda vem de sales e fica separada dos valores por competência.
// Comissões canceladas ficam fora de todos os totais.
func Aggregate(details []*domain.CommissionDetail, sales []*domain.Sale, filters domain.ReportFilters) *domain.CommissionReport {
	sellers := make(map[string]*domain.SellerSummary)
	seenSales := make(map[string]map[string]bool)
	months := make(map[time.Time]*domain.MonthSummary)

	totals := domain.ReportTotals{
		RevenueBySaleDate:    decimal.Zero,
		ReceivedByCompetence: decimal.Zero,
		PendingByCompetence:  decimal.Zero,
		OverdueByCompetence:  decimal.Zero,
		CommissionTotal:      decimal.Zero,
	}

	for _, d := range details {
		if !matchesDetail(d, filters) {
			continue
		}

		summary, ok := sellers[d.SellerID]
		if !ok {
			summary = newSellerSummary(d.SellerID, d.SellerName)
			sellers[d.SellerID] = summary
			seenSales[d.SellerID] = make(map[string]bool)
		}

		if !seenSales[d.SellerID][d.SaleID] {
			seenSales[d.SellerID][d.SaleID] = true
			summary.SalesCount++
			summary.Revenue = summary.Revenue.Add(d.SaleTotalValue)
		}

		switch d.CommissionStatus {
		case domain.CommissionStatusReleased:
			summary.CommissionReleased = summary.CommissionReleased.Add(d.CommissionValue)
		case domain.CommissionStatusPending:
			summary.CommissionPending = summary.CommissionPending.Add(d.CommissionValue)
		case domain.CommissionStatusSuspended:
			summary.CommissionSuspended = summary.CommissionSuspended.Add(d.CommissionValue)
		}

		month := MonthStart(d.CompetenceMonth)
		monthSummary, ok := months[month]
		if !ok {
			monthSummary = &domain.MonthSummary{
				CompetenceMonth:  month,
				CommissionTotal:  decimal.Zero,
				InstallmentTotal: decimal.Zero,
				ReceivedValue:    decimal.Zero,
			}
			months[month] = monthSummary
		}
		monthSummary.CommissionTotal = monthSummary.CommissionTotal.Add(d.CommissionValue)
		monthSummary.InstallmentTotal = monthSummary.InstallmentTotal.Add(d.InstallmentValue)
		totals.CommissionTotal = totals.CommissionTotal.Add(d.CommissionValue)

		switch d.InstallmentStatus {
		case domain.InstallmentStatusPaid:
			summary.InstallmentsPaid++
			summary.ReceivedValue = summary.ReceivedValue.Add(d.InstallmentValue)
			monthSummary.ReceivedValue = monthSummary.ReceivedValue.Add(d.InstallmentValue)
			totals.ReceivedByCompetence = totals.ReceivedByCompetence.Add(d.InstallmentValue)
		case domain.InstallmentStatusPending:
			summary.InstallmentsPending++
			summary.PendingValue = summary.PendingValue.Add(d.InstallmentValue)
			totals.PendingByCompetence = totals.PendingByCompetence.Add(d.InstallmentValue)
		case domain.InstallmentStatusOverdue:
			summary.InstallmentsOverdue++
			summary.OverdueValue = summary.OverdueValue.Add(d.InstallmentValue)
			totals.OverdueByCompetence = totals.OverdueByCompetence.Add(d.InstallmentValue)
		}
	}

	for _, s := range sales {
		if !matchesSale(s, filters) {
			continue
		}
		totals.SalesBySaleDate++
		totals.RevenueBySaleDate = totals.RevenueBySaleDate.Add(s.TotalValue)
	}

	report := &domain.CommissionReport{
		Sellers: make([]*domain.SellerSummary, 0, len(sellers)),
		Months:  make([]*domain.MonthSummary, 0, len(months)),
		Totals:  totals,
		Filters: filters,
	}

	for _, summary := range sellers {
		report.Sellers = append(report.Sellers, summary)
	}
	sort.Slice(report.Sellers, func(i, j int) bool {
		a, b := report.Sellers[i], report.Sellers[j]
		// sem vendedor sempre por último
		if (a.SellerID == "") != (b.SellerID == "") {
			return b.SellerID == ""
		}
		nameA, nameB := strings.ToLower(a.SellerName), strings.ToLower(b.SellerName)
		if nameA != nameB {
			return nameA < nameB
		}
		return a.SellerID < b.SellerID
	})

	for _, m := range months {
		report.Months = append(report.Months, m)
	}
	sort.Slice(report.Months, func(i, j int) bool {
		return report.Months[i].CompetenceMonth.Before(report.Months[j].CompetenceMonth)
	})

	return report
}

package reporting

import (
	"sort"
	"strings"

	"github.com/vfg2006/sales-commission-api/internal/domain"
)

type detailLess func(a, b *domain.CommissionDetail) bool

var sortColumns = map[string]detailLess{
	"external_id":        func(a, b *domain.CommissionDetail) bool { return a.ExternalID < b.ExternalID },
	"client_name":        func(a, b *domain.CommissionDetail) bool { return foldLess(a.ClientName, b.ClientName) },
	"product_name":       func(a, b *domain.CommissionDetail) bool { return foldLess(a.ProductName, b.ProductName) },
	"seller_name":        func(a, b *domain.CommissionDetail) bool { return foldLess(a.SellerName, b.SellerName) },
	"platform":           func(a, b *domain.CommissionDetail) bool { return a.Platform < b.Platform },
	"sale_date":          func(a, b *domain.CommissionDetail) bool { return a.SaleDate.Before(b.SaleDate) },
	"due_date":           func(a, b *domain.CommissionDetail) bool { return a.DueDate.Before(b.DueDate) },
	"competence_month":   func(a, b *domain.CommissionDetail) bool { return a.CompetenceMonth.Before(b.CompetenceMonth) },
	"installment_number": func(a, b *domain.CommissionDetail) bool { return a.InstallmentNumber < b.InstallmentNumber },
	"installment_value":  func(a, b *domain.CommissionDetail) bool { return a.InstallmentValue.LessThan(b.InstallmentValue) },
	"installment_status": func(a, b *domain.CommissionDetail) bool { return a.InstallmentStatus < b.InstallmentStatus },
	"commission_percent": func(a, b *domain.CommissionDetail) bool { return a.CommissionPercent.LessThan(b.CommissionPercent) },
	"commission_value":   func(a, b *domain.CommissionDetail) bool { return a.CommissionValue.LessThan(b.CommissionValue) },
	"commission_status":  func(a, b *domain.CommissionDetail) bool { return a.CommissionStatus < b.CommissionStatus },
	"sale_total_value":   func(a, b *domain.CommissionDetail) bool { return a.SaleTotalValue.LessThan(b.SaleTotalValue) },
}

func foldLess(a, b string) bool {
	return strings.ToLower(a) < strings.ToLower(b)
}

// IsSortColumn indica se a coluna pode ser usada na ordenação dos detalhes
func IsSortColumn(column string) bool {
	_, ok := sortColumns[column]
	return ok
}

// SortDetails ordena de forma estável por uma única coluna. Empates mantêm a ordem de entrada
// e coluna desconhecida não altera nada.
func SortDetails(rows []*domain.CommissionDetail, column string, desc bool) {
	less, ok := sortColumns[column]
	if !ok {
		return
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if desc {
			return less(rows[j], rows[i])
		}
		return less(rows[i], rows[j])
	})
}

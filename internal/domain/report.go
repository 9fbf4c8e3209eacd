package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type ReportFilters struct {
	StartMonth time.Time `json:"start_month"`
	EndMonth   time.Time `json:"end_month"`
	Platform   *Platform `json:"platform,omitempty"`
	SellerID   *string   `json:"seller_id,omitempty"`
	Product    *string   `json:"product,omitempty"`
}

type SellerSummary struct {
	SellerID            string          `json:"seller_id"`
	SellerName          string          `json:"seller_name"`
	SalesCount          int             `json:"sales_count"`
	Revenue             decimal.Decimal `json:"revenue"`
	CommissionReleased  decimal.Decimal `json:"commission_released"`
	CommissionPending   decimal.Decimal `json:"commission_pending"`
	CommissionSuspended decimal.Decimal `json:"commission_suspended"`
	InstallmentsPaid    int             `json:"installments_paid"`
	InstallmentsPending int             `json:"installments_pending"`
	InstallmentsOverdue int             `json:"installments_overdue"`
	ReceivedValue       decimal.Decimal `json:"received_value"`
	PendingValue        decimal.Decimal `json:"pending_value"`
	OverdueValue        decimal.Decimal `json:"overdue_value"`
}

type MonthSummary struct {
	CompetenceMonth  time.Time       `json:"competence_month"`
	CommissionTotal  decimal.Decimal `json:"commission_total"`
	InstallmentTotal decimal.Decimal `json:"installment_total"`
	ReceivedValue    decimal.Decimal `json:"received_value"`
}

// ReportTotals mantém as duas bases separadas: receita por data da venda e valores por competência
type ReportTotals struct {
	RevenueBySaleDate    decimal.Decimal `json:"revenue_by_sale_date"`
	SalesBySaleDate      int             `json:"sales_by_sale_date"`
	ReceivedByCompetence decimal.Decimal `json:"received_by_competence"`
	PendingByCompetence  decimal.Decimal `json:"pending_by_competence"`
	OverdueByCompetence  decimal.Decimal `json:"overdue_by_competence"`
	CommissionTotal      decimal.Decimal `json:"commission_total"`
}

type CommissionReport struct {
	Sellers []*SellerSummary `json:"sellers"`
	Months  []*MonthSummary  `json:"months"`
	Totals  ReportTotals     `json:"totals"`
	Filters ReportFilters    `json:"filters"`
}

// ExportFile é um arquivo gerado para download
type ExportFile struct {
	Filename    string
	ContentType string
	Content     []byte
}

package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type CommissionStatus string

const (
	CommissionStatusPending   CommissionStatus = "pending"
	CommissionStatusReleased  CommissionStatus = "released"
	CommissionStatusSuspended CommissionStatus = "suspended"
	CommissionStatusCancelled CommissionStatus = "cancelled"
)

func (s CommissionStatus) IsValid() bool {
	switch s {
	case CommissionStatusPending, CommissionStatusReleased, CommissionStatusSuspended, CommissionStatusCancelled:
		return true
	}
	return false
}

type Commission struct {
	ID                string           `json:"id"`
	InstallmentID     string           `json:"installment_id"`
	SaleID            string           `json:"sale_id"`
	SellerID          *string          `json:"seller_id,omitempty"`
	CommissionPercent decimal.Decimal  `json:"commission_percent"`
	CommissionValue   decimal.Decimal  `json:"commission_value"`
	CompetenceMonth   time.Time        `json:"competence_month"`
	Status            CommissionStatus `json:"status"`
	CreatedAt         time.Time        `json:"created_at"`
	UpdatedAt         time.Time        `json:"updated_at"`
}

// PendingCommission é uma comissão pendente junto ao valor da parcela de origem,
// usada para recalcular o valor quando o percentual muda
type PendingCommission struct {
	Commission       *Commission
	InstallmentValue decimal.Decimal
}

// CommissionDetail é a linha achatada comissão + parcela + venda + vendedor
type CommissionDetail struct {
	CommissionID      string            `json:"commission_id"`
	SaleID            string            `json:"sale_id"`
	ExternalID        string            `json:"external_id"`
	ClientName        string            `json:"client_name"`
	ProductName       string            `json:"product_name"`
	Platform          Platform          `json:"platform"`
	SaleTotalValue    decimal.Decimal   `json:"sale_total_value"`
	SaleDate          time.Time         `json:"sale_date"`
	SellerID          string            `json:"seller_id"`
	SellerName        string            `json:"seller_name"`
	InstallmentNumber int               `json:"installment_number"`
	TotalInstallments int               `json:"total_installments"`
	InstallmentValue  decimal.Decimal   `json:"installment_value"`
	DueDate           time.Time         `json:"due_date"`
	InstallmentStatus InstallmentStatus `json:"installment_status"`
	CommissionPercent decimal.Decimal   `json:"commission_percent"`
	CommissionValue   decimal.Decimal   `json:"commission_value"`
	CompetenceMonth   time.Time         `json:"competence_month"`
	CommissionStatus  CommissionStatus  `json:"commission_status"`
}

type UpdateCommissionStatusRequest struct {
	CommissionIDs []string         `json:"commission_ids"`
	Status        CommissionStatus `json:"status"`
}

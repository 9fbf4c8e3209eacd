package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type InstallmentStatus string

const (
	InstallmentStatusPending   InstallmentStatus = "pending"
	InstallmentStatusPaid      InstallmentStatus = "paid"
	InstallmentStatusOverdue   InstallmentStatus = "overdue"
	InstallmentStatusCancelled InstallmentStatus = "cancelled"
	InstallmentStatusRefunded  InstallmentStatus = "refunded"
)

type Installment struct {
	ID                string            `json:"id"`
	SaleID            string            `json:"sale_id"`
	InstallmentNumber int               `json:"installment_number"`
	TotalInstallments int               `json:"total_installments"`
	Value             decimal.Decimal   `json:"value"`
	DueDate           time.Time         `json:"due_date"`
	Status            InstallmentStatus `json:"status"`
	PaidAt            *time.Time        `json:"paid_at,omitempty"`
	CreatedAt         time.Time         `json:"created_at"`
	UpdatedAt         time.Time         `json:"updated_at"`
}

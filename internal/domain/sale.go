package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Platform string

const (
	PlatformManual  Platform = "manual"
	PlatformHotmart Platform = "hotmart"
	PlatformAsaas   Platform = "asaas"
)

func (p Platform) IsValid() bool {
	switch p {
	case PlatformManual, PlatformHotmart, PlatformAsaas:
		return true
	}
	return false
}

type SaleStatus string

const (
	SaleStatusActive    SaleStatus = "active"
	SaleStatusCancelled SaleStatus = "cancelled"
)

func (s SaleStatus) IsValid() bool {
	return s == SaleStatusActive || s == SaleStatusCancelled
}

type Sale struct {
	ID                string          `json:"id"`
	ExternalID        string          `json:"external_id"`
	ClientName        string          `json:"client_name"`
	ClientEmail       *string         `json:"client_email,omitempty"`
	ClientPhone       *string         `json:"client_phone,omitempty"`
	ProductName       string          `json:"product_name"`
	TotalValue        decimal.Decimal `json:"total_value"`
	InstallmentsCount int             `json:"installments_count"`
	SaleDate          time.Time       `json:"sale_date"`
	Platform          Platform        `json:"platform"`
	SellerID          *string         `json:"seller_id,omitempty"`
	CommissionPercent decimal.Decimal `json:"commission_percent"`
	Status            SaleStatus      `json:"status"`
	UTMSource         *string         `json:"utm_source,omitempty"`
	UTMMedium         *string         `json:"utm_medium,omitempty"`
	UTMCampaign       *string         `json:"utm_campaign,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// SaleImportUpdate contém os campos que uma reimportação pode sobrescrever
type SaleImportUpdate struct {
	ClientName        string
	ClientEmail       *string
	ClientPhone       *string
	ProductName       string
	TotalValue        decimal.Decimal
	InstallmentsCount int
}

type SaleFilters struct {
	Platform  *Platform
	SellerID  *string
	Status    *SaleStatus
	Search    string
	StartDate *time.Time
	EndDate   *time.Time
	Limit     uint64
	Offset    uint64
}

type SaleDetail struct {
	Sale         *Sale          `json:"sale"`
	Installments []*Installment `json:"installments"`
	Commissions  []*Commission  `json:"commissions"`
}

type CreateSaleRequest struct {
	ExternalID        string           `json:"external_id"`
	ClientName        string           `json:"client_name"`
	ClientEmail       *string          `json:"client_email"`
	ClientPhone       *string          `json:"client_phone"`
	ProductName       string           `json:"product_name"`
	TotalValue        decimal.Decimal  `json:"total_value"`
	InstallmentsCount int              `json:"installments_count"`
	SaleDate          *time.Time       `json:"sale_date"`
	Platform          Platform         `json:"platform"`
	SellerID          *string          `json:"seller_id"`
	CommissionPercent *decimal.Decimal `json:"commission_percent"`
	UTMSource         *string          `json:"utm_source"`
	UTMMedium         *string          `json:"utm_medium"`
	UTMCampaign       *string          `json:"utm_campaign"`
}

type BulkAction string

const (
	BulkActionActivate       BulkAction = "activate"
	BulkActionCancel         BulkAction = "cancel"
	BulkActionReassignSeller BulkAction = "reassign_seller"
	BulkActionDelete         BulkAction = "delete"
)

func (a BulkAction) IsValid() bool {
	switch a {
	case BulkActionActivate, BulkActionCancel, BulkActionReassignSeller, BulkActionDelete:
		return true
	}
	return false
}

type BulkActionRequest struct {
	Action            BulkAction       `json:"action"`
	SaleIDs           []string         `json:"sale_ids"`
	SellerID          *string          `json:"seller_id"`
	CommissionPercent *decimal.Decimal `json:"commission_percent"`
}

type BulkActionResult struct {
	Action   BulkAction `json:"action"`
	Affected int        `json:"affected"`
}

package platformdomain

import (
	"time"

	"github.com/shopspring/decimal"
)

type LookupRequest struct {
	TransactionID string `json:"transaction_id"`
}

type SyncRequest struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// LookupResponse segue o formato devolvido pelas funções de consulta; só o primeiro item do resumo é usado
type LookupResponse struct {
	Summary *Summary `json:"summary,omitempty"`
}

type Summary struct {
	Items []Item `json:"items,omitempty"`
}

type Item struct {
	Buyer    *Buyer    `json:"buyer,omitempty"`
	Product  *Product  `json:"product,omitempty"`
	Purchase *Purchase `json:"purchase,omitempty"`
}

type Buyer struct {
	Name          string `json:"name,omitempty"`
	Email         string `json:"email,omitempty"`
	Phone         string `json:"phone,omitempty"`
	CheckoutPhone string `json:"checkout_phone,omitempty"`
}

type Product struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name,omitempty"`
}

type Purchase struct {
	Transaction string   `json:"transaction,omitempty"`
	OrderDate   int64    `json:"order_date,omitempty"` // epoch em milissegundos
	Status      string   `json:"status,omitempty"`
	Price       *Price   `json:"price,omitempty"`
	Payment     *Payment `json:"payment,omitempty"`
}

type Price struct {
	Value    decimal.Decimal `json:"value"`
	Currency string          `json:"currency_value,omitempty"`
}

type Payment struct {
	Type               string `json:"type,omitempty"`
	InstallmentsNumber int    `json:"installments_number,omitempty"`
}

type SyncResponse struct {
	Success *bool `json:"success,omitempty"`
	Created *int  `json:"created,omitempty"`
	Updated *int  `json:"updated,omitempty"`
}

// Transaction é a venda encontrada na plataforma, já no formato usado para preencher o cadastro manual
type Transaction struct {
	TransactionID     string          `json:"transaction_id"`
	ClientName        string          `json:"client_name"`
	ClientEmail       string          `json:"client_email,omitempty"`
	ClientPhone       string          `json:"client_phone,omitempty"`
	ProductName       string          `json:"product_name"`
	TotalValue        decimal.Decimal `json:"total_value"`
	InstallmentsCount int             `json:"installments_count"`
	SaleDate          *time.Time      `json:"sale_date,omitempty"`
}

type SyncResult struct {
	Platform string `json:"platform"`
	Success  bool   `json:"success"`
	Created  int    `json:"created"`
	Updated  int    `json:"updated"`
}

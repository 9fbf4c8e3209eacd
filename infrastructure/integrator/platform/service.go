package platform

import (
	"context"
	"errors"
	"strings"
	"time"

	platformdomain "github.com/vfg2006/sales-commission-api/infrastructure/integrator/platform/domain"
	"github.com/vfg2006/sales-commission-api/infrastructure/integrator/platform/platformclient"
	"github.com/vfg2006/sales-commission-api/internal/domain"
)

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

// PlatformIntegrator consulta as funções remotas das plataformas de venda.
// Resposta sem os campos esperados é tratada como ausência de dados (nil, nil).
type PlatformIntegrator interface {
	LookupTransaction(ctx context.Context, platform domain.Platform, transactionID string) (*platformdomain.Transaction, error)
	SyncTransactions(ctx context.Context, platform domain.Platform, start, end time.Time) (*platformdomain.SyncResult, error)
}

type PlatformService struct {
	Client platformclient.Client
}

func New(client platformclient.Client) PlatformIntegrator {
	return &PlatformService{
		Client: client,
	}
}

func (s *PlatformService) LookupTransaction(ctx context.Context, platform domain.Platform, transactionID string) (*platformdomain.Transaction, error) {
	resp, err := s.Client.LookupTransaction(ctx, string(platform), platformdomain.LookupRequest{
		TransactionID: strings.TrimSpace(transactionID),
	})
	if err != nil {
		if errors.Is(err, platformclient.ErrUnexpectedResponse) {
			return nil, nil
		}
		return nil, err
	}

	return ToTransaction(resp), nil
}

func (s *PlatformService) SyncTransactions(ctx context.Context, platform domain.Platform, start, end time.Time) (*platformdomain.SyncResult, error) {
	resp, err := s.Client.Sync(ctx, string(platform), platformdomain.SyncRequest{
		StartDate: start.Format(time.DateOnly),
		EndDate:   end.Format(time.DateOnly),
	})
	if err != nil {
		if errors.Is(err, platformclient.ErrUnexpectedResponse) {
			return nil, nil
		}
		return nil, err
	}

	if resp == nil || resp.Success == nil || resp.Created == nil || resp.Updated == nil {
		return nil, nil
	}

	return &platformdomain.SyncResult{
		Platform: string(platform),
		Success:  *resp.Success,
		Created:  *resp.Created,
		Updated:  *resp.Updated,
	}, nil
}

// ToTransaction lê apenas summary.items[0]; qualquer outro formato vira nil
func ToTransaction(resp *platformdomain.LookupResponse) *platformdomain.Transaction {
	if resp == nil || resp.Summary == nil || len(resp.Summary.Items) == 0 {
		return nil
	}

	item := resp.Summary.Items[0]
	if item.Buyer == nil || item.Product == nil || item.Purchase == nil {
		return nil
	}

	transaction := &platformdomain.Transaction{
		TransactionID:     item.Purchase.Transaction,
		ClientName:        strings.TrimSpace(item.Buyer.Name),
		ClientEmail:       strings.TrimSpace(item.Buyer.Email),
		ClientPhone:       strings.TrimSpace(item.Buyer.Phone),
		ProductName:       strings.TrimSpace(item.Product.Name),
		InstallmentsCount: 1,
	}

	if transaction.ClientPhone == "" {
		transaction.ClientPhone = strings.TrimSpace(item.Buyer.CheckoutPhone)
	}

	if item.Purchase.Price != nil {
		transaction.TotalValue = item.Purchase.Price.Value.Round(2)
	}

	if item.Purchase.Payment != nil && item.Purchase.Payment.InstallmentsNumber > 1 {
		transaction.InstallmentsCount = item.Purchase.Payment.InstallmentsNumber
	}

	if item.Purchase.OrderDate > 0 {
		orderDate := time.UnixMilli(item.Purchase.OrderDate).UTC()
		saleDate := time.Date(orderDate.Year(), orderDate.Month(), orderDate.Day(), 0, 0, 0, 0, time.UTC)
		transaction.SaleDate = &saleDate
	}

	return transaction
}

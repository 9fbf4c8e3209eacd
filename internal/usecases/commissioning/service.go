package commissioning

import (
	"context"
	"database/sql"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-commission-api/infrastructure/database"
	"github.com/vfg2006/sales-commission-api/infrastructure/repository"
	"github.com/vfg2006/sales-commission-api/internal/domain"
	"github.com/vfg2006/sales-commission-api/pkg/apiErrors"
)

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

type CommissioningService interface {
	CreateSale(ctx context.Context, sale *domain.Sale) (*domain.SaleDetail, error)
	ReassignSeller(ctx context.Context, saleIDs []string, sellerID string, percent *decimal.Decimal) (int64, error)
	ReassignSellerTx(ctx context.Context, tx *sql.Tx, saleIDs []string, sellerID string, percent *decimal.Decimal) (int64, error)
	UpdateStatus(ctx context.Context, request *domain.UpdateCommissionStatusRequest) (int64, error)
}

type Service struct {
	transactor            database.Transactor
	saleRepository        repository.SaleRepository
	installmentRepository repository.InstallmentRepository
	commissionRepository  repository.CommissionRepository
	now                   func() time.Time
}

func NewService(
	transactor database.Transactor,
	saleRepository repository.SaleRepository,
	installmentRepository repository.InstallmentRepository,
	commissionRepository repository.CommissionRepository,
) *Service {
	return &Service{
		transactor:            transactor,
		saleRepository:        saleRepository,
		installmentRepository: installmentRepository,
		commissionRepository:  commissionRepository,
		now:                   func() time.Time { return time.Now().UTC() },
	}
}

// CreateSale grava a venda com suas parcelas e comissões em uma única transação.
// Erros são devolvidos sem código de API para que o chamador decida como reportá-los.
func (s *Service) CreateSale(ctx context.Context, sale *domain.Sale) (*domain.SaleDetail, error) {
	now := s.now()
	if sale.CreatedAt.IsZero() {
		sale.CreatedAt = now
	}
	sale.UpdatedAt = sale.CreatedAt

	installments := GenerateInstallments(sale, now)
	commissions := GenerateCommissions(sale, installments, now)

	err := s.transactor.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if err := s.saleRepository.WithTx(tx).Create(ctx, sale); err != nil {
			return errors.Wrap(err, "erro ao criar venda")
		}
		if err := s.installmentRepository.WithTx(tx).CreateBatch(ctx, installments); err != nil {
			return errors.Wrap(err, "erro ao criar parcelas")
		}
		if err := s.commissionRepository.WithTx(tx).CreateBatch(ctx, commissions); err != nil {
			return errors.Wrap(err, "erro ao criar comissões")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &domain.SaleDetail{
		Sale:         sale,
		Installments: installments,
		Commissions:  commissions,
	}, nil
}

func validateReassign(saleIDs []string, sellerID string, percent *decimal.Decimal) error {
	if len(saleIDs) == 0 {
		return NewCommissionError(ErrSaleIDsRequired, apiErrors.ErrMissingRequiredData, "Selecione ao menos uma venda")
	}
	if sellerID == "" {
		return NewCommissionError(ErrSellerRequired, apiErrors.ErrMissingRequiredData, "Informe o novo vendedor")
	}
	if percent != nil && !ValidPercent(*percent) {
		return NewCommissionError(ErrInvalidPercent, apiErrors.ErrInvalidFormat, "Percentual de comissão deve estar entre 0 e 100")
	}
	return nil
}

// ReassignSeller troca o vendedor das vendas em uma transação própria
func (s *Service) ReassignSeller(ctx context.Context, saleIDs []string, sellerID string, percent *decimal.Decimal) (int64, error) {
	if err := validateReassign(saleIDs, sellerID, percent); err != nil {
		return 0, err
	}

	var affected int64
	err := s.transactor.RunInTransaction(ctx, func(tx *sql.Tx) error {
		var err error
		affected, err = s.reassign(ctx, tx, saleIDs, sellerID, percent)
		return err
	})
	if err != nil {
		logrus.WithError(err).WithField("sale_ids", saleIDs).Error("Erro ao reatribuir vendedor")
		return 0, NewCommissionError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao reatribuir vendedor das vendas")
	}

	return affected, nil
}

// ReassignSellerTx executa a troca de vendedor dentro de uma transação já aberta
func (s *Service) ReassignSellerTx(ctx context.Context, tx *sql.Tx, saleIDs []string, sellerID string, percent *decimal.Decimal) (int64, error) {
	if err := validateReassign(saleIDs, sellerID, percent); err != nil {
		return 0, err
	}

	return s.reassign(ctx, tx, saleIDs, sellerID, percent)
}

// reassign atualiza as vendas e somente as comissões pendentes. Sem novo percentual
// o valor da comissão é mantido.
func (s *Service) reassign(ctx context.Context, tx *sql.Tx, saleIDs []string, sellerID string, percent *decimal.Decimal) (int64, error) {
	now := s.now()
	sales := s.saleRepository.WithTx(tx)
	commissions := s.commissionRepository.WithTx(tx)

	affected, err := sales.UpdateSeller(ctx, saleIDs, sellerID, percent, now)
	if err != nil {
		return 0, errors.Wrap(err, "erro ao atualizar vendedor das vendas")
	}

	pending, err := commissions.ListPendingBySaleIDs(ctx, saleIDs)
	if err != nil {
		return 0, errors.Wrap(err, "erro ao buscar comissões pendentes")
	}

	for _, p := range pending {
		newPercent := p.Commission.CommissionPercent
		newValue := p.Commission.CommissionValue
		if percent != nil {
			newPercent = *percent
			newValue = CommissionValue(p.InstallmentValue, newPercent)
		}

		if err := commissions.UpdateAssignment(ctx, p.Commission.ID, sellerID, newPercent, newValue, now); err != nil {
			return 0, errors.Wrapf(err, "erro ao atualizar comissão %s", p.Commission.ID)
		}
	}

	logrus.WithFields(logrus.Fields{
		"seller_id":           sellerID,
		"sales":               affected,
		"pending_commissions": len(pending),
	}).Info("Vendedor reatribuído")

	return affected, nil
}

// UpdateStatus libera, suspende ou volta comissões para pendente. Canceladas não mudam.
func (s *Service) UpdateStatus(ctx context.Context, request *domain.UpdateCommissionStatusRequest) (int64, error) {
	if request == nil || len(request.CommissionIDs) == 0 {
		return 0, NewCommissionError(ErrCommissionIDsRequired, apiErrors.ErrMissingRequiredData, "Selecione ao menos uma comissão")
	}
	if !request.Status.IsValid() || request.Status == domain.CommissionStatusCancelled {
		return 0, NewCommissionError(ErrInvalidStatus, apiErrors.ErrInvalidFormat, "Status de comissão inválido")
	}

	affected, err := s.commissionRepository.UpdateStatus(ctx, request.CommissionIDs, request.Status, s.now())
	if err != nil {
		logrus.WithError(err).Error("Erro ao atualizar status das comissões")
		return 0, NewCommissionError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao atualizar status das comissões")
	}

	return affected, nil
}

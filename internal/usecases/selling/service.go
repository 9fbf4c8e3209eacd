package selling

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-commission-api/infrastructure/database"
	"github.com/vfg2006/sales-commission-api/infrastructure/integrator/platform"
	platformdomain "github.com/vfg2006/sales-commission-api/infrastructure/integrator/platform/domain"
	"github.com/vfg2006/sales-commission-api/infrastructure/repository"
	"github.com/vfg2006/sales-commission-api/internal/domain"
	"github.com/vfg2006/sales-commission-api/internal/usecases/commissioning"
	"github.com/vfg2006/sales-commission-api/pkg/apiErrors"
	"github.com/vfg2006/sales-commission-api/pkg/utils"
)

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

const manualExternalIDPrefix = "MANUAL-"

type SellingService interface {
	List(ctx context.Context, filters domain.SaleFilters) ([]*domain.Sale, error)
	Get(ctx context.Context, id string) (*domain.SaleDetail, error)
	Create(ctx context.Context, request *domain.CreateSaleRequest) (*domain.SaleDetail, error)
	Lookup(ctx context.Context, platformName domain.Platform, transactionID string) (*platformdomain.Transaction, error)
	BulkAction(ctx context.Context, request *domain.BulkActionRequest) (*domain.BulkActionResult, error)
}

type Service struct {
	transactor            database.Transactor
	saleCreator           commissioning.CommissioningService
	saleRepository        repository.SaleRepository
	installmentRepository repository.InstallmentRepository
	commissionRepository  repository.CommissionRepository
	platformIntegrator    platform.PlatformIntegrator
	now                   func() time.Time
}

func NewService(
	transactor database.Transactor,
	saleCreator commissioning.CommissioningService,
	saleRepository repository.SaleRepository,
	installmentRepository repository.InstallmentRepository,
	commissionRepository repository.CommissionRepository,
	platformIntegrator platform.PlatformIntegrator,
) *Service {
	return &Service{
		transactor:            transactor,
		saleCreator:           saleCreator,
		saleRepository:        saleRepository,
		installmentRepository: installmentRepository,
		commissionRepository:  commissionRepository,
		platformIntegrator:    platformIntegrator,
		now:                   func() time.Time { return time.Now().UTC() },
	}
}

func (s *Service) List(ctx context.Context, filters domain.SaleFilters) ([]*domain.Sale, error) {
	if filters.Platform != nil && !filters.Platform.IsValid() {
		return nil, NewSaleError(ErrInvalidPlatform, apiErrors.ErrInvalidFormat, "Plataforma inválida")
	}

	sales, err := s.saleRepository.List(ctx, filters)
	if err != nil {
		logrus.WithError(err).Error("Erro ao listar vendas")
		return nil, NewSaleError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao listar vendas")
	}

	return sales, nil
}

// Get devolve a venda com parcelas e comissões
func (s *Service) Get(ctx context.Context, id string) (*domain.SaleDetail, error) {
	if strings.TrimSpace(id) == "" {
		return nil, NewSaleError(ErrSaleIDRequired, apiErrors.ErrMissingRequiredData, "ID da venda é obrigatório")
	}

	sale, err := s.saleRepository.GetByID(ctx, id)
	if err != nil {
		logrus.WithError(err).WithField("sale_id", id).Error("Erro ao buscar venda")
		return nil, NewSaleError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao buscar venda")
	}
	if sale == nil {
		return nil, NewSaleError(ErrSaleNotFound, apiErrors.ErrNotFound, "Venda não encontrada")
	}

	installments, err := s.installmentRepository.ListBySaleIDs(ctx, []string{id})
	if err != nil {
		logrus.WithError(err).WithField("sale_id", id).Error("Erro ao buscar parcelas")
		return nil, NewSaleError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao buscar parcelas da venda")
	}

	commissions, err := s.commissionRepository.ListBySaleIDs(ctx, []string{id})
	if err != nil {
		logrus.WithError(err).WithField("sale_id", id).Error("Erro ao buscar comissões")
		return nil, NewSaleError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao buscar comissões da venda")
	}

	return &domain.SaleDetail{
		Sale:         sale,
		Installments: installments,
		Commissions:  commissions,
	}, nil
}

func validateCreate(request *domain.CreateSaleRequest) error {
	if request == nil || strings.TrimSpace(request.ClientName) == "" {
		return NewSaleError(ErrClientNameRequired, apiErrors.ErrMissingRequiredData, "Nome do cliente é obrigatório")
	}
	if !request.TotalValue.IsPositive() {
		return NewSaleError(ErrInvalidTotalValue, apiErrors.ErrInvalidFormat, "Valor total deve ser maior que zero")
	}
	if request.InstallmentsCount < 0 {
		return NewSaleError(ErrInvalidInstallments, apiErrors.ErrInvalidFormat, "Quantidade de parcelas inválida")
	}
	if request.Platform != "" && !request.Platform.IsValid() {
		return NewSaleError(ErrInvalidPlatform, apiErrors.ErrInvalidFormat, "Plataforma inválida")
	}
	if request.CommissionPercent != nil && !commissioning.ValidPercent(*request.CommissionPercent) {
		return NewSaleError(ErrInvalidPercent, apiErrors.ErrInvalidFormat, "Percentual de comissão deve estar entre 0 e 100")
	}
	return nil
}

// Create cadastra uma venda manual. Sem identificador externo é gerado um MANUAL-<id>.
func (s *Service) Create(ctx context.Context, request *domain.CreateSaleRequest) (*domain.SaleDetail, error) {
	if err := validateCreate(request); err != nil {
		return nil, err
	}

	externalID := strings.TrimSpace(request.ExternalID)
	if externalID == "" {
		id, err := utils.ShortID(manualExternalIDPrefix)
		if err != nil {
			logrus.WithError(err).Error("Erro ao gerar identificador da venda manual")
			return nil, NewSaleError(ErrDatabaseOperation, apiErrors.ErrInternalServer, "Falha ao gerar identificador da venda")
		}
		externalID = id
	} else {
		existing, err := s.saleRepository.GetByExternalID(ctx, externalID)
		if err != nil {
			logrus.WithError(err).WithField("external_id", externalID).Error("Erro ao verificar identificador externo")
			return nil, NewSaleError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao verificar identificador externo")
		}
		if existing != nil {
			return nil, NewSaleError(ErrDuplicateExternalID, apiErrors.ErrConflict, "Já existe uma venda com este identificador")
		}
	}

	now := s.now()
	saleDate := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if request.SaleDate != nil && !request.SaleDate.IsZero() {
		d := request.SaleDate.UTC()
		saleDate = time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
	}

	platformName := request.Platform
	if platformName == "" {
		platformName = domain.PlatformManual
	}

	installmentsCount := request.InstallmentsCount
	if installmentsCount < 1 {
		installmentsCount = 1
	}

	percent := decimal.Zero
	if request.CommissionPercent != nil {
		percent = *request.CommissionPercent
	}

	productName := strings.TrimSpace(request.ProductName)
	if productName == "" {
		productName = "Produto"
	}

	sale := &domain.Sale{
		ID:                uuid.NewString(),
		ExternalID:        externalID,
		ClientName:        strings.TrimSpace(request.ClientName),
		ClientEmail:       trimOptional(request.ClientEmail),
		ClientPhone:       trimOptional(request.ClientPhone),
		ProductName:       productName,
		TotalValue:        request.TotalValue.Round(2),
		InstallmentsCount: installmentsCount,
		SaleDate:          saleDate,
		Platform:          platformName,
		SellerID:          trimOptional(request.SellerID),
		CommissionPercent: percent,
		Status:            domain.SaleStatusActive,
		UTMSource:         trimOptional(request.UTMSource),
		UTMMedium:         trimOptional(request.UTMMedium),
		UTMCampaign:       trimOptional(request.UTMCampaign),
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	detail, err := s.saleCreator.CreateSale(ctx, sale)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateExternalID) {
			return nil, NewSaleError(ErrDuplicateExternalID, apiErrors.ErrConflict, "Já existe uma venda com este identificador")
		}
		logrus.WithError(err).WithField("external_id", externalID).Error("Erro ao criar venda manual")
		return nil, NewSaleError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao criar venda")
	}

	logrus.WithFields(logrus.Fields{
		"sale_id":      sale.ID,
		"external_id":  externalID,
		"platform":     platformName,
		"installments": installmentsCount,
	}).Info("Venda manual criada")

	return detail, nil
}

// Lookup busca a transação na plataforma para preencher o cadastro manual
func (s *Service) Lookup(ctx context.Context, platformName domain.Platform, transactionID string) (*platformdomain.Transaction, error) {
	if platformName != domain.PlatformHotmart && platformName != domain.PlatformAsaas {
		return nil, NewSaleError(ErrInvalidPlatform, apiErrors.ErrInvalidFormat, "Consulta disponível apenas para Hotmart e Asaas")
	}
	if strings.TrimSpace(transactionID) == "" {
		return nil, NewSaleError(ErrTransactionIDMissing, apiErrors.ErrMissingRequiredData, "Informe o código da transação")
	}

	transaction, err := s.platformIntegrator.LookupTransaction(ctx, platformName, transactionID)
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"platform":       platformName,
			"transaction_id": transactionID,
		}).Error("Erro ao consultar transação na plataforma")
		return nil, NewSaleError(ErrPlatformLookup, apiErrors.ErrExternalService, "Falha ao consultar a plataforma, tente novamente")
	}
	if transaction == nil {
		return nil, NewSaleError(ErrTransactionNotFound, apiErrors.ErrNotFound, "Transação não encontrada na plataforma")
	}

	return transaction, nil
}

func validateBulk(request *domain.BulkActionRequest) error {
	if request == nil || !request.Action.IsValid() {
		return NewSaleError(ErrInvalidAction, apiErrors.ErrInvalidFormat, "Ação em lote inválida")
	}
	if len(request.SaleIDs) == 0 {
		return NewSaleError(ErrSaleIDsRequired, apiErrors.ErrMissingRequiredData, "Selecione ao menos uma venda")
	}
	if request.Action == domain.BulkActionReassignSeller && (request.SellerID == nil || strings.TrimSpace(*request.SellerID) == "") {
		return NewSaleError(ErrSellerRequired, apiErrors.ErrMissingRequiredData, "Informe o novo vendedor")
	}
	return nil
}

// BulkAction aplica a ação às vendas selecionadas em uma única transação
func (s *Service) BulkAction(ctx context.Context, request *domain.BulkActionRequest) (*domain.BulkActionResult, error) {
	if err := validateBulk(request); err != nil {
		return nil, err
	}

	var affected int64
	err := s.transactor.RunInTransaction(ctx, func(tx *sql.Tx) error {
		var err error
		switch request.Action {
		case domain.BulkActionActivate:
			affected, err = s.saleRepository.WithTx(tx).UpdateStatus(ctx, request.SaleIDs, domain.SaleStatusActive, s.now())
		case domain.BulkActionCancel:
			affected, err = s.cancel(ctx, tx, request.SaleIDs)
		case domain.BulkActionReassignSeller:
			affected, err = s.saleCreator.ReassignSellerTx(ctx, tx, request.SaleIDs, strings.TrimSpace(*request.SellerID), request.CommissionPercent)
		case domain.BulkActionDelete:
			affected, err = s.delete(ctx, tx, request.SaleIDs)
		}
		return err
	})
	if err != nil {
		var coded apiErrors.CodedError
		if errors.As(err, &coded) {
			return nil, err
		}
		logrus.WithError(err).WithFields(logrus.Fields{
			"action":   request.Action,
			"sale_ids": request.SaleIDs,
		}).Error("Erro ao executar ação em lote")
		return nil, NewSaleError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao executar ação nas vendas selecionadas")
	}

	logrus.WithFields(logrus.Fields{
		"action":   request.Action,
		"affected": affected,
	}).Info("Ação em lote concluída")

	return &domain.BulkActionResult{
		Action:   request.Action,
		Affected: int(affected),
	}, nil
}

// cancel propaga o cancelamento para todas as parcelas e comissões das vendas selecionadas
func (s *Service) cancel(ctx context.Context, tx *sql.Tx, saleIDs []string) (int64, error) {
	now := s.now()

	affected, err := s.saleRepository.WithTx(tx).UpdateStatus(ctx, saleIDs, domain.SaleStatusCancelled, now)
	if err != nil {
		return 0, errors.Wrap(err, "erro ao cancelar vendas")
	}
	if _, err := s.installmentRepository.WithTx(tx).UpdateStatusBySaleIDs(ctx, saleIDs, domain.InstallmentStatusCancelled, now); err != nil {
		return 0, errors.Wrap(err, "erro ao cancelar parcelas")
	}
	if _, err := s.commissionRepository.WithTx(tx).UpdateStatusBySaleIDs(ctx, saleIDs, domain.CommissionStatusCancelled, now); err != nil {
		return 0, errors.Wrap(err, "erro ao cancelar comissões")
	}

	return affected, nil
}

func (s *Service) delete(ctx context.Context, tx *sql.Tx, saleIDs []string) (int64, error) {
	if _, err := s.commissionRepository.WithTx(tx).DeleteBySaleIDs(ctx, saleIDs); err != nil {
		return 0, errors.Wrap(err, "erro ao excluir comissões")
	}
	if _, err := s.installmentRepository.WithTx(tx).DeleteBySaleIDs(ctx, saleIDs); err != nil {
		return 0, errors.Wrap(err, "erro ao excluir parcelas")
	}

	affected, err := s.saleRepository.WithTx(tx).Delete(ctx, saleIDs)
	if err != nil {
		return 0, errors.Wrap(err, "erro ao excluir vendas")
	}

	return affected, nil
}

func trimOptional(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

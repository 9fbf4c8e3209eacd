package importing

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-commission-api/infrastructure/repository"
	"github.com/vfg2006/sales-commission-api/internal/config"
	"github.com/vfg2006/sales-commission-api/internal/domain"
	"github.com/vfg2006/sales-commission-api/internal/usecases/commissioning"
	"github.com/vfg2006/sales-commission-api/pkg/apiErrors"
)

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

const defaultSampleRows = 5

type ImportingService interface {
	Preview(ctx context.Context, filename string, data []byte) (*domain.ImportPreview, error)
	Import(ctx context.Context, filename string, data []byte, request *domain.ImportRequest) (*domain.ImportResult, error)
	Reconcile(ctx context.Context, rows [][]string, mapping domain.ColumnMapping, defaults domain.ImportDefaults) (*domain.ImportResult, error)
	ListLogs(ctx context.Context, limit uint64) ([]*domain.CsvImportLog, error)
	GetLog(ctx context.Context, id string) (*domain.CsvImportLog, error)
}

type Service struct {
	saleCreator         commissioning.CommissioningService
	saleRepository      repository.SaleRepository
	csvImportRepository repository.CsvImportRepository
	productRepository   repository.ProductRepository
	cfg                 config.Import
}

func NewService(
	saleCreator commissioning.CommissioningService,
	saleRepository repository.SaleRepository,
	csvImportRepository repository.CsvImportRepository,
	productRepository repository.ProductRepository,
	cfg config.Import,
) ImportingService {
	return &Service{
		saleCreator:         saleCreator,
		saleRepository:      saleRepository,
		csvImportRepository: csvImportRepository,
		productRepository:   productRepository,
		cfg:                 cfg,
	}
}

func (s *Service) decode(filename string, data []byte) (*DecodedUpload, error) {
	if s.cfg.MaxUploadMB > 0 && len(data) > s.cfg.MaxUploadMB<<20 {
		return nil, NewImportError(ErrFileTooLarge, apiErrors.ErrInvalidRequest, fmt.Sprintf("Arquivo maior que %d MB", s.cfg.MaxUploadMB))
	}

	upload, err := DecodeUpload(filename, data)
	if err != nil {
		logrus.WithError(err).WithField("filename", filename).Warn("Arquivo de importação inválido")
		return nil, NewImportError(ErrInvalidFile, apiErrors.ErrInvalidFormat, "Não foi possível ler o arquivo")
	}

	if len(upload.Rows) == 0 {
		return nil, NewImportError(ErrEmptyFile, apiErrors.ErrInvalidRequest, "Arquivo vazio")
	}

	return upload, nil
}

// Preview devolve o cabeçalho, a sugestão de mapeamento e algumas linhas de exemplo
func (s *Service) Preview(ctx context.Context, filename string, data []byte) (*domain.ImportPreview, error) {
	upload, err := s.decode(filename, data)
	if err != nil {
		return nil, err
	}

	sampleRows := s.cfg.SampleRows
	if sampleRows <= 0 {
		sampleRows = defaultSampleRows
	}

	headers := upload.Rows[0]
	body := upload.Rows[1:]
	if len(body) < sampleRows {
		sampleRows = len(body)
	}

	return &domain.ImportPreview{
		Headers:   headers,
		Mapping:   AutoMap(headers),
		Sample:    body[:sampleRows],
		TotalRows: len(body),
		FileHash:  upload.FileHash,
	}, nil
}

// Import lê o arquivo, monta os padrões a partir das escolhas do usuário e concilia as linhas
func (s *Service) Import(ctx context.Context, filename string, data []byte, request *domain.ImportRequest) (*domain.ImportResult, error) {
	if request == nil {
		return nil, NewImportError(ErrSellerRequired, apiErrors.ErrMissingRequiredData, "Selecione o vendedor da importação")
	}

	upload, err := s.decode(filename, data)
	if err != nil {
		return nil, err
	}

	defaults, err := s.buildDefaults(ctx, request)
	if err != nil {
		return nil, err
	}
	defaults.Filename = filename
	defaults.FileHash = upload.FileHash

	mapping := AutoMap(upload.Rows[0])
	if request.Mapping != nil {
		mapping = *request.Mapping
	}

	return s.Reconcile(ctx, upload.Rows, mapping, defaults)
}

func (s *Service) buildDefaults(ctx context.Context, request *domain.ImportRequest) (domain.ImportDefaults, error) {
	defaults := domain.ImportDefaults{
		Platform:   request.Platform,
		SellerID:   request.SellerID,
		ImportedBy: request.ImportedBy,
		DryRun:     request.DryRun,
	}

	var productPercent *decimal.Decimal
	if request.ProductID != "" {
		product, err := s.productRepository.GetByID(ctx, request.ProductID)
		if err != nil {
			logrus.WithError(err).WithField("product_id", request.ProductID).Error("Erro ao buscar produto")
			return defaults, NewImportError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao buscar produto")
		}
		if product == nil {
			return defaults, NewImportError(ErrProductNotFound, apiErrors.ErrNotFound, "Produto não encontrado")
		}
		defaults.ProductName = product.Name
		productPercent = product.DefaultCommissionPercent
	}

	switch {
	case request.CommissionPercent != nil:
		defaults.CommissionPercent = *request.CommissionPercent
	case productPercent != nil:
		defaults.CommissionPercent = *productPercent
	}

	return defaults, nil
}

// Reconcile cria ou atualiza uma venda por linha. rows inclui o cabeçalho na posição 0.
// Erros de linha são contados e não interrompem o lote; em simulação nada é gravado.
func (s *Service) Reconcile(ctx context.Context, rows [][]string, mapping domain.ColumnMapping, defaults domain.ImportDefaults) (*domain.ImportResult, error) {
	if len(rows) == 0 {
		return nil, NewImportError(ErrEmptyFile, apiErrors.ErrInvalidRequest, "Arquivo vazio")
	}
	if err := ValidateImport(rows[0], mapping, defaults); err != nil {
		return nil, err
	}
	if defaults.Now == nil {
		defaults.Now = func() time.Time { return time.Now().UTC() }
	}

	plan := PlanRows(rows[1:], ResolveMapping(mapping), defaults)

	result := &domain.ImportResult{
		Skipped:    plan.Skipped,
		Duplicates: plan.Duplicates,
		Errors:     []string{},
		DryRun:     defaults.DryRun,
	}

	if defaults.FileHash != "" {
		previous, err := s.csvImportRepository.FindLatestByHash(ctx, defaults.FileHash)
		if err != nil {
			logrus.WithError(err).Warn("Erro ao buscar importação anterior do mesmo arquivo")
		} else if previous != nil {
			result.PreviousImportID = previous.ID
		}
	}

	for _, draft := range plan.Drafts {
		if err := s.reconcileDraft(ctx, draft, defaults, result); err != nil {
			result.Failed++
			if len(result.Errors) < domain.MaxImportErrors {
				result.Errors = append(result.Errors, fmt.Sprintf("linha %d: %s", draft.Line, err.Error()))
			}
		}
	}

	result.Processed = result.Created + result.Updated + result.Failed

	logger := logrus.WithFields(logrus.Fields{
		"platform":   defaults.Platform,
		"filename":   defaults.Filename,
		"processed":  result.Processed,
		"created":    result.Created,
		"updated":    result.Updated,
		"failed":     result.Failed,
		"skipped":    result.Skipped,
		"duplicates": result.Duplicates,
		"dry_run":    defaults.DryRun,
	})

	if defaults.DryRun {
		logger.Info("Simulação de importação concluída")
		return result, nil
	}

	importLog := &domain.CsvImportLog{
		ID:         uuid.NewString(),
		Platform:   defaults.Platform,
		Filename:   defaults.Filename,
		FileHash:   defaults.FileHash,
		Processed:  result.Processed,
		Created:    result.Created,
		Updated:    result.Updated,
		Failed:     result.Failed,
		Errors:     result.Errors,
		ImportedBy: defaults.ImportedBy,
		CreatedAt:  defaults.Now(),
	}

	if err := s.csvImportRepository.Create(ctx, importLog); err != nil {
		logger.WithError(err).Error("Erro ao gravar log de importação")
		return result, NewImportError(ErrSaveImportLog, apiErrors.ErrDatabaseOperation, "As vendas foram importadas, mas o registro da importação falhou")
	}

	result.LogID = importLog.ID
	logger.WithField("log_id", importLog.ID).Info("Importação concluída")

	return result, nil
}

func (s *Service) reconcileDraft(ctx context.Context, draft *SaleDraft, defaults domain.ImportDefaults, result *domain.ImportResult) error {
	existing, err := s.saleRepository.GetByExternalID(ctx, draft.ExternalID)
	if err != nil {
		return err
	}

	if existing != nil {
		if !defaults.DryRun {
			update := domain.SaleImportUpdate{
				ClientName:        draft.ClientName,
				ClientEmail:       draft.ClientEmail,
				ClientPhone:       draft.ClientPhone,
				ProductName:       draft.ProductName,
				TotalValue:        draft.TotalValue,
				InstallmentsCount: draft.Installments,
			}
			if err := s.saleRepository.UpdateImported(ctx, existing.ID, update, defaults.Now()); err != nil {
				return err
			}
		}
		result.Updated++
		return nil
	}

	if !defaults.DryRun {
		sellerID := defaults.SellerID
		now := defaults.Now()
		sale := &domain.Sale{
			ID:                uuid.NewString(),
			ExternalID:        draft.ExternalID,
			ClientName:        draft.ClientName,
			ClientEmail:       draft.ClientEmail,
			ClientPhone:       draft.ClientPhone,
			ProductName:       draft.ProductName,
			TotalValue:        draft.TotalValue,
			InstallmentsCount: draft.Installments,
			SaleDate:          draft.SaleDate,
			Platform:          defaults.Platform,
			SellerID:          &sellerID,
			CommissionPercent: defaults.CommissionPercent,
			Status:            domain.SaleStatusActive,
			CreatedAt:         now,
			UpdatedAt:         now,
		}
		if _, err := s.saleCreator.CreateSale(ctx, sale); err != nil {
			return err
		}
	}
	result.Created++
	return nil
}

func (s *Service) ListLogs(ctx context.Context, limit uint64) ([]*domain.CsvImportLog, error) {
	logs, err := s.csvImportRepository.List(ctx, limit)
	if err != nil {
		logrus.WithError(err).Error("Erro ao listar importações")
		return nil, NewImportError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao listar importações")
	}
	return logs, nil
}

func (s *Service) GetLog(ctx context.Context, id string) (*domain.CsvImportLog, error) {
	log, err := s.csvImportRepository.GetByID(ctx, id)
	if err != nil {
		logrus.WithError(err).WithField("log_id", id).Error("Erro ao buscar importação")
		return nil, NewImportError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao buscar importação")
	}
	if log == nil {
		return nil, NewImportError(ErrImportLogNotFound, apiErrors.ErrNotFound, "Importação não encontrada")
	}
	return log, nil
}

package reporting

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-commission-api/infrastructure/repository"
	"github.com/vfg2006/sales-commission-api/internal/domain"
	"github.com/vfg2006/sales-commission-api/pkg/apiErrors"
)

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

const (
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"

	contentTypeCSV  = "text/csv; charset=utf-8"
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

type ReportingService interface {
	Report(ctx context.Context, filters domain.ReportFilters, viewer *domain.Claims) (*domain.CommissionReport, error)
	Details(ctx context.Context, filters domain.ReportFilters, viewer *domain.Claims, sortColumn string, desc bool) ([]*domain.CommissionDetail, error)
	Export(ctx context.Context, filters domain.ReportFilters, viewer *domain.Claims, format string) (*domain.ExportFile, error)
	ImportErrors(ctx context.Context, logID string) (*domain.ExportFile, error)
}

type Service struct {
	saleRepository       repository.SaleRepository
	commissionRepository repository.CommissionRepository
	csvImportRepository  repository.CsvImportRepository
	now                  func() time.Time
}

func NewService(
	saleRepository repository.SaleRepository,
	commissionRepository repository.CommissionRepository,
	csvImportRepository repository.CsvImportRepository,
) *Service {
	return &Service{
		saleRepository:       saleRepository,
		commissionRepository: commissionRepository,
		csvImportRepository:  csvImportRepository,
		now:                  func() time.Time { return time.Now().UTC() },
	}
}

// normalizeFilters completa o período com o mês corrente e restringe vendedores às próprias comissões
func (s *Service) normalizeFilters(filters domain.ReportFilters, viewer *domain.Claims) (domain.ReportFilters, error) {
	switch {
	case filters.StartMonth.IsZero() && filters.EndMonth.IsZero():
		filters.StartMonth = MonthStart(s.now())
		filters.EndMonth = filters.StartMonth
	case filters.StartMonth.IsZero():
		filters.StartMonth = MonthStart(filters.EndMonth)
	case filters.EndMonth.IsZero():
		filters.EndMonth = MonthStart(filters.StartMonth)
	}

	filters.StartMonth = MonthStart(filters.StartMonth)
	filters.EndMonth = MonthStart(filters.EndMonth)

	if filters.StartMonth.After(filters.EndMonth) {
		return filters, NewReportError(ErrInvalidPeriod, apiErrors.ErrInvalidRequest, "Mês inicial posterior ao mês final")
	}
	if filters.Platform != nil && !filters.Platform.IsValid() {
		return filters, NewReportError(ErrInvalidPlatform, apiErrors.ErrInvalidFormat, "Plataforma inválida")
	}

	if viewer.IsSeller() {
		sellerID := viewer.UserID()
		filters.SellerID = &sellerID
	}

	return filters, nil
}

func (s *Service) Report(ctx context.Context, filters domain.ReportFilters, viewer *domain.Claims) (*domain.CommissionReport, error) {
	filters, err := s.normalizeFilters(filters, viewer)
	if err != nil {
		return nil, err
	}

	report, _, err := s.build(ctx, filters)
	return report, err
}

func (s *Service) build(ctx context.Context, filters domain.ReportFilters) (*domain.CommissionReport, []*domain.CommissionDetail, error) {
	details, err := s.commissionRepository.ListDetails(ctx, filters)
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar comissões do relatório")
		return nil, nil, NewReportError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao buscar comissões")
	}

	endDate := MonthEnd(filters.EndMonth)
	sales, err := s.saleRepository.List(ctx, domain.SaleFilters{
		Platform:  filters.Platform,
		SellerID:  filters.SellerID,
		StartDate: &filters.StartMonth,
		EndDate:   &endDate,
	})
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar vendas do relatório")
		return nil, nil, NewReportError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao buscar vendas")
	}

	return Aggregate(details, sales, filters), details, nil
}

func (s *Service) Details(ctx context.Context, filters domain.ReportFilters, viewer *domain.Claims, sortColumn string, desc bool) ([]*domain.CommissionDetail, error) {
	if sortColumn != "" && !IsSortColumn(sortColumn) {
		return nil, NewReportError(ErrInvalidSortColumn, apiErrors.ErrInvalidFormat, fmt.Sprintf("Coluna de ordenação inválida: %s", sortColumn))
	}

	filters, err := s.normalizeFilters(filters, viewer)
	if err != nil {
		return nil, err
	}

	details, err := s.commissionRepository.ListDetails(ctx, filters)
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar detalhes de comissões")
		return nil, NewReportError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao buscar comissões")
	}

	SortDetails(details, sortColumn, desc)
	return details, nil
}

// Export gera o relatório do período em CSV ou XLSX
func (s *Service) Export(ctx context.Context, filters domain.ReportFilters, viewer *domain.Claims, format string) (*domain.ExportFile, error) {
	format = strings.ToLower(strings.TrimSpace(format))
	if format == "" {
		format = FormatXLSX
	}
	if format != FormatCSV && format != FormatXLSX {
		return nil, NewReportError(ErrInvalidFormat, apiErrors.ErrInvalidFormat, "Formato de exportação deve ser csv ou xlsx")
	}

	filters, err := s.normalizeFilters(filters, viewer)
	if err != nil {
		return nil, err
	}

	report, details, err := s.build(ctx, filters)
	if err != nil {
		return nil, err
	}

	name := fmt.Sprintf("comissoes_%s_%s", filters.StartMonth.Format("2006-01"), filters.EndMonth.Format("2006-01"))

	var buf bytes.Buffer
	file := &domain.ExportFile{}
	switch format {
	case FormatCSV:
		err = ExportCSV(&buf, details)
		file.Filename = name + ".csv"
		file.ContentType = contentTypeCSV
	case FormatXLSX:
		err = ExportXLSX(&buf, report, details)
		file.Filename = name + ".xlsx"
		file.ContentType = contentTypeXLSX
	}
	if err != nil {
		logrus.WithError(err).WithField("format", format).Error("Erro ao gerar exportação")
		return nil, NewReportError(ErrExport, apiErrors.ErrInternalServer, "Falha ao gerar o arquivo")
	}

	file.Content = buf.Bytes()
	return file, nil
}

// ImportErrors exporta em CSV os erros de linha guardados no log da importação
func (s *Service) ImportErrors(ctx context.Context, logID string) (*domain.ExportFile, error) {
	log, err := s.csvImportRepository.GetByID(ctx, logID)
	if err != nil {
		logrus.WithError(err).WithField("log_id", logID).Error("Erro ao buscar importação")
		return nil, NewReportError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao buscar importação")
	}
	if log == nil {
		return nil, NewReportError(ErrImportLogNotFound, apiErrors.ErrNotFound, "Importação não encontrada")
	}

	var buf bytes.Buffer
	if err := ImportErrorsCSV(&buf, log); err != nil {
		logrus.WithError(err).WithField("log_id", logID).Error("Erro ao gerar CSV de erros")
		return nil, NewReportError(ErrExport, apiErrors.ErrInternalServer, "Falha ao gerar o arquivo")
	}

	return &domain.ExportFile{
		Filename:    fmt.Sprintf("importacao_%s_erros.csv", log.ID),
		ContentType: contentTypeCSV,
		Content:     buf.Bytes(),
	}, nil
}

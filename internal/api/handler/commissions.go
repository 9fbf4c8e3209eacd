package handler

import (
	"net/http"
	"strings"

	"github.com/vfg2006/sales-commission-api/internal/domain"
	"github.com/vfg2006/sales-commission-api/internal/usecases/commissioning"
	"github.com/vfg2006/sales-commission-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-commission-api/pkg/apiErrors"
	"github.com/vfg2006/sales-commission-api/pkg/utils"
)

// parseReportFilters lê start_month/end_month (AAAA-MM), platform, seller_id e product
func parseReportFilters(r *http.Request) (domain.ReportFilters, error) {
	query := r.URL.Query()

	start, err := utils.ParseMonth(query.Get("start_month"))
	if err != nil {
		return domain.ReportFilters{}, err
	}
	end, err := utils.ParseMonth(query.Get("end_month"))
	if err != nil {
		return domain.ReportFilters{}, err
	}

	filters := domain.ReportFilters{
		StartMonth: start,
		EndMonth:   end,
		SellerID:   optionalString(query.Get("seller_id")),
		Product:    optionalString(strings.TrimSpace(query.Get("product"))),
	}
	if platform := query.Get("platform"); platform != "" {
		p := domain.Platform(platform)
		filters.Platform = &p
	}

	return filters, nil
}

func CommissionReport(service reporting.ReportingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		filters, err := parseReportFilters(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		report, err := service.Report(r.Context(), filters, claimsFrom(r))
		if err != nil {
			writeServiceError(w, r, err, "Erro ao gerar relatório de comissões")
			return
		}

		writeJSON(w, http.StatusOK, report)
	})
}

func CommissionDetails(service reporting.ReportingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		filters, err := parseReportFilters(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		query := r.URL.Query()
		desc := strings.EqualFold(query.Get("order"), "desc")

		details, err := service.Details(r.Context(), filters, claimsFrom(r), query.Get("sort"), desc)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao listar comissões")
			return
		}
		if details == nil {
			details = []*domain.CommissionDetail{}
		}

		writeJSON(w, http.StatusOK, details)
	})
}

// ExportCommissions devolve a planilha (xlsx, padrão) ou o CSV com as linhas do relatório
func ExportCommissions(service reporting.ReportingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		filters, err := parseReportFilters(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		file, err := service.Export(r.Context(), filters, claimsFrom(r), r.URL.Query().Get("format"))
		if err != nil {
			writeServiceError(w, r, err, "Erro ao exportar comissões")
			return
		}

		writeFile(w, file)
	})
}

func UpdateCommissionStatus(service commissioning.CommissioningService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var request domain.UpdateCommissionStatusRequest
		if !decodeJSON(w, r, &request) {
			return
		}

		affected, err := service.UpdateStatus(r.Context(), &request)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao atualizar status das comissões")
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"status":   request.Status,
			"affected": affected,
		})
	})
}

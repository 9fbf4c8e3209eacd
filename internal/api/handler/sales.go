package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/sales-commission-api/internal/domain"
	"github.com/vfg2006/sales-commission-api/internal/usecases/selling"
	"github.com/vfg2006/sales-commission-api/pkg/apiErrors"
	"github.com/vfg2006/sales-commission-api/pkg/log"
	"github.com/vfg2006/sales-commission-api/pkg/utils"
)

const defaultSalesLimit = 100

func parseSaleFilters(r *http.Request) (domain.SaleFilters, string) {
	query := r.URL.Query()
	filters := domain.SaleFilters{
		SellerID: optionalString(query.Get("seller_id")),
		Search:   query.Get("search"),
	}

	if platform := query.Get("platform"); platform != "" {
		p := domain.Platform(platform)
		filters.Platform = &p
	}

	if status := query.Get("status"); status != "" {
		s := domain.SaleStatus(status)
		if !s.IsValid() {
			return filters, "Status de venda inválido"
		}
		filters.Status = &s
	}

	var err error
	if filters.StartDate, err = utils.ParseDate(query.Get("start_date")); err != nil {
		return filters, err.Error()
	}
	if filters.EndDate, err = utils.ParseDate(query.Get("end_date")); err != nil {
		return filters, err.Error()
	}

	if filters.Limit, err = parseUint(query.Get("limit"), defaultSalesLimit); err != nil {
		return filters, "Parâmetro limit inválido"
	}
	if filters.Offset, err = parseUint(query.Get("offset"), 0); err != nil {
		return filters, "Parâmetro offset inválido"
	}

	return filters, ""
}

// ListSales lista as vendas; vendedores só recebem as próprias
func ListSales(service selling.SellingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		filters, invalid := parseSaleFilters(r)
		if invalid != "" {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, invalid, nil)
			return
		}

		if claims := claimsFrom(r); claims.IsSeller() {
			filters.SellerID = optionalString(claims.UserID())
		}

		sales, err := service.List(r.Context(), filters)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao listar vendas")
			return
		}
		if sales == nil {
			sales = []*domain.Sale{}
		}

		writeJSON(w, http.StatusOK, sales)
	})
}

func GetSale(service selling.SellingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		detail, err := service.Get(r.Context(), id)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao buscar venda")
			return
		}

		if claims := claimsFrom(r); claims.IsSeller() {
			if detail.Sale.SellerID == nil || *detail.Sale.SellerID != claims.UserID() {
				apiErrors.WriteError(w, apiErrors.ErrNotFound, "Venda não encontrada", nil)
				return
			}
		}

		writeJSON(w, http.StatusOK, detail)
	})
}

func CreateSale(service selling.SellingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var request domain.CreateSaleRequest
		if !decodeJSON(w, r, &request) {
			return
		}

		detail, err := service.Create(r.Context(), &request)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao criar venda")
			return
		}

		log.ForContext(r.Context()).WithFields(log.Fields{
			"sale_id":          detail.Sale.ID,
			"sale_external_id": detail.Sale.ExternalID,
		}).Info("Venda manual criada")

		writeJSON(w, http.StatusCreated, detail)
	})
}

func BulkSaleAction(service selling.SellingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var request domain.BulkActionRequest
		if !decodeJSON(w, r, &request) {
			return
		}

		result, err := service.BulkAction(r.Context(), &request)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao executar ação em lote")
			return
		}

		log.ForContext(r.Context()).WithFields(log.Fields{
			"action":   result.Action,
			"affected": result.Affected,
			"user_id":  claimsFrom(r).UserID(),
		}).Info("Ação em lote executada")

		writeJSON(w, http.StatusOK, result)
	})
}

// LookupTransaction consulta a transação na plataforma para pré-preencher o cadastro manual
func LookupTransaction(service selling.SellingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		params := httprouter.ParamsFromContext(r.Context())

		transaction, err := service.Lookup(r.Context(), domain.Platform(params.ByName("platform")), params.ByName("transaction_id"))
		if err != nil {
			writeServiceError(w, r, err, "Erro ao consultar transação na plataforma")
			return
		}

		writeJSON(w, http.StatusOK, transaction)
	})
}

package handler

import (
	"net/http"

	"github.com/vfg2006/sales-commission-api/internal/usecases/cataloging"
)

func onlyActive(r *http.Request) bool {
	return r.URL.Query().Get("all") != "true"
}

func ListSellers(service cataloging.CatalogService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sellers, err := service.ListSellers(r.Context(), onlyActive(r))
		if err != nil {
			writeServiceError(w, r, err, "Erro ao listar vendedores")
			return
		}

		writeJSON(w, http.StatusOK, sellers)
	})
}

func ListProducts(service cataloging.CatalogService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		products, err := service.ListProducts(r.Context(), onlyActive(r))
		if err != nil {
			writeServiceError(w, r, err, "Erro ao listar produtos")
			return
		}

		writeJSON(w, http.StatusOK, products)
	})
}

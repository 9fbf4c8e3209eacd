package handler

import (
	"net/http"

	"github.com/vfg2006/sales-commission-api/internal/api/handler/router"
	"github.com/vfg2006/sales-commission-api/internal/usecases/cataloging"
	"github.com/vfg2006/sales-commission-api/internal/usecases/commissioning"
	"github.com/vfg2006/sales-commission-api/internal/usecases/importing"
	"github.com/vfg2006/sales-commission-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-commission-api/internal/usecases/selling"
	"github.com/vfg2006/sales-commission-api/pkg/middleware"
)

type middlewares = []func(http.Handler) http.Handler

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Imports(service importing.ImportingService, reportService reporting.ReportingService, maxUploadMB int) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/imports/preview",
			Method:      http.MethodPost,
			Handler:     PreviewImport(service, maxUploadMB),
			Middlewares: middlewares{middleware.AdminOrManager()},
		},
		{
			Path:        "/v1/imports",
			Method:      http.MethodPost,
			Handler:     RunImport(service, maxUploadMB),
			Middlewares: middlewares{middleware.AdminOrManager()},
		},
		{
			Path:        "/v1/imports",
			Method:      http.MethodGet,
			Handler:     ListImports(service),
			Middlewares: middlewares{middleware.AdminOrManager()},
		},
		{
			Path:        "/v1/imports/:id/errors",
			Method:      http.MethodGet,
			Handler:     DownloadImportErrors(reportService),
			Middlewares: middlewares{middleware.AdminOrManager()},
		},
	}
}

func Sales(service selling.SellingService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/sales",
			Method:      http.MethodGet,
			Handler:     ListSales(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/sales/:id",
			Method:      http.MethodGet,
			Handler:     GetSale(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/sales",
			Method:      http.MethodPost,
			Handler:     CreateSale(service),
			Middlewares: middlewares{middleware.AdminOrManager()},
		},
		{
			Path:        "/v1/sales/bulk",
			Method:      http.MethodPost,
			Handler:     BulkSaleAction(service),
			Middlewares: middlewares{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/integrations/:platform/transactions/:transaction_id",
			Method:      http.MethodGet,
			Handler:     LookupTransaction(service),
			Middlewares: middlewares{middleware.AdminOrManager()},
		},
	}
}

func Commissions(reportService reporting.ReportingService, commissionService commissioning.CommissioningService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/commissions/report",
			Method:      http.MethodGet,
			Handler:     CommissionReport(reportService),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/commissions/details",
			Method:      http.MethodGet,
			Handler:     CommissionDetails(reportService),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/commissions/export",
			Method:      http.MethodGet,
			Handler:     ExportCommissions(reportService),
			Middlewares: middlewares{middleware.AdminOrManager()},
		},
		{
			Path:        "/v1/commissions/status",
			Method:      http.MethodPatch,
			Handler:     UpdateCommissionStatus(commissionService),
			Middlewares: middlewares{middleware.AdminOnly()},
		},
	}
}

func Catalog(service cataloging.CatalogService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/sellers",
			Method:      http.MethodGet,
			Handler:     ListSellers(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/products",
			Method:      http.MethodGet,
			Handler:     ListProducts(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: middlewares{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: middlewares{middleware.AdminOrManager()},
		},
	}
}

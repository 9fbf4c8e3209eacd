package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-commission-api/infrastructure/database"
	"github.com/vfg2006/sales-commission-api/infrastructure/integrator/platform"
	"github.com/vfg2006/sales-commission-api/infrastructure/integrator/platform/platformclient"
	"github.com/vfg2006/sales-commission-api/infrastructure/repository"
	"github.com/vfg2006/sales-commission-api/internal/api"
	"github.com/vfg2006/sales-commission-api/internal/api/handler"
	"github.com/vfg2006/sales-commission-api/internal/config"
	"github.com/vfg2006/sales-commission-api/internal/scheduler"
	"github.com/vfg2006/sales-commission-api/internal/usecases/authenticating"
	"github.com/vfg2006/sales-commission-api/internal/usecases/cataloging"
	"github.com/vfg2006/sales-commission-api/internal/usecases/commissioning"
	"github.com/vfg2006/sales-commission-api/internal/usecases/importing"
	"github.com/vfg2006/sales-commission-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-commission-api/internal/usecases/selling"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	conn := dbconn(ctx, cfg.Database)
	defer conn.Close()

	saleRepo := repository.NewSaleRepository(conn)
	installmentRepo := repository.NewInstallmentRepository(conn)
	commissionRepo := repository.NewCommissionRepository(conn)
	csvImportRepo := repository.NewCsvImportRepository(conn)
	productRepo := repository.NewProductRepository(conn)
	profileRepo := repository.NewProfileRepository(conn)

	platformIntegrator := platform.New(platformclient.NewClient(cfg.PlatformFunctions))

	commissionService := commissioning.NewService(conn, saleRepo, installmentRepo, commissionRepo)
	importService := importing.NewService(commissionService, saleRepo, csvImportRepo, productRepo, cfg.Import)
	sellingService := selling.NewService(conn, commissionService, saleRepo, installmentRepo, commissionRepo, platformIntegrator)
	reportService := reporting.NewService(saleRepo, commissionRepo, csvImportRepo)
	catalogService := cataloging.NewService(profileRepo, productRepo)

	overdueService := scheduler.NewOverdueInstallmentsService(installmentRepo, cfg.OverdueSweep)
	if err := overdueService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de parcelas vencidas")
	}

	platformSyncService := scheduler.NewPlatformSyncService(platformIntegrator, cfg.PlatformSync)
	if err := platformSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de sincronização de plataformas")
	}

	server, err := api.New(cfg, api.Services{
		Authenticator: authenticating.NewService(cfg.Auth),
		Importing:     importService,
		Selling:       sellingService,
		Commissioning: commissionService,
		Reporting:     reportService,
		Catalog:       catalogService,
		CronJobs: handler.CronJobServices{
			OverdueInstallments: overdueService,
			PlatformSync:        platformSyncService,
		},
	})
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	os.Chdir(path.Dir(file))

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

func dbconn(ctx context.Context, dbConfig config.Database) *database.Connection {
	conn, err := database.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).WithField("driver", dbConfig.Driver).Fatal("Erro ao conectar ao banco de dados")
	}

	logrus.WithField("driver", conn.Driver()).Info("Conexão com o banco de dados estabelecida com sucesso")
	return conn
}

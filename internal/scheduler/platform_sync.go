package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-commission-api/infrastructure/integrator/platform"
	platformdomain "github.com/vfg2006/sales-commission-api/infrastructure/integrator/platform/domain"
	"github.com/vfg2006/sales-commission-api/internal/config"
	"github.com/vfg2006/sales-commission-api/internal/domain"
)

const (
	defaultPlatformSyncCron     = "0 2 * * *"
	defaultPlatformLookbackDays = 3
)

// PlatformSyncService aciona periodicamente a sincronização remota de cada plataforma configurada
type PlatformSyncService struct {
	scheduler  *gocron.Scheduler
	integrator platform.PlatformIntegrator
	config     config.PlatformSync
	now        func() time.Time

	running             bool
	mutex               sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastResults         []*platformdomain.SyncResult
}

func NewPlatformSyncService(integrator platform.PlatformIntegrator, cfg config.PlatformSync) *PlatformSyncService {
	if cfg.CronSchedule == "" {
		cfg.CronSchedule = defaultPlatformSyncCron
	}
	if cfg.LookbackDays <= 0 {
		cfg.LookbackDays = defaultPlatformLookbackDays
	}

	return &PlatformSyncService{
		scheduler:  gocron.NewScheduler(time.Local),
		integrator: integrator,
		config:     cfg,
		now:        time.Now,
	}
}

func (s *PlatformSyncService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Sincronização de plataformas desabilitada")
		return nil
	}

	logrus.WithFields(logrus.Fields{
		"cron":      s.config.CronSchedule,
		"platforms": s.config.Platforms,
	}).Info("Iniciando agendamento da sincronização de plataformas")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.SyncPlatforms(context.Background())
	})
	if err != nil {
		return err
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		s.Stop()
	}()

	return nil
}

func (s *PlatformSyncService) Stop() {
	logrus.Info("Parando sincronização de plataformas")
	s.scheduler.Stop()
}

// SyncPlatforms sincroniza cada plataforma na janela [hoje - LookbackDays, hoje].
// Falha em uma plataforma não interrompe as demais; o resultado dela fica com Success=false.
func (s *PlatformSyncService) SyncPlatforms(ctx context.Context) []*platformdomain.SyncResult {
	s.mutex.Lock()
	if s.running {
		s.mutex.Unlock()
		logrus.Warn("Sincronização de plataformas já em andamento, ignorando")
		return nil
	}
	s.running = true
	s.lastSyncStartedAt = s.now()
	s.mutex.Unlock()

	defer func() {
		s.mutex.Lock()
		s.running = false
		s.lastSyncCompletedAt = s.now()
		s.mutex.Unlock()
	}()

	now := s.now().UTC()
	end := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	start := end.AddDate(0, 0, -s.config.LookbackDays)

	results := make([]*platformdomain.SyncResult, 0, len(s.config.Platforms))
	for _, name := range s.config.Platforms {
		p := domain.Platform(name)
		logger := logrus.WithFields(logrus.Fields{
			"platform": name,
			"start":    start.Format(time.DateOnly),
			"end":      end.Format(time.DateOnly),
		})

		if p == domain.PlatformManual || !p.IsValid() {
			logger.Warn("Plataforma não suporta sincronização, ignorando")
			continue
		}

		if ctx.Err() != nil {
			logger.WithError(ctx.Err()).Warn("Sincronização interrompida")
			break
		}

		result, err := s.integrator.SyncTransactions(ctx, p, start, end)
		if err != nil {
			logger.WithError(err).Error("Erro ao sincronizar plataforma")
			results = append(results, &platformdomain.SyncResult{Platform: name})
			continue
		}
		if result == nil {
			logger.Warn("Plataforma retornou resposta sem resultado de sincronização")
			results = append(results, &platformdomain.SyncResult{Platform: name})
			continue
		}

		logger.WithFields(logrus.Fields{
			"success": result.Success,
			"created": result.Created,
			"updated": result.Updated,
		}).Info("Plataforma sincronizada")
		results = append(results, result)
	}

	s.mutex.Lock()
	s.lastResults = results
	s.mutex.Unlock()

	return results
}

func (s *PlatformSyncService) TriggerManualSync() {
	logrus.Info("Sincronização manual de plataformas solicitada")
	go s.SyncPlatforms(context.Background())
}

func (s *PlatformSyncService) GetStatus() map[string]any {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return map[string]any{
		"enabled":             s.config.Enabled,
		"cronSchedule":        s.config.CronSchedule,
		"platforms":           s.config.Platforms,
		"lookbackDays":        s.config.LookbackDays,
		"running":             s.running,
		"lastSyncStartedAt":   s.lastSyncStartedAt,
		"lastSyncCompletedAt": s.lastSyncCompletedAt,
		"lastResults":         s.lastResults,
	}
}

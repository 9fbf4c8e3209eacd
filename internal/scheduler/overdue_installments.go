package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-commission-api/infrastructure/repository"
	"github.com/vfg2006/sales-commission-api/internal/config"
)

const defaultOverdueCron = "0 1 * * *"

// OverdueInstallmentsService marca diariamente as parcelas pendentes vencidas
type OverdueInstallmentsService struct {
	scheduler       *gocron.Scheduler
	installmentRepo repository.InstallmentRepository
	config          config.OverdueSweep
	now             func() time.Time

	running              bool
	mutex                sync.Mutex
	lastSweepStartedAt   time.Time
	lastSweepCompletedAt time.Time
	lastMarked           int64
	lastError            string
}

func NewOverdueInstallmentsService(installmentRepo repository.InstallmentRepository, cfg config.OverdueSweep) *OverdueInstallmentsService {
	if cfg.CronSchedule == "" {
		cfg.CronSchedule = defaultOverdueCron
	}

	return &OverdueInstallmentsService{
		scheduler:       gocron.NewScheduler(time.Local),
		installmentRepo: installmentRepo,
		config:          cfg,
		now:             time.Now,
	}
}

func (s *OverdueInstallmentsService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Varredura de parcelas vencidas desabilitada")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendamento da varredura de parcelas vencidas")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if _, err := s.MarkOverdue(context.Background()); err != nil {
			logrus.WithError(err).Error("Erro na varredura agendada de parcelas vencidas")
		}
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

func (s *OverdueInstallmentsService) Stop() {
	logrus.Info("Parando varredura de parcelas vencidas")
	s.scheduler.Stop()
}

// MarkOverdue executa uma varredura. Retorna 0 sem erro se já houver uma em andamento.
func (s *OverdueInstallmentsService) MarkOverdue(ctx context.Context) (int64, error) {
	s.mutex.Lock()
	if s.running {
		s.mutex.Unlock()
		logrus.Warn("Varredura de parcelas vencidas já em andamento, ignorando")
		return 0, nil
	}
	s.running = true
	s.lastSweepStartedAt = s.now()
	s.mutex.Unlock()

	defer func() {
		s.mutex.Lock()
		s.running = false
		s.lastSweepCompletedAt = s.now()
		s.mutex.Unlock()
	}()

	now := s.now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	affected, err := s.installmentRepo.MarkOverdue(ctx, today, now)

	s.mutex.Lock()
	if err != nil {
		s.lastError = err.Error()
	} else {
		s.lastError = ""
		s.lastMarked = affected
	}
	s.mutex.Unlock()

	if err != nil {
		logrus.WithError(err).Error("Erro ao marcar parcelas vencidas")
		return 0, err
	}

	logrus.WithFields(logrus.Fields{
		"today":    today.Format(time.DateOnly),
		"affected": affected,
	}).Info("Varredura de parcelas vencidas concluída")

	return affected, nil
}

func (s *OverdueInstallmentsService) TriggerManualSync() {
	logrus.Info("Varredura manual de parcelas vencidas solicitada")
	go func() {
		if _, err := s.MarkOverdue(context.Background()); err != nil {
			logrus.WithError(err).Error("Erro na varredura manual de parcelas vencidas")
		}
	}()
}

func (s *OverdueInstallmentsService) GetStatus() map[string]any {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return map[string]any{
		"enabled":                s.config.Enabled,
		"cronSchedule":           s.config.CronSchedule,
		"running":                s.running,
		"lastSweepStartedAt":     s.lastSweepStartedAt,
		"lastSweepCompletedAt":   s.lastSweepCompletedAt,
		"lastMarkedInstallments": s.lastMarked,
		"lastError":              s.lastError,
	}
}

package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-commission-api/pkg/apiErrors"
)

// Tipos de cron job aceitos em /v1/cron/:type/run
const (
	CronJobTypeOverdueInstallments = "overdue-installments"
	CronJobTypePlatformSync        = "platform-sync"
	CronJobTypeAll                 = "all"
)

// CronJob é implementado pelos serviços de internal/scheduler
type CronJob interface {
	TriggerManualSync()
	GetStatus() map[string]any
}

type CronJobServices struct {
	OverdueInstallments CronJob
	PlatformSync        CronJob
}

func (s CronJobServices) byType() map[string]CronJob {
	jobs := map[string]CronJob{}
	if s.OverdueInstallments != nil {
		jobs[CronJobTypeOverdueInstallments] = s.OverdueInstallments
	}
	if s.PlatformSync != nil {
		jobs[CronJobTypePlatformSync] = s.PlatformSync
	}
	return jobs
}

// RunCronJob dispara manualmente uma cron job; a execução segue em segundo plano
func RunCronJob(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		jobs := services.byType()

		switch cronType {
		case CronJobTypeAll:
			for _, job := range jobs {
				job.TriggerManualSync()
			}
		case CronJobTypeOverdueInstallments, CronJobTypePlatformSync:
			job, ok := jobs[cronType]
			if !ok {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Cron job não disponível", nil)
				return
			}
			job.TriggerManualSync()
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: overdue-installments, platform-sync, all", nil)
			return
		}

		logrus.WithFields(logrus.Fields{
			"type":    cronType,
			"user_id": claimsFrom(r).UserID(),
		}).Info("Cron job disparada manualmente")

		writeJSON(w, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	})
}

func GetCronStatus(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}
		for name, job := range services.byType() {
			status[name] = job.GetStatus()
		}

		writeJSON(w, http.StatusOK, status)
	})
}

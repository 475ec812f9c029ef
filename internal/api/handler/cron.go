package handler

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/negative-keyword-sync/internal/scheduler"
	"github.com/vfg2006/negative-keyword-sync/pkg/apiErrors"
)

// CronJobServices contém os serviços de cron acionáveis manualmente
type CronJobServices struct {
	NegationSyncService *scheduler.NegationSyncService
}

// RunCronJob dispara manualmente a cross-negativação
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		if services.NegationSyncService == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de cross-negativação não disponível", nil)
			return
		}

		services.NegationSyncService.TriggerManualSync()

		response := map[string]any{
			"message": "Cross-negativação iniciada com sucesso",
		}
		_ = json.NewEncoder(w).Encode(response)
	}
}

// GetCronStatus retorna o status do agendador
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCronStatus")

		status := map[string]any{
			"negation": services.NegationSyncService.GetStatus(),
		}

		_ = json.NewEncoder(w).Encode(status)
	}
}

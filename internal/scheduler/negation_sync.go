package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/negative-keyword-sync/infrastructure/repository"
	"github.com/vfg2006/negative-keyword-sync/internal/config"
	"github.com/vfg2006/negative-keyword-sync/internal/usecases/negating"
	"github.com/vfg2006/negative-keyword-sync/internal/usecases/reporting"
)

// NegationSyncConfig representa a configuração do agendador de cross-negativação
type NegationSyncConfig struct {
	CronSchedule        string
	RequestDelaySeconds int
	SyncEnabled         bool
	ExportReport        bool
}

// NegationSyncService gerencia o agendamento e a execução da cross-negativação
type NegationSyncService struct {
	scheduler           *gocron.Scheduler
	config              NegationSyncConfig
	appConfig           *config.Config
	negator             negating.Negator
	exporter            reporting.Exporter
	runRepo             repository.NegationRunRepository
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewNegationSyncService cria uma nova instância do serviço de sincronização
func NewNegationSyncService(
	negator negating.Negator,
	exporter reporting.Exporter,
	runRepo repository.NegationRunRepository,
	appConfig *config.Config,
) *NegationSyncService {
	syncConfig := NegationSyncConfig{
		CronSchedule:        appConfig.NegationSync.CronSchedule,
		RequestDelaySeconds: appConfig.NegationSync.RequestDelaySeconds,
		SyncEnabled:         appConfig.NegationSync.Enabled,
		ExportReport:        appConfig.Negation.ExportReport,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":         syncConfig.CronSchedule,
		"request_delay_seconds": syncConfig.RequestDelaySeconds,
		"sync_enabled":          syncConfig.SyncEnabled,
		"export_report":         syncConfig.ExportReport,
	}).Info("Configuração do agendador de cross-negativação carregada")

	return &NegationSyncService{
		scheduler: scheduler,
		config:    syncConfig,
		appConfig: appConfig,
		negator:   negator,
		exporter:  exporter,
		runRepo:   runRepo,
	}
}

// Start inicia o agendador
func (s *NegationSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Cross-negativação agendada desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de cross-negativação")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.runNegationSync(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar cross-negativação: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de cross-negativação")
		s.scheduler.Stop()
	}()

	return nil
}

// runNegationSync executa uma sincronização completa de negativas
func (s *NegationSyncService) runNegationSync(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Cross-negativação já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	startTime := time.Now()
	s.lastSyncStartedAt = startTime

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	logrus.Info("Iniciando cross-negativação de palavras-chave")

	result, err := s.negator.Run(ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro fatal na cross-negativação")
		return
	}

	run := result.NegationRun()

	if s.config.ExportReport {
		reportURL, err := s.exporter.ExportRunReport(result)
		if err != nil {
			// Falha na exportação (inclui envio de e-mail) encerra a
			// execução; as negativas já aplicadas permanecem
			logrus.WithError(err).Error("Erro ao exportar o relatório da execução")
		} else {
			run.ReportURL = &reportURL
		}
	}

	if err := s.runRepo.Save(run); err != nil {
		logrus.WithFields(logrus.Fields{
			"run_id": run.ID,
			"error":  err.Error(),
		}).Error("Erro ao salvar o registro da execução")
	}

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"run_id":   run.ID,
		"duration": duration.String(),
		"applied":  run.NegativesApplied,
		"failed":   run.NegativesFailed,
	}).Info("Cross-negativação concluída")

	s.lastSyncCompletedAt = time.Now()
}

// TriggerManualSync inicia manualmente uma cross-negativação
func (s *NegationSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Cross-negativação já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando cross-negativação manual")
	go s.runNegationSync(context.Background())
}

// GetStatus retorna o status atual do agendador
func (s *NegationSyncService) GetStatus() map[string]any {
	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_request_delay_s":   s.config.RequestDelaySeconds,
		"export_report":          s.config.ExportReport,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}

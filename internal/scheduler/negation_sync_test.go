package scheduler

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	repomocks "github.com/vfg2006/negative-keyword-sync/infrastructure/repository/mocks"
	"github.com/vfg2006/negative-keyword-sync/internal/domain"
	"github.com/vfg2006/negative-keyword-sync/internal/scheduler/mocks"
	"github.com/vfg2006/negative-keyword-sync/internal/usecases/negating"
	"go.uber.org/mock/gomock"
)

func testRunResult() *negating.RunResult {
	result := negating.NewRunResult("run123", domain.NegationRunModeCampaign)
	result.CampaignsProcessed = 2
	result.Applied = 5
	result.Record("[oculos]", "Campanha B")
	result.Finish()
	return result
}

func TestNegationSyncService_runNegationSync(t *testing.T) {
	tests := []struct {
		name         string
		exportReport bool
		setup        func(negator *mocks.MockNegator, exporter *mocks.MockExporter, runRepo *repomocks.MockNegationRunRepository)
	}{
		{
			name:         "Execução sem exportação deve salvar o registro sem URL de relatório",
			exportReport: false,
			setup: func(negator *mocks.MockNegator, exporter *mocks.MockExporter, runRepo *repomocks.MockNegationRunRepository) {
				negator.EXPECT().
					Run(gomock.Any()).
					Return(testRunResult(), nil)

				runRepo.EXPECT().
					Save(gomock.Any()).
					DoAndReturn(func(run *domain.NegationRun) error {
						assert.Equal(t, "run123", run.ID)
						assert.Equal(t, 5, run.NegativesApplied)
						assert.Nil(t, run.ReportURL)
						return nil
					})
			},
		},
		{
			name:         "Execução com exportação deve salvar a URL do relatório",
			exportReport: true,
			setup: func(negator *mocks.MockNegator, exporter *mocks.MockExporter, runRepo *repomocks.MockNegationRunRepository) {
				negator.EXPECT().
					Run(gomock.Any()).
					Return(testRunResult(), nil)

				exporter.EXPECT().
					ExportRunReport(gomock.Any()).
					Return("https://docs.google.com/spreadsheets/d/abc/edit", nil)

				runRepo.EXPECT().
					Save(gomock.Any()).
					DoAndReturn(func(run *domain.NegationRun) error {
						assert.NotNil(t, run.ReportURL)
						assert.Equal(t, "https://docs.google.com/spreadsheets/d/abc/edit", *run.ReportURL)
						return nil
					})
			},
		},
		{
			name:         "Falha na exportação não deve impedir o salvamento do registro",
			exportReport: true,
			setup: func(negator *mocks.MockNegator, exporter *mocks.MockExporter, runRepo *repomocks.MockNegationRunRepository) {
				negator.EXPECT().
					Run(gomock.Any()).
					Return(testRunResult(), nil)

				exporter.EXPECT().
					ExportRunReport(gomock.Any()).
					Return("", assert.AnError)

				runRepo.EXPECT().
					Save(gomock.Any()).
					DoAndReturn(func(run *domain.NegationRun) error {
						assert.Nil(t, run.ReportURL)
						return nil
					})
			},
		},
		{
			name:         "Erro fatal na negativação não deve salvar registro",
			exportReport: false,
			setup: func(negator *mocks.MockNegator, exporter *mocks.MockExporter, runRepo *repomocks.MockNegationRunRepository) {
				negator.EXPECT().
					Run(gomock.Any()).
					Return(nil, assert.AnError)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockNegator := mocks.NewMockNegator(ctrl)
			mockExporter := mocks.NewMockExporter(ctrl)
			mockRunRepo := repomocks.NewMockNegationRunRepository(ctrl)

			tt.setup(mockNegator, mockExporter, mockRunRepo)

			service := &NegationSyncService{
				config: NegationSyncConfig{
					ExportReport: tt.exportReport,
				},
				negator:  mockNegator,
				exporter: mockExporter,
				runRepo:  mockRunRepo,
			}

			service.runNegationSync(context.Background())

			assert.False(t, service.syncRunning)
		})
	}
}

func TestNegationSyncService_runNegationSync_JaEmAndamento(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Nenhuma chamada é esperada quando já há sincronização em andamento
	mockNegator := mocks.NewMockNegator(ctrl)
	mockExporter := mocks.NewMockExporter(ctrl)
	mockRunRepo := repomocks.NewMockNegationRunRepository(ctrl)

	service := &NegationSyncService{
		negator:     mockNegator,
		exporter:    mockExporter,
		runRepo:     mockRunRepo,
		syncRunning: true,
	}

	service.runNegationSync(context.Background())

	assert.True(t, service.syncRunning)
}

func TestNegationSyncService_GetStatus(t *testing.T) {
	service := &NegationSyncService{
		config: NegationSyncConfig{
			CronSchedule:        "0 5 * * *",
			RequestDelaySeconds: 1,
			SyncEnabled:         true,
			ExportReport:        true,
		},
	}

	status := service.GetStatus()

	assert.Equal(t, true, status["sync_enabled"])
	assert.Equal(t, "0 5 * * *", status["sync_cron"])
	assert.Equal(t, 1, status["sync_request_delay_s"])
	assert.Equal(t, true, status["export_report"])
}

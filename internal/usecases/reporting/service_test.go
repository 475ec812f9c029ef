package reporting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	mailmocks "github.com/vfg2006/negative-keyword-sync/infrastructure/integrator/mail/mocks"
	sheetsmocks "github.com/vfg2006/negative-keyword-sync/infrastructure/integrator/sheets/mocks"
	"github.com/vfg2006/negative-keyword-sync/infrastructure/integrator/sheets/sheetsclient"
	"github.com/vfg2006/negative-keyword-sync/internal/config"
	"github.com/vfg2006/negative-keyword-sync/internal/domain"
	"github.com/vfg2006/negative-keyword-sync/internal/usecases/negating"
	"go.uber.org/mock/gomock"
)

func testResult() *negating.RunResult {
	result := negating.NewRunResult("run123", domain.NegationRunModeCampaign)
	result.Record("[oculos]", "Campanha B")
	result.Record("[oculos]", "Campanha C")
	result.Record("[armacao]", "Campanha B")
	return result
}

func TestBuildReportRows(t *testing.T) {
	result := testResult()

	rows := BuildReportRows(result)

	// Uma linha por literal distinto, em ordem alfabética, com as entidades
	// deduplicadas separadas por vírgula
	assert.Equal(t, [][]any{
		{"[armacao]", "Campanha B"},
		{"[oculos]", "Campanha B, Campanha C"},
	}, rows)
}

func TestService_ExportRunReport(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSheets := sheetsmocks.NewMockIntegrator(ctrl)
	mockMailer := mailmocks.NewMockMailer(ctrl)

	cfg := &config.Config{
		Mail: config.Mail{
			Recipients: []string{"gestor@example.com"},
		},
	}

	service := NewService(cfg, mockSheets, mockMailer)
	result := testResult()

	file := &sheetsclient.SpreadsheetFile{ID: "sheet-abc", Name: "relatório"}

	mockSheets.EXPECT().
		CreateNegativesReport(gomock.Any(), ReportHeader(), BuildReportRows(result), result.Touched()).
		Return(file, nil)

	mockSheets.EXPECT().
		ShareWith("sheet-abc", []string{"gestor@example.com"}).
		Return(nil)

	mockMailer.EXPECT().
		Send(gomock.Any(), gomock.Any(), []string{"gestor@example.com"}).
		Return(nil)

	reportURL, err := service.ExportRunReport(result)

	assert.NoError(t, err)
	assert.Equal(t, file.URL(), reportURL)
}

func TestService_ExportRunReport_FalhaNoEmailEFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSheets := sheetsmocks.NewMockIntegrator(ctrl)
	mockMailer := mailmocks.NewMockMailer(ctrl)

	cfg := &config.Config{
		Mail: config.Mail{
			Recipients: []string{"gestor@example.com", "trafego@example.com"},
		},
	}

	service := NewService(cfg, mockSheets, mockMailer)
	result := testResult()

	mockSheets.EXPECT().
		CreateNegativesReport(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&sheetsclient.SpreadsheetFile{ID: "sheet-abc"}, nil)

	mockSheets.EXPECT().
		ShareWith("sheet-abc", gomock.Any()).
		Return(nil)

	mockMailer.EXPECT().
		Send(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(assert.AnError)

	_, err := service.ExportRunReport(result)

	// O erro nomeia os destinatários que deveriam ter recebido o resumo
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "gestor@example.com, trafego@example.com")
}

func TestService_ExportRunReport_FalhaNaPlanilha(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSheets := sheetsmocks.NewMockIntegrator(ctrl)
	mockMailer := mailmocks.NewMockMailer(ctrl)

	cfg := &config.Config{}
	service := NewService(cfg, mockSheets, mockMailer)

	mockSheets.EXPECT().
		CreateNegativesReport(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, assert.AnError)

	_, err := service.ExportRunReport(testResult())

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "erro ao criar a planilha do relatório")
}

func TestService_AccountCurrencySymbol(t *testing.T) {
	tests := []struct {
		name     string
		code     string
		expected string
	}{
		{
			name:     "Código mapeado deve retornar o símbolo",
			code:     "BRL",
			expected: "R$",
		},
		{
			name:     "Código sem símbolo mapeado deve retornar o próprio código",
			code:     "XTS",
			expected: "XTS",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSheets := sheetsmocks.NewMockIntegrator(ctrl)
			mockMailer := mailmocks.NewMockMailer(ctrl)

			mockSheets.EXPECT().
				AccountCurrencyCode().
				Return(tt.code, nil)

			service := NewService(&config.Config{}, mockSheets, mockMailer)

			symbol, err := service.AccountCurrencySymbol()

			assert.NoError(t, err)
			assert.Equal(t, tt.expected, symbol)
		})
	}
}

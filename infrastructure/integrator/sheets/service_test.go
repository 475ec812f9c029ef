package sheets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/negative-keyword-sync/infrastructure/integrator/sheets/sheetsclient"
	"github.com/vfg2006/negative-keyword-sync/infrastructure/integrator/sheets/sheetsclient/mocks"
	"github.com/vfg2006/negative-keyword-sync/internal/config"
	"go.uber.org/mock/gomock"
)

func testConfig() *config.Config {
	return &config.Config{
		Sheets: config.Sheets{
			TemplateSpreadsheetID: "template-id",
			ControlSpreadsheetID:  "control-id",
		},
	}
}

func TestSheetsIntegrator_CreateNegativesReport(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	integrator := New(testConfig(), mockClient)

	header := []any{"Palavra-chave negativada", "Entidades que receberam"}
	rows := [][]any{
		{"[armacao]", "Campanha B"},
		{"[oculos]", "Campanha B, Campanha C"},
	}
	entities := []string{"Campanha B", "Campanha C"}

	file := &sheetsclient.SpreadsheetFile{ID: "sheet-abc", Name: "Relatório"}

	mockClient.EXPECT().
		CopySpreadsheet("template-id", "Relatório").
		Return(file, nil)

	// Cabeçalho na primeira linha
	mockClient.EXPECT().
		UpdateValues("sheet-abc", "A1:B1", [][]any{header}).
		Return(nil)

	// Dados a partir da segunda linha
	mockClient.EXPECT().
		UpdateValues("sheet-abc", "A2:B3", rows).
		Return(nil)

	mockClient.EXPECT().
		SortRange("sheet-abc", 0, 1, 3, 0, 2, 0).
		Return(nil)

	// Lista de entidades na coluna lateral
	mockClient.EXPECT().
		UpdateValues("sheet-abc", "D1:D3", [][]any{
			{"Entidades atingidas"},
			{"Campanha B"},
			{"Campanha C"},
		}).
		Return(nil)

	mockClient.EXPECT().
		FreezeRows("sheet-abc", 0, 1).
		Return(nil)

	created, err := integrator.CreateNegativesReport("Relatório", header, rows, entities)

	assert.NoError(t, err)
	assert.Equal(t, file, created)
}

func TestSheetsIntegrator_CreateNegativesReport_SemLinhas(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	integrator := New(testConfig(), mockClient)

	header := []any{"Palavra-chave negativada", "Entidades que receberam"}
	file := &sheetsclient.SpreadsheetFile{ID: "sheet-abc"}

	mockClient.EXPECT().
		CopySpreadsheet("template-id", "Relatório vazio").
		Return(file, nil)

	mockClient.EXPECT().
		UpdateValues("sheet-abc", "A1:B1", [][]any{header}).
		Return(nil)

	// Sem linhas não há ordenação nem coluna lateral
	mockClient.EXPECT().
		FreezeRows("sheet-abc", 0, 1).
		Return(nil)

	created, err := integrator.CreateNegativesReport("Relatório vazio", header, nil, nil)

	assert.NoError(t, err)
	assert.Equal(t, file, created)
}

func TestSheetsIntegrator_ShareWith(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	integrator := New(testConfig(), mockClient)

	mockClient.EXPECT().
		ShareWithWriter("sheet-abc", "gestor@example.com").
		Return(nil)

	mockClient.EXPECT().
		ShareWithWriter("sheet-abc", "trafego@example.com").
		Return(assert.AnError)

	err := integrator.ShareWith("sheet-abc", []string{"gestor@example.com", "trafego@example.com"})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "trafego@example.com")
}

func TestSheetsIntegrator_AccountCurrencyCode(t *testing.T) {
	tests := []struct {
		name         string
		setup        func(mockClient *mocks.MockClient)
		expectedCode string
		hasError     bool
	}{
		{
			name: "Deve resolver o código da conta selecionada",
			setup: func(mockClient *mocks.MockClient) {
				mockClient.EXPECT().
					GetValues("control-id", "Controls!B2").
					Return([][]string{{"Conta X"}}, nil)

				mockClient.EXPECT().
					GetValues("control-id", "AccountStats!A2:B").
					Return([][]string{
						{"Conta Y", "USD"},
						{"Conta X", "BRL"},
					}, nil)
			},
			expectedCode: "BRL",
		},
		{
			name: "Célula de controle vazia deve falhar",
			setup: func(mockClient *mocks.MockClient) {
				mockClient.EXPECT().
					GetValues("control-id", "Controls!B2").
					Return([][]string{}, nil)
			},
			hasError: true,
		},
		{
			name: "Conta fora do intervalo de estatísticas deve falhar",
			setup: func(mockClient *mocks.MockClient) {
				mockClient.EXPECT().
					GetValues("control-id", "Controls!B2").
					Return([][]string{{"Conta Z"}}, nil)

				mockClient.EXPECT().
					GetValues("control-id", "AccountStats!A2:B").
					Return([][]string{{"Conta X", "BRL"}}, nil)
			},
			hasError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockClient := mocks.NewMockClient(ctrl)
			tt.setup(mockClient)

			integrator := New(testConfig(), mockClient)

			code, err := integrator.AccountCurrencyCode()

			if tt.hasError {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.expectedCode, code)
		})
	}
}

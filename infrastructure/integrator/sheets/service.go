package sheets

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/negative-keyword-sync/infrastructure/integrator/sheets/sheetsclient"
	"github.com/vfg2006/negative-keyword-sync/internal/config"
	"github.com/vfg2006/negative-keyword-sync/pkg/cellrange"
)

// reportSheetID é o ID da primeira aba da planilha modelo
const reportSheetID = 0

// Integrator é a porta de planilhas usada pelo exportador de relatório e
// pelos auxiliares da planilha de decomposição de performance
type Integrator interface {
	CreateNegativesReport(title string, header []any, rows [][]any, entities []string) (*sheetsclient.SpreadsheetFile, error)
	ShareWith(fileID string, recipients []string) error
	AccountCurrencyCode() (string, error)
}

type SheetsIntegrator struct {
	cfg    *config.Config
	Client sheetsclient.Client
}

func New(cfg *config.Config, client sheetsclient.Client) *SheetsIntegrator {
	return &SheetsIntegrator{
		cfg:    cfg,
		Client: client,
	}
}

// CreateNegativesReport duplica a planilha modelo e escreve o relatório:
// cabeçalho, uma linha por palavra-chave negativada, a lista de entidades
// atingidas na coluna lateral, ordenação pela palavra-chave e cabeçalho fixo.
func (s *SheetsIntegrator) CreateNegativesReport(title string, header []any, rows [][]any, entities []string) (*sheetsclient.SpreadsheetFile, error) {
	file, err := s.Client.CopySpreadsheet(s.cfg.Sheets.TemplateSpreadsheetID, title)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao copiar a planilha modelo")
	}

	logrus.WithFields(logrus.Fields{
		"spreadsheet_id": file.ID,
		"title":          title,
	}).Info("sheets: planilha de relatório criada")

	headerRange := cellrange.Range(1, cellrange.ReportHeaderRow, len(header), cellrange.ReportHeaderRow)
	if err := s.Client.UpdateValues(file.ID, headerRange, [][]any{header}); err != nil {
		return nil, errors.Wrap(err, "erro ao escrever o cabeçalho do relatório")
	}

	if len(rows) > 0 {
		dataRange := cellrange.Range(
			1, cellrange.ReportFirstDataRow,
			len(header), cellrange.ReportFirstDataRow+len(rows)-1,
		)
		if err := s.Client.UpdateValues(file.ID, dataRange, rows); err != nil {
			return nil, errors.Wrap(err, "erro ao escrever as linhas do relatório")
		}

		// Ordena pela primeira coluna (palavra-chave), como o relatório original
		err = s.Client.SortRange(file.ID, reportSheetID,
			cellrange.ReportFirstDataRow-1, cellrange.ReportFirstDataRow-1+len(rows),
			0, len(header), 0)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao ordenar o relatório")
		}
	}

	// Lista deduplicada de entidades atingidas na coluna lateral
	if len(entities) > 0 {
		sideCol := len(header) + 2
		sideValues := make([][]any, 0, len(entities)+1)
		sideValues = append(sideValues, []any{"Entidades atingidas"})
		for _, entity := range entities {
			sideValues = append(sideValues, []any{entity})
		}

		sideRange := cellrange.Range(sideCol, cellrange.ReportHeaderRow, sideCol, len(entities)+1)
		if err := s.Client.UpdateValues(file.ID, sideRange, sideValues); err != nil {
			return nil, errors.Wrap(err, "erro ao escrever a lista de entidades")
		}
	}

	if err := s.Client.FreezeRows(file.ID, reportSheetID, cellrange.ReportHeaderRow); err != nil {
		return nil, errors.Wrap(err, "erro ao congelar o cabeçalho do relatório")
	}

	return file, nil
}

// ShareWith concede edição a cada destinatário configurado
func (s *SheetsIntegrator) ShareWith(fileID string, recipients []string) error {
	for _, recipient := range recipients {
		if err := s.Client.ShareWithWriter(fileID, recipient); err != nil {
			return errors.Wrapf(err, "erro ao compartilhar a planilha com %s", recipient)
		}
	}
	return nil
}

// AccountCurrencyCode lê a conta selecionada na célula de controle e resolve
// o código de moeda dela no intervalo de estatísticas importado
func (s *SheetsIntegrator) AccountCurrencyCode() (string, error) {
	control, err := s.Client.GetValues(s.cfg.Sheets.ControlSpreadsheetID, cellrange.AccountControlCell)
	if err != nil {
		return "", errors.Wrap(err, "erro ao ler a célula de controle da conta")
	}

	if len(control) == 0 || len(control[0]) == 0 || control[0][0] == "" {
		return "", fmt.Errorf("célula de controle %s vazia", cellrange.AccountControlCell)
	}
	account := control[0][0]

	stats, err := s.Client.GetValues(s.cfg.Sheets.ControlSpreadsheetID, cellrange.AccountStatsRange)
	if err != nil {
		return "", errors.Wrap(err, "erro ao ler o intervalo de estatísticas de contas")
	}

	for _, row := range stats {
		if len(row) >= 2 && row[0] == account {
			return row[1], nil
		}
	}

	return "", fmt.Errorf("conta %q não encontrada no intervalo %s", account, cellrange.AccountStatsRange)
}

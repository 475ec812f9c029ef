package reporting

import (
	"fmt"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/negative-keyword-sync/infrastructure/integrator/mail"
	"github.com/vfg2006/negative-keyword-sync/infrastructure/integrator/sheets"
	"github.com/vfg2006/negative-keyword-sync/internal/config"
	"github.com/vfg2006/negative-keyword-sync/internal/usecases/negating"
	"github.com/vfg2006/negative-keyword-sync/pkg/currency"
)

// Exporter publica o resultado de uma execução: planilha + e-mail de resumo
type Exporter interface {
	ExportRunReport(result *negating.RunResult) (reportURL string, err error)
	AccountCurrencySymbol() (string, error)
}

type Service struct {
	cfg    *config.Config
	sheets sheets.Integrator
	mailer mail.Mailer
}

func NewService(cfg *config.Config, sheetsService sheets.Integrator, mailer mail.Mailer) *Service {
	return &Service{
		cfg:    cfg,
		sheets: sheetsService,
		mailer: mailer,
	}
}

// ReportHeader é o cabeçalho do relatório exportado
func ReportHeader() []any {
	return []any{"Palavra-chave negativada", "Entidades que receberam"}
}

// BuildReportRows monta uma linha por literal distinto, em ordem alfabética,
// com a lista deduplicada de entidades que o receberam separada por vírgula
func BuildReportRows(result *negating.RunResult) [][]any {
	keywords := result.Keywords()

	rows := make([][]any, 0, len(keywords))
	for _, literal := range keywords {
		rows = append(rows, []any{
			literal,
			strings.Join(result.EntitiesFor(literal), ", "),
		})
	}

	return rows
}

// ExportRunReport cria a planilha do relatório, compartilha com os
// destinatários e envia o e-mail de resumo. A falha no envio do e-mail é
// fatal: sem ele o registro informativo da execução se perderia.
func (s *Service) ExportRunReport(result *negating.RunResult) (string, error) {
	title := fmt.Sprintf("Negativação cruzada %s (%s)",
		time.Now().Format(time.DateOnly), result.RunID)

	file, err := s.sheets.CreateNegativesReport(title, ReportHeader(), BuildReportRows(result), result.Touched())
	if err != nil {
		return "", errors.Wrap(err, "erro ao criar a planilha do relatório")
	}

	if err := s.sheets.ShareWith(file.ID, s.cfg.Mail.Recipients); err != nil {
		return "", err
	}

	subject := fmt.Sprintf("Negativação cruzada: resumo da execução %s", result.RunID)
	body := fmt.Sprintf("%s\n\nRelatório completo: %s\n", result.LogText(), file.URL())

	if err := s.mailer.Send(subject, body, s.cfg.Mail.Recipients); err != nil {
		// As negativas já foram aplicadas; sem o e-mail o registro se perde,
		// então o erro sobe nomeando os destinatários pretendidos
		return "", errors.Wrapf(err, "falha ao enviar o resumo da execução para %s",
			strings.Join(s.cfg.Mail.Recipients, ", "))
	}

	logrus.WithFields(logrus.Fields{
		"run_id":     result.RunID,
		"report_url": file.URL(),
	}).Info("reporting: relatório exportado e resumo enviado")

	return file.URL(), nil
}

// AccountCurrencySymbol resolve o símbolo de moeda da conta selecionada na
// planilha de controle da decomposição de performance
func (s *Service) AccountCurrencySymbol() (string, error) {
	code, err := s.sheets.AccountCurrencyCode()
	if err != nil {
		return "", err
	}

	return currency.SymbolOrCode(code), nil
}

package handler

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/negative-keyword-sync/internal/usecases/reporting"
	"github.com/vfg2006/negative-keyword-sync/pkg/apiErrors"
	"github.com/vfg2006/negative-keyword-sync/pkg/currency"
)

// GetCurrencySymbol resolve o símbolo de exibição de um código ISO-4217
func GetCurrencySymbol() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		code := r.URL.Query().Get("code")
		if code == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Parâmetro code não informado", nil)
			return
		}

		symbol, ok := currency.Symbol(code)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrUnknownCurrency, "Código de moeda não mapeado", map[string]any{"code": code})
			return
		}

		_ = json.NewEncoder(w).Encode(map[string]string{
			"code":   code,
			"symbol": symbol,
		})
	}
}

// GetAccountCurrency resolve o símbolo de moeda da conta selecionada na
// planilha de controle da decomposição de performance
func GetAccountCurrency(exporter reporting.Exporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetAccountCurrency")

		symbol, err := exporter.AccountCurrencySymbol()
		if err != nil {
			logrus.WithError(err).Error("Erro ao resolver a moeda da conta")
			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao resolver a moeda da conta", nil)
			return
		}

		_ = json.NewEncoder(w).Encode(map[string]string{
			"symbol": symbol,
		})
	}
}

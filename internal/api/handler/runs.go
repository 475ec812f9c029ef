package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/negative-keyword-sync/infrastructure/repository"
	"github.com/vfg2006/negative-keyword-sync/pkg/apiErrors"
)

const defaultRunsLimit = 30

// ListNegationRuns devolve o histórico de execuções mais recentes
func ListNegationRuns(repo repository.NegationRunRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - ListNegationRuns")

		limit := defaultRunsLimit
		if raw := r.URL.Query().Get("limit"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed < 1 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro limit inválido", nil)
				return
			}
			limit = parsed
		}

		runs, err := repo.ListRuns(limit)
		if err != nil {
			logrus.WithError(err).Error("Erro ao listar execuções")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar execuções", nil)
			return
		}

		_ = json.NewEncoder(w).Encode(runs)
	}
}

// GetNegationRun devolve uma execução específica
func GetNegationRun(repo repository.NegationRunRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetNegationRun")

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da execução não informado", nil)
			return
		}

		run, err := repo.GetByID(id)
		if err != nil {
			logrus.WithError(err).Error("Erro ao buscar execução")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar execução", nil)
			return
		}

		if run == nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Execução não encontrada", nil)
			return
		}

		_ = json.NewEncoder(w).Encode(run)
	}
}

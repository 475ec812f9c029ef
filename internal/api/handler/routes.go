package handler

import (
	"net/http"

	"github.com/vfg2006/negative-keyword-sync/infrastructure/repository"
	"github.com/vfg2006/negative-keyword-sync/internal/api/handler/router"
	"github.com/vfg2006/negative-keyword-sync/internal/usecases/reporting"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/negation/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}

func NegationRuns(repo repository.NegationRunRepository) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/runs",
			Method:  http.MethodGet,
			Handler: ListNegationRuns(repo),
		},
		{
			Path:    "/v1/runs/:id",
			Method:  http.MethodGet,
			Handler: GetNegationRun(repo),
		},
	}
}

func Helpers(exporter reporting.Exporter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/helpers/currency-symbol",
			Method:  http.MethodGet,
			Handler: GetCurrencySymbol(),
		},
		{
			Path:    "/v1/helpers/account-currency",
			Method:  http.MethodGet,
			Handler: GetAccountCurrency(exporter),
		},
	}
}

// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/negative-keyword-sync/infrastructure/database/postgres"
	"github.com/vfg2006/negative-keyword-sync/internal/domain"
)

const (
	negationRunsTable = "negation_runs nr"
)

type NegationRunRepository interface {
	Save(run *domain.NegationRun) error
	ListRuns(limit int) (*domain.NegationRunsResponse, error)
	GetByID(id string) (*domain.NegationRun, error)
}

type negationRunRepository struct {
	conn *postgres.Connection
}

func NewNegationRunRepository(conn *postgres.Connection) NegationRunRepository {
	return &negationRunRepository{
		conn: conn,
	}
}

// Save insere o registro de uma execução concluída
func (r *negationRunRepository) Save(run *domain.NegationRun) error {
	queryBuilder := squirrel.
		Insert("negation_runs").
		Columns(
			"id",
			"mode",
			"started_at",
			"finished_at",
			"campaigns_processed",
			"entities_touched",
			"negatives_applied",
			"negatives_failed",
			"report_url",
			"created_at",
		).
		Values(
			run.ID,
			string(run.Mode),
			run.StartedAt,
			run.FinishedAt,
			run.CampaignsProcessed,
			run.EntitiesTouched,
			run.NegativesApplied,
			run.NegativesFailed,
			run.ReportURL,
			time.Now(),
		).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := queryBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(sqlQuery, args...); err != nil {
		return fmt.Errorf("erro ao salvar execução: %w", err)
	}

	return nil
}

// ListRuns devolve as execuções mais recentes, limitadas pelo chamador
func (r *negationRunRepository) ListRuns(limit int) (*domain.NegationRunsResponse, error) {
	queryBuilder := squirrel.
		Select(
			"nr.id",
			"nr.mode",
			"nr.started_at",
			"nr.finished_at",
			"nr.campaigns_processed",
			"nr.entities_touched",
			"nr.negatives_applied",
			"nr.negatives_failed",
			"nr.report_url",
			"nr.created_at",
		).
		From(negationRunsTable).
		OrderBy("nr.started_at DESC").
		Limit(uint64(limit)).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(sqlQuery, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return &domain.NegationRunsResponse{
				Runs:       []domain.NegationRun{},
				LastUpdate: time.Now(),
			}, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	runs := make([]domain.NegationRun, 0)
	var lastUpdate time.Time

	for rows.Next() {
		run, err := r.scanNegationRun(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear execução: %w", err)
		}

		runs = append(runs, *run)

		if run.FinishedAt.After(lastUpdate) {
			lastUpdate = run.FinishedAt
		}
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	if lastUpdate.IsZero() {
		lastUpdate = time.Now()
	}

	return &domain.NegationRunsResponse{
		Runs:       runs,
		LastUpdate: lastUpdate,
	}, nil
}

// GetByID devolve uma execução específica, ou nil quando não existe
func (r *negationRunRepository) GetByID(id string) (*domain.NegationRun, error) {
	queryBuilder := squirrel.
		Select(
			"nr.id",
			"nr.mode",
			"nr.started_at",
			"nr.finished_at",
			"nr.campaigns_processed",
			"nr.entities_touched",
			"nr.negatives_applied",
			"nr.negatives_failed",
			"nr.report_url",
			"nr.created_at",
		).
		From(negationRunsTable).
		Where(squirrel.Eq{"nr.id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, nil
	}

	run, err := r.scanNegationRun(rows)
	if err != nil {
		return nil, fmt.Errorf("erro ao escanear execução: %w", err)
	}

	return run, nil
}

func (r *negationRunRepository) scanNegationRun(rows *sql.Rows) (*domain.NegationRun, error) {
	var run domain.NegationRun
	var mode string
	var reportURL sql.NullString

	err := rows.Scan(
		&run.ID,
		&mode,
		&run.StartedAt,
		&run.FinishedAt,
		&run.CampaignsProcessed,
		&run.EntitiesTouched,
		&run.NegativesApplied,
		&run.NegativesFailed,
		&reportURL,
		&run.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	run.Mode = domain.NegationRunMode(mode)
	if reportURL.Valid {
		run.ReportURL = &reportURL.String
	}

	return &run, nil
}

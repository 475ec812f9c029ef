package negating

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/vfg2006/negative-keyword-sync/internal/domain"
)

// RunResult carrega todo o estado mutável de uma execução: o mapa de
// negativas aplicadas, as entidades atingidas e o log da execução. É criado
// no início do processamento e devolvido por ele; nenhum estado vive fora
// daqui entre execuções.
type RunResult struct {
	RunID      string
	Mode       domain.NegationRunMode
	StartedAt  time.Time
	FinishedAt time.Time

	CampaignsProcessed int
	Applied            int
	Failed             int

	// records mapeia o literal da negativa para as entidades que a receberam,
	// em ordem de aplicação e sem repetição por par (palavra-chave, entidade)
	records map[string][]string

	touched    []string
	touchedSet map[string]struct{}

	logLines []string
}

func NewRunResult(runID string, mode domain.NegationRunMode) *RunResult {
	return &RunResult{
		RunID:      runID,
		Mode:       mode,
		StartedAt:  time.Now(),
		records:    make(map[string][]string),
		touchedSet: make(map[string]struct{}),
	}
}

// Record registra um par (negativa, entidade) aplicado com sucesso.
// Pares repetidos são ignorados.
func (r *RunResult) Record(literal, entityDescriptor string) {
	for _, existing := range r.records[literal] {
		if existing == entityDescriptor {
			return
		}
	}
	r.records[literal] = append(r.records[literal], entityDescriptor)

	if _, ok := r.touchedSet[entityDescriptor]; !ok {
		r.touchedSet[entityDescriptor] = struct{}{}
		r.touched = append(r.touched, entityDescriptor)
	}
}

// Keywords devolve os literais registrados em ordem alfabética
func (r *RunResult) Keywords() []string {
	keywords := make([]string, 0, len(r.records))
	for literal := range r.records {
		keywords = append(keywords, literal)
	}
	sort.Strings(keywords)
	return keywords
}

// EntitiesFor devolve as entidades que receberam o literal, na ordem de aplicação
func (r *RunResult) EntitiesFor(literal string) []string {
	return r.records[literal]
}

// Touched devolve as entidades atingidas, deduplicadas, na ordem de aplicação
func (r *RunResult) Touched() []string {
	return r.touched
}

// Logf acrescenta uma linha ao log da execução
func (r *RunResult) Logf(format string, args ...any) {
	line := fmt.Sprintf("%s %s", time.Now().Format(time.TimeOnly), fmt.Sprintf(format, args...))
	r.logLines = append(r.logLines, line)
}

// LogText devolve o log completo da execução
func (r *RunResult) LogText() string {
	return strings.Join(r.logLines, "\n")
}

// Finish fecha o resultado marcando o fim da execução
func (r *RunResult) Finish() {
	r.FinishedAt = time.Now()
}

// NegationRun converte o resultado no registro persistido da execução
func (r *RunResult) NegationRun() *domain.NegationRun {
	return &domain.NegationRun{
		ID:                 r.RunID,
		Mode:               r.Mode,
		StartedAt:          r.StartedAt,
		FinishedAt:         r.FinishedAt,
		CampaignsProcessed: r.CampaignsProcessed,
		EntitiesTouched:    len(r.touched),
		NegativesApplied:   r.Applied,
		NegativesFailed:    r.Failed,
	}
}

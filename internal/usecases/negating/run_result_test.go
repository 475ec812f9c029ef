package negating

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/negative-keyword-sync/internal/domain"
)

func TestRunResult_Record(t *testing.T) {
	result := NewRunResult("run123", domain.NegationRunModeCampaign)

	result.Record("[oculos]", "Campanha B")
	result.Record("[oculos]", "Campanha C")
	result.Record("[oculos]", "Campanha B") // par repetido, deve ser ignorado
	result.Record("[armacao]", "Campanha B")

	assert.Equal(t, []string{"[armacao]", "[oculos]"}, result.Keywords())
	assert.Equal(t, []string{"Campanha B", "Campanha C"}, result.EntitiesFor("[oculos]"))
	assert.Equal(t, []string{"Campanha B"}, result.EntitiesFor("[armacao]"))

	// Entidades atingidas deduplicadas, na ordem de aplicação
	assert.Equal(t, []string{"Campanha B", "Campanha C"}, result.Touched())
}

func TestRunResult_NegationRun(t *testing.T) {
	result := NewRunResult("run123", domain.NegationRunModeBoth)
	result.CampaignsProcessed = 3
	result.Applied = 10
	result.Failed = 2
	result.Record("[oculos]", "Campanha B")
	result.Record("[oculos]", "Campanha C")
	result.Finish()

	run := result.NegationRun()

	assert.Equal(t, "run123", run.ID)
	assert.Equal(t, domain.NegationRunModeBoth, run.Mode)
	assert.Equal(t, 3, run.CampaignsProcessed)
	assert.Equal(t, 2, run.EntitiesTouched)
	assert.Equal(t, 10, run.NegativesApplied)
	assert.Equal(t, 2, run.NegativesFailed)
	assert.Nil(t, run.ReportURL)
	assert.False(t, run.FinishedAt.Before(run.StartedAt))
}

func TestRunResult_LogText(t *testing.T) {
	result := NewRunResult("run123", domain.NegationRunModeCampaign)

	result.Logf("Execução %s iniciada", "run123")
	result.Logf("2 campanhas elegíveis após filtros")

	text := result.LogText()
	assert.Contains(t, text, "Execução run123 iniciada")
	assert.Contains(t, text, "2 campanhas elegíveis após filtros")
}

package domain

import "time"

// NegationRunMode indica o nível em que a cross-negativação rodou
type NegationRunMode string

const (
	NegationRunModeCampaign NegationRunMode = "campaign"
	NegationRunModeAdGroup  NegationRunMode = "adgroup"
	NegationRunModeBoth     NegationRunMode = "campaign+adgroup"
)

// NegationRun é o registro persistido de uma execução de sincronização
type NegationRun struct {
	ID                 string          `json:"id"`
	Mode               NegationRunMode `json:"mode"`
	StartedAt          time.Time       `json:"started_at"`
	FinishedAt         time.Time       `json:"finished_at"`
	CampaignsProcessed int             `json:"campaigns_processed"`
	EntitiesTouched    int             `json:"entities_touched"`
	NegativesApplied   int             `json:"negatives_applied"`
	NegativesFailed    int             `json:"negatives_failed"`
	ReportURL          *string         `json:"report_url,omitempty"`
	CreatedAt          time.Time       `json:"created_at"`
}

// NegationRunsResponse é a resposta da listagem de execuções na API administrativa
type NegationRunsResponse struct {
	Runs       []NegationRun `json:"runs"`
	LastUpdate time.Time     `json:"last_update"`
}

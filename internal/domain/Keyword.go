package domain

// MatchType é o tipo de correspondência de uma palavra-chave
type MatchType string

const (
	MatchTypeBroad  MatchType = "BROAD"
	MatchTypePhrase MatchType = "PHRASE"
	MatchTypeExact  MatchType = "EXACT"
)

// Keyword é o retrato imutável de uma palavra-chave no início da execução.
// O custo vem em micros, como a API do Google Ads reporta.
type Keyword struct {
	Text       string
	MatchType  MatchType
	CostMicros int64
}

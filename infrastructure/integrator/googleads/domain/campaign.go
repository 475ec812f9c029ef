package adsdomain

// Campaign é a campanha como a API do Google Ads a devolve
type Campaign struct {
	ResourceName string `json:"resourceName"`
	ID           string `json:"id"`
	Name         string `json:"name"`
	Status       string `json:"status"`
}

// AdGroup é o grupo de anúncios como a API devolve
type AdGroup struct {
	ResourceName string `json:"resourceName"`
	ID           string `json:"id"`
	Name         string `json:"name"`
	Status       string `json:"status"`
}

// KeywordInfo é o critério de palavra-chave dentro de um AdGroupCriterion
type KeywordInfo struct {
	Text      string `json:"text"`
	MatchType string `json:"matchType"`
}

// AdGroupCriterion carrega a palavra-chave de um resultado de busca
type AdGroupCriterion struct {
	ResourceName string      `json:"resourceName"`
	Status       string      `json:"status"`
	Keyword      KeywordInfo `json:"keyword"`
}

// Metrics traz as métricas pedidas na consulta. A API serializa int64 como string.
type Metrics struct {
	CostMicros string `json:"costMicros"`
}

// SearchResult é uma linha do resultado de uma consulta GAQL
type SearchResult struct {
	Campaign         Campaign         `json:"campaign"`
	AdGroup          AdGroup          `json:"adGroup"`
	AdGroupCriterion AdGroupCriterion `json:"adGroupCriterion"`
	Metrics          Metrics          `json:"metrics"`
}

// SearchResponse é a resposta paginada do endpoint googleAds:search
type SearchResponse struct {
	Results       []SearchResult `json:"results"`
	NextPageToken string         `json:"nextPageToken"`
}

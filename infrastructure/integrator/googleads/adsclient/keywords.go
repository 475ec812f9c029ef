package adsclient

import (
	"fmt"

	adsdomain "github.com/vfg2006/negative-keyword-sync/infrastructure/integrator/googleads/domain"
)

// ListTopKeywordsByCampaign busca as palavras-chave ativas de uma campanha,
// ordenadas por custo decrescente e limitadas ao teto configurado
func (c *AdsClient) ListTopKeywordsByCampaign(customerID, campaignID string, limit int) ([]adsdomain.SearchResult, error) {
	query := fmt.Sprintf(`SELECT ad_group_criterion.keyword.text,
			ad_group_criterion.keyword.match_type,
			metrics.cost_micros
		FROM keyword_view
		WHERE campaign.id = %s
		AND ad_group_criterion.status = 'ENABLED'
		ORDER BY metrics.cost_micros DESC
		LIMIT %d`, campaignID, limit)

	return c.search(customerID, query)
}

// ListTopKeywordsByAdGroup busca as palavras-chave ativas de um grupo de
// anúncios, ordenadas por custo decrescente e limitadas ao teto configurado
func (c *AdsClient) ListTopKeywordsByAdGroup(customerID, adGroupID string, limit int) ([]adsdomain.SearchResult, error) {
	query := fmt.Sprintf(`SELECT ad_group_criterion.keyword.text,
			ad_group_criterion.keyword.match_type,
			metrics.cost_micros
		FROM keyword_view
		WHERE ad_group.id = %s
		AND ad_group_criterion.status = 'ENABLED'
		ORDER BY metrics.cost_micros DESC
		LIMIT %d`, adGroupID, limit)

	return c.search(customerID, query)
}

package adsclient

import (
	"fmt"

	adsdomain "github.com/vfg2006/negative-keyword-sync/infrastructure/integrator/googleads/domain"
)

// ListEnabledAdGroups busca os grupos de anúncios ativos de uma campanha
func (c *AdsClient) ListEnabledAdGroups(customerID, campaignID string) ([]adsdomain.AdGroup, error) {
	query := fmt.Sprintf(`SELECT ad_group.id, ad_group.name, ad_group.status
		FROM ad_group
		WHERE ad_group.status = 'ENABLED'
		AND campaign.id = %s`, campaignID)

	results, err := c.search(customerID, query)
	if err != nil {
		return nil, err
	}

	adGroups := make([]adsdomain.AdGroup, 0, len(results))
	for _, result := range results {
		adGroups = append(adGroups, result.AdGroup)
	}

	return adGroups, nil
}

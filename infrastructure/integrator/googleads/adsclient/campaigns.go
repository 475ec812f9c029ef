package adsclient

import (
	adsdomain "github.com/vfg2006/negative-keyword-sync/infrastructure/integrator/googleads/domain"
)

// ListEnabledCampaigns busca as campanhas ativas que não são experimentos
func (c *AdsClient) ListEnabledCampaigns(customerID string) ([]adsdomain.Campaign, error) {
	query := `SELECT campaign.id, campaign.name, campaign.status
		FROM campaign
		WHERE campaign.status = 'ENABLED'
		AND campaign.experiment_type = 'BASE'`

	results, err := c.search(customerID, query)
	if err != nil {
		return nil, err
	}

	campaigns := make([]adsdomain.Campaign, 0, len(results))
	for _, result := range results {
		campaigns = append(campaigns, result.Campaign)
	}

	return campaigns, nil
}

package negating

import (
	"github.com/vfg2006/negative-keyword-sync/internal/domain"
)

// AdsService define a porta do Google Ads usada pelo motor de cross-negativação
type AdsService interface {
	// ListEligibleCampaigns busca as campanhas ativas e não experimentais
	ListEligibleCampaigns() ([]domain.Campaign, error)

	// ListAdGroups busca os grupos de anúncios ativos de uma campanha
	ListAdGroups(campaign domain.Campaign) ([]domain.AdGroup, error)

	// TopKeywordsByCampaign busca as palavras-chave mais caras de uma campanha,
	// em ordem de custo decrescente, limitadas ao teto informado
	TopKeywordsByCampaign(campaignID string, limit int) ([]domain.Keyword, error)

	// TopKeywordsByAdGroup busca as palavras-chave mais caras de um grupo de anúncios
	TopKeywordsByAdGroup(adGroupID string, limit int) ([]domain.Keyword, error)

	// CreateCampaignNegative aplica uma palavra-chave negativa em uma campanha
	CreateCampaignNegative(campaignID, text string, matchType domain.MatchType) error

	// CreateAdGroupNegative aplica uma palavra-chave negativa em um grupo de anúncios
	CreateAdGroupNegative(adGroupID, text string, matchType domain.MatchType) error
}

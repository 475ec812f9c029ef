package googleads

import (
	"strconv"

	"github.com/sirupsen/logrus"
	adsdomain "github.com/vfg2006/negative-keyword-sync/infrastructure/integrator/googleads/domain"
	"github.com/vfg2006/negative-keyword-sync/infrastructure/integrator/googleads/adsclient"
	"github.com/vfg2006/negative-keyword-sync/internal/config"
	"github.com/vfg2006/negative-keyword-sync/internal/domain"
)

// Integrator é a porta do Google Ads usada pelo motor de cross-negativação
type Integrator interface {
	ListEligibleCampaigns() ([]domain.Campaign, error)
	ListAdGroups(campaign domain.Campaign) ([]domain.AdGroup, error)
	TopKeywordsByCampaign(campaignID string, limit int) ([]domain.Keyword, error)
	TopKeywordsByAdGroup(adGroupID string, limit int) ([]domain.Keyword, error)
	CreateCampaignNegative(campaignID, text string, matchType domain.MatchType) error
	CreateAdGroupNegative(adGroupID, text string, matchType domain.MatchType) error
}

type AdsIntegrator struct {
	cfg    *config.Config
	Client adsclient.Client
}

func New(cfg *config.Config, client adsclient.Client) *AdsIntegrator {
	return &AdsIntegrator{
		cfg:    cfg,
		Client: client,
	}
}

// ListEligibleCampaigns busca as campanhas ativas e não experimentais da conta
func (s *AdsIntegrator) ListEligibleCampaigns() ([]domain.Campaign, error) {
	resp, err := s.Client.ListEnabledCampaigns(s.cfg.GoogleAds.CustomerID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"customer_id": s.cfg.GoogleAds.CustomerID,
			"error":       err.Error(),
		}).Error("ads: falha ao buscar campanhas da API")
		return nil, err
	}

	campaigns := make([]domain.Campaign, 0, len(resp))
	for _, campaign := range resp {
		campaigns = append(campaigns, domain.Campaign{
			ID:   campaign.ID,
			Name: campaign.Name,
		})
	}

	logrus.WithField("campaigns", len(campaigns)).Debug("ads: campanhas elegíveis carregadas")

	return campaigns, nil
}

// ListAdGroups busca os grupos de anúncios ativos de uma campanha
func (s *AdsIntegrator) ListAdGroups(campaign domain.Campaign) ([]domain.AdGroup, error) {
	resp, err := s.Client.ListEnabledAdGroups(s.cfg.GoogleAds.CustomerID, campaign.ID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"campaign_id": campaign.ID,
			"error":       err.Error(),
		}).Error("ads: falha ao buscar grupos de anúncios da API")
		return nil, err
	}

	adGroups := make([]domain.AdGroup, 0, len(resp))
	for _, adGroup := range resp {
		adGroups = append(adGroups, domain.AdGroup{
			ID:           adGroup.ID,
			Name:         adGroup.Name,
			CampaignID:   campaign.ID,
			CampaignName: campaign.Name,
		})
	}

	return adGroups, nil
}

// TopKeywordsByCampaign busca as palavras-chave mais caras de uma campanha
func (s *AdsIntegrator) TopKeywordsByCampaign(campaignID string, limit int) ([]domain.Keyword, error) {
	results, err := s.Client.ListTopKeywordsByCampaign(s.cfg.GoogleAds.CustomerID, campaignID, limit)
	if err != nil {
		return nil, err
	}

	return factoryKeywords(results), nil
}

// TopKeywordsByAdGroup busca as palavras-chave mais caras de um grupo de anúncios
func (s *AdsIntegrator) TopKeywordsByAdGroup(adGroupID string, limit int) ([]domain.Keyword, error) {
	results, err := s.Client.ListTopKeywordsByAdGroup(s.cfg.GoogleAds.CustomerID, adGroupID, limit)
	if err != nil {
		return nil, err
	}

	return factoryKeywords(results), nil
}

// CreateCampaignNegative aplica uma palavra-chave negativa em uma campanha
func (s *AdsIntegrator) CreateCampaignNegative(campaignID, text string, matchType domain.MatchType) error {
	return s.Client.CreateCampaignNegative(s.cfg.GoogleAds.CustomerID, campaignID, text, string(matchType))
}

// CreateAdGroupNegative aplica uma palavra-chave negativa em um grupo de anúncios
func (s *AdsIntegrator) CreateAdGroupNegative(adGroupID, text string, matchType domain.MatchType) error {
	return s.Client.CreateAdGroupNegative(s.cfg.GoogleAds.CustomerID, adGroupID, text, string(matchType))
}

// factoryKeywords converte linhas de keyword_view no retrato de domínio.
// A ordem de custo decrescente da consulta é preservada.
func factoryKeywords(results []adsdomain.SearchResult) []domain.Keyword {
	keywords := make([]domain.Keyword, 0, len(results))
	for _, result := range results {
		costMicros, err := strconv.ParseInt(result.Metrics.CostMicros, 10, 64)
		if err != nil && result.Metrics.CostMicros != "" {
			logrus.WithFields(logrus.Fields{
				"cost_micros": result.Metrics.CostMicros,
				"keyword":     result.AdGroupCriterion.Keyword.Text,
			}).Warn("ads: erro ao converter custo da palavra-chave")
		}

		keywords = append(keywords, domain.Keyword{
			Text:       result.AdGroupCriterion.Keyword.Text,
			MatchType:  domain.MatchType(result.AdGroupCriterion.Keyword.MatchType),
			CostMicros: costMicros,
		})
	}

	return keywords
}

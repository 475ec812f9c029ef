package adsclient

import (
	"fmt"
	"net/http"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	adsdomain "github.com/vfg2006/negative-keyword-sync/infrastructure/integrator/googleads/domain"
	"github.com/vfg2006/negative-keyword-sync/pkg/utils"
)

type keywordCreate struct {
	Text      string `json:"text"`
	MatchType string `json:"matchType"`
}

type campaignCriterionCreate struct {
	Campaign string        `json:"campaign"`
	Negative bool          `json:"negative"`
	Keyword  keywordCreate `json:"keyword"`
}

type adGroupCriterionCreate struct {
	AdGroup  string        `json:"adGroup"`
	Negative bool          `json:"negative"`
	Keyword  keywordCreate `json:"keyword"`
}

type mutateOperation[T any] struct {
	Create T `json:"create"`
}

type mutateRequest[T any] struct {
	Operations []mutateOperation[T] `json:"operations"`
}

// CreateCampaignNegative cria uma palavra-chave negativa em uma campanha
func (c *AdsClient) CreateCampaignNegative(customerID, campaignID, text, matchType string) error {
	url := fmt.Sprintf("%s/customers/%s/campaignCriteria:mutate", c.Cfg.GoogleAds.URL, customerID)

	payload := mutateRequest[campaignCriterionCreate]{
		Operations: []mutateOperation[campaignCriterionCreate]{
			{
				Create: campaignCriterionCreate{
					Campaign: fmt.Sprintf("customers/%s/campaigns/%s", customerID, campaignID),
					Negative: true,
					Keyword:  keywordCreate{Text: text, MatchType: matchType},
				},
			},
		},
	}

	return c.mutate(url, payload)
}

// CreateAdGroupNegative cria uma palavra-chave negativa em um grupo de anúncios
func (c *AdsClient) CreateAdGroupNegative(customerID, adGroupID, text, matchType string) error {
	url := fmt.Sprintf("%s/customers/%s/adGroupCriteria:mutate", c.Cfg.GoogleAds.URL, customerID)

	payload := mutateRequest[adGroupCriterionCreate]{
		Operations: []mutateOperation[adGroupCriterionCreate]{
			{
				Create: adGroupCriterionCreate{
					AdGroup:  fmt.Sprintf("customers/%s/adGroups/%s", customerID, adGroupID),
					Negative: true,
					Keyword:  keywordCreate{Text: text, MatchType: matchType},
				},
			},
		},
	}

	return c.mutate(url, payload)
}

func (c *AdsClient) mutate(url string, payload any) error {
	if logrus.IsLevelEnabled(logrus.DebugLevel) {
		logrus.Debug("ads: payload de mutação: ", utils.PrettyJson(payload))
	}

	_, err := c.doJSON(http.MethodPost, url, payload)
	if err != nil {
		// Se o token foi renovado durante a chamada, tentar novamente
		if errors.Is(err, ErrTokenRenewed) {
			_, err = c.doJSON(http.MethodPost, url, payload)
		}
	}

	if err != nil {
		var apiError *adsdomain.ErrorResponse
		if errors.As(err, &apiError) && apiError.IsDuplicate() {
			return errors.Wrap(ErrDuplicateNegative, apiError.Detail.Message)
		}
		return err
	}

	return nil
}

// ErrDuplicateNegative indica que o negativo já existia no alvo
var ErrDuplicateNegative = errors.New("palavra-chave negativa já existe no alvo")

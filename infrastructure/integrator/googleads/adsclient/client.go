package adsclient

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	adsdomain "github.com/vfg2006/negative-keyword-sync/infrastructure/integrator/googleads/domain"
	"github.com/vfg2006/negative-keyword-sync/internal/config"
)

type Client interface {
	ListEnabledCampaigns(customerID string) ([]adsdomain.Campaign, error)
	ListEnabledAdGroups(customerID, campaignID string) ([]adsdomain.AdGroup, error)
	ListTopKeywordsByCampaign(customerID, campaignID string, limit int) ([]adsdomain.SearchResult, error)
	ListTopKeywordsByAdGroup(customerID, adGroupID string, limit int) ([]adsdomain.SearchResult, error)
	CreateCampaignNegative(customerID, campaignID, text, matchType string) error
	CreateAdGroupNegative(customerID, adGroupID, text, matchType string) error
	RefreshToken() error
	EnsureValidToken() error
	HandleResponse(resp *http.Response) ([]byte, error)
}

type AdsClient struct {
	Cfg          *config.Config
	TokenManager *TokenManager
	httpClient   *http.Client
}

func NewClient(cfg *config.Config, tokenManager *TokenManager) Client {
	return &AdsClient{
		Cfg:          cfg,
		TokenManager: tokenManager,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

// RefreshToken obtém um novo access token
func (c *AdsClient) RefreshToken() error {
	return c.TokenManager.RefreshToken()
}

// EnsureValidToken verifica se o token atual é válido e renova se necessário
func (c *AdsClient) EnsureValidToken() error {
	return c.TokenManager.EnsureValidToken()
}

// HandleResponse manipula a resposta HTTP e verifica token expirado
func (c *AdsClient) HandleResponse(resp *http.Response) ([]byte, error) {
	return c.TokenManager.HandleResponse(resp)
}

// doJSON envia uma requisição autenticada para a API do Google Ads
func (c *AdsClient) doJSON(method, url string, payload any) ([]byte, error) {
	if err := c.EnsureValidToken(); err != nil {
		return nil, errors.Wrap(err, "erro ao verificar validade do token")
	}

	var bodyReader *bytes.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao serializar o corpo da requisição")
		}
		bodyReader = bytes.NewReader(raw)
	} else {
		bodyReader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, url, bodyReader)
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar a requisição")
		return nil, err
	}

	req.Header.Set("Authorization", "Bearer "+c.Cfg.GoogleAds.AccessToken)
	req.Header.Set("developer-token", c.Cfg.GoogleAds.DeveloperToken)
	req.Header.Set("Content-Type", "application/json")
	if c.Cfg.GoogleAds.LoginCustomerID != "" {
		req.Header.Set("login-customer-id", c.Cfg.GoogleAds.LoginCustomerID)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logrus.WithError(err).Error("Erro ao fazer a requisição")
		return nil, err
	}
	defer resp.Body.Close()

	return c.HandleResponse(resp)
}

type searchRequest struct {
	Query    string `json:"query"`
	PageSize int    `json:"pageSize,omitempty"`
}

// search executa uma consulta GAQL pelo endpoint googleAds:search.
// TODO adicionar loop para pegar todas as páginas
func (c *AdsClient) search(customerID, query string) ([]adsdomain.SearchResult, error) {
	url := fmt.Sprintf("%s/customers/%s/googleAds:search", c.Cfg.GoogleAds.URL, customerID)

	body, err := c.doJSON(http.MethodPost, url, searchRequest{Query: query, PageSize: 10000})
	if err != nil {
		// Se o token foi renovado durante a chamada, tentar novamente
		if errors.Is(err, ErrTokenRenewed) {
			return c.search(customerID, query)
		}
		return nil, err
	}

	var response adsdomain.SearchResponse
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return nil, err
	}

	return response.Results, nil
}

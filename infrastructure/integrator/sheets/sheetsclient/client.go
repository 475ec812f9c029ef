package sheetsclient

import (
	"bytes"
	"encoding/json"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/negative-keyword-sync/infrastructure/integrator/googleads/adsclient"
	"github.com/vfg2006/negative-keyword-sync/internal/config"
)

// Client é a porta de baixo nível das APIs de planilha (Sheets + Drive)
type Client interface {
	CopySpreadsheet(templateID, title string) (*SpreadsheetFile, error)
	GetValues(spreadsheetID, a1Range string) ([][]string, error)
	UpdateValues(spreadsheetID, a1Range string, values [][]any) error
	SortRange(spreadsheetID string, sheetID, startRow, endRow, startCol, endCol, sortCol int) error
	FreezeRows(spreadsheetID string, sheetID, rows int) error
	ShareWithWriter(fileID, email string) error
}

// SpreadsheetFile é o arquivo devolvido pela cópia no Drive
type SpreadsheetFile struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// URL monta o link compartilhável da planilha
func (f *SpreadsheetFile) URL() string {
	return "https://docs.google.com/spreadsheets/d/" + f.ID + "/edit"
}

type SheetsClient struct {
	Cfg          *config.Config
	TokenManager *adsclient.TokenManager
	httpClient   *http.Client
}

// NewClient cria o cliente de planilhas reutilizando o gerenciador de token
// OAuth do Google já usado pelo cliente do Ads
func NewClient(cfg *config.Config, tokenManager *adsclient.TokenManager) Client {
	return &SheetsClient{
		Cfg:          cfg,
		TokenManager: tokenManager,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// doJSON envia uma requisição autenticada e devolve o corpo da resposta
func (c *SheetsClient) doJSON(method, url string, payload any) ([]byte, error) {
	if err := c.TokenManager.EnsureValidToken(); err != nil {
		return nil, errors.Wrap(err, "erro ao verificar validade do token")
	}

	var raw []byte
	if payload != nil {
		var err error
		raw, err = json.Marshal(payload)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao serializar o corpo da requisição")
		}
	}

	req, err := http.NewRequest(method, url, bytes.NewReader(raw))
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar a requisição")
		return nil, err
	}

	req.Header.Set("Authorization", "Bearer "+c.Cfg.GoogleAds.AccessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logrus.WithError(err).Error("Erro ao fazer a requisição")
		return nil, err
	}
	defer resp.Body.Close()

	body, err := c.TokenManager.HandleResponse(resp)
	if err != nil {
		// Se o token foi renovado durante a chamada, tentar novamente
		if errors.Is(err, adsclient.ErrTokenRenewed) {
			return c.doJSON(method, url, payload)
		}
		return nil, err
	}

	return body, nil
}

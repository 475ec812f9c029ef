package adsclient

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	adsdomain "github.com/vfg2006/negative-keyword-sync/infrastructure/integrator/googleads/domain"
	"github.com/vfg2006/negative-keyword-sync/internal/config"
)

// oauthTokenURL é o endpoint de troca de refresh token do Google
const oauthTokenURL = "https://oauth2.googleapis.com/token"

// ErrTokenRenewed sinaliza que o token expirou durante uma chamada e já foi
// renovado; o chamador deve repetir a chamada uma única vez.
var ErrTokenRenewed = errors.New("token expirado e renovado, por favor tente novamente")

// TokenManager gerencia o access token OAuth usado nas APIs do Google
type TokenManager struct {
	cfg               *config.Config
	TokenRefreshMutex sync.Mutex
	stopRefresh       chan struct{}
}

// NewTokenManager cria uma nova instância do gerenciador de tokens
func NewTokenManager(cfg *config.Config) *TokenManager {
	return &TokenManager{
		cfg:         cfg,
		stopRefresh: make(chan struct{}),
	}
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
	TokenType   string `json:"token_type"`
}

// EnsureValidToken renova o access token quando ausente ou próximo de expirar
func (tm *TokenManager) EnsureValidToken() error {
	tm.TokenRefreshMutex.Lock()
	defer tm.TokenRefreshMutex.Unlock()

	if tm.cfg.GoogleAds.AccessToken != "" && time.Until(tm.cfg.GoogleAds.TokenExpiresAt) > 2*time.Minute {
		return nil
	}

	return tm.refreshTokenInternal()
}

// RefreshToken força a troca do refresh token por um novo access token
func (tm *TokenManager) RefreshToken() error {
	tm.TokenRefreshMutex.Lock()
	defer tm.TokenRefreshMutex.Unlock()

	return tm.refreshTokenInternal()
}

func (tm *TokenManager) refreshTokenInternal() error {
	form := url.Values{}
	form.Set("client_id", tm.cfg.GoogleAds.ClientID)
	form.Set("client_secret", tm.cfg.GoogleAds.ClientSecret)
	form.Set("refresh_token", tm.cfg.GoogleAds.RefreshToken)
	form.Set("grant_type", "refresh_token")

	resp, err := http.Post(oauthTokenURL, "application/x-www-form-urlencoded", strings.NewReader(form.Encode()))
	if err != nil {
		return errors.Wrap(err, "erro ao chamar o endpoint de token do Google")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, "erro ao ler a resposta do endpoint de token")
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("endpoint de token respondeu %d: %s", resp.StatusCode, string(body))
	}

	var token tokenResponse
	if err := json.Unmarshal(body, &token); err != nil {
		return errors.Wrap(err, "erro ao decodificar a resposta do endpoint de token")
	}

	tm.cfg.GoogleAds.AccessToken = token.AccessToken
	tm.cfg.GoogleAds.TokenExpiresAt = time.Now().Add(time.Duration(token.ExpiresIn) * time.Second)

	logrus.Infof("Access token renovado com sucesso. Expira em: %s",
		tm.cfg.GoogleAds.TokenExpiresAt.Format(time.RFC3339))

	return nil
}

// StartAutoRefresh mantém o token renovado em background
func (tm *TokenManager) StartAutoRefresh() {
	if err := tm.RefreshToken(); err != nil {
		logrus.Errorf("Erro ao obter o access token inicial: %v", err)
	}

	// Tokens do Google duram uma hora; renovar antes disso
	refreshInterval := 45 * time.Minute
	ticker := time.NewTicker(refreshInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			logrus.Info("Iniciando renovação periódica do access token do Google")
			if err := tm.RefreshToken(); err != nil {
				logrus.Errorf("Erro na renovação periódica do token: %v", err)

				// Se falhar, tente novamente em um intervalo mais curto
				ticker.Reset(5 * time.Minute)
			} else {
				ticker.Reset(refreshInterval)
			}
		case <-tm.stopRefresh:
			logrus.Info("Encerrando goroutine de renovação periódica do token")
			return
		}
	}
}

// StopAutoRefresh para a goroutine de renovação automática
func (tm *TokenManager) StopAutoRefresh() {
	close(tm.stopRefresh)
}

// HandleResponse lê a resposta HTTP e trata erro de token expirado: renova o
// token e devolve ErrTokenRenewed para o chamador repetir a chamada.
func (tm *TokenManager) HandleResponse(resp *http.Response) ([]byte, error) {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao ler o corpo da resposta")
	}

	if resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices {
		return body, nil
	}

	var apiError adsdomain.ErrorResponse
	if err := json.Unmarshal(body, &apiError); err != nil {
		return nil, fmt.Errorf("API respondeu %d: %s", resp.StatusCode, string(body))
	}

	if apiError.IsTokenExpired() {
		logrus.Warn("Access token expirado detectado na resposta. Renovando...")
		if err := tm.RefreshToken(); err != nil {
			return nil, errors.Wrap(err, "erro ao renovar token expirado")
		}
		return nil, ErrTokenRenewed
	}

	return body, &apiError
}

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App          App          `mapstructure:",squash"`
	Server       Server       `mapstructure:",squash"`
	Database     Database     `mapstructure:",squash"`
	GoogleAds    GoogleAds    `mapstructure:",squash"`
	Sheets       Sheets       `mapstructure:",squash"`
	Mail         Mail         `mapstructure:",squash"`
	Negation     Negation     `mapstructure:",squash"`
	NegationSync NegationSync `mapstructure:",squash"`
	Auth         Auth         `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type GoogleAds struct {
	BaseURL         string    `mapstructure:"google_ads_base_url"`
	Version         string    `mapstructure:"google_ads_version"`
	URL             string    `mapstructure:"-"`
	DeveloperToken  string    `mapstructure:"google_ads_developer_token"`
	CustomerID      string    `mapstructure:"google_ads_customer_id"`
	LoginCustomerID string    `mapstructure:"google_ads_login_customer_id"`
	ClientID        string    `mapstructure:"google_oauth_client_id"`
	ClientSecret    string    `mapstructure:"google_oauth_client_secret"`
	RefreshToken    string    `mapstructure:"google_oauth_refresh_token"`
	AccessToken     string    `mapstructure:"-"`
	TokenExpiresAt  time.Time `mapstructure:"-"`
}

type Sheets struct {
	BaseURL               string `mapstructure:"sheets_base_url"`
	DriveBaseURL          string `mapstructure:"drive_base_url"`
	TemplateSpreadsheetID string `mapstructure:"report_template_spreadsheet_id"`
	ControlSpreadsheetID  string `mapstructure:"control_spreadsheet_id"`
}

type Mail struct {
	SMTPHost   string   `mapstructure:"mail_smtp_host"`
	SMTPPort   int      `mapstructure:"mail_smtp_port"`
	Username   string   `mapstructure:"mail_username"`
	Password   string   `mapstructure:"mail_password"`
	From       string   `mapstructure:"mail_from"`
	Recipients []string `mapstructure:"mail_recipients"`
}

// Negation concentra a política de cross-negativação
type Negation struct {
	CampaignLevel        bool     `mapstructure:"negation_campaign_level"`
	AdGroupLevel         bool     `mapstructure:"negation_adgroup_level"`
	PreserveMatchType    bool     `mapstructure:"negation_preserve_match_type"`
	MaxKeywordsPerEntity int      `mapstructure:"negation_max_keywords_per_entity"`
	IncludeFilters       []string `mapstructure:"negation_campaign_include_filters"`
	ExcludeFilters       []string `mapstructure:"negation_campaign_exclude_filters"`
	ExportReport         bool     `mapstructure:"negation_export_report"`
}

type NegationSync struct {
	CronSchedule        string `mapstructure:"negation_sync_cron"`
	RequestDelaySeconds int    `mapstructure:"negation_sync_request_delay_seconds"`
	Enabled             bool   `mapstructure:"negation_sync_enabled"`
}

type Auth struct {
	APIKey string `mapstructure:"admin_api_key"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/negatives")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("GOOGLE_ADS_BASE_URL", "https://googleads.googleapis.com")
	viper.SetDefault("GOOGLE_ADS_VERSION", "v17")
	viper.SetDefault("GOOGLE_ADS_DEVELOPER_TOKEN", "your_developer_token")
	viper.SetDefault("GOOGLE_ADS_CUSTOMER_ID", "")
	viper.SetDefault("GOOGLE_ADS_LOGIN_CUSTOMER_ID", "")
	viper.SetDefault("GOOGLE_OAUTH_CLIENT_ID", "your_client_id")
	viper.SetDefault("GOOGLE_OAUTH_CLIENT_SECRET", "your_client_secret")
	viper.SetDefault("GOOGLE_OAUTH_REFRESH_TOKEN", "")

	viper.SetDefault("SHEETS_BASE_URL", "https://sheets.googleapis.com/v4")
	viper.SetDefault("DRIVE_BASE_URL", "https://www.googleapis.com/drive/v3")
	viper.SetDefault("REPORT_TEMPLATE_SPREADSHEET_ID", "")
	viper.SetDefault("CONTROL_SPREADSHEET_ID", "")

	viper.SetDefault("MAIL_SMTP_HOST", "smtp.gmail.com")
	viper.SetDefault("MAIL_SMTP_PORT", 587)
	viper.SetDefault("MAIL_USERNAME", "")
	viper.SetDefault("MAIL_PASSWORD", "")
	viper.SetDefault("MAIL_FROM", "")
	viper.SetDefault("MAIL_RECIPIENTS", "")

	// Defaults da política de cross-negativação
	viper.SetDefault("NEGATION_CAMPAIGN_LEVEL", true)        // Negativar entre campanhas
	viper.SetDefault("NEGATION_ADGROUP_LEVEL", false)        // Negativar entre grupos de anúncio
	viper.SetDefault("NEGATION_PRESERVE_MATCH_TYPE", false)  // false força correspondência exata
	viper.SetDefault("NEGATION_MAX_KEYWORDS_PER_ENTITY", 20) // Teto de palavras-chave por entidade
	viper.SetDefault("NEGATION_CAMPAIGN_INCLUDE_FILTERS", "")
	viper.SetDefault("NEGATION_CAMPAIGN_EXCLUDE_FILTERS", "")
	viper.SetDefault("NEGATION_EXPORT_REPORT", false)

	viper.SetDefault("NEGATION_SYNC_CRON", "0 5 * * *")          // Todos os dias às 5h da manhã
	viper.SetDefault("NEGATION_SYNC_REQUEST_DELAY_SECONDS", 1)   // 1 segundo entre mutações
	viper.SetDefault("NEGATION_SYNC_ENABLED", false)             // Habilitar sincronização agendada

	viper.SetDefault("ADMIN_API_KEY", "")

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Isso permite que o Viper leia variáveis de ambiente

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.GoogleAds.URL = fmt.Sprintf("%s/%s", config.GoogleAds.BaseURL, config.GoogleAds.Version)

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../.env"),            // Diretório acima
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}

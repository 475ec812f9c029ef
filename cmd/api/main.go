package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/negative-keyword-sync/infrastructure/database/postgres"
	"github.com/vfg2006/negative-keyword-sync/infrastructure/integrator/googleads"
	"github.com/vfg2006/negative-keyword-sync/infrastructure/integrator/googleads/adsclient"
	"github.com/vfg2006/negative-keyword-sync/infrastructure/integrator/mail"
	"github.com/vfg2006/negative-keyword-sync/infrastructure/integrator/sheets"
	"github.com/vfg2006/negative-keyword-sync/infrastructure/integrator/sheets/sheetsclient"
	"github.com/vfg2006/negative-keyword-sync/infrastructure/repository"
	"github.com/vfg2006/negative-keyword-sync/internal/api"
	"github.com/vfg2006/negative-keyword-sync/internal/config"
	"github.com/vfg2006/negative-keyword-sync/internal/scheduler"
	"github.com/vfg2006/negative-keyword-sync/internal/usecases/negating"
	"github.com/vfg2006/negative-keyword-sync/internal/usecases/reporting"
	"github.com/vfg2006/negative-keyword-sync/pkg/currency"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	// A tabela de símbolos de moeda precisa estar íntegra antes de subir
	if err := currency.Validate(); err != nil {
		logrus.WithError(err).Fatal("Tabela de moedas inválida")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	runRepo := repository.NewNegationRunRepository(pgConn)

	tokenManager := adsclient.NewTokenManager(cfg)
	go tokenManager.StartAutoRefresh()
	defer tokenManager.StopAutoRefresh()

	adsClient := adsclient.NewClient(cfg, tokenManager)
	adsIntegrator := googleads.New(cfg, adsClient)

	sheetsClient := sheetsclient.NewClient(cfg, tokenManager)
	sheetsIntegrator := sheets.New(cfg, sheetsClient)

	mailer := mail.New(cfg)

	negator, err := negating.NewService(cfg, adsIntegrator)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao montar o serviço de negativação")
	}

	exporter := reporting.NewService(cfg, sheetsIntegrator, mailer)

	// Inicializa o agendador de negativação cruzada
	negationSyncService := scheduler.NewNegationSyncService(
		negator,
		exporter,
		runRepo,
		cfg,
	)

	// Inicia o agendador em background
	if err := negationSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de negativação cruzada")
	} else {
		logrus.Info("Agendador de negativação cruzada iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		runRepo,
		exporter,
		negationSyncService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}

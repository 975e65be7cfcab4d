package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/competitor-ads-api/infrastructure/database/postgres"
	"github.com/vfg2006/competitor-ads-api/infrastructure/integrator/adlibrary"
	"github.com/vfg2006/competitor-ads-api/infrastructure/integrator/adlibrary/adlibraryclient"
	"github.com/vfg2006/competitor-ads-api/infrastructure/repository"
	"github.com/vfg2006/competitor-ads-api/internal/api"
	"github.com/vfg2006/competitor-ads-api/internal/config"
	"github.com/vfg2006/competitor-ads-api/internal/scheduler"
	"github.com/vfg2006/competitor-ads-api/internal/usecases/ingesting"
	"github.com/vfg2006/competitor-ads-api/internal/usecases/pipelining"
	"github.com/vfg2006/competitor-ads-api/internal/usecases/summarizing"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	if err := cfg.Validate(); err != nil {
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

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	brandRepo := repository.NewBrandRepository(pgConn)
	rawAdRepo := repository.NewRawAdRepository(pgConn)
	creativeSummaryRepo := repository.NewCreativeSummaryRepository(pgConn)
	funnelSummaryRepo := repository.NewFunnelSummaryRepository(pgConn)

	adLibraryClient := adlibraryclient.NewClient(cfg)
	adLibraryIntegrator := adlibrary.New(cfg, adLibraryClient)

	ingestService := ingesting.NewService(cfg, brandRepo, rawAdRepo, adLibraryIntegrator)
	creativeService := summarizing.NewCreativeService(rawAdRepo, creativeSummaryRepo)
	funnelService := summarizing.NewFunnelService(rawAdRepo, funnelSummaryRepo)

	orchestrator := pipelining.NewService(
		cfg,
		brandRepo,
		ingestService,
		creativeService,
		funnelService,
	)

	// Inicializa o agendador do pipeline
	pipelineSyncService := scheduler.NewPipelineSyncService(orchestrator, cfg)

	// Inicia o agendador em background
	if err := pipelineSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador do pipeline")
	} else {
		logrus.Info("Agendador do pipeline iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		ingestService,
		orchestrator,
		creativeSummaryRepo,
		funnelSummaryRepo,
		rawAdRepo,
		pipelineSyncService,
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

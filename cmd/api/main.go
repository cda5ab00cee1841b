package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/heliogrid/heliogrid-web/infrastructure/fixtures"
	"github.com/heliogrid/heliogrid-web/infrastructure/integrator/telemetry"
	"github.com/heliogrid/heliogrid-web/internal/api"
	"github.com/heliogrid/heliogrid-web/internal/api/handler"
	"github.com/heliogrid/heliogrid-web/internal/config"
	"github.com/heliogrid/heliogrid-web/internal/scheduler"
	"github.com/heliogrid/heliogrid-web/internal/usecases/mocking"
	"github.com/heliogrid/heliogrid-web/internal/usecases/sessioning"
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

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Toda a "base de dados" do demo são fixtures embutidas no binário.
	store, err := fixtures.Load()
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao carregar as fixtures do demo")
	}
	logrus.Info("Fixtures do demo carregadas em memória")

	telemetryClient := telemetry.NewClient("")

	fetcher := mocking.NewService(cfg, store, telemetryClient)
	sessioner := sessioning.NewService(cfg)

	streamHub := handler.NewStreamHub()

	marketTickService := scheduler.NewMarketTickService(store, streamHub, cfg)
	actionsRotationService := scheduler.NewActionsRotationService(store, cfg)

	// Inicia os agendadores em background
	if err := marketTickService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de ticks de preço")
	} else {
		logrus.Info("Agendador de ticks de preço iniciado com sucesso")
	}

	if err := actionsRotationService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de rotação de ações")
	} else {
		logrus.Info("Agendador de rotação de ações iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		fetcher,
		sessioner,
		streamHub,
		marketTickService,
		actionsRotationService,
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

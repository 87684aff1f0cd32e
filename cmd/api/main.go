package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-ranking-api/infrastructure/repository"
	"github.com/vfg2006/sales-ranking-api/infrastructure/storage"
	"github.com/vfg2006/sales-ranking-api/internal/api"
	"github.com/vfg2006/sales-ranking-api/internal/config"
	"github.com/vfg2006/sales-ranking-api/internal/scheduler"
	"github.com/vfg2006/sales-ranking-api/internal/usecases/ranking"
	"github.com/vfg2006/sales-ranking-api/internal/usecases/selling"
	"github.com/vfg2006/sales-ranking-api/internal/usecases/snapshotting"
	"github.com/vfg2006/sales-ranking-api/internal/usecases/transferring"
	"github.com/vfg2006/sales-ranking-api/internal/usecases/trending"
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

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store := localStore(cfg.Storage)

	ledgerRepo := repository.NewLedgerRepository(store)
	snapshotRepo := repository.NewSnapshotRepository(store)

	sellingService := selling.NewService(ledgerRepo)
	rankingService := ranking.NewService(sellingService)
	snapshotService := snapshotting.NewService(snapshotRepo, rankingService, sellingService)

	// Liga o recalculo de baseline diária na primeira venda do dia
	sellingService.WithBaseliner(snapshotService)

	trendingService := trending.NewService(snapshotRepo, sellingService)
	transferService := transferring.NewService(sellingService)

	// Verificação de virada de dia inline no boot: garante snapshot de hoje
	// antes de atender qualquer requisição
	if created, err := snapshotService.VerifyDayRollover(time.Now()); err != nil {
		logrus.WithError(err).Error("Erro na verificação de virada de dia no boot")
	} else if created {
		logrus.Info("Snapshot do dia capturado no boot")
	}

	rolloverService := scheduler.NewDayRolloverService(snapshotService, cfg)

	if err := rolloverService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de verificação de virada de dia")
	} else {
		logrus.Info("Agendador de verificação de virada de dia iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		sellingService,
		rankingService,
		trendingService,
		snapshotService,
		transferService,
		rolloverService,
		snapshotRepo,
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
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// localStore prepara o armazenamento local de documentos
func localStore(storageConfig config.Storage) *storage.LocalStore {
	store, err := storage.NewLocalStore(storageConfig.DataDir)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao preparar o armazenamento local")
	}

	logrus.WithField("data_dir", storageConfig.DataDir).Info("Armazenamento local pronto")
	return store
}

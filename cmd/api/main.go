package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/ga4-report-api/infrastructure/exporter/excel"
	"github.com/vfg2006/ga4-report-api/infrastructure/integrator/ga4/ga4client"
	"github.com/vfg2006/ga4-report-api/internal/api"
	"github.com/vfg2006/ga4-report-api/internal/config"
	"github.com/vfg2006/ga4-report-api/internal/domain"
	"github.com/vfg2006/ga4-report-api/internal/usecases/reporting"
)

func main() {
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

	// As janelas mensais vêm da configuração; período inválido impede a subida
	windows, err := domain.MonthWindowsFromPeriods(cfg.Report.Months)
	if err != nil {
		logrus.WithError(err).Fatal("Configuração de meses do relatório inválida")
	}

	logrus.WithFields(logrus.Fields{
		"months":        len(windows),
		"first":         cfg.Report.Months[0],
		"last":          cfg.Report.Months[len(cfg.Report.Months)-1],
		"channel_group": cfg.GA4.ChannelGroup,
	}).Info("Janelas do relatório carregadas")

	clientFactory := ga4client.NewFactory(cfg)
	exporter := excel.NewBuilder(cfg)
	reportService := reporting.NewService(cfg, windows, clientFactory, exporter)

	server, err := api.New(cfg, reportService)
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

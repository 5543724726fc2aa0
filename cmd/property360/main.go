package main

import (
	"fmt"
	"os"

	"github.com/agrodat/property360/internal/assistant"
	"github.com/agrodat/property360/internal/config"
	"github.com/agrodat/property360/internal/db"
	"github.com/agrodat/property360/internal/excel"
	httphandler "github.com/agrodat/property360/internal/http"
	"github.com/agrodat/property360/internal/logger"
	"github.com/agrodat/property360/internal/pdf"
	"github.com/agrodat/property360/internal/service"
	"github.com/agrodat/property360/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Environment)

	database, err := db.New(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect database")
	}

	documents := store.New(database, log)
	state := service.LoadState(documents)

	pdfGenerator, err := pdf.NewGenerator()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to init pdf generator")
	}
	excelGenerator := excel.NewGenerator()

	var assistantClient assistant.Client
	if cfg.Assistant.APIKey != "" {
		assistantClient = assistant.NewGemini(cfg.Assistant.Endpoint, cfg.Assistant.APIKey, cfg.Assistant.Model)
	} else {
		log.Warn().Msg("no assistant api key configured, running offline client")
		assistantClient = assistant.NewStatic()
	}

	fieldService := service.NewFieldService(state, documents, log)
	taskService := service.NewTaskService(state, documents, log)
	ledgerService := service.NewLedgerService(state, documents, log)
	reportService := service.NewReportService(state, excelGenerator, pdfGenerator)
	assistantService := service.NewAssistantService(assistantClient, log)

	handler := httphandler.NewHandler(fieldService, taskService, ledgerService, reportService, assistantService, log)
	router := httphandler.NewRouter(handler, cfg.Environment)

	addr := fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
	log.Info().Str("addr", addr).Msg("starting property360 service")

	if err := router.Run(addr); err != nil {
		log.Error().Err(err).Msg("server stopped")
		os.Exit(1)
	}
}

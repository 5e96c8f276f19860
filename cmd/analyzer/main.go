// cmd/analyzer/main.go

package main

import (
	"context"
	"flag"

	"github.com/mfreeman451/regionpulse/pkg/analyzer"
	"github.com/mfreeman451/regionpulse/pkg/api"
	"github.com/mfreeman451/regionpulse/pkg/config"
	"github.com/mfreeman451/regionpulse/pkg/dataset"
	"github.com/mfreeman451/regionpulse/pkg/lifecycle"
	"github.com/mfreeman451/regionpulse/pkg/logger"
	"github.com/rs/zerolog/log"
)

func main() {
	configPath := flag.String("config", "", "Path to config file (defaults apply when empty)")
	flag.Parse()

	cfg := &config.AnalyzerConfig{}

	if *configPath != "" {
		if err := config.LoadAndValidate(*configPath, cfg); err != nil {
			log.Fatal().Err(err).Str("path", *configPath).Msg("Failed to load config")
		}
	} else if err := config.ValidateConfig(cfg); err != nil {
		log.Fatal().Err(err).Msg("Invalid default config")
	}

	logger.Init(cfg.LogLevel, cfg.LogFormat)

	provider := newProvider(cfg)
	svc := analyzer.NewService(provider, cfg.RegionPolicy == config.PolicyStrict)
	server := api.NewAPIServer(svc, cfg.RateLimit, cfg.RateBurst)

	err := lifecycle.RunServer(context.Background(), &lifecycle.ServerOptions{
		ListenAddr:  cfg.ListenAddr,
		ServiceName: "analyzer",
		Handler:     server.Router(),
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Server failed")
	}
}

func newProvider(cfg *config.AnalyzerConfig) dataset.Provider {
	switch cfg.DataSource {
	case config.SourceFile:
		return dataset.NewFileProvider(cfg.DataFile)
	case config.SourceSQLite:
		return dataset.NewSQLiteProvider(cfg.DBPath)
	default:
		return dataset.NewStaticProvider()
	}
}

package main

import (
	_ "portal_expositor/docs"
	"portal_expositor/internal/adapter/http/routes"
	"portal_expositor/internal/config"
	"portal_expositor/internal/infrastructure/logger"

	_ "github.com/joho/godotenv/autoload"
	"github.com/rs/zerolog/log"
)

// @title           Portal do Expositor API
// @version         1.0
// @description     BFF do portal do expositor: barracas, feiras, perfil e acesso.

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	logger.Init(cfg.LogLevel, cfg.LogPretty)
	routes.Run(cfg)
}

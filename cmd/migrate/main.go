package main

import (
	"flag"
	"os"

	"github.com/jhoicas/khohang-api/internal/infrastructure/postgres"
	"github.com/jhoicas/khohang-api/pkg/config"
	"github.com/jhoicas/khohang-api/pkg/logger"
)

// migrate aplica las migraciones goose embebidas.
//
//	go run ./cmd/migrate -cmd up|down|status|reset
func main() {
	command := flag.String("cmd", "up", "up, down, status o reset")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	if err := postgres.Migrate(cfg.DB.ConnectionString(), *command); err != nil {
		log.Error().Err(err).Str("cmd", *command).Msg("migración fallida")
		os.Exit(1)
	}
	log.Info().Str("cmd", *command).Msg("migración completada")
}

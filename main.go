package main

import (
	"flag"
	"os"

	"devcamper/initialize"
	"devcamper/server"

	"github.com/rs/zerolog/log"
)

func main() {
	configPath := flag.String("config", "config/config.yaml", "Path to config file")
	flag.Parse()

	app, err := initialize.Build(*configPath)
	if err != nil {
		log.Error().Err(err).Msg("startup failed")
		os.Exit(1)
	}

	log.Info().Str("env", app.Cfg.Server.Env).Int("port", app.Cfg.Server.Port).Msg("server running")
	if err := server.Run(app.Cfg.Server.Host, app.Cfg.Server.Port, app.Router); err != nil {
		log.Error().Err(err).Msg("server stopped")
		os.Exit(1)
	}
}

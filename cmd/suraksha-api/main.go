package main

import (
	"flag"
	"net/http"
	"os"

	"github.com/suraksha-dev/suraksha/internal/router"
	"github.com/suraksha-dev/suraksha/internal/setup"
	"github.com/suraksha-dev/suraksha/shared/config"
	"github.com/suraksha-dev/suraksha/shared/logger"
)

func main() {
	var configFolder string
	flag.StringVar(&configFolder, "config_folder", "config", "path to folder with configs")
	flag.Parse()

	cfg := config.MustLoad(configFolder)
	logger.Initialize(cfg.Public.LogLevel, cfg.Public.LogJSON)

	deps, err := setup.SetupDependencies(cfg)
	if err != nil {
		logger.Log.Error("failed to initialize dependencies", "error", err)
		os.Exit(1)
	}

	r := router.New(deps)

	addr := cfg.Public.Addr
	if port := os.Getenv("PORT"); port != "" {
		addr = ":" + port
	}

	logger.Log.Info("server started", "addr", addr)
	if err := http.ListenAndServe(addr, r); err != nil {
		logger.Log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

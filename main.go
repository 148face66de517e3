// @title Revenge Vault API
// @version 1.0
// @description Backend for the Revenge Vault MCQ study tool: AI-generated questions, answer history, and revision session composition.

// @host localhost:8080
// @BasePath /api

package main

import (
	"flag"
	"log"

	"github.com/akshar-2001/revenge-valut/internal/app"
	"github.com/akshar-2001/revenge-valut/internal/config"
	"github.com/akshar-2001/revenge-valut/pkg/logger"
)

func main() {
	configPath := flag.String("config", "configs", "directory holding config.yaml")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	application := app.NewApp(cfg, *configPath)
	defer logger.Log.Sync()

	application.Run()
}

package main

import (
	"backend/config"
	"backend/controllers"
	"backend/llm"
	"backend/pkg/logger"
	"backend/routes"
	"backend/services"
)

func main() {
	log := logger.New()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalw("failed to load config", "error", err)
	}

	config.InitDB(cfg)

	// The classifier is loaded once here; if it fails, prediction
	// requests report the model unavailable until a reload succeeds.
	services.InitPredictor(cfg.Model.Path, log)
	services.InitLLM(llm.NewClient(cfg.Groq.APIKey, cfg.Groq.BaseURL, cfg.Groq.Model, log))
	controllers.SetTokenTTL(cfg.JWT.TokenTTL)

	r := routes.SetupRouter()
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalw("server stopped", "error", err)
	}
}

package main

import (
	"flag"
	"log"

	"github.com/joho/godotenv"

	"partnerinsights/internal/analytics"
	"partnerinsights/internal/config"
)

func main() {
	_ = godotenv.Load()

	var cfgPath string
	flag.StringVar(&cfgPath, "config", "", "Path to YAML config file (optional)")
	flag.Parse()

	var cfg *config.AppConfig
	var err error
	if cfgPath == "" {
		cfg, _, err = config.LoadDefault()
	} else {
		cfg, err = config.Load(cfgPath)
	}
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	insights, err := analytics.Process(cfg.Data.RawPath, cfg.Data.ProcessedPath)
	if err != nil {
		log.Fatalf("processing failed: %v", err)
	}
	log.Printf("Processed %d partners, saved to: %s", len(insights), cfg.Data.ProcessedPath)
}

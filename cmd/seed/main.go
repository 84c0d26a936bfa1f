package main

import (
	"flag"
	"log"
	"path/filepath"

	"github.com/joho/godotenv"

	"partnerinsights/internal/config"
	"partnerinsights/internal/seeds"
)

func main() {
	_ = godotenv.Load()

	var cfgPath string
	var partners int
	var seed int64
	flag.StringVar(&cfgPath, "config", "", "Path to YAML config file (optional)")
	flag.IntVar(&partners, "partners", 0, "Number of partners to generate (default from config)")
	flag.Int64Var(&seed, "seed", 0, "Random seed for reproducible fixtures (0 seeds from the clock)")
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
	if partners == 0 {
		partners = cfg.Seed.Partners
	}

	rows, err := seeds.Generate(seeds.Options{
		Partners: partners,
		Seed:     seed,
		RawPath:  cfg.Data.RawPath,
		DocsDir:  cfg.Corpus.Path,
	})
	if err != nil {
		log.Fatalf("seed failed: %v", err)
	}
	log.Printf("Generated structured data: %s", cfg.Data.RawPath)
	log.Printf("Generated %d partner profiles in: %s", len(rows), filepath.Clean(cfg.Corpus.Path))
}

package main

import (
	"flag"
	"fmt"
	"log"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
	"github.com/joho/godotenv"

	"partnerinsights/internal/analytics"
	"partnerinsights/internal/answer"
	"partnerinsights/internal/chunker"
	"partnerinsights/internal/config"
	"partnerinsights/internal/corpus"
	"partnerinsights/internal/engine"
	"partnerinsights/internal/logger"
	"partnerinsights/internal/retriever"
	"partnerinsights/internal/tui"
)

func main() {
	_ = godotenv.Load()

	var cfgPath string
	var verbose bool
	var watch bool
	flag.StringVar(&cfgPath, "config", "", "Path to YAML config file (optional; uses ~/.config/partner-insights/config.yaml if not provided)")
	flag.BoolVar(&verbose, "verbose", false, "Print retrieval debug output to stderr")
	flag.BoolVar(&watch, "watch", true, "Rebuild the engine when the corpus directory changes")
	flag.Parse()
	logger.SetVerbose(verbose)

	cfg, err := loadConfig(cfgPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	eng, err := buildEngine(cfg)
	if err != nil {
		log.Fatalf("failed to load corpus: %v", err)
	}

	insights, err := analytics.LoadInsights(cfg.Data.ProcessedPath)
	if err != nil {
		log.Fatalf("failed to load insights: %v", err)
	}

	m := tui.New(eng, formatKPIs(analytics.Summarize(insights)))
	p := tea.NewProgram(m)

	if watch {
		stop, err := watchCorpus(p, cfg)
		if err != nil {
			logger.Info("corpus watch disabled: %v", err)
		} else {
			defer stop()
		}
	}

	if _, err := p.Run(); err != nil {
		log.Fatal(err)
	}
}

func loadConfig(path string) (*config.AppConfig, error) {
	if path == "" {
		cfg, _, err := config.LoadDefault()
		return cfg, err
	}
	return config.Load(path)
}

// buildEngine assembles a fresh engine over the current corpus. The
// watcher calls it again on corpus changes; the swap is a single
// message to the running program, so queries never see a half-built index.
func buildEngine(cfg *config.AppConfig) (*engine.Engine, error) {
	docs, err := corpus.Load(cfg.Corpus.Path)
	if err != nil {
		return nil, err
	}
	boosts := make([]retriever.Boost, 0, len(cfg.Retriever.Boosts))
	for _, b := range cfg.Retriever.Boosts {
		boosts = append(boosts, retriever.Boost{Keyword: b.Keyword, Weight: b.Weight})
	}
	return engine.New(docs, chunker.NewParagraph(), retriever.NewLexical(boosts), answer.New(), cfg.Retriever.TopK), nil
}

func watchCorpus(p *tea.Program, cfg *config.AppConfig) (func() error, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := watcher.Add(cfg.Corpus.Path); err != nil {
		watcher.Close()
		return nil, err
	}
	go func() {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
					continue
				}
				logger.Debug("corpus change: %s", event)
				eng, err := buildEngine(cfg)
				if err != nil {
					logger.Info("corpus reload failed: %v", err)
					continue
				}
				p.Send(tui.CorpusReloadedMsg{Engine: eng})
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Info("corpus watch error: %v", err)
			}
		}
	}()
	return watcher.Close, nil
}

func formatKPIs(s analytics.Summary) string {
	if s.Partners == 0 {
		return ""
	}
	return fmt.Sprintf("%d partners | avg revenue $%.0f | avg engagement %.1f/mo | avg growth %.1f%%",
		s.Partners, s.AvgRevenue, s.AvgEngagement, s.AvgGrowth*100)
}

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"ragbooster/internal/booster"
	"ragbooster/internal/config"
	"ragbooster/internal/summary"
	"ragbooster/internal/tui"
)

func main() {
	_ = godotenv.Load()

	var cfgPath string
	flag.StringVar(&cfgPath, "config", "", "Path to YAML config file (optional; uses ~/.config/booster/config.yaml if not provided)")
	flag.Parse()
	inputs := flag.Args()
	if len(inputs) == 0 {
		fmt.Println("Usage: booster-tui [--config=config.yaml] file1.txt [file2.txt ...]")
		os.Exit(1)
	}

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

	b, err := booster.New(booster.Config{
		URL:         cfg.LLM.BaseURL,
		APIKey:      os.Getenv(cfg.LLM.APIKeyEnv),
		Model:       cfg.LLM.Model,
		Level:       cfg.Memory.Level,
		ChunkSize:   cfg.Memory.ChunkSize,
		TopK:        cfg.Retrieval.TopK,
		Timeout:     time.Duration(cfg.LLM.TimeoutSecs) * time.Second,
		Temperature: cfg.LLM.Temperature,
		MaxTokens:   cfg.LLM.MaxTokens,
	})
	if err != nil {
		log.Fatalf("booster init failed: %v", err)
	}

	loaded, corpus, err := b.LoadFiles(inputs)
	if err != nil {
		log.Fatalf("load failed: %v", err)
	}
	header := fmt.Sprintf("%s | %.2f× declared ratio | %s", summary.Extract(corpus, 2), loaded.CompressionRatio, loaded.Integrity)

	m := tui.New(b, header)
	if _, err := tea.NewProgram(m).Run(); err != nil {
		log.Fatal(err)
	}
}

package main

import (
	"fmt"
	"os"

	"tasklog/internal/cli"
	"tasklog/internal/config"
	"tasklog/internal/llm"
	"tasklog/internal/query"
	"tasklog/internal/store"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	// Skipped-row warnings go to stderr so piped answers stay clean.
	st := store.NewStore(cfg.StoragePath, store.NewLogObserver(os.Stderr))

	var observer llm.Observer = llm.NoopObserver{}
	if cfg.LogLLMCalls {
		observer = llm.NewLogObserver(os.Stderr)
	}
	client := llm.NewOllamaClient(llm.Config{
		Endpoint:  cfg.Endpoint,
		Model:     cfg.Model,
		TimeoutMs: cfg.TimeoutMs,
		LogCalls:  cfg.LogLLMCalls,
	}, observer)

	app := &cli.App{
		Store:   st,
		Gateway: query.NewGateway(st, client),
		Config:  cfg,
	}

	return cli.NewRootCmd(app).Execute()
}

package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/newslens/newslens/internal/config"
	"github.com/newslens/newslens/internal/fetcher"
	"github.com/newslens/newslens/internal/pipeline"
	"github.com/newslens/newslens/internal/storage"
	"github.com/newslens/newslens/internal/types"
)

var (
	cfgFile        string
	verbose        bool
	outputPath     string
	outputType     string
	workers        int
	categoryFilter string
	titleMatch     string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "newslens",
		Short: "NewsLens — news listing SEO & sentiment pipeline",
		Long: `NewsLens scrapes a fixed set of news category pages, fetches each
listed article, and computes sentiment polarity, keyword density, and
Flesch readability for export.

Features:
  • CSS selector and XPath listing extraction
  • Per-article sentiment and SEO metrics
  • CSV, JSON, JSONL export
  • Bounded concurrent article fetching with deterministic output order`,
	}

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(scanCmd())
	rootCmd.AddCommand(configCmd())
	rootCmd.AddCommand(versionCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// scanCmd creates the "scan" subcommand.
func scanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Scrape all configured categories and export the records",
		RunE:  runScan,
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "output directory")
	cmd.Flags().StringVarP(&outputType, "format", "f", "", "output format: csv, json, jsonl")
	cmd.Flags().IntVarP(&workers, "workers", "n", 0, "article fetch workers (0 = use config)")
	cmd.Flags().StringVar(&categoryFilter, "category", "", "export only this category")
	cmd.Flags().StringVar(&titleMatch, "match", "", "export only titles containing this keyword")

	return cmd
}

// runScan executes the scan command.
func runScan(cmd *cobra.Command, args []string) error {
	logger := setupLogger()

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	applyCLIOverrides(cfg)

	if err := config.Validate(cfg); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	logger.Info("starting scan",
		"categories", len(cfg.Categories),
		"workers", cfg.Pipeline.Workers,
		"output", cfg.Storage.OutputPath,
		"format", cfg.Storage.Type,
	)

	httpFetcher := fetcher.NewHTTPFetcher(cfg, logger)
	defer httpFetcher.Close()

	pipe := pipeline.New(httpFetcher, cfg.Pipeline.Workers, logger)

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	start := time.Now()
	records := pipe.Run(ctx, cfg.Categories)
	records = pipeline.Filter(records, categoryFilter, titleMatch)
	elapsed := time.Since(start)

	store, err := storage.NewFileStorage(cfg.Storage.Type, cfg.Storage.OutputPath, logger)
	if err != nil {
		return fmt.Errorf("create storage: %w", err)
	}
	if err := store.Store(records); err != nil {
		store.Close()
		return fmt.Errorf("store records: %w", err)
	}
	if err := store.Close(); err != nil {
		return fmt.Errorf("close storage: %w", err)
	}

	logger.Info("scan complete", "elapsed", elapsed, "records", len(records))

	fmt.Printf("\nScan complete in %s\n", elapsed.Round(time.Millisecond))
	for _, cat := range cfg.Categories {
		fmt.Printf("   %-12s %d articles\n", cat.Name+":", countCategory(records, cat.Name))
	}
	fmt.Printf("   Output:      %s\n", cfg.Storage.OutputPath)

	return nil
}

// configCmd creates the "config" subcommand for inspecting configuration.
func configCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgFile)
			if err != nil {
				return err
			}
			fmt.Printf("Fetcher:\n")
			fmt.Printf("  User Agent:       %s\n", cfg.Fetcher.UserAgent)
			fmt.Printf("  Request Timeout:  %s\n", cfg.Fetcher.RequestTimeout)
			fmt.Printf("  Max Redirects:    %d\n", cfg.Fetcher.MaxRedirects)
			fmt.Printf("  Max Body Size:    %d bytes\n", cfg.Fetcher.MaxBodySize)
			fmt.Printf("\nPipeline:\n")
			fmt.Printf("  Workers:          %d\n", cfg.Pipeline.Workers)
			fmt.Printf("\nStorage:\n")
			fmt.Printf("  Type:             %s\n", cfg.Storage.Type)
			fmt.Printf("  Output Path:      %s\n", cfg.Storage.OutputPath)
			fmt.Printf("\nCategories:\n")
			for _, cat := range cfg.Categories {
				fmt.Printf("  %-12s %s\n", cat.Name+":", cat.URL)
				fmt.Printf("    title: %s\n", ruleString(cat.Title))
				fmt.Printf("    link:  %s\n", ruleString(cat.Link))
			}
			return nil
		},
	}
}

// versionCmd creates the "version" subcommand.
func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("NewsLens %s\n", config.Version)
		},
	}
}

// setupLogger creates a structured logger.
func setupLogger() *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	return slog.New(handler)
}

// applyCLIOverrides applies command-line flag values to the config.
func applyCLIOverrides(cfg *config.Config) {
	if outputPath != "" {
		cfg.Storage.OutputPath = outputPath
	}
	if outputType != "" {
		cfg.Storage.Type = strings.ToLower(outputType)
	}
	if workers > 0 {
		cfg.Pipeline.Workers = workers
	}
}

func ruleString(rule config.SelectorRule) string {
	if rule.Type == "" || rule.Type == "css" {
		return rule.Selector
	}
	return rule.Type + ": " + rule.Selector
}

func countCategory(records []types.ArticleRecord, name string) int {
	n := 0
	for _, r := range records {
		if r.Category == name {
			n++
		}
	}
	return n
}

package main

import (
	"context"
	"fmt"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vikashvikku/resumerag/internal/config"
	"github.com/vikashvikku/resumerag/internal/db"
	"github.com/vikashvikku/resumerag/internal/extraction"
	"github.com/vikashvikku/resumerag/internal/ingestion"
)

var (
	importEvery time.Duration
	importLimit int
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import job postings from the remote feed",
	Long:  `Fetch postings from the configured job feed, normalize them, and store the ones not already present. With --every the importer keeps running on a schedule.`,
	RunE:  runImport,
}

func init() {
	importCmd.Flags().DurationVar(&importEvery, "every", 0, "Re-run the import on this interval (one-shot when unset)")
	importCmd.Flags().IntVar(&importLimit, "limit", 0, "Maximum postings to fetch per run (overrides FEED_LIMIT)")
	rootCmd.AddCommand(importCmd)
}

func runImport(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if importLimit != 0 {
		cfg.FeedLimit = importLimit
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close()
	if err := database.EnsureSchema(ctx); err != nil {
		return err
	}

	extractor := extraction.NewSkillExtractor(extraction.DefaultSkillVocabulary)
	for _, w := range extractor.Warnings() {
		log.Printf("[import] %s", w)
	}

	feed := ingestion.NewFeedClient(cfg.FeedURL, cfg.FeedLimit)
	importer := ingestion.NewImporter(database, feed, ingestion.NewNormalizer(extractor))

	if importEvery > 0 {
		return importer.RunEvery(ctx, importEvery)
	}

	stats, err := importer.Run(ctx)
	if err != nil {
		return err
	}
	log.Printf("[import] fetched=%d imported=%d duplicates=%d invalid=%d",
		stats.Fetched, stats.Imported, stats.Duplicates, stats.Invalid)
	return nil
}

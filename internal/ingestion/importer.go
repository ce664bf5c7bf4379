package ingestion

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"golang.org/x/sync/errgroup"

	"github.com/vikashvikku/resumerag/internal/db"
)

// importConcurrency bounds how many postings are checked and inserted at once.
const importConcurrency = 4

// JobStore is the slice of the document store the importer needs.
type JobStore interface {
	FindJobByTitleCompany(ctx context.Context, title, company string) (*db.Job, error)
	CreateJob(ctx context.Context, input *db.JobCreateInput) (*db.Job, error)
}

// Feed fetches raw postings; see FeedClient.
type Feed interface {
	Fetch(ctx context.Context) ([]RawJob, int, error)
}

// Stats summarizes one import run.
type Stats struct {
	Fetched    int
	Imported   int
	Duplicates int
	Invalid    int
}

// Importer runs the batch ingestion job: fetch, dedup, normalize, persist.
type Importer struct {
	store      JobStore
	feed       Feed
	normalizer *Normalizer
}

// NewImporter constructs an Importer.
func NewImporter(store JobStore, feed Feed, normalizer *Normalizer) *Importer {
	return &Importer{store: store, feed: feed, normalizer: normalizer}
}

// Run executes one import cycle. Postings already present (same title and
// company) are skipped. Individual posting failures abort the run; the feed
// being unreachable surfaces as an error with no retry here.
func (im *Importer) Run(ctx context.Context) (Stats, error) {
	raws, invalid, err := im.feed.Fetch(ctx)
	if err != nil {
		return Stats{}, fmt.Errorf("fetch feed: %w", err)
	}

	stats := Stats{Fetched: len(raws) + invalid, Invalid: invalid}
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(importConcurrency)

	for _, raw := range raws {
		raw := raw
		g.Go(func() error {
			existing, err := im.store.FindJobByTitleCompany(gctx, raw.Title, raw.CompanyName)
			if err != nil {
				return err
			}
			if existing != nil {
				log.Printf("[importer] %q at %s already exists, skipping", raw.Title, raw.CompanyName)
				mu.Lock()
				stats.Duplicates++
				mu.Unlock()
				return nil
			}

			input := im.normalizer.Normalize(raw)
			if _, err := im.store.CreateJob(gctx, input); err != nil {
				return fmt.Errorf("create job %q: %w", raw.Title, err)
			}

			log.Printf("[importer] Imported %q at %s", raw.Title, raw.CompanyName)
			mu.Lock()
			stats.Imported++
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return stats, err
	}

	log.Printf("[importer] Run done: fetched=%d imported=%d duplicates=%d invalid=%d",
		stats.Fetched, stats.Imported, stats.Duplicates, stats.Invalid)
	return stats, nil
}

// RunEvery runs one import immediately, then repeats on the given interval
// until the context is canceled.
func (im *Importer) RunEvery(ctx context.Context, interval time.Duration) error {
	c := cron.New()

	_, err := c.AddFunc(fmt.Sprintf("@every %s", interval), func() {
		if _, err := im.Run(ctx); err != nil {
			log.Printf("[importer] Scheduled run failed: %v", err)
		}
	})
	if err != nil {
		return fmt.Errorf("cron.AddFunc: %w", err)
	}

	// First run happens right away; the cron only covers repeats.
	if _, err := im.Run(ctx); err != nil {
		log.Printf("[importer] Initial run failed: %v", err)
	}

	c.Start()
	log.Printf("[importer] Scheduled every %s", interval)

	<-ctx.Done()
	c.Stop()
	return ctx.Err()
}

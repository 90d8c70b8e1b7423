// Package workers provides background maintenance workers.
package workers

import (
	"context"

	"github.com/robfig/cron/v3"

	"clashcal/internal/cache"
	"clashcal/internal/config"
	"clashcal/internal/util"
)

// CleanupWorker drops expired cache entries on a cron schedule.
type CleanupWorker struct {
	purger   cache.Purger
	schedule string
	cron     *cron.Cron
}

// NewCleanupWorker creates a cleanup worker over the given cache
// backend. purger may be nil when caching is disabled.
func NewCleanupWorker(purger cache.Purger, cfg *config.RetentionConfig) *CleanupWorker {
	schedule := cfg.PurgeSchedule
	if schedule == "" {
		schedule = config.DefaultPurgeSchedule
	}
	return &CleanupWorker{
		purger:   purger,
		schedule: schedule,
	}
}

// Start schedules the purge job and blocks until ctx is cancelled.
func (w *CleanupWorker) Start(ctx context.Context) {
	if w.purger == nil {
		util.Debug("Cleanup worker idle, no purgeable cache backend")
		return
	}

	util.Info("Starting cleanup worker", "schedule", w.schedule)

	w.cron = cron.New()
	if _, err := w.cron.AddFunc(w.schedule, func() {
		w.runCleanup(ctx)
	}); err != nil {
		util.Error("Invalid purge schedule, cleanup worker disabled",
			"schedule", w.schedule, "error", err)
		return
	}

	// Run immediately on start
	w.runCleanup(ctx)

	w.cron.Start()
	<-ctx.Done()

	stopped := w.cron.Stop()
	<-stopped.Done()
	util.Info("Cleanup worker stopped")
}

// runCleanup performs one purge pass.
func (w *CleanupWorker) runCleanup(ctx context.Context) {
	util.Debug("Running cache purge")

	purged, err := w.purger.PurgeExpired(ctx)
	if err != nil {
		util.Error("Failed to purge expired cache entries", "error", err)
		return
	}

	if purged > 0 {
		util.Info("Purged expired cache entries", "count", purged)
	}
}

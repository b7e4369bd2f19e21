package app

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/spf13/viper"

	"peersupport/store"
	"peersupport/utils"
)

var c *cron.Cron

// startScheduler starts the background refresh jobs: pruning expired query
// results and keeping the forum list warm.
func startScheduler(a *App) {
	c = cron.New()

	_, err := c.AddFunc("@every 5m", func() {
		if pruned := a.Cache.PruneExpired(); pruned > 0 {
			utils.Info("scheduler", "prune", fmt.Sprintf("dropped %d stale query results", pruned))
		}
	})
	if err != nil {
		log.Fatalf("Could not set up cache prune job: %v", err)
	}

	_, err = c.AddFunc("@hourly", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		a.Cache.Invalidate(store.ForumsQueryKey)
		if _, err := a.Forum.Forums(ctx); err != nil {
			utils.Warn("scheduler", "refresh", "forum refresh failed: "+err.Error())
		}
	})
	if err != nil {
		log.Fatalf("Could not set up forum refresh job: %v", err)
	}

	c.Start()

	// Warm the forum list on startup when configured.
	if viper.GetBool("refresh.at_startup") {
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			if _, err := a.Forum.Forums(ctx); err != nil {
				utils.Warn("scheduler", "startup", "initial forum fetch failed: "+err.Error())
			}
		}()
	}
}

// stopScheduler stops the background jobs.
func stopScheduler() {
	if c != nil {
		c.Stop()
	}
}

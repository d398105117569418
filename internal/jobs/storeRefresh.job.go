package jobs

import (
	"context"
	"time"
	syncController "toolcrib/internal/controllers/sync"
	"toolcrib/internal/state"

	logger "github.com/Bparsons0904/goLogger"
)

type StoreRefreshJob struct {
	sync     syncController.SyncControllerInterface
	store    *state.Store
	interval time.Duration
	log      logger.Logger
}

func NewStoreRefreshJob(
	sync syncController.SyncControllerInterface,
	store *state.Store,
	interval time.Duration,
) *StoreRefreshJob {
	log := logger.New("storeRefreshJob")
	log.Info("Creating new store refresh job", "interval", interval)

	return &StoreRefreshJob{
		sync:     sync,
		store:    store,
		interval: interval,
		log:      log,
	}
}

func (j *StoreRefreshJob) Name() string {
	return "StoreRefresh"
}

// Execute reloads the collections while a session is active. Without one the
// backend would answer 401 for every collection.
func (j *StoreRefreshJob) Execute(ctx context.Context) error {
	log := j.log.Function("Execute")

	if !j.store.Snapshot().Authenticated() {
		log.Debug("No active session, skipping refresh")
		return nil
	}

	if err := j.sync.ReloadAll(ctx); err != nil {
		return log.Err("scheduled refresh failed", err)
	}

	log.Debug("Scheduled refresh completed")
	return nil
}

func (j *StoreRefreshJob) Interval() time.Duration {
	return j.interval
}

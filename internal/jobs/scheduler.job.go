package jobs

import (
	"toolcrib/config"
	"toolcrib/internal/controllers"
	"toolcrib/internal/services"
	"toolcrib/internal/state"

	logger "github.com/Bparsons0904/goLogger"
)

func RegisterAllJobs(
	schedulerService *services.SchedulerService,
	config config.Config,
	services services.Service,
	controllers controllers.Controllers,
	store *state.Store,
) error {
	log := logger.New("jobs").Function("RegisterAllJobs")
	log.Info("Registering jobs")

	if interval := config.RefreshInterval(); interval > 0 {
		refreshJob := NewStoreRefreshJob(controllers.Sync, store, interval)
		if err := schedulerService.AddJob(refreshJob); err != nil {
			return log.Err("failed to register store refresh job", err)
		}
		log.Info("Registered store refresh job", "interval", interval)
	} else {
		log.Info("Automatic refresh disabled")
	}

	cleanupJob := NewPartFileCleanupJob(
		services.Export,
		PartFileCleanupInterval,
		PartFileMaxAge,
	)
	if err := schedulerService.AddJob(cleanupJob); err != nil {
		return log.Err("failed to register part file cleanup job", err)
	}
	log.Info("Registered part file cleanup job", "interval", PartFileCleanupInterval)

	return nil
}

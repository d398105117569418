package jobs

import (
	"context"
	"time"
	"toolcrib/internal/services"

	logger "github.com/Bparsons0904/goLogger"
)

const (
	PartFileCleanupInterval = time.Hour
	PartFileMaxAge          = time.Hour
)

type PartFileCleanupJob struct {
	export   *services.ExportService
	interval time.Duration
	maxAge   time.Duration
	log      logger.Logger
}

func NewPartFileCleanupJob(
	export *services.ExportService,
	interval time.Duration,
	maxAge time.Duration,
) *PartFileCleanupJob {
	log := logger.New("partFileCleanupJob")
	log.Info("Creating new part file cleanup job", "interval", interval, "maxAge", maxAge)

	return &PartFileCleanupJob{
		export:   export,
		interval: interval,
		maxAge:   maxAge,
		log:      log,
	}
}

func (j *PartFileCleanupJob) Name() string {
	return "PartFileCleanup"
}

func (j *PartFileCleanupJob) Execute(ctx context.Context) error {
	log := j.log.Function("Execute")

	removed, err := j.export.CleanupPartFiles(ctx, j.maxAge)
	if err != nil {
		return log.Err("part file cleanup failed", err)
	}

	log.Debug("Part file cleanup completed", "removed", removed)
	return nil
}

func (j *PartFileCleanupJob) Interval() time.Duration {
	return j.interval
}

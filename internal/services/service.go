package services

import (
	"toolcrib/config"
)

type Service struct {
	API       *APIService
	Export    *ExportService
	Scheduler *SchedulerService
}

func New(config config.Config) Service {
	return Service{
		API:       NewAPIService(config),
		Export:    NewExportService(config),
		Scheduler: NewSchedulerService(),
	}
}

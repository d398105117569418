package app

import (
	"fmt"
	"log/slog"
	"toolcrib/config"
	"toolcrib/internal/controllers"
	"toolcrib/internal/events"
	"toolcrib/internal/jobs"
	"toolcrib/internal/services"
	"toolcrib/internal/state"

	logger "github.com/Bparsons0904/goLogger"
	"github.com/valkey-io/valkey-go"
)

type App struct {
	Config      config.Config
	EventBus    *events.EventBus
	Store       *state.Store
	Services    services.Service
	Controllers controllers.Controllers
}

func New() (*App, error) {
	log := logger.New("app").Function("New")

	config, err := config.New()
	if err != nil {
		return &App{}, log.Err("failed to initialize config", err)
	}

	return NewWithConfig(config)
}

// NewWithConfig wires the app from an already validated config.
func NewWithConfig(config config.Config) (*App, error) {
	log := logger.New("app").Function("NewWithConfig")

	if config.Environment == "development" {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}

	var client valkey.Client
	if config.EventsCacheEnabled() {
		var err error
		client, err = valkey.NewClient(valkey.ClientOption{
			InitAddress: []string{
				fmt.Sprintf("%s:%d", config.EventsCacheAddress, config.EventsCachePort),
			},
		})
		if err != nil {
			return &App{}, log.Err("failed to create events valkey client", err)
		}
		log.Info("Mirroring events to valkey", "address", config.EventsCacheAddress)
	}

	eventBus := events.New(client)
	store := state.NewStore(eventBus)
	services := services.New(config)
	controllers := controllers.New(services, store)

	if err := jobs.RegisterAllJobs(services.Scheduler, config, services, controllers, store); err != nil {
		_ = eventBus.Close()
		return &App{}, log.Err("failed to register jobs", err)
	}

	app := &App{
		Config:      config,
		EventBus:    eventBus,
		Store:       store,
		Services:    services,
		Controllers: controllers,
	}

	if err := app.validate(); err != nil {
		_ = eventBus.Close()
		return &App{}, log.Err("failed to validate app", err)
	}

	return app, nil
}

func (a *App) validate() error {
	log := logger.New("app").Function("validate")

	if a.Config == (config.Config{}) {
		return log.ErrMsg("config is nil")
	}

	nilChecks := []any{
		a.EventBus,
		a.Store,
		a.Services.API,
		a.Services.Export,
		a.Services.Scheduler,
		a.Controllers.Session,
		a.Controllers.Sync,
		a.Controllers.Inventory,
		a.Controllers.Fleet,
		a.Controllers.Export,
	}

	for _, check := range nilChecks {
		if check == nil {
			return log.ErrMsg("nil check failed")
		}
	}

	return nil
}

func (a *App) Close() (err error) {
	if a.Services.Scheduler != nil {
		if closeErr := a.Services.Scheduler.Stop(); closeErr != nil {
			err = closeErr
		}
	}

	if a.EventBus != nil {
		if closeErr := a.EventBus.Close(); closeErr != nil {
			err = closeErr
		}
	}

	return err
}

package controllers

import (
	"toolcrib/internal/services"
	"toolcrib/internal/state"

	exportController "toolcrib/internal/controllers/export"
	fleetController "toolcrib/internal/controllers/fleet"
	inventoryController "toolcrib/internal/controllers/inventory"
	sessionController "toolcrib/internal/controllers/session"
	syncController "toolcrib/internal/controllers/sync"
)

type Controllers struct {
	Session   sessionController.SessionControllerInterface
	Sync      syncController.SyncControllerInterface
	Inventory inventoryController.InventoryControllerInterface
	Fleet     fleetController.FleetControllerInterface
	Export    exportController.ExportControllerInterface
}

func New(services services.Service, store *state.Store) Controllers {
	sync := syncController.New(services, store)

	return Controllers{
		Session:   sessionController.New(services, sync, store),
		Sync:      sync,
		Inventory: inventoryController.New(services, sync, store),
		Fleet:     fleetController.New(services, sync, store),
		Export:    exportController.New(services, store),
	}
}

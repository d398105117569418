package fleetController

import (
	"context"
	syncController "toolcrib/internal/controllers/sync"
	"toolcrib/internal/forms"
	"toolcrib/internal/services"
	"toolcrib/internal/state"
)

type FleetController struct {
	api   *services.APIService
	sync  syncController.SyncControllerInterface
	store *state.Store
}

type FleetControllerInterface interface {
	CreateVehicle(ctx context.Context, identification string) error

	// External service draft, edited across several commands
	ExternalServiceDraft() forms.ExternalServiceDraft
	EditExternalServiceDraft(edit func(forms.ExternalServiceDraft) (forms.ExternalServiceDraft, error)) error
	ResetExternalServiceDraft()
	CreateExternalService(ctx context.Context) error
}

func New(
	services services.Service,
	sync syncController.SyncControllerInterface,
	store *state.Store,
) FleetControllerInterface {
	return &FleetController{
		api:   services.API,
		sync:  sync,
		store: store,
	}
}

func (fc *FleetController) CreateVehicle(ctx context.Context, identification string) error {
	draft := forms.VehicleDraft{Identification: identification}
	fc.store.Dispatch(state.VehicleDraftSet{Draft: draft})

	return fc.sync.Submit(ctx, syncController.Mutation{
		Operation: "createVehicle",
		Form:      forms.FormVehicle,
		Ready:     draft.Ready(),
		Success:   "Veículo criado com sucesso!",
		Fallback:  "Erro ao criar veículo",
		Send: func(ctx context.Context) error {
			return fc.api.CreateVehicle(ctx, draft.Request())
		},
	})
}

func (fc *FleetController) ExternalServiceDraft() forms.ExternalServiceDraft {
	return fc.store.Snapshot().Drafts.ExternalService
}

// EditExternalServiceDraft applies edit to the current draft. The draft is
// left untouched when edit fails.
func (fc *FleetController) EditExternalServiceDraft(
	edit func(forms.ExternalServiceDraft) (forms.ExternalServiceDraft, error),
) error {
	draft, err := edit(fc.ExternalServiceDraft())
	if err != nil {
		return err
	}
	fc.store.Dispatch(state.ExternalServiceDraftSet{Draft: draft})
	return nil
}

func (fc *FleetController) ResetExternalServiceDraft() {
	fc.store.Dispatch(state.DraftReset{Form: forms.FormExternalService})
}

// CreateExternalService submits the current draft, checklists and materials
// included.
func (fc *FleetController) CreateExternalService(ctx context.Context) error {
	draft := fc.ExternalServiceDraft()

	return fc.sync.Submit(ctx, syncController.Mutation{
		Operation: "createExternalService",
		Form:      forms.FormExternalService,
		Ready:     draft.Ready(),
		Success:   "Serviço externo criado com sucesso!",
		Fallback:  "Erro ao criar serviço externo",
		Send: func(ctx context.Context) error {
			return fc.api.CreateExternalService(ctx, draft.Request())
		},
	})
}

package inventoryController

import (
	"context"
	syncController "toolcrib/internal/controllers/sync"
	"toolcrib/internal/forms"
	"toolcrib/internal/models"
	"toolcrib/internal/services"
	"toolcrib/internal/state"
)

type InventoryController struct {
	api   *services.APIService
	sync  syncController.SyncControllerInterface
	store *state.Store
}

// InventoryControllerInterface covers electricians, tools/PPE and their
// assignments.
type InventoryControllerInterface interface {
	CreateElectrician(ctx context.Context, name string) error
	CreateToolPPE(ctx context.Context, name string, itemType models.ItemType) error
	CreateAssignment(ctx context.Context, electricianID, toolPPEID int, observation string) error
	ReturnAssignment(ctx context.Context, assignmentID int) error
}

func New(
	services services.Service,
	sync syncController.SyncControllerInterface,
	store *state.Store,
) InventoryControllerInterface {
	return &InventoryController{
		api:   services.API,
		sync:  sync,
		store: store,
	}
}

func (ic *InventoryController) CreateElectrician(ctx context.Context, name string) error {
	draft := forms.ElectricianDraft{Name: name}
	ic.store.Dispatch(state.ElectricianDraftSet{Draft: draft})

	return ic.sync.Submit(ctx, syncController.Mutation{
		Operation: "createElectrician",
		Form:      forms.FormElectrician,
		Ready:     draft.Ready(),
		Success:   "Eletricista criado com sucesso!",
		Fallback:  "Erro ao criar eletricista",
		Send: func(ctx context.Context) error {
			return ic.api.CreateElectrician(ctx, draft.Request())
		},
	})
}

// CreateToolPPE submits Ferramenta when itemType is empty.
func (ic *InventoryController) CreateToolPPE(
	ctx context.Context,
	name string,
	itemType models.ItemType,
) error {
	draft := forms.NewToolPPEDraft()
	draft.Name = name
	if itemType != "" {
		draft.Type = itemType
	}
	ic.store.Dispatch(state.ToolPPEDraftSet{Draft: draft})

	return ic.sync.Submit(ctx, syncController.Mutation{
		Operation: "createToolPPE",
		Form:      forms.FormToolPPE,
		Ready:     draft.Ready(),
		Success:   "Item criado com sucesso!",
		Fallback:  "Erro ao criar item",
		Send: func(ctx context.Context) error {
			return ic.api.CreateToolPPE(ctx, draft.Request())
		},
	})
}

func (ic *InventoryController) CreateAssignment(
	ctx context.Context,
	electricianID, toolPPEID int,
	observation string,
) error {
	draft := forms.AssignmentDraft{
		ElectricianID: electricianID,
		ToolPPEID:     toolPPEID,
		Observation:   observation,
	}
	ic.store.Dispatch(state.AssignmentDraftSet{Draft: draft})

	return ic.sync.Submit(ctx, syncController.Mutation{
		Operation: "createAssignment",
		Form:      forms.FormAssignment,
		Ready:     draft.Ready(),
		Success:   "Atribuição criada com sucesso!",
		Fallback:  "Erro ao criar atribuição",
		Send: func(ctx context.Context) error {
			return ic.api.CreateAssignment(ctx, draft.Request())
		},
	})
}

// ReturnAssignment issues the return even for an assignment the local copy
// already shows as returned; the server decides.
func (ic *InventoryController) ReturnAssignment(ctx context.Context, assignmentID int) error {
	return ic.sync.Submit(ctx, syncController.Mutation{
		Operation: "returnAssignment",
		Ready:     assignmentID > 0,
		Success:   "Item devolvido com sucesso!",
		Fallback:  "Erro ao devolver item",
		Send: func(ctx context.Context) error {
			return ic.api.ReturnAssignment(ctx, assignmentID)
		},
	})
}

package syncController

import (
	"context"
	"errors"
	appContext "toolcrib/internal/context"
	"toolcrib/internal/forms"
	"toolcrib/internal/services"
	"toolcrib/internal/state"

	logger "github.com/Bparsons0904/goLogger"
)

const (
	ReloadFailedNotice     = "Erro ao carregar dados"
	ConnectionFailedNotice = "Erro de conexão"
)

// ErrIncomplete is returned when required fields are missing. No request is
// issued and no notice is shown.
var ErrIncomplete = errors.New("required fields missing")

// Mutation describes one create/return call and its notices.
type Mutation struct {
	Operation string
	// Form is reset on success; empty when the call has no draft.
	Form     forms.Form
	Ready    bool
	Success  string
	Fallback string
	Send     func(ctx context.Context) error
}

type SyncController struct {
	api   *services.APIService
	store *state.Store
	log   logger.Logger
}

type SyncControllerInterface interface {
	ReloadAll(ctx context.Context) error
	Submit(ctx context.Context, mutation Mutation) error
}

func New(services services.Service, store *state.Store) SyncControllerInterface {
	return &SyncController{
		api:   services.API,
		store: store,
		log:   logger.New("syncController"),
	}
}

// ReloadAll fetches the five collections in order. A non-2xx or unreadable
// reply keeps the previous value of that collection; a transport failure
// abandons the rest.
func (sc *SyncController) ReloadAll(ctx context.Context) error {
	ctx = appContext.WithTrace(ctx)
	log := sc.log.TraceFromContext(ctx).Function("ReloadAll")

	sc.store.Dispatch(state.ReloadStarted{})

	for i, collection := range state.Collections {
		action, err := sc.fetch(ctx, collection)
		if err == nil {
			sc.store.Dispatch(action)
			continue
		}

		if errors.Is(err, services.ErrTransport) {
			for _, skipped := range state.Collections[i:] {
				sc.store.Dispatch(state.CollectionFailed{Collection: skipped})
			}
			sc.store.Dispatch(state.ErrorNoticed{Message: ReloadFailedNotice})
			sc.store.Dispatch(state.ReloadFinished{Aborted: true})
			return log.Err("reload aborted", err, "collection", collection)
		}

		log.Warn("collection kept stale", "collection", collection, "error", err)
		sc.store.Dispatch(state.CollectionFailed{Collection: collection})
	}

	snapshot := sc.store.Dispatch(state.ReloadFinished{})
	log.Debug("reload completed", "stale", len(snapshot.Stale))
	return nil
}

func (sc *SyncController) fetch(ctx context.Context, collection state.Collection) (state.Action, error) {
	switch collection {
	case state.CollectionElectricians:
		items, err := sc.api.ListElectricians(ctx)
		return state.ElectriciansLoaded{Items: items}, err
	case state.CollectionToolsPPE:
		items, err := sc.api.ListToolsPPE(ctx)
		return state.ToolsPPELoaded{Items: items}, err
	case state.CollectionAssignments:
		items, err := sc.api.ListAssignments(ctx)
		return state.AssignmentsLoaded{Items: items}, err
	case state.CollectionVehicles:
		items, err := sc.api.ListVehicles(ctx)
		return state.VehiclesLoaded{Items: items}, err
	default:
		items, err := sc.api.ListExternalServices(ctx)
		return state.ExternalServicesLoaded{Items: items}, err
	}
}

// Submit runs the shared mutation protocol. The returned error is the call's
// own failure; a failed follow-up reload is reported through the notice slot.
func (sc *SyncController) Submit(ctx context.Context, mutation Mutation) error {
	if !mutation.Ready {
		return ErrIncomplete
	}

	ctx = appContext.WithTrace(ctx)
	log := sc.log.TraceFromContext(ctx).Function("Submit")

	if err := mutation.Send(ctx); err != nil {
		sc.store.Dispatch(state.ErrorNoticed{Message: FailureNotice(err, mutation.Fallback)})
		return log.Err("mutation failed", err, "operation", mutation.Operation)
	}

	if mutation.Form != "" {
		sc.store.Dispatch(state.DraftReset{Form: mutation.Form})
	}
	sc.store.Dispatch(state.SuccessNoticed{Message: mutation.Success})
	log.Info("mutation succeeded", "operation", mutation.Operation)

	if err := sc.ReloadAll(ctx); err != nil {
		log.Warn("reload after mutation failed", "operation", mutation.Operation, "error", err)
	}
	return nil
}

// FailureNotice picks the notice for a failed call: the server's own message,
// else fallback, or the connectivity notice when no response arrived.
func FailureNotice(err error, fallback string) string {
	if errors.Is(err, services.ErrTransport) {
		return ConnectionFailedNotice
	}
	if message, ok := services.ServerMessage(err); ok {
		return message
	}
	return fallback
}

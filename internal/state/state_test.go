package state

import (
	"sync"
	"testing"
	"time"
	"toolcrib/internal/events"
	"toolcrib/internal/forms"
	"toolcrib/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReduce_DoesNotModifyInput(t *testing.T) {
	before := New()
	after := Reduce(before, CollectionFailed{Collection: CollectionVehicles})

	assert.False(t, before.IsStale(CollectionVehicles))
	assert.True(t, after.IsStale(CollectionVehicles))
}

func TestReduce_Session(t *testing.T) {
	admin := &models.User{ID: 1, Username: "admin", Permission: models.PermissionAdmin}

	s := Reduce(New(), ProbeStarted{})
	assert.True(t, s.Probing)

	s = Reduce(s, ProbeFinished{})
	assert.False(t, s.Probing)
	assert.False(t, s.Authenticated())

	s = Reduce(s, LoginStarted{})
	assert.True(t, s.LoggingIn)
	s = Reduce(s, LoginSucceeded{User: admin})
	assert.False(t, s.LoggingIn)
	assert.True(t, s.IsAdmin())

	s = Reduce(s, SessionCleared{})
	assert.False(t, s.Authenticated())
	assert.False(t, s.IsAdmin())
}

func TestReduce_CollectionsClearStaleness(t *testing.T) {
	s := Reduce(New(), CollectionFailed{Collection: CollectionVehicles})
	s = Reduce(s, VehiclesLoaded{Items: []models.Vehicle{{ID: 1, Identification: "VAN-001"}}})

	assert.False(t, s.IsStale(CollectionVehicles))
	require.Len(t, s.Vehicles, 1)
	assert.Equal(t, "VAN-001", s.Vehicles[0].Identification)
}

func TestReduce_FailureKeepsPreviousValue(t *testing.T) {
	s := Reduce(New(), ElectriciansLoaded{Items: []models.Electrician{{ID: 1, Name: "Ana"}}})
	s = Reduce(s, CollectionFailed{Collection: CollectionElectricians})

	require.Len(t, s.Electricians, 1)
	assert.True(t, s.IsStale(CollectionElectricians))
}

func TestReduce_NoticeSlotsAreIndependent(t *testing.T) {
	s := Reduce(New(), SuccessNoticed{Message: "Login realizado com sucesso!"})
	s = Reduce(s, ErrorNoticed{Message: "Erro de conexão"})

	assert.Equal(t, "Login realizado com sucesso!", s.Notice.Success)
	assert.Equal(t, "Erro de conexão", s.Notice.Error)
	assert.Greater(t, s.Notice.ErrorSeq, s.Notice.SuccessSeq)

	s = Reduce(s, SuccessNoticed{Message: "Item criado com sucesso!"})
	assert.Equal(t, "Erro de conexão", s.Notice.Error)
	assert.Equal(t, "Item criado com sucesso!", s.Notice.Success)
	assert.Equal(t, s.Notice.Seq, s.Notice.SuccessSeq)
}

func TestReduce_Drafts(t *testing.T) {
	s := Reduce(New(), VehicleDraftSet{Draft: forms.VehicleDraft{Identification: "VAN-003"}})
	assert.Equal(t, "VAN-003", s.Drafts.Vehicle.Identification)

	s = Reduce(s, DraftReset{Form: forms.FormVehicle})
	assert.Empty(t, s.Drafts.Vehicle.Identification)
}

func TestStore_SnapshotIsIsolated(t *testing.T) {
	store := NewStore(nil)
	store.Dispatch(ExternalServiceDraftSet{
		Draft: forms.NewExternalServiceDraft().WithMaterial(models.Material{Name: "Cabo"}),
	})

	snapshot := store.Snapshot()
	snapshot.Drafts.ExternalService.Materials[0].Name = "alterado"
	snapshot.Stale[CollectionVehicles] = true

	fresh := store.Snapshot()
	assert.Equal(t, "Cabo", fresh.Drafts.ExternalService.Materials[0].Name)
	assert.False(t, fresh.IsStale(CollectionVehicles))
}

func TestStore_ConcurrentDispatch(t *testing.T) {
	store := NewStore(nil)

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			store.Dispatch(ReloadStarted{})
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, store.Snapshot().Reloads)
}

func TestStore_BroadcastsNotices(t *testing.T) {
	bus := events.New(nil)
	defer bus.Close()

	var mu sync.Mutex
	var messages []string
	bus.Subscribe(events.NOTICE_CHANNEL, func(event events.Event) error {
		mu.Lock()
		defer mu.Unlock()
		messages = append(messages, event.Data["message"].(string))
		return nil
	})

	store := NewStore(bus)
	store.Dispatch(ErrorNoticed{Message: "Erro ao carregar dados"})

	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(messages) == 1 && messages[0] == "Erro ao carregar dados"
	}, time.Second, 10*time.Millisecond)
}

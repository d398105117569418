package sessionController

import (
	"context"
	"net/http"
	"testing"
	"toolcrib/config"
	"toolcrib/internal/backendtest"
	syncController "toolcrib/internal/controllers/sync"
	"toolcrib/internal/services"
	"toolcrib/internal/state"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type harness struct {
	backend   *backendtest.Server
	transport *backendtest.DropTransport
	store     *state.Store
	session   SessionControllerInterface
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	backend := backendtest.New(t)
	transport := backendtest.NewDropTransport()
	svc := services.New(config.Config{APIBaseURL: backend.URL})
	svc.API.SetTransport(transport)

	store := state.NewStore(nil)
	sync := syncController.New(svc, store)

	return &harness{
		backend:   backend,
		transport: transport,
		store:     store,
		session:   New(svc, sync, store),
	}
}

func (h *harness) login(t *testing.T) {
	t.Helper()
	require.NoError(t, h.session.Login(
		context.Background(),
		backendtest.AdminUsername,
		backendtest.AdminPassword,
	))
}

func TestProbe_WithoutSessionStaysSilent(t *testing.T) {
	h := newHarness(t)

	err := h.session.Probe(context.Background())

	assert.Error(t, err)
	s := h.store.Snapshot()
	assert.False(t, s.Authenticated())
	assert.False(t, s.Probing)
	assert.Empty(t, s.Notice.Error)
	assert.Zero(t, s.Reloads)
	assert.Zero(t, h.backend.Hits(http.MethodGet, "/eletricistas"))
}

func TestProbe_RestoresSessionAndReloads(t *testing.T) {
	h := newHarness(t)
	h.login(t)
	h.store.Dispatch(state.SessionCleared{})

	require.NoError(t, h.session.Probe(context.Background()))

	s := h.store.Snapshot()
	require.True(t, s.Authenticated())
	assert.Equal(t, backendtest.AdminUsername, s.User.Username)
	assert.Equal(t, 2, s.Reloads)
	assert.Equal(t, 2, h.backend.Hits(http.MethodGet, "/servicos-externos"))
}

func TestLogin_Succeeds(t *testing.T) {
	h := newHarness(t)
	h.backend.SeedElectrician("Ana")

	h.login(t)

	s := h.store.Snapshot()
	assert.True(t, s.IsAdmin())
	assert.False(t, s.LoggingIn)
	assert.Equal(t, LoginSucceededNotice, s.Notice.Success)
	assert.Equal(t, 1, s.Reloads)
	assert.Len(t, s.Electricians, 1)
	assert.Equal(t, h.session.Current().Username, backendtest.AdminUsername)
}

func TestLogin_MissingFieldsIssueNoRequest(t *testing.T) {
	h := newHarness(t)

	assert.ErrorIs(t, h.session.Login(context.Background(), "", "secret"), syncController.ErrIncomplete)
	assert.ErrorIs(t, h.session.Login(context.Background(), "  ", "secret"), syncController.ErrIncomplete)
	assert.ErrorIs(t, h.session.Login(context.Background(), "admin", ""), syncController.ErrIncomplete)

	assert.Zero(t, h.backend.TotalHits())
	assert.Empty(t, h.store.Snapshot().Notice.Error)
}

func TestLogin_Failures(t *testing.T) {
	tests := []struct {
		name   string
		setup  func(h *harness)
		notice string
	}{
		{
			name:   "wrong password shows server message",
			setup:  func(*harness) {},
			notice: "Credenciais inválidas",
		},
		{
			name: "error without message falls back",
			setup: func(h *harness) {
				h.backend.Fail(http.MethodPost, "/auth/login", http.StatusInternalServerError, "")
			},
			notice: LoginFailedNotice,
		},
		{
			name: "no connection",
			setup: func(h *harness) {
				h.transport.DropAll(true)
			},
			notice: LoginOfflineNotice,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			tt.setup(h)

			err := h.session.Login(context.Background(), backendtest.AdminUsername, "wrong")

			assert.Error(t, err)
			s := h.store.Snapshot()
			assert.False(t, s.Authenticated())
			assert.False(t, s.LoggingIn)
			assert.Equal(t, tt.notice, s.Notice.Error)
			assert.Zero(t, s.Reloads)
		})
	}
}

func TestLogout_ClearsSession(t *testing.T) {
	h := newHarness(t)
	h.login(t)

	require.NoError(t, h.session.Logout(context.Background()))

	s := h.store.Snapshot()
	assert.False(t, s.Authenticated())
	assert.Equal(t, LogoutSucceededNotice, s.Notice.Success)
	assert.Nil(t, h.session.Current())
}

func TestLogout_RejectedStillClearsSession(t *testing.T) {
	h := newHarness(t)
	h.login(t)
	h.backend.Fail(http.MethodPost, "/auth/logout", http.StatusInternalServerError, "falhou")

	require.NoError(t, h.session.Logout(context.Background()))

	assert.False(t, h.store.Snapshot().Authenticated())
}

func TestLogout_TransportFailureKeepsSession(t *testing.T) {
	h := newHarness(t)
	h.login(t)
	h.transport.Drop("/auth/logout")

	err := h.session.Logout(context.Background())

	assert.ErrorIs(t, err, services.ErrTransport)
	s := h.store.Snapshot()
	assert.True(t, s.Authenticated())
	assert.Equal(t, LogoutFailedNotice, s.Notice.Error)
}

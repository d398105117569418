package services

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"toolcrib/config"
	"toolcrib/internal/backendtest"
	appContext "toolcrib/internal/context"
	"toolcrib/internal/models"
	"toolcrib/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAPI(t *testing.T) (*APIService, *backendtest.Server) {
	t.Helper()
	backend := backendtest.New(t)
	return NewAPIService(config.Config{APIBaseURL: backend.URL}), backend
}

func login(t *testing.T, api *APIService, username, password string) *models.User {
	t.Helper()
	user, err := api.Login(context.Background(), types.LoginRequest{
		Username: username,
		Password: password,
	})
	require.NoError(t, err)
	return user
}

func TestAPIService_LoginKeepsSessionCookie(t *testing.T) {
	api, _ := newTestAPI(t)
	ctx := context.Background()

	user := login(t, api, backendtest.AdminUsername, backendtest.AdminPassword)
	assert.Equal(t, backendtest.AdminUsername, user.Username)
	assert.True(t, user.IsAdmin())

	current, err := api.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, user.ID, current.ID)

	require.NoError(t, api.Logout(ctx))

	_, err = api.CurrentUser(ctx)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
}

func TestAPIService_RejectedLoginCarriesServerMessage(t *testing.T) {
	api, _ := newTestAPI(t)

	_, err := api.Login(context.Background(), types.LoginRequest{
		Username: backendtest.AdminUsername,
		Password: "wrong",
	})

	message, ok := ServerMessage(err)
	assert.True(t, ok)
	assert.Equal(t, "Credenciais inválidas", message)
	assert.False(t, errors.Is(err, ErrTransport))
}

func TestAPIService_TransportFailure(t *testing.T) {
	api, backend := newTestAPI(t)
	api.SetTransport(backendtest.NewDropTransport().DropAll(true))

	_, err := api.ListVehicles(context.Background())

	assert.ErrorIs(t, err, ErrTransport)
	_, ok := ServerMessage(err)
	assert.False(t, ok)
	assert.Zero(t, backend.TotalHits())
}

func TestAPIService_ErrorWithoutMessage(t *testing.T) {
	api, backend := newTestAPI(t)
	login(t, api, backendtest.AdminUsername, backendtest.AdminPassword)
	backend.Fail(http.MethodPost, "/veiculos", http.StatusInternalServerError, "")

	err := api.CreateVehicle(context.Background(), types.CreateVehicleRequest{Identification: "VAN-009"})

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	assert.Empty(t, apiErr.Message)
}

func TestAPIService_DecodesCollections(t *testing.T) {
	api, backend := newTestAPI(t)
	ctx := context.Background()
	login(t, api, backendtest.AdminUsername, backendtest.AdminPassword)

	ana := backend.SeedElectrician("Ana")
	helmet := backend.SeedToolPPE("Capacete", models.ItemTypePPE)
	backend.SeedAssignment(ana.ID, helmet.ID, "", false)
	van := backend.SeedVehicle("VAN-001")
	harness := models.DefaultHarnessChecklist()
	harness.HarnessStatus = models.StatusNonConforming
	backend.SeedExternalService(models.ExternalService{
		VehicleID:        van.ID,
		HarnessChecklist: &harness,
	})

	assignments, err := api.ListAssignments(ctx)
	require.NoError(t, err)
	require.Len(t, assignments, 1)
	assignment := assignments[0]
	require.NotNil(t, assignment.CheckedOutAt)
	assert.False(t, assignment.CheckedOutAt.IsZero())
	assert.Nil(t, assignment.ReturnedAt)
	assert.Nil(t, assignment.Observation)
	require.NotNil(t, assignment.ElectricianName)
	assert.Equal(t, "Ana", *assignment.ElectricianName)
	assert.True(t, assignment.CanReturn())

	services, err := api.ListExternalServices(ctx)
	require.NoError(t, err)
	require.Len(t, services, 1)
	require.NotNil(t, services[0].HarnessChecklist)
	assert.Equal(t, models.StatusNonConforming, services[0].HarnessChecklist.HarnessStatus)
	assert.Nil(t, services[0].LadderChecklist)
	require.NotNil(t, services[0].VehicleIdentification)
	assert.Equal(t, "VAN-001", *services[0].VehicleIdentification)
}

func TestAPIService_ReturnAssignmentTwice(t *testing.T) {
	api, backend := newTestAPI(t)
	ctx := context.Background()
	login(t, api, backendtest.AdminUsername, backendtest.AdminPassword)

	ana := backend.SeedElectrician("Ana")
	pliers := backend.SeedToolPPE("Alicate", models.ItemTypeTool)
	assignment := backend.SeedAssignment(ana.ID, pliers.ID, "turno da manhã", false)

	require.NoError(t, api.ReturnAssignment(ctx, assignment.ID))

	assignments, err := api.ListAssignments(ctx)
	require.NoError(t, err)
	require.Len(t, assignments, 1)
	assert.True(t, assignments[0].IsReturned())

	err = api.ReturnAssignment(ctx, assignment.ID)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "Esta atribuição já foi devolvida", apiErr.Message)
}

func TestAPIService_MutationIgnoresReplyBody(t *testing.T) {
	api, backend := newTestAPI(t)
	ctx := context.Background()
	login(t, api, backendtest.AdminUsername, backendtest.AdminPassword)
	backend.ReplaceBody(http.MethodPost, "/eletricistas", `{"id":1,"nome":"Ana","data_criacao":"ontem"}`)

	require.NoError(t, api.CreateElectrician(ctx, types.CreateElectricianRequest{Name: "Ana"}))

	backend.ClearFailures()
	electricians, err := api.ListElectricians(ctx)
	require.NoError(t, err)
	require.Len(t, electricians, 1)
	assert.Equal(t, "Ana", electricians[0].Name)
}

func TestAPIService_UndecodableCollectionIsNotTransport(t *testing.T) {
	api, backend := newTestAPI(t)
	login(t, api, backendtest.AdminUsername, backendtest.AdminPassword)
	backend.ReplaceBody(http.MethodGet, "/veiculos", `[{"id":1,"identificacao":"VAN-001","data_criacao":"ontem"}]`)

	_, err := api.ListVehicles(context.Background())

	assert.ErrorIs(t, err, ErrDecode)
	assert.False(t, errors.Is(err, ErrTransport))
	_, ok := ServerMessage(err)
	assert.False(t, ok)
}

func TestAPIService_SendsTraceID(t *testing.T) {
	api, backend := newTestAPI(t)
	ctx := appContext.WithTrace(context.Background())
	traceID, ok := appContext.GetTraceID(ctx)
	require.True(t, ok)

	_, _ = api.CurrentUser(ctx)

	assert.Contains(t, backend.TraceIDs(), traceID)
}

func TestAPIService_CollaboratorCannotCreateVehicle(t *testing.T) {
	api, _ := newTestAPI(t)
	login(t, api, backendtest.CollaboratorUsername, backendtest.CollaboratorPassword)

	err := api.CreateVehicle(context.Background(), types.CreateVehicleRequest{Identification: "VAN-010"})

	message, ok := ServerMessage(err)
	assert.True(t, ok)
	assert.Equal(t, "Permissão de administrador necessária", message)
}

func TestAPIService_ExportRejected(t *testing.T) {
	api, backend := newTestAPI(t)
	login(t, api, backendtest.AdminUsername, backendtest.AdminPassword)
	backend.Fail(http.MethodGet, "/export/atribuicoes/pdf", http.StatusInternalServerError, "falhou")

	payload, err := api.Export(context.Background(), types.ExportAssignments, types.ExportPDF)

	assert.Nil(t, payload)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
}

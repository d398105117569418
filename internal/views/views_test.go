package views

import (
	"bytes"
	"testing"
	"time"
	"toolcrib/internal/forms"
	"toolcrib/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(value string) *string {
	return &value
}

func at(year int, month time.Month, day, hour int) *models.Timestamp {
	return models.NewTimestamp(time.Date(year, month, day, hour, 0, 0, 0, time.UTC))
}

func sampleAssignments() []models.Assignment {
	return []models.Assignment{
		{
			ID:              1,
			ElectricianName: ptr("Ana Souza"),
			ToolPPEName:     ptr("Alicate"),
			Observation:     ptr("Obra ACME"),
			CheckedOutAt:    at(2026, time.March, 1, 8),
		},
		{
			ID:              2,
			ElectricianName: ptr("Bruno Lima"),
			ToolPPEName:     ptr("Capacete"),
			CheckedOutAt:    at(2026, time.March, 10, 9),
			ReturnedAt:      at(2026, time.March, 11, 17),
		},
		{
			ID:           3,
			CheckedOutAt: at(2026, time.March, 20, 7),
		},
	}
}

func sampleServices() []models.ExternalService {
	return []models.ExternalService{
		{ID: 1, Destination: ptr("Subestação Norte"), ServedCompany: ptr("Acme Corp"), CollaboratorName: ptr("admin")},
		{ID: 2, Destination: ptr("Centro"), ServedCompany: ptr("Energia Sul"), CollaboratorName: ptr("tecnico")},
		{ID: 3},
	}
}

func ids[T any](items []T, id func(T) int) []int {
	result := []int{}
	for _, item := range items {
		result = append(result, id(item))
	}
	return result
}

func assignmentIDs(items []models.Assignment) []int {
	return ids(items, func(a models.Assignment) int { return a.ID })
}

func serviceIDs(items []models.ExternalService) []int {
	return ids(items, func(es models.ExternalService) int { return es.ID })
}

func TestFilterAssignments(t *testing.T) {
	assignments := sampleAssignments()

	testCases := []struct {
		filter   string
		expected []int
	}{
		{"", []int{1, 2, 3}},
		{"ana", []int{1}},
		{"CAPACETE", []int{2}},
		{"acme", []int{1}},
		{"a", []int{1, 2}},
		{"inexistente", []int{}},
	}

	for _, tc := range testCases {
		t.Run(tc.filter, func(t *testing.T) {
			assert.Equal(t, tc.expected, assignmentIDs(FilterAssignments(assignments, tc.filter)))
		})
	}
}

func TestFilterExternalServices(t *testing.T) {
	externalServices := sampleServices()

	assert.Equal(t, []int{1, 2, 3}, serviceIDs(FilterExternalServices(externalServices, "")))
	assert.Equal(t, []int{1}, serviceIDs(FilterExternalServices(externalServices, "ACME")))
	assert.Equal(t, []int{2}, serviceIDs(FilterExternalServices(externalServices, "centro")))
	assert.Equal(t, []int{2}, serviceIDs(FilterExternalServices(externalServices, "TECNICO")))
	assert.Equal(t, []int{}, serviceIDs(FilterExternalServices(externalServices, "xyz")))
}

func TestQueryAssignments(t *testing.T) {
	assignments := sampleAssignments()
	since := time.Date(2026, time.March, 5, 0, 0, 0, 0, time.UTC)
	until := time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC)

	active := QueryAssignments(assignments, AssignmentQuery{ActiveOnly: true})
	assert.Equal(t, []int{1, 3}, assignmentIDs(active))

	period := QueryAssignments(assignments, AssignmentQuery{Since: &since, Until: &until})
	assert.Equal(t, []int{2}, assignmentIDs(period))

	combined := QueryAssignments(assignments, AssignmentQuery{Text: "ana", Since: &since})
	assert.Empty(t, combined)
}

func TestStatusBadge(t *testing.T) {
	testCases := []struct {
		status  models.StatusCode
		label   string
		variant Variant
	}{
		{models.StatusGood, "Bom", VariantDefault},
		{models.StatusIrregular, "Irregular", VariantSecondary},
		{models.StatusNonConforming, "Não Conforme", VariantDestructive},
		{models.StatusAbsent, "Ausente", VariantOutline},
		{"X", "X", VariantDefault},
	}

	for _, tc := range testCases {
		t.Run(string(tc.status), func(t *testing.T) {
			badge := StatusBadge(tc.status)
			assert.Equal(t, tc.label, badge.Label)
			assert.Equal(t, tc.variant, badge.Variant)
		})
	}
}

func TestAssignmentAction(t *testing.T) {
	assignments := sampleAssignments()

	assert.Equal(t, ActionReturn, AssignmentAction(assignments[0]))
	assert.Equal(t, ActionReturned, AssignmentAction(assignments[1]))
	assert.Equal(t, []int{1, 3}, assignmentIDs(ReturnableAssignments(assignments)))
}

func TestRenderAssignments(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, RenderAssignments(&buf, sampleAssignments(), true))

	out := buf.String()
	assert.Contains(t, out, "Atribuições (3) "+StaleMarker)
	assert.Contains(t, out, "Ana Souza")
	assert.Contains(t, out, "01/03/2026 08:00:00")
	assert.Contains(t, out, "Devolver")
	assert.Contains(t, out, "Devolvido")
}

func TestRenderVehicles_Fresh(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, RenderVehicles(&buf, []models.Vehicle{{ID: 1, Identification: "VAN-003"}}, false))

	assert.Contains(t, buf.String(), "VAN-003")
	assert.NotContains(t, buf.String(), StaleMarker)
}

func TestRenderExternalServiceDetail(t *testing.T) {
	harness := models.DefaultHarnessChecklist()
	harness.HarnessStatus = models.StatusNonConforming
	ladder := models.DefaultLadderChecklist()
	ladder.LocksStatus = "X"

	var buf bytes.Buffer
	require.NoError(t, RenderExternalServiceDetail(&buf, models.ExternalService{
		ID:               7,
		Destination:      ptr("Centro"),
		HarnessChecklist: &harness,
		LadderChecklist:  &ladder,
		Materials: []models.Material{
			{Name: "Cabo", Type: "Elétrico", Status: models.StatusIrregular},
		},
	}))

	out := buf.String()
	assert.Contains(t, out, "Cinto de Segurança: Não Conforme")
	assert.Contains(t, out, "Travas: X")
	assert.Contains(t, out, "Irregular")
}

func TestRenderExternalServiceDraft(t *testing.T) {
	draft := forms.NewExternalServiceDraft()
	draft.VehicleID = 1

	var buf bytes.Buffer
	require.NoError(t, RenderExternalServiceDraft(&buf, draft, []models.Vehicle{{ID: 1, Identification: "VAN-001"}}))

	out := buf.String()
	assert.Contains(t, out, "Veículo: VAN-001")
	assert.Contains(t, out, "Materiais: nenhum")
	assert.Contains(t, out, "Faltando")
}

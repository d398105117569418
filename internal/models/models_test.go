package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUser_IsAdmin(t *testing.T) {
	tests := []struct {
		name     string
		user     *User
		expected bool
	}{
		{name: "admin", user: &User{Permission: PermissionAdmin}, expected: true},
		{name: "collaborator", user: &User{Permission: PermissionCollaborator}, expected: false},
		{name: "unknown permission", user: &User{Permission: "gerente"}, expected: false},
		{name: "nil user", user: nil, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.user.IsAdmin())
		})
	}
}

func TestTimestamp_UnmarshalJSON(t *testing.T) {
	expected := time.Date(2024, 3, 15, 14, 30, 5, 0, time.UTC)

	tests := []struct {
		name  string
		input string
		want  time.Time
	}{
		{name: "naive isoformat", input: `"2024-03-15T14:30:05"`, want: expected},
		{name: "fractional seconds", input: `"2024-03-15T14:30:05.123456"`, want: expected.Add(123456 * time.Microsecond)},
		{name: "zone offset", input: `"2024-03-15T11:30:05-03:00"`, want: expected},
		{name: "offset without colon", input: `"2024-03-15T14:30:05+0000"`, want: expected},
		{name: "fractional with compact offset", input: `"2024-03-15T11:30:05.5-0300"`, want: expected.Add(500 * time.Millisecond)},
		{name: "space separator", input: `"2024-03-15 14:30:05"`, want: expected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ts Timestamp
			require.NoError(t, json.Unmarshal([]byte(tt.input), &ts))
			assert.True(t, tt.want.Equal(ts.Time), "got %s", ts.Time)
		})
	}
}

func TestTimestamp_NullIsAbsent(t *testing.T) {
	var a Assignment
	require.NoError(t, json.Unmarshal([]byte(`{"id":1,"data_devolucao":null}`), &a))

	assert.Nil(t, a.ReturnedAt)
	assert.False(t, a.IsReturned())
	assert.True(t, a.CanReturn())
}

func TestTimestamp_RejectsGarbage(t *testing.T) {
	var ts Timestamp

	assert.Error(t, json.Unmarshal([]byte(`"ontem"`), &ts))
}

func TestAssignment_Returned(t *testing.T) {
	var a Assignment
	require.NoError(t, json.Unmarshal(
		[]byte(`{"id":2,"data_retirada":"2024-03-15T08:00:00","data_devolucao":"2024-03-15T17:00:00"}`),
		&a,
	))

	assert.True(t, a.IsReturned())
	assert.False(t, a.CanReturn())
}

func TestStatusCode_Label(t *testing.T) {
	assert.Equal(t, "Bom", StatusGood.Label())
	assert.Equal(t, "Irregular", StatusIrregular.Label())
	assert.Equal(t, "Não Conforme", StatusNonConforming.Label())
	assert.Equal(t, "Ausente", StatusAbsent.Label())
	assert.Equal(t, "X", StatusCode("X").Label())
	assert.False(t, StatusCode("X").Known())
}

func TestItemType_Valid(t *testing.T) {
	assert.True(t, ItemTypeTool.Valid())
	assert.True(t, ItemTypePPE.Valid())
	assert.False(t, ItemType("").Valid())
}

func TestDefaultChecklists(t *testing.T) {
	for _, item := range DefaultHarnessChecklist().Items() {
		assert.Equal(t, StatusGood, item.Status, item.Label)
	}
	for _, item := range DefaultLadderChecklist().Items() {
		assert.Equal(t, StatusGood, item.Status, item.Label)
	}
	assert.Empty(t, DefaultLadderChecklist().Notes)
}

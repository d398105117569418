package context

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithTrace_GeneratesUUID(t *testing.T) {
	ctx := WithTrace(context.Background())

	traceID, ok := GetTraceID(ctx)
	require.True(t, ok)
	_, err := uuid.Parse(traceID)
	assert.NoError(t, err)
}

func TestWithTrace_KeepsExistingTrace(t *testing.T) {
	ctx := WithTrace(context.Background())
	first, _ := GetTraceID(ctx)

	second, _ := GetTraceID(WithTrace(ctx))
	assert.Equal(t, first, second)
}

func TestGetTraceID_Missing(t *testing.T) {
	_, ok := GetTraceID(context.Background())
	assert.False(t, ok)
}

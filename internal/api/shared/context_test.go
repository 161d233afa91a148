package shared

import (
	"context"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetAndGetTraceID(t *testing.T) {
	ctx := context.Background()

	assert.Empty(t, GetTraceID(ctx), "Expected empty trace ID in original context")

	ctxWithTrace := SetTraceID(ctx)

	traceID := GetTraceID(ctxWithTrace)
	assert.Len(t, traceID, 32, "Expected trace ID length to be 32 hex characters (16 bytes)")
	assert.Empty(t, GetTraceID(ctx), "Expected original context to remain unchanged")
}

func TestGetTraceIDWithInvalidContext(t *testing.T) {
	ctx := context.WithValue(context.Background(), TraceIDKey, 123) // Not a string

	assert.Empty(t, GetTraceID(ctx), "Expected empty trace ID when context has invalid type")
}

func TestGenerateTraceID(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		traceID := generateTraceID()

		_, err := hex.DecodeString(traceID)
		require.NoError(t, err, "trace ID must be valid hex")
		assert.False(t, seen[traceID], "trace IDs must be unique")
		seen[traceID] = true
	}
}

func TestGenerateFallbackTraceID(t *testing.T) {
	first := generateFallbackTraceID()
	second := generateFallbackTraceID()

	assert.Len(t, first, 32)
	assert.NotEqual(t, first, second)
}

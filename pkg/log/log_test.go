package log

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithCorrelationID(t *testing.T) {
	t.Run("Reaproveita o ID recebido", func(t *testing.T) {
		ctx, id := WithCorrelationID(context.Background(), "req-123")
		assert.Equal(t, "req-123", id)
		assert.Equal(t, "req-123", GetCorrelationID(ctx))
	})

	t.Run("Gera um ID quando vazio", func(t *testing.T) {
		ctx, id := WithCorrelationID(context.Background(), "")
		assert.Len(t, id, 36)
		assert.Equal(t, id, GetCorrelationID(ctx))
	})

	t.Run("Contexto sem ID", func(t *testing.T) {
		assert.Empty(t, GetCorrelationID(context.Background()))
	})
}

func TestKeepInDevelopment(t *testing.T) {
	assert.True(t, keepInDevelopment("correlation_id"))
	assert.True(t, keepInDevelopment("user_id"))
	assert.True(t, keepInDevelopment("import_log_id"))
	assert.False(t, keepInDevelopment("referer"))
}

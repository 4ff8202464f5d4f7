package adapter_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/capfin/sanction-service/internal/infrastructure/adapter"
)

func TestUnavailableTextExtractor_Extract(t *testing.T) {
	fields, ok, err := adapter.NewUnavailableTextExtractor().Extract(context.Background(), "payslip.pdf", []byte("%PDF-1.4"))

	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, fields.Name)
}

package config

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunID(t *testing.T) {
	id, err := uuid.Parse(RunID)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(4), id.Version())
}

package logging

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewBuildsLogger(t *testing.T) {
	log, err := New("debug")
	require.NoError(t, err)
	require.NotNil(t, log)
}

func TestNewFallsBackOnBadLevel(t *testing.T) {
	log, err := New("not-a-level")
	require.NoError(t, err)
	require.NotNil(t, log)
}

package domain_test

import (
	"testing"

	"github.com/aretw0/turing/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMove(t *testing.T) {
	m, err := domain.ParseMove("L")
	require.NoError(t, err)
	assert.Equal(t, domain.MoveLeft, m)
	assert.Equal(t, -1, m.Delta())
	assert.Equal(t, "L", m.String())

	m, err = domain.ParseMove("R")
	require.NoError(t, err)
	assert.Equal(t, domain.MoveRight, m)
	assert.Equal(t, 1, m.Delta())
	assert.Equal(t, "R", m.String())

	for _, bad := range []string{"", "l", "r", "LR", "S", " L"} {
		_, err := domain.ParseMove(bad)
		assert.Error(t, err, "input %q", bad)
	}
}

package registry_test

import (
	"testing"

	"github.com/aretw0/turing/internal/compiler"
	"github.com/aretw0/turing/pkg/domain"
	"github.com/aretw0/turing/pkg/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_Lookup(t *testing.T) {
	reg := registry.Default()

	assert.Equal(t, []string{".json", ".txt", ".yaml", ".yml"}, reg.Extensions())

	for _, path := range []string{"a.txt", "dir/b.JSON", "c.yaml", "d.YML"} {
		fn, err := reg.Lookup(path)
		require.NoError(t, err, path)
		assert.NotNil(t, fn, path)
	}
}

func TestLookup_Unsupported(t *testing.T) {
	reg := registry.Default()

	for _, path := range []string{"machine.xml", "noext", "dir.d/noext", ".hidden"} {
		_, err := reg.Lookup(path)
		assert.ErrorIs(t, err, domain.ErrUnsupportedFormat, path)
	}
}

func TestRegister_Overrides(t *testing.T) {
	reg := registry.NewRegistry()
	called := false
	reg.Register("TM", func(data []byte) (domain.Machine, compiler.Report, error) {
		called = true
		return domain.Machine{Tape: string(data)}, compiler.Report{}, nil
	})

	fn, err := reg.Lookup("x.tm")
	require.NoError(t, err)

	m, _, err := fn([]byte("abc"))
	require.NoError(t, err)
	assert.True(t, called)
	assert.Equal(t, "abc", m.Tape)
}

package control

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360/semports/component"
	"github.com/c360/semports/types"
	"github.com/c360/semports/value"
)

func TestRegister(t *testing.T) {
	registry := component.NewRegistry()
	require.NoError(t, Register(registry))

	assert.Equal(t, []string{"Fallback", "Parallel", "Sequence"}, registry.IDs())

	for _, m := range registry.ListManifests() {
		assert.Equal(t, types.NodeTypeControl, m.Type, m.ID)
		assert.NotEmpty(t, m.Description, m.ID)
	}

	seq, ok := registry.Manifest("Sequence")
	require.True(t, ok)
	assert.Empty(t, seq.Ports)
}

func TestParallel_Defaults(t *testing.T) {
	ports, err := component.ProvidedPorts[Parallel]()
	require.NoError(t, err)

	assert.Equal(t, "-1", ports["success_count"].DefaultValueString())
	assert.Equal(t, "1", ports["failure_count"].DefaultValueString())

	resolved, err := component.ResolveAttributes(ports, map[string]string{"success_count": "2"})
	require.NoError(t, err)
	assert.Equal(t, 2, value.MustAs[int](resolved["success_count"]))
	assert.Equal(t, 1, value.MustAs[int](resolved["failure_count"]))
}

package action

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360/semports/component"
	"github.com/c360/semports/convert"
	"github.com/c360/semports/metric"
	"github.com/c360/semports/types"
	"github.com/c360/semports/value"
)

func TestRegister(t *testing.T) {
	registry := component.NewRegistry()
	require.NoError(t, Register(registry))

	assert.Equal(t, []string{"AlwaysFailure", "AlwaysSuccess", "SetBlackboard", "Sleep"}, registry.IDs())

	sleep, ok := registry.Manifest("Sleep")
	require.True(t, ok)
	assert.Equal(t, types.NodeTypeAction, sleep.Type)
	assert.Equal(t, []string{"msec"}, sleep.PortNames())
	assert.Equal(t, "uint", sleep.Ports["msec"].TypeName())
	assert.NotEmpty(t, sleep.Description)

	always, ok := registry.Manifest("AlwaysSuccess")
	require.True(t, ok)
	assert.Empty(t, always.Ports)

	// registering twice collides
	assert.Error(t, Register(registry))
}

func TestSetBlackboard_Untyped(t *testing.T) {
	ports, err := component.ProvidedPorts[SetBlackboard]()
	require.NoError(t, err)

	require.Contains(t, ports, "value")
	require.Contains(t, ports, "output_key")
	assert.False(t, ports["value"].IsStronglyTyped())
	assert.Equal(t, types.PortDirectionInOut, ports["output_key"].Direction())

	resolved, err := component.ResolveAttributes(ports, map[string]string{
		"value":      "42",
		"output_key": "{answer}",
	})
	require.NoError(t, err)
	assert.Equal(t, "42", value.MustAs[string](resolved["value"]))
	assert.NotContains(t, resolved, "output_key")
}

func TestSleep_Attributes(t *testing.T) {
	ports, err := component.ProvidedPorts[Sleep]()
	require.NoError(t, err)

	resolved, err := component.ResolveAttributes(ports, map[string]string{"msec": "250"})
	require.NoError(t, err)
	assert.Equal(t, uint(250), value.MustAs[uint](resolved["msec"]))

	errs := component.ValidateAttributes(ports, map[string]string{"msec": "-5"})
	require.Len(t, errs, 1)
	assert.Equal(t, component.CodeType, errs[0].Code)
}

func TestSleep_ProvidedPortsWith(t *testing.T) {
	metrics := metric.NewMetrics()
	ports, err := component.ProvidedPortsWith[Sleep](convert.NewDefaultRegistry(convert.WithMetrics(metrics)))
	require.NoError(t, err)

	_, err = component.ResolveAttributes(ports, map[string]string{"msec": "-1"})
	require.Error(t, err)
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.ConversionsTotal.WithLabelValues("uint", metric.ResultFailure)))
}

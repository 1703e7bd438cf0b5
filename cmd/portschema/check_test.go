package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360/semports/component"
	"github.com/c360/semports/config"
	"github.com/c360/semports/errors"
	"github.com/c360/semports/metric"
)

func TestAttributeText(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"nil", nil, ""},
		{"string", "hello", "hello"},
		{"int", 55, "55"},
		{"float", 1.5, "1.5"},
		{"bool", true, "true"},
		{"list", []any{1, 2, 3}, "1;2;3"},
		{"unquoted reference", map[string]any{"target": nil}, "{target}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, attributeText(tt.in))
		})
	}
}

func TestReadDocuments(t *testing.T) {
	t.Run("single node", func(t *testing.T) {
		docs, err := readDocuments([]byte("node: Sleep\nattributes:\n  msec: 100\n"))
		require.NoError(t, err)
		require.Len(t, docs, 1)
		assert.Equal(t, "Sleep", docs[0].Node)
		assert.Equal(t, 100, docs[0].Attributes["msec"])
	})

	t.Run("list and stream", func(t *testing.T) {
		data := "- node: Sequence\n- node: Fallback\n---\nnode: Inverter\n"
		docs, err := readDocuments([]byte(data))
		require.NoError(t, err)
		require.Len(t, docs, 3)
		assert.Equal(t, "Inverter", docs[2].Node)
	})

	t.Run("empty", func(t *testing.T) {
		docs, err := readDocuments(nil)
		require.NoError(t, err)
		assert.Empty(t, docs)
	})

	t.Run("scalar", func(t *testing.T) {
		_, err := readDocuments([]byte("just text\n"))
		require.Error(t, err)
		assert.ErrorIs(t, err, errors.ErrInvalidData)
	})

	t.Run("malformed", func(t *testing.T) {
		_, err := readDocuments([]byte("node: [unclosed\n"))
		require.Error(t, err)
		assert.ErrorIs(t, err, errors.ErrParsingFailed)
	})
}

func TestCheckDocument(t *testing.T) {
	clearEnv(t)
	a := newTestApp(t, config.Default())

	tests := []struct {
		name     string
		doc      NodeDocument
		resolved int
		codes    map[string]string
	}{
		{
			name:     "typed attribute",
			doc:      NodeDocument{Node: "Sleep", Attributes: map[string]any{"msec": 100}},
			resolved: 1,
		},
		{
			name:     "defaults fill missing ports",
			doc:      NodeDocument{Node: "Parallel", Attributes: map[string]any{"success_count": 2, "name": "p"}},
			resolved: 2,
		},
		{
			name:     "reference is not resolved",
			doc:      NodeDocument{Node: "Parallel", Attributes: map[string]any{"success_count": map[string]any{"needed": nil}}},
			resolved: 1,
		},
		{
			name:  "bad text",
			doc:   NodeDocument{Node: "Sleep", Attributes: map[string]any{"msec": -5}},
			codes: map[string]string{"msec": component.CodeType},
		},
		{
			name:  "unknown attribute",
			doc:   NodeDocument{Node: "Sleep", Attributes: map[string]any{"duration": 5}},
			codes: map[string]string{"duration": component.CodeUnknown},
		},
		{
			name:  "unknown node",
			doc:   NodeDocument{Node: "Teleport"},
			codes: map[string]string{"node": component.CodeUnknown},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := a.checkDocument("test", tt.doc)
			if len(tt.codes) == 0 {
				require.True(t, r.OK(), "errors: %v", r.Errors)
				assert.Equal(t, tt.resolved, r.Resolved)
				return
			}
			require.False(t, r.OK())
			got := make(map[string]string, len(r.Errors))
			for _, ve := range r.Errors {
				got[ve.Field] = ve.Code
			}
			assert.Equal(t, tt.codes, got)
		})
	}
}

func TestCheck_Files(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	good := filepath.Join(dir, "good.yaml")
	require.NoError(t, os.WriteFile(good, []byte(`
- node: Sleep
  attributes:
    msec: 250
- node: SetBlackboard
  attributes:
    value: anything
    output_key: "{result}"
`), 0644))

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte(`
node: Repeat
attributes:
  num_cycles: many
`), 0644))

	a := newTestApp(t, config.Default())

	var out bytes.Buffer
	require.NoError(t, a.check([]string{good}, &out))
	assert.Contains(t, out.String(), good+"#0 Sleep: ok (1 ports resolved)")
	assert.Contains(t, out.String(), good+"#1 SetBlackboard: ok (1 ports resolved)")

	out.Reset()
	err := a.check([]string{good, bad}, &out)
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrInvalidData)
	assert.Contains(t, err.Error(), "1 of 3 documents failed")
	assert.Contains(t, out.String(), bad+"#0 Repeat: num_cycles:")
	assert.Contains(t, out.String(), "[type]")

	conversions := a.metrics.CoreMetrics().ConversionsTotal
	assert.Equal(t, float64(2), testutil.ToFloat64(conversions.WithLabelValues("uint", metric.ResultSuccess)))
	assert.Equal(t, float64(1), testutil.ToFloat64(conversions.WithLabelValues("int", metric.ResultFailure)))

	documents := a.cli.documentsChecked
	assert.Equal(t, float64(4), testutil.ToFloat64(documents.WithLabelValues(metric.ResultSuccess)))
	assert.Equal(t, float64(1), testutil.ToFloat64(documents.WithLabelValues(metric.ResultFailure)))
}

func TestCheck_MissingFile(t *testing.T) {
	clearEnv(t)
	a := newTestApp(t, config.Default())

	err := a.check([]string{filepath.Join(t.TempDir(), "absent.yaml")}, &bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot stat")
}

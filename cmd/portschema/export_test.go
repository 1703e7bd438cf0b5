package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/c360/semports/config"
)

func TestExtractSchema(t *testing.T) {
	clearEnv(t)
	a := newTestApp(t, config.Default())

	m, ok := a.nodes.Manifest("Parallel")
	require.True(t, ok)

	schema := extractSchema(m)
	assert.Equal(t, draft07, schema.Schema)
	assert.Equal(t, "Parallel.v1.json", schema.ID)
	assert.Equal(t, "object", schema.Type)
	assert.NotNil(t, schema.Required)
	assert.False(t, schema.AdditionalProperties)
	assert.Equal(t, "CONTROL", schema.Metadata.Type)

	prop, ok := schema.Properties["success_count"]
	require.True(t, ok)
	require.NotNil(t, prop.Default)
	assert.Equal(t, "-1", *prop.Default)
	require.NotNil(t, prop.Port)
	assert.Equal(t, "int", prop.Port.Type)
	assert.True(t, prop.Port.StronglyTyped)

	assert.Contains(t, schema.Properties, "name")
	assert.Contains(t, schema.Properties, "ID")
	assert.Nil(t, schema.Properties["name"].Port)

	require.NoError(t, compileSchema(schema))
}

func TestExport_WritesSchemasAndIndex(t *testing.T) {
	clearEnv(t)
	outDir := filepath.Join(t.TempDir(), "schemas")

	a := newTestApp(t, config.Default())
	require.NoError(t, a.export(outDir))
	assert.Equal(t, float64(a.nodes.Len()), testutil.ToFloat64(a.cli.schemasExported))

	for _, id := range a.nodes.IDs() {
		data, err := os.ReadFile(filepath.Join(outDir, id+".v1.json"))
		require.NoError(t, err, "schema for %s", id)

		var schema map[string]any
		require.NoError(t, json.Unmarshal(data, &schema))
		assert.Equal(t, id+".v1.json", schema["$id"])
		assert.Contains(t, schema, "x-node-metadata")
	}

	data, err := os.ReadFile(filepath.Join(outDir, "manifests.yaml"))
	require.NoError(t, err)

	var docs []manifestDoc
	require.NoError(t, yaml.Unmarshal(data, &docs))
	require.Len(t, docs, a.nodes.Len())

	var sleep *manifestDoc
	for i := range docs {
		if docs[i].ID == "Sleep" {
			sleep = &docs[i]
		}
	}
	require.NotNil(t, sleep)
	assert.Equal(t, "ACTION", sleep.Type)
	require.Len(t, sleep.Ports, 1)
	assert.Equal(t, "msec", sleep.Ports[0].Name)
	assert.Equal(t, "uint", sleep.Ports[0].Type)
	assert.Equal(t, "Milliseconds to sleep", sleep.Ports[0].Description)
	assert.Nil(t, sleep.Ports[0].Default)
}

func TestExport_FormatSelection(t *testing.T) {
	clearEnv(t)
	outDir := t.TempDir()

	cfg := config.Default()
	cfg.Export.Formats = []string{config.FormatYAML}
	a := newTestApp(t, cfg)
	require.NoError(t, a.export(outDir))

	entries, err := os.ReadDir(outDir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "manifests.yaml", entries[0].Name())
}

func TestExport_MetaSchema(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	accepting := filepath.Join(dir, "accept.json")
	require.NoError(t, os.WriteFile(accepting, []byte(`{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["$id", "properties", "x-node-metadata"],
  "properties": {
    "x-node-metadata": {"type": "object", "required": ["id", "type"]}
  }
}`), 0644))

	rejecting := filepath.Join(dir, "reject.json")
	require.NoError(t, os.WriteFile(rejecting, []byte(`{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["x-owner"]
}`), 0644))

	cfg := config.Default()
	cfg.Export.MetaSchema = accepting
	require.NoError(t, newTestApp(t, cfg).export(filepath.Join(dir, "ok")))

	cfg = config.Default()
	cfg.Export.MetaSchema = rejecting
	err := newTestApp(t, cfg).export(filepath.Join(dir, "fail"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema validation failed")
	assert.Contains(t, err.Error(), "x-owner")
}

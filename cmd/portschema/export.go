package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/c360/semports/component"
	"github.com/c360/semports/config"
	"github.com/c360/semports/errors"
	"github.com/c360/semports/port"
)

const draft07 = "http://json-schema.org/draft-07/schema#"

// NodeSchema is the JSON Schema describing the attributes of one node type.
type NodeSchema struct {
	Schema               string                    `json:"$schema"`
	ID                   string                    `json:"$id"`
	Type                 string                    `json:"type"`
	Title                string                    `json:"title"`
	Description          string                    `json:"description,omitempty"`
	Properties           map[string]PropertySchema `json:"properties"`
	Required             []string                  `json:"required"`
	AdditionalProperties bool                      `json:"additionalProperties"`
	Metadata             NodeMetadata              `json:"x-node-metadata"`
}

// NodeMetadata identifies the node type a schema was generated from.
type NodeMetadata struct {
	ID      string `json:"id"`
	Type    string `json:"type"`
	Version string `json:"version"`
}

// PropertySchema describes one attribute. Attribute values are always text,
// the port metadata names the type the text is converted to.
type PropertySchema struct {
	Type        string        `json:"type"`
	Description string        `json:"description,omitempty"`
	Default     *string       `json:"default,omitempty"`
	Port        *PortMetadata `json:"x-port-metadata,omitempty"`
}

// PortMetadata carries the port descriptor behind an attribute.
type PortMetadata struct {
	Direction     string `json:"direction"`
	Type          string `json:"type"`
	StronglyTyped bool   `json:"strongly_typed"`
}

// extractSchema converts a manifest to a JSON Schema
func extractSchema(m component.Manifest) NodeSchema {
	properties := map[string]PropertySchema{
		port.ReservedName: {Type: "string", Description: "Instance name"},
		port.ReservedID:   {Type: "string", Description: "Node type identifier"},
	}

	for _, name := range m.Ports.Names() {
		info := m.Ports[name]
		prop := PropertySchema{
			Type:        "string",
			Description: info.Description(),
			Port: &PortMetadata{
				Direction:     info.Direction().String(),
				Type:          info.TypeName(),
				StronglyTyped: info.IsStronglyTyped(),
			},
		}
		if info.HasDefault() {
			def := info.DefaultValueString()
			prop.Default = &def
		}
		properties[name] = prop
	}

	return NodeSchema{
		Schema:               draft07,
		ID:                   schemaFileName(m.ID),
		Type:                 "object",
		Title:                fmt.Sprintf("%s Attributes", m.ID),
		Description:          m.Description,
		Properties:           properties,
		Required:             []string{},
		AdditionalProperties: false,
		Metadata: NodeMetadata{
			ID:      m.ID,
			Type:    m.Type.String(),
			Version: Version,
		},
	}
}

func schemaFileName(id string) string {
	return fmt.Sprintf("%s.v1.json", id)
}

// manifestDoc is the YAML rendering of a manifest.
type manifestDoc struct {
	ID          string    `yaml:"id"`
	Type        string    `yaml:"type"`
	Description string    `yaml:"description,omitempty"`
	Ports       []portDoc `yaml:"ports"`
}

type portDoc struct {
	Name        string  `yaml:"name"`
	Direction   string  `yaml:"direction"`
	Type        string  `yaml:"type"`
	Description string  `yaml:"description,omitempty"`
	Default     *string `yaml:"default,omitempty"`
}

func manifestDocs(manifests []component.Manifest) []manifestDoc {
	docs := make([]manifestDoc, 0, len(manifests))
	for _, m := range manifests {
		doc := manifestDoc{
			ID:          m.ID,
			Type:        m.Type.String(),
			Description: m.Description,
			Ports:       []portDoc{},
		}
		for _, name := range m.Ports.Names() {
			info := m.Ports[name]
			pd := portDoc{
				Name:        name,
				Direction:   info.Direction().String(),
				Type:        info.TypeName(),
				Description: info.Description(),
			}
			if info.HasDefault() {
				def := info.DefaultValueString()
				pd.Default = &def
			}
			doc.Ports = append(doc.Ports, pd)
		}
		docs = append(docs, doc)
	}
	return docs
}

// export writes one schema per manifest and the manifest index to outDir.
func (a *app) export(outDir string) error {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return errors.Wrap(err, "main", "export", "output directory creation")
	}

	metaSchemaPath := a.cfg.Export.MetaSchema
	if metaSchemaPath != "" {
		abs, err := filepath.Abs(metaSchemaPath)
		if err != nil {
			return errors.Wrap(err, "main", "export", "meta-schema path resolution")
		}
		metaSchemaPath = abs
		a.logger.Info("Using meta-schema", "path", metaSchemaPath)
	}

	manifests := a.nodes.ListManifests()
	a.logger.Info("Exporting node schemas", "nodes", len(manifests), "out_dir", outDir)

	if a.cfg.HasFormat(config.FormatJSON) {
		for _, m := range manifests {
			schema := extractSchema(m)

			if err := compileSchema(schema); err != nil {
				return errors.Wrap(err, "main", "export", "schema compilation for "+m.ID)
			}
			if err := validateSchema(schema, metaSchemaPath); err != nil {
				return errors.Wrap(err, "main", "export", "schema validation for "+m.ID)
			}

			outFile := filepath.Join(outDir, schemaFileName(m.ID))
			if err := writeJSONSchema(outFile, schema); err != nil {
				return errors.Wrap(err, "main", "export", "schema write for "+m.ID)
			}
			a.logger.Debug("Generated schema", "node", m.ID, "file", outFile)
		}
		a.cli.setSchemasExported(len(manifests))
	}

	if a.cfg.HasFormat(config.FormatYAML) {
		outFile := filepath.Join(outDir, "manifests.yaml")
		if err := writeYAMLFile(outFile, manifestDocs(manifests)); err != nil {
			return errors.Wrap(err, "main", "export", "manifest index write")
		}
		a.logger.Debug("Generated manifest index", "file", outFile)
	}

	a.logger.Info("Schema generation complete", "nodes", len(manifests))
	return nil
}

// writeJSONSchema writes a node schema to a JSON file
func writeJSONSchema(filename string, schema NodeSchema) error {
	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal schema: %w", err)
	}
	return config.WriteFile(filename, data)
}

// writeYAMLFile writes v as a YAML document
func writeYAMLFile(filename string, v any) error {
	data, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal YAML: %w", err)
	}
	return config.WriteFile(filename, data)
}

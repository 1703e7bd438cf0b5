package main

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/c360/semports/component"
	"github.com/c360/semports/config"
	"github.com/c360/semports/convert"
	"github.com/c360/semports/errors"
)

// NodeDocument binds attribute text to one node type.
type NodeDocument struct {
	Node       string         `yaml:"node"`
	Attributes map[string]any `yaml:"attributes"`
}

// CheckResult is the outcome of checking one node document.
type CheckResult struct {
	Source   string
	Node     string
	Errors   []component.ValidationError
	Resolved int
}

// OK reports whether the document passed.
func (r CheckResult) OK() bool { return len(r.Errors) == 0 }

// readDocuments decodes every node document in data. A YAML stream may hold
// several documents, each either a single node or a list of nodes.
func readDocuments(data []byte) ([]NodeDocument, error) {
	var docs []NodeDocument

	dec := yaml.NewDecoder(bytes.NewReader(data))
	for {
		var node yaml.Node
		err := dec.Decode(&node)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.WrapInvalid(
				fmt.Errorf("%w: %v", errors.ErrParsingFailed, err),
				"main", "readDocuments", "YAML decoding")
		}
		if len(node.Content) == 0 {
			continue
		}

		root := node.Content[0]
		switch root.Kind {
		case yaml.SequenceNode:
			var list []NodeDocument
			if err := root.Decode(&list); err != nil {
				return nil, errors.WrapInvalid(
					fmt.Errorf("%w: %v", errors.ErrParsingFailed, err),
					"main", "readDocuments", "node list decoding")
			}
			docs = append(docs, list...)
		case yaml.MappingNode:
			var doc NodeDocument
			if err := root.Decode(&doc); err != nil {
				return nil, errors.WrapInvalid(
					fmt.Errorf("%w: %v", errors.ErrParsingFailed, err),
					"main", "readDocuments", "node decoding")
			}
			docs = append(docs, doc)
		default:
			return nil, errors.WrapInvalid(
				fmt.Errorf("%w: line %d: expected a node or a list of nodes", errors.ErrInvalidData, root.Line),
				"main", "readDocuments", "document shape")
		}
	}

	return docs, nil
}

// attributeText renders a decoded YAML scalar or list as attribute text.
// Lists are joined with the vector separator. An unquoted {key} decodes as a
// one-entry mapping and is turned back into the reference it was meant to be.
func attributeText(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case []any:
		parts := make([]string, len(x))
		for i, elem := range x {
			parts[i] = attributeText(elem)
		}
		return strings.Join(parts, string(convert.VectorSeparator))
	case map[string]any:
		if len(x) == 1 {
			for k, val := range x {
				if val == nil {
					return "{" + k + "}"
				}
			}
		}
		return fmt.Sprint(x)
	default:
		return fmt.Sprint(x)
	}
}

// checkDocument validates doc against the registered manifests.
func (a *app) checkDocument(source string, doc NodeDocument) CheckResult {
	result := CheckResult{Source: source, Node: doc.Node}

	m, err := a.nodes.Require(doc.Node)
	if err != nil {
		a.logger.Debug("Unknown node type", "source", source, "error", err)
		result.Errors = []component.ValidationError{{
			Field:   "node",
			Message: fmt.Sprintf("Node type %q is not registered", doc.Node),
			Code:    component.CodeUnknown,
		}}
		return result
	}

	attrs := make(map[string]string, len(doc.Attributes))
	for k, v := range doc.Attributes {
		attrs[k] = attributeText(v)
	}

	resolved, verrs := component.CheckAttributes(m.Ports, attrs)
	result.Errors = verrs
	result.Resolved = len(resolved)
	return result
}

// check validates every document in files and prints one line per finding.
func (a *app) check(files []string, w io.Writer) error {
	var results []CheckResult
	for _, file := range files {
		data, err := config.ReadFile(file)
		if err != nil {
			return errors.Wrap(err, "main", "check", "read "+file)
		}
		docs, err := readDocuments(data)
		if err != nil {
			return errors.Wrap(err, "main", "check", "parse "+file)
		}
		for i, doc := range docs {
			results = append(results, a.checkDocument(fmt.Sprintf("%s#%d", file, i), doc))
		}
	}

	failed := 0
	for _, r := range results {
		a.cli.recordDocument(r.OK())
		if r.OK() {
			_, _ = fmt.Fprintf(w, "%s %s: ok (%d ports resolved)\n", r.Source, r.Node, r.Resolved)
			continue
		}
		failed++
		sort.SliceStable(r.Errors, func(i, j int) bool { return r.Errors[i].Field < r.Errors[j].Field })
		for _, ve := range r.Errors {
			_, _ = fmt.Fprintf(w, "%s %s: %s: %s [%s]\n", r.Source, r.Node, ve.Field, ve.Message, ve.Code)
		}
	}

	a.logger.Info("Check complete", "documents", len(results), "failed", failed)
	if failed > 0 {
		return errors.WrapInvalid(
			fmt.Errorf("%w: %d of %d documents failed", errors.ErrInvalidData, failed, len(results)),
			"main", "check", "attribute validation")
	}
	return nil
}

// Package config loads the configuration of the portschema tool.
//
// Configuration is layered: Default() first, then each file added with
// AddLayer in order, then environment variables. Files may be YAML or JSON.
//
//	loader := config.NewLoader()
//	loader.AddLayer("portschema.yaml")
//	loader.AddLayer("portschema.local.yaml") // overrides the first
//
//	cfg, err := loader.Load()
//	if err != nil {
//		log.Fatal(err)
//	}
//	if err := cfg.Validate(); err != nil {
//		log.Fatal(err)
//	}
//
// Validate rejects configuration versions newer than CurrentVersion.
//
// A minimal file:
//
//	version: 1.0.0
//	logging:
//	  level: debug
//	  format: json
//	export:
//	  out_dir: build/schemas
//	  formats: [json]
//	  meta_schema: schemas/manifest.meta.json
//	registry:
//	  freeze: true
//	  runtime_metrics: true
//
// Environment overrides use the PORTSCHEMA_ prefix: PORTSCHEMA_LOG_LEVEL,
// PORTSCHEMA_LOG_FORMAT, PORTSCHEMA_OUT_DIR, PORTSCHEMA_FORMATS (comma
// separated), PORTSCHEMA_META_SCHEMA and PORTSCHEMA_FREEZE.
//
// Unknown keys are rejected so that typos surface instead of silently
// falling back to defaults.
//
// ReadFile and WriteFile are the only file access paths of the tool. A failed
// write is transient and wraps errors.ErrStorageUnavailable. They
// refuse paths escaping the working directory, files that are not regular,
// oversized documents and extensions other than .json, .yaml and .yml.
package config

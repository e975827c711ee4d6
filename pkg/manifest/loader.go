// Package manifest loads blueprint job declarations from YAML (or JSON)
// documents and registers them into a registry builder. Manifests cover the
// declarative subset only: jobs that need a custom encoder are registered in
// code, never from a file.
package manifest

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/tangle-network/ai-agent-sandbox-blueprint-sub000/pkg/jobs"
	"github.com/tangle-network/ai-agent-sandbox-blueprint-sub000/pkg/registry"
)

type document struct {
	Blueprint string        `yaml:"blueprint"`
	Jobs      []jobs.Schema `yaml:"jobs"`
}

// LoadFS walks the provided filesystem and registers every manifest file
// (.yaml, .yml, .json) into the builder. Files are visited in lexical walk
// order; within the registry, later registrations of the same (namespace, id)
// overwrite earlier ones.
func LoadFS(fsys fs.FS, builder *registry.Builder) error {
	if fsys == nil {
		return nil
	}
	return fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isManifestFile(path) {
			return nil
		}
		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("manifest: read %s: %w", path, err)
		}
		return Load(data, path, builder)
	})
}

// Load parses a single manifest document and registers its jobs. The path is
// used for error messages only.
func Load(data []byte, path string, builder *registry.Builder) error {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("manifest: parse %s: %w", path, err)
	}

	namespace := strings.TrimSpace(doc.Blueprint)
	if namespace == "" {
		return fmt.Errorf("manifest: file %s does not declare a blueprint", path)
	}

	for _, schema := range doc.Jobs {
		if err := validateSchema(schema, path); err != nil {
			return err
		}
		builder.Register(namespace, schema)
	}
	return nil
}

// validateSchema rejects what a manifest cannot legitimately express. The
// unknown-tag passthrough is a programmatic escape hatch; a file declaring a
// tag outside the closed set is a typo until proven otherwise.
func validateSchema(schema jobs.Schema, path string) error {
	if strings.TrimSpace(schema.Name) == "" {
		return fmt.Errorf("manifest: file %s: job %d has no name", path, schema.ID)
	}
	for _, p := range schema.ContextParams {
		if strings.TrimSpace(p.WireName) == "" {
			return fmt.Errorf("manifest: job %q: context param without a wire name (file %s)", schema.Name, path)
		}
		if !p.WireType.Known() {
			return fmt.Errorf("manifest: job %q: context param %q has unknown wire type %q (file %s)",
				schema.Name, p.WireName, p.WireType, path)
		}
	}
	for _, f := range schema.Fields {
		if strings.TrimSpace(f.Name) == "" {
			return fmt.Errorf("manifest: job %q: field without a name (file %s)", schema.Name, path)
		}
		// An empty wire type is a UI-only field; anything else must be
		// in the closed set.
		if f.WireType != "" && !f.WireType.Known() {
			return fmt.Errorf("manifest: job %q: field %q has unknown wire type %q (file %s)",
				schema.Name, f.Name, f.WireType, path)
		}
	}
	return nil
}

func isManifestFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".json":
		return true
	}
	return false
}

package yaml

import (
	"context"
	"fmt"
	"os"

	"github.com/specialistvlad/funcgrid/internal/config"
	"github.com/specialistvlad/funcgrid/internal/ctxlog"
	"gopkg.in/yaml.v3"
)

// DefaultKey is the reserved top-level key of the default section.
const DefaultKey = "DEFAULT"

// Loader is the YAML-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new YAML pipeline loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Extensions implements config.Loader.
func (l *Loader) Extensions() []string {
	return []string{".yaml", ".yml"}
}

// Load parses one YAML file into a pipeline.
func (l *Loader) Load(ctx context.Context, path string) (*config.Pipeline, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("YAML loader started.", "path", path)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read YAML file %s: %w", path, err)
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse YAML file %s: %w", path, err)
	}

	pipeline, err := translate(&doc)
	if err != nil {
		return nil, fmt.Errorf("in YAML file %s: %w", path, err)
	}
	pipeline.Source = path

	logger.Debug("YAML loading complete.", "path", path, "has_defaults", pipeline.Default != nil, "steps", len(pipeline.Steps))
	return pipeline, nil
}

// translate walks the document root. An empty document yields an empty
// pipeline.
func translate(doc *yaml.Node) (*config.Pipeline, error) {
	p := &config.Pipeline{}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return p, nil
	}

	root := doc.Content[0]
	if isNull(root) {
		return p, nil
	}
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: top level must be a mapping of steps", root.Line)
	}

	seen := make(map[string]struct{}, len(root.Content)/2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		keyNode, valNode := root.Content[i], root.Content[i+1]
		name := keyNode.Value

		if _, dup := seen[name]; dup {
			return nil, fmt.Errorf("line %d: duplicate key %q", keyNode.Line, name)
		}
		seen[name] = struct{}{}

		if name == DefaultKey {
			def, err := decodeMapping(valNode)
			if err != nil {
				return nil, fmt.Errorf("line %d: %s: %w", valNode.Line, DefaultKey, err)
			}
			p.Default = def
			continue
		}

		step := &config.Step{Name: name}
		// A non-mapping step body is kept with nil attributes; the executor
		// reports it against that step alone.
		if valNode.Kind == yaml.MappingNode {
			attrs, err := decodeMapping(valNode)
			if err != nil {
				return nil, fmt.Errorf("line %d: step %q: %w", valNode.Line, name, err)
			}
			step.Attributes = attrs
		}
		p.Steps = append(p.Steps, step)
	}

	return p, nil
}

// decodeMapping decodes a mapping node; a null node decodes to nil.
func decodeMapping(n *yaml.Node) (map[string]any, error) {
	if isNull(n) {
		return nil, nil
	}
	if n.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("expected a mapping, got %s", n.Tag)
	}
	var out map[string]any
	if err := n.Decode(&out); err != nil {
		return nil, err
	}
	return out, nil
}

func isNull(n *yaml.Node) bool {
	return n.Kind == yaml.ScalarNode && n.Tag == "!!null"
}

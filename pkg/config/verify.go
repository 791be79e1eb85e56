package config

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/invopop/jsonschema"
)

//go:embed schema.json
var embeddedSchema string

// VerifyAgainstEmbeddedSchema checks that all fields the embedded schema marks as required are set
func VerifyAgainstEmbeddedSchema(cfg *Config) error {
	var schema jsonschema.Schema
	if err := json.Unmarshal([]byte(embeddedSchema), &schema); err != nil {
		return fmt.Errorf("parse embedded schema: %w", err)
	}

	// convert config to JSON for validation
	configData, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	var configMap map[string]any
	if err := json.Unmarshal(configData, &configMap); err != nil {
		return fmt.Errorf("unmarshal config: %w", err)
	}

	root := resolve(&schema, &schema)
	if root == nil {
		return fmt.Errorf("schema has no root definition")
	}
	if missing := missingRequired(&schema, root, configMap, ""); len(missing) > 0 {
		sort.Strings(missing)
		return fmt.Errorf("missing required fields: %s", strings.Join(missing, ", "))
	}
	return nil
}

// GenerateSchema generates a JSON schema for the Config struct,
// only fields tagged with jsonschema:"required" are required
func GenerateSchema() (*jsonschema.Schema, error) {
	r := &jsonschema.Reflector{RequiredFromJSONSchemaTags: true}
	return r.Reflect(&Config{}), nil
}

// missingRequired walks object definitions and collects required fields having zero values
func missingRequired(doc, s *jsonschema.Schema, values map[string]any, prefix string) []string {
	var res []string
	for _, name := range s.Required {
		v, ok := values[name]
		if !ok || isZero(v) {
			res = append(res, prefix+name)
		}
	}
	if s.Properties == nil {
		return res
	}
	for pair := s.Properties.Oldest(); pair != nil; pair = pair.Next() {
		child := resolve(doc, pair.Value)
		nested, ok := values[pair.Key].(map[string]any)
		if child == nil || !ok {
			continue
		}
		res = append(res, missingRequired(doc, child, nested, prefix+pair.Key+".")...)
	}
	return res
}

// resolve follows local "#/$defs/Name" references
func resolve(doc, s *jsonschema.Schema) *jsonschema.Schema {
	if s == nil {
		return nil
	}
	if s.Ref == "" {
		return s
	}
	name := strings.TrimPrefix(s.Ref, "#/$defs/")
	def, ok := doc.Definitions[name]
	if !ok {
		return nil
	}
	return def
}

func isZero(v any) bool {
	switch val := v.(type) {
	case nil:
		return true
	case string:
		return val == ""
	case float64:
		return val == 0
	case bool:
		return !val
	}
	return false
}

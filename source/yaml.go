package source

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/Fish-Fur/optionoids"
)

// YAML decodes the first document of a YAML stream. Mapping keys that are not
// strings are dropped.
func YAML(r io.Reader) (optionoids.Options, error) {
	dec := yaml.NewDecoder(r)
	var doc any
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("source: empty YAML document: %w", err)
		}
		return nil, fmt.Errorf("source: decode YAML: %w", err)
	}
	m := yamlAnyToStringMap(doc)
	if m == nil {
		return nil, fmt.Errorf("%w: got %T", ErrNotMapping, doc)
	}
	return optionoids.Options(m), nil
}

// YAMLBytes decodes YAML held in b.
func YAMLBytes(b []byte) (optionoids.Options, error) { return YAML(bytes.NewReader(b)) }

func yamlAnyToStringMap(v any) map[string]any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			out[k] = yamlNormalizeValue(vv)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			ks, ok := k.(string)
			if !ok {
				continue
			}
			out[ks] = yamlNormalizeValue(vv)
		}
		return out
	default:
		return nil
	}
}

func yamlNormalizeValue(v any) any {
	switch t := v.(type) {
	case map[string]any, map[any]any:
		return yamlAnyToStringMap(t)
	case []any:
		arr := make([]any, len(t))
		for i := range t {
			arr[i] = yamlNormalizeValue(t[i])
		}
		return arr
	default:
		return v
	}
}

package source

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	json "github.com/goccy/go-json"

	"github.com/Fish-Fur/optionoids"
)

// ErrNotMapping is returned when a document's top level is not a key/value mapping.
var ErrNotMapping = errors.New("source: document is not a mapping")

// JSON decodes a single JSON object from r. Integral numbers become int64,
// other numbers float64.
func JSON(r io.Reader) (optionoids.Options, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("source: empty JSON document: %w", err)
		}
		return nil, fmt.Errorf("source: decode JSON: %w", err)
	}
	m, ok := normalizeJSON(doc).(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: got %T", ErrNotMapping, doc)
	}
	return optionoids.Options(m), nil
}

// JSONBytes decodes a JSON object held in b.
func JSONBytes(b []byte) (optionoids.Options, error) { return JSON(bytes.NewReader(b)) }

func normalizeJSON(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, vv := range t {
			t[k] = normalizeJSON(vv)
		}
		return t
	case []any:
		for i := range t {
			t[i] = normalizeJSON(t[i])
		}
		return t
	case json.Number:
		if n, err := t.Int64(); err == nil {
			return n
		}
		if f, err := t.Float64(); err == nil {
			return f
		}
		return t.String()
	default:
		return v
	}
}

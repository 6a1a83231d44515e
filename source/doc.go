// Package source loads optionoids.Options from documents and process state:
// JSON (goccy/go-json), YAML (yaml.v3), .env files (godotenv), the environment
// and URL query or form values.
//
// Only the top level must be a mapping; nested values are kept as decoded
// (map[string]any, []any, strings, bools, int64 or float64).
package source

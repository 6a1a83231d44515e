package source

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/Fish-Fur/optionoids"
)

// Dotenv reads a .env file. Every value is a string.
func Dotenv(path string) (optionoids.Options, error) {
	vars, err := godotenv.Read(path)
	if err != nil {
		return nil, fmt.Errorf("source: read dotenv %s: %w", path, err)
	}
	out := make(optionoids.Options, len(vars))
	for k, v := range vars {
		out[k] = v
	}
	return out, nil
}

// Environ collects the process environment variables starting with prefix.
// The prefix is stripped and the remaining name lower-cased, so with prefix
// "APP_" the variable APP_LOG_LEVEL becomes the key "log_level". An empty
// prefix takes every variable.
func Environ(prefix string) optionoids.Options {
	return fromEnviron(os.Environ(), prefix)
}

func fromEnviron(env []string, prefix string) optionoids.Options {
	out := optionoids.Options{}
	for _, kv := range env {
		name, value, ok := strings.Cut(kv, "=")
		if !ok || !strings.HasPrefix(name, prefix) {
			continue
		}
		key := strings.ToLower(strings.TrimPrefix(name, prefix))
		if key == "" {
			continue
		}
		out[key] = value
	}
	return out
}

// Values converts URL query or form values. Keys with a single value map to
// that string, repeated keys to a []string, and keys without values to nil.
func Values(v url.Values) optionoids.Options {
	o, _ := optionoids.Coerce(v)
	return o
}

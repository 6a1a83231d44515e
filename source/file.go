package source

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Fish-Fur/optionoids"
)

// File loads a document, choosing the format from the file extension:
// .json, .yaml/.yml or .env.
func File(path string) (optionoids.Options, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".env" || filepath.Base(path) == ".env" {
		return Dotenv(path)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("source: open %s: %w", path, err)
	}
	defer f.Close()

	switch ext {
	case ".json":
		return JSON(f)
	case ".yaml", ".yml":
		return YAML(f)
	}
	return nil, fmt.Errorf("source: unsupported file extension %q", ext)
}

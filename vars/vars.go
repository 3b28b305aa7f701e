package vars

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/goccy/go-yaml"
)

// ParsePairs parses NAME=VALUE strings into a variable map.
// The first "=" splits name from value, so values may contain
// "=" themselves.
func ParsePairs(pairs []string) (map[string]string, error) {
	const errCtx = "parsing variables"

	parsed := make(map[string]string, len(pairs))

	for _, pr := range pairs {
		parts := strings.SplitN(pr, "=", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf(
				"%s: variable must be NAME=VALUE, got %s",
				errCtx, pr,
			)
		}

		parsed[parts[0]] = parts[1]
	}

	return parsed, nil
}

// LoadStampFiles reads workspace status files and merges them
// into a single map. Each line is "KEY VALUE" with the first
// space as delimiter. Lines without a space are silently
// skipped; later files override earlier ones.
func LoadStampFiles(
	paths []string,
) (map[string]string, error) {
	const errCtx = "loading stamps"

	stamps := make(map[string]string)

	for _, sf := range paths {
		content, err := os.ReadFile(sf) //nolint:gosec // paths from CLI flags
		if err != nil {
			return nil, fmt.Errorf(
				"%s: %w", errCtx, err,
			)
		}

		for _, line := range strings.Split(
			string(content), "\n",
		) {
			parts := strings.SplitN(line, " ", 2)
			if len(parts) == 2 {
				stamps[parts[0]] = parts[1]
			}
		}
	}

	return stamps, nil
}

// LoadFile reads a variable map from a JSON or YAML file,
// chosen by extension. The document must be a flat
// string-to-string mapping.
func LoadFile(path string) (map[string]string, error) {
	const errCtx = "loading variable file"

	content, err := os.ReadFile(path) //nolint:gosec // path from CLI flag
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtx, err)
	}

	loaded := make(map[string]string)

	switch ext := filepath.Ext(path); ext {
	case ".json":
		if err := json.Unmarshal(content, &loaded); err != nil {
			return nil, fmt.Errorf(
				"%s: parsing %s: %w", errCtx, path, err,
			)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(content, &loaded); err != nil {
			return nil, fmt.Errorf(
				"%s: parsing %s: %w", errCtx, path, err,
			)
		}
	default:
		return nil, fmt.Errorf(
			"%s: unsupported extension %q in %s",
			errCtx, ext, path,
		)
	}

	return loaded, nil
}

// Environ exposes the process environment as a variable map,
// so templates can reference build metadata exported by the
// host build (e.g. VERSION, GIT_SHA).
func Environ() map[string]string {
	env := make(map[string]string)

	for _, kv := range os.Environ() {
		parts := strings.SplitN(kv, "=", 2)
		if len(parts) == 2 {
			env[parts[0]] = parts[1]
		}
	}

	return env
}

// Merge overlays variable maps left to right: a key present in
// a later map wins. Nil maps are allowed and contribute
// nothing.
func Merge(maps ...map[string]string) map[string]string {
	merged := make(map[string]string)

	for _, m := range maps {
		for key, val := range m {
			merged[key] = val
		}
	}

	return merged
}

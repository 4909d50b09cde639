// Package envfile persists the generated container identity to the project
// dotfile. Single-process, single-invocation use; there is no locking, so
// concurrent invocations racing to write the file are a documented hazard.
package envfile

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/joho/godotenv"
)

const (
	// DefaultPath is the dotfile at the working directory root.
	DefaultPath = ".env"

	// ContainerNameKey is the single entry every verb except "new" requires.
	ContainerNameKey = "CONTAINER_NAME"
)

// NotFoundError means the dotfile does not exist yet. Every verb except
// "new" treats this as fatal configuration.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: run \"hustle new <base-image>\" first", e.Path)
}

// Load parses the dotfile into a key-value map. Lines split on the first
// "=", both sides trimmed, last occurrence of a duplicate key wins.
func Load(path string) (map[string]string, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, &NotFoundError{Path: path}
	}
	entries, err := godotenv.Read(path)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return entries, nil
}

// Save overwrites the dotfile with one KEY=VALUE line per entry, in sorted
// key order.
func Save(path string, entries map[string]string) error {
	keys := make([]string, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&b, "%s=%s\n", k, entries[k])
	}

	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// ContainerName loads the dotfile and returns the persisted identity.
func ContainerName(path string) (string, error) {
	entries, err := Load(path)
	if err != nil {
		return "", err
	}
	name := entries[ContainerNameKey]
	if name == "" {
		return "", fmt.Errorf("%s has no %s entry", path, ContainerNameKey)
	}
	return name, nil
}

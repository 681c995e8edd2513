// Package config reads nestegg settings from viper into each component's config.
package config

import (
	"os"
	"path/filepath"
	"strings"
)

// ExpandPath expands a leading ~ and $VAR style environment variables in a file path.
// Object storage URIs are returned untouched.
func ExpandPath(path string) string {
	if path == "" || strings.HasPrefix(path, "gs://") {
		return path
	}

	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, strings.TrimPrefix(path[1:], "/"))
		}
	}

	return os.ExpandEnv(path)
}

package config

import (
	"fmt"
	"os"
	"strings"
)

// Get returns the value of an environment variable, or fallback when
// the variable is unset or blank.
func Get(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

// MustGet returns the value of a required environment variable or an
// error naming the missing key.
func MustGet(key string) (string, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return "", fmt.Errorf("config: %s is required", key)
	}
	return v, nil
}

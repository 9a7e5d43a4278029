// Package config provides environment-backed configuration helpers
package config

import (
	"os"
	"strconv"
)

// GetEnv retrieves the value of an environment variable with a fallback value if not set
func GetEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// GetEnvInt retrieves an integer environment variable with a fallback value
// if the variable is not set or cannot be parsed
func GetEnvInt(key string, fallback int) int {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

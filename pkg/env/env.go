package env

import (
	"os"
	"strconv"
)

// Get returns the value of the given environment variable or a fallback.
func Get(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

// Lookup reports the value of the given environment variable and whether it
// is set to a non-empty value.
func Lookup(key string) (string, bool) {
	val := os.Getenv(key)
	return val, val != ""
}

// GetBool parses the given environment variable as a boolean, returning a
// fallback when unset or unparsable.
func GetBool(key string, fallback bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(val)
	if err != nil {
		return fallback
	}
	return parsed
}

package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

const (
	FormatKey = "GEODISTANCE_FORMAT"
	RadiusKey = "GEODISTANCE_RADIUS_METERS"
	LogKey    = "LOG_LEVEL"
)

// Get returns the environment value for key, or fallback when unset or blank.
func Get(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

// GetFloat parses the environment value for key as a float.
func GetFloat(key string, fallback float64) (float64, error) {
	v := Get(key, "")
	if v == "" {
		return fallback, nil
	}

	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "config: parse %s=%q", key, v)
	}
	return f, nil
}

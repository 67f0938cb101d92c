// Package validation provides input validation for simulation boundary data:
// bootstrap configuration values and externally issued fleet orders. The tick
// systems themselves never validate and rely on defensive defaults, so
// everything crossing the API boundary is checked here instead.
package validation

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Limits for boundary inputs.
const (
	MaxNameLen       = 48
	MaxUnitCount     = 10000
	MinTravelTime    = 1.0   // seconds
	MaxTravelTime    = 600.0 // seconds
	MaxDefenseBonus  = 10.0
	MaxResourceRate  = 100000.0
	MaxGarrisonLimit = 100000.0
)

// ValidateName checks and normalizes an entity name from configuration.
func ValidateName(name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("name cannot be empty")
	}
	if len(name) > MaxNameLen {
		return "", fmt.Errorf("name too long: %d characters (max %d)", len(name), MaxNameLen)
	}
	if !utf8.ValidString(name) {
		return "", fmt.Errorf("name contains invalid UTF-8")
	}
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", fmt.Errorf("name cannot be only whitespace")
	}
	return trimmed, nil
}

// ValidateRatio checks a value expected in [0, 1].
func ValidateRatio(field string, v float64) error {
	if v < 0 || v > 1 {
		return fmt.Errorf("%s must be in [0, 1], got %v", field, v)
	}
	return nil
}

// ValidateNonNegative checks a value expected to be >= 0.
func ValidateNonNegative(field string, v float64) error {
	if v < 0 {
		return fmt.Errorf("%s must not be negative, got %v", field, v)
	}
	return nil
}

// ValidateUnitCount checks a unit composition count.
func ValidateUnitCount(field string, n int) error {
	if n < 0 {
		return fmt.Errorf("%s must not be negative, got %d", field, n)
	}
	if n > MaxUnitCount {
		return fmt.Errorf("%s too large: %d (max %d)", field, n, MaxUnitCount)
	}
	return nil
}

// ValidateTravelTime checks a fleet order's travel time.
func ValidateTravelTime(t float64) error {
	if t < MinTravelTime || t > MaxTravelTime {
		return fmt.Errorf("travel time must be in [%v, %v] seconds, got %v",
			MinTravelTime, MaxTravelTime, t)
	}
	return nil
}

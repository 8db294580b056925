// internal/gps/sexagesimal.go
package gps

import (
	"fmt"
	"strings"
)

// Triple holds the raw degrees, minutes and seconds of one axis.
type Triple struct {
	Degrees string
	Minutes string
	Seconds string
}

// ParseSexagesimalTag splits a bracketed three element tag value such as
// "[1, 60, 3600]", "[10/10, 3600/60, 3600]" or ["51/1","30/1","1234/100"]
// into its raw components.
func ParseSexagesimalTag(tag string) (Triple, error) {
	body := strings.TrimSpace(tag)
	body = strings.TrimPrefix(body, "[")
	body = strings.TrimSuffix(body, "]")

	parts := strings.Split(body, ",")
	if len(parts) != 3 {
		return Triple{}, fmt.Errorf("%w: %q", ErrUnparsableTag, tag)
	}

	tokens := make([]string, 0, 3)
	for _, part := range parts {
		token := strings.Trim(strings.TrimSpace(part), `"`)
		if !isRationalToken(token) {
			return Triple{}, fmt.Errorf("%w: %q", ErrUnparsableTag, tag)
		}
		tokens = append(tokens, token)
	}

	return Triple{Degrees: tokens[0], Minutes: tokens[1], Seconds: tokens[2]}, nil
}

// isRationalToken reports whether token only holds digits, '/', '.' and an
// optional leading minus sign.
func isRationalToken(token string) bool {
	token = strings.TrimPrefix(token, "-")
	if token == "" {
		return false
	}
	for _, r := range token {
		if (r < '0' || r > '9') && r != '/' && r != '.' {
			return false
		}
	}
	return true
}

// ToDecimalDegrees reduces a triple to degrees + minutes/60 + seconds/3600.
func ToDecimalDegrees(t Triple) (float64, error) {
	degrees, err := ConvertFraction(t.Degrees)
	if err != nil {
		return 0, fmt.Errorf("degrees: %w", err)
	}
	minutes, err := ConvertFraction(t.Minutes)
	if err != nil {
		return 0, fmt.Errorf("minutes: %w", err)
	}
	seconds, err := ConvertFraction(t.Seconds)
	if err != nil {
		return 0, fmt.Errorf("seconds: %w", err)
	}

	return degrees + minutes/60.0 + seconds/3600.0, nil
}

// ToDecimalDegreesFromTag parses a raw latitude or longitude tag value and
// converts it to unsigned decimal degrees.
func ToDecimalDegreesFromTag(tag string) (float64, error) {
	t, err := ParseSexagesimalTag(tag)
	if err != nil {
		return 0, err
	}
	return ToDecimalDegrees(t)
}

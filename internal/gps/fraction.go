// internal/gps/fraction.go
package gps

import (
	"fmt"
	"strconv"
	"strings"
)

// ConvertFraction converts a bare number ("12", "-1", "0.5") or a fraction
// ("123/3") into its float value.
func ConvertFraction(text string) (float64, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, fmt.Errorf("%w: empty value", ErrMalformedNumber)
	}

	numText, denText, isFraction := strings.Cut(text, "/")
	if !isFraction {
		return parseNumber(text)
	}

	if strings.Contains(denText, "/") {
		return 0, fmt.Errorf("%w: %q", ErrMalformedNumber, text)
	}

	numerator, err := parseNumber(numText)
	if err != nil {
		return 0, err
	}
	denominator, err := parseNumber(denText)
	if err != nil {
		return 0, err
	}
	if denominator == 0 {
		return 0, fmt.Errorf("%w: zero denominator in %q", ErrMalformedNumber, text)
	}

	return numerator / denominator, nil
}

func parseNumber(text string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformedNumber, text)
	}
	return v, nil
}

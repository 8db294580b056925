// internal/gps/tags.go
package gps

import (
	"fmt"
	"strings"
)

// GPS tag names as produced by the EXIF tag reader.
const (
	TagLatitude     = "GPS GPSLatitude"
	TagLatitudeRef  = "GPS GPSLatitudeRef"
	TagLongitude    = "GPS GPSLongitude"
	TagLongitudeRef = "GPS GPSLongitudeRef"
)

var requiredTags = []string{TagLatitude, TagLatitudeRef, TagLongitude, TagLongitudeRef}

// TagSet maps EXIF tag names to their raw string values
type TagSet map[string]string

// Coordinate is a signed decimal degree pair
type Coordinate struct {
	Latitude  float64
	Longitude float64
}

// FilterGPSTags returns the subset of tags whose name mentions GPS
func FilterGPSTags(tags map[string]string) TagSet {
	gpsTags := make(TagSet)
	for name, value := range tags {
		if strings.Contains(name, "GPS") {
			gpsTags[name] = value
		}
	}
	return gpsTags
}

// IsCompleteTagSet reports whether all four latitude/longitude tags are
// present. Values are not inspected and extra tags are ignored.
func IsCompleteTagSet(tags TagSet) bool {
	for _, name := range requiredTags {
		if _, ok := tags[name]; !ok {
			return false
		}
	}
	return true
}

// ResolveSignedCoordinates converts the latitude and longitude tags to
// decimal degrees and applies the hemisphere references: S negates the
// latitude and W negates the longitude. Callers are expected to check
// IsCompleteTagSet first; a missing tag fails with ErrIncompleteTagSet.
func ResolveSignedCoordinates(tags TagSet) (Coordinate, error) {
	for _, name := range requiredTags {
		if _, ok := tags[name]; !ok {
			return Coordinate{}, fmt.Errorf("%w: missing %s", ErrIncompleteTagSet, name)
		}
	}

	lat, err := ToDecimalDegreesFromTag(tags[TagLatitude])
	if err != nil {
		return Coordinate{}, fmt.Errorf("latitude: %w", err)
	}
	long, err := ToDecimalDegreesFromTag(tags[TagLongitude])
	if err != nil {
		return Coordinate{}, fmt.Errorf("longitude: %w", err)
	}

	if refValue(tags[TagLongitudeRef]) == "W" {
		long = -long
	}
	if refValue(tags[TagLatitudeRef]) == "S" {
		lat = -lat
	}

	return Coordinate{Latitude: lat, Longitude: long}, nil
}

// refValue strips the quoting goexif adds to ASCII values
func refValue(raw string) string {
	return strings.Trim(strings.TrimSpace(raw), `"`)
}

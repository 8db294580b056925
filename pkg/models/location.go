package models

import "github.com/bstardust/imagegps/internal/imagegps"

// Location is the serialisable view of a processed image
type Location struct {
	Filename  string   `json:"filename"`
	URL       string   `json:"url"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
	Zoom      int      `json:"zoom"`
}

// NewLocation builds a Location from a record. Coordinates are omitted when
// the record has no GPS data.
func NewLocation(r *imagegps.Record) Location {
	loc := Location{
		Filename: r.Filename(),
		URL:      r.URL(),
		Zoom:     r.ZoomLevel(),
	}
	if c, ok := r.Coordinate(); ok {
		loc.Latitude = &c.Latitude
		loc.Longitude = &c.Longitude
	}
	return loc
}

// NewLocations converts a list of records
func NewLocations(records []*imagegps.Record) []Location {
	locations := make([]Location, 0, len(records))
	for _, r := range records {
		locations = append(locations, NewLocation(r))
	}
	return locations
}

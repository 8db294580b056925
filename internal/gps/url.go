package gps

import "fmt"

const mapsURLFormat = "https://google.co.uk/maps/@%.7f,%.7f,%dz"

// BuildMapsURL formats a coordinate and zoom level as a Google Maps link
func BuildMapsURL(c Coordinate, zoom int) string {
	return fmt.Sprintf(mapsURLFormat, c.Latitude, c.Longitude, zoom)
}

package models

import (
	"encoding/json"
	"io"
	"strings"
	"testing"

	"github.com/bstardust/imagegps/internal/gps"
	"github.com/bstardust/imagegps/internal/imagegps"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticReader map[string]string

func (r staticReader) ReadTags(io.Reader) (map[string]string, error) {
	return r, nil
}

func emptyFile(string) (io.ReadCloser, error) {
	return io.NopCloser(strings.NewReader("")), nil
}

func TestNewLocation(t *testing.T) {
	r := imagegps.New("photo.jpg",
		imagegps.WithOpener(emptyFile),
		imagegps.WithTagReader(staticReader{
			gps.TagLatitude:     "[1, 60, 3600]",
			gps.TagLatitudeRef:  "S",
			gps.TagLongitude:    "[1, 60, 3600]",
			gps.TagLongitudeRef: "E",
		}),
	)
	require.NoError(t, r.ProcessExif())

	data, err := json.Marshal(NewLocation(r))
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"filename": "photo.jpg",
		"url": "https://google.co.uk/maps/@-3.0000000,3.0000000,16z",
		"latitude": -3,
		"longitude": 3,
		"zoom": 16
	}`, string(data))
}

func TestNewLocation_NoGPS(t *testing.T) {
	r := imagegps.New("notes.txt")
	require.NoError(t, r.ProcessExif())

	data, err := json.Marshal(NewLocations([]*imagegps.Record{r}))
	require.NoError(t, err)
	assert.JSONEq(t, `[{"filename": "notes.txt", "url": "", "zoom": 16}]`, string(data))
}

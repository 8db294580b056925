package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/bstardust/imagegps/internal/exif/exiftest"
	"github.com/bstardust/imagegps/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func photoDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.tiff"),
		exiftest.GPSTIFF(exiftest.Deg(1, 60, 3600), "N", exiftest.Deg(1, 60, 3600), "W"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.jpg"), []byte("no exif"), 0644))
	return dir
}

func TestReadCommand(t *testing.T) {
	dir := photoDir(t)
	path := filepath.Join(dir, "a.tiff")

	out, err := execute(t, "read", "--zoom", "3", path)
	require.NoError(t, err)
	assert.Equal(t, "Filename: "+path+"\nUrl: https://google.co.uk/maps/@3.0000000,-3.0000000,3z\n\n", out)
}

func TestReadCommand_NonNumericZoom(t *testing.T) {
	dir := photoDir(t)
	path := filepath.Join(dir, "a.tiff")
	want := "Filename: " + path + "\nUrl: https://google.co.uk/maps/@3.0000000,-3.0000000,16z\n\n"

	out, err := execute(t, "read", "--zoom", "abc", path)
	require.NoError(t, err)
	assert.Equal(t, want, out)

	t.Setenv("IMAGEGPS_ZOOM", "abc")
	out, err = execute(t, "read", path)
	require.NoError(t, err)
	assert.Equal(t, want, out)
}

func TestSearchCommand_NonNumericZoom(t *testing.T) {
	t.Setenv("IMAGEGPS_ZOOM", "abc")

	out, err := execute(t, "search", "--format", "json", photoDir(t))
	require.NoError(t, err)

	var locations []models.Location
	require.NoError(t, json.Unmarshal([]byte(out), &locations))
	require.Len(t, locations, 1)
	assert.Equal(t, "https://google.co.uk/maps/@3.0000000,-3.0000000,16z", locations[0].URL)
}

func TestReadCommand_NoGPSAndMissing(t *testing.T) {
	dir := photoDir(t)
	missing := filepath.Join(dir, "missing.jpg")

	out, err := execute(t, "read", "--format", "json", filepath.Join(dir, "b.jpg"), missing)
	require.NoError(t, err)

	var locations []models.Location
	require.NoError(t, json.Unmarshal([]byte(out), &locations))
	require.Len(t, locations, 2)
	assert.Equal(t, "", locations[0].URL)
	assert.Equal(t, missing, locations[1].Filename)
	assert.Equal(t, "", locations[1].URL)
}

func TestSearchCommand(t *testing.T) {
	dir := photoDir(t)

	out, err := execute(t, "search", "--format", "json", "--concurrency", "2", dir)
	require.NoError(t, err)

	var locations []models.Location
	require.NoError(t, json.Unmarshal([]byte(out), &locations))
	require.Len(t, locations, 1)
	assert.Equal(t, "https://google.co.uk/maps/@3.0000000,-3.0000000,16z", locations[0].URL)
	require.NotNil(t, locations[0].Latitude)
	assert.Equal(t, 3.0, *locations[0].Latitude)
}

func TestSearchCommand_Errors(t *testing.T) {
	_, err := execute(t, "search", filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)

	_, err = execute(t, "search", "s3://Bad_Bucket/prefix")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid bucket")

	_, err = execute(t, "search", "--format", "xml", t.TempDir())
	assert.Error(t, err)
}

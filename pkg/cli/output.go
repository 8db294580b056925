package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/bstardust/imagegps/internal/config"
	"github.com/bstardust/imagegps/internal/imagegps"
	"github.com/bstardust/imagegps/pkg/models"
)

// writeRecords prints records as text blocks or JSON. A single record in
// JSON form is written as an object rather than a list.
func writeRecords(w io.Writer, format string, records []*imagegps.Record, single bool) error {
	if format != config.FormatJSON {
		for _, r := range records {
			if _, err := fmt.Fprintln(w, r.String()); err != nil {
				return err
			}
		}
		return nil
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if single && len(records) == 1 {
		return enc.Encode(models.NewLocation(records[0]))
	}
	return enc.Encode(models.NewLocations(records))
}

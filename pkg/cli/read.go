package cli

import (
	"github.com/bstardust/imagegps/internal/imagegps"
	"github.com/bstardust/imagegps/internal/logger"
	"github.com/spf13/cobra"
)

func newReadCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "read <image> [image...]",
		Short: "Print the map link of one or more images",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			records := make([]*imagegps.Record, 0, len(args))
			for _, path := range args {
				records = append(records, readImage(path, a.cfg.Zoom))
			}
			return writeRecords(cmd.OutOrStdout(), a.cfg.Format, records, len(args) == 1)
		},
	}
}

// readImage processes a single image. Failures are logged and leave the
// record without a URL.
func readImage(path, zoom string) *imagegps.Record {
	record := imagegps.Read(path, imagegps.WithZoomLevelText(zoom))
	if err := record.ProcessExif(); err != nil {
		logger.Warn("Failed to read GPS data from %s: %v", path, err)
	}
	return record
}

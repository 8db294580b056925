// pkg/cli/root.go
package cli

import (
	"github.com/bstardust/imagegps/internal/config"
	"github.com/bstardust/imagegps/internal/logger"
	"github.com/spf13/cobra"
)

// app carries the configuration loaded before any subcommand runs
type app struct {
	configPath string
	cfg        *config.Config
}

// NewRootCmd builds the imagegps command tree
func NewRootCmd() *cobra.Command {
	a := &app{cfg: config.New()}

	rootCmd := &cobra.Command{
		Use:   "imagegps",
		Short: "Turn the GPS tags of JPEG and TIFF images into Google Maps links",
		Long: `imagegps reads the EXIF GPS tags of JPEG and TIFF images and prints a Google Maps
link for every image that carries a complete latitude/longitude.

Settings can also come from a config file (--config), a .env file or
IMAGEGPS_* environment variables.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.configPath, cmd.Flags())
			if err != nil {
				return err
			}
			a.cfg = cfg
			logger.SetLevel(cfg.LogLevel)
			return nil
		},
	}

	// Global flags
	defaults := config.New()
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "Path to a config file (yaml, json or toml)")
	flags.String("log-level", defaults.LogLevel, "Log level (debug, info, warn, error)")
	flags.String("format", defaults.Format, "Output format (text, json)")
	flags.String("zoom", defaults.Zoom, "Google Maps zoom level (1-21, other values are ignored)")

	rootCmd.AddCommand(newReadCommand(a))
	rootCmd.AddCommand(newSearchCommand(a))

	return rootCmd
}

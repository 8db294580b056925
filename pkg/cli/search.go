package cli

import (
	"context"
	"fmt"

	"github.com/bstardust/imagegps/internal/config"
	"github.com/bstardust/imagegps/internal/fshelper"
	"github.com/bstardust/imagegps/internal/scanner"
	"github.com/bstardust/imagegps/internal/utils"
	"github.com/bstardust/imagegps/pkg/s3client"
	"github.com/spf13/cobra"
)

func newSearchCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search <directory> | <archive.zip> | s3://<bucket>/<prefix>",
		Short: "Print the map links of every image with GPS data under a location",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd, a.cfg, args[0])
		},
	}

	defaults := config.New()

	// Scan options
	cmd.Flags().Int("concurrency", defaults.Concurrency, "Number of images processed concurrently")

	// S3 connection flags
	cmd.Flags().String("endpoint", "", "S3 endpoint for s3:// targets")
	cmd.Flags().String("region", defaults.S3.Region, "S3 region")
	cmd.Flags().String("access-key", "", "S3 access key")
	cmd.Flags().String("secret-key", "", "S3 secret key")
	cmd.Flags().Bool("use-ssl", defaults.S3.UseSSL, "Use SSL for S3 connection")

	return cmd
}

func runSearch(cmd *cobra.Command, cfg *config.Config, target string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	source, closeSource, err := openSource(ctx, cfg, target)
	if err != nil {
		return err
	}
	defer closeSource()

	records, err := scanner.New(source, scanner.Options{
		Concurrency:   cfg.Concurrency,
		ZoomLevelText: cfg.Zoom,
	}).Search(ctx)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	return writeRecords(cmd.OutOrStdout(), cfg.Format, records, false)
}

// openSource resolves a search target to a local or S3 source
func openSource(ctx context.Context, cfg *config.Config, target string) (scanner.Source, func() error, error) {
	if !s3client.IsS3URL(target) {
		source, err := fshelper.OpenSource(target)
		if err != nil {
			return nil, nil, err
		}
		return source, source.Close, nil
	}

	bucket, prefix, err := s3client.ParseURL(target)
	if err != nil {
		return nil, nil, err
	}
	if err := utils.ValidateS3BucketName(bucket); err != nil {
		return nil, nil, fmt.Errorf("invalid bucket %q: %w", bucket, err)
	}

	client, err := s3client.New(ctx, s3client.Config{
		Endpoint:  cfg.S3.Endpoint,
		Region:    cfg.S3.Region,
		Bucket:    bucket,
		AccessKey: cfg.S3.AccessKey,
		SecretKey: cfg.S3.SecretKey,
		UseSSL:    cfg.S3.UseSSL,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize S3 client: %w", err)
	}

	return s3client.NewSource(client, prefix), func() error { return nil }, nil
}

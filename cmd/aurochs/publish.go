package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/aurochs-dev/aurochs/internal/publish"
)

func publishCmd(global *globalFlags) *cobra.Command {
	var (
		bucket string
		prefix string
		region string
	)

	cmd := &cobra.Command{
		Use:   "publish <file.yaml>...",
		Short: "Render tree documents and upload them to S3",
		Long: `Render tree documents and upload them to S3.

Each document is stored as <prefix><name>.html with content type
text/html. Credentials come from the standard AWS environment.

Examples:
  aurochs publish pages/*.yaml
  aurochs publish --bucket=my-site --prefix=docs/ pages/index.yaml`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(global)
			if err != nil {
				return err
			}

			set := cmd.Flags().Changed
			if set("bucket") {
				cfg.Publish.Bucket = bucket
			}
			if set("prefix") {
				cfg.Publish.Prefix = prefix
			}
			if set("region") {
				cfg.Publish.Region = region
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()

			client, err := publish.NewClient(ctx, cfg.Publish.Region)
			if err != nil {
				return err
			}
			p := publish.New(client, publish.Options{
				Bucket:       cfg.Publish.Bucket,
				Prefix:       cfg.Publish.Prefix,
				CacheControl: cfg.Publish.CacheControl,
				Render:       cfg.RenderConfig(),
			})

			results, err := p.Publish(ctx, args...)
			out := cmd.OutOrStdout()
			for _, res := range results {
				success(out, "%s → %s", res.Source, res.URI(cfg.Publish.Bucket))
			}
			return err
		},
	}

	cmd.Flags().StringVarP(&bucket, "bucket", "b", "", "Destination bucket (default from aurochs.yaml)")
	cmd.Flags().StringVarP(&prefix, "prefix", "p", "", "Object key prefix")
	cmd.Flags().StringVar(&region, "region", "", "AWS region")

	return cmd
}

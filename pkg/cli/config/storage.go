package config

import (
	"context"
	"log/slog"

	"github.com/secmon-lab/ghloc/pkg/domain/types"
	"github.com/secmon-lab/ghloc/pkg/infra/gcs"
	"github.com/urfave/cli/v3"
)

type Storage struct {
	bucket types.GCSBucket
	prefix string
}

func (x *Storage) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "storage-bucket",
			Usage:       "Cloud Storage bucket to upload the CSV report (optional)",
			Category:    "Cloud Storage",
			Destination: (*string)(&x.bucket),
			Sources:     cli.EnvVars("GHLOC_STORAGE_BUCKET"),
		},
		&cli.StringFlag{
			Name:        "storage-prefix",
			Usage:       "Object name prefix of the CSV report",
			Category:    "Cloud Storage",
			Destination: &x.prefix,
			Sources:     cli.EnvVars("GHLOC_STORAGE_PREFIX"),
		},
	}
}

func (x *Storage) Enabled() bool {
	return x.bucket != ""
}

func (x *Storage) Prefix() string {
	return x.prefix
}

func (x *Storage) NewClient(ctx context.Context) (*gcs.Client, error) {
	return gcs.New(ctx, x.bucket)
}

func (x *Storage) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Any("bucket", x.bucket),
		slog.String("prefix", x.prefix),
	)
}

package cli

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/secmon-lab/ghloc/pkg/cli/config"
	"github.com/secmon-lab/ghloc/pkg/domain/model"
	"github.com/secmon-lab/ghloc/pkg/domain/types"
	"github.com/secmon-lab/ghloc/pkg/infra"
	"github.com/secmon-lab/ghloc/pkg/usecase"
	"github.com/secmon-lab/ghloc/pkg/utils/logging"
	"github.com/secmon-lab/ghloc/pkg/utils/safe"
	"github.com/urfave/cli/v3"
)

type countConfig struct {
	extension  string
	outputPath string

	github   config.GitHub
	bigQuery config.BigQuery
	storage  config.Storage
}

func (x *countConfig) Flags() []cli.Flag {
	return slice.Flatten([]cli.Flag{
		&cli.StringFlag{
			Name:        "extension",
			Aliases:     []string{"e"},
			Usage:       "File extension to count",
			Value:       model.DefaultExtension,
			Sources:     cli.EnvVars("GHLOC_EXTENSION"),
			Destination: &x.extension,
		},
		&cli.StringFlag{
			Name:        "output",
			Usage:       "Path of the CSV report",
			Value:       model.DefaultOutputPath,
			Sources:     cli.EnvVars("GHLOC_OUTPUT"),
			Destination: &x.outputPath,
		},
	}, x.github.Flags(), x.bigQuery.Flags(), x.storage.Flags())
}

func runCount(ctx context.Context, c *cli.Command, cfg *countConfig) error {
	if c.Args().Len() < 1 {
		return goerr.Wrap(types.ErrInvalidOption, "github_username is required")
	}

	input := &model.CountLinesInput{
		Username:   c.Args().First(),
		Extension:  cfg.extension,
		OutputPath: cfg.outputPath,
	}

	logging.From(ctx).Info("Starting count",
		slog.String("username", input.Username),
		slog.String("extension", input.Extension),
		slog.String("output", input.OutputPath),
		slog.Any("github", cfg.github),
		slog.Any("bigquery", &cfg.bigQuery),
		slog.Any("storage", &cfg.storage),
	)

	ghClient, err := cfg.github.NewClient(ctx)
	if err != nil {
		return goerr.Wrap(err, "failed to create GitHub client")
	}
	infraOptions := []infra.Option{
		infra.WithGitHub(ghClient),
	}

	if cfg.bigQuery.Enabled() {
		bqClient, err := cfg.bigQuery.NewClient(ctx)
		if err != nil {
			return goerr.Wrap(err, "failed to create BigQuery client")
		}
		defer safe.Close(ctx, bqClient)
		infraOptions = append(infraOptions, infra.WithBigQuery(bqClient))
	}

	if cfg.storage.Enabled() {
		storageClient, err := cfg.storage.NewClient(ctx)
		if err != nil {
			return goerr.Wrap(err, "failed to create Cloud Storage client")
		}
		defer safe.Close(ctx, storageClient)
		infraOptions = append(infraOptions, infra.WithStorage(storageClient))
	}

	uc := usecase.New(infra.New(infraOptions...),
		usecase.WithStoragePrefix(cfg.storage.Prefix()),
	)

	if _, err := uc.CountLines(ctx, input); err != nil {
		return err
	}

	return nil
}

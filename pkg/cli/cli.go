package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/m-mizutani/gots/slice"
	"github.com/secmon-lab/ghloc/pkg/cli/config"
	"github.com/secmon-lab/ghloc/pkg/utils/errutil"
	"github.com/secmon-lab/ghloc/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

// ConfigureLogging is exported for testing purposes
var ConfigureLogging = logging.Configure

type CLI struct {
}

func New() *CLI {
	return &CLI{}
}

func (x *CLI) Run(argv []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var (
		logLevel  string
		logFormat string
		logOutput string

		sentry config.Sentry
		count  countConfig
	)

	loggingFlags := []cli.Flag{
		&cli.StringFlag{
			Name:        "log-level",
			Usage:       "Log level [debug|info|warn|error]",
			Aliases:     []string{"l"},
			Sources:     cli.EnvVars("GHLOC_LOG_LEVEL"),
			Destination: &logLevel,
			Value:       "info",
		},
		&cli.StringFlag{
			Name:        "log-format",
			Usage:       "Log format [text|json]",
			Aliases:     []string{"f"},
			Sources:     cli.EnvVars("GHLOC_LOG_FORMAT"),
			Destination: &logFormat,
			Value:       "text",
		},
		&cli.StringFlag{
			Name:        "log-output",
			Usage:       "Log output [-|stdout|stderr|<file>]",
			Sources:     cli.EnvVars("GHLOC_LOG_OUTPUT"),
			Destination: &logOutput,
			Value:       "-",
		},
	}

	app := &cli.Command{
		Name:      "ghloc",
		Usage:     "Count lines of files with an extension in GitHub repositories",
		ArgsUsage: "GITHUB_USERNAME",
		UsageText: "ghloc [options] GITHUB_USERNAME\n\n" +
			"GITHUB_USERNAME is matched as a substring of each repository URL visible to the token.\n\n" +
			"Example:\n" +
			"  ghloc EricSchles",
		Flags: slice.Flatten(
			loggingFlags,
			count.Flags(),
			sentry.Flags(),
		),
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			if err := ConfigureLogging(logFormat, logLevel, logOutput); err != nil {
				return ctx, err
			}
			if err := sentry.Configure(ctx); err != nil {
				return ctx, err
			}
			return ctx, nil
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			return runCount(ctx, c, &count)
		},
	}

	defer sentry.Flush()
	if err := app.Run(ctx, argv); err != nil {
		errutil.HandleError(ctx, "fatal error", err)
		return err
	}

	return nil
}

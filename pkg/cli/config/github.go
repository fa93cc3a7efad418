package config

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/ghloc/pkg/domain/types"
	"github.com/secmon-lab/ghloc/pkg/infra/githubapi"
	"github.com/urfave/cli/v3"
)

type GitHub struct {
	token      types.GitHubToken `masq:"secret"`
	appID      types.GitHubAppID
	installID  types.GitHubAppInstallID
	privateKey types.GitHubAppPrivateKey `masq:"secret"`
	baseURL    string
}

func (x *GitHub) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "github-token",
			Usage:       "GitHub personal access token",
			Category:    "GitHub",
			Destination: (*string)(&x.token),
			Sources:     cli.EnvVars("GHLOC_GITHUB_TOKEN", "GITHUB_TOKEN"),
		},
		&cli.Int64Flag{
			Name:        "github-app-id",
			Usage:       "GitHub App ID, used when token is not set",
			Category:    "GitHub",
			Destination: (*int64)(&x.appID),
			Sources:     cli.EnvVars("GHLOC_GITHUB_APP_ID"),
		},
		&cli.Int64Flag{
			Name:        "github-app-install-id",
			Usage:       "GitHub App installation ID",
			Category:    "GitHub",
			Destination: (*int64)(&x.installID),
			Sources:     cli.EnvVars("GHLOC_GITHUB_APP_INSTALL_ID"),
		},
		&cli.StringFlag{
			Name:        "github-app-private-key",
			Usage:       "GitHub App private key (PEM)",
			Category:    "GitHub",
			Destination: (*string)(&x.privateKey),
			Sources:     cli.EnvVars("GHLOC_GITHUB_APP_PRIVATE_KEY"),
		},
		&cli.StringFlag{
			Name:        "github-base-url",
			Usage:       "GitHub REST API base URL for GitHub Enterprise Server",
			Category:    "GitHub",
			Destination: &x.baseURL,
			Sources:     cli.EnvVars("GHLOC_GITHUB_BASE_URL"),
		},
	}
}

// NewClient creates a GitHub client. Token is preferred over GitHub App credentials.
func (x *GitHub) NewClient(ctx context.Context) (*githubapi.Client, error) {
	var opts []githubapi.Option
	if x.baseURL != "" {
		opts = append(opts, githubapi.WithBaseURL(x.baseURL))
	}

	switch {
	case x.token != "":
		return githubapi.NewWithToken(ctx, x.token, opts...)
	case x.appID != 0:
		return githubapi.NewWithApp(x.appID, x.installID, x.privateKey, opts...)
	default:
		return nil, goerr.Wrap(types.ErrInvalidOption, "github token or GitHub App credential is required")
	}
}

func (x GitHub) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("token.len", len(x.token)),
		slog.Int64("appID", int64(x.appID)),
		slog.Int64("installID", int64(x.installID)),
		slog.Int("privateKey.len", len(x.privateKey)),
		slog.String("baseURL", x.baseURL),
	)
}

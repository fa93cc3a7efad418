package types

import "log/slog"

type (
	GitHubToken         string
	GitHubAppID         int64
	GitHubAppInstallID  int64
	GitHubAppPrivateKey string
	CommitSHA           string
)

func (x GitHubToken) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x GitHubToken) String() string {
	return "***********"
}

func (x GitHubAppPrivateKey) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x GitHubAppPrivateKey) String() string {
	return "***********"
}

func (x CommitSHA) String() string {
	return string(x)
}

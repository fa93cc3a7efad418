package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/ghloc/pkg/domain/interfaces"
	"github.com/secmon-lab/ghloc/pkg/utils/logging"
)

const rateLimitPause = time.Hour

var rateLimitMessages = []string{
	"You've hit the rate limit for the github API (5000 requests).",
	"The rate limit resets after about an hour.",
	"The program will pause now for an hour.",
	"Alternatively you can hit CTRL-C.",
	"And try again in an hour.",
	"Happy hacking!",
}

// waitForRateLimit pauses for an hour when the core quota is used up.
func (x *UseCase) waitForRateLimit(ctx context.Context, gh interfaces.GitHub) error {
	limit, err := gh.GetRateLimit(ctx)
	if err != nil {
		return goerr.Wrap(err, "failed to get rate limit")
	}
	if !limit.Exhausted() {
		return nil
	}

	logging.From(ctx).Warn("GitHub API rate limit exhausted",
		"limit", limit.Limit,
		"reset", limit.Reset,
		"pause", rateLimitPause,
	)
	for _, msg := range rateLimitMessages {
		if _, err := fmt.Fprintln(x.stdout, msg); err != nil {
			return goerr.Wrap(err, "failed to write rate limit message")
		}
	}

	if err := x.sleep(ctx, rateLimitPause); err != nil {
		return goerr.Wrap(err, "rate limit wait is interrupted")
	}

	return nil
}

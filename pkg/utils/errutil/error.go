package errutil

import (
	"context"
	"errors"
	"fmt"

	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/ghloc/pkg/utils/logging"
)

// HandleError reports err to Sentry and logs it. Cancellation by the operator is only logged.
func HandleError(ctx context.Context, msg string, err error) {
	if err == nil {
		return
	}

	if errors.Is(err, context.Canceled) {
		logging.From(ctx).Warn("interrupted, accumulated results are discarded", "error", err)
		return
	}

	// Sending error to Sentry
	hub := sentry.CurrentHub().Clone()
	hub.ConfigureScope(func(scope *sentry.Scope) {
		if goErr := goerr.Unwrap(err); goErr != nil {
			for k, v := range goErr.Values() {
				scope.SetExtra(fmt.Sprintf("%v", k), v)
			}
		}
	})
	evID := hub.CaptureException(err)

	logging.From(ctx).Error(msg,
		"error", err,
		"sentry.EventID", evID,
	)
}

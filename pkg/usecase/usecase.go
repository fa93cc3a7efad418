package usecase

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/secmon-lab/ghloc/pkg/domain/interfaces"
	"github.com/secmon-lab/ghloc/pkg/infra"
)

// SleepFunc blocks for d or until ctx is done.
type SleepFunc func(ctx context.Context, d time.Duration) error

type UseCase struct {
	clients       *infra.Clients
	stdout        io.Writer
	sleep         SleepFunc
	storagePrefix string
}

var _ interfaces.UseCase = (*UseCase)(nil)

type Option func(*UseCase)

// WithStdout sets the writer of the user facing messages. Default is os.Stdout.
func WithStdout(w io.Writer) Option {
	return func(x *UseCase) {
		x.stdout = w
	}
}

// WithSleep replaces the rate limit pause.
func WithSleep(sleep SleepFunc) Option {
	return func(x *UseCase) {
		x.sleep = sleep
	}
}

// WithStoragePrefix sets the object prefix of uploaded reports.
func WithStoragePrefix(prefix string) Option {
	return func(x *UseCase) {
		x.storagePrefix = prefix
	}
}

func New(clients *infra.Clients, options ...Option) *UseCase {
	uc := &UseCase{
		clients: clients,
		stdout:  os.Stdout,
		sleep:   sleepContext,
	}

	for _, opt := range options {
		opt(uc)
	}

	return uc
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

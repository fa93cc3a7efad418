package safe

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/secmon-lab/ghloc/pkg/utils/logging"
)

// Close closes the resource and logs the error if any. nil and io.EOF are ignored.
func Close(ctx context.Context, closer io.Closer) {
	if closer == nil {
		return
	}
	if err := closer.Close(); err != nil && !errors.Is(err, io.EOF) {
		logging.From(ctx).Warn("Fail to close resource", "error", err)
	}
}

// Remove removes the file and logs the error if any. A missing file is not an error.
func Remove(ctx context.Context, path string) {
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		logging.From(ctx).Warn("Fail to remove file", "path", path, "error", err)
	}
}

package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/m-mizutani/clog"
	"github.com/m-mizutani/clog/hooks"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/masq"
	"github.com/secmon-lab/ghloc/pkg/domain/types"
)

var defaultLogger = slog.New(slog.NewTextHandler(os.Stderr, nil))

func init() {
	_ = Configure("text", "info", "stderr")
}

// Default returns the default logger
func Default() *slog.Logger {
	return defaultLogger
}

var levelMap = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// Configure replaces the default logger. Logs go to stderr for "-" because stdout carries the run summary.
func Configure(logFormat, logLevel, logOutput string) error {
	level, ok := levelMap[logLevel]
	if !ok {
		return goerr.Wrap(types.ErrInvalidOption, "invalid log level", goerr.V("value", logLevel))
	}

	w, err := openOutput(logOutput)
	if err != nil {
		return err
	}

	handler, err := newHandler(logFormat, level, w)
	if err != nil {
		return err
	}

	defaultLogger = slog.New(handler)
	return nil
}

func openOutput(logOutput string) (io.Writer, error) {
	switch logOutput {
	case "stdout":
		return os.Stdout, nil
	case "stderr", "-":
		return os.Stderr, nil
	}

	fd, err := os.Create(filepath.Clean(logOutput))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open log file", goerr.V("path", logOutput))
	}
	return fd, nil
}

// newFilter masks GitHub credentials. Raw token strings are caught by their well known prefixes.
func newFilter() func(groups []string, a slog.Attr) slog.Attr {
	return masq.New(
		masq.WithTag("secret"),
		masq.WithType[types.GitHubToken](masq.MaskWithSymbol('*', 16)),
		masq.WithType[types.GitHubAppPrivateKey](masq.MaskWithSymbol('*', 16)),
		masq.WithContain("ghp_"),
		masq.WithContain("github_pat_"),
		masq.WithContain("PRIVATE KEY-----"),
	)
}

func newHandler(logFormat string, level slog.Level, w io.Writer) (slog.Handler, error) {
	filter := newFilter()

	switch logFormat {
	case "text":
		return clog.New(
			clog.WithWriter(w),
			clog.WithLevel(level),
			clog.WithSource(true),
			clog.WithColorMap(&clog.ColorMap{
				Level: map[slog.Level]*color.Color{
					slog.LevelDebug: color.New(color.FgGreen, color.Bold),
					slog.LevelInfo:  color.New(color.FgCyan, color.Bold),
					slog.LevelWarn:  color.New(color.FgYellow, color.Bold),
					slog.LevelError: color.New(color.FgRed, color.Bold),
				},
				LevelDefault: color.New(color.FgBlue, color.Bold),
				Time:         color.New(color.FgWhite),
				Message:      color.New(color.FgHiWhite),
				AttrKey:      color.New(color.FgHiCyan),
				AttrValue:    color.New(color.FgHiWhite),
			}),
			clog.WithAttrHook(hooks.GoErr()),
			clog.WithReplaceAttr(filter),
		), nil

	case "json":
		return slog.NewJSONHandler(w, &slog.HandlerOptions{
			AddSource:   true,
			Level:       level,
			ReplaceAttr: filter,
		}), nil
	}

	return nil, goerr.Wrap(types.ErrInvalidOption, "invalid log format, should be 'json' or 'text'", goerr.V("value", logFormat))
}

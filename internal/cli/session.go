package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mmynk/projectbook/internal/config"
	"github.com/mmynk/projectbook/internal/service"
	"github.com/mmynk/projectbook/internal/storage"
	"github.com/mmynk/projectbook/internal/storage/jsonfile"
	"github.com/mmynk/projectbook/internal/storage/sqlite"
	"github.com/mmynk/projectbook/pkg/logging"
)

// session is the resolved configuration shared by every subcommand.
type session struct {
	prefs  config.Prefs
	logger *slog.Logger
}

// newSession resolves preferences in order: file, environment, flags.
func newSession(opts *RootOptions, stderr io.Writer) (*session, error) {
	prefs, err := resolvePrefs(opts, os.Getenv)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "invalid preferences", err)
	}

	level := logging.ParseLevel(prefs.LogLevel)
	if opts.Verbose {
		level = slog.LevelDebug
	}
	return &session{prefs: prefs, logger: logging.New(stderr, level)}, nil
}

func resolvePrefs(opts *RootOptions, getenv func(string) string) (config.Prefs, error) {
	prefs, err := config.Load(opts.PrefsPath)
	if err != nil {
		return config.Prefs{}, err
	}
	prefs = prefs.WithEnv(getenv)
	if opts.DataFile != "" {
		prefs.DataFile = opts.DataFile
	}
	if opts.Backend != "" {
		prefs.Backend = opts.Backend
	}
	if err := prefs.Validate(); err != nil {
		return config.Prefs{}, err
	}
	return prefs, nil
}

// open loads the book from the configured store.
func (s *session) open(ctx context.Context, opts ...service.Option) (*service.BookService, error) {
	store, err := openStore(s.prefs)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "failed to open data file", err)
	}
	svc, err := service.Open(ctx, store, s.prefs, s.logger, opts...)
	if err != nil {
		_ = store.Close()
		return nil, WrapExitError(ExitCommandError, "failed to open project book", err)
	}
	return svc, nil
}

func openStore(prefs config.Prefs) (storage.Store, error) {
	switch prefs.Backend {
	case config.BackendJSON:
		return jsonfile.New(prefs.DataFile), nil
	case config.BackendSQLite:
		return sqlite.New(prefs.DataFile)
	default:
		return nil, fmt.Errorf("unknown backend %q", prefs.Backend)
	}
}

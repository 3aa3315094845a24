// Package service hosts the project book behind a single lock: it parses
// input, executes the command and persists the result.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/mmynk/projectbook/internal/command"
	"github.com/mmynk/projectbook/internal/config"
	"github.com/mmynk/projectbook/internal/metrics"
	"github.com/mmynk/projectbook/internal/middleware"
	"github.com/mmynk/projectbook/internal/models"
	"github.com/mmynk/projectbook/internal/parser"
	"github.com/mmynk/projectbook/internal/state"
	"github.com/mmynk/projectbook/internal/storage"
)

// BookService owns the model and its store. All methods are safe for
// concurrent use; commands run one at a time.
type BookService struct {
	mu      sync.Mutex
	model   *state.Manager
	store   storage.Store
	logger  *slog.Logger
	metrics *metrics.Metrics
	handle  middleware.HandlerFunc
}

// Option configures a BookService.
type Option func(*options)

type options struct {
	metrics *metrics.Metrics
	now     func() time.Time
}

// WithMetrics records command outcomes and book size in m.
func WithMetrics(m *metrics.Metrics) Option {
	return func(o *options) { o.metrics = m }
}

// WithClock replaces time.Now for project timestamps.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// Open loads the book from store and returns a service around it. A store
// that has never been saved yields an empty book.
func Open(ctx context.Context, store storage.Store, prefs config.Prefs, logger *slog.Logger, opts ...Option) (*BookService, error) {
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}

	snap, err := store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load project book: %w", err)
	}
	if snap == nil {
		logger.Info("No saved project book, starting empty", "path", store.Path())
		snap = &storage.Snapshot{Version: storage.SnapshotVersion}
	}
	b, err := snap.ToBook(logger)
	if err != nil {
		return nil, fmt.Errorf("failed to load project book: %w", err)
	}
	logger.Info("Project book loaded",
		"path", store.Path(),
		"persons", len(b.Persons()),
		"projects", len(b.Projects()),
	)

	s := &BookService{
		model:   state.NewManager(b, prefs, state.WithClock(o.now)),
		store:   store,
		logger:  logger,
		metrics: o.metrics,
	}
	interceptors := []middleware.Interceptor{middleware.LoggingInterceptor(logger)}
	if o.metrics != nil {
		interceptors = append(interceptors, middleware.MetricsInterceptor(o.metrics))
		s.updateBookSize()
	}
	s.handle = middleware.Chain(s.run, interceptors...)
	return s, nil
}

// Execute parses and runs one line of input. The book is saved after every
// successful command. A failed save is returned as an error even though the
// command has been applied in memory.
func (s *BookService) Execute(ctx context.Context, input string) (command.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	resp, err := s.handle(ctx, input)
	return resp.Result, err
}

func (s *BookService) run(ctx context.Context, input string) (middleware.Response, error) {
	cmd, err := parser.Parse(input)
	if err != nil {
		return middleware.Response{}, err
	}
	resp := middleware.Response{Command: cmd.Name()}

	resp.Result, err = cmd.Execute(s.model)
	if err != nil {
		return resp, err
	}

	if err := s.store.Save(ctx, storage.FromBook(s.model.Book())); err != nil {
		return resp, fmt.Errorf("failed to save project book: %w", err)
	}
	s.updateBookSize()
	return resp, nil
}

func (s *BookService) updateBookSize() {
	if s.metrics == nil {
		return
	}
	s.metrics.SetBookSize(len(s.model.Book().Persons()), len(s.model.Book().Projects()))
}

// Snapshot captures the current book.
func (s *BookService) Snapshot() *storage.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return storage.FromBook(s.model.Book())
}

// Persons returns the persons currently shown.
func (s *BookService) Persons() []*models.Person {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.model.FilteredPersons()
}

// Projects returns the projects currently shown.
func (s *BookService) Projects() []*models.Project {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.model.FilteredProjects()
}

func (s *BookService) ProjectsOf(p *models.Person) []*models.Project {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.model.ProjectsOf(p)
}

func (s *BookService) MembersOf(p *models.Project) []*models.Person {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.model.MembersOf(p)
}

func (s *BookService) Prefs() config.Prefs {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.model.Prefs()
}

// Close closes the store.
func (s *BookService) Close() error {
	return s.store.Close()
}

// Package service wires the season pipeline to its feed and corpus
// and owns the run lifecycle on behalf of the CLI.
package service

import (
	"context"
	"sync"

	corpus "github.com/okian/boxscore/internal/adapters/corpus"
	feed "github.com/okian/boxscore/internal/adapters/feed"
	"github.com/okian/boxscore/internal/config"
	"github.com/okian/boxscore/internal/domain/types"
	"github.com/okian/boxscore/internal/pipeline"
	"github.com/okian/boxscore/pkg/logger"
)

// Service assembles the fetcher, the writer and the orchestrator from
// configuration and runs one season retrieval.
type Service struct {
	mu sync.RWMutex

	// Core components
	fetcher      feed.Fetcher
	writer       corpus.Writer
	orchestrator *pipeline.Orchestrator

	// Configuration
	cfg *config.Config

	// State
	started bool

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithConfig sets the loaded configuration.
func WithConfig(cfg *config.Config) Option {
	return func(s *Service) {
		if cfg != nil {
			s.cfg = cfg
		}
	}
}

// WithFetcher injects a feed, replacing the HTTP client built from
// configuration.
func WithFetcher(f feed.Fetcher) Option {
	return func(s *Service) {
		if f != nil {
			s.fetcher = f
		}
	}
}

// WithWriter injects a corpus writer, replacing the filesystem writer
// built from configuration.
func WithWriter(w corpus.Writer) Option {
	return func(s *Service) {
		if w != nil {
			s.writer = w
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		cfg: config.New(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Start builds the components that were not injected. Safe to call
// once before Run; later calls are no-ops.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	if s.logger == nil {
		s.logger = logger.Get()
	}

	if s.fetcher == nil {
		s.fetcher = feed.New(
			feed.WithBaseURL(s.cfg.BaseURL),
			feed.WithTimeout(s.cfg.HTTPTimeout),
			feed.WithFetchLimit(s.cfg.FetchConcurrency),
		)
	}

	if s.writer == nil {
		s.writer = corpus.NewFS(corpus.WithRoot(s.cfg.OutputDir))
	}

	orch, err := pipeline.New(
		pipeline.WithFetcher(s.fetcher),
		pipeline.WithWriter(s.writer),
		pipeline.WithSeasonDays(s.cfg.SeasonDays),
		pipeline.WithTeamBatchSize(s.cfg.TeamBatchSize),
		pipeline.WithDayConcurrency(s.cfg.DayConcurrency),
		pipeline.WithWriteConcurrency(s.cfg.WriteConcurrency),
	)
	if err != nil {
		return err
	}
	s.orchestrator = orch

	s.started = true
	s.logger.Info(ctx, "service started",
		logger.String("base_url", s.cfg.BaseURL),
		logger.String("output_dir", s.cfg.OutputDir),
		logger.Int("season_days", s.cfg.SeasonDays),
		logger.Int("day_concurrency", s.cfg.DayConcurrency),
	)

	return nil
}

// Stop marks the service stopped. The pipeline holds no background
// work once Run has returned, so there is nothing else to tear down.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}

	s.started = false
	s.logger.Info(context.Background(), "service stopped")
}

// Run parses the season argument and executes the whole season,
// returning the first error the pipeline reported.
func (s *Service) Run(ctx context.Context, seasonArg string) error {
	season, err := pipeline.ParseSeason(seasonArg)
	if err != nil {
		return err
	}

	if err := s.Start(ctx); err != nil {
		return err
	}

	s.mu.RLock()
	orch := s.orchestrator
	s.mu.RUnlock()

	return orch.Run(ctx, season)
}

// Progress returns the orchestrator's snapshot for the status listener.
func (s *Service) Progress() types.Progress {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.orchestrator == nil {
		return types.Progress{}
	}

	return s.orchestrator.Progress()
}

package core

import (
	"context"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"github.com/hollowbeak/stacks/pkg/database"
	"github.com/hollowbeak/stacks/pkg/metrics"
	"github.com/hollowbeak/stacks/pkg/queue"
)

// Options configures the engine service.
type Options struct {
	Pool PoolOptions

	// ScanSchedule is a cron expression for periodic scans of every
	// library. Empty disables scheduled scans.
	ScanSchedule string
}

func (o *Options) SetDefaults() {
	o.Pool.SetDefaults()
}

// Service ties the engine together: emitter, dispatcher, consumer pool and
// the scheduled library scans.
type Service struct {
	db   database.Database
	qu   queue.Queue
	emit *Emitter
	pool *Pool
	cron *cron.Cron
	opts *Options
	log  zerolog.Logger
}

func NewService(db database.Database, qu queue.Queue, sink metrics.Sink, col *Collaborators, opts *Options, log zerolog.Logger) *Service {
	if opts == nil {
		opts = &Options{}
	}
	opts.SetDefaults()

	emit := NewEmitter(qu, db)
	disp := NewDispatcher(db, emit, sink, col, log)
	return &Service{
		db:   db,
		qu:   qu,
		emit: emit,
		pool: NewPool(qu, disp, &opts.Pool, log),
		opts: opts,
		log:  log,
	}
}

// Emitter exposes the producer side to callers outside the engine.
func (s *Service) Emitter() *Emitter {
	return s.emit
}

// Start launches the consumer pool and, if configured, the scan schedule.
func (s *Service) Start(ctx context.Context) error {
	s.pool.Start(ctx)

	if s.opts.ScanSchedule == "" {
		return nil
	}
	s.cron = cron.New()
	_, err := s.cron.AddFunc(s.opts.ScanSchedule, func() {
		if err := s.ScanAllLibraries(ctx); err != nil {
			s.log.Error().Err(err).Msg("scheduled scan failed")
		}
	})
	if err != nil {
		return err
	}
	s.cron.Start()
	s.log.Info().Str("schedule", s.opts.ScanSchedule).Msg("scheduled library scans")
	return nil
}

// Stop halts the schedule and drains the pool.
func (s *Service) Stop() {
	if s.cron != nil {
		<-s.cron.Stop().Done()
	}
	s.pool.Stop()
}

// ScanAllLibraries emits one ScanLibrary per known library.
func (s *Service) ScanAllLibraries(ctx context.Context) error {
	libs, err := s.db.Libraries()
	if err != nil {
		return err
	}
	for _, lib := range libs {
		if err = s.emit.ScanLibrary(ctx, lib.ID); err != nil {
			return err
		}
	}
	return nil
}

// Backlog reports the number of enqueued tasks and running consumers.
func (s *Service) Backlog(ctx context.Context) (int64, int, error) {
	n, err := s.qu.Len(ctx)
	if err != nil {
		return 0, 0, err
	}
	return n, s.pool.Running(), nil
}

package api

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/hollowbeak/stacks/internal/core"
	"github.com/hollowbeak/stacks/internal/utils"
	"github.com/hollowbeak/stacks/pkg/database"
	"github.com/hollowbeak/stacks/pkg/errors"
	"github.com/hollowbeak/stacks/pkg/media"
	"github.com/hollowbeak/stacks/pkg/metrics"
	"github.com/hollowbeak/stacks/pkg/queue"
	"github.com/hollowbeak/stacks/pkg/structs"
)

// Service implements API on top of the engine. It validates requests and
// resolves their targets before emitting; the engine itself trusts task
// payloads and treats vanished targets as stale.
type Service struct {
	db   database.Database
	qu   queue.Queue
	core *core.Service
	log  zerolog.Logger
}

// New builds the full service: store, transport, media collaborators and
// engine. Empty database / queue URLs run in-memory.
func New(opts *Options) (API, error) {
	if opts == nil {
		opts = OptionsInMemoryDefault()
	}
	log := zerolog.New(os.Stderr).With().Timestamp().Logger()

	var err error
	var db database.Database
	if opts.Database.URL == "" {
		db = database.NewMemory()
	} else {
		db, err = database.NewPostgres(&opts.Database)
		if err != nil {
			return nil, err
		}
	}

	var qu queue.Queue
	if opts.Queue.URL == "" {
		qu = queue.NewMemoryQueue()
	} else {
		qu, err = queue.NewRedisQueue(&opts.Queue)
		if err != nil {
			db.Close()
			return nil, err
		}
	}

	sink := metrics.NewPrometheus(prometheus.DefaultRegisterer)
	return NewWithComponents(db, qu, sink, Collaborators(db, &opts.Media, log), opts, log), nil
}

// NewWithComponents wires a service over pre-built components. Intended for
// tests and for embedders that bring their own collaborators.
func NewWithComponents(db database.Database, qu queue.Queue, sink metrics.Sink, col *core.Collaborators, opts *Options, log zerolog.Logger) API {
	if opts == nil {
		opts = OptionsInMemoryDefault()
	}
	return &Service{
		db:   db,
		qu:   qu,
		core: core.NewService(db, qu, sink, col, &opts.Engine, log),
		log:  log,
	}
}

// Collaborators builds the default media-backed collaborator set, with the
// media service filling every capability.
func Collaborators(db database.Database, opts *media.Options, log zerolog.Logger) *core.Collaborators {
	m := media.New(db, opts, log)
	return &core.Collaborators{
		Scanner:    m,
		Analyzer:   m,
		Thumbnails: m,
		Converter:  m,
		Metadata:   m,
		Hasher:     m,
		Importer:   m,
		Indexer:    m,
		Lifecycle:  m,
	}
}

func (s *Service) CreateLibrary(ctx context.Context, req *structs.CreateLibraryRequest) (*structs.Library, error) {
	if req == nil || req.Root == "" {
		return nil, errors.ErrNoLibraryRoot
	}
	if !filepath.IsAbs(req.Root) {
		return nil, fmt.Errorf("%w: library root must be absolute, got %q", errors.ErrInvalidArg, req.Root)
	}
	name := req.Name
	if name == "" {
		name = filepath.Base(req.Root)
	}

	now := time.Now().Unix()
	l := &structs.Library{
		ID:        utils.NewRandomID(),
		Name:      name,
		Root:      req.Root,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.db.InsertLibrary(l); err != nil {
		return nil, err
	}

	// a fresh library gets walked straight away
	return l, s.core.Emitter().ScanLibrary(ctx, l.ID)
}

func (s *Service) Libraries(ctx context.Context) ([]*structs.Library, error) {
	return s.db.Libraries()
}

func (s *Service) Scan(ctx context.Context, libraryID string) error {
	if err := s.resolveLibrary(libraryID); err != nil {
		return err
	}
	return s.core.Emitter().ScanLibrary(ctx, libraryID)
}

func (s *Service) ScanAll(ctx context.Context) error {
	return s.core.ScanAllLibraries(ctx)
}

func (s *Service) ImportBook(ctx context.Context, req *structs.ImportBookRequest) error {
	if req == nil || req.SourceFile == "" {
		return fmt.Errorf("%w: import requires a source file", errors.ErrInvalidArg)
	}
	if req.SeriesID == "" {
		return fmt.Errorf("%w: import requires a series", errors.ErrInvalidArg)
	}
	series, err := s.db.Series(req.SeriesID)
	if err != nil {
		return err
	}
	if series == nil {
		return fmt.Errorf("%w: no series %q", errors.ErrInvalidArg, req.SeriesID)
	}

	mode := req.CopyMode
	switch mode {
	case "":
		mode = structs.CopyModeCopy
	case structs.CopyModeCopy, structs.CopyModeMove, structs.CopyModeHardlink:
	default:
		return fmt.Errorf("%w: copy mode %q", errors.ErrNotSupported, mode)
	}

	return s.core.Emitter().ImportBook(
		ctx, req.SeriesID, req.SourceFile, mode,
		req.DestinationName, req.UpgradeBookID, structs.PriorityNormal,
	)
}

func (s *Service) RebuildIndex(ctx context.Context, refs []*structs.ObjectRef) error {
	for _, ref := range refs {
		if ref == nil || ref.ID == "" {
			return fmt.Errorf("%w: index refs need an id", errors.ErrInvalidArg)
		}
		switch ref.Kind {
		case structs.KindLibrary, structs.KindSeries, structs.KindBook:
		default:
			return fmt.Errorf("%w: unknown kind %q", errors.ErrInvalidArg, ref.Kind)
		}
	}
	return s.core.Emitter().RebuildIndex(ctx, refs)
}

func (s *Service) EmptyTrash(ctx context.Context, libraryID string) error {
	if err := s.resolveLibrary(libraryID); err != nil {
		return err
	}
	return s.core.Emitter().EmptyTrash(ctx, libraryID)
}

func (s *Service) QueueStats(ctx context.Context) (*structs.QueueStats, error) {
	pending, workers, err := s.core.Backlog(ctx)
	if err != nil {
		return nil, err
	}
	return &structs.QueueStats{Pending: pending, Workers: workers}, nil
}

// Run starts the consumer pool and scheduled scans. It returns once the
// engine is running; Close stops it.
func (s *Service) Run(ctx context.Context) error {
	return s.core.Start(ctx)
}

func (s *Service) Close() error {
	s.core.Stop()
	if err := s.qu.Close(); err != nil {
		return err
	}
	return s.db.Close()
}

func (s *Service) resolveLibrary(id string) error {
	l, err := s.db.Library(id)
	if err != nil {
		return err
	}
	if l == nil {
		return fmt.Errorf("%w: no library %q", errors.ErrInvalidArg, id)
	}
	return nil
}

// Package http serves the stacks API over HTTP.
package http

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/hollowbeak/stacks/pkg/api"
	"github.com/hollowbeak/stacks/pkg/structs"
)

const (
	wait = 30 * time.Second
)

type Server struct {
	addr       string
	debug      bool
	svc        api.API
	log        zerolog.Logger
	exit       chan os.Signal
	httpserver *http.Server
}

func NewServer(addr string, debug bool, log zerolog.Logger) *Server {
	return &Server{
		addr:  addr,
		debug: debug,
		log:   log,
		exit:  make(chan os.Signal, 1),
	}
}

func (s *Server) ServeForever(svc api.API) error {
	s.svc = svc

	router := s.router()

	if s.debug {
		s.log.Info().Msg("debug enabled, adding per-request logging middleware")
		router.Use(loggingMiddleware(s.log))
	}

	s.httpserver = &http.Server{
		Handler:      router,
		Addr:         s.addr,
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
	}

	go func() {
		s.log.Info().Str("addr", s.httpserver.Addr).Msg("listening")
		if err := s.httpserver.ListenAndServe(); err != nil {
			s.log.Error().Err(err).Msg("server stopped")
		}
	}()

	signal.Notify(s.exit, os.Interrupt)
	<-s.exit

	ctx, cancel := context.WithTimeout(context.Background(), wait)
	defer cancel()
	return s.httpserver.Shutdown(ctx)
}

func (s *Server) router() *mux.Router {
	router := mux.NewRouter()
	router.HandleFunc("/healthz", s.Health).Methods(http.MethodGet)
	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	router.HandleFunc("/api/v1/libraries", s.Libraries).Methods(http.MethodGet, http.MethodPost)
	router.HandleFunc("/api/v1/libraries/scan", s.ScanAll).Methods(http.MethodPost)
	router.HandleFunc("/api/v1/libraries/{id}/scan", s.Scan).Methods(http.MethodPost)
	router.HandleFunc("/api/v1/libraries/{id}/trash/empty", s.EmptyTrash).Methods(http.MethodPost)
	router.HandleFunc("/api/v1/books/import", s.ImportBook).Methods(http.MethodPost)
	router.HandleFunc("/api/v1/index/rebuild", s.RebuildIndex).Methods(http.MethodPost)
	router.HandleFunc("/api/v1/queue", s.QueueStats).Methods(http.MethodGet)
	return router
}

func (s *Server) Libraries(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.getLibraries(w, r)
	case http.MethodPost:
		s.createLibrary(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (s *Server) getLibraries(w http.ResponseWriter, r *http.Request) {
	items, err := s.svc.Libraries(r.Context())
	if err != nil {
		http.Error(w, err.Error(), mapError(err))
		return
	}

	err = json.NewEncoder(w).Encode(items)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (s *Server) createLibrary(w http.ResponseWriter, r *http.Request) {
	clr := &structs.CreateLibraryRequest{}
	err := unmarshalJson(w, r, clr)
	if err != nil {
		return
	}

	resp, err := s.svc.CreateLibrary(r.Context(), clr)
	if err != nil {
		http.Error(w, err.Error(), mapError(err))
		return
	}

	err = json.NewEncoder(w).Encode(resp)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (s *Server) Scan(w http.ResponseWriter, r *http.Request) {
	s.enqueueOp(w, r, s.svc.Scan)
}

func (s *Server) EmptyTrash(w http.ResponseWriter, r *http.Request) {
	s.enqueueOp(w, r, s.svc.EmptyTrash)
}

// enqueueOp handles the fire-and-forget endpoints that target one library.
func (s *Server) enqueueOp(w http.ResponseWriter, r *http.Request, fn func(context.Context, string) error) {
	id := mux.Vars(r)["id"]

	if err := fn(r.Context(), id); err != nil {
		http.Error(w, err.Error(), mapError(err))
		return
	}
	s.ok(w)
}

func (s *Server) ScanAll(w http.ResponseWriter, r *http.Request) {
	if err := s.svc.ScanAll(r.Context()); err != nil {
		http.Error(w, err.Error(), mapError(err))
		return
	}
	s.ok(w)
}

func (s *Server) ImportBook(w http.ResponseWriter, r *http.Request) {
	ibr := &structs.ImportBookRequest{}
	err := unmarshalJson(w, r, ibr)
	if err != nil {
		return
	}

	if err := s.svc.ImportBook(r.Context(), ibr); err != nil {
		http.Error(w, err.Error(), mapError(err))
		return
	}
	s.ok(w)
}

func (s *Server) RebuildIndex(w http.ResponseWriter, r *http.Request) {
	refs := []*structs.ObjectRef{}
	err := unmarshalJson(w, r, &refs)
	if err != nil {
		return
	}

	if err := s.svc.RebuildIndex(r.Context(), refs); err != nil {
		http.Error(w, err.Error(), mapError(err))
		return
	}
	s.ok(w)
}

func (s *Server) QueueStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.svc.QueueStats(r.Context())
	if err != nil {
		http.Error(w, err.Error(), mapError(err))
		return
	}

	err = json.NewEncoder(w).Encode(stats)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	json.NewEncoder(w).Encode(map[string]bool{"ok": true})
}

func (s *Server) ok(w http.ResponseWriter) {
	json.NewEncoder(w).Encode(map[string]bool{"ok": true})
}

func (s *Server) Close() error {
	s.exit <- os.Interrupt
	return nil
}

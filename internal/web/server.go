// Package web serves the viewer UI: area and dataset navigation, the
// filter form, the rendered table, xlsx export, and the submission form.
// It is presentation glue over the view pipeline; all table logic lives in
// the grid, filter, and columns packages.
package web

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"inventory_viewer/internal/app"
	"inventory_viewer/internal/export"
	"inventory_viewer/internal/fetcher"
	"inventory_viewer/internal/filter"
	"inventory_viewer/internal/grid"
	"inventory_viewer/internal/remote"
	"inventory_viewer/internal/view"

	"github.com/rs/zerolog/log"
)

var kinds = []grid.Kind{grid.KindStock, grid.KindStockAbb, grid.KindStockSupcon, grid.KindEquipment}

// Server holds the single mounted view: one (area, kind) pair, its
// fetcher, and the client-local filter state. Filter state resets whenever
// the mount changes and is never persisted.
type Server struct {
	cfg    app.Config
	client *remote.Client // nil when the backend reads the sheet directly

	mu      sync.Mutex
	fetcher *fetcher.Fetcher
	area    string
	kind    grid.Kind
	state   filter.State
	mounted bool
	loadErr error
}

// NewServer wires a server over a grid source. client may be nil, which
// disables the submission form.
func NewServer(cfg app.Config, source remote.Source, client *remote.Client) *Server {
	return &Server{
		cfg:     cfg,
		client:  client,
		fetcher: fetcher.New(source, cfg.PollInterval),
	}
}

// Handler returns the routed HTTP handler.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/export", s.handleExport)
	mux.HandleFunc("/submit", s.handleSubmit)
	return mux
}

// ListenAndServe starts the server on the configured address.
func (s *Server) ListenAndServe() error {
	log.Info().Str("addr", s.cfg.ListenAddr).Msg("Serving inventory viewer")
	return http.ListenAndServe(s.cfg.ListenAddr, s.Handler())
}

type page struct {
	Areas      []string
	Kinds      []grid.Kind
	Area       string
	Kind       grid.Kind
	LoadError  string
	HasGrid    bool
	Model      view.Model
	RenderCols []int
	CanSubmit  bool
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	s.mu.Lock()
	s.syncMountLocked(r)
	s.applyFilterParamsLocked(r)
	p := s.pageLocked()
	s.mu.Unlock()

	if err := indexTmpl.Execute(w, p); err != nil {
		log.Error().Err(err).Msg("Failed to render index page")
	}
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	p := s.pageLocked()
	area, kind := s.area, s.kind
	s.mu.Unlock()

	if !p.HasGrid {
		http.Error(w, "no grid loaded", http.StatusConflict)
		return
	}

	name := fmt.Sprintf("%s_%s_%s.xlsx", area, kind, time.Now().Format("20060102"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))

	if err := export.Write(w, p.Model); err != nil {
		log.Error().Err(err).Msg("Failed to write export workbook")
	}
}

func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if s.client == nil {
		http.Error(w, "submissions need the web endpoint backend", http.StatusNotImplemented)
		return
	}

	area := r.PostFormValue("area")
	kind, ok := grid.ParseKind(r.PostFormValue("type"))
	if !s.knownArea(area) || !ok {
		http.Error(w, "unknown area or dataset", http.StatusBadRequest)
		return
	}
	values := app.SplitList(r.PostFormValue("values"))
	if len(values) == 0 {
		http.Error(w, "nothing to submit", http.StatusBadRequest)
		return
	}

	if err := s.client.SubmitEntry(r.Context(), area, kind, values); err != nil {
		log.Error().Err(err).Str("area", area).Str("type", string(kind)).Msg("Submission failed")
		http.Error(w, fmt.Sprintf("submission failed: %v", err), http.StatusBadGateway)
		return
	}

	http.Redirect(w, r, fmt.Sprintf("/?area=%s&type=%s", area, kind), http.StatusSeeOther)
}

// syncMountLocked mounts the (area, kind) pair named in the request. A
// changed pair resets the filter state and refetches; an unchanged pair
// with a healthy mount is left alone.
func (s *Server) syncMountLocked(r *http.Request) {
	area := r.URL.Query().Get("area")
	if !s.knownArea(area) {
		area = s.cfg.Areas[0]
	}
	kind, ok := grid.ParseKind(r.URL.Query().Get("type"))
	if !ok {
		kind = grid.KindStock
	}

	if s.mounted && s.loadErr == nil && area == s.area && kind == s.kind {
		return
	}

	s.area, s.kind = area, kind
	s.state = filter.NewState()
	s.loadErr = s.fetcher.Mount(r.Context(), area, kind)
	s.mounted = true
}

// applyFilterParamsLocked folds the request's facet and search parameters
// into the filter state. An absent parameter means All. A changed area
// selection goes through SelectArea so the cabinet selection resets; the
// request's cabinet value is ignored in that case.
func (s *Server) applyFilterParamsLocked(r *http.Request) {
	q := r.URL.Query()

	s.state.Type = facetValue(q.Get("ftype"))
	if area := facetValue(q.Get("farea")); area != s.state.Area {
		s.state.SelectArea(area)
	} else {
		s.state.Cabinet = facetValue(q.Get("fcabinet"))
	}
	s.state.Search = q.Get("q")
}

func facetValue(v string) string {
	if v == "" {
		return filter.All
	}
	return v
}

func (s *Server) pageLocked() page {
	p := page{
		Areas:     s.cfg.Areas,
		Kinds:     kinds,
		Area:      s.area,
		Kind:      s.kind,
		CanSubmit: s.client != nil,
	}
	if s.loadErr != nil {
		p.LoadError = s.loadErr.Error()
		return p
	}
	g, ok := s.fetcher.Snapshot()
	if !ok {
		return p
	}
	p.HasGrid = true
	p.Model = view.Build(g, s.state)
	p.RenderCols = p.Model.RenderColumns()
	return p
}

func (s *Server) knownArea(area string) bool {
	for _, a := range s.cfg.Areas {
		if a == area {
			return true
		}
	}
	return false
}

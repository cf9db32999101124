package webd

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"honnef.co/go/venn"
)

func pingPong(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("pong"))
}

type webDaemonStatus struct {
	StartedAt time.Time `json:"started_at"`
	Uptime    string    `json:"uptime"`
	Diagrams  int       `json:"diagrams"`
	Cached    int       `json:"cached"`
}

func (s *WebDaemon) statusReport(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, webDaemonStatus{
		StartedAt: s.started,
		Uptime:    time.Since(s.started).Round(time.Second).String(),
		Diagrams:  len(s.parsed),
		Cached:    s.cache.Len(),
	})
}

type diagramSummary struct {
	Key     string `json:"key"`
	Name    string `json:"name"`
	N       int    `json:"n"`
	Regions int    `json:"regions"`
}

func (s *WebDaemon) listDiagrams(w http.ResponseWriter, r *http.Request) {
	out := make([]diagramSummary, 0, len(s.diagrams.Descriptors))
	for _, desc := range s.diagrams.Descriptors {
		out = append(out, diagramSummary{
			Key:     desc.Key,
			Name:    desc.Name,
			N:       desc.N,
			Regions: 1<<desc.N - 1,
		})
	}
	s.writeJSON(w, out)
}

// catalogResponse mirrors the exported diagram format: regions[i] holds the
// path of region i and regions[0] is always empty.
type catalogResponse struct {
	Name    string   `json:"name"`
	N       int      `json:"n"`
	Regions []string `json:"regions"`
}

func (s *WebDaemon) diagramCatalog(w http.ResponseWriter, r *http.Request) {
	cat, ok := s.catalogForRequest(w, r)
	if !ok {
		return
	}
	s.writeJSON(w, catalogResponse{Name: cat.Name, N: cat.N, Regions: cat.Paths()})
}

type regionResponse struct {
	Index      int     `json:"index"`
	Membership []int   `json:"membership"`
	Popcount   int     `json:"popcount"`
	Path       string  `json:"path"`
	Area       float64 `json:"area"`
	Empty      bool    `json:"empty,omitempty"`
}

func (s *WebDaemon) diagramRegion(w http.ResponseWriter, r *http.Request) {
	cat, ok := s.catalogForRequest(w, r)
	if !ok {
		return
	}
	index, err := strconv.Atoi(mux.Vars(r)["index"])
	if err != nil {
		http.Error(w, "Invalid region index", http.StatusBadRequest)
		return
	}
	e, ok := cat.Entry(index)
	if !ok {
		http.Error(w, "No such region", http.StatusNotFound)
		return
	}
	bits := make([]int, len(e.Membership))
	for i, in := range e.Membership {
		if in {
			bits[i] = 1
		}
	}
	s.writeJSON(w, regionResponse{
		Index:      e.Index,
		Membership: bits,
		Popcount:   e.Popcount,
		Path:       e.Path,
		Area:       e.Area,
		Empty:      e.Empty,
	})
}

func (s *WebDaemon) diagramGeoJSON(w http.ResponseWriter, r *http.Request) {
	cat, ok := s.catalogForRequest(w, r)
	if !ok {
		return
	}
	s.writeJSON(w, cat.FeatureCollection())
}

// catalogForRequest looks up the diagram named in the request and returns
// its catalog. On failure it writes the error response and returns false.
func (s *WebDaemon) catalogForRequest(w http.ResponseWriter, r *http.Request) (*venn.Catalog, bool) {
	name := mux.Vars(r)["name"]
	desc, ok := s.diagrams.Lookup(name)
	if !ok {
		http.Error(w, "No such diagram", http.StatusNotFound)
		return nil, false
	}
	cat, err := s.cache.Catalog(s.parsed[desc.Key])
	if err != nil {
		s.logger.Warn("Failed to build catalog", "diagram", desc.Key, "error", err)
		status := http.StatusInternalServerError
		if errors.Is(err, venn.ErrDegenerate) || errors.Is(err, venn.ErrInvalidConfig) {
			status = http.StatusUnprocessableEntity
		}
		http.Error(w, err.Error(), status)
		return nil, false
	}
	return cat, true
}

func (s *WebDaemon) writeJSON(w http.ResponseWriter, v any) {
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Warn("Failed to write response", "error", err)
	}
}


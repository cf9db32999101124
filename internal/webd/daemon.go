// Package webd serves region catalogs over HTTP.
package webd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"honnef.co/go/venn"
	"honnef.co/go/venn/descriptor"
)

// Config configures a [WebDaemon].
type Config struct {
	// Address is the TCP address to listen on.
	Address string
	// CacheSize is the number of catalogs kept in memory.
	CacheSize int
	// Catalog holds the options catalogs are built with.
	Catalog venn.CatalogOptions
}

// DefaultConfig returns the configuration used when none is given.
func DefaultConfig() *Config {
	return &Config{
		Address:   "localhost:8080",
		CacheSize: 16,
		Catalog:   venn.DefaultCatalogOptions,
	}
}

type WebDaemon struct {
	Config *Config

	logger   *slog.Logger
	started  time.Time
	diagrams *descriptor.Collection
	parsed   map[string]venn.Diagram
	cache    *venn.Cache
}

// NewWebDaemon returns a daemon serving the diagrams of c. Every descriptor
// must describe a valid diagram.
func NewWebDaemon(config *Config, c *descriptor.Collection) (*WebDaemon, error) {
	if config == nil {
		config = DefaultConfig()
	}
	cache, err := venn.NewCache(config.CacheSize, &config.Catalog)
	if err != nil {
		return nil, fmt.Errorf("webd: %w", err)
	}
	s := &WebDaemon{
		Config:   config,
		logger:   slog.With("d", "web"),
		started:  time.Now(),
		diagrams: c,
		parsed:   make(map[string]venn.Diagram, len(c.Descriptors)),
		cache:    cache,
	}
	for _, desc := range c.Descriptors {
		d, err := desc.Diagram()
		if err != nil {
			return nil, fmt.Errorf("webd: %w", err)
		}
		if err := d.Validate(); err != nil {
			return nil, fmt.Errorf("webd: diagram %q: %w", desc.Key, err)
		}
		s.parsed[desc.Key] = d
	}
	return s, nil
}

// Run serves HTTP on the configured address until ctx is done, then shuts
// the server down gracefully.
func (s *WebDaemon) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.Config.Address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve is like Run but accepts connections on ln.
func (s *WebDaemon) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.NewRouter(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	errc := make(chan error, 1)
	go func() {
		s.logger.Info("Starting web daemon", "address", ln.Addr().String(), "diagrams", len(s.parsed))
		errc <- srv.Serve(ln)
	}()
	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// NewRouter returns the daemon's routes.
func (s *WebDaemon) NewRouter() *mux.Router {
	router := mux.NewRouter().StrictSlash(false)
	router.Use(s.loggingMiddleware, recoveryMiddleware)

	apiRoutes := router.NewRoute().Subrouter()
	apiRoutes.Use(corsMiddleware)
	apiRoutes.Path("/ping").HandlerFunc(pingPong).Methods(http.MethodGet)

	jsonRoutes := apiRoutes.NewRoute().Subrouter()
	jsonRoutes.Use(contentTypeMiddlewareFunc("application/json"))
	jsonRoutes.Path("/status").HandlerFunc(s.statusReport).Methods(http.MethodGet)
	jsonRoutes.Path("/diagrams").HandlerFunc(s.listDiagrams).Methods(http.MethodGet)
	jsonRoutes.Path("/diagrams/{name}").HandlerFunc(s.diagramCatalog).Methods(http.MethodGet)
	jsonRoutes.Path("/diagrams/{name}/regions/{index:[0-9]+}").HandlerFunc(s.diagramRegion).Methods(http.MethodGet)

	geoRoutes := apiRoutes.NewRoute().Subrouter()
	geoRoutes.Use(contentTypeMiddlewareFunc("application/geo+json"), compressMiddleware)
	geoRoutes.Path("/diagrams/{name}/geojson").HandlerFunc(s.diagramGeoJSON).Methods(http.MethodGet)

	return router
}

// Package server provides the LaurelLatin segmentation API: a REST
// endpoint for one-shot requests and a WebSocket endpoint that streams
// sentences as they are produced.
package server

import (
	"fmt"
	"net/http"

	"github.com/FocuswithJustin/LaurelLatin/core/abbrev"
	"github.com/FocuswithJustin/LaurelLatin/core/cache"
	"github.com/FocuswithJustin/LaurelLatin/core/segment"
	"github.com/FocuswithJustin/LaurelLatin/internal/logging"
)

// Config contains server configuration options.
type Config struct {
	// Port is the TCP port to listen on.
	Port int

	// CacheSize is the maximum number of cached segmentation results
	// (0 = default).
	CacheSize int
}

// Server holds the shared segmenter and result cache behind the handlers.
type Server struct {
	segmenter *segment.Segmenter
	results   *cache.ResultCache
}

// New creates a server with the builtin Latin abbreviation set.
func New(cfg Config) *Server {
	cacheConfig := cache.DefaultConfig()
	if cfg.CacheSize > 0 {
		cacheConfig.MaxSize = cfg.CacheSize
	}

	return &Server{
		segmenter: &segment.Segmenter{
			Abbreviations: abbrev.Latin(),
			Logger:        logging.SentenceRecorder{},
		},
		results: cache.NewResultCache(cacheConfig),
	}
}

// Handler returns the complete HTTP handler including request logging.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/", s.handleRoot)
	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/segment", s.handleSegment)
	mux.HandleFunc("/ws/segment", s.handleWSSegment)

	return logging.RequestMiddleware(mux)
}

// Start starts the API server with the given configuration.
func Start(cfg Config) error {
	if cfg.Port <= 0 {
		return fmt.Errorf("invalid port: %d", cfg.Port)
	}

	s := New(cfg)

	logging.ServerStartup("segment_api", "http", cfg.Port,
		"websocket_protocol", "ws")

	addr := fmt.Sprintf(":%d", cfg.Port)
	return http.ListenAndServe(addr, s.Handler())
}

package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/FocuswithJustin/LaurelLatin/core/cache"
	"github.com/FocuswithJustin/LaurelLatin/core/cts"
	"github.com/FocuswithJustin/LaurelLatin/core/errors"
	"github.com/FocuswithJustin/LaurelLatin/core/segment"
	"github.com/FocuswithJustin/LaurelLatin/internal/logging"
)

const apiVersion = "0.1.0"

// maxRequestBytes bounds the request body; corpora beyond this belong in
// the CLI, not the API.
const maxRequestBytes = 4 << 20

// APIResponse is the standard API response wrapper.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
	Meta    *APIMeta    `json:"meta,omitempty"`
}

// APIError represents an API error.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// APIMeta contains response metadata.
type APIMeta struct {
	Timestamp string `json:"timestamp"`
}

// SegmentRequest is the request body for segmentation.
type SegmentRequest struct {
	// Text is the prose to segment.
	Text string `json:"text"`

	// Indexing assigns sequential sentence ids; defaults to true.
	Indexing *bool `json:"indexing,omitempty"`

	// NewlineBoundary overrides the newline-run boundary length; 0 keeps
	// the default of 2.
	NewlineBoundary int `json:"newline_boundary,omitempty"`

	// SemicolonDelimiter treats semicolons as sentence closers.
	SemicolonDelimiter bool `json:"semicolon_delimiter,omitempty"`

	// XML enables markup-aware scanning.
	XML bool `json:"xml,omitempty"`

	// URN is an optional CTS URN for the passage; when present each
	// sentence in the response carries a derived citation.
	URN string `json:"urn,omitempty"`
}

// SentenceResult is one sentence in a segmentation response.
type SentenceResult struct {
	Text string `json:"text"`
	ID   int    `json:"id,omitempty"`
	URN  string `json:"urn,omitempty"`
}

// SegmentResult is the segmentation response payload.
type SegmentResult struct {
	RequestID string           `json:"request_id"`
	Sentences []SentenceResult `json:"sentences"`
	Count     int              `json:"count"`
	Cached    bool             `json:"cached"`
}

// HealthInfo is the health check response.
type HealthInfo struct {
	Status        string `json:"status"`
	Version       string `json:"version"`
	Uptime        string `json:"uptime"`
	CachedResults int    `json:"cached_results"`
}

var startTime = time.Now()

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		respondError(w, http.StatusNotFound, "NOT_FOUND", "Endpoint not found")
		return
	}

	respond(w, http.StatusOK, map[string]interface{}{
		"name":    "LaurelLatin API",
		"version": apiVersion,
		"endpoints": []string{
			"GET /health",
			"POST /segment",
			"WS /ws/segment",
		},
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Only GET is allowed")
		return
	}

	respond(w, http.StatusOK, HealthInfo{
		Status:        "healthy",
		Version:       apiVersion,
		Uptime:        time.Since(startTime).String(),
		CachedResults: s.results.Len(),
	})
}

func (s *Server) handleSegment(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Only POST is allowed")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBytes)

	var req SegmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_REQUEST", "Failed to parse request body")
		return
	}

	requestID := uuid.New().String()
	result, status, apiErr := s.segmentRequest(requestID, req)
	if apiErr != nil {
		respondError(w, status, apiErr.Code, apiErr.Message)
		return
	}

	respond(w, http.StatusOK, result)
}

// segmentRequest runs one segmentation request end to end: options
// assembly, cache lookup, segmentation, and optional URN decoration. It is
// shared by the REST and WebSocket endpoints.
func (s *Server) segmentRequest(requestID string, req SegmentRequest) (*SegmentResult, int, *APIError) {
	opts := segment.DefaultOptions()
	if req.Indexing != nil {
		opts.Indexing = *req.Indexing
	}
	if req.NewlineBoundary != 0 {
		opts.NewlineBoundary = req.NewlineBoundary
	}
	opts.SemicolonDelimiter = req.SemicolonDelimiter
	opts.XML = req.XML

	var base *cts.URN
	if req.URN != "" {
		parsed, err := cts.Parse(req.URN)
		if err != nil {
			return nil, http.StatusBadRequest, &APIError{Code: "INVALID_URN", Message: err.Error()}
		}
		base = parsed
	}

	key := cache.Key(req.Text, opts)
	sentences, cached := s.results.Get(key)
	if !cached {
		var err error
		sentences, err = s.segmenter.Segment(req.Text, opts)
		if err != nil {
			var stall *segment.ScanStallError
			if errors.As(err, &stall) {
				return nil, http.StatusInternalServerError, &APIError{Code: "SCAN_STALL", Message: err.Error()}
			}
			return nil, http.StatusBadRequest, &APIError{Code: "INVALID_OPTIONS", Message: err.Error()}
		}
		s.results.Put(key, sentences)
	}

	result := &SegmentResult{
		RequestID: requestID,
		Sentences: make([]SentenceResult, 0, len(sentences)),
		Count:     len(sentences),
		Cached:    cached,
	}
	for _, sent := range sentences {
		sr := SentenceResult{Text: sent.Text, ID: sent.ID}
		if base != nil && sent.ID > 0 {
			if cited, err := base.PassageFor(sent.ID); err == nil {
				sr.URN = cited.String()
			}
		}
		result.Sentences = append(result.Sentences, sr)
	}

	logging.SegmentationRun(requestID, result.Count, len(req.Text), "cached", cached)
	return result, http.StatusOK, nil
}

func respond(w http.ResponseWriter, status int, data interface{}) {
	response := APIResponse{
		Success: true,
		Data:    data,
		Meta: &APIMeta{
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		},
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(response)
}

func respondError(w http.ResponseWriter, status int, code, message string) {
	response := APIResponse{
		Success: false,
		Error: &APIError{
			Code:    code,
			Message: message,
		},
		Meta: &APIMeta{
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		},
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(response)
}

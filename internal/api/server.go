// Package api exposes the text origin scorer over HTTP.
//
// The API mirrors the shape of the wider media backend this service belongs
// to: a health probe plus a detection route that accepts raw text and
// returns the serialized analysis result. Transport concerns live here; the
// scorer itself performs no I/O.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/book-expert/logger"

	"github.com/ai-media-detector/detection-service/internal/core"
	"github.com/ai-media-detector/detection-service/internal/detect"
)

// API endpoints and paths.
const (
	apiDetect = "/api/ai-detection/detect"
	apiHealth = "/api/health"
	apiRoot   = "/"
)

// HTTP headers.
const (
	headerContentType = "Content-Type"
	contentTypeJSON   = "application/json"
)

// Server timeouts.
const (
	readHeaderTimeout = 10 * time.Second
	shutdownTimeout   = 5 * time.Second
)

// Service metadata reported by the health and root endpoints.
const (
	serviceVersion       = "1.0.0"
	healthStatusHealthy  = "healthy"
	healthMessageRunning = "Detection API is running"
	rootMessage          = "AI Media Detector API"
)

// DetectRequest is the JSON payload accepted by the detect endpoint.
type DetectRequest struct {
	// Text is the UTF-8 text to analyze. Required.
	Text string `json:"text"`

	// MinLength optionally overrides the minimum text length for this
	// request. Zero means "use the service default".
	MinLength int `json:"min_length,omitempty"`
}

// ErrorResponse is the JSON payload returned for failed requests.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// HealthResponse is the JSON payload returned by the health endpoint.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
	Message string `json:"message"`
}

// Server serves the detection HTTP API.
type Server struct {
	httpServer           *http.Server
	analyzer             core.TextAnalyzer
	defaultMinTextLength int
	log                  *logger.Logger
}

// NewServer creates a Server listening on the given address.
func NewServer(
	address string,
	analyzer core.TextAnalyzer,
	defaultMinTextLength int,
	log *logger.Logger,
) *Server {
	server := &Server{
		httpServer:           nil,
		analyzer:             analyzer,
		defaultMinTextLength: defaultMinTextLength,
		log:                  log,
	}

	mux := http.NewServeMux()
	mux.HandleFunc(apiDetect, server.handleDetect)
	mux.HandleFunc(apiHealth, server.handleHealth)
	mux.HandleFunc(apiRoot, server.handleRoot)

	server.httpServer = &http.Server{
		Addr:              address,
		Handler:           mux,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	return server
}

// Handler returns the HTTP handler, primarily for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Run serves requests until the context is canceled, then shuts down
// gracefully.
func (s *Server) Run(ctx context.Context) error {
	errChan := make(chan error, 1)

	go func() {
		serveErr := s.httpServer.ListenAndServe()
		if serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			errChan <- serveErr
		}

		close(errChan)
	}()

	select {
	case <-ctx.Done():
	case serveErr := <-errChan:
		if serveErr != nil {
			return fmt.Errorf("http server failed: %w", serveErr)
		}

		return nil
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	err := s.httpServer.Shutdown(shutdownCtx)
	if err != nil {
		return fmt.Errorf("http server shutdown failed: %w", err)
	}

	return nil
}

// handleDetect analyzes the submitted text and writes the full result.
func (s *Server) handleDetect(writer http.ResponseWriter, request *http.Request) {
	if request.Method != http.MethodPost {
		s.writeError(writer, http.StatusMethodNotAllowed, "method not allowed")

		return
	}

	var detectRequest DetectRequest

	err := json.NewDecoder(request.Body).Decode(&detectRequest)
	if err != nil {
		s.writeError(writer, http.StatusBadRequest, "invalid JSON request body")

		return
	}

	if detectRequest.MinLength < 0 {
		s.writeError(writer, http.StatusBadRequest, "min_length must be non-negative")

		return
	}

	minTextLength := detectRequest.MinLength
	if minTextLength == 0 {
		minTextLength = s.defaultMinTextLength
	}

	result, err := s.analyzer.Analyze(detectRequest.Text, minTextLength)
	if err != nil {
		if errors.Is(err, detect.ErrTextTooShort) {
			s.writeError(writer, http.StatusBadRequest, err.Error())

			return
		}

		s.log.Error("Analysis failed: %v", err)
		s.writeError(writer, http.StatusInternalServerError, "analysis failed")

		return
	}

	s.writeJSON(writer, http.StatusOK, result)
}

func (s *Server) handleHealth(writer http.ResponseWriter, _ *http.Request) {
	s.writeJSON(writer, http.StatusOK, HealthResponse{
		Status:  healthStatusHealthy,
		Version: serviceVersion,
		Message: healthMessageRunning,
	})
}

func (s *Server) handleRoot(writer http.ResponseWriter, request *http.Request) {
	if request.URL.Path != apiRoot {
		s.writeError(writer, http.StatusNotFound, "not found")

		return
	}

	s.writeJSON(writer, http.StatusOK, map[string]string{
		"message": rootMessage,
		"version": serviceVersion,
	})
}

func (s *Server) writeError(writer http.ResponseWriter, status int, message string) {
	s.writeJSON(writer, status, ErrorResponse{Success: false, Error: message})
}

func (s *Server) writeJSON(writer http.ResponseWriter, status int, payload any) {
	writer.Header().Set(headerContentType, contentTypeJSON)
	writer.WriteHeader(status)

	err := json.NewEncoder(writer).Encode(payload)
	if err != nil {
		s.log.Error("Failed to encode response: %v", err)
	}
}

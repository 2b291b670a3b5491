package server

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/bastiangx/triesearch/pkg/config"
	"github.com/bastiangx/triesearch/pkg/suggest"
)

// Server handles the IPC for completions
type Server struct {
	completer    *suggest.Completer
	config       *config.Config
	decoder      *msgpack.Decoder
	encoder      *msgpack.Encoder
	requestCount int
	// words added through insert requests, replayed on SetCompleter
	inserted []string
	mu       sync.Mutex
}

// NewServer creates a completion server using stdin/stdout for IPC
func NewServer(completer *suggest.Completer, cfg *config.Config) *Server {
	return NewServerWithIO(completer, cfg, os.Stdin, os.Stdout)
}

// NewServerWithIO creates a completion server reading requests from r and
// writing responses to w
func NewServerWithIO(completer *suggest.Completer, cfg *config.Config, r io.Reader, w io.Writer) *Server {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return &Server{
		completer: completer,
		config:    cfg,
		decoder:   msgpack.NewDecoder(r),
		encoder:   msgpack.NewEncoder(w),
	}
}

// SetCompleter swaps the completer used for subsequent requests. Words
// added through insert requests so far are added to the new completer too.
func (s *Server) SetCompleter(completer *suggest.Completer) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, word := range s.inserted {
		completer.AddWord(word)
	}
	s.completer = completer
	log.Debugf("Swapped completer, replayed %d inserted words", len(s.inserted))
}

// Start signals readiness and serves requests until the input is closed
func (s *Server) Start() error {
	log.Debug("Starting Server.")

	if err := s.encoder.Encode(map[string]string{"status": "ready"}); err != nil {
		return fmt.Errorf("failed to signal readiness: %w", err)
	}

	for {
		raw, err := s.decoder.DecodeRaw()
		if err != nil {
			if errors.Is(err, io.EOF) {
				log.Debugf("Input closed after %d requests", s.requestCount)
				return nil
			}
			log.Errorf("Reading request: %v", err)
			return fmt.Errorf("failed to decode request: %w", err)
		}

		var request Request
		if err := msgpack.Unmarshal(raw, &request); err != nil {
			log.Warnf("Malformed request: %v", err)
			if err := s.sendError("", "Invalid msgpack request", 400); err != nil {
				return err
			}
			continue
		}

		if err := s.handleRequest(request); err != nil {
			return err
		}
	}
}

// handleRequest dispatches a request on its action and writes the response
func (s *Server) handleRequest(request Request) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.requestCount++

	switch request.Action {
	case "", ActionComplete:
		return s.handleComplete(request)
	case ActionInsert:
		s.completer.AddWord(request.Word)
		s.inserted = append(s.inserted, request.Word)
		log.Debugf("Inserted word '%s'", request.Word)
		return s.send(StatusResponse{ID: request.ID, Status: "ok"})
	case ActionStats:
		return s.send(StatsResponse{ID: request.ID, Stats: s.completer.Stats()})
	case ActionHealth:
		return s.send(StatusResponse{ID: request.ID, Status: "ok"})
	default:
		return s.sendError(request.ID, fmt.Sprintf("Unknown action: %s", request.Action), 400)
	}
}

// handleComplete validates the prefix, applies the limit bounds from the
// config and answers with the matching words
func (s *Server) handleComplete(request Request) error {
	prefix := request.Prefix
	maxPrefix := s.config.Server.MaxPrefix

	if maxPrefix > 0 && len([]rune(prefix)) > maxPrefix {
		log.Debug("Prefix is too long in request", "id", request.ID)
		return s.sendError(request.ID, fmt.Sprintf("Prefix exceeds maximum length of %d characters", maxPrefix), 400)
	}

	limit := request.Limit
	if limit < 1 {
		limit = s.config.Server.DefaultLimit
	}
	if maxLimit := s.config.Server.MaxLimit; maxLimit > 0 && limit > maxLimit {
		limit = maxLimit
	}

	start := time.Now()
	suggestions := s.completer.Complete(prefix, limit)
	elapsed := time.Since(start)

	return s.send(CompletionResponse{
		ID:          request.ID,
		Suggestions: suggestions,
		Count:       len(suggestions),
		TimeTaken:   elapsed.Microseconds(),
	})
}

func (s *Server) send(response any) error {
	if err := s.encoder.Encode(response); err != nil {
		log.Errorf("Encoding response: %v", err)
		return fmt.Errorf("failed to write response: %w", err)
	}
	return nil
}

func (s *Server) sendError(id, message string, code int) error {
	return s.send(ErrorResponse{ID: id, Error: message, Code: code})
}

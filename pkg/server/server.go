package server

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/avasker/rankdex/pkg/config"
	"github.com/avasker/rankdex/pkg/index"
	"github.com/avasker/rankdex/pkg/snapshot"
	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

// Server handles the IPC for the vocabulary index.
type Server struct {
	idx *index.Index
	cfg *config.Config
	dec *msgpack.Decoder
	enc *msgpack.Encoder
}

// NewServer creates a completion server using stdin/stdout for IPC.
func NewServer(idx *index.Index, cfg *config.Config) *Server {
	return NewServerWithIO(idx, cfg, os.Stdin, os.Stdout)
}

// NewServerWithIO creates a server over explicit streams, used by tests.
func NewServerWithIO(idx *index.Index, cfg *config.Config, r io.Reader, w io.Writer) *Server {
	return &Server{
		idx: idx,
		cfg: cfg,
		dec: msgpack.NewDecoder(r),
		enc: msgpack.NewEncoder(w),
	}
}

// Start begins listening for IPC requests. It returns nil when the client
// disconnects (EOF).
func (s *Server) Start() error {
	log.Debug("Starting IPC server")

	s.sendResponse(StatusResponse{Status: "ready"})

	for {
		var req Request
		if err := s.dec.Decode(&req); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			log.Errorf("Decoding request: %v", err)
			return err
		}
		s.handleRequest(req)
	}
}

func (s *Server) handleRequest(req Request) {
	switch strings.ToLower(req.Op) {
	case "complete":
		s.handleComplete(req)
	case "insert":
		s.handleInsert(req)
	case "remove":
		if s.idx.Remove(strings.ToLower(req.Word)) {
			s.sendResponse(StatusResponse{ID: req.ID, Status: "ok"})
		} else {
			s.sendResponse(StatusResponse{ID: req.ID, Status: "miss"})
		}
	case "contains":
		if s.idx.Contains(strings.ToLower(req.Word)) {
			s.sendResponse(StatusResponse{ID: req.ID, Status: "yes"})
		} else {
			s.sendResponse(StatusResponse{ID: req.ID, Status: "no"})
		}
	case "stats":
		st := s.idx.Stats()
		s.sendResponse(StatsResponse{ID: req.ID, Words: st.Words, Height: st.Height, Nodes: st.Nodes})
	case "load":
		s.handleLoad(req)
	case "save":
		s.handleSave(req)
	case "health":
		s.sendResponse(StatusResponse{ID: req.ID, Status: "ok"})
	default:
		s.sendError(req.ID, fmt.Sprintf("Unknown op: %s", req.Op), 400)
	}
}

func (s *Server) handleComplete(req Request) {
	prefix := req.Prefix
	if len(prefix) > s.cfg.Server.MaxPrefix {
		s.sendError(req.ID, fmt.Sprintf("Prefix exceeds maximum length of %d", s.cfg.Server.MaxPrefix), 400)
		return
	}

	limit := req.Limit
	if limit < 1 {
		limit = s.cfg.CLI.DefaultLimit
	}
	if limit > s.cfg.Server.MaxLimit {
		limit = s.cfg.Server.MaxLimit
	}

	start := time.Now()
	words := s.idx.Complete(strings.ToLower(prefix), limit)
	elapsed := time.Since(start)

	suggestions := make([]Suggestion, len(words))
	for i, w := range words {
		suggestions[i] = Suggestion{Word: w, Rank: uint16(i + 1)}
	}

	s.sendResponse(CompletionResponse{
		ID:          req.ID,
		Suggestions: suggestions,
		Count:       len(suggestions),
		TimeTaken:   elapsed.Microseconds(),
	})
}

func (s *Server) handleInsert(req Request) {
	if req.Word == "" {
		s.sendError(req.ID, "Missing 'w' parameter", 400)
		return
	}
	s.idx.Insert(strings.ToLower(req.Word), req.Score)
	s.sendResponse(StatusResponse{ID: req.ID, Status: "ok"})
}

// handleLoad rebuilds the index from a snapshot file. The live index is only
// swapped once the whole file has been read.
func (s *Server) handleLoad(req Request) {
	entries, err := snapshot.Load(req.Path)
	if err != nil {
		s.sendResponse(StatusResponse{ID: req.ID, Status: "error", Error: err.Error()})
		return
	}
	fresh := index.New()
	for _, e := range entries {
		fresh.Insert(e.Word, e.Score)
	}
	s.idx = fresh
	s.sendResponse(StatusResponse{ID: req.ID, Status: "ok"})
}

func (s *Server) handleSave(req Request) {
	if err := snapshot.Save(req.Path, s.idx.Items()); err != nil {
		s.sendResponse(StatusResponse{ID: req.ID, Status: "error", Error: err.Error()})
		return
	}
	s.sendResponse(StatusResponse{ID: req.ID, Status: "ok"})
}

func (s *Server) sendResponse(response interface{}) {
	if err := s.enc.Encode(response); err != nil {
		log.Errorf("Encoding response: %v", err)
	}
}

func (s *Server) sendError(id, message string, code int) {
	s.sendResponse(ErrorResponse{ID: id, Error: message, Code: code})
}

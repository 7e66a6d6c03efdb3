// Package cli implements the line-oriented command session over stdin/stdout.
//
// One command per line, one result line per query command. Malformed or
// unknown commands are silently ignored so automated callers can pipe command
// streams without negotiating errors; file problems go to the log on stderr,
// never to stdout.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/avasker/rankdex/pkg/config"
	"github.com/avasker/rankdex/pkg/index"
	"github.com/avasker/rankdex/pkg/snapshot"
	"github.com/charmbracelet/log"
)

// Session owns a live index and dispatches textual commands against it.
type Session struct {
	idx    *index.Index
	cfg    *config.Config
	reader *bufio.Reader
	writer io.Writer
}

// NewSession creates a session reading commands from stdin and writing
// results to stdout.
func NewSession(idx *index.Index, cfg *config.Config) *Session {
	return NewSessionWithIO(idx, cfg, os.Stdin, os.Stdout)
}

// NewSessionWithIO creates a session over explicit streams; tests drive the
// protocol through in-memory buffers.
func NewSessionWithIO(idx *index.Index, cfg *config.Config, r io.Reader, w io.Writer) *Session {
	return &Session{
		idx:    idx,
		cfg:    cfg,
		reader: bufio.NewReader(r),
		writer: w,
	}
}

// Index returns the session's current index. load replaces the instance
// wholesale, so callers must not hold on to earlier values across commands.
func (s *Session) Index() *index.Index {
	return s.idx
}

// Start runs the command loop until quit, EOF, or a read error.
func (s *Session) Start() error {
	for {
		line, err := s.reader.ReadString('\n')
		if err != nil {
			if err == io.EOF {
				if strings.TrimSpace(line) != "" {
					s.handleLine(strings.TrimSpace(line))
				}
				return nil
			}
			return err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if !s.handleLine(line) {
			return nil
		}
	}
}

// handleLine dispatches a single command. It returns false on quit.
func (s *Session) handleLine(line string) bool {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return true
	}
	cmd := strings.ToLower(parts[0])

	switch {
	case cmd == "quit":
		return false

	case cmd == "load" && len(parts) == 2:
		s.handleLoad(parts[1])

	case cmd == "save" && len(parts) == 2:
		s.handleSave(parts[1])

	case cmd == "insert" && len(parts) == 3:
		score, err := strconv.ParseFloat(parts[2], 64)
		if err != nil {
			log.Debugf("Ignoring insert with malformed score: %q", parts[2])
			return true
		}
		if len(parts[1]) > s.cfg.CLI.MaxPrefix {
			log.Debugf("Ignoring insert beyond max word length: %q", parts[1])
			return true
		}
		s.idx.Insert(strings.ToLower(parts[1]), score)

	case cmd == "remove" && len(parts) == 2:
		if s.idx.Remove(strings.ToLower(parts[1])) {
			fmt.Fprintln(s.writer, "OK")
		} else {
			fmt.Fprintln(s.writer, "MISS")
		}

	case cmd == "contains" && len(parts) == 2:
		if s.idx.Contains(strings.ToLower(parts[1])) {
			fmt.Fprintln(s.writer, "YES")
		} else {
			fmt.Fprintln(s.writer, "NO")
		}

	case cmd == "complete" && len(parts) == 3:
		k, err := strconv.Atoi(parts[2])
		if err != nil {
			log.Debugf("Ignoring complete with malformed k: %q", parts[2])
			return true
		}
		words := s.idx.Complete(strings.ToLower(parts[1]), k)
		fmt.Fprintln(s.writer, strings.Join(words, ","))

	case cmd == "stats":
		st := s.idx.Stats()
		fmt.Fprintf(s.writer, "words=%d height=%d nodes=%d\n", st.Words, st.Height, st.Nodes)

	default:
		log.Debugf("Ignoring unknown or malformed command: %q", line)
	}
	return true
}

// handleLoad replaces the current index with the snapshot's contents.
// A failed load leaves the existing index untouched.
func (s *Session) handleLoad(path string) {
	entries, err := snapshot.Load(path)
	if err != nil {
		log.Errorf("Load failed: %v", err)
		return
	}
	fresh := index.New()
	for _, e := range entries {
		fresh.Insert(e.Word, e.Score)
	}
	s.idx = fresh
}

func (s *Session) handleSave(path string) {
	if err := snapshot.Save(path, s.idx.Items()); err != nil {
		log.Errorf("Save failed: %v", err)
	}
}

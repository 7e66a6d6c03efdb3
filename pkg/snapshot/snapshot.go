// Package snapshot reads and writes the two-column CSV vocabulary format:
// one "word,score" record per line, no header. It is a thin adapter around
// the index — it supplies (word, score) pairs in and persists Items() out,
// and holds no indexing logic of its own.
package snapshot

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/avasker/rankdex/pkg/index"
	"github.com/charmbracelet/log"
)

// Load reads every (word, score) pair from the snapshot at path. Words are
// trimmed and lowercased; a missing or malformed score is substituted with 0
// rather than failing the whole load. Blank records are skipped. An error is
// returned only when the file itself cannot be read.
func Load(path string) ([]index.Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open snapshot %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	var entries []index.Entry
	for {
		record, err := r.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("read snapshot %s: %w", path, err)
		}
		if len(record) == 0 {
			continue
		}
		word := strings.ToLower(strings.TrimSpace(record[0]))
		if word == "" {
			continue
		}
		score := 0.0
		if len(record) > 1 {
			parsed, err := strconv.ParseFloat(strings.TrimSpace(record[1]), 64)
			if err != nil {
				log.Debugf("Malformed score for %q, using 0: %v", word, err)
			} else {
				score = parsed
			}
		}
		entries = append(entries, index.Entry{Word: word, Score: score})
	}
	return entries, nil
}

// Save writes the given entries to path in the two-column format, replacing
// any existing file.
func Save(path string, entries []index.Entry) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create snapshot %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	for _, e := range entries {
		record := []string{e.Word, strconv.FormatFloat(e.Score, 'g', -1, 64)}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("write snapshot %s: %w", path, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush snapshot %s: %w", path, err)
	}
	return nil
}

/*
Package main implements mkwords, the one-time vocabulary snapshot generator.

It reads a plain frequency list ("word count" per line, whitespace separated),
keeps the N most frequent words and writes the two-column word,score CSV
consumed by rankdex. Scores are Zipf-style: log10 of the word's frequency per
billion tokens, rounded to two decimals, so a score of 6 means roughly one
occurrence per thousand tokens.

	mkwords -in counts.txt -out data/words.csv -n 50000

This tool is for setup only and is not part of the runtime application.
*/
package main

import (
	"bufio"
	"flag"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/avasker/rankdex/internal/utils"
	"github.com/avasker/rankdex/pkg/index"
	"github.com/avasker/rankdex/pkg/snapshot"
	"github.com/charmbracelet/log"
)

type wordCount struct {
	word  string
	count float64
}

func main() {
	inPath := flag.String("in", "", "Frequency list input: one 'word count' pair per line")
	outPath := flag.String("out", filepath.Join("data", "words.csv"), "Snapshot CSV to write")
	topN := flag.Int("n", 50000, "Number of words to keep, most frequent first")
	flag.Parse()

	log.SetOutput(os.Stderr)

	if *inPath == "" {
		log.Fatal("missing -in frequency list")
	}

	counts, total, err := readCounts(*inPath)
	if err != nil {
		log.Fatalf("Failed to read %s: %v", *inPath, err)
	}
	if len(counts) == 0 {
		log.Fatalf("No usable records in %s", *inPath)
	}

	sort.Slice(counts, func(i, j int) bool {
		if counts[i].count != counts[j].count {
			return counts[i].count > counts[j].count
		}
		return counts[i].word < counts[j].word
	})
	if len(counts) > *topN {
		counts = counts[:*topN]
	}

	entries := make([]index.Entry, len(counts))
	for i, wc := range counts {
		entries[i] = index.Entry{Word: wc.word, Score: zipfScore(wc.count, total)}
	}

	if err := utils.EnsureDir(filepath.Dir(*outPath)); err != nil {
		log.Fatalf("Failed to create output directory: %v", err)
	}
	if err := snapshot.Save(*outPath, entries); err != nil {
		log.Fatalf("Failed to write snapshot: %v", err)
	}
	log.Infof("Wrote %d words to %s", len(entries), *outPath)
}

// readCounts parses the frequency list, lowercasing words and merging
// duplicates. Lines without a parseable count are skipped.
func readCounts(path string) ([]wordCount, float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, err
	}
	defer f.Close()

	byWord := make(map[string]float64)
	total := 0.0
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 2 {
			continue
		}
		count, err := strconv.ParseFloat(fields[1], 64)
		if err != nil || count <= 0 {
			continue
		}
		word := strings.ToLower(fields[0])
		byWord[word] += count
		total += count
	}
	if err := scanner.Err(); err != nil {
		return nil, 0, err
	}

	counts := make([]wordCount, 0, len(byWord))
	for w, c := range byWord {
		counts = append(counts, wordCount{word: w, count: c})
	}
	return counts, total, nil
}

// zipfScore converts a raw count into log10 frequency per billion tokens,
// clamped at 0 and rounded to two decimals.
func zipfScore(count, total float64) float64 {
	score := math.Log10(count / total * 1e9)
	if score < 0 {
		score = 0
	}
	return math.Round(score*100) / 100
}

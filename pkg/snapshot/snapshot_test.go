package snapshot

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/avasker/rankdex/pkg/index"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "words.csv")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	return path
}

func TestLoadBasic(t *testing.T) {
	path := writeFile(t, "hello,9.5\nhelp,8.25\nheap,3\n")
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := []index.Entry{{Word: "hello", Score: 9.5}, {Word: "help", Score: 8.25}, {Word: "heap", Score: 3}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Load = %v, want %v", got, want)
	}
}

func TestLoadNormalizesAndSubstitutesScores(t *testing.T) {
	path := writeFile(t, "HeLLo,2.5\nbroken,not-a-number\nsolo\n  padded  ,1\n")
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := []index.Entry{
		{Word: "hello", Score: 2.5},
		{Word: "broken", Score: 0},
		{Word: "solo", Score: 0},
		{Word: "padded", Score: 1},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Load = %v, want %v", got, want)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.csv")); err == nil {
		t.Error("Load on missing file = nil error, want error")
	}
}

func TestRoundTrip(t *testing.T) {
	ix := index.New()
	ix.Insert("hello", 9.5)
	ix.Insert("help", 8)
	ix.Insert("zebra", 0.25)

	path := filepath.Join(t.TempDir(), "out.csv")
	if err := Save(path, ix.Items()); err != nil {
		t.Fatalf("Save: %v", err)
	}

	entries, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	fresh := index.New()
	for _, e := range entries {
		fresh.Insert(e.Word, e.Score)
	}
	if !reflect.DeepEqual(fresh.Items(), ix.Items()) {
		t.Errorf("round trip mismatch: %v != %v", fresh.Items(), ix.Items())
	}
}

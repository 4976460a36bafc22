package book

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLookupMissingKeyReportsFalse(t *testing.T) {
	s, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer s.Close()

	if _, ok := s.Lookup(1); ok {
		t.Fatalf("Lookup found a frequency for a key never stored")
	}
}

func TestIncrementAccumulates(t *testing.T) {
	s, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer s.Close()

	for i := 0; i < 3; i++ {
		if err := s.Increment(42); err != nil {
			t.Fatalf("Increment: %v", err)
		}
	}

	freq, ok := s.Lookup(42)
	if !ok {
		t.Fatalf("Lookup did not find the key after Increment")
	}
	if freq != 3 {
		t.Fatalf("freq = %d, want 3", freq)
	}
}

func TestLoadFileHashesAndIncrementsEachLine(t *testing.T) {
	dir := t.TempDir()
	bookFile := filepath.Join(dir, "openings.txt")
	content := "1. 32-28 19-23\n2. 28x19 23x32\n"
	if err := os.WriteFile(bookFile, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	s, err := Open(filepath.Join(dir, "db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer s.Close()

	var seen [][]string
	hashLine := func(moves []string) (uint64, error) {
		seen = append(seen, moves)
		return uint64(len(seen)), nil
	}

	if err := s.LoadFile(bookFile, hashLine); err != nil {
		t.Fatalf("LoadFile: %v", err)
	}

	if len(seen) != 2 {
		t.Fatalf("hashLine called %d times, want 2", len(seen))
	}
	for _, moves := range seen {
		for _, m := range moves {
			if m == "1." || m == "2." {
				t.Fatalf("move-number prefix %q leaked into move list %v", m, moves)
			}
		}
	}

	if _, ok := s.Lookup(1); !ok {
		t.Fatalf("first line's hash was not stored")
	}
	if _, ok := s.Lookup(2); !ok {
		t.Fatalf("second line's hash was not stored")
	}
}

func TestLoadFileMissingFileReturnsError(t *testing.T) {
	s, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer s.Close()

	err = s.LoadFile("/nonexistent/path/openings.txt", func([]string) (uint64, error) { return 0, nil })
	if err == nil {
		t.Fatalf("expected an error for a missing book file")
	}
	if !errors.Is(err, os.ErrNotExist) {
		// wrapped via fmt.Errorf("%w", ...); just ensure an error surfaced
		t.Logf("LoadFile error: %v", err)
	}
}

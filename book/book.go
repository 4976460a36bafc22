// Package book implements the opening-book collaborator: a Badger-backed
// store of {position hash -> frequency}, loaded from an external file of
// whitespace-separated numeric-notation lines.
package book

import (
	"bufio"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/dgraph-io/badger/v4"
)

// Store wraps a Badger database opened once at construction.
type Store struct {
	db *badger.DB
}

// Open opens (creating if necessary) the Badger database rooted at dir.
func Open(dir string) (*Store, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("book: open %s: %w", dir, err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

func bookKey(hash uint64) []byte {
	return []byte(fmt.Sprintf("opening:%016x", hash))
}

// Lookup returns the recorded frequency for a position hash, if any.
func (s *Store) Lookup(hash uint64) (frequency int, ok bool) {
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(bookKey(hash))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			n, perr := strconv.Atoi(string(val))
			if perr != nil {
				return perr
			}
			frequency, ok = n, true
			return nil
		})
	})
	if err != nil {
		return 0, false
	}
	return frequency, ok
}

// Increment bumps the frequency recorded for a position hash by one.
func (s *Store) Increment(hash uint64) error {
	return s.db.Update(func(txn *badger.Txn) error {
		cur := 0
		item, err := txn.Get(bookKey(hash))
		switch {
		case err == nil:
			if verr := item.Value(func(val []byte) error {
				n, perr := strconv.Atoi(string(val))
				if perr != nil {
					return perr
				}
				cur = n
				return nil
			}); verr != nil {
				return verr
			}
		case err != badger.ErrKeyNotFound:
			return err
		}
		return txn.Set(bookKey(hash), []byte(strconv.Itoa(cur+1)))
	})
}

var moveNumberPrefix = regexp.MustCompile(`^[0-9]{1,2}\.$`)

// LoadFile reads an opening-book file: one opening per line, whitespace
// separated numeric-notation move tokens, move-number prefixes (N. or NN.)
// stripped, moves alternating colors starting from White. hashLine replays
// a line's move tokens from the starting position and returns the resulting
// position's hash; it is supplied by the caller so this package never needs
// to import the board representation.
func (s *Store) LoadFile(path string, hashLine func(moves []string) (uint64, error)) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("book: open %s: %w", path, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		var moves []string
		for _, tok := range strings.Fields(line) {
			if moveNumberPrefix.MatchString(tok) {
				continue
			}
			moves = append(moves, tok)
		}
		if len(moves) == 0 {
			continue
		}
		hash, err := hashLine(moves)
		if err != nil {
			return fmt.Errorf("book: line %q: %w", line, err)
		}
		if err := s.Increment(hash); err != nil {
			return fmt.Errorf("book: line %q: %w", line, err)
		}
	}
	return scanner.Err()
}

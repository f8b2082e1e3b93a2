// Package storage provides the database layer for Boltscope.
//
// It wraps a bbolt file — a single memory-mapped B+tree holding named
// buckets of byte-sorted key/value pairs — behind the Store interface,
// and renders table contents through a schema-less byte interpreter.
// Every table is opened generically by its raw byte representation;
// the original key/value types are unknown and are only approximated
// by the heuristics in interpret.go.
package storage

import (
	"encoding/binary"
	"fmt"
	"os"
	"time"

	bolt "go.etcd.io/bbolt"
)

// Store defines the read surface the TUI needs from a database file.
// This abstraction allows for mocking in tests.
type Store interface {
	// TableNames returns every table in the database, in the order the
	// engine yields them (byte-sorted for bbolt). The listing is taken
	// once at startup and treated as stable for the session.
	TableNames() ([]string, error)
	// ReadTable returns the rendered key/value pairs of the named table
	// in native key order. A missing or unreadable table yields a
	// single sentinel entry, not an error.
	ReadTable(name string) ([]Entry, error)
	// Stats returns a point-in-time statistics snapshot aggregated over
	// all tables.
	Stats() (*Stats, error)
	// FileSize returns the current on-disk size of the database file.
	FileSize() (int64, error)
	// Close releases the database handle.
	Close() error
}

// Entry is one table row after interpretation: the display rendering of
// the raw key and the raw value.
type Entry struct {
	Key   string
	Value string
}

// Stats is a snapshot of the store's B+tree layout.
type Stats struct {
	TreeHeight      int // deepest table tree
	AllocatedPages  int // branch + leaf pages, including overflow
	StoredBytes     int // bytes in use by leaf data
	MetadataBytes   int // bytes in use by branch pages and inline buckets
	FragmentedBytes int // allocated but unused page bytes
}

// BoltStore implements Store over a bbolt database file.
type BoltStore struct {
	db   *bolt.DB
	path string
}

// Open opens the database file at path, creating it if it does not exist.
// The handle is held for the process lifetime; readers see a consistent
// snapshot per transaction even while the file grows.
func Open(path string) (*BoltStore, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("opening database at %s: %w", path, err)
	}
	return &BoltStore{db: db, path: path}, nil
}

// TableNames lists all top-level buckets.
func (s *BoltStore) TableNames() ([]string, error) {
	var names []string
	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.ForEach(func(name []byte, _ *bolt.Bucket) error {
			names = append(names, string(name))
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("listing tables: %w", err)
	}
	return names, nil
}

// ReadTable opens the named table with a raw-byte descriptor and maps
// each key and value independently through Interpret. Table-open failure
// is non-fatal by design: the session keeps running and the failure is
// shown as a sentinel row in place of content. Only transaction failure
// is returned as an error.
func (s *BoltStore) ReadTable(name string) ([]Entry, error) {
	entries := []Entry{}
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(name))
		if b == nil {
			entries = append(entries, sentinelEntry(name))
			return nil
		}
		return b.ForEach(func(k, v []byte) error {
			entries = append(entries, Entry{
				Key:   Interpret(k),
				Value: Interpret(v),
			})
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("reading table %q: %w", name, err)
	}
	return entries, nil
}

// sentinelEntry is the fallback row shown when a table cannot be read.
func sentinelEntry(name string) Entry {
	return Entry{
		Key:   "Error",
		Value: fmt.Sprintf("table %q could not be read", name),
	}
}

// Stats aggregates bbolt's per-bucket statistics into a store-wide
// snapshot. Tree height is the maximum depth over all tables; the byte
// counters are summed.
func (s *BoltStore) Stats() (*Stats, error) {
	stats := &Stats{}
	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.ForEach(func(_ []byte, b *bolt.Bucket) error {
			bs := b.Stats()
			if bs.Depth > stats.TreeHeight {
				stats.TreeHeight = bs.Depth
			}
			stats.AllocatedPages += bs.BranchPageN + bs.BranchOverflowN +
				bs.LeafPageN + bs.LeafOverflowN
			stats.StoredBytes += bs.LeafInuse
			stats.MetadataBytes += bs.BranchInuse + bs.InlineBucketInuse
			stats.FragmentedBytes += (bs.BranchAlloc - bs.BranchInuse) +
				(bs.LeafAlloc - bs.LeafInuse)
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("reading statistics: %w", err)
	}
	return stats, nil
}

// FileSize returns the size of the database file on disk.
func (s *BoltStore) FileSize() (int64, error) {
	fi, err := os.Stat(s.path)
	if err != nil {
		return 0, fmt.Errorf("stat %s: %w", s.path, err)
	}
	return fi.Size(), nil
}

// Close releases the file handle and its lock.
func (s *BoltStore) Close() error {
	return s.db.Close()
}

// Seed populates a freshly created database with two sample tables so
// the browser has content on first run:
//
//	users     string → u32 little-endian (age)
//	products  u32 little-endian → string (name)
func (s *BoltStore) Seed() error {
	users := map[string]uint32{
		"Alice":   25,
		"Bob":     30,
		"Charlie": 35,
	}
	products := map[uint32]string{
		1: "Laptop",
		2: "Phone",
		3: "Tablet",
		4: "Keyboard",
		5: "Wi-fi router",
		6: "Tree",
	}

	err := s.db.Update(func(tx *bolt.Tx) error {
		ub, err := tx.CreateBucketIfNotExists([]byte("users"))
		if err != nil {
			return fmt.Errorf("creating users table: %w", err)
		}
		for name, age := range users {
			if err := ub.Put([]byte(name), u32le(age)); err != nil {
				return fmt.Errorf("inserting user %s: %w", name, err)
			}
		}

		pb, err := tx.CreateBucketIfNotExists([]byte("products"))
		if err != nil {
			return fmt.Errorf("creating products table: %w", err)
		}
		for id, name := range products {
			if err := pb.Put(u32le(id), []byte(name)); err != nil {
				return fmt.Errorf("inserting product %d: %w", id, err)
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("seeding sample data: %w", err)
	}
	return nil
}

func u32le(v uint32) []byte {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, v)
	return b
}

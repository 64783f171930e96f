package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// DBFileMode is the permission given to a newly created database file.
// An existing file keeps its own mode.
const DBFileMode = 0644

// LoadStatus tells whether the file's contents became the store.
type LoadStatus int

const (
	// Loaded means the file parsed and its records were loaded.
	Loaded LoadStatus = iota
	// EmptyFallback means the store starts empty; see FallbackReason.
	EmptyFallback
)

func (s LoadStatus) String() string {
	switch s {
	case Loaded:
		return "loaded"
	case EmptyFallback:
		return "empty-fallback"
	default:
		return "unknown"
	}
}

// FallbackReason explains an EmptyFallback.
type FallbackReason int

const (
	ReasonNone FallbackReason = iota
	ReasonMissing
	ReasonUnreadable
	ReasonMalformed
)

func (r FallbackReason) String() string {
	switch r {
	case ReasonNone:
		return "none"
	case ReasonMissing:
		return "missing"
	case ReasonUnreadable:
		return "unreadable"
	case ReasonMalformed:
		return "malformed"
	default:
		return "unknown"
	}
}

// LoadResult describes how Load produced its store.
// Err carries the underlying read or parse error for unreadable and malformed files.
type LoadResult struct {
	Status LoadStatus
	Reason FallbackReason
	Err    error
}

// ErrIDMismatch is reported when a record's id differs from the map key it is stored under.
var ErrIDMismatch = errors.New("record id does not match its key")

// Load reads the database at path. It never fails: a missing, unreadable or
// malformed file yields an empty store bound to path, and the file itself is
// left untouched until the next Save.
func Load(path string) (*Store, LoadResult) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return New(path), LoadResult{Status: EmptyFallback, Reason: ReasonMissing}
		}
		return New(path), LoadResult{
			Status: EmptyFallback,
			Reason: ReasonUnreadable,
			Err:    fmt.Errorf("reading database: %w", err),
		}
	}

	records, err := decode(data)
	if err != nil {
		return New(path), LoadResult{
			Status: EmptyFallback,
			Reason: ReasonMalformed,
			Err:    fmt.Errorf("parsing database: %w", err),
		}
	}

	return &Store{path: path, records: records}, LoadResult{Status: Loaded}
}

// decode parses the id-record shape: {"<id>": {"id": <id>, "key": ..., "value": ...}}.
func decode(data []byte) (map[uint64]Record, error) {
	var raw map[string]Record
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	records := make(map[uint64]Record, len(raw))
	for k, r := range raw {
		id, ok := ParseID(k)
		if !ok || FormatID(id) != k {
			return nil, fmt.Errorf("invalid record id %q", k)
		}
		if r.ID != id {
			return nil, fmt.Errorf("%w: key %q holds id %d", ErrIDMismatch, k, r.ID)
		}
		records[id] = r
	}
	return records, nil
}

// encode renders the store as pretty-printed JSON keyed by decimal id.
func (s *Store) encode() ([]byte, error) {
	raw := make(map[string]Record, len(s.records))
	for id, r := range s.records {
		raw[FormatID(id)] = r
	}
	return json.MarshalIndent(raw, "", "  ")
}

// target returns the file Save replaces and the mode to write it with.
// A symlinked database is followed so the link survives; an existing file
// keeps its permissions.
func (s *Store) target() (string, os.FileMode) {
	path := s.path
	if resolved, err := filepath.EvalSymlinks(path); err == nil {
		path = resolved
	} else if link, err := os.Readlink(path); err == nil {
		// Dangling link: write the file it points at
		if !filepath.IsAbs(link) {
			link = filepath.Join(filepath.Dir(path), link)
		}
		path = link
	}

	if info, err := os.Stat(path); err == nil {
		return path, info.Mode().Perm()
	}
	return path, DBFileMode
}

// Save overwrites the database file with the full contents of the store.
// Uses temp file + rename so a failed write leaves the previous file intact.
func (s *Store) Save() error {
	data, err := s.encode()
	if err != nil {
		return fmt.Errorf("encoding database: %w", err)
	}

	path, mode := s.target()

	// Create temp file in same directory for atomic rename
	dir := filepath.Dir(path)
	tmpFile, err := os.CreateTemp(dir, ".tmp-*.json")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	success := false
	defer func() {
		if !success {
			os.Remove(tmpPath)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		tmpFile.Close()
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := tmpFile.Chmod(mode); err != nil {
		tmpFile.Close()
		return fmt.Errorf("setting file mode: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("renaming temp file: %w", err)
	}

	success = true
	return nil
}

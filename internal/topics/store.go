package topics

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// queueFileName is the per-session queue file inside the output directory.
const queueFileName = "topics.json"

// CorruptStateError indicates the queue file exists but cannot be decoded.
// It is fatal for the session: the store never discards or repairs the file.
type CorruptStateError struct {
	Path string
	Err  error
}

func (e *CorruptStateError) Error() string {
	return fmt.Sprintf("topic queue %s is corrupt: %v", e.Path, e.Err)
}

func (e *CorruptStateError) Unwrap() error {
	return e.Err
}

// Store persists the ordered topic queue for one exploration session.
//
// Every mutating operation re-loads, mutates, and re-persists the whole
// sequence. Each CLI invocation is a fresh process, so durability per call
// is the only correctness guarantee available. The store assumes a single
// writer per output directory; concurrent sessions against the same
// directory may lose updates (last save wins).
type Store struct {
	dir string
}

// NewStore creates a store backed by outputDir/topics.json.
func NewStore(outputDir string) *Store {
	return &Store{dir: outputDir}
}

// Path returns the location of the backing queue file.
func (s *Store) Path() string {
	return filepath.Join(s.dir, queueFileName)
}

// Load reads the persisted queue. A missing file yields an empty queue.
func (s *Store) Load() ([]Topic, error) {
	data, err := os.ReadFile(s.Path())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read topic queue: %w", err)
	}

	var queue []Topic
	if err := json.Unmarshal(data, &queue); err != nil {
		return nil, &CorruptStateError{Path: s.Path(), Err: err}
	}
	return queue, nil
}

// Save atomically replaces the persisted queue, creating the output
// directory if absent.
func (s *Store) Save(queue []Topic) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	if queue == nil {
		queue = []Topic{}
	}
	data, err := json.MarshalIndent(queue, "", "  ")
	if err != nil {
		return fmt.Errorf("encode topic queue: %w", err)
	}

	// Write to a temp file in the same directory, then rename over the
	// queue file so readers never observe a partial write.
	tmp, err := os.CreateTemp(s.dir, queueFileName+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp queue file: %w", err)
	}
	tmpPath := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("write temp queue file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("close temp queue file: %w", err)
	}
	if err := os.Rename(tmpPath, s.Path()); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("replace queue file: %w", err)
	}
	return nil
}

// Add appends topics to the queue, silently dropping any whose target
// already exists in the queue or earlier in the same batch. Returns the
// number of topics actually appended.
func (s *Store) Add(in []Topic) (int, error) {
	queue, err := s.Load()
	if err != nil {
		return 0, err
	}

	existing := make(map[string]bool, len(queue))
	for _, t := range queue {
		existing[t.Target] = true
	}

	added := 0
	for _, t := range in {
		if existing[t.Target] {
			continue
		}
		queue = append(queue, t)
		existing[t.Target] = true
		added++
	}

	if added > 0 {
		if err := s.Save(queue); err != nil {
			return 0, err
		}
	}
	return added, nil
}

// PopNext returns the first pending topic in stored order, marking it done.
// Returns nil without writing when nothing is pending.
func (s *Store) PopNext() (*Topic, error) {
	queue, err := s.Load()
	if err != nil {
		return nil, err
	}

	for i := range queue {
		if queue[i].Status == StatusPending {
			queue[i].Status = StatusDone
			if err := s.Save(queue); err != nil {
				return nil, err
			}
			popped := queue[i]
			return &popped, nil
		}
	}
	return nil, nil
}

// Skip marks the index-th currently pending topic as skipped. The index is
// relative to the pending subsequence in stored order, matching the numbering
// a caller just saw when listing pending topics. Returns false without
// writing when the index is out of bounds.
func (s *Store) Skip(index int) (bool, error) {
	queue, err := s.Load()
	if err != nil {
		return false, err
	}

	var pending []int
	for i, t := range queue {
		if t.Status == StatusPending {
			pending = append(pending, i)
		}
	}
	if index < 0 || index >= len(pending) {
		return false, nil
	}

	queue[pending[index]].Status = StatusSkipped
	if err := s.Save(queue); err != nil {
		return false, err
	}
	return true, nil
}

// PendingCount returns the number of pending topics in the persisted queue.
func (s *Store) PendingCount() (int, error) {
	queue, err := s.Load()
	if err != nil {
		return 0, err
	}
	count := 0
	for _, t := range queue {
		if t.Status == StatusPending {
			count++
		}
	}
	return count, nil
}

package corpus

import (
	"context"
	"encoding/json"
	"fmt"
	"path"
	"sync"
)

// InMemoryWriter collects records keyed by their slash-joined path.
// It is a stand-in for FSWriter in tests, with an optional FailOn hook
// for injecting write failures.
type InMemoryWriter struct {
	mu      sync.Mutex
	records map[string][]byte

	// FailOn, when set, is consulted before each write. A non-nil
	// return fails the write without recording anything.
	FailOn func(category string, segments []string) error
}

var _ Writer = (*InMemoryWriter)(nil)

// NewInMemory constructs an empty in-memory writer.
func NewInMemory() *InMemoryWriter {
	return &InMemoryWriter{records: make(map[string][]byte)}
}

// Write stores the marshalled record under category/segments….
func (w *InMemoryWriter) Write(ctx context.Context, category string, segments []string, record any) error {
	if w.FailOn != nil {
		if err := w.FailOn(category, segments); err != nil {
			return err
		}
	}

	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("%w: encode %s record: %v", ErrFilesystem, category, err)
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	w.records[path.Join(append([]string{category}, segments...)...)] = data

	return nil
}

// Get returns the stored bytes for a slash-joined path.
func (w *InMemoryWriter) Get(key string) ([]byte, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	data, ok := w.records[key]

	return data, ok
}

// Count reports how many records are stored.
func (w *InMemoryWriter) Count() int {
	w.mu.Lock()
	defer w.mu.Unlock()

	return len(w.records)
}

// Keys returns the stored paths in no particular order.
func (w *InMemoryWriter) Keys() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	keys := make([]string, 0, len(w.records))
	for k := range w.records {
		keys = append(keys, k)
	}

	return keys
}

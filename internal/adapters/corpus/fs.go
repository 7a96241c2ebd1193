package corpus

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/okian/boxscore/pkg/metrics"
)

const (
	defaultRoot = "out"

	dirMode  = 0o755
	fileMode = 0o644
)

// FSWriter writes records beneath a root directory, creating the
// intermediate directories on demand.
type FSWriter struct {
	root string
}

var _ Writer = (*FSWriter)(nil)

// NewFS constructs a filesystem writer rooted at "out" unless
// overridden by options.
func NewFS(opts ...Option) *FSWriter {
	w := &FSWriter{root: defaultRoot}
	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write marshals the record and replaces the document at
// root/category/segments[0]/…/segments[n-1].json.
func (w *FSWriter) Write(ctx context.Context, category string, segments []string, record any) error {
	if len(segments) == 0 {
		metrics.RecordWriteFailure(category)

		return fmt.Errorf("%w: no path segments for %s record", ErrFilesystem, category)
	}

	data, err := json.Marshal(record)
	if err != nil {
		metrics.RecordWriteFailure(category)

		return fmt.Errorf("%w: encode %s record: %v", ErrFilesystem, category, err)
	}

	dir := filepath.Join(append([]string{w.root, category}, segments[:len(segments)-1]...)...)
	if err := os.MkdirAll(dir, dirMode); err != nil {
		metrics.RecordWriteFailure(category)

		return fmt.Errorf("%w: create %s: %v", ErrFilesystem, dir, err)
	}

	path := filepath.Join(dir, segments[len(segments)-1]+".json")
	if err := os.WriteFile(path, data, fileMode); err != nil {
		metrics.RecordWriteFailure(category)

		return fmt.Errorf("%w: write %s: %v", ErrFilesystem, path, err)
	}

	metrics.RecordWrite(category)

	return nil
}

package results

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/gantrybuild/gantry/internal/core/domain"
	"go.trai.ch/zerr"
)

// FileSource implements ports.TestRecordSource over a JSON records file.
//
// The file holds an array of records as written by the test harness:
//
//	[{"name": "TestParse", "failed": false, "age": 0}, ...]
//
// The file is re-read on every call because activities generate it while the
// pipeline runs. A missing file is an error; an activity gathering results
// expects its harness to have produced them.
type FileSource struct {
	path string
	mu   sync.Mutex
}

// NewFileSource creates a source backed by the records file at the given path.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: filepath.Clean(path)}
}

// Records returns the records passing the filter, in file order.
func (s *FileSource) Records(_ context.Context, filter domain.RecordFilter) ([]domain.TestRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	//nolint:gosec // Path is cleaned and provided by trusted caller
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read test records")
	}

	var records []domain.TestRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, zerr.Wrap(err, "failed to unmarshal test records")
	}

	var out []domain.TestRecord
	for _, rec := range records {
		if filter.Match(rec.Name) {
			out = append(out, rec)
		}
	}
	return out, nil
}

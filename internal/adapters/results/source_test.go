package results_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/gantrybuild/gantry/internal/adapters/results"
	"github.com/gantrybuild/gantry/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeRecords(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "records.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestFileSource_Records(t *testing.T) {
	path := writeRecords(t, `[
		{"name": "TestParse", "failed": false, "age": 0},
		{"name": "TestFlaky", "failed": true, "age": 3}
	]`)

	src := results.NewFileSource(path)
	records, err := src.Records(context.Background(), domain.RecordFilter{})
	require.NoError(t, err)

	assert.Equal(t, []domain.TestRecord{
		{Name: "TestParse", Failed: false, Age: 0},
		{Name: "TestFlaky", Failed: true, Age: 3},
	}, records)
}

func TestFileSource_Filter(t *testing.T) {
	path := writeRecords(t, `[
		{"name": "TestAPICreate", "failed": false},
		{"name": "TestAPIDelete", "failed": true, "age": 1},
		{"name": "TestUISmoke", "failed": false}
	]`)

	src := results.NewFileSource(path)

	filter, err := domain.NewRecordFilter("^TestAPI", "Delete$")
	require.NoError(t, err)

	records, err := src.Records(context.Background(), filter)
	require.NoError(t, err)

	require.Len(t, records, 1)
	assert.Equal(t, "TestAPICreate", records[0].Name)
}

func TestFileSource_MissingFile(t *testing.T) {
	src := results.NewFileSource(filepath.Join(t.TempDir(), "absent.json"))

	_, err := src.Records(context.Background(), domain.RecordFilter{})
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestFileSource_MalformedFile(t *testing.T) {
	path := writeRecords(t, `{"not": "an array"`)

	src := results.NewFileSource(path)
	_, err := src.Records(context.Background(), domain.RecordFilter{})
	assert.Error(t, err)
}

func TestFileSource_RereadsOnEveryCall(t *testing.T) {
	path := writeRecords(t, `[]`)
	src := results.NewFileSource(path)

	records, err := src.Records(context.Background(), domain.RecordFilter{})
	require.NoError(t, err)
	assert.Empty(t, records)

	require.NoError(t, os.WriteFile(path, []byte(`[{"name": "TestLate", "failed": false}]`), 0o644))

	records, err = src.Records(context.Background(), domain.RecordFilter{})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "TestLate", records[0].Name)
}

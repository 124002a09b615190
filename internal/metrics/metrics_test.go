package metrics

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteTextfile(t *testing.T) {
	EntriesEnriched.Add(2)
	FilesProcessed.WithLabelValues("enrich", "written").Inc()

	path := filepath.Join(t.TempDir(), "vocab.prom")
	require.NoError(t, WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "vocab_entries_enriched_total")
	assert.Contains(t, string(data), `vocab_files_processed_total{job="enrich",result="written"}`)
}

func TestWriteTextfileEmptyPath(t *testing.T) {
	assert.NoError(t, WriteTextfile(""))
}

func TestCounterValues(t *testing.T) {
	before := testutil.ToFloat64(EntriesExported.WithLabelValues("skipped"))
	EntriesExported.WithLabelValues("skipped").Inc()
	assert.Equal(t, before+1, testutil.ToFloat64(EntriesExported.WithLabelValues("skipped")))
}

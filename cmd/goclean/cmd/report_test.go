package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dbsmedya/goclean/internal/config"
)

func TestReportCommandStructure(t *testing.T) {
	assert.NotNil(t, reportCmd)
	assert.Equal(t, "report", reportCmd.Use)
	assert.NotEmpty(t, reportCmd.Short)
	assert.NotEmpty(t, reportCmd.Long)
	assert.NotNil(t, reportCmd.RunE)
}

func TestReportIsAddedToRoot(t *testing.T) {
	found := false
	for _, cmd := range rootCmd.Commands() {
		if cmd.Name() == "report" {
			found = true
			break
		}
	}
	assert.True(t, found, "report command should be added to root command")
}

func TestIngestDataset_CSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.csv")
	require.NoError(t, os.WriteFile(path, []byte("id,name\n1,Alice\n2,Bob\n"), 0o644))

	cfg := config.DefaultConfig()
	cfg.Input.Path = path

	d, err := ingestDataset(cfg)
	require.NoError(t, err)
	assert.Equal(t, 2, d.NumRows())
	assert.Equal(t, []string{"id", "name"}, d.Names())
}

func TestIngestDataset_MissingCSV(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Input.Path = filepath.Join(t.TempDir(), "absent.csv")

	_, err := ingestDataset(cfg)
	assert.Error(t, err)
}

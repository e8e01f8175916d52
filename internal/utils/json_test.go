package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type report struct {
	SaveCode   string         `json:"save_code"`
	TotalValue int            `json:"total_value"`
	Crops      map[string]int `json:"crops"`
}

func TestLoadJSON(t *testing.T) {
	t.Run("loads a report", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "report.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"save_code": "v0.2_DIM-1_CROPS-TNNNNNNNN", "total_value": 66}`), 0600))

		var got report
		require.NoError(t, LoadJSON(path, &got))
		assert.Equal(t, "v0.2_DIM-1_CROPS-TNNNNNNNN", got.SaveCode)
		assert.Equal(t, 66, got.TotalValue)
	})

	t.Run("missing file", func(t *testing.T) {
		var got report
		err := LoadJSON(filepath.Join(t.TempDir(), "absent.json"), &got)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read file")
	})

	t.Run("invalid JSON", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "invalid.json")
		require.NoError(t, os.WriteFile(path, []byte("{invalid json}"), 0600))

		var got report
		err := LoadJSON(path, &got)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to unmarshal JSON")
	})
}

func TestSaveJSON(t *testing.T) {
	t.Run("writes indented JSON", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "report.json")
		require.NoError(t, SaveJSON(path, report{SaveCode: "x", Crops: map[string]int{"tomato": 2}}))

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(content), "\n  \"save_code\": \"x\"")
		assert.Equal(t, byte('\n'), content[len(content)-1])

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(ReportFilePermission), info.Mode().Perm())
	})

	t.Run("creates parent directories", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "reports", "2026", "report.json")
		require.NoError(t, SaveJSON(path, report{SaveCode: "x"}))
		assert.FileExists(t, path)
	})

	t.Run("replaces an existing report", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "report.json")
		require.NoError(t, SaveJSON(path, report{TotalValue: 1}))
		require.NoError(t, SaveJSON(path, report{TotalValue: 2}))

		var got report
		require.NoError(t, LoadJSON(path, &got))
		assert.Equal(t, 2, got.TotalValue)

		entries, err := os.ReadDir(filepath.Dir(path))
		require.NoError(t, err)
		assert.Len(t, entries, 1, "temporary file left behind")
	})

	t.Run("unserialisable data", func(t *testing.T) {
		err := SaveJSON(filepath.Join(t.TempDir(), "bad.json"), map[string]any{"ch": make(chan int)})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to marshal data")
	})
}

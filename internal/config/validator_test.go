package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateEnv_MissingVersion(t *testing.T) {
	t.Setenv(EnvSchemaVersion, "")
	os.Unsetenv(EnvSchemaVersion)

	err := ValidateEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ENV_SCHEMA_VERSION is not set")
}

func TestValidateEnv_VersionMismatch(t *testing.T) {
	t.Setenv(EnvSchemaVersion, "0.9")

	err := ValidateEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ENV_SCHEMA_VERSION mismatch")
	assert.Contains(t, err.Error(), "expected 1.0, got 0.9")
}

func TestValidateEnv_OK(t *testing.T) {
	t.Setenv(EnvSchemaVersion, ExpectedEnvSchemaVersion)
	assert.NoError(t, ValidateEnv())
}

func TestValidateEnvWithWarnings(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.json")

	tests := []struct {
		name     string
		env      map[string]string
		contains []string
	}{
		{
			name:     "clean development setup",
			env:      map[string]string{EnvEnvironment: "dev"},
			contains: nil,
		},
		{
			name:     "example api key",
			env:      map[string]string{EnvAPIKey: ExampleAPIKey},
			contains: []string{"API_KEY"},
		},
		{
			name:     "open api in production",
			env:      map[string]string{EnvEnvironment: "prod"},
			contains: []string{"API_KEY is empty in production"},
		},
		{
			name:     "unreadable catalog",
			env:      map[string]string{EnvCatalogPath: missing},
			contains: []string{"CATALOG_PATH"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnvVars(t)
			t.Setenv(EnvSchemaVersion, ExpectedEnvSchemaVersion)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			warnings, err := ValidateEnvWithWarnings()
			require.NoError(t, err, "Should not error even with warnings")
			require.Len(t, warnings, len(tt.contains))
			for i, want := range tt.contains {
				assert.Contains(t, warnings[i], want)
			}
		})
	}
}

func TestValidateEnvWithWarnings_PropagatesErrors(t *testing.T) {
	t.Setenv(EnvSchemaVersion, "2.0")

	warnings, err := ValidateEnvWithWarnings()
	assert.Error(t, err)
	assert.Nil(t, warnings)
}

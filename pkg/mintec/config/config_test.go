package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bennofs/mintec/pkg/mintec"
	"github.com/bennofs/mintec/pkg/mintec/certificate"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "mintec.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
template: vorlage.pdf
output_dir: out
locale: de_DE
workers: 8
skip_existing: true
fields:
  overall: Einstufung
logging:
  level: debug
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "vorlage.pdf", cfg.Template)
	assert.Equal(t, "out", cfg.OutputDir)
	assert.Equal(t, "de_DE", cfg.Locale)
	assert.Equal(t, 8, cfg.Workers)
	assert.True(t, cfg.SkipExisting)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, mintec.DefaultInstitution, cfg.Institution)
	assert.Equal(t, "Einstufung", cfg.Fields.Overall)
	assert.Equal(t, certificate.DefaultFields().Name, cfg.Fields.Name)

	opts := cfg.Options()
	assert.Equal(t, "Einstufung", opts.ResolveFields().Overall)
	assert.Equal(t, "de_DE", string(opts.ResolveLocale()))
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad yaml", "workers: [1"},
		{"no workers", "workers: 0"},
		{"bad level", "logging:\n  level: loud"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			assert.Error(t, err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

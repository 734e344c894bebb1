package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig_Valid(t *testing.T) {
	path := writeConfig(t, `{"corpus": "jobs.json", "port": 9090, "plan_timeout_seconds": 15}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "jobs.json", cfg.Corpus)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, 15, cfg.PlanTimeoutSeconds)
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_MalformedJSON(t *testing.T) {
	_, err := LoadConfig(writeConfig(t, `{"corpus": `))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestValidate(t *testing.T) {
	assert.NoError(t, (&Config{}).Validate())
	assert.Error(t, (&Config{Port: -1}).Validate())
	assert.Error(t, (&Config{Port: 70000}).Validate())
	assert.Error(t, (&Config{PlanTimeoutSeconds: -5}).Validate())
	assert.Error(t, (&Config{Corpus: "/definitely/missing/jobs.json"}).Validate())
}

func TestValidate_ExistingCorpus(t *testing.T) {
	corpusPath := filepath.Join(t.TempDir(), "jobs.json")
	require.NoError(t, os.WriteFile(corpusPath, []byte("[]"), 0o644))

	cfg := Config{Corpus: corpusPath}
	assert.NoError(t, cfg.Validate())
}

func TestMergeWithDefaults(t *testing.T) {
	base := Config{Port: 9090}
	merged := base.MergeWithDefaults(Config{
		Corpus:             "default.json",
		APIKey:             "key-from-file",
		Port:               8080,
		PlanTimeoutSeconds: 30,
	})

	assert.Equal(t, "default.json", merged.Corpus)
	assert.Equal(t, "key-from-file", merged.APIKey)
	assert.Equal(t, 9090, merged.Port, "explicit value wins over default")
	assert.Equal(t, 30, merged.PlanTimeoutSeconds)
}

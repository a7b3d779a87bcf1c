package dashboard

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	body := `{
		"server_addr": ":9090",
		"compat_decoding": true,
		"llm": {"provider": "mock", "model": "test-model"}
	}`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.ServerAddr)
	assert.True(t, cfg.CompatDecoding)
	require.NotNil(t, cfg.LLM)
	assert.Equal(t, "mock", cfg.LLM.Provider)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}

func TestLoadConfigBadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte("{nope"), 0o644))
	_, err := LoadConfig(path)
	assert.Error(t, err)
}

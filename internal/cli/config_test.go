package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigRoundTripYAMLAndTOML(t *testing.T) {
	for _, name := range []string{"config.yaml", "config.toml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "nested", name)
			want := Config{
				Version:       ConfigFormatVersion,
				ServerURL:     "http://localhost:8000",
				APIKey:        "sk-123456",
				LastSessionID: "s1",
				LastAgentID:   "a1",
			}
			require.NoError(t, want.WriteConfig(path))

			info, err := os.Stat(path)
			require.NoError(t, err)
			assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

			config = nil
			require.NoError(t, LoadConfig(path))
			assert.Equal(t, want, *GetConfig())
		})
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	config = nil
	require.NoError(t, LoadConfig(filepath.Join(t.TempDir(), "absent.yaml")))
	assert.Equal(t, ConfigFormatVersion, GetConfig().Version)
	assert.Empty(t, GetConfig().APIKey)
}

func TestLoadConfigRejects(t *testing.T) {
	tests := map[string]string{
		"bad yaml":       "version: [",
		"no version":     "api_key: k\n",
		"newer version":  "version: 1.0.0\n",
		"bad version":    "version: latest\n",
		"bad server url": "version: 0.1.0\nserver_url: ftp://x\n",
	}
	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
			assert.Error(t, LoadConfig(path))
		})
	}
}

func TestConfigSetAndShow(t *testing.T) {
	f := newFakeNotte()
	cfgPath := filepath.Join(t.TempDir(), "notte.toml")

	_, err := runCLI(t, f, cfgPath, "config", "set", "--key", "sk-abcdef", "--url", "localhost:8000/")
	require.NoError(t, err)

	content, err := os.ReadFile(cfgPath)
	require.NoError(t, err)
	assert.Contains(t, string(content), `api_key = "sk-abcdef"`)
	assert.Contains(t, string(content), `server_url = "https://localhost:8000"`)

	out, err := runCLI(t, f, cfgPath, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "API key: *****cdef")
	assert.NotContains(t, out, "sk-abcdef")

	_, err = runCLI(t, f, cfgPath, "config", "set")
	assert.Error(t, err)
}

func TestConfigSetIgnoresGlobalFlags(t *testing.T) {
	f := newFakeNotte()
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")

	// runCLI always passes the global --api-key and --server flags.
	_, err := runCLI(t, f, cfgPath, "config", "set", "--url", "http://localhost:8000")
	require.NoError(t, err)

	content, err := os.ReadFile(cfgPath)
	require.NoError(t, err)
	assert.Contains(t, string(content), "server_url: http://localhost:8000")
	assert.NotContains(t, string(content), "api_key")
	assert.NotContains(t, string(content), "test-key")

	_, err = runCLI(t, f, cfgPath, "config", "set")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nothing to set")
}

func TestMorphServer(t *testing.T) {
	assert.Equal(t, "https://api.notte.cc", MorphServer("api.notte.cc/"))
	assert.Equal(t, "http://localhost:8000", MorphServer("http://localhost:8000"))
	assert.Empty(t, MorphServer(""))
}

func TestMaskKey(t *testing.T) {
	assert.Equal(t, "***", maskKey("abc"))
	assert.Equal(t, "**cdef", maskKey("abcdef"))
}

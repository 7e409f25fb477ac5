package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, text string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "barescript.toml")
	require.NoError(t, os.WriteFile(path, []byte(text), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
debug = true
fetch_limit = 8
fetch_timeout = "5s"
url_base = "https://example.com/"

[globals]
dsn = "file:globals.db"

[log]
level = "debug"
`)

	cfg := Default()
	require.NoError(t, Load(path, &cfg))

	want := Configuration{
		Debug:        true,
		FetchLimit:   8,
		FetchTimeout: Duration{5 * time.Second},
		RootPath:     DefaultRootPath,
		URLBase:      "https://example.com/",
		Globals:      GlobalsConfig{Driver: DefaultDriver, DSN: "file:globals.db"},
		Log:          LogConfig{Level: "debug"},
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadErrors(t *testing.T) {
	testCases := []struct {
		name string
		text string
		want string
	}{
		{"unknown key", "colour = true\n", "unknown config keys"},
		{"bad duration", "fetch_timeout = \"soon\"\n", "failed to load config"},
		{"negative limit", "fetch_limit = -1\n", "fetch_limit"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			err := Load(writeConfig(t, tc.text), &cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	cfg := Default()
	err := Load(filepath.Join(t.TempDir(), "missing.toml"), &cfg)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

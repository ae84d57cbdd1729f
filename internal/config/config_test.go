package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestValidate checks default filling and rejection of path-like manifest names.
func TestValidate(t *testing.T) {
	t.Parallel()

	// Nil settings.
	err := Validate(nil)
	require.Error(t, err)

	// Empty manifest name gets the default.
	cfg := new(Config)

	err = Validate(cfg)
	require.NoError(t, err)
	require.Equal(t, DefaultAddonManifestName, cfg.AddonManifestName)

	// Manifest name must not be a path.
	cfg = &Config{
		AddonManifestName: "nested/addon.xml",
	}

	err = Validate(cfg)
	require.Error(t, err)
}

// TestLoad_MissingFile ensures a missing settings file yields defaults, not an error.
func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

// TestSaveLoadRoundtrip ensures settings are persisted and loaded back correctly.
func TestSaveLoadRoundtrip(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "settings.yaml")

	cfg := &Config{
		OutputFolder:      dir,
		IncludeUserdata:   true,
		AddonManifestName: "addon.xml",
	}

	require.NoError(t, Save(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, cfg.OutputFolder, loaded.OutputFolder)
	require.Equal(t, cfg.IncludeUserdata, loaded.IncludeUserdata)
	require.Equal(t, cfg.AddonManifestName, loaded.AddonManifestName)

	// File exists.
	_, err = os.Stat(path)
	require.NoError(t, err)
}

package manifest

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oshokin/kodi-build-tools/internal/domain/build"
)

// TestFileRepository_NotFound verifies Load returns ErrNotFound for a missing file.
func TestFileRepository_NotFound(t *testing.T) {
	t.Parallel()

	repo := NewFileRepository(filepath.Join(t.TempDir(), "missing.yaml"))

	m, err := repo.Load(context.Background())
	require.ErrorIs(t, err, ErrNotFound)
	require.Nil(t, m)
}

// TestFileRepository_SaveLoad_Roundtrip ensures Save followed by Load returns an equal manifest.
func TestFileRepository_SaveLoad_Roundtrip(t *testing.T) {
	t.Parallel()

	file := filepath.Join(t.TempDir(), "manifest.yaml")
	repo := NewFileRepository(file)

	want := &build.Manifest{
		Addons: []build.Addon{
			{
				ID:      "plugin.video.example",
				Version: "2.1.0",
				Name:    "Example",
				Requires: []build.Dependency{
					{Addon: "xbmc.python", Version: "3.0.0"},
				},
			},
			{ID: "script.module.six", Version: "1.16.0"},
		},
		Userdata:    []string{"addon_data", "keymaps"},
		HasUserdata: true,
	}

	require.NoError(t, repo.Save(context.Background(), want))

	got, err := repo.Load(context.Background())
	require.NoError(t, err)
	require.Equal(t, want.Addons, got.Addons)
	require.Equal(t, want.Userdata, got.Userdata)
	require.Equal(t, want.HasUserdata, got.HasUserdata)

	_, err = os.Stat(file)
	require.NoError(t, err)
}

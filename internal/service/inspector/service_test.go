package inspector

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oshokin/kodi-build-tools/internal/repository/manifest"
)

// writeFile creates a file with parents.
func writeFile(t *testing.T, path, contents string) {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
}

// TestRun_Report verifies the full report: ordering, dependency lines,
// userdata listing and the parse diagnostic for the broken addon.
func TestRun_Report(t *testing.T) {
	root := t.TempDir()

	writeFile(t, filepath.Join(root, "addons", "plugin.video.example", "addon.xml"),
		`<addon id="plugin.video.example" version="2.1.0" name="Example">
  <requires>
    <import addon="xbmc.python" version="3.0.0"/>
    <import addon="script.module.six"/>
  </requires>
</addon>`)
	writeFile(t, filepath.Join(root, "addons", "script.module.six", "addon.xml"),
		`<addon id="script.module.six" version="1.16.0" name="Six"/>`)
	writeFile(t, filepath.Join(root, "addons", "broken.addon", "addon.xml"),
		`<addon id="broken.addon"`)
	writeFile(t, filepath.Join(root, "userdata", "keymaps", "gen.xml"), "<keymap/>")

	var out bytes.Buffer

	err := Run(context.Background(), &Options{
		ConfigPath: filepath.Join(root, "no-settings.yaml"),
		RootPath:   root,
		Out:        &out,
	})
	require.NoError(t, err)

	report := out.String()
	lines := strings.Split(strings.TrimRight(report, "\n"), "\n")

	// Diagnostic first, naming the failing file.
	require.Contains(t, lines[0], "failed to parse")
	require.Contains(t, lines[0], filepath.Join("addons", "broken.addon", "addon.xml"))

	require.Equal(t, "Detected addons:", lines[1])
	require.Equal(t, "- plugin.video.example 2.1.0 (Example)", lines[2])
	require.Equal(t, "    depends on: xbmc.python@3.0.0, script.module.six", lines[3])
	require.Equal(t, "- script.module.six 1.16.0 (Six)", lines[4])
	require.Equal(t, "", lines[5])
	require.Equal(t, "Userdata folders:", lines[6])
	require.Equal(t, "- keymaps", lines[7])

	// Only the valid addons made it into the inventory.
	require.NotContains(t, report, "- broken.addon")
}

// TestRun_NoDependsLine ensures addons without dependencies print no depends line.
func TestRun_NoDependsLine(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "addons", "skin.plain", "addon.xml"),
		`<addon id="skin.plain" version="1.0.0" name="Plain"/>`)

	var out bytes.Buffer

	err := Run(context.Background(), &Options{RootPath: root, Out: &out})
	require.NoError(t, err)

	require.NotContains(t, out.String(), "depends on:")
	require.Contains(t, out.String(), "No userdata directory found")
}

// TestRun_MissingAddonsDir ensures a build root without addons is an
// informational message, not an error.
func TestRun_MissingAddonsDir(t *testing.T) {
	root := t.TempDir()

	var out bytes.Buffer

	err := Run(context.Background(), &Options{RootPath: root, Out: &out})
	require.NoError(t, err)
	require.Equal(t,
		filepath.Join(root, "addons")+" is not a directory\n",
		out.String())
}

// TestRun_ExportsManifest verifies the optional YAML export round-trips
// through the manifest repository.
func TestRun_ExportsManifest(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "addons", "plugin.video.example", "addon.xml"),
		`<addon id="plugin.video.example" version="2.1.0" name="Example"/>`)

	exportPath := filepath.Join(t.TempDir(), "manifest.yaml")

	var out bytes.Buffer

	err := Run(context.Background(), &Options{
		RootPath:   root,
		OutputPath: exportPath,
		Out:        &out,
	})
	require.NoError(t, err)

	loaded, err := manifest.NewFileRepository(exportPath).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, loaded.Addons, 1)
	require.Equal(t, "plugin.video.example", loaded.Addons[0].ID)
}

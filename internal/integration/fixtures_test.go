package integration

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// makeKodiBuild lays out a small but realistic build reference directory:
// a video plugin with dependencies, a python module, a repository addon, a
// skin, one addon with a broken manifest, and a userdata tree.
func makeKodiBuild(t *testing.T) string {
	t.Helper()

	root := t.TempDir()

	writeFile := func(path, contents string) {
		t.Helper()
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	}

	writeFile(filepath.Join(root, "addons", "plugin.video.stream", "addon.xml"),
		`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<addon id="plugin.video.stream" version="3.4.1" name="Streamer" provider-name="Fuse Team" type="xbmc.python.pluginsource">
  <requires>
    <import addon="xbmc.python" version="3.0.0"/>
    <import addon="script.module.requests" version="2.31.0"/>
  </requires>
</addon>`)
	writeFile(filepath.Join(root, "addons", "plugin.video.stream", "resources", "settings.xml"),
		`<settings version="1"/>`)

	writeFile(filepath.Join(root, "addons", "script.module.requests", "addon.xml"),
		`<addon id="script.module.requests" version="2.31.0" name="Requests" provider-name="Kodi" type="xbmc.python.module"/>`)
	writeFile(filepath.Join(root, "addons", "script.module.requests", "lib", "requests", "__init__.py"),
		"__version__ = '2.31.0'\n")

	writeFile(filepath.Join(root, "addons", "repository.main", "addon.xml"),
		`<addon id="repository.main" version="1.0.2" name="Main Repository" provider-name="Fuse Team" type="xbmc.addon.repository"/>`)

	writeFile(filepath.Join(root, "addons", "skin.estuary", "addon.xml"),
		`<addon id="skin.estuary" version="20.0" name="Estuary" provider-name="Kodi" type="xbmc.gui.skin"/>`)

	// Truncated manifest: scanned but never parsed.
	writeFile(filepath.Join(root, "addons", "plugin.video.broken", "addon.xml"),
		`<addon id="plugin.video.broken" version="0.0.1"`)

	writeFile(filepath.Join(root, "userdata", "keymaps", "gen.xml"), "<keymap/>")
	writeFile(filepath.Join(root, "userdata", "addon_data", "plugin.video.stream", "settings.xml"),
		`<settings version="2"/>`)

	return root
}

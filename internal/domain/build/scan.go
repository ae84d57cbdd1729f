package build

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/oshokin/kodi-build-tools/internal/logger"
)

const (
	// AddonsDirName is the subdirectory of a build root holding installed addons.
	AddonsDirName = "addons"
	// UserdataDirName is the subdirectory of a build root holding user state.
	UserdataDirName = "userdata"

	// defaultManifestFilename is used when the caller does not override the manifest name.
	defaultManifestFilename = "addon.xml"
)

// ErrNoAddonsDir reports that the build root has no addons directory.
// Callers treat it as "nothing to report", not as a failure.
var ErrNoAddonsDir = errors.New("addons directory not found")

// Scan walks a build root and assembles its manifest: one record per addon
// directory with a parseable manifest, plus the userdata folder listing.
//
// A directory without a manifest is skipped silently. A malformed manifest is
// recorded in Skipped and scanning continues; a single bad addon never aborts
// the scan. Only the addons directory being absent or an unreadable listing
// surface as errors.
func Scan(ctx context.Context, root, manifestName string) (*Manifest, error) {
	if manifestName == "" {
		manifestName = defaultManifestFilename
	}

	addonsDir := filepath.Join(root, AddonsDirName)

	info, err := os.Stat(addonsDir)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%s: %w", addonsDir, ErrNoAddonsDir)
	}

	// os.ReadDir returns entries sorted by name, which fixes the scan order
	// across platforms.
	entries, err := os.ReadDir(addonsDir)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", addonsDir, err)
	}

	manifest := new(Manifest)

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		manifestPath := filepath.Join(addonsDir, entry.Name(), manifestName)
		if _, err = os.Stat(manifestPath); errors.Is(err, os.ErrNotExist) {
			logger.DebugKV(ctx, "Addon directory has no manifest, skipping", "dir", entry.Name())
			continue
		}

		addon, parseErr := ParseManifest(manifestPath)
		if parseErr != nil {
			manifest.Skipped = append(manifest.Skipped, SkippedManifest{
				Path: manifestPath,
				Err:  parseErr,
			})

			continue
		}

		manifest.Addons = append(manifest.Addons, *addon)
	}

	SortAddons(manifest.Addons)

	userdata, hasUserdata, err := userdataEntries(root)
	if err != nil {
		return nil, err
	}

	manifest.Userdata = userdata
	manifest.HasUserdata = hasUserdata

	return manifest, nil
}

// AddonDirs returns the absolute paths of every immediate subdirectory of the
// addons folder, sorted by name. A missing addons directory yields an empty
// result, mirroring how the packager treats it.
func AddonDirs(root string) ([]string, error) {
	addonsDir := filepath.Join(root, AddonsDirName)

	info, err := os.Stat(addonsDir)
	if errors.Is(err, os.ErrNotExist) || (err == nil && !info.IsDir()) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("stat %s: %w", addonsDir, err)
	}

	entries, err := os.ReadDir(addonsDir)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", addonsDir, err)
	}

	dirs := make([]string, 0, len(entries))

	for _, entry := range entries {
		if entry.IsDir() {
			dirs = append(dirs, filepath.Join(addonsDir, entry.Name()))
		}
	}

	return dirs, nil
}

// UserdataDir returns the userdata directory path and whether it exists.
func UserdataDir(root string) (string, bool, error) {
	userdataDir := filepath.Join(root, UserdataDirName)

	info, err := os.Stat(userdataDir)
	if errors.Is(err, os.ErrNotExist) {
		return "", false, nil
	} else if err != nil {
		return "", false, fmt.Errorf("stat %s: %w", userdataDir, err)
	}

	return userdataDir, info.IsDir(), nil
}

// userdataEntries lists immediate subdirectory names of the userdata folder.
func userdataEntries(root string) ([]string, bool, error) {
	userdataDir, ok, err := UserdataDir(root)
	if err != nil || !ok {
		return nil, false, err
	}

	entries, err := os.ReadDir(userdataDir)
	if err != nil {
		return nil, false, fmt.Errorf("list %s: %w", userdataDir, err)
	}

	names := make([]string, 0, len(entries))

	for _, entry := range entries {
		if entry.IsDir() {
			names = append(names, entry.Name())
		}
	}

	return names, true, nil
}

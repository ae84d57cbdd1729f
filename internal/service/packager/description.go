package packager

import (
	"context"
	"encoding/base64"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/oshokin/kodi-build-tools/internal/archive"
	"github.com/oshokin/kodi-build-tools/internal/logger"
	"github.com/oshokin/kodi-build-tools/internal/version"
)

// Description contains metadata about a packaged build. It accompanies the
// archive so a deployment target can verify what it received.
type Description struct {
	// VersionNumber is the packager version that produced the archive.
	VersionNumber string `yaml:"version"`
	// Build is the base name of the packaged build directory.
	Build string `yaml:"build"`
	// Items lists the top-level archived items relative to the build root.
	Items []string `yaml:"items"`
	// Files maps archive entry names to their base64-encoded checksums.
	Files map[string]string `yaml:"files"`
}

const (
	// descriptionSuffix is appended to the archive path to name its description file.
	descriptionSuffix = ".manifest.yaml"

	// descriptionFileMode is used for the written description.
	descriptionFileMode os.FileMode = 0o644

	// defaultFilesCapacity is the initial capacity for the checksum map.
	defaultFilesCapacity = 64
)

// NewDescription produces a Description initialized with defaults.
func NewDescription(buildName string) *Description {
	return &Description{
		VersionNumber: version.Short(),
		Build:         buildName,
		Files:         make(map[string]string, defaultFilesCapacity),
	}
}

// writeDescription fingerprints every archived file and stores the result as
// YAML next to the archive.
func (p *packager) writeDescription(ctx context.Context, archivePath, root string, items []archive.Item) error {
	desc := NewDescription(filepath.Base(root))

	for _, item := range items {
		rel, err := filepath.Rel(root, item.Path)
		if err != nil {
			return fmt.Errorf("relativize %s: %w", item.Path, err)
		}

		desc.Items = append(desc.Items, filepath.ToSlash(rel))

		if err = desc.addChecksums(root, item); err != nil {
			return err
		}
	}

	contents, err := yaml.Marshal(desc)
	if err != nil {
		return fmt.Errorf("marshal description: %w", err)
	}

	descriptionPath := archivePath + descriptionSuffix
	if err = os.WriteFile(descriptionPath, contents, descriptionFileMode); err != nil {
		return fmt.Errorf("write description: %w", err)
	}

	logger.InfoKV(ctx, "Saved archive description", "path", descriptionPath, "files", len(desc.Files))

	return nil
}

// addChecksums records a checksum per contained file, keyed by archive entry name.
func (d *Description) addChecksums(root string, item archive.Item) error {
	info, err := os.Stat(item.Path)
	if err != nil {
		return fmt.Errorf("stat %s: %w", item.Path, err)
	}

	if !info.IsDir() {
		return d.addFileChecksum(root, item.Path)
	}

	return filepath.WalkDir(item.Path, func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}

		if entry.IsDir() {
			return nil
		}

		return d.addFileChecksum(root, path)
	})
}

// addFileChecksum hashes one file and stores it under its entry name.
func (d *Description) addFileChecksum(root, path string) error {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return fmt.Errorf("relativize %s: %w", path, err)
	}

	checksum, err := archive.FileChecksum(path)
	if err != nil {
		return err
	}

	d.Files[filepath.ToSlash(rel)] = base64.StdEncoding.EncodeToString(checksum)

	return nil
}

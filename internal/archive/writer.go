package archive

import (
	"archive/zip"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/oshokin/kodi-build-tools/internal/logger"
)

// Item is one unit slated for inclusion in an archive: a directory tree or a
// single file. Path must be absolute; entry names inside the archive are
// computed relative to the build root.
type Item struct {
	// Path is the absolute filesystem path of the file or directory.
	Path string
}

// errItemOutsideRoot guards against absolute or parent-relative entry names
// leaking into the archive.
var errItemOutsideRoot = errors.New("path is outside the build root")

// WriteZip archives the provided items into a deflate-compressed ZIP at
// outputPath. Directory items are walked recursively in lexical order; file
// items are added directly. Every entry name is the path relative to root
// with forward slashes, so the addons/<name>/... and userdata/... layout is
// preserved verbatim.
//
// The archive is first written to a temporary file next to the destination
// and renamed into place on success, so an interrupted run never leaves a
// half-written file at outputPath.
func WriteZip(ctx context.Context, outputPath, root string, items []Item) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(outputPath), ".tmp-*.zip")
	if err != nil {
		return fmt.Errorf("create temporary archive: %w", err)
	}

	defer func() {
		if err != nil {
			// Best-effort cleanup.
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	zipWriter := zip.NewWriter(tmp)

	for _, item := range items {
		if err = writeItem(ctx, zipWriter, root, item); err != nil {
			return err
		}
	}

	if err = zipWriter.Close(); err != nil {
		return fmt.Errorf("finalize archive: %w", err)
	}

	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close archive: %w", err)
	}

	if err = os.Rename(tmp.Name(), outputPath); err != nil {
		return fmt.Errorf("move archive into place: %w", err)
	}

	return nil
}

// writeItem adds a single item to the archive, recursing into directories.
func writeItem(ctx context.Context, zipWriter *zip.Writer, root string, item Item) error {
	info, err := os.Stat(item.Path)
	if err != nil {
		return fmt.Errorf("stat %s: %w", item.Path, err)
	}

	if !info.IsDir() {
		return writeFile(ctx, zipWriter, root, item.Path)
	}

	// filepath.WalkDir visits entries in lexical order, keeping the archive
	// layout deterministic.
	return filepath.WalkDir(item.Path, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}

		if d.IsDir() {
			return nil
		}

		return writeFile(ctx, zipWriter, root, path)
	})
}

// writeFile copies one file into the archive under its root-relative name.
func writeFile(ctx context.Context, zipWriter *zip.Writer, root, path string) error {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return fmt.Errorf("relativize %s: %w", path, err)
	}

	if rel == ".." || strings.HasPrefix(rel, ".."+string(os.PathSeparator)) {
		return fmt.Errorf("%s: %w", path, errItemOutsideRoot)
	}

	name := filepath.ToSlash(rel)

	logger.DebugKV(ctx, "Adding file to archive", "entry", name)

	// zip.Writer.Create produces deflate-compressed entries.
	entry, err := zipWriter.Create(name)
	if err != nil {
		return fmt.Errorf("create archive entry %s: %w", name, err)
	}

	source, err := os.Open(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}

	defer func() {
		// Best-effort cleanup.
		_ = source.Close()
	}()

	if _, err = io.Copy(entry, source); err != nil {
		return fmt.Errorf("copy %s into archive: %w", path, err)
	}

	return nil
}

package packager

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/oshokin/kodi-build-tools/internal/archive"
	"github.com/oshokin/kodi-build-tools/internal/config"
	"github.com/oshokin/kodi-build-tools/internal/domain/build"
	"github.com/oshokin/kodi-build-tools/internal/logger"
)

// Options contains inputs for the packager entry point.
type Options struct {
	// ConfigPath is an optional path to the build tool settings (defaults to build-tools-settings.yaml).
	ConfigPath string
	// RootPath is the build reference directory to package.
	RootPath string
	// OutputPath is the archive destination; empty means <output folder>/<root name>.zip.
	OutputPath string
	// IncludeUserdata adds the userdata directory to the archive.
	// The settings file can turn it on by default.
	IncludeUserdata bool
	// WriteChecksumManifest also writes a YAML description with per-file checksums
	// next to the archive.
	WriteChecksumManifest bool
	// Out receives the success message; defaults to os.Stdout.
	Out io.Writer
}

// ErrNothingToPackage reports an empty item set: no addon directories and no
// requested userdata. Distinct from filesystem errors so callers can tell a
// hollow build from an unreadable one.
var ErrNothingToPackage = errors.New("no addons or userdata found to package")

// packager archives one build directory into a ZIP file.
// It is unexported—callers should use Run, which encapsulates setup and validation.
type packager struct {
	// cfg holds the shared build tool settings.
	cfg *config.Config
	// out receives the success message.
	out io.Writer
}

// Run executes the packaging workflow.
func Run(ctx context.Context, opts *Options) error {
	// Set context with logger name for tracking.
	ctx = logger.WithName(ctx, "build-packager")

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	out := opts.Out
	if out == nil {
		out = os.Stdout
	}

	pkg := &packager{
		cfg: cfg,
		out: out,
	}

	if err = pkg.Run(ctx, opts); err != nil {
		if errors.Is(err, ErrNothingToPackage) {
			return err
		}

		return fmt.Errorf("packager failed: %w", err)
	}

	logger.Info(ctx, "Packager completed successfully")

	return nil
}

// Run collects the archive items and writes the ZIP (and optional description).
func (p *packager) Run(ctx context.Context, opts *Options) error {
	// Relative-path computation must stay stable no matter where we run from.
	root, err := filepath.Abs(opts.RootPath)
	if err != nil {
		return fmt.Errorf("resolve build root: %w", err)
	}

	if _, err = os.Stat(root); err != nil {
		return fmt.Errorf("build root: %w", err)
	}

	includeUserdata := opts.IncludeUserdata || p.cfg.IncludeUserdata

	items, err := p.collectItems(root, includeUserdata)
	if err != nil {
		return err
	}

	if len(items) == 0 {
		return fmt.Errorf("%s: %w", root, ErrNothingToPackage)
	}

	outputPath, err := p.resolveOutputPath(root, opts.OutputPath)
	if err != nil {
		return err
	}

	p.warnIfPlayerRunning(ctx)

	logger.InfoKV(ctx, "Writing archive", "path", outputPath, "items", len(items))

	if err = archive.WriteZip(ctx, outputPath, root, items); err != nil {
		return err
	}

	if opts.WriteChecksumManifest {
		if err = p.writeDescription(ctx, outputPath, root, items); err != nil {
			return err
		}
	}

	fmt.Fprintf(p.out, "created %s containing %d items\n", outputPath, len(items))

	return nil
}

// collectItems gathers every addon directory and, when requested, the
// userdata directory. Missing optional structure contributes nothing.
func (p *packager) collectItems(root string, includeUserdata bool) ([]archive.Item, error) {
	addonDirs, err := build.AddonDirs(root)
	if err != nil {
		return nil, err
	}

	items := make([]archive.Item, 0, len(addonDirs)+1)

	for _, dir := range addonDirs {
		items = append(items, archive.Item{Path: dir})
	}

	if includeUserdata {
		userdataDir, ok, userdataErr := build.UserdataDir(root)
		if userdataErr != nil {
			return nil, userdataErr
		}

		if ok {
			items = append(items, archive.Item{Path: userdataDir})
		}
	}

	return items, nil
}

// resolveOutputPath applies the default naming rule: <output folder or cwd>/<root name>.zip.
func (p *packager) resolveOutputPath(root, explicit string) (string, error) {
	if explicit != "" {
		path, err := filepath.Abs(explicit)
		if err != nil {
			return "", fmt.Errorf("resolve output path: %w", err)
		}

		return path, nil
	}

	folder := p.cfg.OutputFolder
	if folder == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("resolve working directory: %w", err)
		}

		folder = cwd
	}

	return filepath.Join(folder, filepath.Base(root)+".zip"), nil
}

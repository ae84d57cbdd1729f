package inspector

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/oshokin/kodi-build-tools/internal/config"
	"github.com/oshokin/kodi-build-tools/internal/domain/build"
	"github.com/oshokin/kodi-build-tools/internal/logger"
	"github.com/oshokin/kodi-build-tools/internal/repository/manifest"
)

// Options contains inputs for the inspector entry point.
type Options struct {
	// ConfigPath is an optional path to the build tool settings (defaults to build-tools-settings.yaml).
	ConfigPath string
	// RootPath is the build reference directory to inspect.
	RootPath string
	// OutputPath, when set, receives the scanned manifest as YAML.
	OutputPath string
	// Out is the report destination; defaults to os.Stdout.
	Out io.Writer
}

// inspector produces the addon inventory report for one build directory.
// It is unexported—callers should use Run, which encapsulates setup.
type inspector struct {
	// cfg holds the shared build tool settings.
	cfg *config.Config
	// out receives the rendered report.
	out io.Writer
}

// Run executes the inspection workflow.
//
// Expected absences (missing build directory, missing addons subdirectory)
// are reported as plain text and end the run normally: they mean "nothing to
// report", not failure.
func Run(ctx context.Context, opts *Options) error {
	// Set context with logger name for tracking.
	ctx = logger.WithName(ctx, "build-inspector")

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	out := opts.Out
	if out == nil {
		out = os.Stdout
	}

	ins := &inspector{
		cfg: cfg,
		out: out,
	}

	if err = ins.Run(ctx, opts.RootPath, opts.OutputPath); err != nil {
		return fmt.Errorf("inspector failed: %w", err)
	}

	return nil
}

// Run scans the build root, prints the report and optionally exports the manifest.
func (i *inspector) Run(ctx context.Context, root, outputPath string) error {
	logger.InfoKV(ctx, "Scanning build directory", "root", root)

	scanned, err := build.Scan(ctx, root, i.cfg.AddonManifestName)
	if errors.Is(err, build.ErrNoAddonsDir) {
		fmt.Fprintf(i.out, "%s is not a directory\n", filepath.Join(root, build.AddonsDirName))
		return nil
	} else if err != nil {
		return err
	}

	i.render(scanned)

	logger.InfoKV(ctx, "Scan finished",
		"addons", len(scanned.Addons),
		"skipped", len(scanned.Skipped),
		"userdata_folders", len(scanned.Userdata))

	if outputPath == "" {
		return nil
	}

	if err = manifest.NewFileRepository(outputPath).Save(ctx, scanned); err != nil {
		return err
	}

	logger.InfoKV(ctx, "Manifest exported", "path", outputPath)

	return nil
}

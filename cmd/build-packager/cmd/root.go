package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/oshokin/kodi-build-tools/internal/config"
	"github.com/oshokin/kodi-build-tools/internal/logger"
	"github.com/oshokin/kodi-build-tools/internal/service/packager"
	"github.com/oshokin/kodi-build-tools/internal/version"
)

var (
	// configPath to the configuration YAML file.
	configPath string

	// includeUserdata adds the userdata directory to the archive.
	includeUserdata bool

	// checksumManifest writes a YAML description with per-file checksums.
	checksumManifest bool

	// logLevel is the minimum level for diagnostic logging.
	logLevel string

	// rootCmd represents the base command for packaging a build directory into a ZIP.
	rootCmd = &cobra.Command{
		Use:   "build-packager [reference-directory] [output-zip-path]",
		Short: "Archive a build's addons (and optionally userdata) into a ZIP",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Setup graceful shutdown handling.
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			if level, ok := logger.ParseLogLevel(logLevel); ok {
				logger.SetLevel(level)
			}

			options := &packager.Options{
				ConfigPath:            configPath,
				RootPath:              args[0],
				IncludeUserdata:       includeUserdata,
				WriteChecksumManifest: checksumManifest,
				Out:                   cmd.OutOrStdout(),
			}
			if len(args) > 1 {
				options.OutputPath = args[1]
			}

			return packager.Run(ctx, options)
		},
	}
)

// Execute runs the build-packager CLI and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	// Setup command flags with consistent naming and descriptions.
	rootCmd.Flags().StringVarP(&configPath, "config", "c", config.DefaultConfigFilename, "path to configuration file")
	rootCmd.Flags().BoolVar(&includeUserdata, "include-userdata", false, "include the userdata folder in the archive")
	rootCmd.Flags().BoolVar(&checksumManifest, "checksum-manifest", false, "write a YAML checksum description next to the archive")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "info", "minimum log level (debug|info|warn|error|fatal)")
}

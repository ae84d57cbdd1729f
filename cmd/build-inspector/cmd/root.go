package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/oshokin/kodi-build-tools/internal/config"
	"github.com/oshokin/kodi-build-tools/internal/logger"
	"github.com/oshokin/kodi-build-tools/internal/service/inspector"
	"github.com/oshokin/kodi-build-tools/internal/version"
)

var (
	// configPath to the configuration YAML file.
	configPath string

	// outputPath receives the scanned manifest as YAML when set.
	outputPath string

	// logLevel is the minimum level for diagnostic logging.
	logLevel string

	// rootCmd represents the base command for inspecting a build directory.
	rootCmd = &cobra.Command{
		Use:   "build-inspector [reference-directory]",
		Short: "Report addons and userdata found in a build directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Setup graceful shutdown handling.
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			if level, ok := logger.ParseLogLevel(logLevel); ok {
				logger.SetLevel(level)
			}

			options := &inspector.Options{
				ConfigPath: configPath,
				RootPath:   args[0],
				OutputPath: outputPath,
				Out:        cmd.OutOrStdout(),
			}

			return inspector.Run(ctx, options)
		},
	}
)

// Execute runs the build-inspector CLI and exits with non-zero status on error.
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
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "export the scanned manifest as YAML to this path")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "info", "minimum log level (debug|info|warn|error|fatal)")
}

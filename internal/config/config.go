package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds defaults shared by the build tool binaries.
type Config struct {
	// OutputFolder is where archives are written when no explicit output path is given.
	// Empty means the current working directory.
	OutputFolder string `yaml:"output_folder"`
	// IncludeUserdata is the default for the packager's --include-userdata flag.
	IncludeUserdata bool `yaml:"include_userdata"`
	// AddonManifestName is the manifest filename looked up inside each addon directory.
	AddonManifestName string `yaml:"addon_manifest_name"`
}

const (
	// DefaultConfigFilename is the default filename for build tool settings.
	DefaultConfigFilename = "build-tools-settings.yaml"

	// DefaultAddonManifestName is the manifest filename used when settings do not override it.
	DefaultAddonManifestName = "addon.xml"

	// DefaultFilePermissions is the default file permission for config files.
	DefaultFilePermissions = 0o600
)

var (
	// errConfigIsNotSet is returned when a nil configuration is provided.
	errConfigIsNotSet = errors.New("configuration is not set")
	// errManifestNameIsPath is returned when the manifest name contains path separators.
	errManifestNameIsPath = errors.New("addon manifest name must be a bare filename")
)

// Default returns settings used when no configuration file is present.
func Default() *Config {
	return &Config{
		AddonManifestName: DefaultAddonManifestName,
	}
}

// Load reads configuration from the provided path and validates essential fields.
// A missing file is not an error: the tools must work with zero setup against
// any build directory, so defaults are returned instead.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigFilename
	}

	contents, err := os.ReadFile(filepath.Clean(path))
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	} else if err != nil {
		return nil, fmt.Errorf("read settings: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(contents, &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal settings: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Save writes settings to the provided path.
func Save(path string, cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if path == "" {
		path = DefaultConfigFilename
	}

	if err := Validate(cfg); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	// Restrict permissions.
	if err := os.WriteFile(filepath.Clean(path), data, DefaultFilePermissions); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}

	return nil
}

// Validate checks the provided settings and fills in defaults for omitted fields.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if cfg.AddonManifestName == "" {
		cfg.AddonManifestName = DefaultAddonManifestName
	}

	if strings.ContainsRune(cfg.AddonManifestName, os.PathSeparator) ||
		strings.ContainsRune(cfg.AddonManifestName, '/') {
		return fmt.Errorf("%w: %s", errManifestNameIsPath, cfg.AddonManifestName)
	}

	return nil
}

package build

import "sort"

// Dependency is a single entry of an addon's requires section.
type Dependency struct {
	// Addon is the identifier of the required addon.
	Addon string `yaml:"addon"`
	// Version is the minimum required version, empty when the manifest omits it.
	Version string `yaml:"version,omitempty"`
}

// String renders the dependency as "addon@version", or just "addon"
// when no version is declared.
func (d Dependency) String() string {
	if d.Version == "" {
		return d.Addon
	}

	return d.Addon + "@" + d.Version
}

// Addon describes one installed addon as declared by its manifest.
// Missing manifest attributes map to empty strings, never to errors.
type Addon struct {
	// ID is the addon identifier, e.g. "plugin.video.example".
	ID string `yaml:"id"`
	// Version is the declared addon version.
	Version string `yaml:"version,omitempty"`
	// Name is the human-readable addon name.
	Name string `yaml:"name,omitempty"`
	// Provider is the manifest's provider-name attribute.
	Provider string `yaml:"provider,omitempty"`
	// Type is the addon extension point type (plugin/skin/script/...), empty when absent.
	Type string `yaml:"type,omitempty"`
	// Requires lists declared dependencies in manifest order.
	Requires []Dependency `yaml:"requires,omitempty"`
}

// SkippedManifest records an addon directory whose manifest failed to parse.
type SkippedManifest struct {
	// Path is the manifest file that could not be parsed.
	Path string
	// Err is the underlying XML parse error.
	Err error
}

// Manifest is the result of scanning one build directory.
// It is constructed fresh per scan and never mutated afterwards.
type Manifest struct {
	// Addons holds the parsed addon records, sorted by ID (empty IDs first).
	Addons []Addon `yaml:"addons"`
	// Userdata lists immediate subdirectory names of the userdata folder.
	Userdata []string `yaml:"userdata,omitempty"`
	// HasUserdata reports whether a userdata directory exists at all.
	HasUserdata bool `yaml:"has_userdata"`
	// Skipped records manifests that failed to parse. Not persisted:
	// diagnostics belong to the run that produced them.
	Skipped []SkippedManifest `yaml:"-"`
}

// SortAddons orders records by ID so reports are reproducible across
// platforms. Records without an ID sort first.
func SortAddons(addons []Addon) {
	sort.SliceStable(addons, func(i, j int) bool {
		return addons[i].ID < addons[j].ID
	})
}

package build

import (
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"
)

// manifestXML mirrors the attributes this tool reads from an addon manifest.
// No XMLName is declared on purpose: Kodi manifests use an <addon> root, but
// the scanner accepts any root element and just pulls the known attributes.
type manifestXML struct {
	ID       string       `xml:"id,attr"`
	Version  string       `xml:"version,attr"`
	Name     string       `xml:"name,attr"`
	Provider string       `xml:"provider-name,attr"`
	Type     string       `xml:"type,attr"`
	Requires *requiresXML `xml:"requires"`
}

type requiresXML struct {
	Imports []importXML `xml:"import"`
}

type importXML struct {
	Addon   string `xml:"addon,attr"`
	Version string `xml:"version,attr"`
}

// ParseManifest reads and decodes a single addon manifest file.
// Absent attributes yield empty fields; only I/O and XML syntax
// problems surface as errors.
func ParseManifest(path string) (*Addon, error) {
	contents, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}

	var m manifestXML
	if err := xml.Unmarshal(contents, &m); err != nil {
		// Returned as-is: callers report it next to the file path.
		return nil, err
	}

	addon := &Addon{
		ID:       m.ID,
		Version:  m.Version,
		Name:     m.Name,
		Provider: m.Provider,
		Type:     m.Type,
	}

	if m.Requires != nil {
		addon.Requires = make([]Dependency, 0, len(m.Requires.Imports))
		for _, imp := range m.Requires.Imports {
			addon.Requires = append(addon.Requires, Dependency{
				Addon:   imp.Addon,
				Version: imp.Version,
			})
		}
	}

	return addon, nil
}

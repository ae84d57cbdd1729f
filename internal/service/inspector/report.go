package inspector

import (
	"fmt"
	"strings"

	"github.com/oshokin/kodi-build-tools/internal/domain/build"
)

// render writes the human-readable report.
//
// Parse diagnostics come first (they occur while collecting), then the sorted
// addon inventory, a blank separator, and the userdata section.
func (i *inspector) render(m *build.Manifest) {
	for _, skipped := range m.Skipped {
		fmt.Fprintf(i.out, "failed to parse %s: %v\n", skipped.Path, skipped.Err)
	}

	fmt.Fprintln(i.out, "Detected addons:")

	for _, addon := range m.Addons {
		fmt.Fprintf(i.out, "- %s %s (%s)\n", addon.ID, addon.Version, addon.Name)

		if len(addon.Requires) == 0 {
			continue
		}

		deps := make([]string, 0, len(addon.Requires))
		for _, dep := range addon.Requires {
			deps = append(deps, dep.String())
		}

		fmt.Fprintf(i.out, "    depends on: %s\n", strings.Join(deps, ", "))
	}

	fmt.Fprintln(i.out)

	if !m.HasUserdata {
		fmt.Fprintln(i.out, "No userdata directory found")
		return
	}

	fmt.Fprintln(i.out, "Userdata folders:")

	for _, name := range m.Userdata {
		fmt.Fprintf(i.out, "- %s\n", name)
	}
}

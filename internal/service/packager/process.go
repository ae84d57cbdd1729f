package packager

import (
	"context"
	"strings"

	"github.com/mitchellh/go-ps"

	"github.com/oshokin/kodi-build-tools/internal/logger"
)

// playerProcessNames are executables of the media center whose running
// instance may mutate userdata while it is being archived.
var playerProcessNames = map[string]struct{}{
	"kodi":            {},
	"kodi.bin":        {},
	"kodi.exe":        {},
	"kodi-standalone": {},
	"kodi-x11":        {},
	"kodi-wayland":    {},
}

// warnIfPlayerRunning scans the process list and warns when a media-center
// process is found: archiving a live build risks torn files. The scan is
// best-effort; failures only lower the warning to a debug line.
func (p *packager) warnIfPlayerRunning(ctx context.Context) {
	processes, err := ps.Processes()
	if err != nil {
		logger.Debugf(ctx, "Unable to list processes: %v", err)
		return
	}

	for _, process := range processes {
		name := strings.ToLower(process.Executable())
		if _, ok := playerProcessNames[name]; ok {
			logger.WarnKV(ctx,
				"Media center appears to be running; archived files may be torn",
				"process", process.Executable(),
				"pid", process.Pid())

			return
		}
	}
}

package main

import (
	"runtime"

	"github.com/termify/termify/internal/cli/cmd"
	"github.com/termify/termify/internal/domain/build"
)

// Build-time variables (set via ldflags).
var (
	version   = ""
	commit    = ""
	buildDate = ""
)

func main() {
	enableCrashForensics()

	cmd.SetBuildInfo(build.Info{
		Version:   version,
		Commit:    commit,
		BuildDate: buildDate,
		GoVersion: runtime.Version(),
	})
	cmd.Execute()
}

// Package build provides domain entities for build information.
package build

import "runtime/debug"

// Info holds build-time information injected via ldflags.
type Info struct {
	Version   string `json:"version" yaml:"version"`
	Commit    string `json:"commit" yaml:"commit"`
	BuildDate string `json:"build_date" yaml:"build_date"`
	GoVersion string `json:"go_version" yaml:"go_version"`
}

// WithDefaults fills fields ldflags left empty from the embedded module info.
func (i Info) WithDefaults() Info {
	if i.Version == "" {
		i.Version = "dev"
	}
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return i
	}
	if i.GoVersion == "" {
		i.GoVersion = bi.GoVersion
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			if i.Commit == "" {
				i.Commit = s.Value
			}
		case "vcs.time":
			if i.BuildDate == "" {
				i.BuildDate = s.Value
			}
		}
	}
	return i
}

// RepoURL returns the project repository URL.
func RepoURL() string {
	return "https://github.com/termify/termify"
}

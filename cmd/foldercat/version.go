package main

import "runtime/debug"

// version can be stamped at link time:
//
//	go build -ldflags "-X main.version=v1.2.3" ./cmd/foldercat
var version string

func init() {
	if version == "" {
		version = buildVersion(debug.ReadBuildInfo())
	}
}

// buildVersion derives a version from embedded build info: the module
// version for installed binaries, otherwise the short VCS revision.
func buildVersion(info *debug.BuildInfo, ok bool) string {
	if !ok || info == nil {
		return "dev"
	}
	if v := info.Main.Version; v != "" && v != "(devel)" {
		return v
	}

	vcs := make(map[string]string, len(info.Settings))
	for _, s := range info.Settings {
		vcs[s.Key] = s.Value
	}

	rev := vcs["vcs.revision"]
	if rev == "" {
		return "dev"
	}
	rev = rev[:min(len(rev), 7)]
	if vcs["vcs.modified"] == "true" {
		rev += "-dirty"
	}
	return rev
}

// Package misc holds build time information.
package misc

import (
	"os"
	"path/filepath"
	"strings"
)

// Set with -ldflags "-X cssb/misc.version=... -X cssb/misc.gitHash=..."
var (
	version = "dev"
	gitHash = "unknown"
	appName = "cssb"
)

func GetVersion() string {
	return version
}

func GetGitHash() string {
	return gitHash
}

// GetAppName returns program name, executable name is used when available
// so renamed binaries log under their own name.
func GetAppName() string {
	if len(os.Args) > 0 && len(os.Args[0]) > 0 {
		name := strings.TrimSuffix(filepath.Base(os.Args[0]), filepath.Ext(os.Args[0]))
		if len(name) > 0 && name != "." && name != string(filepath.Separator) {
			return name
		}
	}
	return appName
}

// Package misc carries build time program information.
package misc

// Set with -ldflags "-X dtree/misc.version=... -X dtree/misc.gitHash=..."
var (
	version = "dev"
	gitHash = "unknown"
)

const appName = "dtree"

func GetAppName() string {
	return appName
}

func GetVersion() string {
	return version
}

func GetGitHash() string {
	return gitHash
}

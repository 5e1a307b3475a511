// Package misc keeps build information injected by the linker.
package misc

// Set with -ldflags "-X rbc/misc.version=... -X rbc/misc.gitHash=..."
var (
	appName = "rbc"
	version = "dev"
	gitHash = "unknown"
)

func GetAppName() string {
	return appName
}

func GetVersion() string {
	return version
}

func GetGitHash() string {
	return gitHash
}

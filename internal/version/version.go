package version

import "fmt"

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// Version returns the build version populated via -ldflags.
func Version() string { return version }

// Commit returns the git commit the binary was built from.
func Commit() string { return commit }

// Date returns the build date.
func Date() string { return date }

// Info returns all version information at once.
func Info() (v, c, d string) { return version, commit, date }

func String() string {
	return fmt.Sprintf("version=%s commit=%s date=%s", version, commit, date)
}

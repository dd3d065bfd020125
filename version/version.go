package version

import "fmt"

// Set via -ldflags at build time
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// Info holds version information
type Info struct {
	Version string
	Commit  string
	Date    string
}

// Get returns the current version information
func Get() Info {
	return Info{
		Version: Version,
		Commit:  Commit,
		Date:    Date,
	}
}

// String formats the version information for display
func (i Info) String() string {
	return fmt.Sprintf("facestl %s (commit %s, built %s)", i.Version, i.Commit, i.Date)
}

package buildinfo

import "fmt"

// Set with -ldflags "-X github.com/nadza/Yahtzee/internal/buildinfo.Version=...".
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

func String() string {
	return fmt.Sprintf("yahtzee %s (commit=%s, date=%s)", Version, Commit, Date)
}

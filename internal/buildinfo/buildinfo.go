package buildinfo

import "fmt"

// Set at build time with -ldflags "-X".
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

func String() string {
	return fmt.Sprintf("nsms %s (commit=%s, date=%s)", Version, Commit, Date)
}

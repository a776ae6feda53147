package cli

import (
	"fmt"
)

// BuildInfo carries the build-time version variables from main.
type BuildInfo struct {
	Version   string
	Commit    string
	BuildDate string
}

// RunVersion prints version information.
func RunVersion(info BuildInfo, args []string) error {
	fmt.Printf("synthd %s\n", info.Version)
	fmt.Printf("  commit: %s\n", info.Commit)
	fmt.Printf("  built:  %s\n", info.BuildDate)
	return nil
}

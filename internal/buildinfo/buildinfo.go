// Package buildinfo holds version data stamped in at link time.
package buildinfo

import (
	"fmt"
	"io"
)

var (
	Version = "N/A" // set by ldflags
	Date    = "N/A" // set by ldflags
	Commit  = "N/A" // set by ldflags
)

// PrintBuildData writes the version banner to w.
//
//	go build -ldflags "-X github.com/dmitrijs2005/questkeeper/internal/buildinfo.Version=v1.0.0"
func PrintBuildData(w io.Writer) {
	fmt.Fprintf(w, "Build version: %s\nBuild date: %s\nBuild commit: %s\n", Version, Date, Commit)
}

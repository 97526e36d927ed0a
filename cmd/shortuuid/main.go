// shortuuid CLI - encode and decode UUIDs as short strings
package main

import (
	"github.com/getmockd/shortuuid/pkg/cli"
)

// Build-time variables set via ldflags
var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)

func main() {
	cli.Version = Version
	cli.Commit = Commit
	cli.BuildDate = BuildDate
	cli.Execute()
}

// Copyright (c) 2026 Confseed Authors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package main

import (
	"os"

	"github.com/confseed/confseed/internal/cli"
)

// set via -ldflags at release build time
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	err := cli.NewRootCommand(version, commit, date).Execute()
	if err != nil {
		os.Exit(1)
	}
}

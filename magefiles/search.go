//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Search builds the CLI and runs it for query, printing a table.
// Example: mage search "cancer immunotherapy"
func Search(query string) error {
	mg.Deps(Build)
	return sh.RunV(binPath, "--debug", "--format", "table", query)
}

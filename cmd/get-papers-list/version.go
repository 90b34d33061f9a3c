package main

// Printed by --version. "version" as a positional arg is a search query.
func init() {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate("get-papers-list {{.Version}}\n")
}

// Package main is the entry point for the pkgward CLI.
package main

import "pkgward.dev/pkg/pkgward/cmd"

func main() {
	cmd.Execute()
}

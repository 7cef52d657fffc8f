// Package main is the entry point for the gauntlet CLI.
package main

import "gauntlet.dev/pkg/gauntlet/cmd"

func main() {
	cmd.Execute()
}

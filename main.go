// Package main is the entry point for the markhound CLI.
package main

import "markhound.dev/pkg/markhound/cmd"

func main() {
	cmd.Execute()
}

// Package main is the entry point for the confdig CLI.
package main

import "confdig.dev/pkg/confdig/cmd"

func main() {
	cmd.Execute()
}

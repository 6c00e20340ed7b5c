// Package main is the entry point for the lit CLI.
package main

import "gooze.dev/pkg/lit/cmd"

func main() {
	cmd.Execute()
}

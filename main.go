// Package main is the entry point for the mutor CLI.
package main

import "gooze.dev/pkg/mutor/cmd"

func main() {
	cmd.Execute()
}

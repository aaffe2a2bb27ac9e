// Package main provides the lamps CLI.
package main

import "github.com/mesh-intelligence/lamps/internal/cli"

func main() {
	cli.Execute()
}

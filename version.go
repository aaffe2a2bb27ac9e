// Package lamps holds build metadata for the lamps module.
package lamps

// Version is the released version of the lamps CLI.
const Version = "0.1.0"

// ModulePath is the Go module path.
const ModulePath = "github.com/mesh-intelligence/lamps"

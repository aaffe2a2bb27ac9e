// Package types defines the configuration, lamp states, and standard error
// values shared by the lamp chain, the switchboard, and the lamps CLI.
package types

// Package main is the entry point for the glimmer CLI.
package main

import (
	"os"
	"runtime/debug"

	"github.com/zjrosen/glimmer/cmd"
)

// version is set via ldflags on release builds; dev builds fall back
// to the module version recorded by the Go toolchain.
var version = "dev"

func main() {
	cmd.SetVersion(resolveVersion())
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func resolveVersion() string {
	if version != "dev" {
		return version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return version
}

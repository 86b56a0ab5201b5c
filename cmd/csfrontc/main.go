// Package main implements csfrontc, the CLI driver spec.md §6 calls an
// "external collaborator": the core library specifies no CLI of its
// own, so this thin cobra-based wrapper wires source file arguments and
// compiler-option flags into an internal/compiler.Shell.
package main

import (
	"log"
	"os"
)

func main() {
	if err := Execute(); err != nil {
		log.Fatal(err)
	}
	if fatalHasErrors {
		os.Exit(1)
	}
}

package main

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/gmofishsauce/csfront/internal/source"
)

var cmdScan = &cobra.Command{
	Use:   "scan source-file...",
	Short: "tokenize source files and dump the token stream",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			log.Fatal("scan: expected at least one source file")
		}
		s := newShell()
		toks := s.ScanOnly(inputsFromArgs(args))
		for _, t := range toks {
			fmt.Println(t.String())
		}
		for _, m := range s.Sink().Messages() {
			fmt.Println(m.String())
		}
		fatalHasErrors = s.HasErrors()
	},
}

// inputsFromArgs turns bare file-name arguments into source.Input
// values with a nil Reader, so the shell's default fileLoader opens
// each one by name (spec.md §6: "names alone — resolver opens the
// name").
func inputsFromArgs(args []string) []source.Input {
	inputs := make([]source.Input, len(args))
	for i, a := range args {
		inputs[i] = source.Input{Name: a}
	}
	return inputs
}

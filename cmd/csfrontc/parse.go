package main

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
)

var cmdParse = &cobra.Command{
	Use:   "parse source-file...",
	Short: "parse source files and report diagnostics",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			log.Fatal("parse: expected at least one source file")
		}
		s := newShell()
		files, err := s.ParseProgram(inputsFromArgs(args))
		if err != nil {
			log.Fatalf("parse: %v", err)
		}
		for _, m := range s.Sink().Messages() {
			fmt.Println(m.String())
		}
		fmt.Printf("%d source file(s) parsed, %d diagnostic(s)\n", len(files), s.Sink().Len())
		fatalHasErrors = s.HasErrors()
	},
}

package main

import (
	"github.com/spf13/cobra"

	"github.com/gmofishsauce/csfront/internal/compiler"
)

// fatalHasErrors is set by a subcommand's Run once a compile reports at
// least one Error-severity diagnostic, so main can choose a non-zero
// exit status without every subcommand duplicating os.Exit logic.
var fatalHasErrors bool

// argsRoot collects the persistent flags every subcommand shares,
// following the package-level flag-bound struct pattern
// playbymail-ottomap's argsRoot/argsUser use rather than cobra's
// viper-style binding.
var argsRoot struct {
	defines     []string
	warnLevel   int
	warnAsError bool
	noWarn      []int
	debug       bool
}

var cmdRoot = &cobra.Command{
	Use:   "csfrontc",
	Short: "csfrontc tokenizes and parses C#-dialect source",
	Long:  `csfrontc is a thin CLI driver over the csfront scanner and parser.`,
}

func init() {
	cmdRoot.PersistentFlags().StringSliceVar(&argsRoot.defines, "define", nil, "preprocessor symbol to define (repeatable)")
	cmdRoot.PersistentFlags().IntVar(&argsRoot.warnLevel, "warnlevel", 4, "warning level (0-4)")
	cmdRoot.PersistentFlags().BoolVar(&argsRoot.warnAsError, "warnaserror", false, "treat warnings as errors")
	cmdRoot.PersistentFlags().IntSliceVar(&argsRoot.noWarn, "nowarn", nil, "warning code to disable (repeatable)")
	cmdRoot.PersistentFlags().BoolVar(&argsRoot.debug, "debug", false, "enable verbose internal trace logging")

	cmdRoot.AddCommand(cmdScan)
	cmdRoot.AddCommand(cmdParse)
}

// Execute builds the cobra command tree and runs it; it is the sole
// entry point main calls (mirrors playbymail-ottomap's Execute(cfg)
// split between main and command wiring).
func Execute() error {
	return cmdRoot.Execute()
}

// newShell builds an internal/compiler.Shell seeded from the persistent
// flags shared by every subcommand.
func newShell() *compiler.Shell {
	return compiler.New(compiler.Config{
		WarningLevel:     argsRoot.warnLevel,
		TreatWarnAsError: argsRoot.warnAsError,
		Defines:          argsRoot.defines,
		DisabledWarnings: argsRoot.noWarn,
		Debug:            argsRoot.debug,
	})
}

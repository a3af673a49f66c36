package main

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/na-bdan/matiec/pkg/absyn"
	"github.com/na-bdan/matiec/pkg/constfold"
)

var version = "0.1.0"

var listScenarios bool

func main() {
	os.Exit(run())
}

func run() int {
	rootCmd := newRootCmd(os.Stdout, os.Stderr)
	if err := rootCmd.Execute(); err != nil {
		return 1
	}
	return 0
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "constfold [scenario]",
		Short: "constfold demonstrates the IEC 61131-3 constant-folding pass",
		Long: `constfold folds one of a handful of built-in example expression
trees and prints the resulting per-domain annotations. It has no lexer or
parser of its own — the real front end is a separate concern — so the
trees it folds are all built in-process via pkg/absyn struct literals.`,
		Version:       version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if listScenarios {
				return doList(out)
			}
			if len(args) == 0 {
				return cmd.Help()
			}
			return doFold(args[0], out, errOut)
		},
	}
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)
	rootCmd.Flags().BoolVar(&listScenarios, "list", false, "list the available built-in scenarios")
	return rootCmd
}

func doList(out io.Writer) error {
	names := make([]string, 0, len(scenarios))
	for name := range scenarios {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(out, "%s\t%s\n", name, scenarios[name].describe)
	}
	return nil
}

func doFold(name string, out, errOut io.Writer) error {
	sc, ok := scenarios[name]
	if !ok {
		fmt.Fprintf(errOut, "constfold: unknown scenario %q (try --list)\n", name)
		return fmt.Errorf("unknown scenario %q", name)
	}

	root := sc.build()
	f := constfold.NewFolder()
	f.Fold(root)
	for _, w := range f.Warnings {
		fmt.Fprintf(errOut, "constfold: warning: %s\n", w)
	}

	printAnnotation(out, sc.describe, root.Annotation())
	return nil
}

func printAnnotation(out io.Writer, describe string, ann *absyn.ConstAnnotation) {
	fmt.Fprintf(out, "%s\n", describe)
	fmt.Fprintf(out, "  bool: %-9s", ann.BoolStatus())
	if ann.BoolStatus() == absyn.Const {
		fmt.Fprintf(out, " %v", ann.BoolValue())
	}
	fmt.Fprintln(out)

	fmt.Fprintf(out, "  i64:  %-9s", ann.I64Status())
	if ann.I64Status() == absyn.Const {
		fmt.Fprintf(out, " %d", ann.I64Value())
	}
	fmt.Fprintln(out)

	fmt.Fprintf(out, "  u64:  %-9s", ann.U64Status())
	if ann.U64Status() == absyn.Const {
		fmt.Fprintf(out, " %d", ann.U64Value())
	}
	fmt.Fprintln(out)

	fmt.Fprintf(out, "  f64:  %-9s", ann.F64Status())
	if ann.F64Status() == absyn.Const {
		fmt.Fprintf(out, " %v", ann.F64Value())
	}
	fmt.Fprintln(out)
}

// Package cmd is the host layer around the kernel: it turns the built-in
// prelude into kernel calls and renders lemmas and errors back to the user.
// The kernel itself never touches this surface.
package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "induct",
	Short: "A structural-induction proof kernel for algebraic data types",
	Long: `induct is a small proof kernel: algebraic data types, pattern-matched
recursive functions, structural induction, and rewriting with proved
equations. The bundled prelude proves the standard library of lemmas over
Peano naturals and binary numbers.`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log every proof step")
	rootCmd.AddCommand(preludeCmd)
	rootCmd.AddCommand(checkCmd)
}

// newLogger builds the step logger: chatty in verbose mode, silent
// otherwise.
func newLogger() *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

package cmd

import (
	"fmt"
	"strings"

	"github.com/induct-lang/induct/kernel/driver"
	"github.com/induct-lang/induct/kernel/prelude"
	"github.com/spf13/cobra"
)

var preludeCmd = &cobra.Command{
	Use:   "prelude",
	Short: "Prove the bundled lemma library and list the results",
	RunE: func(cmd *cobra.Command, args []string) error {
		k := driver.New(newLogger())
		if err := prelude.Load(k); err != nil {
			return err
		}
		for _, name := range k.Registry().Names() {
			l, err := k.Lookup(name)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), l)
			if len(l.Deps) > 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "    using %s\n", strings.Join(l.Deps, ", "))
			}
		}
		return nil
	},
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Replay every prelude proof against its declared dependencies",
	RunE: func(cmd *cobra.Command, args []string) error {
		k := driver.New(newLogger())
		if err := prelude.Load(k); err != nil {
			return err
		}
		for _, name := range k.Registry().Names() {
			if err := k.CheckProof(name); err != nil {
				return fmt.Errorf("replay of %s failed: %w", name, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%-22s ok\n", name)
		}
		return nil
	},
}

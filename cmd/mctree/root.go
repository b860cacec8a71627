package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "mctree",
	Short: "Inspect and exercise the component parse-tree bridge",
	Long: `mctree works with parse trees of the component-description grammar:
- Describes the closed set of node types and their declared labels.
- Wraps a tree text against a host runtime to check grammar/host agreement.
  This feature is primarily aimed at debugging host type declarations.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return err
	}
	return nil
}

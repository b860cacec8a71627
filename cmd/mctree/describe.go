package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/mccode-go/mctree/comp"
	"github.com/spf13/cobra"
)

var describeFlags = struct {
	labeled *bool
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "describe",
		Short:   "Print the node types the grammar defines and their declared labels",
		Example: `  mctree describe --labeled`,
		Args:    cobra.NoArgs,
		RunE:    runDescribe,
	}
	describeFlags.labeled = cmd.Flags().Bool("labeled", false, "print only node types that declare labels")
	rootCmd.AddCommand(cmd)
}

func runDescribe(cmd *cobra.Command, args []string) error {
	tbl := table.NewWriter()
	tbl.SetOutputMirror(os.Stdout)
	tbl.SetStyle(table.StyleLight)
	tbl.AppendHeader(table.Row{"#", "Node Type", "Labels"})

	count := 0
	for i, t := range comp.Types() {
		labels := t.Labels()
		if *describeFlags.labeled && len(labels) == 0 {
			continue
		}
		tbl.AppendRow(table.Row{i + 1, t.Name(), strings.Join(labels, ", ")})
		count++
	}
	tbl.AppendFooter(table.Row{"", fmt.Sprintf("%v node types", count), ""})
	tbl.Render()

	return nil
}

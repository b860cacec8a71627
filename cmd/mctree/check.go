package main

import (
	"fmt"
	"os"

	"github.com/mccode-go/mctree/bridge"
	"github.com/mccode-go/mctree/tree"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var checkFlags = struct {
	types *string
}{}

func init() {
	cmd := &cobra.Command{
		Use:   "check <tree file path>",
		Short: "Wrap a tree text against a host runtime and print the host-side view",
		Long: `check parses a tree text, wraps every node against a host runtime, and
prints the wrapped values. By default the host declares the complete node
type universe; --types supplies a manifest restricting the declarations, so
grammar/host drift shows up as an unresolved-type failure.`,
		Example: `  mctree check expr.tree
  mctree check --types host-types.yaml expr.tree`,
		Args: cobra.ExactArgs(1),
		RunE: runCheck,
	}
	checkFlags.types = cmd.Flags().StringP("types", "t", "", "host type manifest (YAML) restricting the declared types")
	rootCmd.AddCommand(cmd)
}

// typeManifest lists the type names a host runtime declares.
type typeManifest struct {
	Types []string `yaml:"types"`
}

func runCheck(cmd *cobra.Command, args []string) error {
	root, err := readTree(args[0])
	if err != nil {
		return err
	}

	var host *bridge.StaticHost
	if *checkFlags.types != "" {
		m, err := readTypeManifest(*checkFlags.types)
		if err != nil {
			return fmt.Errorf("Cannot read a type manifest: %w", err)
		}
		host = bridge.NewStaticHost(m.Types...)
	} else {
		host = bridge.NewStaticHost()
	}

	tr := bridge.NewTranslator(host)
	defer tr.Close()

	v, err := tr.Wrap(root)
	if err != nil {
		return err
	}
	if obj, ok := v.(*bridge.Object); ok {
		fmt.Fprintf(os.Stdout, "%v\n", string(obj.Format()))
	}

	return nil
}

func readTree(path string) (*tree.Node, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("Cannot open the tree file %s: %w", path, err)
	}
	defer f.Close()

	return tree.Parse(f)
}

func readTypeManifest(path string) (*typeManifest, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	m := &typeManifest{}
	err = yaml.Unmarshal(d, m)
	if err != nil {
		return nil, err
	}

	return m, nil
}

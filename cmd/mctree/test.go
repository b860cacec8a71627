package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/mccode-go/mctree/bridge"
	"github.com/mccode-go/mctree/tester"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:     "test <test file path>|<test directory path>",
		Short:   "Run tree-case files through the bridge",
		Example: `  mctree test cases`,
		Args:    cobra.ExactArgs(1),
		RunE:    runTest,
	}
	rootCmd.AddCommand(cmd)
}

func runTest(cmd *cobra.Command, args []string) error {
	var cs []*tester.TestCaseWithMetadata
	{
		cs = tester.ListTestCases(args[0])
		errOccurred := false
		for _, c := range cs {
			if c.Error != nil {
				fmt.Fprintf(os.Stderr, "Failed to read a test case or a directory: %v\n%v\n", c.FilePath, c.Error)
				errOccurred = true
			}
		}
		if errOccurred {
			return errors.New("Cannot run test")
		}
	}

	t := &tester.Tester{
		Host:  bridge.NewStaticHost(),
		Cases: cs,
	}
	rs := t.Run()

	passed := color.New(color.FgGreen).SprintFunc()
	failed := color.New(color.FgRed).SprintFunc()
	testFailed := false
	for _, r := range rs {
		if r.Error != nil {
			fmt.Fprintln(os.Stdout, failed(r))
			testFailed = true
		} else {
			fmt.Fprintln(os.Stdout, passed(r))
		}
	}
	if testFailed {
		return errors.New("Test failed")
	}
	return nil
}

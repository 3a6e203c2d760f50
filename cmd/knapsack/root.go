package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	var cfgFile string

	root := &cobra.Command{
		Use:          "knapsack",
		Short:        "Solve batches of independent 0/1 knapsack problems on CPU or GPU",
		SilenceUsage: true,
	}
	root.SetOut(out)
	root.SetErr(errOut)
	root.PersistentFlags().StringVar(&cfgFile, "config", "", "YAML config file")

	root.AddCommand(newVersionCmd(), newSolveCmd(&cfgFile))
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "knapsack %s\n", version)
		},
	}
}

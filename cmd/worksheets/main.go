package main

import (
	"os"

	"github.com/spf13/cobra"
)

var configPath string

func main() {
	command := &cobra.Command{
		Use:           "worksheets",
		Short:         "Printable logic puzzle worksheets",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	command.PersistentFlags().StringVarP(&configPath, "config", "c", "", "configuration file path")
	command.AddCommand(commandServe(), commandGenerate())
	if err := command.Execute(); err != nil {
		os.Exit(1)
	}
}

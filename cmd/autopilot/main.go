package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:           "autopilot",
		Short:         "Produce and deliver daily legal short videos",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "config.yaml", "path to the YAML config file")

	cmd.AddCommand(
		newRunCommand(&configPath),
		newWatchCommand(&configPath),
		newScheduleCommand(&configPath),
	)
	return cmd
}

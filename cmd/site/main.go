package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/jakechampion/site/cmd/site/cmd"
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "site",
		Short:         "Build, preview and publish the blog",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(cmd.BuildCmd())
	rootCmd.AddCommand(cmd.ServeCmd())
	rootCmd.AddCommand(cmd.PublishCmd())

	if err := rootCmd.Execute(); err != nil {
		cmd.Fail(err)
		os.Exit(1)
	}
}

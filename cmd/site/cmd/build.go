package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jakechampion/site/internal/config"
)

func BuildCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Render the site into the output directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := setup(func(cfg *config.Config) {
				if output != "" {
					cfg.OutputPath = output
				}
			})

			report, err := a.Builder.Build(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "built %d posts and %d pages into %s (%d files)\n",
				report.Posts, report.Pages, a.Cfg.OutputPath, report.Files)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output directory (defaults to OUTPUT_PATH)")
	return cmd
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func PublishCmd() *cobra.Command {
	var skipBuild bool

	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Build the site and upload it to S3-compatible storage",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := setup()
			ctx := cmd.Context()

			publisher, err := a.Publisher(ctx)
			if err != nil {
				return err
			}

			if !skipBuild {
				_, err = a.Builder.Build(ctx)
				if err != nil {
					return err
				}
			}

			report, err := publisher.Publish(ctx, a.Cfg.OutputPath)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "uploaded %d objects, live at %s\n", report.Objects, report.URL)
			return nil
		},
	}

	cmd.Flags().BoolVar(&skipBuild, "skip-build", false, "upload the existing output directory as is")
	return cmd
}

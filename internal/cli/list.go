package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yigit/courseregistry/internal/app/services"
)

var listCmd = &cobra.Command{
	Use:       "list {courses|students|offerings}",
	Short:     "List the short form of every entry in a catalog",
	ValidArgs: []string{"courses", "students", "offerings"},
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withRegistrar(cmd.Context(), func(ctx context.Context, registrar services.RegistrarService) error {
			var items []string
			var err error
			switch args[0] {
			case "courses":
				items, err = registrar.ListCourses(ctx)
			case "students":
				items, err = registrar.ListStudents(ctx)
			case "offerings":
				items, err = registrar.ListOfferings(ctx)
			}
			if err != nil {
				return err
			}

			for _, item := range items {
				fmt.Fprintln(cmd.OutOrStdout(), item)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}

package cli

import (
	"context"
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/yigit/courseregistry/internal/app/models"
	"github.com/yigit/courseregistry/internal/app/services"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print catalog sizes and capacities as JSON",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withRegistrar(cmd.Context(), func(ctx context.Context, registrar services.RegistrarService) error {
			stats, err := registrar.Stats(ctx)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(stats)
		})
	},
}

var enrollCmd = &cobra.Command{
	Use:   "enroll STUDENT COURSE DATE",
	Short: "Check whether a student would be admitted to an offering",
	Long: `Enroll a student in an offering of the loaded seed and print the outcome.

Nothing is written back to the seed file.`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withRegistrar(cmd.Context(), func(ctx context.Context, registrar services.RegistrarService) error {
			key := models.OfferingKey{Course: args[1], Date: args[2]}
			result, err := registrar.EnrollStudent(ctx, key, args[0])
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(result)
		})
	},
}

func init() {
	rootCmd.AddCommand(statsCmd, enrollCmd)
}

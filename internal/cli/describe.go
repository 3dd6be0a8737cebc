package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yigit/courseregistry/internal/app/models"
	"github.com/yigit/courseregistry/internal/app/services"
)

var describeCmd = &cobra.Command{
	Use:   "describe",
	Short: "Print the full description of a course, student or offering",
}

var describeCourseCmd = &cobra.Command{
	Use:   "course NAME",
	Short: "Describe a course and its prerequisites",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return describe(cmd, func(ctx context.Context, r services.RegistrarService) (string, error) {
			return r.DescribeCourse(ctx, args[0])
		})
	},
}

var describeStudentCmd = &cobra.Command{
	Use:   "student NAME",
	Short: "Describe a student and their completed courses",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return describe(cmd, func(ctx context.Context, r services.RegistrarService) (string, error) {
			return r.DescribeStudent(ctx, args[0])
		})
	},
}

var describeOfferingCmd = &cobra.Command{
	Use:     "offering COURSE DATE",
	Short:   "Describe an offering and its attendees",
	Example: `  registrar describe offering CS201 2024-01-10`,
	Args:    cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return describe(cmd, func(ctx context.Context, r services.RegistrarService) (string, error) {
			return r.DescribeOffering(ctx, models.OfferingKey{Course: args[0], Date: args[1]})
		})
	},
}

func describe(cmd *cobra.Command, fn func(context.Context, services.RegistrarService) (string, error)) error {
	return withRegistrar(cmd.Context(), func(ctx context.Context, registrar services.RegistrarService) error {
		text, err := fn(ctx, registrar)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), text)
		return nil
	})
}

func init() {
	describeCmd.AddCommand(describeCourseCmd, describeStudentCmd, describeOfferingCmd)
	rootCmd.AddCommand(describeCmd)
}

package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	enrollmentCmd.AddCommand(listEnrollmentsCmd)
	enrollmentCmd.AddCommand(createEnrollmentCmd)
	enrollmentCmd.AddCommand(enrollmentStatusCmd)

	listEnrollmentsCmd.Flags().IntP("page", "p", 1, "page number")
	listEnrollmentsCmd.Flags().IntP("limit", "l", 10, "page size")

	createEnrollmentCmd.Flags().UintP("course", "c", 0, "course ID to enroll in")
	_ = createEnrollmentCmd.MarkFlagRequired("course")

	enrollmentStatusCmd.Flags().UintP("course", "c", 0, "course ID to check")
	_ = enrollmentStatusCmd.MarkFlagRequired("course")
}

var enrollmentCmd = &cobra.Command{
	Use:   "enrollments",
	Short: "Manage enrollments",
}

// GetEnrollmentsCmd returns the enrollments command
func GetEnrollmentsCmd() *cobra.Command {
	return enrollmentCmd
}

var listEnrollmentsCmd = &cobra.Command{
	Use:   "list",
	Short: "List the authenticated user's enrollments",
	RunE: func(cmd *cobra.Command, _ []string) error {
		page, _ := cmd.Flags().GetInt("page")
		limit, _ := cmd.Flags().GetInt("limit")

		response, err := apiClient.ListEnrollments(context.Background(), page, limit)
		if err != nil {
			return fmt.Errorf("error fetching enrollments: %w", err)
		}
		return printJSON(cmd, response)
	},
}

var createEnrollmentCmd = &cobra.Command{
	Use:   "create",
	Short: "Enroll in a course",
	RunE: func(cmd *cobra.Command, _ []string) error {
		courseID, _ := cmd.Flags().GetUint("course")

		response, err := apiClient.CreateEnrollment(context.Background(), courseID)
		if err != nil {
			return fmt.Errorf("error creating enrollment: %w", err)
		}
		return printJSON(cmd, response)
	},
}

var enrollmentStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Check enrollment in a course",
	RunE: func(cmd *cobra.Command, _ []string) error {
		courseID, _ := cmd.Flags().GetUint("course")

		response, err := apiClient.GetEnrollmentStatus(context.Background(), courseID)
		if err != nil {
			return fmt.Errorf("error checking enrollment status: %w", err)
		}
		return printJSON(cmd, response)
	},
}

package commands

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/coursehub/coursehub/internal/types"
)

func init() {
	courseCmd.AddCommand(listCoursesCmd)
	courseCmd.AddCommand(createCourseCmd)
	courseCmd.AddCommand(courseStatusCmd)

	listCoursesCmd.Flags().IntP("page", "p", 1, "page number")
	listCoursesCmd.Flags().IntP("limit", "l", 10, "page size")
	listCoursesCmd.Flags().String("creator", "", "filter by creator id")
	listCoursesCmd.Flags().String("search", "", "text search over title and description")
	listCoursesCmd.Flags().String("status", "", "filter by status (DRAFT, PUBLISHED, ARCHIVED)")
	listCoursesCmd.Flags().String("category", "", "filter by category")

	createCourseCmd.Flags().String("title", "", "course title")
	createCourseCmd.Flags().String("description", "", "course description")
	createCourseCmd.Flags().String("category", "", "course category")
	_ = createCourseCmd.MarkFlagRequired("title")
	_ = createCourseCmd.MarkFlagRequired("description")
	_ = createCourseCmd.MarkFlagRequired("category")

	courseStatusCmd.Flags().UintP("id", "i", 0, "course ID")
	courseStatusCmd.Flags().String("status", "", "new status (DRAFT, PUBLISHED, ARCHIVED)")
	_ = courseStatusCmd.MarkFlagRequired("id")
	_ = courseStatusCmd.MarkFlagRequired("status")
}

var courseCmd = &cobra.Command{
	Use:   "courses",
	Short: "Manage courses",
}

// GetCoursesCmd returns the courses command
func GetCoursesCmd() *cobra.Command {
	return courseCmd
}

// printJSON pretty prints the response to the command's output stream
func printJSON(cmd *cobra.Command, v interface{}) error {
	prettyJSON, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("error formatting response: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(prettyJSON))
	return nil
}

var listCoursesCmd = &cobra.Command{
	Use:   "list",
	Short: "List courses",
	Long:  `List courses with optional creator, search, status and category filters.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		page, _ := cmd.Flags().GetInt("page")
		limit, _ := cmd.Flags().GetInt("limit")
		creator, _ := cmd.Flags().GetString("creator")
		search, _ := cmd.Flags().GetString("search")
		status, _ := cmd.Flags().GetString("status")
		category, _ := cmd.Flags().GetString("category")

		response, err := apiClient.ListCourses(context.Background(), types.ListCoursesParams{
			Page:      page,
			Limit:     limit,
			CreatorID: creator,
			Search:    search,
			Status:    status,
			Category:  category,
		})
		if err != nil {
			return fmt.Errorf("error fetching courses: %w", err)
		}
		return printJSON(cmd, response)
	},
}

var createCourseCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a course",
	Long:  "Create a course owned by the authenticated creator.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		title, _ := cmd.Flags().GetString("title")
		description, _ := cmd.Flags().GetString("description")
		category, _ := cmd.Flags().GetString("category")

		response, err := apiClient.CreateCourse(context.Background(), types.CreateCourseParams{
			Title:       title,
			Description: description,
			Category:    category,
		})
		if err != nil {
			return fmt.Errorf("error creating course: %w", err)
		}
		return printJSON(cmd, response)
	},
}

var courseStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Update a course's status",
	RunE: func(cmd *cobra.Command, _ []string) error {
		id, _ := cmd.Flags().GetUint("id")
		status, _ := cmd.Flags().GetString("status")

		response, err := apiClient.UpdateCourseStatus(context.Background(), id, status)
		if err != nil {
			return fmt.Errorf("error updating course status: %w", err)
		}
		return printJSON(cmd, response)
	},
}

package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show student progress and course analytics",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := cmd.Context()

		students, err := s.Analytics().StudentsProgress(ctx)
		if err != nil {
			return fmt.Errorf("query student progress: %w", err)
		}

		fmt.Println("STUDENTS")
		fmt.Println(strings.Repeat("─", 80))
		if len(students) == 0 {
			fmt.Println("No students yet.")
		} else {
			fmt.Printf("%-5s  %-22s  %-14s  %-8s  %-8s  %s\n",
				"ID", "Name", "Level", "Quizzes", "Avg%", "Last activity")
			for _, p := range students {
				last := "-"
				if p.LastActivity != nil {
					last = p.LastActivity.Local().Format("2006-01-02 15:04")
				}
				fmt.Printf("%-5d  %-22s  %-14s  %-8d  %-8.1f  %s\n",
					p.UserID, p.Name, p.SkillLevel, p.TotalQuizzes, p.AvgScore, last)
			}
		}

		courses, err := s.Analytics().CourseAnalytics(ctx)
		if err != nil {
			return fmt.Errorf("query course analytics: %w", err)
		}

		fmt.Println()
		fmt.Println("COURSES")
		fmt.Println(strings.Repeat("─", 80))
		if len(courses) == 0 {
			fmt.Println("No quiz attempts yet.")
			return nil
		}
		fmt.Printf("%-18s  %-26s  %-8s  %-8s  %-8s  %s\n",
			"Subject", "Topic", "Tries", "Avg%", "Min%", "Max%")
		for _, c := range courses {
			topic := c.Topic
			if len(topic) > 26 {
				topic = topic[:26]
			}
			fmt.Printf("%-18s  %-26s  %-8d  %-8.1f  %-8.1f  %.1f\n",
				c.Subject, topic, c.Attempts, c.AvgScore, c.MinScore, c.MaxScore)
		}
		return nil
	},
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create demo users in an empty database",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		n, err := s.Seed(cmd.Context())
		if err != nil {
			return fmt.Errorf("seed database: %w", err)
		}
		if n == 0 {
			fmt.Println("Database already has users; nothing seeded.")
			return nil
		}
		fmt.Printf("Seeded %d demo users.\n", n)
		return nil
	},
}

package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/edututor/edututor/internal/config"
	"github.com/edututor/edututor/internal/quizgen"
)

var generateCmd = &cobra.Command{
	Use:   "generate <topic>",
	Short: "Generate a quiz and print it as JSON",
	Long: "Generates a quiz for the given topic without touching user state.\n" +
		"Useful for previewing question quality per difficulty.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		topic := args[0]
		count, _ := cmd.Flags().GetInt("count")
		difficulty, _ := cmd.Flags().GetString("difficulty")
		source, _ := cmd.Flags().GetString("source")

		d := quizgen.Difficulty(difficulty)
		if !d.Valid() {
			return fmt.Errorf("difficulty must be easy, medium or hard, got %q", difficulty)
		}

		configPath, _ := cmd.Flags().GetString("config")
		cfg, err := config.Load(configPath, nil)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("source") {
			cfg.Quiz.Source = source
		}

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := cmd.Context()
		generator := buildGenerator(ctx, cfg, s)

		questions, err := generator.Generate(ctx, quizgen.GenerateInput{
			Topic:      topic,
			Subject:    quizgen.InferSubject(topic),
			Difficulty: d,
			Count:      count,
		})
		if err != nil {
			return fmt.Errorf("generate quiz: %w", err)
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(questions)
	},
}

func init() {
	generateCmd.Flags().Int("count", 5, "Number of questions")
	generateCmd.Flags().String("difficulty", "medium", "Difficulty: easy, medium or hard")
	generateCmd.Flags().String("source", "llm", "Question source: llm or bank")
}

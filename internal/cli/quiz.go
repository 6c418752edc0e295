package cli

import (
	"fmt"
	"os"

	"github.com/evergreen-labs/evergreen/internal/config"
	"github.com/evergreen-labs/evergreen/internal/content"
	"github.com/evergreen-labs/evergreen/internal/export"
	"github.com/evergreen-labs/evergreen/internal/store"
	"github.com/evergreen-labs/evergreen/internal/trivia"
	"github.com/evergreen-labs/evergreen/internal/userdata"
	"github.com/spf13/cobra"
)

var (
	quizListCategory string
	quizListJSON     bool

	quizAddQuestion string
	quizAddAnswer   string
	quizAddHint     string
	quizAddCategory string

	quizFetchAmount     int
	quizFetchCategory   int
	quizFetchDifficulty string
)

func init() {
	quizListCmd.Flags().StringVar(&quizListCategory, "category", "", "Filter by category (trivia, guess-the-song)")
	quizListCmd.Flags().BoolVar(&quizListJSON, "json", false, "Output in JSON format")

	quizAddCmd.Flags().StringVar(&quizAddQuestion, "question", "", "Question or lyric prompt (required)")
	quizAddCmd.Flags().StringVar(&quizAddAnswer, "answer", "", "Answer revealed on the back (required)")
	quizAddCmd.Flags().StringVar(&quizAddHint, "hint", "", "Optional hint shown below the question")
	quizAddCmd.Flags().StringVar(&quizAddCategory, "category", string(content.QuizTrivia), "Category (trivia, guess-the-song)")
	_ = quizAddCmd.MarkFlagRequired("question")
	_ = quizAddCmd.MarkFlagRequired("answer")

	quizFetchCmd.Flags().IntVar(&quizFetchAmount, "amount", 5, "Number of questions to fetch")
	quizFetchCmd.Flags().IntVar(&quizFetchCategory, "category", 0, "Trivia service category id (0 = any)")
	quizFetchCmd.Flags().StringVar(&quizFetchDifficulty, "difficulty", "", "Difficulty (easy, medium, hard)")

	quizCmd.AddCommand(quizListCmd)
	quizCmd.AddCommand(quizAddCmd)
	quizCmd.AddCommand(quizDeleteCmd)
	quizCmd.AddCommand(quizFetchCmd)
	rootCmd.AddCommand(quizCmd)
}

var quizCmd = &cobra.Command{
	Use:   "quiz",
	Short: "Browse and manage the quiz card library",
}

var quizListCmd = &cobra.Command{
	Use:   "list",
	Short: "List quiz cards (built-in and custom)",
	RunE: func(cmd *cobra.Command, args []string) error {
		lib, err := openLibrary()
		if err != nil {
			return err
		}

		var filter *content.QuizCategory
		if quizListCategory != "" {
			c, err := content.ParseQuizCategory(quizListCategory)
			if err != nil {
				return err
			}
			filter = &c
		}
		records, err := lib.Quiz(filter)
		if err != nil {
			return err
		}

		if quizListJSON {
			return printJSON(records)
		}
		return export.QuizTable(os.Stdout, records)
	},
}

var quizAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a custom quiz card",
	RunE: func(cmd *cobra.Command, args []string) error {
		lib, err := openLibrary()
		if err != nil {
			return err
		}

		id, err := lib.QuizStore().Add(store.QuizDraft{
			Question: quizAddQuestion,
			Answer:   quizAddAnswer,
			Hint:     quizAddHint,
			Category: content.QuizCategory(quizAddCategory),
		})
		if err != nil {
			return fmt.Errorf("adding quiz card: %w", err)
		}

		fmt.Printf("Added quiz card %d.\n", id)
		return nil
	},
}

var quizDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a custom quiz card",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		lib, err := openLibrary()
		if err != nil {
			return err
		}
		if err := lib.QuizStore().Delete(id); err != nil {
			return fmt.Errorf("deleting quiz card %d: %w", id, err)
		}

		fmt.Printf("Deleted quiz card %d (if it existed).\n", id)
		return nil
	},
}

var quizFetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Import fresh trivia questions from the online service",
	Long: `Fetch a batch of questions from the configured trivia service and add
them to the custom quiz library. The import is all-or-nothing: if the
fetch fails, the existing library is left untouched.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		lib, err := openLibrary()
		if err != nil {
			return err
		}

		if !cmd.Flags().Changed("amount") {
			if prefs, err := userdata.LoadPreferences(); err == nil && prefs.TriviaAmount > 0 {
				quizFetchAmount = prefs.TriviaAmount
			}
		}

		client := trivia.New(config.TriviaAPIURL(), config.TriviaTimeout())
		count, err := lib.QuizStore().ImportTrivia(cmd.Context(), client, trivia.Request{
			Amount:     quizFetchAmount,
			Category:   quizFetchCategory,
			Difficulty: quizFetchDifficulty,
		})
		if err != nil {
			// Non-destructive failure: the library is unchanged.
			notify("Could not fetch trivia questions: %v", err)
			notify("Your existing cards are untouched. Try again later.")
			return fmt.Errorf("trivia import failed")
		}

		fmt.Printf("Imported %d trivia question(s).\n", count)
		return nil
	},
}

package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/evergreen-labs/evergreen/internal/config"
	"github.com/evergreen-labs/evergreen/internal/content"
	"github.com/evergreen-labs/evergreen/internal/export"
	"github.com/evergreen-labs/evergreen/internal/userdata"
	"github.com/spf13/cobra"
)

var (
	exportOut        string
	exportCategory   string
	exportLargePrint bool
)

func init() {
	exportCmd.PersistentFlags().StringVar(&exportOut, "out", "", "Write to a file instead of stdout")
	exportCmd.PersistentFlags().StringVar(&exportCategory, "category", "", "Filter by category")
	exportCmd.PersistentFlags().BoolVar(&exportLargePrint, "large-print", false, "Extra spacing for easier reading")

	exportCmd.AddCommand(exportActivitiesCmd)
	exportCmd.AddCommand(exportQuizCmd)
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Render printable handout sheets",
	// Overrides the root hook, so config loading repeats here.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config.Load()

		// Preferences fill in flags the user left unset.
		prefs, err := userdata.LoadPreferences()
		if err != nil {
			return err
		}
		if !cmd.Flags().Changed("large-print") && prefs.LargePrint {
			exportLargePrint = true
		}
		if !cmd.Flags().Changed("category") && exportCategory == "" {
			exportCategory = prefs.DefaultCategory
		}
		return nil
	},
}

var exportActivitiesCmd = &cobra.Command{
	Use:   "activities",
	Short: "Render the activity library as a printable sheet",
	RunE: func(cmd *cobra.Command, args []string) error {
		lib, err := openLibrary()
		if err != nil {
			return err
		}
		filter, err := parseCategoryFilter(exportCategory)
		if err != nil {
			return err
		}
		records, err := lib.Activities(filter)
		if err != nil {
			return err
		}

		w, closeFn, err := exportWriter()
		if err != nil {
			return err
		}
		defer closeFn()

		export.ActivitySheet(w, records, export.Options{LargePrint: exportLargePrint})
		return nil
	},
}

var exportQuizCmd = &cobra.Command{
	Use:   "quiz",
	Short: "Render the quiz cards as a printable sheet",
	RunE: func(cmd *cobra.Command, args []string) error {
		lib, err := openLibrary()
		if err != nil {
			return err
		}
		var filter *content.QuizCategory
		if exportCategory != "" {
			c, err := content.ParseQuizCategory(exportCategory)
			if err != nil {
				return err
			}
			filter = &c
		}
		records, err := lib.Quiz(filter)
		if err != nil {
			return err
		}

		w, closeFn, err := exportWriter()
		if err != nil {
			return err
		}
		defer closeFn()

		export.QuizSheet(w, records, export.Options{LargePrint: exportLargePrint})
		return nil
	},
}

// exportWriter returns stdout or the --out file, with a close func that is
// a no-op for stdout.
func exportWriter() (io.Writer, func(), error) {
	if exportOut == "" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(exportOut)
	if err != nil {
		return nil, nil, fmt.Errorf("creating output file %s: %w", exportOut, err)
	}
	return f, func() {
		_ = f.Close()
		fmt.Printf("Wrote %s\n", exportOut)
	}, nil
}

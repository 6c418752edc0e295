package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/evergreen-labs/evergreen/internal/content"
	"github.com/evergreen-labs/evergreen/internal/export"
	"github.com/evergreen-labs/evergreen/internal/holidays"
	"github.com/evergreen-labs/evergreen/internal/store"
	"github.com/spf13/cobra"
)

var (
	activityListCategory string
	activityListJSON     bool

	activityAddName        string
	activityAddDescription string
	activityAddDuration    string
	activityAddMobility    string
	activityAddCategory    string
	activityAddSupplies    []string
	activityAddBenefits    []string
	activityAddSteps       []string
)

func init() {
	activitiesListCmd.Flags().StringVar(&activityListCategory, "category", "", "Filter by category (art-crafts, baking-cooking, music, games, exercise)")
	activitiesListCmd.Flags().BoolVar(&activityListJSON, "json", false, "Output in JSON format")

	activitiesAddCmd.Flags().StringVar(&activityAddName, "name", "", "Activity name (required)")
	activitiesAddCmd.Flags().StringVar(&activityAddDescription, "description", "", "Short description")
	activitiesAddCmd.Flags().StringVar(&activityAddDuration, "duration", "", "Duration label, e.g. '30-45 min'")
	activitiesAddCmd.Flags().StringVar(&activityAddMobility, "mobility", string(content.MobilitySeated), "Required mobility (seated, light-movement, moderate)")
	activitiesAddCmd.Flags().StringVar(&activityAddCategory, "category", "", "Category (required)")
	activitiesAddCmd.Flags().StringArrayVar(&activityAddSupplies, "supply", nil, "Required supply (repeatable)")
	activitiesAddCmd.Flags().StringArrayVar(&activityAddBenefits, "benefit", nil, "Benefit tag (repeatable)")
	activitiesAddCmd.Flags().StringArrayVar(&activityAddSteps, "step", nil, "Instruction step (repeatable)")
	_ = activitiesAddCmd.MarkFlagRequired("name")
	_ = activitiesAddCmd.MarkFlagRequired("category")

	activitiesCmd.AddCommand(activitiesListCmd)
	activitiesCmd.AddCommand(activitiesAddCmd)
	activitiesCmd.AddCommand(activitiesDeleteCmd)
	activitiesCmd.AddCommand(activitiesScheduleCmd)
	activitiesCmd.AddCommand(activitiesUnscheduleCmd)
	rootCmd.AddCommand(activitiesCmd)
}

var activitiesCmd = &cobra.Command{
	Use:   "activities",
	Short: "Browse and manage the activity library",
}

var activitiesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List activities (built-in and custom)",
	RunE: func(cmd *cobra.Command, args []string) error {
		lib, err := openLibrary()
		if err != nil {
			return err
		}

		filter, err := parseCategoryFilter(activityListCategory)
		if err != nil {
			return err
		}
		records, err := lib.Activities(filter)
		if err != nil {
			return err
		}

		if activityListJSON {
			return printJSON(records)
		}
		return export.ActivityTable(os.Stdout, records)
	},
}

var activitiesAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a custom activity",
	RunE: func(cmd *cobra.Command, args []string) error {
		lib, err := openLibrary()
		if err != nil {
			return err
		}

		id, err := lib.ActivityStore().Add(store.ActivityDraft{
			Name:         activityAddName,
			Description:  activityAddDescription,
			Instructions: activityAddSteps,
			Benefits:     activityAddBenefits,
			Duration:     activityAddDuration,
			Mobility:     content.Mobility(activityAddMobility),
			Supplies:     activityAddSupplies,
			Category:     content.Category(activityAddCategory),
		})
		if err != nil {
			return fmt.Errorf("adding activity: %w", err)
		}

		fmt.Printf("Added activity %d: %s\n", id, activityAddName)
		return nil
	},
}

var activitiesDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a custom activity",
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
		if err := lib.ActivityStore().Delete(id); err != nil {
			return fmt.Errorf("deleting activity %d: %w", id, err)
		}

		fmt.Printf("Deleted activity %d (if it existed).\n", id)
		return nil
	},
}

var activitiesScheduleCmd = &cobra.Command{
	Use:   "schedule <id> <date>",
	Short: "Schedule a custom activity for a date (YYYY-MM-DD)",
	Long: `Schedule a custom activity for a calendar date.

Only custom activities carry a schedule; built-in catalog entries are
read-only, and scheduling a built-in ID has no effect.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		date, err := content.ParseDate(args[1])
		if err != nil {
			return err
		}

		lib, err := openLibrary()
		if err != nil {
			return err
		}
		if err := lib.ActivityStore().SetScheduledDate(id, &date); err != nil {
			return fmt.Errorf("scheduling activity %d: %w", id, err)
		}

		fmt.Printf("Scheduled activity %d for %s.\n", id, date)
		if day, ok, err := holidays.Lookup(date.MonthDay()); err == nil && ok {
			notify("Note: %s is %s (%s).", date, day.Name, day.Type)
		}
		return nil
	},
}

var activitiesUnscheduleCmd = &cobra.Command{
	Use:   "unschedule <id>",
	Short: "Clear a custom activity's scheduled date",
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
		if err := lib.ActivityStore().SetScheduledDate(id, nil); err != nil {
			return fmt.Errorf("unscheduling activity %d: %w", id, err)
		}

		fmt.Printf("Cleared schedule for activity %d.\n", id)
		return nil
	},
}

// parseCategoryFilter turns an optional flag value into a category filter.
func parseCategoryFilter(s string) (*content.Category, error) {
	if s == "" {
		return nil, nil
	}
	c, err := content.ParseCategory(s)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func parseID(s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q: expected a number", s)
	}
	return id, nil
}

package cli

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/evergreen-labs/evergreen/internal/content"
	"github.com/evergreen-labs/evergreen/internal/export"
	"github.com/evergreen-labs/evergreen/internal/holidays"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(calendarCmd)
	rootCmd.AddCommand(holidaysCmd)
}

var calendarCmd = &cobra.Command{
	Use:   "calendar [date]",
	Short: "Show what's planned for a date (defaults to today)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var date content.Date
		if len(args) == 1 {
			parsed, err := content.ParseDate(args[0])
			if err != nil {
				return err
			}
			date = parsed
		} else {
			now := time.Now()
			date = content.NewDate(now.Year(), now.Month(), now.Day())
		}

		fmt.Printf("Schedule for %s\n", date)
		if day, ok, err := holidays.Lookup(date.MonthDay()); err != nil {
			return err
		} else if ok {
			fmt.Printf("Special day: %s (%s)\n", day.Name, day.Type)
		}
		fmt.Println()

		lib, err := openLibrary()
		if err != nil {
			return err
		}
		records, err := lib.ActivitiesOn(date)
		if err != nil {
			return err
		}
		if len(records) == 0 {
			fmt.Println("No activities scheduled.")
			return nil
		}
		return export.ActivityTable(os.Stdout, records)
	},
}

var holidaysCmd = &cobra.Command{
	Use:   "holidays <month>",
	Short: "List special days in a month (1-12)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := strconv.Atoi(args[0])
		if err != nil || m < 1 || m > 12 {
			return fmt.Errorf("invalid month %q: expected 1-12", args[0])
		}

		days, err := holidays.ForMonth(time.Month(m))
		if err != nil {
			return err
		}
		if len(days) == 0 {
			fmt.Println("No special days on file for that month.")
			return nil
		}
		for _, d := range days {
			fmt.Printf("%s  %s (%s)\n", d.Date, d.Name, d.Type)
		}
		return nil
	},
}

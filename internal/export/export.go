// Package export renders activity and quiz collections as aligned tables
// for terminal listing and as detail sheets staff can print and hand out.
package export

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/evergreen-labs/evergreen/internal/content"
)

// Options tweak sheet rendering.
type Options struct {
	// LargePrint doubles the spacing between entries for easier reading
	// after printing.
	LargePrint bool
}

// ActivityTable writes a one-line-per-record table.
func ActivityTable(w io.Writer, records []content.ActivityRecord) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tCATEGORY\tMOBILITY\tDURATION\tSCHEDULED\tSOURCE")
	for _, r := range records {
		scheduled := "-"
		if r.ScheduledDate != nil {
			scheduled = r.ScheduledDate.String()
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
			r.ID, r.Name, r.Category.DisplayName(), r.Mobility.DisplayName(),
			valueOrDash(r.Duration), scheduled, sourceLabel(r.Custom))
	}
	return tw.Flush()
}

// QuizTable writes a one-line-per-card table.
func QuizTable(w io.Writer, records []content.QuizRecord) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tCATEGORY\tQUESTION\tMEDIA\tSOURCE")
	for _, r := range records {
		media := "-"
		if r.SpotifyTrackID != "" {
			media = "spotify:" + r.SpotifyTrackID
		} else if r.YouTubeVideoID != "" {
			media = "youtube:" + r.YouTubeVideoID
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n",
			r.ID, r.Category.DisplayName(), truncate(r.Question, 60), media, sourceLabel(r.Custom))
	}
	return tw.Flush()
}

// ActivitySheet writes a printable detail sheet: one block per activity
// with description, steps, benefits, and supplies.
func ActivitySheet(w io.Writer, records []content.ActivityRecord, opts Options) {
	for i, r := range records {
		if i > 0 {
			writeSeparator(w, opts)
		}
		fmt.Fprintf(w, "%s  [%s]\n", r.Name, r.Category.DisplayName())
		fmt.Fprintf(w, "Mobility: %s    Duration: %s\n", r.Mobility.DisplayName(), valueOrDash(r.Duration))
		if r.ScheduledDate != nil {
			fmt.Fprintf(w, "Scheduled: %s\n", r.ScheduledDate)
		}
		if r.Description != "" {
			fmt.Fprintf(w, "\n%s\n", r.Description)
		}
		writeList(w, "Steps", r.Instructions, true)
		writeList(w, "Benefits", r.Benefits, false)
		writeList(w, "Supplies", r.Supplies, false)
	}
}

// QuizSheet writes a printable card sheet: question, hint, and answer per
// card, answer last so a folded sheet hides it.
func QuizSheet(w io.Writer, records []content.QuizRecord, opts Options) {
	for i, r := range records {
		if i > 0 {
			writeSeparator(w, opts)
		}
		fmt.Fprintf(w, "Card %d  [%s]\n", r.ID, r.Category.DisplayName())
		fmt.Fprintf(w, "Q: %s\n", r.Question)
		if r.Hint != "" {
			fmt.Fprintf(w, "Hint: %s\n", r.Hint)
		}
		fmt.Fprintf(w, "A: %s\n", r.Answer)
	}
}

func writeSeparator(w io.Writer, opts Options) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, strings.Repeat("-", 60))
	if opts.LargePrint {
		fmt.Fprintln(w)
	}
}

func writeList(w io.Writer, title string, items []string, numbered bool) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(w, "\n%s:\n", title)
	for i, item := range items {
		if numbered {
			fmt.Fprintf(w, "  %d. %s\n", i+1, item)
		} else {
			fmt.Fprintf(w, "  - %s\n", item)
		}
	}
}

func sourceLabel(custom bool) string {
	if custom {
		return "custom"
	}
	return "built-in"
}

func valueOrDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}

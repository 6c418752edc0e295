package cli

import (
	"github.com/evergreen-labs/evergreen/internal/branding"
	"github.com/evergreen-labs/evergreen/internal/config"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` is an offline library of recreational activities and
trivia/song quiz cards for nursing-home activity staff. Browse the curated
catalog, add your own entries, schedule activities onto calendar dates,
pull fresh trivia questions, and print handout sheets.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()
	},
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return rootCmd.Execute()
}

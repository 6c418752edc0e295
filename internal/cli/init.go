package cli

import (
	"fmt"
	"os"

	"github.com/evergreen-labs/evergreen/internal/userdata"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the userdata directory",
	Long: `Create the userdata directory tree (~/.evergreen/userdata/) that holds
custom library snapshots, preferences, and exported sheets.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := userdata.GetUserdataRoot()
		if err != nil {
			return err
		}
		fmt.Printf("Initializing userdata at %s\n", root)

		if err := userdata.InitGlobal(os.Stdout); err != nil {
			return fmt.Errorf("initializing userdata: %w", err)
		}

		fmt.Println("\nUserdata initialized successfully.")
		return nil
	},
}

package cmd

import (
	"github.com/spf13/cobra"
)

var badgeCmd = &cobra.Command{
	Use:   "badge",
	Short: "Badge generation commands",
	Long:  "Render a single badge from flags or generate every badge defined in config.",
}

func init() {
	rootCmd.AddCommand(badgeCmd)
}

package cmd

import (
	"github.com/spf13/cobra"
)

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the dev container",
	Long: `Start the dev container with the configured ports and volume mount.
With a compose manifest present this runs "up" instead.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := newEngine()
		if err != nil {
			return err
		}
		return eng.Start()
	},
}

func init() {
	rootCmd.AddCommand(startCmd)
}

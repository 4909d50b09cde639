package cmd

import (
	"github.com/spf13/cobra"
)

var stopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop and remove the dev container",
	Long: `Stop the dev container and remove it. With a compose manifest present
this collapses to a single "down".`,
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := newEngine()
		if err != nil {
			return err
		}
		return eng.StopAndRemove()
	},
}

func init() {
	rootCmd.AddCommand(stopCmd)
}

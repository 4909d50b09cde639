package cmd

import (
	"github.com/spf13/cobra"
)

var debugCmd = &cobra.Command{
	Use:   "debug",
	Short: "Run a fresh container with a bash entrypoint",
	Long:  `Replace the current process with a new container running bash instead of the image's entrypoint.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := newEngine()
		if err != nil {
			return err
		}
		return eng.Debug()
	},
}

func init() {
	rootCmd.AddCommand(debugCmd)
}

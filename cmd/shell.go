package cmd

import (
	"github.com/spf13/cobra"
)

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Open a shell in the running container",
	Long:  `Replace the current process with an interactive bash inside the running container.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := newEngine()
		if err != nil {
			return err
		}
		return eng.Shell()
	},
}

func init() {
	rootCmd.AddCommand(shellCmd)
}

package cmd

import (
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run <command> [args...]",
	Short: "Run a command inside the container",
	Long:  `Execute a command inside the running container and return when it finishes.`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := newEngine()
		if err != nil {
			return err
		}
		return eng.Run(args)
	},
}

var runHardCmd = &cobra.Command{
	Use:   "run-hard <command> [args...]",
	Short: "Run a command inside the container, replacing this process",
	Long: `Like run, but the hustle process is replaced by the engine invocation
and never resumes.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := newEngine()
		if err != nil {
			return err
		}
		return eng.RunHard(args)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(runHardCmd)

	// Keep flags after the first positional token with the forwarded command
	// instead of interpreting them.
	runCmd.Flags().SetInterspersed(false)
	runHardCmd.Flags().SetInterspersed(false)
}

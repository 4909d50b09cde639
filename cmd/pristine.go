package cmd

import (
	"github.com/spf13/cobra"
)

var pristineCmd = &cobra.Command{
	Use:   "pristine",
	Short: "Tear down the container and its image",
	Long:  `Stop and remove the dev container, then remove its image. The next build starts from scratch.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := newEngine()
		if err != nil {
			return err
		}
		return eng.Pristine()
	},
}

func init() {
	rootCmd.AddCommand(pristineCmd)
}

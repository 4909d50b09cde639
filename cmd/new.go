package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var newCmd = &cobra.Command{
	Use:   "new <base-image>",
	Short: "Bootstrap a project from a base image",
	Long: `Generate a fresh container name from the base image, persist it to .env,
copy the image's /app tree into the working directory, and build the dev
image from the copied sources.`,
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			fmt.Fprintln(os.Stderr, "Syntax: hustle new <base-image>")
			return errors.New("new takes exactly one base image")
		}

		eng, err := newUnresolvedEngine()
		if err != nil {
			return err
		}
		return eng.NewProject(args[0])
	},
}

func init() {
	rootCmd.AddCommand(newCmd)
}

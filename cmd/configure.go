package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/hustlecli/hustle/pkg/config"
	"github.com/hustlecli/hustle/pkg/envfile"
	"github.com/hustlecli/hustle/pkg/resolver"
)

var configureGlobal bool

var configureCmd = &cobra.Command{
	Use:   "configure",
	Short: "Edit the hustle rc file interactively",
	Long: `Interactive editor for .hustlerc: the run-alias allow-list and
per-service container-name overrides.

Keys not shown in the form are preserved, so manual edits are never lost.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConfigure(configureGlobal)
	},
}

func runConfigure(global bool) error {
	path := config.RCFileName
	if global {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to locate home directory: %w", err)
		}
		path = filepath.Join(home, config.RCFileName)
	}

	existing, err := envfile.Load(path)
	if err != nil {
		var notFound *envfile.NotFoundError
		if !errors.As(err, &notFound) {
			return err
		}
		existing = map[string]string{}
	}

	aliases := existing[config.RunAliasesKey]
	if aliases == "" {
		aliases = "run"
	}
	var service, serviceName string
	save := true

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Run aliases").
				Description("Comma-separated verbs forwarded into the container as \"run\"").
				Value(&aliases),

			huh.NewInput().
				Title("Service override (optional)").
				Description("Service name to pin to a fixed container (-s flag)").
				Value(&service),

			huh.NewInput().
				Title("Service container name").
				Description("Only used when a service override is given").
				Value(&serviceName),
		),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Save?").
				Description(fmt.Sprintf("Write to %s", path)).
				Value(&save).
				Affirmative("Yes").
				Negative("No"),
		),
	)

	if err := form.Run(); err != nil {
		return fmt.Errorf("interactive configuration failed: %w", err)
	}

	if !save {
		fmt.Println("Nothing saved.")
		return nil
	}

	if aliases = strings.TrimSpace(aliases); aliases != "" {
		existing[config.RunAliasesKey] = aliases
	}
	if service != "" && serviceName != "" {
		existing[resolver.ServiceKey(service)] = serviceName
	}

	if err := envfile.Save(path, existing); err != nil {
		return err
	}
	fmt.Printf("Saved %s\n", path)
	return nil
}

func init() {
	rootCmd.AddCommand(configureCmd)
	configureCmd.Flags().BoolVar(&configureGlobal, "global", false, "Edit the home-directory rc file instead of the project one")
}

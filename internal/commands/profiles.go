package commands

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/VeteranWolfy/track-finance/internal/config"
)

func newProfilesCommand() *cobra.Command {
	var configPath string
	var initConfig bool

	cmd := &cobra.Command{
		Use:   "profiles",
		Short: "List input-format profiles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProfiles(configPath, initConfig)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "trackfin.yaml", "format-profile configuration file")
	cmd.Flags().BoolVar(&initConfig, "init", false, "write the built-in configuration to --config")

	return cmd
}

func runProfiles(path string, initConfig bool) error {
	if initConfig {
		if err := config.Save(path, config.Default()); err != nil {
			return err
		}
		log.Info("wrote default configuration", "path", path)
		return nil
	}

	cfg, err := config.Load(path)
	if err != nil {
		log.Debug("config not loadable, using built-in defaults", "path", path, "err", err)
		cfg = config.Default()
	}

	for _, p := range cfg.Profiles {
		fmt.Printf("%s\n", p.Name)
		fmt.Printf("  match headers: %s\n", strings.Join(p.MatchHeaders, ", "))
		if len(p.ExcludeDescriptions) > 0 {
			fmt.Printf("  exclude: %s\n", strings.Join(p.ExcludeDescriptions, ", "))
		}
		fmt.Printf("  spend positive: %v\n", p.SpendPositive)
	}
	return nil
}

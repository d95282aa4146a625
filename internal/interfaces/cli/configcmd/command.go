// Package configcmd prints the effective configuration.
package configcmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/orris-inc/footprint/internal/interfaces/cli/bootstrap"
)

const redacted = "******"

func NewCommand(opts *bootstrap.Options) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		Long:  `Print the configuration after defaults, config file and FOOTPRINT_* environment variables are merged. Secrets are redacted.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := bootstrap.LoadConfig(opts)
			if err != nil {
				return err
			}

			view := *cfg
			if view.Redis.Password != "" {
				view.Redis.Password = redacted
			}

			data, err := yaml.Marshal(&view)
			if err != nil {
				return fmt.Errorf("failed to render config: %w", err)
			}

			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}

package config

import (
	"github.com/spf13/cobra"

	"yt-transcribe/cmd/transcribe/cmd/shared"
)

// Cmd represents the config command
var Cmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective settings as YAML",
	Long: `Print the effective settings as YAML

- Built-in defaults, then the settings file, then environment variables
- The OpenAI API key is never printed`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := shared.LoadSettings()
		if err != nil {
			return err
		}
		out, err := settings.Marshal()
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(out)
		return err
	},
}

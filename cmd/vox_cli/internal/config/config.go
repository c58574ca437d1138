package config

import (
	"fmt"

	"github.com/NilFoundation/voxchain/cmd/vox_cli/internal/common"
	"github.com/NilFoundation/voxchain/common/logging"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var logger = logging.NewLogger("configCommand")

var keyColor = color.New(color.FgCyan)

func GetCommand(configPath *string) *cobra.Command {
	configCmd := &cobra.Command{
		Use:          "config",
		Short:        "Configuration management",
		SilenceUsage: true,
	}

	initCmd := &cobra.Command{
		Use:          "init",
		Short:        "Initialize config file",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := common.InitDefaultConfig(*configPath)
			if err != nil {
				logger.Error().Err(err).Msg("Failed to create config")
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Config initialized successfully: %s\n", path)
			return nil
		},
	}

	showCmd := &cobra.Command{
		Use:          "show",
		Short:        "Show the effective configuration",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := viper.ReadInConfig(); err != nil {
				return fmt.Errorf("failed to read config file: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s: %s\n", keyColor.Sprint("config"), viper.ConfigFileUsed())
			for _, key := range common.Fields {
				value := viper.Get(common.Key(key))
				if value == nil {
					continue
				}
				fmt.Fprintf(out, "%s: %v\n", keyColor.Sprint(key), value)
			}
			return nil
		},
	}

	setCmd := &cobra.Command{
		Use:          "set [key] [value]",
		Short:        "Set a config value",
		Args:         cobra.ExactArgs(2),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !common.IsSupportedField(args[0]) {
				return fmt.Errorf("key %q is not known", args[0])
			}

			if err := common.PatchConfig(map[string]any{
				args[0]: args[1],
			}); err != nil {
				logger.Error().Err(err).Msg("Failed to set config value")
				return err
			}
			logger.Info().Msgf("Set %q to %q", args[0], args[1])
			return nil
		},
	}

	configCmd.AddCommand(initCmd)
	configCmd.AddCommand(showCmd)
	configCmd.AddCommand(setCmd)

	return configCmd
}

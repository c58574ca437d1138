package main

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"io/fs"
	"math/big"
	"os"
	"os/signal"
	"reflect"
	"strings"
	"syscall"

	"github.com/NilFoundation/voxchain/cmd/vox_cli/internal/common"
	"github.com/NilFoundation/voxchain/cmd/vox_cli/internal/config"
	"github.com/NilFoundation/voxchain/cmd/vox_cli/internal/deploy"
	"github.com/NilFoundation/voxchain/cmd/vox_cli/internal/deployments"
	"github.com/NilFoundation/voxchain/cmd/vox_cli/internal/keygen"
	"github.com/NilFoundation/voxchain/cmd/vox_cli/internal/version"
	"github.com/NilFoundation/voxchain/common/logging"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/mitchellh/mapstructure"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type RootCommand struct {
	baseCmd  *cobra.Command
	config   common.Config
	cfgFile  string
	logLevel string
	verbose  bool
}

var logger = logging.NewLogger("root")

var noConfigCmd = map[string]struct{}{
	"help":             {},
	"keygen":           {},
	"completion":       {},
	"__complete":       {},
	"__completeNoDesc": {},
	"config":           {},
	"version":          {},
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	code := newRootCommand().Execute(ctx)
	stop()
	os.Exit(code)
}

func newRootCommand() *RootCommand {
	var rootCmd *RootCommand

	rootCmd = &RootCommand{
		baseCmd: &cobra.Command{
			Use:   "vox_cli",
			Short: "CLI tool for deploying the VoxChain contract",
			PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
				if !rootCmd.verbose {
					zerolog.SetGlobalLevel(zerolog.Disabled)
				} else {
					if err := logging.TrySetupGlobalLevel(rootCmd.logLevel); err != nil {
						return err
					}
				}

				// Set the config file for all commands because some commands can write something to it.
				// E.g. "keygen" command writes a private key to the config file (and creates if it doesn't exist)
				common.SetConfigFile(rootCmd.cfgFile)

				// Traverse up to find the top-level command
				for cmd.HasParent() && cmd.Parent() != rootCmd.baseCmd {
					cmd = cmd.Parent()
				}

				if _, withoutConfig := noConfigCmd[cmd.Name()]; withoutConfig {
					return nil
				}
				return rootCmd.loadConfig()
			},
			SilenceUsage:  true,
			SilenceErrors: true,
		},
	}

	rootCmd.baseCmd.PersistentFlags().StringVarP(&rootCmd.cfgFile, "config", "c", common.DefaultConfigPath, "Path to config file")
	rootCmd.baseCmd.PersistentFlags().StringVarP(&rootCmd.logLevel, "log-level", "l", "info", "Log level: trace|debug|info|warn|error|fatal|panic")
	rootCmd.baseCmd.PersistentFlags().BoolVarP(
		&rootCmd.verbose,
		"verbose",
		"v",
		false,
		"Verbose mode (print logs)",
	)

	rootCmd.registerSubCommands()
	return rootCmd
}

// registerSubCommands adds all subcommands to the root command
func (rc *RootCommand) registerSubCommands() {
	rc.baseCmd.AddCommand(
		config.GetCommand(&rc.cfgFile),
		deploy.GetCommand(&rc.config),
		deployments.GetCommand(&rc.config),
		keygen.GetCommand(),
		version.GetCommand(),
	)
}

func decodePrivateKey(f reflect.Type, t reflect.Type, data any) (any, error) {
	if f.Kind() == reflect.String && t == reflect.TypeOf(&ecdsa.PrivateKey{}) {
		s, _ := data.(string)
		if s == "" {
			return data, nil
		}
		return crypto.HexToECDSA(strings.TrimPrefix(s, "0x"))
	}
	return data, nil
}

func decodeBigInt(f reflect.Type, t reflect.Type, data any) (any, error) {
	if f.Kind() == reflect.String && t == reflect.TypeOf(&big.Int{}) {
		s, _ := data.(string)
		if s == "" {
			return data, nil
		}
		res, ok := new(big.Int).SetString(s, 10)
		if !ok || res.Sign() < 0 {
			return nil, fmt.Errorf("invalid amount %q", s)
		}
		return res, nil
	}
	return data, nil
}

// decodeEmptyPointer leaves pointer fields unset for empty values. It must run last.
func decodeEmptyPointer(f reflect.Type, t reflect.Type, data any) (any, error) {
	if f.Kind() == reflect.String && t.Kind() == reflect.Ptr && data == "" {
		return nil, nil
	}
	return data, nil
}

func updateDecoderConfig(config *mapstructure.DecoderConfig) {
	config.DecodeHook = mapstructure.ComposeDecodeHookFunc(
		config.DecodeHook,
		decodePrivateKey,
		decodeBigInt,
		decodeEmptyPointer,
	)
}

// loadConfig loads the configuration from the config file
func (rc *RootCommand) loadConfig() error {
	err := viper.ReadInConfig()

	// Create file if it doesn't exist
	if errors.As(err, new(viper.ConfigFileNotFoundError)) || errors.Is(err, fs.ErrNotExist) {
		logger.Info().Msg("Config file not found. Creating a new one...")

		path, errCfg := common.InitDefaultConfig(rc.cfgFile)
		if errCfg != nil {
			logger.Error().Err(errCfg).Msg("Failed to create config")
			return errCfg
		}

		logger.Info().Msgf("Config file created successfully at %s", path)
		logger.Info().Msgf("set via `%s config set <option> <value>` or via config file", os.Args[0])
		err = viper.ReadInConfig()
	}

	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	// Unmarshal the whole tree: UnmarshalKey skips values bound to environment variables.
	var settings struct {
		Vox common.Config `mapstructure:"vox"`
	}
	if err := viper.Unmarshal(&settings, updateDecoderConfig); err != nil {
		return fmt.Errorf("unable to decode config: %w", err)
	}
	rc.config = settings.Vox

	logger.Debug().Msg("Configuration loaded successfully")
	return nil
}

// Execute runs the root command and returns the process exit code
func (rc *RootCommand) Execute(ctx context.Context) int {
	if err := rc.baseCmd.ExecuteContext(ctx); err != nil {
		_, _ = fmt.Fprintf(rc.baseCmd.ErrOrStderr(), "Error: %v\n", err)
		return 1
	}
	return 0
}

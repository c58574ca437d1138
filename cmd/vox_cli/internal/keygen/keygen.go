package keygen

import (
	"fmt"

	"github.com/NilFoundation/voxchain/cli/service"
	"github.com/NilFoundation/voxchain/cmd/vox_cli/internal/common"
	"github.com/NilFoundation/voxchain/common/logging"
	"github.com/spf13/cobra"
)

var logger = logging.NewLogger("keygenCommand")

func GetCommand() *cobra.Command {
	keygen := service.NewService(nil, nil)

	keygenCmd := &cobra.Command{
		Use:   "keygen",
		Short: "Generate a new key or generate a key from a provided hex private key",
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			privateKey := keygen.GetPrivateKey()
			fmt.Fprintf(cmd.OutOrStdout(), "Private key: %s\nAddress: %s\n", privateKey, keygen.GetAddress().Hex())

			if err := common.PatchConfig(map[string]any{
				common.PrivateKeyField: privateKey,
			}); err != nil {
				logger.Error().Err(err).Msg("failed to update private key in config file")
			}
			return nil
		},
		SilenceUsage: true,
	}

	keygenCmd.AddCommand(NewCommand(keygen))
	keygenCmd.AddCommand(FromHexCommand(keygen))
	return keygenCmd
}

func NewCommand(keygen *service.Service) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "new",
		Short: "Generate a new key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return keygen.GenerateNewKey()
		},
		SilenceUsage: true,
	}
	return cmd
}

func FromHexCommand(keygen *service.Service) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "from-hex [key]",
		Short: "Generate a key from a provided hex private key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return keygen.GenerateKeyFromHex(args[0])
		},
		SilenceUsage: true,
	}
	return cmd
}

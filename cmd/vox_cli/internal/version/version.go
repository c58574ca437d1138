package version

import (
	"fmt"

	"github.com/NilFoundation/voxchain/common/version"
	"github.com/spf13/cobra"
)

const versionTitle = "VoxChain CLI"

func GetCommand() *cobra.Command {
	versionCmd := &cobra.Command{
		Use:          "version",
		Short:        "Get current version",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.BuildVersionString(versionTitle))
		},
	}
	return versionCmd
}

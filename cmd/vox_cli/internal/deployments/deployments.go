package deployments

import (
	"fmt"
	"io"

	"github.com/NilFoundation/voxchain/cli/service"
	"github.com/NilFoundation/voxchain/cmd/vox_cli/internal/common"
	"github.com/NilFoundation/voxchain/core/db"
	"github.com/NilFoundation/voxchain/core/types"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var errNoJournal = fmt.Errorf("%q %w", common.DeploymentsDbField, common.ErrMissingField)

var (
	keyColor     = color.New(color.FgCyan)
	addressColor = color.New(color.FgGreen)
)

func GetCommand(cfg *common.Config) *cobra.Command {
	deploymentsCmd := &cobra.Command{
		Use:          "deployments",
		Short:        "Inspect the local deployments journal",
		SilenceUsage: true,
	}

	listCmd := &cobra.Command{
		Use:          "list",
		Short:        "List recorded deployments",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, cfg)
		},
	}

	deploymentsCmd.AddCommand(listCmd)
	return deploymentsCmd
}

func runList(cmd *cobra.Command, cfg *common.Config) error {
	if cfg.DeploymentsDb == "" {
		return errNoJournal
	}

	journal, err := db.NewBadgerDb(cfg.DeploymentsDb)
	if err != nil {
		return err
	}
	defer journal.Close()

	list, err := service.NewService(nil, nil, service.WithJournal(journal)).ListDeployments(cmd.Context())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(list) == 0 {
		_, err := fmt.Fprintln(out, "No deployments recorded")
		return err
	}
	for _, d := range list {
		if err := printDeployment(out, d); err != nil {
			return err
		}
	}
	return nil
}

func printDeployment(out io.Writer, d *types.Deployment) error {
	makeKey := func(key string) string {
		return fmt.Sprintf("  %-20s: ", keyColor.Sprint(key))
	}

	_, err := fmt.Fprintf(out,
		"%s\n%s%s\n%s%d\n%s%s\n%s%d\n%s%s\n%s%d\n%s%s\n",
		addressColor.Sprint(d.Address.Hex()),
		makeKey("Contract"), d.Contract,
		makeKey("Chain id"), d.ChainId,
		makeKey("Transaction"), d.TxHash.Hex(),
		makeKey("Block"), d.BlockNumber,
		makeKey("Deployer"), d.Deployer.Hex(),
		makeKey("Gas used"), d.GasUsed,
		makeKey("Deployed at"), d.DeployedAt.Format("2006-01-02 15:04:05 MST"),
	)
	return err
}

package deploy

import (
	"github.com/NilFoundation/voxchain/cli/service"
	"github.com/NilFoundation/voxchain/cmd/vox_cli/internal/common"
	"github.com/NilFoundation/voxchain/common/logging"
	"github.com/NilFoundation/voxchain/contracts"
	"github.com/NilFoundation/voxchain/core/db"
	"github.com/NilFoundation/voxchain/deployer"
	"github.com/spf13/cobra"
)

var logger = logging.NewLogger("deployCommand")

func GetCommand(cfg *common.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deploy",
		Short: "Deploy the " + deployer.ContractName + " contract",
		Long: "Deploy the " + deployer.ContractName + " contract from its compiled artifact " +
			"and print the address it was deployed to",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDeploy(cmd, cfg)
		},
		SilenceUsage: true,
	}
	return cmd
}

func runDeploy(cmd *cobra.Command, cfg *common.Config) error {
	if err := cfg.ValidateForDeploy(); err != nil {
		return err
	}
	ctx := cmd.Context()

	logger.Debug().Str(logging.FieldUrl, cfg.RPCEndpoint).Msg("Connecting to the node")
	client, err := common.NewRpcClient(ctx, cfg)
	if err != nil {
		return err
	}
	defer client.Close()

	opts := []service.Option{
		service.WithArtifacts(contracts.NewArtifactStore(cfg.ArtifactsDir)),
		service.WithDeployOptions(service.DeployOptions{
			ConfirmTimeout: cfg.ConfirmTimeout,
			GasLimit:       cfg.GasLimit,
			GasPrice:       cfg.GasPrice,
		}),
	}

	if cfg.SolcVersion != "" {
		compiler, err := contracts.NewCompiler(cfg.SolcVersion, cfg.SourcesDir)
		if err != nil {
			return err
		}
		opts = append(opts, service.WithCompiler(compiler))
	}

	if cfg.DeploymentsDb != "" {
		journal, err := db.NewBadgerDb(cfg.DeploymentsDb)
		if err != nil {
			logger.Warn().Err(err).Str("path", cfg.DeploymentsDb).Msg("Deployments journal is unavailable")
		} else {
			defer journal.Close()
			opts = append(opts, service.WithJournal(journal))
		}
	}

	srv := service.NewService(client, cfg.PrivateKey, opts...)
	_, err = deployer.DeployVoxChain(ctx, srv, cmd.OutOrStdout())
	return err
}

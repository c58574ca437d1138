package common

import (
	"context"

	"github.com/NilFoundation/voxchain/client/rpc"
	"github.com/NilFoundation/voxchain/common/version"
	"github.com/ethereum/go-ethereum/ethclient"
)

func NewRpcClient(ctx context.Context, cfg *Config) (*ethclient.Client, error) {
	return rpc.NewClient(ctx, cfg.RPCEndpoint, map[string]string{
		"User-Agent": "vox_cli/" + version.GetGitRevision(),
	})
}

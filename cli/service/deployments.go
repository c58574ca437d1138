package service

import (
	"context"
	"errors"
	"math/big"
	"time"

	"github.com/NilFoundation/voxchain/common/logging"
	"github.com/NilFoundation/voxchain/contracts"
	"github.com/NilFoundation/voxchain/core/db"
	"github.com/NilFoundation/voxchain/core/types"
	"github.com/ethereum/go-ethereum/common"
)

var ErrJournalDisabled = errors.New("deployments journal is not configured")

// recordDeployment never fails the deployment: the contract already exists on chain.
func (s *Service) recordDeployment(
	ctx context.Context, artifact *contracts.Artifact, deployed *deployedContract, chainId *big.Int, from common.Address,
) {
	if s.journal == nil {
		return
	}

	record := &types.Deployment{
		Id:          types.NewDeploymentId(),
		Contract:    artifact.FullyQualifiedName(),
		Address:     deployed.address,
		TxHash:      deployed.tx.Hash(),
		BlockNumber: deployed.receipt.BlockNumber.Uint64(),
		ChainId:     chainId.Uint64(),
		Deployer:    from,
		GasUsed:     deployed.receipt.GasUsed,
		DeployedAt:  time.Now().UTC(),
	}

	if err := s.writeDeployment(ctx, record); err != nil {
		s.logger.Warn().Err(err).Stringer(logging.FieldAddress, record.Address).Msg("Failed to record deployment")
		return
	}
	s.logger.Debug().Stringer(logging.FieldDeploymentId, record.Id).Msg("Deployment recorded")
}

func (s *Service) writeDeployment(ctx context.Context, record *types.Deployment) error {
	tx, err := s.journal.CreateRwTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := db.WriteDeployment(tx, record); err != nil {
		return err
	}
	return tx.Commit()
}

// ListDeployments returns every recorded deployment
func (s *Service) ListDeployments(ctx context.Context) ([]*types.Deployment, error) {
	if s.journal == nil {
		return nil, ErrJournalDisabled
	}

	tx, err := s.journal.CreateRoTx(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	return db.ListDeployments(tx)
}

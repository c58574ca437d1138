package service

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/NilFoundation/voxchain/common/logging"
	"github.com/NilFoundation/voxchain/contracts"
	"github.com/NilFoundation/voxchain/deployer"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	ethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
)

var (
	ErrNoPrivateKey       = errors.New("private key is not set")
	ErrDeploymentReverted = errors.New("deployment transaction reverted")
	ErrNoAddressInReceipt = errors.New("no contract address in receipt")
)

var _ deployer.Runtime = (*Service)(nil)

// GetContractFactory resolves the artifact of the named contract and prepares it for deployment
func (s *Service) GetContractFactory(ctx context.Context, name string) (deployer.ContractFactory, error) {
	artifact, err := s.readArtifact(ctx, name)
	if err != nil {
		return nil, err
	}

	code, err := artifact.CreationCode()
	if err != nil {
		return nil, err
	}
	contractAbi, err := artifact.ParseAbi()
	if err != nil {
		return nil, err
	}

	s.logger.Debug().
		Str(logging.FieldContract, artifact.FullyQualifiedName()).
		Int("codeSize", len(code)).
		Msg("Contract factory ready")

	return &contractFactory{
		service:  s,
		artifact: artifact,
		abi:      contractAbi,
		code:     code,
	}, nil
}

func (s *Service) readArtifact(ctx context.Context, name string) (*contracts.Artifact, error) {
	artifact, err := s.artifacts.ReadArtifact(name)
	if !errors.Is(err, contracts.ErrArtifactNotFound) || s.compiler == nil {
		return artifact, err
	}

	s.logger.Info().
		Str(logging.FieldContract, name).
		Str("artifacts", s.artifacts.Root()).
		Msg("Artifact not found, compiling sources")
	if _, err := s.compiler.CompileInto(ctx, s.artifacts); err != nil {
		return nil, fmt.Errorf("failed to compile contracts: %w", err)
	}
	return s.artifacts.ReadArtifact(name)
}

type contractFactory struct {
	service  *Service
	artifact *contracts.Artifact
	abi      *abi.ABI
	code     []byte
}

// Deploy sends exactly one creation transaction and waits until it is mined
func (f *contractFactory) Deploy(ctx context.Context, args ...any) (deployer.DeployedContract, error) {
	s := f.service
	if s.privateKey == nil {
		return nil, ErrNoPrivateKey
	}

	chainId, err := s.client.ChainID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get chain id: %w", err)
	}

	from := crypto.PubkeyToAddress(s.privateKey.PublicKey)
	if balance, err := s.GetBalance(ctx, from); err == nil {
		s.logger.Info().
			Stringer(logging.FieldDeployer, from).
			Str(logging.FieldBalance, FormatEther(balance)).
			Stringer(logging.FieldChainId, chainId).
			Msg("Deploying contract")
	}
	if height, err := s.client.BlockNumber(ctx); err == nil {
		s.logger.Debug().Uint64(logging.FieldBlockNumber, height).Msg("Current block")
	}

	opts, err := bind.NewKeyedTransactorWithChainID(s.privateKey, chainId)
	if err != nil {
		return nil, fmt.Errorf("failed to create transactor: %w", err)
	}
	opts.Context = ctx
	opts.GasLimit = s.opts.GasLimit
	if s.opts.GasPrice != nil {
		opts.GasPrice = new(big.Int).Set(s.opts.GasPrice)
	}

	address, tx, _, err := bind.DeployContract(opts, *f.abi, f.code, s.client, args...)
	if err != nil {
		s.logger.Error().Err(err).Str(logging.FieldContract, f.artifact.ContractName).Msg("Failed to send deployment transaction")
		return nil, err
	}
	s.logger.Info().
		Stringer(logging.FieldTxHash, tx.Hash()).
		Uint64(logging.FieldTxNonce, tx.Nonce()).
		Stringer(logging.FieldAddress, address).
		Msg("Deployment transaction sent")

	deployed, err := f.waitDeployed(ctx, tx)
	if err != nil {
		return nil, err
	}

	s.recordDeployment(ctx, f.artifact, deployed, chainId, from)
	return deployed, nil
}

// waitDeployed follows bind.WaitDeployed but keeps the receipt.
func (f *contractFactory) waitDeployed(ctx context.Context, tx *ethtypes.Transaction) (*deployedContract, error) {
	s := f.service
	if s.opts.ConfirmTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.opts.ConfirmTimeout)
		defer cancel()
	}

	start := time.Now()
	receipt, err := bind.WaitMined(ctx, s.client, tx)
	if err != nil {
		return nil, fmt.Errorf("failed to wait for transaction %s: %w", tx.Hash(), err)
	}
	if receipt.Status != ethtypes.ReceiptStatusSuccessful {
		return nil, fmt.Errorf("%w: %s", ErrDeploymentReverted, tx.Hash())
	}
	if receipt.ContractAddress == (common.Address{}) {
		return nil, fmt.Errorf("%w: %s", ErrNoAddressInReceipt, tx.Hash())
	}

	code, err := s.client.CodeAt(ctx, receipt.ContractAddress, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get code at %s: %w", receipt.ContractAddress, err)
	}
	if len(code) == 0 {
		return nil, bind.ErrNoCodeAfterDeploy
	}

	s.logger.Info().
		Stringer(logging.FieldAddress, receipt.ContractAddress).
		Stringer(logging.FieldBlockNumber, receipt.BlockNumber).
		Uint64(logging.FieldGasUsed, receipt.GasUsed).
		Dur(logging.FieldDuration, time.Since(start)).
		Msg("Contract deployed")

	return &deployedContract{
		address: receipt.ContractAddress,
		tx:      tx,
		receipt: receipt,
	}, nil
}

type deployedContract struct {
	address common.Address
	tx      *ethtypes.Transaction
	receipt *ethtypes.Receipt
}

var _ deployer.DeployedContract = (*deployedContract)(nil)

func (d *deployedContract) GetAddress(context.Context) (common.Address, error) {
	return d.address, nil
}

func (d *deployedContract) Transaction() *ethtypes.Transaction {
	return d.tx
}

func (d *deployedContract) Receipt() *ethtypes.Receipt {
	return d.receipt
}

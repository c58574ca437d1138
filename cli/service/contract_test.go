package service

import (
	"bytes"
	"context"
	"crypto/ecdsa"
	"math/big"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/NilFoundation/voxchain/contracts"
	"github.com/NilFoundation/voxchain/core/db"
	"github.com/NilFoundation/voxchain/deployer"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	ethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient/simulated"
	"github.com/stretchr/testify/suite"
)

func etherAmount(numerator, denominator int64) *big.Int {
	wei := new(big.Int).Mul(big.NewInt(numerator), big.NewInt(1e18))
	return wei.Div(wei, big.NewInt(denominator))
}

// committingClient mines a block after every accepted transaction.
type committingClient struct {
	simulated.Client
	backend *simulated.Backend
}

func (c *committingClient) SendTransaction(ctx context.Context, tx *ethtypes.Transaction) error {
	if err := c.Client.SendTransaction(ctx, tx); err != nil {
		return err
	}
	c.backend.Commit()
	return nil
}

// receiptRewriter edits receipts before the service sees them.
type receiptRewriter struct {
	*committingClient
	rewrite func(*ethtypes.Receipt)
}

func (c *receiptRewriter) TransactionReceipt(ctx context.Context, hash common.Hash) (*ethtypes.Receipt, error) {
	receipt, err := c.committingClient.TransactionReceipt(ctx, hash)
	if err != nil {
		return nil, err
	}
	c.rewrite(receipt)
	return receipt, nil
}

type heightCountingClient struct {
	*committingClient
	calls int
}

func (c *heightCountingClient) BlockNumber(ctx context.Context) (uint64, error) {
	c.calls++
	return c.committingClient.BlockNumber(ctx)
}

type SuiteContract struct {
	suite.Suite

	ctx       context.Context
	key       *ecdsa.PrivateKey
	backend   *simulated.Backend
	client    *committingClient
	artifacts *contracts.ArtifactStore
	journal   *db.BadgerDB
}

func (s *SuiteContract) SetupTest() {
	s.ctx = context.Background()

	var err error
	s.key, err = crypto.HexToECDSA(hardhatKey)
	s.Require().NoError(err)

	s.backend = simulated.NewBackend(ethtypes.GenesisAlloc{
		crypto.PubkeyToAddress(s.key.PublicKey): {Balance: etherAmount(100, 1)},
	})
	s.client = &committingClient{Client: s.backend.Client(), backend: s.backend}

	root := s.T().TempDir()
	contracts.WriteTestArtifact(s.T(), root, contracts.NewStubArtifact("contracts/VoxChain.sol", deployer.ContractName))
	reverting := contracts.NewStubArtifact("contracts/Reverting.sol", "Reverting")
	reverting.Bytecode = "0x60006000fd"
	contracts.WriteTestArtifact(s.T(), root, reverting)
	empty := contracts.NewStubArtifact("contracts/Empty.sol", "Empty")
	empty.Bytecode = "0x00"
	contracts.WriteTestArtifact(s.T(), root, empty)
	s.artifacts = contracts.NewArtifactStore(root)

	s.journal, err = db.NewBadgerDbInMemory()
	s.Require().NoError(err)
}

func (s *SuiteContract) TearDownTest() {
	s.journal.Close()
	s.Require().NoError(s.backend.Close())
}

func (s *SuiteContract) newService(key *ecdsa.PrivateKey, opts ...Option) *Service {
	return NewService(s.client, key, append([]Option{WithArtifacts(s.artifacts), WithJournal(s.journal)}, opts...)...)
}

func (s *SuiteContract) TestDeployVoxChain() {
	service := s.newService(s.key)

	var out bytes.Buffer
	address, err := deployer.DeployVoxChain(s.ctx, service, &out)
	s.Require().NoError(err)
	s.Equal(deployer.FormatSuccess(address), out.String())

	code, err := s.client.CodeAt(s.ctx, address, nil)
	s.Require().NoError(err)
	s.Equal([]byte{0x00}, code)

	s.Equal(crypto.CreateAddress(service.GetAddress(), 0), address)

	deployments, err := service.ListDeployments(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(deployments, 1)
	s.Equal("contracts/VoxChain.sol:VoxChain", deployments[0].Contract)
	s.Equal(address, deployments[0].Address)
	s.Equal(service.GetAddress(), deployments[0].Deployer)
	s.Equal(uint64(1337), deployments[0].ChainId)
	s.Positive(deployments[0].GasUsed)
}

func (s *SuiteContract) TestDeployTwice() {
	service := s.newService(s.key)

	first, err := deployer.DeployVoxChain(s.ctx, service, &bytes.Buffer{})
	s.Require().NoError(err)
	second, err := deployer.DeployVoxChain(s.ctx, service, &bytes.Buffer{})
	s.Require().NoError(err)
	s.NotEqual(first, second)

	deployments, err := service.ListDeployments(s.ctx)
	s.Require().NoError(err)
	s.Len(deployments, 2)
}

func (s *SuiteContract) TestDeployLegacyGasPrice() {
	service := s.newService(s.key, WithDeployOptions(DeployOptions{
		ConfirmTimeout: time.Minute,
		GasLimit:       100_000,
		GasPrice:       big.NewInt(5_000_000_000),
	}))

	factory, err := service.GetContractFactory(s.ctx, deployer.ContractName)
	s.Require().NoError(err)
	deployed, err := factory.Deploy(s.ctx)
	s.Require().NoError(err)

	contract, ok := deployed.(*deployedContract)
	s.Require().True(ok)
	s.Equal(uint8(ethtypes.LegacyTxType), contract.Transaction().Type())
	s.Equal(uint64(100_000), contract.Transaction().Gas())
	s.Equal(ethtypes.ReceiptStatusSuccessful, contract.Receipt().Status)
}

func (s *SuiteContract) TestDeployReverted() {
	service := s.newService(s.key, WithDeployOptions(DeployOptions{GasLimit: 100_000}))

	factory, err := service.GetContractFactory(s.ctx, "Reverting")
	s.Require().NoError(err)
	_, err = factory.Deploy(s.ctx)
	s.Require().ErrorIs(err, ErrDeploymentReverted)

	deployments, err := service.ListDeployments(s.ctx)
	s.Require().NoError(err)
	s.Empty(deployments)
}

func (s *SuiteContract) TestDeployUnfunded() {
	poor, err := crypto.GenerateKey()
	s.Require().NoError(err)

	var out bytes.Buffer
	_, err = deployer.DeployVoxChain(s.ctx, s.newService(poor), &out)
	s.Require().Error(err)
	s.Empty(out.String())
}

func (s *SuiteContract) TestDeployWithoutKey() {
	factory, err := s.newService(nil).GetContractFactory(s.ctx, deployer.ContractName)
	s.Require().NoError(err)

	_, err = factory.Deploy(s.ctx)
	s.Require().ErrorIs(err, ErrNoPrivateKey)
}

func (s *SuiteContract) TestArtifactNotFound() {
	service := NewService(s.client, s.key, WithArtifacts(contracts.NewArtifactStore(s.T().TempDir())))

	var out bytes.Buffer
	_, err := deployer.DeployVoxChain(s.ctx, service, &out)
	s.Require().ErrorIs(err, contracts.ErrArtifactNotFound)
	s.Empty(out.String())
}

func (s *SuiteContract) TestJournalDisabled() {
	service := NewService(s.client, s.key, WithArtifacts(s.artifacts))

	_, err := deployer.DeployVoxChain(s.ctx, service, &bytes.Buffer{})
	s.Require().NoError(err)

	_, err = service.ListDeployments(s.ctx)
	s.Require().ErrorIs(err, ErrJournalDisabled)
}

func (s *SuiteContract) TestGetBalance() {
	service := s.newService(s.key)

	balance, err := service.GetBalance(s.ctx, service.GetAddress())
	s.Require().NoError(err)
	s.Equal(etherAmount(100, 1), balance)

	balance, err = service.GetBalance(s.ctx, common.Address{})
	s.Require().NoError(err)
	s.Zero(balance.Sign())
}

func (s *SuiteContract) TestDeployEmptyRuntime() {
	factory, err := s.newService(s.key).GetContractFactory(s.ctx, "Empty")
	s.Require().NoError(err)

	_, err = factory.Deploy(s.ctx)
	s.Require().ErrorIs(err, bind.ErrNoCodeAfterDeploy)
}

func (s *SuiteContract) TestCompileMissingArtifact() {
	dir := s.T().TempDir()
	sources := filepath.Join(dir, "contracts")
	s.Require().NoError(os.MkdirAll(sources, 0o755))
	s.Require().NoError(os.WriteFile(filepath.Join(sources, "VoxChain.sol"), []byte("contract VoxChain {}"), 0o644))

	output := filepath.Join(dir, "output.json")
	s.Require().NoError(os.WriteFile(output, []byte(`{"contracts":{"contracts/VoxChain.sol":{"VoxChain":{`+
		`"abi":`+contracts.StubAbi+`,`+
		`"evm":{"bytecode":{"object":"60016000f3","linkReferences":{}},"deployedBytecode":{"object":"00"}}}}}}`), 0o644))
	solc := filepath.Join(dir, "solc")
	s.Require().NoError(os.WriteFile(solc, []byte("#!/bin/sh\ncat > /dev/null\ncat '"+output+"'\n"), 0o755))

	compiler, err := contracts.NewCompiler("0.8.24", sources)
	s.Require().NoError(err)
	compiler.SolcPath = solc

	store := contracts.NewArtifactStore(filepath.Join(dir, "artifacts"))
	service := NewService(s.client, s.key, WithArtifacts(store), WithCompiler(compiler))

	var out bytes.Buffer
	address, err := deployer.DeployVoxChain(s.ctx, service, &out)
	s.Require().NoError(err)
	s.Equal(deployer.FormatSuccess(address), out.String())
	s.FileExists(filepath.Join(dir, "artifacts", "contracts", "VoxChain.sol", "VoxChain.json"))
}

func (s *SuiteContract) TestDeployZeroContractAddress() {
	rewriter := &receiptRewriter{
		committingClient: s.client,
		rewrite: func(r *ethtypes.Receipt) {
			r.ContractAddress = common.Address{}
		},
	}
	service := NewService(rewriter, s.key, WithArtifacts(s.artifacts), WithJournal(s.journal))

	var out bytes.Buffer
	_, err := deployer.DeployVoxChain(s.ctx, service, &out)
	s.Require().ErrorIs(err, ErrNoAddressInReceipt)
	s.Empty(out.String())

	deployments, err := service.ListDeployments(s.ctx)
	s.Require().NoError(err)
	s.Empty(deployments)
}

func (s *SuiteContract) TestDeployQueriesBlockHeight() {
	counting := &heightCountingClient{committingClient: s.client}
	service := NewService(counting, s.key, WithArtifacts(s.artifacts))

	_, err := deployer.DeployVoxChain(s.ctx, service, &bytes.Buffer{})
	s.Require().NoError(err)
	s.Equal(1, counting.calls)
}

func TestSuiteContract(t *testing.T) {
	t.Parallel()

	suite.Run(t, new(SuiteContract))
}

// Package deployer holds the VoxChain deployment script and the framework
// surface it is written against.
package deployer

import (
	"context"
	"fmt"
	"io"

	"github.com/ethereum/go-ethereum/common"
)

const (
	// ContractName is the only contract this script deploys.
	ContractName = "VoxChain"

	successTemplate = "Kontrak AduanRakyat berhasil di-deploy ke alamat: %s\n"
)

// Runtime resolves contract names into deployable factories.
type Runtime interface {
	GetContractFactory(ctx context.Context, name string) (ContractFactory, error)
}

// ContractFactory deploys new instances of one contract.
// Deploy blocks until the creation transaction is confirmed.
type ContractFactory interface {
	Deploy(ctx context.Context, args ...any) (DeployedContract, error)
}

type DeployedContract interface {
	GetAddress(ctx context.Context) (common.Address, error)
}

// FormatSuccess renders the confirmation line printed after a deployment.
// The address is always the full 20-byte checksummed form, so a short value
// such as 0xABC123 prints zero-padded to 40 hex digits.
func FormatSuccess(address common.Address) string {
	return fmt.Sprintf(successTemplate, address.Hex())
}

// DeployVoxChain deploys one VoxChain instance and prints its address to out.
// Nothing is written to out on failure.
func DeployVoxChain(ctx context.Context, rt Runtime, out io.Writer) (common.Address, error) {
	factory, err := rt.GetContractFactory(ctx, ContractName)
	if err != nil {
		return common.Address{}, fmt.Errorf("failed to get contract factory for %s: %w", ContractName, err)
	}

	deployed, err := factory.Deploy(ctx)
	if err != nil {
		return common.Address{}, fmt.Errorf("failed to deploy %s: %w", ContractName, err)
	}

	address, err := deployed.GetAddress(ctx)
	if err != nil {
		return common.Address{}, fmt.Errorf("failed to get address of %s: %w", ContractName, err)
	}

	if _, err := io.WriteString(out, FormatSuccess(address)); err != nil {
		return address, err
	}
	return address, nil
}

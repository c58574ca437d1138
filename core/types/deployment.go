package types

import (
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
)

// DeploymentId identifies a journal record.
type DeploymentId uuid.UUID

func NewDeploymentId() DeploymentId    { return DeploymentId(uuid.New()) }
func (id DeploymentId) String() string { return uuid.UUID(id).String() }

// MarshalText implements the encoding.TextMarshaler interface for DeploymentId.
func (id DeploymentId) MarshalText() ([]byte, error) {
	return []byte(uuid.UUID(id).String()), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface for DeploymentId.
func (id *DeploymentId) UnmarshalText(data []byte) error {
	uuidValue, err := uuid.Parse(string(data))
	if err != nil {
		return err
	}
	*id = DeploymentId(uuidValue)
	return nil
}

// Deployment describes a confirmed contract creation.
type Deployment struct {
	Id          DeploymentId   `json:"id"`
	Contract    string         `json:"contract"`
	Address     common.Address `json:"address"`
	TxHash      common.Hash    `json:"txHash"`
	BlockNumber uint64         `json:"blockNumber"`
	ChainId     uint64         `json:"chainId"`
	Deployer    common.Address `json:"deployer"`
	GasUsed     uint64         `json:"gasUsed"`
	DeployedAt  time.Time      `json:"deployedAt"`
}

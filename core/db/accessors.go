package db

import (
	"encoding/binary"
	"encoding/json"
	"fmt"

	"github.com/NilFoundation/voxchain/core/types"
	"github.com/ethereum/go-ethereum/common"
)

func deploymentKey(chainId uint64, address common.Address) []byte {
	key := make([]byte, 8, 8+common.AddressLength)
	binary.BigEndian.PutUint64(key, chainId)
	return append(key, address.Bytes()...)
}

func WriteDeployment(tx RwTx, d *types.Deployment) error {
	data, err := json.Marshal(d)
	if err != nil {
		return err
	}
	return tx.Put(DeploymentsTable, deploymentKey(d.ChainId, d.Address), data)
}

// ReadDeployment returns ErrKeyNotFound if nothing was recorded for the address.
func ReadDeployment(tx RoTx, chainId uint64, address common.Address) (*types.Deployment, error) {
	data, err := tx.Get(DeploymentsTable, deploymentKey(chainId, address))
	if err != nil {
		return nil, err
	}
	d := new(types.Deployment)
	if err := json.Unmarshal(data, d); err != nil {
		return nil, fmt.Errorf("invalid deployment record for %s: %w", address, err)
	}
	return d, nil
}

// ListDeployments returns all records ordered by chain id, then address.
func ListDeployments(tx RoTx) ([]*types.Deployment, error) {
	iter, err := tx.Range(DeploymentsTable, nil, nil)
	if err != nil {
		return nil, err
	}
	defer iter.Close()

	var res []*types.Deployment
	for iter.HasNext() {
		key, value, err := iter.Next()
		if err != nil {
			return nil, err
		}
		d := new(types.Deployment)
		if err := json.Unmarshal(value, d); err != nil {
			return nil, fmt.Errorf("invalid deployment record %x: %w", key, err)
		}
		res = append(res, d)
	}
	return res, nil
}

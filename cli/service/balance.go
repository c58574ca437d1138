package service

import (
	"context"
	"math/big"

	"github.com/NilFoundation/voxchain/common/logging"
	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
)

const etherDecimals = 18

// GetBalance returns the latest balance of the account in wei
func (s *Service) GetBalance(ctx context.Context, address common.Address) (*big.Int, error) {
	balance, err := s.client.BalanceAt(ctx, address, nil)
	if err != nil {
		s.logger.Error().Err(err).Stringer(logging.FieldAddress, address).Msg("Failed to get balance")
		return nil, err
	}
	return balance, nil
}

// FormatEther renders a wei amount in ether units.
func FormatEther(wei *big.Int) string {
	if wei == nil {
		return "0 ETH"
	}
	return decimal.NewFromBigInt(wei, -etherDecimals).String() + " ETH"
}

package service

import (
	"encoding/hex"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// GenerateNewKey generates a new private key
func (s *Service) GenerateNewKey() error {
	privateKey, err := crypto.GenerateKey()
	if err != nil {
		return err
	}

	s.privateKey = privateKey
	return nil
}

// GenerateKeyFromHex generates a private key from a hexadecimal string
func (s *Service) GenerateKeyFromHex(hexKey string) error {
	privateKey, err := crypto.HexToECDSA(strings.TrimPrefix(hexKey, "0x"))
	if err != nil {
		return err
	}

	s.privateKey = privateKey
	return nil
}

// GetPrivateKey returns the private key in hexadecimal format
func (s *Service) GetPrivateKey() string {
	return hex.EncodeToString(crypto.FromECDSA(s.privateKey))
}

// GetAddress returns the account address controlled by the private key
func (s *Service) GetAddress() common.Address {
	return crypto.PubkeyToAddress(s.privateKey.PublicKey)
}

package service

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"
)

const (
	hardhatKey     = "ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"
	hardhatAddress = "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"
)

// TestGenerateNewKey verifies that the GenerateNewKey function generates a new private key
func TestGenerateNewKey(t *testing.T) {
	t.Parallel()

	keyManager := NewService(nil, nil)

	err := keyManager.GenerateNewKey()
	require.NoError(t, err, "should generate a new key without error")
	require.NotNil(t, keyManager.privateKey, "private key should not be nil")
	require.Len(t, keyManager.GetPrivateKey(), 64)
}

// TestGenerateKeyFromHex checks that a hexadecimal key string can be correctly parsed into an ECDSA private key
func TestGenerateKeyFromHex(t *testing.T) {
	t.Parallel()

	keyManager := NewService(nil, nil)

	require.NoError(t, keyManager.GenerateKeyFromHex("0x"+hardhatKey), "0x prefix is accepted")
	require.Equal(t, hardhatKey, keyManager.GetPrivateKey())
	require.Equal(t, common.HexToAddress(hardhatAddress), keyManager.GetAddress())
	require.Equal(t, hardhatAddress, keyManager.GetAddress().Hex())

	require.Error(t, keyManager.GenerateKeyFromHex("zz"))
	require.Error(t, keyManager.GenerateKeyFromHex(hardhatKey[:10]))
}

func TestFormatEther(t *testing.T) {
	t.Parallel()

	require.Equal(t, "0 ETH", FormatEther(nil))
	require.Equal(t, "1.5 ETH", FormatEther(etherAmount(3, 2)))
	require.Equal(t, "0.000000000000000001 ETH", FormatEther(common.Big1))
}

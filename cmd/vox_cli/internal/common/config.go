package common

import (
	"crypto/ecdsa"
	"errors"
	"fmt"
	"io/fs"
	"math/big"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/NilFoundation/voxchain/common/check"
	"github.com/spf13/viper"
)

const ConfigSection = "vox"

type Config struct {
	RPCEndpoint    string            `mapstructure:"rpc_endpoint"`
	PrivateKey     *ecdsa.PrivateKey `mapstructure:"private_key"`
	ArtifactsDir   string            `mapstructure:"artifacts_dir"`
	SourcesDir     string            `mapstructure:"sources_dir"`
	SolcVersion    string            `mapstructure:"solc_version"`
	ConfirmTimeout time.Duration     `mapstructure:"confirm_timeout"`
	GasLimit       uint64            `mapstructure:"gas_limit"`
	GasPrice       *big.Int          `mapstructure:"gas_price"`
	DeploymentsDb  string            `mapstructure:"deployments_db"`
}

const (
	RPCEndpointField    = "rpc_endpoint"
	PrivateKeyField     = "private_key"
	ArtifactsDirField   = "artifacts_dir"
	SourcesDirField     = "sources_dir"
	SolcVersionField    = "solc_version"
	ConfirmTimeoutField = "confirm_timeout"
	GasLimitField       = "gas_limit"
	GasPriceField       = "gas_price"
	DeploymentsDbField  = "deployments_db"
)

// Fields lists every supported option in the order they are documented.
var Fields = []string{
	RPCEndpointField,
	PrivateKeyField,
	ArtifactsDirField,
	SourcesDirField,
	SolcVersionField,
	ConfirmTimeoutField,
	GasLimitField,
	GasPriceField,
	DeploymentsDbField,
}

var defaults = map[string]any{
	ArtifactsDirField:   "artifacts",
	SourcesDirField:     "contracts",
	ConfirmTimeoutField: 5 * time.Minute,
	GasLimitField:       0,
}

var ErrMissingField = errors.New("is missing in config")

const InitConfigTemplate = `; Configuration for deploying the VoxChain contract
[vox]

; Specify the JSON-RPC endpoint of the target network
; For example, for a local Hardhat node set it as below
; rpc_endpoint = "http://127.0.0.1:8545"

; Specify the private key of the deployer account.
; You can generate a new key with "vox_cli keygen new".
; private_key = "WRITE_YOUR_PRIVATE_KEY_HERE"

; Directory with compiled Hardhat artifacts.
; artifacts_dir = "artifacts"

; Solidity sources and compiler version, used when the artifact is missing.
; sources_dir = "contracts"
; solc_version = "0.8.24"

; How long to wait for the deployment transaction to be mined.
; confirm_timeout = "5m"

; Gas overrides. Leave unset to estimate the limit and use EIP-1559 fees.
; gas_limit = 3000000
; gas_price = 1000000000

; Directory of the local deployments journal. Leave unset to disable it.
; deployments_db = "deployments.db"
`

var DefaultConfigPath string

func init() {
	homeDir, err := os.UserHomeDir()
	check.PanicIfErr(err)

	DefaultConfigPath = filepath.Join(homeDir, ".config/vox/config.ini")
}

func IsSupportedField(key string) bool {
	for _, f := range Fields {
		if f == key {
			return true
		}
	}
	return false
}

// Key returns the viper key of a field.
func Key(field string) string {
	return ConfigSection + "." + field
}

// ValidateForDeploy checks the fields the deploy command cannot work without
func (c *Config) ValidateForDeploy() error {
	if c.RPCEndpoint == "" {
		return fmt.Errorf("%q %w", RPCEndpointField, ErrMissingField)
	}
	if c.PrivateKey == nil {
		return fmt.Errorf("%q %w", PrivateKeyField, ErrMissingField)
	}
	return nil
}

func InitDefaultConfig(configPath string) (string, error) {
	if configPath == "" {
		configPath = DefaultConfigPath
	}

	dirPath := filepath.Dir(configPath)
	if err := os.MkdirAll(dirPath, 0o755); err != nil {
		return "", fmt.Errorf("failed to create directory: %w", err)
	}

	file, err := os.OpenFile(configPath, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o600)
	if err != nil {
		return "", fmt.Errorf("failed to create config file: %w", err)
	}
	defer file.Close()

	_, err = file.WriteString(InitConfigTemplate)
	if err != nil {
		return "", fmt.Errorf("failed to write template to config file: %w", err)
	}
	return configPath, nil
}

func PatchConfig(delta map[string]any) error {
	configPath := viper.ConfigFileUsed()
	if configPath == "" {
		// impossible, since we set the default in SetConfigFile
		panic("config file is not set")
	}
	if _, err := os.Stat(configPath); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			configPath, err = InitDefaultConfig(configPath)
		}
		if err != nil {
			return err
		}
	}

	cfg, err := os.ReadFile(configPath)
	if err != nil {
		return err
	}

	result := strings.Builder{}
	first := true
	for _, line := range strings.Split(string(cfg), "\n") {
		if !first {
			result.WriteByte('\n')
		} else {
			first = false
		}
		key := strings.TrimSpace(strings.Split(line, "=")[0])
		if value, ok := delta[key]; ok {
			result.WriteString(fmt.Sprintf("%s = %v", key, value))
			delete(delta, key)
		} else {
			result.WriteString(line)
		}
	}
	for key, value := range delta {
		result.WriteString(fmt.Sprintf("%s = %v\n", key, value))
	}
	return os.WriteFile(configPath, []byte(result.String()), 0o600)
}

// SetConfigFile sets the config file for the viper along with defaults and VOX_* overrides
func SetConfigFile(cfgFile string) {
	viper.SetConfigType("ini")
	viper.SetConfigFile(cfgFile)

	for field, value := range defaults {
		viper.SetDefault(Key(field), value)
	}
	for _, field := range Fields {
		check.PanicIfErr(viper.BindEnv(Key(field), "VOX_"+strings.ToUpper(field)))
	}
}

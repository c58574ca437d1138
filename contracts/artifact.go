package contracts

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// ArtifactFormat is the format tag Hardhat writes into every artifact.
const ArtifactFormat = "hh-sol-artifact-1"

var (
	ErrArtifactNotFound  = errors.New("artifact not found")
	ErrAmbiguousArtifact = errors.New("ambiguous contract name")
	ErrInvalidArtifact   = errors.New("invalid artifact")
	ErrAbstractContract  = errors.New("contract is abstract and can't be deployed")
	ErrUnlinkedLibraries = errors.New("contract has unlinked libraries")
)

type LinkReference struct {
	Start  int `json:"start"`
	Length int `json:"length"`
}

// LinkReferences maps source name -> library name -> placeholder positions.
type LinkReferences map[string]map[string][]LinkReference

func (l LinkReferences) Libraries() []string {
	var res []string
	for source, libs := range l {
		for lib := range libs {
			res = append(res, source+":"+lib)
		}
	}
	return res
}

// Artifact is a compiled contract in Hardhat's artifact layout.
// Bytecode is kept as a string because unlinked code contains placeholders
// that are not valid hex.
type Artifact struct {
	Format                 string          `json:"_format"`
	ContractName           string          `json:"contractName"`
	SourceName             string          `json:"sourceName"`
	Abi                    json.RawMessage `json:"abi"`
	Bytecode               string          `json:"bytecode"`
	DeployedBytecode       string          `json:"deployedBytecode"`
	LinkReferences         LinkReferences  `json:"linkReferences"`
	DeployedLinkReferences LinkReferences  `json:"deployedLinkReferences"`
}

func (a *Artifact) FullyQualifiedName() string {
	return FullyQualifiedName(a.SourceName, a.ContractName)
}

func (a *Artifact) ParseAbi() (*abi.ABI, error) {
	if len(a.Abi) == 0 {
		return nil, fmt.Errorf("%w: %s has no abi", ErrInvalidArtifact, a.ContractName)
	}
	parsed, err := abi.JSON(bytes.NewReader(a.Abi))
	if err != nil {
		return nil, fmt.Errorf("failed to parse abi of %s: %w", a.ContractName, err)
	}
	return &parsed, nil
}

// CreationCode returns the decoded creation bytecode.
// It fails for interfaces, abstract contracts and contracts that still need libraries linked.
func (a *Artifact) CreationCode() ([]byte, error) {
	if len(a.LinkReferences) > 0 {
		return nil, fmt.Errorf("%w: %s needs %s",
			ErrUnlinkedLibraries, a.ContractName, strings.Join(a.LinkReferences.Libraries(), ", "))
	}
	if a.Bytecode == "" || a.Bytecode == "0x" {
		return nil, fmt.Errorf("%w: %s", ErrAbstractContract, a.FullyQualifiedName())
	}
	code, err := hexutil.Decode(a.Bytecode)
	if err != nil {
		return nil, fmt.Errorf("%w: bytecode of %s: %w", ErrInvalidArtifact, a.ContractName, err)
	}
	return code, nil
}

func (a *Artifact) validate(name string) error {
	if a.Format != "" && a.Format != ArtifactFormat {
		return fmt.Errorf("%w: unsupported format %q", ErrInvalidArtifact, a.Format)
	}
	if a.ContractName != name {
		return fmt.Errorf("%w: expected contract %s, found %s", ErrInvalidArtifact, name, a.ContractName)
	}
	return nil
}

func FullyQualifiedName(sourceName, contractName string) string {
	return sourceName + ":" + contractName
}

// ParseFullyQualifiedName splits "contracts/VoxChain.sol:VoxChain".
// ok is false for bare contract names.
func ParseFullyQualifiedName(name string) (sourceName, contractName string, ok bool) {
	i := strings.LastIndex(name, ":")
	if i < 0 {
		return "", name, false
	}
	return name[:i], name[i+1:], true
}

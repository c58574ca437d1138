package contracts

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

const (
	// StubInitCode returns a one-byte runtime (STOP), enough for a deployed code check.
	StubInitCode = "0x60016000f3"
	// StubAbi declares only a no-argument constructor.
	StubAbi = `[{"inputs":[],"stateMutability":"nonpayable","type":"constructor"}]`
)

// NewStubArtifact builds an artifact for sourceName:contractName with StubInitCode.
func NewStubArtifact(sourceName, contractName string) *Artifact {
	return &Artifact{
		Format:           ArtifactFormat,
		ContractName:     contractName,
		SourceName:       sourceName,
		Abi:              json.RawMessage(StubAbi),
		Bytecode:         StubInitCode,
		DeployedBytecode: "0x00",
	}
}

// WriteTestArtifact stores a in a store rooted at root and returns the file path.
func WriteTestArtifact(t testing.TB, root string, a *Artifact) string {
	t.Helper()

	path, err := NewArtifactStore(root).WriteArtifact(a)
	require.NoError(t, err)
	return path
}

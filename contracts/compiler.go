package contracts

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"slices"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/NilFoundation/voxchain/common/logging"
	"github.com/fabelx/go-solc-select/pkg/config"
	"github.com/fabelx/go-solc-select/pkg/installer"
	"github.com/fabelx/go-solc-select/pkg/versions"
	"github.com/rs/zerolog"
)

const defaultOptimizerRuns = 200

var (
	ErrCompilationFailed = errors.New("compilation failed")
	ErrNoSources         = errors.New("no solidity sources found")
)

// Compiler compiles every Solidity source under SourcesDir with a pinned solc.
type Compiler struct {
	Version    string
	SourcesDir string
	// SolcPath overrides the solc-select lookup when set.
	SolcPath string

	logger zerolog.Logger
}

func NewCompiler(version, sourcesDir string) (*Compiler, error) {
	v, err := semver.NewVersion(version)
	if err != nil {
		return nil, fmt.Errorf("invalid solc version %q: %w", version, err)
	}
	return &Compiler{
		Version:    v.String(),
		SourcesDir: sourcesDir,
		logger:     logging.NewLogger("compiler"),
	}, nil
}

// CompileInto compiles the sources and writes one artifact per contract.
func (c *Compiler) CompileInto(ctx context.Context, store *ArtifactStore) ([]*Artifact, error) {
	artifacts, err := c.Compile(ctx)
	if err != nil {
		return nil, err
	}
	for _, a := range artifacts {
		path, err := store.WriteArtifact(a)
		if err != nil {
			return nil, err
		}
		c.logger.Debug().
			Str(logging.FieldContract, a.FullyQualifiedName()).
			Str(logging.FieldArtifactPath, path).
			Msg("Artifact written")
	}
	return artifacts, nil
}

func (c *Compiler) Compile(ctx context.Context) ([]*Artifact, error) {
	c.logger.Info().Str(logging.FieldSolcVersion, c.Version).Msg("Start contract compiling...")

	input, err := c.buildInput()
	if err != nil {
		return nil, err
	}

	solc := c.SolcPath
	if solc == "" {
		if solc, err = solcBinary(c.Version); err != nil {
			return nil, fmt.Errorf("failed to find compiler: %w", err)
		}
	}

	inputJson, err := json.Marshal(input)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal compiler input: %w", err)
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, solc, "--standard-json")
	cmd.Stdin = bytes.NewReader(inputJson)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		c.logger.Error().Err(err).Str(logging.FieldError, strings.TrimSpace(stderr.String())).Msg("solc failed")
		return nil, fmt.Errorf("%w: %w: %s", ErrCompilationFailed, err, strings.TrimSpace(stderr.String()))
	}

	var output solcOutput
	if err := json.Unmarshal(stdout.Bytes(), &output); err != nil {
		return nil, fmt.Errorf("failed to unmarshal compiler output: %w", err)
	}

	artifacts, err := artifactsFromOutput(&output)
	if err != nil {
		return nil, err
	}
	c.logger.Info().Int("contracts", len(artifacts)).Msg("Compilation finished")
	return artifacts, nil
}

// buildInput embeds every .sol file under SourcesDir, keyed by its path
// relative to the parent of SourcesDir (e.g. "contracts/VoxChain.sol").
func (c *Compiler) buildInput() (*solcInput, error) {
	base := filepath.Dir(filepath.Clean(c.SourcesDir))
	input := &solcInput{
		Language: "Solidity",
		Sources:  make(map[string]solcSource),
		Settings: solcSettings{
			Optimizer: solcOptimizer{
				Enabled: true,
				Runs:    defaultOptimizerRuns,
			},
			OutputSelection: defaultOutputSelection,
		},
	}

	err := filepath.WalkDir(c.SourcesDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || filepath.Ext(path) != ".sol" {
			return nil
		}
		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read source file %s: %w", path, err)
		}
		rel, err := filepath.Rel(base, path)
		if err != nil {
			return err
		}
		input.Sources[filepath.ToSlash(rel)] = solcSource{Content: string(content)}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to collect sources: %w", err)
	}
	if len(input.Sources) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoSources, c.SourcesDir)
	}
	return input, nil
}

func artifactsFromOutput(output *solcOutput) ([]*Artifact, error) {
	var errs []string
	for _, e := range output.Errors {
		if e.Severity == "error" {
			errs = append(errs, e.FormattedMessage)
		}
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("%w:\n%s", ErrCompilationFailed, strings.Join(errs, "\n"))
	}

	var artifacts []*Artifact
	for sourceName, contracts := range output.Contracts {
		for contractName, c := range contracts {
			artifacts = append(artifacts, &Artifact{
				Format:                 ArtifactFormat,
				ContractName:           contractName,
				SourceName:             sourceName,
				Abi:                    c.Abi,
				Bytecode:               withHexPrefix(c.Evm.Bytecode.Object),
				DeployedBytecode:       withHexPrefix(c.Evm.DeployedBytecode.Object),
				LinkReferences:         c.Evm.Bytecode.LinkReferences,
				DeployedLinkReferences: c.Evm.DeployedBytecode.LinkReferences,
			})
		}
	}
	slices.SortFunc(artifacts, func(a, b *Artifact) int {
		return strings.Compare(a.FullyQualifiedName(), b.FullyQualifiedName())
	})
	return artifacts, nil
}

func withHexPrefix(s string) string {
	if strings.HasPrefix(s, "0x") {
		return s
	}
	return "0x" + s
}

// solcBinary returns the solc-select managed binary, installing it on first use.
func solcBinary(version string) (string, error) {
	if _, ok := versions.GetInstalled()[version]; !ok {
		if err := installer.InstallSolc(version); err != nil {
			return "", fmt.Errorf("failed to install solc %s: %w", version, err)
		}
	}
	installed, ok := versions.GetInstalled()[version]
	if !ok {
		return "", fmt.Errorf("solc %s is not installed", version)
	}

	dir := "solc-" + installed
	path := filepath.Join(config.SolcArtifacts, dir, dir)
	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("solc %s binary is missing: %w", version, err)
	}
	return path, nil
}

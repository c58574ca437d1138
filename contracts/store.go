package contracts

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/NilFoundation/voxchain/common/check"
	lru "github.com/hashicorp/golang-lru/v2"
)

const (
	artifactCacheSize = 64
	buildInfoDir      = "build-info"
	artifactExt       = ".json"
)

// ArtifactStore reads and writes artifacts laid out as
// <root>/<sourceName>/<ContractName>.json.
type ArtifactStore struct {
	root  string
	cache *lru.Cache[string, *Artifact]
}

func NewArtifactStore(root string) *ArtifactStore {
	cache, err := lru.New[string, *Artifact](artifactCacheSize)
	check.PanicIfErr(err)
	return &ArtifactStore{
		root:  root,
		cache: cache,
	}
}

func (s *ArtifactStore) Root() string {
	return s.root
}

// ReadArtifact resolves a bare or fully qualified contract name.
func (s *ArtifactStore) ReadArtifact(name string) (*Artifact, error) {
	if a, ok := s.cache.Get(name); ok {
		return a, nil
	}

	path, err := s.ArtifactPath(name)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read artifact %s: %w", path, err)
	}

	a := new(Artifact)
	if err := json.Unmarshal(data, a); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidArtifact, path, err)
	}

	_, contractName, _ := ParseFullyQualifiedName(name)
	if err := a.validate(contractName); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	s.cache.Add(name, a)
	return a, nil
}

// ArtifactPath returns the file holding the artifact of the named contract.
func (s *ArtifactStore) ArtifactPath(name string) (string, error) {
	if sourceName, contractName, ok := ParseFullyQualifiedName(name); ok {
		path := s.pathFor(sourceName, contractName)
		if _, err := os.Stat(path); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return "", fmt.Errorf("%w: %s", ErrArtifactNotFound, name)
			}
			return "", err
		}
		return path, nil
	}

	candidates, err := s.findByContractName(name)
	if err != nil {
		return "", err
	}
	switch len(candidates) {
	case 0:
		return "", fmt.Errorf("%w: %s (searched in %s)", ErrArtifactNotFound, name, s.root)
	case 1:
		return candidates[0], nil
	}

	names := make([]string, 0, len(candidates))
	for _, c := range candidates {
		names = append(names, s.fullyQualifiedNameOf(c))
	}
	return "", fmt.Errorf("%w: %s matches %s, use a fully qualified name",
		ErrAmbiguousArtifact, name, strings.Join(names, ", "))
}

// WriteArtifact stores the artifact and returns the path it was written to.
func (s *ArtifactStore) WriteArtifact(a *Artifact) (string, error) {
	if a.Format == "" {
		a.Format = ArtifactFormat
	}
	path := s.pathFor(a.SourceName, a.ContractName)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("failed to create artifact directory: %w", err)
	}

	data, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write artifact %s: %w", path, err)
	}

	s.cache.Purge()
	return path, nil
}

func (s *ArtifactStore) pathFor(sourceName, contractName string) string {
	return filepath.Join(s.root, filepath.FromSlash(sourceName), contractName+artifactExt)
}

func (s *ArtifactStore) fullyQualifiedNameOf(path string) string {
	rel, err := filepath.Rel(s.root, path)
	check.PanicIfErr(err)
	dir, file := filepath.Split(rel)
	return FullyQualifiedName(filepath.ToSlash(filepath.Clean(dir)), strings.TrimSuffix(file, artifactExt))
}

func (s *ArtifactStore) findByContractName(contractName string) ([]string, error) {
	want := contractName + artifactExt
	var found []string
	err := filepath.WalkDir(s.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if d.Name() == buildInfoDir {
				return filepath.SkipDir
			}
			return nil
		}
		// Debug files are named <Contract>.dbg.json, so they never match.
		if d.Name() == want {
			found = append(found, path)
		}
		return nil
	})
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan artifacts in %s: %w", s.root, err)
	}
	slices.Sort(found)
	return found, nil
}

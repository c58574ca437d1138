package service

import (
	"crypto/ecdsa"
	"math/big"
	"time"

	"github.com/NilFoundation/voxchain/client"
	"github.com/NilFoundation/voxchain/common/logging"
	"github.com/NilFoundation/voxchain/contracts"
	"github.com/NilFoundation/voxchain/core/db"
	"github.com/rs/zerolog"
)

const DefaultConfirmTimeout = 5 * time.Minute

type DeployOptions struct {
	// ConfirmTimeout bounds waiting for the deployment transaction to be mined.
	ConfirmTimeout time.Duration
	// GasLimit of zero means "estimate".
	GasLimit uint64
	// GasPrice forces a legacy transaction when set.
	GasPrice *big.Int
}

type Service struct {
	client     client.Client
	privateKey *ecdsa.PrivateKey
	logger     zerolog.Logger

	artifacts *contracts.ArtifactStore
	compiler  *contracts.Compiler
	journal   db.DB
	opts      DeployOptions
}

type Option func(*Service)

func WithArtifacts(store *contracts.ArtifactStore) Option {
	return func(s *Service) {
		s.artifacts = store
	}
}

// WithCompiler enables compiling sources when an artifact is missing.
func WithCompiler(c *contracts.Compiler) Option {
	return func(s *Service) {
		s.compiler = c
	}
}

// WithJournal records every successful deployment into the database.
func WithJournal(journal db.DB) Option {
	return func(s *Service) {
		s.journal = journal
	}
}

func WithDeployOptions(opts DeployOptions) Option {
	return func(s *Service) {
		s.opts = opts
	}
}

// NewService initializes a new Service with the given client
func NewService(c client.Client, privateKey *ecdsa.PrivateKey, opts ...Option) *Service {
	s := &Service{
		client:    c,
		logger:    logging.NewLogger("cliService"),
		artifacts: contracts.NewArtifactStore("artifacts"),
		opts: DeployOptions{
			ConfirmTimeout: DefaultConfirmTimeout,
		},
	}

	s.privateKey = privateKey

	for _, opt := range opts {
		opt(s)
	}
	return s
}

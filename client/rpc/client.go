package rpc

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/NilFoundation/voxchain/client"
	"github.com/ethereum/go-ethereum/ethclient"
	gethrpc "github.com/ethereum/go-ethereum/rpc"
)

var ErrEmptyEndpoint = errors.New("rpc endpoint is empty")

var _ client.Client = (*ethclient.Client)(nil)

// NewClient dials the JSON-RPC endpoint, attaching headers to every request.
func NewClient(ctx context.Context, endpoint string, headers map[string]string) (*ethclient.Client, error) {
	if endpoint == "" {
		return nil, ErrEmptyEndpoint
	}

	h := make(http.Header, len(headers))
	for k, v := range headers {
		h.Set(k, v)
	}

	c, err := gethrpc.DialOptions(ctx, endpoint, gethrpc.WithHeaders(h))
	if err != nil {
		return nil, fmt.Errorf("failed to dial %s: %w", endpoint, err)
	}
	return ethclient.NewClient(c), nil
}

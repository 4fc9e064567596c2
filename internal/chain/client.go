package chain

import (
	"context"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/rpc"
)

// ObservedClient implements NetworkClient over a geth RPC connection with
// metrics instrumentation. It is the single translation point between this
// package and the node's native response shapes.
type ObservedClient struct {
	eth        *ethclient.Client
	rpc        *rpc.Client
	rpcMetrics RPCMetrics
}

// NewObservedClient constructs an instrumented network client.
func NewObservedClient(rpcClient *rpc.Client, rpcMetrics RPCMetrics) *ObservedClient {
	return &ObservedClient{
		eth:        ethclient.NewClient(rpcClient),
		rpc:        rpcClient,
		rpcMetrics: rpcMetrics,
	}
}

// ChainID returns the chain identifier reported by the node.
func (c *ObservedClient) ChainID(ctx context.Context) (id *big.Int, err error) {
	started := time.Now()
	defer func() {
		c.rpcMetrics.Observe("chain_id", err, started)
	}()
	return c.eth.ChainID(ctx)
}

// PendingNonceAt returns the pending-inclusive nonce for an account.
func (c *ObservedClient) PendingNonceAt(ctx context.Context, account common.Address) (nonce uint64, err error) {
	started := time.Now()
	defer func() {
		c.rpcMetrics.Observe("pending_nonce_at", err, started)
	}()
	return c.eth.PendingNonceAt(ctx, account)
}

// SuggestGasPrice returns the node's current gas price suggestion.
func (c *ObservedClient) SuggestGasPrice(ctx context.Context) (price *big.Int, err error) {
	started := time.Now()
	defer func() {
		c.rpcMetrics.Observe("suggest_gas_price", err, started)
	}()
	return c.eth.SuggestGasPrice(ctx)
}

// EstimateGas simulates the call and returns the gas required.
func (c *ObservedClient) EstimateGas(ctx context.Context, msg ethereum.CallMsg) (gas uint64, err error) {
	started := time.Now()
	defer func() {
		c.rpcMetrics.Observe("estimate_gas", err, started)
	}()
	return c.eth.EstimateGas(ctx, msg)
}

// SendRawTransaction broadcasts pre-signed transaction bytes.
func (c *ObservedClient) SendRawTransaction(ctx context.Context, rawTx []byte) (err error) {
	started := time.Now()
	defer func() {
		c.rpcMetrics.Observe("send_raw_transaction", err, started)
	}()
	return c.rpc.CallContext(ctx, nil, "eth_sendRawTransaction", hexutil.Encode(rawTx))
}

// TransactionReceipt looks up the receipt for a transaction hash.
func (c *ObservedClient) TransactionReceipt(ctx context.Context, txHash common.Hash) (receipt *types.Receipt, err error) {
	started := time.Now()
	defer func() {
		c.rpcMetrics.Observe("transaction_receipt", err, started)
	}()
	return c.eth.TransactionReceipt(ctx, txHash)
}

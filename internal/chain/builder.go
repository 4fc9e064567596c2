package chain

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/zap"

	"github.com/rizzabh6717/zentigrity-supernova/internal/model"
)

const (
	// gasPriceBumpPercent is the fixed priority premium over the node's
	// suggested gas price.
	gasPriceBumpPercent = 20
	// gasLimitBufferPercent is the safety buffer applied to the simulated
	// gas estimate.
	gasLimitBufferPercent = 20
	// resolveGasLimit is the fixed gas limit for markResolved calls, which
	// skip estimation.
	resolveGasLimit = 200000
)

// Builder constructs unsigned registry transactions from grievance records.
type Builder struct {
	client   NetworkClient
	registry *Registry
	from     common.Address
	logger   *zap.Logger
}

// NewBuilder constructs a transaction builder for the given sender.
func NewBuilder(client NetworkClient, registry *Registry, from common.Address, logger *zap.Logger) *Builder {
	return &Builder{
		client:   client,
		registry: registry,
		from:     from,
		logger:   logger.Named("txBuilder"),
	}
}

// BuildSubmit constructs an unsigned submitGrievance transaction. Gas price
// is the suggested price plus the fixed premium; the gas limit is the
// simulated estimate plus the safety buffer. A failed estimation propagates
// as ErrGasEstimation.
func (b *Builder) BuildSubmit(ctx context.Context, rec *model.GrievanceRecord) (*types.Transaction, error) {
	data, err := b.registry.PackSubmitGrievance(rec)
	if err != nil {
		return nil, err
	}

	nonce, err := b.client.PendingNonceAt(ctx, b.from)
	if err != nil {
		return nil, fmt.Errorf("resolve pending nonce: %w", err)
	}

	gasPrice, err := b.bumpedGasPrice(ctx)
	if err != nil {
		return nil, err
	}

	to := b.registry.Address()
	estimated, err := b.client.EstimateGas(ctx, ethereum.CallMsg{
		From:     b.from,
		To:       &to,
		GasPrice: gasPrice,
		Data:     data,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGasEstimation, err)
	}
	gasLimit := estimated + estimated*gasLimitBufferPercent/100

	b.logger.Debug("built submitGrievance transaction",
		zap.String("trackingId", rec.TrackingID),
		zap.Uint64("nonce", nonce),
		zap.Uint64("gasLimit", gasLimit),
		zap.String("gasPrice", gasPrice.String()),
	)

	return types.NewTx(&types.LegacyTx{
		Nonce:    nonce,
		GasPrice: gasPrice,
		Gas:      gasLimit,
		To:       &to,
		Value:    big.NewInt(0),
		Data:     data,
	}), nil
}

// BuildResolve constructs an unsigned markResolved transaction. Resolution
// calls use a fixed gas limit and the unbumped suggested gas price.
func (b *Builder) BuildResolve(ctx context.Context, trackingID string) (*types.Transaction, error) {
	data, err := b.registry.PackMarkResolved(trackingID)
	if err != nil {
		return nil, err
	}

	nonce, err := b.client.PendingNonceAt(ctx, b.from)
	if err != nil {
		return nil, fmt.Errorf("resolve pending nonce: %w", err)
	}

	gasPrice, err := b.client.SuggestGasPrice(ctx)
	if err != nil {
		return nil, fmt.Errorf("suggest gas price: %w", err)
	}

	to := b.registry.Address()
	return types.NewTx(&types.LegacyTx{
		Nonce:    nonce,
		GasPrice: gasPrice,
		Gas:      resolveGasLimit,
		To:       &to,
		Value:    big.NewInt(0),
		Data:     data,
	}), nil
}

func (b *Builder) bumpedGasPrice(ctx context.Context) (*big.Int, error) {
	suggested, err := b.client.SuggestGasPrice(ctx)
	if err != nil {
		return nil, fmt.Errorf("suggest gas price: %w", err)
	}
	bumped := new(big.Int).Mul(suggested, big.NewInt(100+gasPriceBumpPercent))
	return bumped.Div(bumped, big.NewInt(100)), nil
}

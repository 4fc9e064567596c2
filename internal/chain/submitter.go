package chain

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/zap"

	"github.com/rizzabh6717/zentigrity-supernova/internal/clock"
	"github.com/rizzabh6717/zentigrity-supernova/internal/model"
)

const (
	defaultPollInterval   = 5 * time.Second
	defaultConfirmTimeout = 120 * time.Second
)

// Submitter signs, broadcasts and confirms registry transactions. One call,
// one attempt: retries are not this layer's business.
type Submitter struct {
	client         NetworkClient
	account        *Account
	chainID        *big.Int
	sleep          clock.SleepFunc
	pollInterval   time.Duration
	confirmTimeout time.Duration
	logger         *zap.Logger
}

// NewSubmitter constructs a transaction submitter for the given chain.
func NewSubmitter(client NetworkClient, account *Account, chainID *big.Int, logger *zap.Logger) *Submitter {
	return &Submitter{
		client:         client,
		account:        account,
		chainID:        chainID,
		sleep:          clock.SleepWithContext,
		pollInterval:   defaultPollInterval,
		confirmTimeout: defaultConfirmTimeout,
		logger:         logger.Named("txSubmitter"),
	}
}

// Submit signs and broadcasts the transaction, then polls for a receipt
// until the confirmation window closes. A timed-out confirmation is a
// terminal failed result, not an error; the caller needs no further polling.
func (s *Submitter) Submit(ctx context.Context, tx *types.Transaction) model.BlockchainResult {
	txHash, err := s.Broadcast(ctx, tx)
	if err != nil {
		return model.BlockchainResult{Success: false, Error: err.Error()}
	}

	if err := s.waitForReceipt(ctx, txHash); err != nil {
		return model.BlockchainResult{Success: false, Error: err.Error()}
	}

	s.logger.Info("transaction confirmed", zap.String("txHash", txHash.Hex()))
	return model.BlockchainResult{Success: true, TxHash: txHash.Hex()}
}

// Broadcast signs the transaction and sends its raw bytes to the network
// without waiting for a receipt.
func (s *Submitter) Broadcast(ctx context.Context, tx *types.Transaction) (common.Hash, error) {
	signed, err := s.account.SignTx(tx, s.chainID)
	if err != nil {
		return common.Hash{}, err
	}

	raw, err := signed.MarshalBinary()
	if err != nil || len(raw) == 0 {
		return common.Hash{}, ErrEncoding
	}

	if err := s.client.SendRawTransaction(ctx, raw); err != nil {
		return common.Hash{}, fmt.Errorf("%w: %v", ErrBroadcast, err)
	}

	txHash := signed.Hash()
	s.logger.Info("transaction broadcast", zap.String("txHash", txHash.Hex()))
	return txHash, nil
}

// waitForReceipt polls the node at a fixed interval until the transaction is
// mined or the confirmation window closes. Lookup errors during polling are
// treated as not-yet-mined.
func (s *Submitter) waitForReceipt(ctx context.Context, txHash common.Hash) error {
	attempts := int(s.confirmTimeout / s.pollInterval)
	for i := 0; i < attempts; i++ {
		receipt, err := s.client.TransactionReceipt(ctx, txHash)
		if err == nil && receipt != nil {
			return nil
		}
		if err != nil {
			s.logger.Debug("receipt not yet available", zap.String("txHash", txHash.Hex()), zap.Error(err))
		}
		if err := s.sleep(ctx, s.pollInterval); err != nil {
			return err
		}
	}
	return fmt.Errorf("transaction %s not mined within %s", txHash.Hex(), s.confirmTimeout)
}

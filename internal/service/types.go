// Package service orchestrates the grievance submission pipeline.
package service

import (
	"context"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/rizzabh6717/zentigrity-supernova/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Classifier categorizes a grievance image. It degrades, never fails.
	Classifier interface {
		Classify(ctx context.Context, image []byte) model.CategoryResult
	}

	// TxBuilder constructs unsigned registry transactions.
	TxBuilder interface {
		BuildSubmit(ctx context.Context, rec *model.GrievanceRecord) (*types.Transaction, error)
		BuildResolve(ctx context.Context, trackingID string) (*types.Transaction, error)
	}

	// TxSubmitter signs, broadcasts and optionally confirms transactions.
	TxSubmitter interface {
		Submit(ctx context.Context, tx *types.Transaction) model.BlockchainResult
		Broadcast(ctx context.Context, tx *types.Transaction) (common.Hash, error)
	}

	// GrievanceStore is the single source of truth for submission status.
	GrievanceStore interface {
		Append(rec *model.GrievanceRecord) error
		Get(trackingID string) (model.GrievanceRecord, bool)
		ListAll() []model.GrievanceRecord
		UpdateStatus(trackingID string, status model.BlockchainStatus, txHash, errMsg string) error
		MarkResolved(trackingID string) error
	}

	// SubmissionMetrics records pipeline outcomes.
	SubmissionMetrics interface {
		ObserveSubmission(status model.BlockchainStatus, started time.Time)
		ObserveResolution(err error, started time.Time)
	}
)

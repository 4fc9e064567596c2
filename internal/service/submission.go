package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/rizzabh6717/zentigrity-supernova/internal/chain"
	"github.com/rizzabh6717/zentigrity-supernova/internal/model"
)

var (
	// ErrNoImage is the only hard input-validation failure of the pipeline:
	// a submission without an image is rejected before any collaborator call.
	ErrNoImage = errors.New("no image provided")
	// ErrNotFound is returned for lookups of unknown tracking IDs.
	ErrNotFound = errors.New("grievance not found")
)

const (
	defaultTitle       = "Untitled Grievance"
	defaultDescription = "No description provided"
	defaultLocation    = "Unknown"
	defaultCurrency    = "INR"
)

// SubmissionService runs the classify, persist, anchor pipeline. Each call is
// one synchronous run; a chain failure never discards the locally accepted
// grievance.
type SubmissionService struct {
	classifier   Classifier
	builder      TxBuilder
	submitter    TxSubmitter
	store        GrievanceStore
	metrics      SubmissionMetrics
	logger       *zap.Logger
	sender       string // sender address recorded on each grievance
	explorerBase string
	now          func() int64
}

// NewSubmissionService wires the pipeline together.
func NewSubmissionService(
	classifier Classifier,
	builder TxBuilder,
	submitter TxSubmitter,
	store GrievanceStore,
	metrics SubmissionMetrics,
	senderAddress string,
	explorerBase string,
	logger *zap.Logger,
) (*SubmissionService, error) {
	if metrics == nil {
		return nil, errors.New("submission metrics is required")
	}
	return &SubmissionService{
		classifier:   classifier,
		builder:      builder,
		submitter:    submitter,
		store:        store,
		metrics:      metrics,
		logger:       logger.Named("submission"),
		sender:       senderAddress,
		explorerBase: explorerBase,
		now:          func() int64 { return time.Now().Unix() },
	}, nil
}

// SubmitGrievanceInput is one citizen report.
type SubmitGrievanceInput struct {
	Title       string
	Description string
	Location    string
	Image       []byte
}

// SubmitGrievanceResponse is returned for every accepted grievance. The
// blockchain sub-result may report a failure while the grievance itself is
// accepted and queryable.
type SubmitGrievanceResponse struct {
	TrackingID string                 `json:"trackingId"`
	Grievance  model.GrievanceRecord  `json:"grievance"`
	Blockchain model.BlockchainResult `json:"blockchain"`
}

// ResolutionResult is the outcome of a successful markResolved broadcast.
type ResolutionResult struct {
	TxHash       string `json:"transaction_hash"`
	ExplorerLink string `json:"explorer_link"`
}

// SubmitGrievance runs the full pipeline: classify, persist as pending,
// submit on-chain, reconcile the stored status. The record is persisted
// before the chain is touched, so it remains queryable whatever happens
// afterwards.
func (s *SubmissionService) SubmitGrievance(ctx context.Context, in SubmitGrievanceInput) (*SubmitGrievanceResponse, error) {
	if len(in.Image) == 0 {
		return nil, ErrNoImage
	}
	started := time.Now()

	classified := s.classifier.Classify(ctx, in.Image)
	if classified.Degraded() {
		s.logger.Warn("classifier degraded, accepting grievance with fallback category",
			zap.String("error", classified.Err))
	}

	rec := s.newRecord(in, classified)
	if err := s.store.Append(rec); err != nil {
		return nil, err
	}
	s.logger.Info("grievance persisted",
		zap.String("trackingId", rec.TrackingID),
		zap.String("category", rec.Category),
		zap.String("priority", string(rec.PriorityLevel)),
	)

	result := s.anchor(ctx, rec)

	status := model.BlockchainFailed
	txHash, errMsg := "", result.Error
	if result.Success {
		status = model.BlockchainSuccess
		txHash, errMsg = result.TxHash, ""
	}
	if err := s.store.UpdateStatus(rec.TrackingID, status, txHash, errMsg); err != nil {
		s.logger.Error("reconcile status failed", zap.String("trackingId", rec.TrackingID), zap.Error(err))
	}
	s.metrics.ObserveSubmission(status, started)

	stored, _ := s.store.Get(rec.TrackingID)
	return &SubmitGrievanceResponse{
		TrackingID: rec.TrackingID,
		Grievance:  stored,
		Blockchain: result,
	}, nil
}

// anchor builds and submits the registry transaction, folding builder
// failures into the same result shape as submitter failures.
func (s *SubmissionService) anchor(ctx context.Context, rec *model.GrievanceRecord) model.BlockchainResult {
	tx, err := s.builder.BuildSubmit(ctx, rec)
	if err != nil {
		s.logger.Error("build transaction failed", zap.String("trackingId", rec.TrackingID), zap.Error(err))
		return model.BlockchainResult{Success: false, Error: err.Error()}
	}
	return s.submitter.Submit(ctx, tx)
}

func (s *SubmissionService) newRecord(in SubmitGrievanceInput, classified model.CategoryResult) *model.GrievanceRecord {
	justification, err := json.Marshal(classified.AllResults)
	if err != nil {
		justification = []byte("[]")
	}

	now := s.now()
	rec := &model.GrievanceRecord{
		TrackingID:       model.NewTrackingID(),
		Title:            in.Title,
		Description:      in.Description,
		Location:         in.Location,
		Category:         classified.Category,
		PriorityLevel:    classified.PriorityLevel,
		EstimatedDays:    classified.EstimatedDays,
		Confidence:       classified.Confidence,
		AIJustification:  string(justification),
		MediaCount:       1,
		FundAmount:       0,
		Currency:         defaultCurrency,
		Status:           model.StatusSubmitted,
		BlockchainStatus: model.BlockchainPending,
		Submitter:        s.sender,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if rec.Title == "" {
		rec.Title = defaultTitle
	}
	if rec.Description == "" {
		rec.Description = defaultDescription
	}
	if rec.Location == "" {
		rec.Location = defaultLocation
	}
	return rec
}

// GetGrievance looks up a single record by tracking ID.
func (s *SubmissionService) GetGrievance(trackingID string) (model.GrievanceRecord, error) {
	rec, ok := s.store.Get(trackingID)
	if !ok {
		return model.GrievanceRecord{}, ErrNotFound
	}
	return rec, nil
}

// ListGrievances returns all records in submission order.
func (s *SubmissionService) ListGrievances() []model.GrievanceRecord {
	return s.store.ListAll()
}

// MarkResolved broadcasts a markResolved transaction for an existing
// grievance and flags the local record. The broadcast is not awaited for a
// receipt; the returned explorer link lets callers track it.
func (s *SubmissionService) MarkResolved(ctx context.Context, trackingID string) (*ResolutionResult, error) {
	started := time.Now()

	if _, ok := s.store.Get(trackingID); !ok {
		return nil, ErrNotFound
	}

	tx, err := s.builder.BuildResolve(ctx, trackingID)
	if err != nil {
		s.metrics.ObserveResolution(err, started)
		return nil, err
	}

	txHash, err := s.submitter.Broadcast(ctx, tx)
	s.metrics.ObserveResolution(err, started)
	if err != nil {
		return nil, err
	}

	if err := s.store.MarkResolved(trackingID); err != nil {
		s.logger.Error("flag resolved failed", zap.String("trackingId", trackingID), zap.Error(err))
	}
	s.logger.Info("grievance resolution broadcast",
		zap.String("trackingId", trackingID),
		zap.String("txHash", txHash.Hex()),
	)

	return &ResolutionResult{
		TxHash:       txHash.Hex(),
		ExplorerLink: chain.ExplorerTxLink(s.explorerBase, txHash.Hex()),
	}, nil
}

// Package model defines domain models for the grievance pipeline.
package model

import (
	"strings"

	"github.com/google/uuid"
)

// Priority describes how urgently a grievance should be handled.
type Priority string

const (
	// PriorityHigh marks grievances that need attention within days.
	PriorityHigh Priority = "high"
	// PriorityMedium marks grievances on the default resolution track.
	PriorityMedium Priority = "medium"
	// PriorityLow marks cosmetic or non-urgent grievances.
	PriorityLow Priority = "low"
)

// BlockchainStatus describes the on-chain anchoring outcome of a record.
type BlockchainStatus string

const (
	// BlockchainPending means the chain submission has not resolved yet.
	BlockchainPending BlockchainStatus = "pending"
	// BlockchainSuccess means the submission transaction was mined.
	BlockchainSuccess BlockchainStatus = "success"
	// BlockchainFailed means the submission failed or timed out.
	BlockchainFailed BlockchainStatus = "failed"
)

// StatusSubmitted is the application-level lifecycle marker set at creation.
const StatusSubmitted = "submitted"

// CategoryUnclassified is used when classification produced no usable label.
const CategoryUnclassified = "unclassified"

// GrievanceRecord is the central entity of the pipeline. It is created before
// any chain call and mutated in place once the submission resolves.
type GrievanceRecord struct {
	TrackingID       string           `json:"trackingId"`
	Title            string           `json:"title"`
	Description      string           `json:"description"`
	Location         string           `json:"location"`
	Category         string           `json:"category"`
	PriorityLevel    Priority         `json:"priorityLevel"`
	EstimatedDays    int              `json:"estimatedDays"`
	Confidence       float64          `json:"confidence"`
	AIJustification  string           `json:"aiJustification"`
	MediaCount       int              `json:"mediaCount"`
	FundAmount       int64            `json:"fundAmount"`
	Currency         string           `json:"currency"`
	Status           string           `json:"status"`
	BlockchainStatus BlockchainStatus `json:"blockchainStatus"`
	TxHash           string           `json:"tx_hash,omitempty"`
	BlockchainError  string           `json:"blockchainError,omitempty"`
	Submitter        string           `json:"submitter"`
	Resolved         bool             `json:"resolved"`
	CreatedAt        int64            `json:"createdAt"`
	UpdatedAt        int64            `json:"updatedAt"`
}

// NewTrackingID returns a fresh tracking identifier of the form GRV-XXXXXXXX
// where X is an uppercase hex digit.
func NewTrackingID() string {
	hex := strings.ReplaceAll(uuid.NewString(), "-", "")
	return "GRV-" + strings.ToUpper(hex[:8])
}

// LabelScore is a single entry of the raw classifier output.
type LabelScore struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// CategoryResult is the outcome of classifying a single image. A failed
// classification is expressed through fallback values and Err, never through
// a Go error.
type CategoryResult struct {
	Category      string
	PriorityLevel Priority
	EstimatedDays int
	Confidence    float64
	AllResults    []LabelScore
	Err           string
}

// Degraded reports whether the result carries fallback values instead of a
// real classification.
func (r CategoryResult) Degraded() bool {
	return r.Err != ""
}

// BlockchainResult is the outcome of one chain submission attempt.
type BlockchainResult struct {
	Success bool   `json:"success"`
	TxHash  string `json:"tx_hash,omitempty"`
	Error   string `json:"error,omitempty"`
}

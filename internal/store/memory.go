// Package store holds grievance records for the lifetime of the process.
package store

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rizzabh6717/zentigrity-supernova/internal/model"
)

var (
	// ErrDuplicateTrackingID is returned when appending an already-known record.
	ErrDuplicateTrackingID = errors.New("tracking id already exists")
	// ErrNotFound is returned for lookups of unknown tracking IDs.
	ErrNotFound = errors.New("grievance not found")
)

// Memory is an insertion-ordered in-memory grievance table keyed by tracking
// ID. It is the single source of truth for submission status. Records are
// never deleted. Safe for concurrent use.
type Memory struct {
	mu      sync.RWMutex
	records map[string]*model.GrievanceRecord
	order   []string
}

// NewMemory constructs an empty store.
func NewMemory() *Memory {
	return &Memory{
		records: make(map[string]*model.GrievanceRecord),
	}
}

// Append inserts a new record. The tracking ID must be unique.
func (s *Memory) Append(rec *model.GrievanceRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.records[rec.TrackingID]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateTrackingID, rec.TrackingID)
	}

	clone := *rec
	s.records[rec.TrackingID] = &clone
	s.order = append(s.order, rec.TrackingID)
	return nil
}

// Get returns a copy of the record for a tracking ID.
func (s *Memory) Get(trackingID string) (model.GrievanceRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.records[trackingID]
	if !ok {
		return model.GrievanceRecord{}, false
	}
	return *rec, true
}

// ListAll returns copies of all records in insertion order.
func (s *Memory) ListAll() []model.GrievanceRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.GrievanceRecord, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, *s.records[id])
	}
	return out
}

// UpdateStatus finalizes the blockchain outcome of a pending record. A record
// transitions out of pending exactly once; further updates are rejected.
func (s *Memory) UpdateStatus(trackingID string, status model.BlockchainStatus, txHash, errMsg string) error {
	if status != model.BlockchainSuccess && status != model.BlockchainFailed {
		return fmt.Errorf("invalid target blockchain status %q", status)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.records[trackingID]
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, trackingID)
	}
	if rec.BlockchainStatus != model.BlockchainPending {
		return fmt.Errorf("record %s already finalized as %s", trackingID, rec.BlockchainStatus)
	}

	rec.BlockchainStatus = status
	rec.TxHash = txHash
	rec.BlockchainError = errMsg
	rec.UpdatedAt = time.Now().Unix()
	return nil
}

// MarkResolved flags a record as resolved on-chain.
func (s *Memory) MarkResolved(trackingID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.records[trackingID]
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, trackingID)
	}

	rec.Resolved = true
	rec.UpdatedAt = time.Now().Unix()
	return nil
}

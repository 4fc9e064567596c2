package chain

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"

	"github.com/rizzabh6717/zentigrity-supernova/internal/model"
	"github.com/rizzabh6717/zentigrity-supernova/pkg/safe"
)

// grievanceRegistryABI is the canonical registry interface: the structured
// 11-field submitGrievance entry point plus markResolved.
const grievanceRegistryABI = `[
  {
    "inputs": [
      {"internalType": "string", "name": "_title", "type": "string"},
      {"internalType": "string", "name": "_description", "type": "string"},
      {"internalType": "string", "name": "_category", "type": "string"},
      {"internalType": "string", "name": "_location", "type": "string"},
      {"internalType": "uint256", "name": "_mediaCount", "type": "uint256"},
      {"internalType": "string", "name": "_priorityLevel", "type": "string"},
      {"internalType": "string", "name": "_trackingId", "type": "string"},
      {"internalType": "uint256", "name": "_estimatedDays", "type": "uint256"},
      {"internalType": "uint256", "name": "_fundAmount", "type": "uint256"},
      {"internalType": "string", "name": "_currency", "type": "string"},
      {"internalType": "string", "name": "_aiJustification", "type": "string"}
    ],
    "name": "submitGrievance",
    "outputs": [],
    "stateMutability": "nonpayable",
    "type": "function"
  },
  {
    "inputs": [{"internalType": "string", "name": "_trackingId", "type": "string"}],
    "name": "markResolved",
    "outputs": [],
    "stateMutability": "nonpayable",
    "type": "function"
  }
]`

// Registry packs calldata for the grievance registry contract.
type Registry struct {
	address common.Address
	abi     abi.ABI
}

// NewRegistry parses the registry ABI and binds it to the contract address.
func NewRegistry(address common.Address) (*Registry, error) {
	parsed, err := abi.JSON(strings.NewReader(grievanceRegistryABI))
	if err != nil {
		return nil, fmt.Errorf("parse registry abi: %w", err)
	}
	return &Registry{address: address, abi: parsed}, nil
}

// Address returns the bound contract address.
func (r *Registry) Address() common.Address {
	return r.address
}

// PackSubmitGrievance encodes the submitGrievance call for a record.
func (r *Registry) PackSubmitGrievance(rec *model.GrievanceRecord) ([]byte, error) {
	mediaCount, err := safe.BigUint(rec.MediaCount)
	if err != nil {
		return nil, fmt.Errorf("media count: %w", err)
	}
	estimatedDays, err := safe.BigUint(rec.EstimatedDays)
	if err != nil {
		return nil, fmt.Errorf("estimated days: %w", err)
	}
	fundAmount, err := safe.BigUint(rec.FundAmount)
	if err != nil {
		return nil, fmt.Errorf("fund amount: %w", err)
	}

	data, err := r.abi.Pack("submitGrievance",
		rec.Title,
		rec.Description,
		rec.Category,
		rec.Location,
		mediaCount,
		string(rec.PriorityLevel),
		rec.TrackingID,
		estimatedDays,
		fundAmount,
		rec.Currency,
		rec.AIJustification,
	)
	if err != nil {
		return nil, fmt.Errorf("pack submitGrievance: %w", err)
	}
	return data, nil
}

// PackMarkResolved encodes the markResolved call for a tracking ID.
func (r *Registry) PackMarkResolved(trackingID string) ([]byte, error) {
	data, err := r.abi.Pack("markResolved", trackingID)
	if err != nil {
		return nil, fmt.Errorf("pack markResolved: %w", err)
	}
	return data, nil
}

// ExplorerTxLink renders a block explorer link for a transaction hash.
func ExplorerTxLink(baseURL, txHash string) string {
	return strings.TrimSuffix(baseURL, "/") + "/" + txHash
}

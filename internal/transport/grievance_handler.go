// Package transport exposes the HTTP API of the grievance pipeline.
package transport

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/rizzabh6717/zentigrity-supernova/internal/model"
	"github.com/rizzabh6717/zentigrity-supernova/internal/service"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

// maxImageBytes caps the multipart form held in memory per request.
const maxImageBytes = 10 << 20

// SubmissionAPI is the slice of the submission service the HTTP layer uses.
type SubmissionAPI interface {
	SubmitGrievance(ctx context.Context, in service.SubmitGrievanceInput) (*service.SubmitGrievanceResponse, error)
	GetGrievance(trackingID string) (model.GrievanceRecord, error)
	ListGrievances() []model.GrievanceRecord
	MarkResolved(ctx context.Context, trackingID string) (*service.ResolutionResult, error)
}

// GrievanceHandler serves the citizen-facing grievance routes.
type GrievanceHandler struct {
	svc    SubmissionAPI
	logger *zap.Logger
}

// NewGrievanceHandler returns a GrievanceHandler instance.
func NewGrievanceHandler(svc SubmissionAPI, logger *zap.Logger) *GrievanceHandler {
	return &GrievanceHandler{
		svc:    svc,
		logger: logger.Named("http"),
	}
}

// Routes mounts all grievance endpoints on a fresh router.
func (h *GrievanceHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/health", h.Health)
	r.Post("/submit_grievance", h.SubmitGrievance)
	r.Get("/get_grievance/{trackingId}", h.GetGrievance)
	r.Get("/get_all_grievances", h.GetAllGrievances)
	r.Post("/mark_resolved/{trackingId}", h.MarkResolved)
	return r
}

// Health reports server health.
func (h *GrievanceHandler) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"status": "healthy"})
}

// SubmitGrievance accepts a multipart form with title, description, location
// and a required image file, and runs the full submission pipeline.
func (h *GrievanceHandler) SubmitGrievance(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxImageBytes); err != nil {
		writeError(w, http.StatusBadRequest, "No image provided")
		return
	}

	in := service.SubmitGrievanceInput{
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
		Location:    r.FormValue("location"),
	}

	file, _, err := r.FormFile("image")
	if err == nil {
		defer file.Close()
		in.Image, err = io.ReadAll(file)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
	}

	resp, err := h.svc.SubmitGrievance(r.Context(), in)
	if err != nil {
		if errors.Is(err, service.ErrNoImage) {
			writeError(w, http.StatusBadRequest, "No image provided")
			return
		}
		h.logger.Error("submit grievance failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, submitResponse{
		Success:    true,
		TrackingID: resp.TrackingID,
		Grievance:  resp.Grievance,
		Blockchain: resp.Blockchain,
	})
}

// GetGrievance returns a single record by tracking ID.
func (h *GrievanceHandler) GetGrievance(w http.ResponseWriter, r *http.Request) {
	rec, err := h.svc.GetGrievance(chi.URLParam(r, "trackingId"))
	if err != nil {
		writeError(w, http.StatusNotFound, "Grievance not found")
		return
	}
	writeJSON(w, http.StatusOK, dataResponse{Success: true, Data: rec})
}

// GetAllGrievances returns every record in submission order.
func (h *GrievanceHandler) GetAllGrievances(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, dataResponse{Success: true, Data: h.svc.ListGrievances()})
}

// MarkResolved broadcasts a resolution transaction for an existing grievance.
func (h *GrievanceHandler) MarkResolved(w http.ResponseWriter, r *http.Request) {
	trackingID := chi.URLParam(r, "trackingId")

	res, err := h.svc.MarkResolved(r.Context(), trackingID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Grievance not found")
			return
		}
		h.logger.Error("mark resolved failed", zap.String("trackingId", trackingID), zap.Error(err))
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, resolveResponse{
		Success:         true,
		TransactionHash: res.TxHash,
		ExplorerLink:    res.ExplorerLink,
	})
}

type submitResponse struct {
	Success    bool                   `json:"success"`
	TrackingID string                 `json:"trackingId"`
	Grievance  model.GrievanceRecord  `json:"grievance"`
	Blockchain model.BlockchainResult `json:"blockchain"`
}

type dataResponse struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

type resolveResponse struct {
	Success         bool   `json:"success"`
	TransactionHash string `json:"transaction_hash"`
	ExplorerLink    string `json:"explorer_link"`
}

type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Success: false, Error: msg})
}

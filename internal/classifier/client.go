// Package classifier wraps the remote zero-shot image classification API and
// maps its raw scores to grievance categories and priorities.
package classifier

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/ratelimit"
	"go.uber.org/zap"

	"github.com/rizzabh6717/zentigrity-supernova/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

// Metrics records metrics for classifier API calls.
type Metrics interface {
	Observe(operation string, err error, started time.Time)
	ObserveFallback()
}

const (
	// DefaultAPIURL is the hosted CLIP zero-shot inference endpoint.
	DefaultAPIURL = "https://api-inference.huggingface.co/models/openai/clip-vit-base-patch32"

	defaultHTTPTimeout = 30 * time.Second

	errServiceUnavailable = "AI-based media analysis is temporarily unavailable. " +
		"Your report has been received, but the AI justification will be added once the service is back online."
	errAnalysisFailed = "CLIP analysis failed"
)

// Client calls the image classification API. Unavailability degrades to a
// fallback result so that grievance intake is never blocked by the model.
type Client struct {
	httpClient *http.Client
	apiURL     string
	apiKey     string
	limiter    ratelimit.Limiter
	metrics    Metrics
	logger     *zap.Logger
}

// NewClient constructs a classifier client. rps bounds the request rate
// against the hosted inference API.
func NewClient(apiURL, apiKey string, rps int, metrics Metrics, logger *zap.Logger) *Client {
	if apiURL == "" {
		apiURL = DefaultAPIURL
	}
	if rps <= 0 {
		rps = 1
	}
	return &Client{
		httpClient: &http.Client{Timeout: defaultHTTPTimeout},
		apiURL:     apiURL,
		apiKey:     apiKey,
		limiter:    ratelimit.New(rps),
		metrics:    metrics,
		logger:     logger.Named("classifier"),
	}
}

type classifyRequest struct {
	Image      string             `json:"image"`
	Parameters classifyParameters `json:"parameters"`
}

type classifyParameters struct {
	CandidateLabels []string `json:"candidate_labels"`
}

// Classify runs one zero-shot classification over the image and maps the
// winning label to category, priority and resolution estimate. It never
// returns an error: every failure mode yields the fallback result with Err
// set. One attempt, no retries.
func (c *Client) Classify(ctx context.Context, image []byte) model.CategoryResult {
	started := time.Now()
	res, err := c.classify(ctx, image)
	c.metrics.Observe("classify", err, started)
	if err != nil {
		c.metrics.ObserveFallback()
		c.logger.Warn("classification degraded to fallback", zap.Error(err))
		return fallbackResult(err.Error())
	}
	c.logger.Debug("image classified",
		zap.String("category", res.Category),
		zap.Float64("confidence", res.Confidence),
	)
	return res
}

func (c *Client) classify(ctx context.Context, image []byte) (model.CategoryResult, error) {
	payload, err := json.Marshal(classifyRequest{
		Image:      base64.StdEncoding.EncodeToString(image),
		Parameters: classifyParameters{CandidateLabels: candidateLabels},
	})
	if err != nil {
		return model.CategoryResult{}, fmt.Errorf("encode request: %v", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewReader(payload))
	if err != nil {
		return model.CategoryResult{}, fmt.Errorf("build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	c.limiter.Take()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return model.CategoryResult{}, errors.New(errServiceUnavailable)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return model.CategoryResult{}, errors.New(errServiceUnavailable)
	}

	if resp.StatusCode == http.StatusServiceUnavailable {
		// Model still loading on the inference host.
		return model.CategoryResult{}, errors.New(errServiceUnavailable)
	}
	if resp.StatusCode != http.StatusOK {
		return model.CategoryResult{}, fmt.Errorf("CLIP API error: %d - %s", resp.StatusCode, string(body))
	}

	var results []model.LabelScore
	if err := json.Unmarshal(body, &results); err != nil || len(results) == 0 {
		return model.CategoryResult{}, errors.New(errAnalysisFailed)
	}

	return scoreResult(results), nil
}

// scoreResult picks the highest-scoring label, first occurrence winning ties.
func scoreResult(results []model.LabelScore) model.CategoryResult {
	category := model.CategoryUnclassified
	highest := 0.0
	for _, item := range results {
		if item.Score > highest {
			highest = item.Score
			category = item.Label
		}
	}

	priority, days := priorityFor(category)
	return model.CategoryResult{
		Category:      category,
		PriorityLevel: priority,
		EstimatedDays: days,
		Confidence:    highest,
		AllResults:    results,
	}
}

func fallbackResult(message string) model.CategoryResult {
	return model.CategoryResult{
		Category:      model.CategoryUnclassified,
		PriorityLevel: model.PriorityMedium,
		EstimatedDays: 7,
		Confidence:    0,
		AllResults:    []model.LabelScore{},
		Err:           message,
	}
}

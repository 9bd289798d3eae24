package drafting

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

// ProjectBrief is the metadata sent to the drafting API. The suggestions that
// come back are opaque text; nothing here or in the ledger validates them.
type ProjectBrief struct {
	Name        string `json:"name"`
	FiscalYear  string `json:"fiscal_year"`
	Department  string `json:"department"`
	Activity    string `json:"activity,omitempty"`
	TotalBudget int64  `json:"total_budget"`
}

// Suggestion groups drafted text for the narrative project fields.
type Suggestion struct {
	Rationale        string   `json:"rationale"`
	Objectives       []string `json:"objectives"`
	GoalQuantitative string   `json:"goal_quantitative"`
	GoalQualitative  string   `json:"goal_qualitative"`
	Procedures       string   `json:"procedures"`
	Evaluation       string   `json:"evaluation"`
	ExpectedOutcomes string   `json:"expected_outcomes"`
}

type Config struct {
	APIURL  string
	APIKey  string
	Model   string
	Timeout time.Duration
}

// Client calls the external narrative-drafting service.
type Client struct {
	apiURL     string
	apiKey     string
	model      string
	httpClient *http.Client
	logger     *slog.Logger
}

func NewClient(config Config, logger *slog.Logger) *Client {
	timeout := config.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &Client{
		apiURL:     config.APIURL,
		apiKey:     config.APIKey,
		model:      config.Model,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

type draftRequest struct {
	Model   string       `json:"model"`
	Project ProjectBrief `json:"project"`
}

type draftResponse struct {
	Suggestion Suggestion `json:"suggestion"`
}

// DraftNarrative sends the project brief and returns the drafted narrative
// fields.
func (c *Client) DraftNarrative(ctx context.Context, brief ProjectBrief) (*Suggestion, error) {
	payload, err := json.Marshal(draftRequest{Model: c.model, Project: brief})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal draft request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL+"/v1/draft", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build draft request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	c.logger.Info("requesting narrative draft",
		"project_name", brief.Name,
		"department", brief.Department,
		"model", c.model)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("drafting API call failed", "error", err)
		return nil, fmt.Errorf("drafting API call failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Error("drafting API returned non-OK status", "status", resp.StatusCode)
		return nil, fmt.Errorf("drafting API returned status %d", resp.StatusCode)
	}

	var body draftResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode draft response: %w", err)
	}

	return &body.Suggestion, nil
}

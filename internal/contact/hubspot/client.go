package hubspot

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/praisepoint/site-api/internal/contact/model"
	"github.com/praisepoint/site-api/internal/system/config"
)

// Client submits validated contact forms to the HubSpot form-ingestion API
type Client struct {
	httpClient *http.Client
	config     *config.HubSpotConfig
	logger     *logrus.Logger
}

// field is one name/value pair of a form submission
type field struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// submitRequest is the forms-API payload
type submitRequest struct {
	Fields []field `json:"fields"`
}

// NewClient creates a new HubSpot forms client
func NewClient(cfg *config.HubSpotConfig, logger *logrus.Logger) *Client {
	timeout := 10 * time.Second
	if cfg.Timeout > 0 {
		timeout = cfg.Timeout
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		config: cfg,
		logger: logger,
	}
}

// IsConfigured reports whether the CRM endpoint is usable
func (c *Client) IsConfigured() bool {
	return c.config.IsConfigured()
}

// Deliver POSTs a validated submission to the configured form endpoint.
// When the portal/form IDs are absent the call is a silent no-op.
func (c *Client) Deliver(ctx context.Context, submission *model.ContactSubmission) error {
	if !c.config.IsConfigured() {
		c.logger.Debug("HubSpot form ingestion not configured, skipping delivery")
		return nil
	}

	fields := []field{
		{Name: "firstname", Value: submission.Name},
		{Name: "company", Value: submission.Company},
		{Name: "email", Value: submission.Email},
		{Name: "numemployees", Value: submission.Employees},
		{Name: "message", Value: submission.Message},
	}
	for name, value := range submission.UTMFields() {
		fields = append(fields, field{Name: name, Value: value})
	}

	jsonData, err := json.Marshal(submitRequest{Fields: fields})
	if err != nil {
		return fmt.Errorf("failed to marshal form submission: %w", err)
	}

	url := c.config.SubmitURL()
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	startTime := time.Now()
	resp, err := c.httpClient.Do(req)
	duration := time.Since(startTime)
	if err != nil {
		return fmt.Errorf("form submission request failed: %w", err)
	}
	defer resp.Body.Close()

	c.logger.WithFields(logrus.Fields{
		"url":      url,
		"status":   resp.StatusCode,
		"duration": duration.String(),
	}).Debug("HubSpot form submission completed")

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return fmt.Errorf("form submission rejected with status %d: %s", resp.StatusCode, string(body))
	}

	return nil
}

package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/LGuichet/CareerForge/internal/experience"
)

const defaultTimeout = 30 * time.Second

// Client is the HTTP implementation of Gateway against the CareerForge REST
// API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a gateway client for the given API base URL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
	}
}

// listResponse mirrors the list endpoint envelope.
type listResponse struct {
	Experiences []experience.RawExperience `json:"experiences"`
	Count       int                        `json:"count"`
}

// experiencePayload is the request body for create and update calls.
type experiencePayload struct {
	JobTitle    string `json:"jobTitle"`
	CompanyName string `json:"companyName"`
	Description string `json:"description"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
}

func payloadFor(in experience.ExperienceInput) experiencePayload {
	return experiencePayload{
		JobTitle:    in.JobTitle,
		CompanyName: in.CompanyName,
		Description: in.Description,
		StartDate:   experience.FormatDate(in.StartDate),
		EndDate:     experience.FormatDate(in.EndDate),
	}
}

// List fetches all stored experiences.
func (c *Client) List(ctx context.Context) ([]experience.RawExperience, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/experiences", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build list request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &experience.TransportError{Message: "list experiences", Cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, transportStatusError("list experiences", resp)
	}

	var body listResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, &experience.MalformedDataError{Field: "experiences", Value: "response body", Cause: err}
	}
	return body.Experiences, nil
}

// Create stores a new experience. The input is validated locally first;
// invalid input never reaches the wire.
func (c *Client) Create(ctx context.Context, in experience.ExperienceInput) (*experience.RawExperience, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	return c.send(ctx, http.MethodPost, "/experiences", "create experience", "", in)
}

// Update replaces the experience with the given identifier.
func (c *Client) Update(ctx context.Context, id string, in experience.ExperienceInput) (*experience.RawExperience, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	return c.send(ctx, http.MethodPut, "/experiences/"+id, "update experience", id, in)
}

func (c *Client) send(ctx context.Context, method, path, op, id string, in experience.ExperienceInput) (*experience.RawExperience, error) {
	body, err := json.Marshal(payloadFor(in))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s request: %w", op, err)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build %s request: %w", op, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &experience.TransportError{Message: op, Cause: err}
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
	case http.StatusNotFound:
		return nil, &experience.NotFoundError{ID: id}
	default:
		return nil, transportStatusError(op, resp)
	}

	var raw experience.RawExperience
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, &experience.MalformedDataError{Field: "experience", Value: "response body", Cause: err}
	}
	return &raw, nil
}

// transportStatusError builds a TransportError carrying the response status
// and a snippet of the body for diagnostics.
func transportStatusError(op string, resp *http.Response) error {
	snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	return &experience.TransportError{
		Message: fmt.Sprintf("%s: status %d: %s", op, resp.StatusCode, strings.TrimSpace(string(snippet))),
	}
}

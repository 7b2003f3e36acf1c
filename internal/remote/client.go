package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"inventory_viewer/internal/grid"

	"github.com/rs/zerolog/log"
)

// Source is anything that can produce a fresh grid snapshot for an
// (area, kind) pair.
type Source interface {
	Fetch(ctx context.Context, area string, kind grid.Kind) (grid.Grid, error)
}

// Client talks to the spreadsheet web endpoint. One GET with
// action=getData per fetch; responses are {success, data?, error?}.
type Client struct {
	baseURL string
	client  *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type apiResponse struct {
	Success bool       `json:"success"`
	Data    [][]string `json:"data,omitempty"`
	Error   string     `json:"error,omitempty"`
}

// Fetch retrieves the raw grid for one (area, kind) pair. Failures are
// classified as TransportError (network, non-2xx) or FormatError (payload
// violates the contract).
func (c *Client) Fetch(ctx context.Context, area string, kind grid.Kind) (grid.Grid, error) {
	params := url.Values{}
	params.Set("action", "getData")
	params.Set("area", area)
	params.Set("type", string(kind))
	reqURL := c.baseURL + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return grid.Grid{}, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return grid.Grid{}, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return grid.Grid{}, &TransportError{
			Status: resp.StatusCode,
			Err:    fmt.Errorf("endpoint returned %q", strings.TrimSpace(string(body))),
		}
	}

	var apiResp apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return grid.Grid{}, &FormatError{Reason: "undecodable response body", Err: err}
	}

	if !apiResp.Success {
		reason := apiResp.Error
		if reason == "" {
			reason = "endpoint reported failure without a message"
		}
		return grid.Grid{}, &FormatError{Reason: reason}
	}
	if apiResp.Data == nil {
		return grid.Grid{}, &FormatError{Reason: "response missing data"}
	}

	log.Debug().
		Str("area", area).
		Str("type", string(kind)).
		Int("rows", len(apiResp.Data)).
		Msg("Fetched grid from endpoint")

	return grid.New(kind, apiResp.Data), nil
}

// SubmitEntry posts one new row through the endpoint's addData action. The
// endpoint appends it server side; this client never mutates grids itself.
func (c *Client) SubmitEntry(ctx context.Context, area string, kind grid.Kind, values []string) error {
	encoded, err := json.Marshal(values)
	if err != nil {
		return fmt.Errorf("failed to encode row values: %w", err)
	}

	form := url.Values{}
	form.Set("action", "addData")
	form.Set("area", area)
	form.Set("type", string(kind))
	form.Set("row", string(encoded))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.client.Do(req)
	if err != nil {
		return &TransportError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return &TransportError{
			Status: resp.StatusCode,
			Err:    fmt.Errorf("endpoint returned %q", strings.TrimSpace(string(body))),
		}
	}

	var apiResp apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return &FormatError{Reason: "undecodable response body", Err: err}
	}
	if !apiResp.Success {
		reason := apiResp.Error
		if reason == "" {
			reason = "endpoint reported failure without a message"
		}
		return &FormatError{Reason: reason}
	}

	log.Info().
		Str("area", area).
		Str("type", string(kind)).
		Int("cells", len(values)).
		Msg("Submitted new entry")

	return nil
}

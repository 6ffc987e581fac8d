package storeclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// HTTPStore implements the Store interface against the Billed HTTP API
type HTTPStore struct {
	baseURL string
	client  *http.Client
}

// New creates a new HTTPStore instance
func New(baseURL string) *HTTPStore {
	return NewWithClient(baseURL, &http.Client{
		Timeout: 30 * time.Second,
	})
}

// NewWithClient creates a new HTTPStore with a custom http.Client for testing
func NewWithClient(baseURL string, client *http.Client) *HTTPStore {
	return &HTTPStore{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client:  client,
	}
}

// Bills returns the bill operations client
func (s *HTTPStore) Bills() BillsClient {
	return s
}

// List returns the full bill collection
func (s *HTTPStore) List(ctx context.Context) ([]RawBill, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/bills", nil)
	if err != nil {
		return nil, fmt.Errorf("building list request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("requesting bill list: %w", err)
	}
	defer resp.Body.Close()

	if err := responseError(resp); err != nil {
		return nil, err
	}

	var bills []RawBill
	if err := json.NewDecoder(resp.Body).Decode(&bills); err != nil {
		return nil, fmt.Errorf("decoding bill list: %w", err)
	}
	return bills, nil
}

// Create stages a receipt upload. The request body is a caller-prepared
// multipart payload; its content type is forwarded untouched so the
// boundary the caller wrote into it stays valid.
func (s *HTTPStore) Create(ctx context.Context, cr CreateRequest) (CreateResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/bills", cr.Body)
	if err != nil {
		return CreateResult{}, fmt.Errorf("building create request: %w", err)
	}
	req.Header.Set("Content-Type", cr.ContentType)

	resp, err := s.client.Do(req)
	if err != nil {
		return CreateResult{}, fmt.Errorf("staging upload: %w", err)
	}
	defer resp.Body.Close()

	if err := responseError(resp); err != nil {
		return CreateResult{}, err
	}

	var result CreateResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return CreateResult{}, fmt.Errorf("decoding create response: %w", err)
	}
	return result, nil
}

// Update persists a full bill record addressed by the staged upload's key
func (s *HTTPStore) Update(ctx context.Context, selector string, payload []byte) (RawBill, error) {
	url := s.baseURL + "/bills/" + selector
	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, url, bytes.NewReader(payload))
	if err != nil {
		return RawBill{}, fmt.Errorf("building update request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return RawBill{}, fmt.Errorf("updating bill: %w", err)
	}
	defer resp.Body.Close()

	if err := responseError(resp); err != nil {
		return RawBill{}, err
	}

	var bill RawBill
	if err := json.NewDecoder(resp.Body).Decode(&bill); err != nil {
		return RawBill{}, fmt.Errorf("decoding update response: %w", err)
	}
	return bill, nil
}

// responseError maps a non-2xx response to an error. The message carries the
// status code in the store's French wording; the list controller classifies
// failures by scanning for "404" or "500" in this text.
func responseError(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	return fmt.Errorf("Erreur %d", resp.StatusCode)
}

package storeclient

import (
	"context"
	"io"
)

// RawBill is a bill record as the remote store returns it
type RawBill struct {
	ID         string `json:"id"`
	Email      string `json:"email"`
	Type       string `json:"type"`
	Name       string `json:"name"`
	Amount     *int   `json:"amount,omitempty"`
	Date       string `json:"date"`
	VAT        string `json:"vat"`
	Pct        int    `json:"pct"`
	Commentary string `json:"commentary"`
	FileURL    string `json:"fileUrl"`
	FileName   string `json:"fileName"`
	Status     string `json:"status"`
}

// CreateResult is the remote store's answer to a staged receipt upload
type CreateResult struct {
	FileURL string `json:"fileUrl"`
	Key     string `json:"key"`
}

// CreateRequest carries a prepared multipart payload. ContentType must be the
// multipart writer's own content type so the boundary stays caller-managed.
type CreateRequest struct {
	Body        io.Reader
	ContentType string
}

// BillsClient defines the remote store's bill operations
type BillsClient interface {
	// List returns the full bill collection in a single round trip
	List(ctx context.Context) ([]RawBill, error)

	// Create stages a receipt upload and returns its key and retrieval URL
	Create(ctx context.Context, req CreateRequest) (CreateResult, error)

	// Update persists a full bill record addressed by the staged upload's key
	Update(ctx context.Context, selector string, payload []byte) (RawBill, error)
}

// Store is the remote persistence service abstraction
type Store interface {
	Bills() BillsClient
}

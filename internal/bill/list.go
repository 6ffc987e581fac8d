package bill

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/billed-app/billed/internal/storeclient"
)

// ErrStoreNotConfigured signals that no remote store handle was wired in.
// It is a caller-visible state, not a failure: the list view renders empty.
var ErrStoreNotConfigured = errors.New("remote store not configured")

// ErrorKind classifies a list fetch failure for the presentation layer
type ErrorKind int

const (
	ErrorKindGeneric ErrorKind = iota
	ErrorKindNotFound
	ErrorKindServer
)

// Classify buckets a fetch failure by its message text, the only error
// signal the remote store contract offers
func Classify(err error) ErrorKind {
	msg := err.Error()
	switch {
	case strings.Contains(msg, "404"):
		return ErrorKindNotFound
	case strings.Contains(msg, "500"):
		return ErrorKindServer
	default:
		return ErrorKindGeneric
	}
}

// ListController owns the fetch-format-sort pipeline for the bill list view
type ListController struct {
	store storeclient.Store
}

// NewListController creates a new ListController. The store may be nil when
// no remote store is configured.
func NewListController(store storeclient.Store) *ListController {
	return &ListController{store: store}
}

// GetBills fetches the full bill collection and prepares it for display:
// sorted latest-first by raw date, with date and status formatted per record.
// A record whose date cannot be parsed keeps its raw date rather than
// failing the whole batch. Fetch failures are returned unwrapped so the
// presentation layer can render the store's message verbatim.
func (c *ListController) GetBills(ctx context.Context) ([]DisplayBill, error) {
	if c.store == nil {
		return nil, ErrStoreNotConfigured
	}

	raw, err := c.store.Bills().List(ctx)
	if err != nil {
		return nil, err
	}

	// Lexical descending order matches reverse-chronological order for the
	// fixed YYYY-MM-DD shape; the store does not pre-sort.
	sort.SliceStable(raw, func(i, j int) bool {
		return raw[i].Date > raw[j].Date
	})

	bills := make([]DisplayBill, 0, len(raw))
	for _, r := range raw {
		d := DisplayBill(r)
		if _, perr := time.Parse(dateLayout, r.Date); perr == nil {
			d.Date = FormatDate(r.Date)
		} else {
			slog.Warn("keeping unformatted bill date", "id", r.ID, "date", r.Date)
		}
		d.Status = FormatStatus(r.Status)
		bills = append(bills, d)
	}
	return bills, nil
}

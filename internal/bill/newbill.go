package bill

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"mime/multipart"
	"strconv"
	"strings"
	"sync"

	"github.com/billed-app/billed/internal/storeclient"
)

// StageResult is the outcome of the receipt staging phase
type StageResult int

const (
	// StageAccepted means the file passed validation; whether the upload
	// itself succeeded is reflected by Staged, not by this result
	StageAccepted StageResult = iota

	// StageNoFile means nothing was selected; aborted silently
	StageNoFile

	// StageRejected means the extension was refused; the caller raises the
	// file-error flag and clears the input
	StageRejected
)

// Form holds the raw field values of the new bill form
type Form struct {
	Type       string
	Name       string
	Amount     string
	Date       string
	VAT        string
	Pct        string
	Commentary string
}

// CreateController owns the two-phase new bill flow: stage a receipt upload,
// then assemble and persist the full record. The staged-upload fields move
// from empty to staged only on a successful upload. The controller is safe
// for concurrent use; the HTTP server shares one instance across requests.
type CreateController struct {
	store   storeclient.Store
	session Session

	mu       sync.Mutex
	stagedID string
	fileURL  string
	fileName string
}

// NewCreateController creates a new CreateController. The store may be nil
// when no remote store is configured; persistence then becomes a no-op.
func NewCreateController(store storeclient.Store, session Session) *CreateController {
	return &CreateController{
		store:   store,
		session: session,
	}
}

// Staged reports whether a receipt upload has completed
func (c *CreateController) Staged() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stagedID != ""
}

// FileName returns the staged receipt's display name, empty while un-staged
func (c *CreateController) FileName() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fileName
}

// Reset returns the controller to the empty state, ready for the next bill
func (c *CreateController) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stagedID = ""
	c.fileURL = ""
	c.fileName = ""
}

// StageReceipt runs phase one: validate the selected file and stage its
// upload at the remote store. fileValue is the file input's submitted value,
// possibly a Windows-style path. Upload failures are logged and leave the
// controller empty; phase two then treats the bill as having no receipt.
func (c *CreateController) StageReceipt(ctx context.Context, fileValue string, data []byte) StageResult {
	if fileValue == "" {
		slog.Error("no file selected")
		return StageNoFile
	}

	name := DisplayFileName(fileValue)
	if !ValidReceiptName(name) {
		return StageRejected
	}

	if c.store == nil {
		slog.Warn("remote store not configured, receipt not staged", "file", name)
		return StageAccepted
	}

	email := c.userEmail()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", name)
	if err != nil {
		slog.Error("building upload payload", "error", err)
		return StageAccepted
	}
	if _, err := part.Write(data); err != nil {
		slog.Error("building upload payload", "error", err)
		return StageAccepted
	}
	if err := w.WriteField("email", email); err != nil {
		slog.Error("building upload payload", "error", err)
		return StageAccepted
	}
	if err := w.Close(); err != nil {
		slog.Error("building upload payload", "error", err)
		return StageAccepted
	}

	result, err := c.store.Bills().Create(ctx, storeclient.CreateRequest{
		Body:        &buf,
		ContentType: w.FormDataContentType(),
	})
	if err != nil {
		slog.Error("staging receipt upload", "file", name, "error", err)
		return StageAccepted
	}

	c.mu.Lock()
	c.stagedID = result.Key
	c.fileURL = result.FileURL
	c.fileName = name
	c.mu.Unlock()
	return StageAccepted
}

// Submit runs phase two: assemble the bill from the form's field values and
// ask the remote store to persist it. Persistence failures are logged, never
// surfaced; the caller navigates back to the list view regardless.
func (c *CreateController) Submit(ctx context.Context, form Form) Bill {
	c.mu.Lock()
	stagedID, fileURL, fileName := c.stagedID, c.fileURL, c.fileName
	c.mu.Unlock()

	b := Bill{
		Email:      c.userEmail(),
		Type:       form.Type,
		Name:       form.Name,
		Amount:     parseAmount(form.Amount),
		Date:       form.Date,
		VAT:        form.VAT,
		Pct:        parsePct(form.Pct),
		Commentary: form.Commentary,
		Status:     StatusPending,
	}
	if stagedID != "" {
		b.FileURL = &fileURL
		b.FileName = &fileName
	} else {
		slog.Warn("submitting bill without a staged receipt")
	}

	c.persist(ctx, b, stagedID)
	return b
}

// persist sends the record to the remote store, if one is configured. A bill
// without an owner email is never persisted.
func (c *CreateController) persist(ctx context.Context, b Bill, selector string) {
	if c.store == nil {
		return
	}
	if b.Email == "" {
		slog.Error("refusing to persist bill without owner email")
		return
	}

	payload, err := json.Marshal(b)
	if err != nil {
		slog.Error("marshaling bill", "error", err)
		return
	}
	if _, err := c.store.Bills().Update(ctx, selector, payload); err != nil {
		slog.Error("persisting bill", "error", err)
	}
}

func (c *CreateController) userEmail() string {
	user, err := c.session.User()
	if err != nil {
		slog.Error("reading session user", "error", err)
		return ""
	}
	return user.Email
}

func parseAmount(raw string) *int {
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return nil
	}
	return &v
}

func parsePct(raw string) int {
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 20
	}
	return v
}

package bill

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
)

// billsView is the template data for the bill list page
type billsView struct {
	Email string
	Bills []DisplayBill
	Error string
}

// newBillView is the template data for the new bill form. The file-error
// flag is toggled client-side from the staging verdict, so it has no field
// here.
type newBillView struct {
	Email        string
	ExpenseTypes []string
	FileName     string
}

// handleLoginForm serves the login page
func (s *Server) handleLoginForm(w http.ResponseWriter, r *http.Request) {
	renderPage(w, "login.html", nil)
}

// handleLogin writes the submitted identity into the session and navigates
// to the bill list. Credential verification is out of scope here; the
// session record is all the bill flows need.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}
	user := User{
		Type:  r.PostFormValue("user-type"),
		Email: r.PostFormValue("employee-email-input"),
	}
	if user.Type == "" {
		user.Type = "Employee"
	}
	if err := s.session.SetUser(user); err != nil {
		slog.Error("writing session user", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, PathBills, http.StatusSeeOther)
}

// handleLogout clears the session and navigates to the login page
func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	if err := s.session.Clear(); err != nil {
		slog.Error("clearing session", "error", err)
	}
	http.Redirect(w, r, PathLogin, http.StatusSeeOther)
}

// handleBills renders the bill list view. Fetch failures replace the list
// with an error state carrying the store's message verbatim; an unconfigured
// store renders the empty shell.
func (s *Server) handleBills(w http.ResponseWriter, r *http.Request) {
	view := billsView{Email: s.userEmail()}

	bills, err := s.list.GetBills(r.Context())
	switch {
	case err == nil:
		view.Bills = bills
	case errors.Is(err, ErrStoreNotConfigured):
		// Non-exceptional: nothing to list yet
	default:
		slog.Error("fetching bill list", "kind", Classify(err), "error", err)
		view.Error = err.Error()
	}

	renderPage(w, "bills.html", view)
}

// handleNewBillForm serves the new bill form
func (s *Server) handleNewBillForm(w http.ResponseWriter, r *http.Request) {
	renderPage(w, "newbill.html", newBillView{
		Email:        s.userEmail(),
		ExpenseTypes: ExpenseTypes,
		FileName:     s.create.FileName(),
	})
}

// handleStageReceipt handles phase one of the new bill flow. The page's
// script posts the selected file here and toggles the file-error flag and
// input value from the JSON verdict.
func (s *Server) handleStageReceipt(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		slog.Error("parsing upload form", "error", err)
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Error parsing form"})
		return
	}

	fileValue := r.PostFormValue("file-value")
	var data []byte
	if f, header, err := r.FormFile("file"); err == nil {
		defer f.Close()
		if fileValue == "" {
			fileValue = header.Filename
		}
		data, err = io.ReadAll(f)
		if err != nil {
			slog.Error("reading upload", "error", err)
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Error reading file"})
			return
		}
	}

	switch s.create.StageReceipt(r.Context(), fileValue, data) {
	case StageNoFile:
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "No file selected"})
	case StageRejected:
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"error": "Invalid file type, only jpg, jpeg and png are accepted",
		})
	default:
		writeJSON(w, http.StatusCreated, map[string]string{"fileName": s.create.FileName()})
	}
}

// handleSubmitBill handles phase two: assemble the record, hand it to the
// controller, and navigate back to the list no matter what
func (s *Server) handleSubmitBill(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		slog.Error("parsing bill form", "error", err)
	}

	s.create.Submit(r.Context(), Form{
		Type:       r.PostFormValue("expense-type"),
		Name:       r.PostFormValue("expense-name"),
		Amount:     r.PostFormValue("amount"),
		Date:       r.PostFormValue("datepicker"),
		VAT:        r.PostFormValue("vat"),
		Pct:        r.PostFormValue("pct"),
		Commentary: r.PostFormValue("commentary"),
	})
	s.create.Reset()

	http.Redirect(w, r, PathBills, http.StatusSeeOther)
}

// handleStaticCSS serves the stylesheet
func (s *Server) handleStaticCSS(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/css")
	w.Write(appCSS)
}

// handleStaticJS serves the page script
func (s *Server) handleStaticJS(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/javascript; charset=utf-8")
	w.Write(appJS)
}

func (s *Server) userEmail() string {
	user, err := s.session.User()
	if err != nil {
		return ""
	}
	return user.Email
}

func writeJSON(w http.ResponseWriter, code int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("Error encoding response", "error", err)
	}
}

func renderPage(w http.ResponseWriter, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTemplates.ExecuteTemplate(w, name, data); err != nil {
		slog.Error("rendering page", "template", name, "error", err)
	}
}

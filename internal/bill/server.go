package bill

import (
	"log/slog"
	"net/http"

	"github.com/billed-app/billed/internal/storeclient"
)

// Route paths the handlers navigate between
const (
	PathLogin   = "/login"
	PathBills   = "/bills"
	PathNewBill = "/bills/new"
)

// Server handles HTTP requests for the bill list and new bill views
type Server struct {
	list    *ListController
	create  *CreateController
	session Session
	mux     *http.ServeMux
}

// NewServer creates a new Server with default mux
func NewServer(store storeclient.Store, session Session) *Server {
	return NewServerWithMux(store, session, http.NewServeMux())
}

// NewServerWithMux creates a new Server with a custom mux for testing
func NewServerWithMux(store storeclient.Store, session Session, mux *http.ServeMux) *Server {
	s := &Server{
		list:    NewListController(store),
		create:  NewCreateController(store, session),
		session: session,
		mux:     mux,
	}
	s.registerRoutes()
	return s
}

// requireUser redirects to the login page when no user record is present
func (s *Server) requireUser(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, err := s.session.User(); err != nil {
			http.Redirect(w, r, PathLogin, http.StatusSeeOther)
			return
		}
		next(w, r)
	}
}

// registerRoutes registers all routes on the server's mux
func (s *Server) registerRoutes() {
	// Static assets
	s.mux.HandleFunc("GET /static/app.css", s.handleStaticCSS)
	s.mux.HandleFunc("GET /static/app.js", s.handleStaticJS)

	// Session
	s.mux.HandleFunc("GET /login", s.handleLoginForm)
	s.mux.HandleFunc("POST /login", s.handleLogin)
	s.mux.HandleFunc("POST /logout", s.handleLogout)

	// Bill views
	s.mux.HandleFunc("GET /bills/new", s.requireUser(s.handleNewBillForm))
	s.mux.HandleFunc("POST /bills/new/file", s.requireUser(s.handleStageReceipt))
	s.mux.HandleFunc("POST /bills/new", s.requireUser(s.handleSubmitBill))
	s.mux.HandleFunc("GET /bills", s.requireUser(s.handleBills))

	s.mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, PathBills, http.StatusSeeOther)
	})
}

// Start starts the HTTP server
func (s *Server) Start(addr string) error {
	slog.Info("Starting server", "address", addr)
	return http.ListenAndServe(addr, s.mux)
}

// ServeHTTP implements http.Handler for testing
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

package main

import (
	_ "embed"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"

	"github.com/billed-app/billed/internal/bill"
	"github.com/billed-app/billed/internal/storeclient"
)

//go:embed VERSION.txt
var versionFile string

var version = strings.TrimSpace(versionFile)

func main() {
	fs := ff.NewFlagSet("billed")
	var (
		port        = fs.IntLong("port", 8080, "HTTP server port")
		apiURL      = fs.StringLong("api-url", "", "Billed API base URL (empty runs without a remote store)")
		sessionPath = fs.StringLong("session-db", "billed-session.db", "Session database file path")
		seedEmail   = fs.StringLong("employee-email", "", "Seed the session with this employee email")
		seedType    = fs.StringLong("employee-type", "Employee", "User type for the seeded session record")
		showVersion = fs.BoolLong("version", "Show version information")
	)

	if err := ff.Parse(fs, os.Args[1:],
		ff.WithEnvVarPrefix("BILLED"),
	); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", ffhelp.Flags(fs))
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if *showVersion {
		fmt.Println(version)
		os.Exit(0)
	}

	slog.Info("Initializing session store...")
	session, err := bill.NewBoltSession(*sessionPath)
	if err != nil {
		slog.Error("Failed to initialize session store", "error", err)
		os.Exit(1)
	}
	defer session.Close()

	if *seedEmail != "" {
		if err := session.SetUser(bill.User{Type: *seedType, Email: *seedEmail}); err != nil {
			slog.Error("Failed to seed session user", "error", err)
			os.Exit(1)
		}
	}

	var store storeclient.Store
	if *apiURL != "" {
		slog.Info("Using remote store", "url", *apiURL)
		store = storeclient.New(*apiURL)
	} else {
		slog.Warn("No API URL configured, bills will not be fetched or persisted")
	}

	server := bill.NewServer(store, session)

	addr := fmt.Sprintf(":%d", *port)
	go func() {
		if err := server.Start(addr); err != nil {
			slog.Error("Server error", "error", err)
			os.Exit(1)
		}
	}()

	slog.Info("Server started", "address", fmt.Sprintf("http://localhost%s", addr))

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	slog.Info("Shutting down...")
}

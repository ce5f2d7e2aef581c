package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/market-chat/internal/client/market"
	"github.com/s21platform/market-chat/internal/config"
	"github.com/s21platform/market-chat/internal/messaging"
	"github.com/s21platform/market-chat/internal/session"
	"github.com/s21platform/market-chat/internal/tui"
)

// app is the wiring shared by every command.
type app struct {
	cfg         *config.Config
	base        context.Context
	client      *market.Client
	session     *session.Session
	sessionPath string

	loader   *messaging.ThreadLoader
	store    *messaging.Store
	composer *messaging.Composer
}

var inbox app

var rootCmd = &cobra.Command{
	Use:           "inbox",
	Short:         "Read and answer marketplace messages",
	Long:          `Terminal inbox for the machinery marketplace: conversations about your listings and the listings you asked about.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return inbox.setup(cmd)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if inbox.client != nil {
			inbox.client.Close()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if inbox.session.Token() == "" {
			return fmt.Errorf("%w: run `inbox login` first", messaging.ErrNoSession)
		}

		// logger-lib reports Loki failures through the standard logger, which
		// would draw over the screen.
		logFile, err := tea.LogToFile(filepath.Join(filepath.Dir(inbox.sessionPath), "inbox.log"), "inbox")
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer logFile.Close()

		model := tui.New(inbox.newContext, inbox.session.UserID(), inbox.store, inbox.loader, inbox.composer)
		if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
			return fmt.Errorf("failed to run inbox: %w", err)
		}

		return nil
	},
}

func (a *app) setup(cmd *cobra.Command) error {
	a.cfg = config.MustLoad()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	a.base = ctx
	cmd.SetContext(a.newContext())

	a.sessionPath = a.cfg.Session.Path
	if a.sessionPath == "" {
		path, err := session.DefaultPath()
		if err != nil {
			return fmt.Errorf("failed to resolve session path: %w", err)
		}
		a.sessionPath = path
	}

	sess, err := session.Load(a.sessionPath)
	if err != nil {
		return fmt.Errorf("failed to load session: %w", err)
	}
	a.session = sess

	a.client = market.New(a.cfg)
	a.loader = messaging.NewThreadLoader(a.client, a.session)
	a.store = messaging.NewStore(a.client, a.session, a.loader)
	a.composer = messaging.NewComposer(a.client, a.session, a.store, a.loader)

	return nil
}

// newContext returns a context with a logger of its own. Loggers are not safe
// for concurrent use and the inbox runs backend calls concurrently.
func (a *app) newContext() context.Context {
	logger := logger_lib.New(a.cfg.Logger.Host, a.cfg.Logger.Port, a.cfg.Service.Name, a.cfg.Platform.Env)
	return context.WithValue(a.base, config.KeyLogger, logger)
}

// loadConversations fills the store and turns a missing session into a
// readable hint.
func (a *app) loadConversations(ctx context.Context) error {
	err := a.store.Load(ctx)
	if errors.Is(err, messaging.ErrNoSession) {
		return fmt.Errorf("%w: run `inbox login` first", err)
	}
	return err
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

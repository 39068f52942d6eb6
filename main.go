package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"educonnect/config"
	"educonnect/services"
	"educonnect/storage"
	"educonnect/utils"
)

// app carries what every command needs once the root command has loaded
// configuration.
type app struct {
	cfg    *config.Config
	logger *utils.Logger

	logLevel string
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "educonnect",
		Short: "EduConnect student services from the command line",
		Long: `Browse student housing and the professor directory, talk to the
study-abroad chatbot and manage the mock account session.

Configuration is read from .env and the process environment
(LOG_LEVEL, LISTING_SOURCE, SESSION_BACKEND, CHAT_DELAY_MS, ...).`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			a.cfg = config.Load()
			level := a.cfg.LogLevel
			if a.logLevel != "" {
				level = a.logLevel
			}
			a.logger = utils.NewLogger(level)
			if !a.cfg.EnvFileLoaded {
				a.logger.Debug("[config] No .env file found, using process environment")
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				a.logger.Sync()
			}
		},
	}

	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Log level: debug, info, warn, error (default from LOG_LEVEL)")

	root.AddCommand(newHousingCmd(a))
	root.AddCommand(newProfessorsCmd(a))
	root.AddCommand(newChatCmd(a))
	root.AddCommand(newAssistantCmd(a))
	root.AddCommand(newLoginCmd(a))
	root.AddCommand(newRegisterCmd(a))
	root.AddCommand(newLogoutCmd(a))
	root.AddCommand(newWhoamiCmd(a))
	root.AddCommand(newDashboardCmd(a))
	root.AddCommand(newCatalogCmd(a))
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// openSessionStore returns the configured session backend and a function
// releasing it.
func (a *app) openSessionStore(ctx context.Context) (storage.SessionStore, func(), error) {
	switch a.cfg.SessionBackend {
	case "memory":
		return storage.NewMemorySessionStore(), func() {}, nil
	case "file", "":
		return storage.NewFileSessionStore(a.cfg.SessionFile), func() {}, nil
	case "redis":
		rs := storage.NewRedisSessionStore(a.cfg.RedisURL, "educonnect:")
		if err := a.retry().Do(ctx, "redis-ping", rs.Ping); err != nil {
			_ = rs.Close()
			return nil, nil, err
		}
		return rs, func() { _ = rs.Close() }, nil
	}
	return nil, nil, fmt.Errorf("unknown SESSION_BACKEND %q (want memory, file or redis)", a.cfg.SessionBackend)
}

func (a *app) openAuth(ctx context.Context) (*services.AuthService, func(), error) {
	store, release, err := a.openSessionStore(ctx)
	if err != nil {
		a.logger.Error("[auth] Session store unavailable: %v", err)
		return nil, nil, err
	}
	return services.NewAuthService(ctx, store, a.logger), release, nil
}

func (a *app) retry() *utils.RetryConfig {
	return &utils.RetryConfig{
		MaxAttempts: a.cfg.MaxRetries,
		BaseDelay:   500 * time.Millisecond,
		Logger:      a.logger,
	}
}

func out(cmd *cobra.Command) io.Writer {
	return cmd.OutOrStdout()
}

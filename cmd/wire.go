package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/bnema/lets-share-cli/internal/adapters/api"
	feedrender "github.com/bnema/lets-share-cli/internal/adapters/render/feed"
	chainstore "github.com/bnema/lets-share-cli/internal/adapters/secrets/chain"
	filestore "github.com/bnema/lets-share-cli/internal/adapters/secrets/file"
	passstore "github.com/bnema/lets-share-cli/internal/adapters/secrets/pass"
	"github.com/bnema/lets-share-cli/internal/adapters/session"
	"github.com/bnema/lets-share-cli/internal/application"
	"github.com/bnema/lets-share-cli/internal/config"
	"github.com/bnema/lets-share-cli/internal/domain"
	"github.com/bnema/lets-share-cli/internal/ports"
)

var errNotSignedIn = fmt.Errorf(`%w: run "share login" first`, domain.ErrNotAuthenticated)

type app struct {
	cfg          config.Config
	log          *slog.Logger
	sessions     *session.Store
	nav          *routeTracker
	auth         *application.AuthFlow
	feed         *application.FeedService
	feedRenderer func([]domain.Post, feedrender.RenderOptions) (string, error)
	clock        ports.Clock
	readPassword func(fd int) ([]byte, error)
}

func wireApp() (*app, error) {
	cfg, err := config.Load(viper.New())
	if err != nil {
		return nil, err
	}

	logger := newLogger(cfg.Log.Level)

	secretStore, err := buildSecretStore(cfg.Secrets)
	if err != nil {
		return nil, fmt.Errorf("wire secret store: %w", err)
	}

	sessions := session.NewStore(secretStore)
	nav := newRouteTracker()

	client := api.New(cfg.API.BaseURL, sessions,
		api.WithTimeout(cfg.API.Timeout),
		api.WithNavigator(nav),
		api.WithLogger(logger),
	)

	return &app{
		cfg:          cfg,
		log:          logger,
		sessions:     sessions,
		nav:          nav,
		auth:         application.NewAuthFlow(api.NewAuthAPI(client, sessions), sessions, nav, logger),
		feed:         application.NewFeedService(api.NewPostsAPI(client), logger),
		feedRenderer: feedrender.Render,
		clock:        ports.SystemClock{},
		readPassword: term.ReadPassword,
	}, nil
}

func buildSecretStore(cfg config.SecretsConfig) (ports.SecretStore, error) {
	switch cfg.Backend {
	case "pass":
		return passstore.NewStore(), nil
	case "file":
		return filestore.NewStore(cfg.Dir), nil
	default:
		return chainstore.NewPassFirstWithFileFallback(cfg.Dir)
	}
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "info":
		lvl = slog.LevelInfo
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelWarn
	}

	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}

// requireAuth rehydrates the auth state and, when anonymous, records
// where the user was headed before bouncing them to login.
func (a *app) requireAuth(ctx context.Context, intended string) error {
	a.auth.Initialize(ctx)
	if a.auth.Snapshot().State == application.StateAuthenticated {
		return nil
	}

	a.nav.RecordIntended(intended)
	a.nav.NavigateTo(ports.RouteLogin)
	return errNotSignedIn
}

// loginHint decorates errors that made the gateway bounce the user to
// login (an expired session whose refresh was rejected).
func (a *app) loginHint(err error) error {
	if err == nil {
		return nil
	}
	if route, ok := a.nav.lastVisited(); ok && route == ports.RouteLogin {
		return fmt.Errorf(`%s: session expired, run "share login" to sign in again`, api.Detail(err))
	}
	return err
}

package bootstrap

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/baechuer/mail-relay/internal/application/relay"
	"github.com/baechuer/mail-relay/internal/config"
	infraemail "github.com/baechuer/mail-relay/internal/infrastructure/email"
	"github.com/baechuer/mail-relay/internal/infrastructure/web"
	"github.com/baechuer/mail-relay/internal/transport/http/handlers"
	"github.com/baechuer/mail-relay/internal/transport/http/router"
)

type App struct {
	web *web.Server
	cfg *config.Config
}

func NewAppWithConfig(cfg *config.Config, lg zerolog.Logger) (*App, func(), error) {
	var sender relay.Sender
	switch cfg.EmailSender {
	case "fake":
		sender = infraemail.NewFakeSender(cfg.FakeFailMode, lg)
	default:
		sender = infraemail.NewSMTPSender(infraemail.SMTPConfig{
			Timeout:            cfg.SMTPTimeout,
			InsecureSkipVerify: cfg.SMTPInsecureSkipVerify,
		}, lg)
	}

	svc := relay.NewService(sender, relay.Config{
		DefaultHost: cfg.DefaultSMTPHost,
		DefaultPort: cfg.DefaultSMTPPort,
	}, lg)

	h := router.New(
		handlers.NewEmailHandler(svc, cfg.MaxBodyBytes),
		handlers.NewHealthHandler(),
		router.Config{CORSOrigins: cfg.CORSOrigins},
	)

	app := &App{
		web: web.NewServer(web.Config{Addr: cfg.HTTPAddr, Handler: h}, lg),
		cfg: cfg,
	}

	lg.Info().
		Str("env", cfg.Env).
		Str("addr", cfg.HTTPAddr).
		Str("sender", svc.SenderName()).
		Str("default_smtp_host", cfg.DefaultSMTPHost).
		Int("default_smtp_port", cfg.DefaultSMTPPort).
		Msg("mail relay configured")

	cleanup := func() {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownWait)
		defer cancel()
		_ = app.Stop(ctx)
	}

	return app, cleanup, nil
}

// Start blocks until the web server stops.
func (a *App) Start(ctx context.Context) error {
	return a.web.Start(ctx)
}

func (a *App) Stop(ctx context.Context) error {
	if a.web == nil {
		return nil
	}
	return a.web.Stop(ctx)
}

// Addr is the bound listen address, useful when configured with port 0.
func (a *App) Addr() string { return a.web.Addr() }

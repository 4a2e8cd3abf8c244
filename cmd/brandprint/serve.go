package main

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/alnah/go-brandprint"
	"github.com/alnah/go-brandprint/internal/config"
	"github.com/alnah/go-brandprint/internal/delivery"
	"github.com/alnah/go-brandprint/internal/order"
	"github.com/alnah/go-brandprint/internal/server"
	"github.com/alnah/go-brandprint/internal/storage"
)

// runServe starts the HTTP API and blocks until ctx is canceled.
func runServe(ctx context.Context, args []string, env *Environment) error {
	f, positional, err := parseServeFlags(args, env.Stderr)
	if err != nil {
		return err
	}
	if len(positional) > 0 {
		return fmt.Errorf("%w: serve takes no arguments", ErrUsage)
	}

	cfg, err := loadSettings(f.common)
	if err != nil {
		return err
	}
	mergeServeFlags(f, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := server.NewLogger(cfg.Server.Env, env.Stderr)
	if f.common.quiet {
		logger = logger.Level(zerolog.WarnLevel)
	} else if f.common.verbose {
		logger = logger.Level(zerolog.DebugLevel)
	}

	opts, _, err := converterOptions(cfg)
	if err != nil {
		return err
	}
	workers := brandprint.ResolvePoolSize(cfg.Render.Workers)
	renderer := env.NewRenderer(workers, opts...)
	defer func() {
		if err := renderer.Close(); err != nil {
			logger.Warn().Err(err).Msg("closing browsers")
		}
	}()

	srvOpts := []server.Option{server.WithLogger(logger)}
	orders, err := newOrderService(ctx, cfg, renderer)
	if err != nil {
		return err
	}
	if orders != nil {
		srvOpts = append(srvOpts, server.WithOrders(orders))
	}

	logger.Info().
		Int("workers", workers).
		Bool("orders", orders != nil).
		Bool("storage", orders != nil && cfg.Storage.Enabled()).
		Msg("starting brandprint " + Version)

	return server.New(renderer, srvOpts...).ListenAndServe(ctx, cfg.Server.Addr)
}

// mergeServeFlags applies non-zero serve flags to cfg.
func mergeServeFlags(f *serveFlags, cfg *config.Config) {
	mergeRenderFlags(f.render, cfg)
	if f.addr != "" {
		cfg.Server.Addr = f.addr
	}
	if f.env != "" {
		cfg.Server.Env = f.env
	}
	if f.workers > 0 {
		cfg.Render.Workers = f.workers
	}
}

// newOrderService wires ordering when delivery is configured; it returns
// nil otherwise. Storage is optional.
func newOrderService(ctx context.Context, cfg *config.Config, r order.Renderer) (*order.Service, error) {
	if !cfg.Delivery.Enabled() {
		return nil, nil
	}

	mailer, err := delivery.NewMailer(delivery.Config{
		ServerToken:  cfg.Delivery.ServerToken,
		AccountToken: cfg.Delivery.AccountToken,
		From:         cfg.Delivery.From,
		To:           cfg.Delivery.To,
		Tag:          cfg.Delivery.Tag,
	})
	if err != nil {
		return nil, err
	}

	var opts []order.Option
	if cfg.Storage.Enabled() {
		pub, err := storage.NewPublisher(ctx, storage.Config{
			Bucket:          cfg.Storage.Bucket,
			Region:          cfg.Storage.Region,
			Endpoint:        cfg.Storage.Endpoint,
			AccessKeyID:     cfg.Storage.AccessKeyID,
			SecretAccessKey: cfg.Storage.SecretAccessKey,
			BaseURL:         cfg.Storage.BaseURL,
			UsePathStyle:    cfg.Storage.UsePathStyle,
		})
		if err != nil {
			return nil, err
		}
		opts = append(opts, order.WithPublisher(pub))
	}
	return order.NewService(r, mailer, opts...), nil
}

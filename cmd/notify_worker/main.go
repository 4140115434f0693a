package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/lunnorapp/lunnor_caixa/internal/amqp"
	"github.com/lunnorapp/lunnor_caixa/internal/notify"
	"github.com/lunnorapp/lunnor_caixa/internal/notify/whatsapp"
	"github.com/lunnorapp/lunnor_caixa/internal/platform/config"
)

// notify_worker drains the fund movement queue and forwards each message
// to the WhatsApp gateway webhook. Delivery is best-effort: a failure is
// logged and the message is dropped, never retried.
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	logger.Info("Starting notify worker")

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if !cfg.AMQPConfigured() {
		logger.Error("AMQP_URL is required for the notify worker")
		os.Exit(1)
	}
	if cfg.WhatsAppWebhookURL == "" {
		logger.Error("WHATSAPP_WEBHOOK_URL is required for the notify worker")
		os.Exit(1)
	}

	amqpClient, err := amqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPNotifyQueue)
	if err != nil {
		logger.Error("Failed to initialize AMQP client", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer amqpClient.Close()

	sender := whatsapp.NewSender(cfg.WhatsAppWebhookURL)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return amqpClient.ConsumeFundMovements(gctx, func(ctx context.Context, msg notify.FundMovementMessage) error {
			if err := sender.Send(ctx, msg); err != nil {
				return err
			}
			slog.InfoContext(ctx, "Delivered fund movement to WhatsApp gateway",
				slog.String("user_id", msg.UserID),
				slog.String("tipo", msg.Tipo))
			return nil
		})
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("Worker stopped with error", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("Notify worker shutdown complete")
}

// Package notify defines the outbound notification contract: the WhatsApp
// gateway payload published when a Peace Fund movement is recorded, and
// the publisher port the services write through. The AMQP client
// implements Publisher; deployments without a broker use NopPublisher.
package notify

import (
	"context"
	"log/slog"

	"github.com/shopspring/decimal"
)

// FundMovementMessage is the JSON payload delivered to the WhatsApp
// gateway webhook. Field names follow the gateway's pt-BR contract.
type FundMovementMessage struct {
	Nome      string          `json:"nome"`
	Tipo      string          `json:"tipo"` // "deposit" or "withdrawal"
	Valor     decimal.Decimal `json:"valor"`
	Descricao string          `json:"descricao"`
	Data      string          `json:"data"` // dd/MM/yyyy
	Telefone  string          `json:"telefone"`
	UserID    string          `json:"user_id"`
	Mensagem  string          `json:"mensagem"` // Human-readable templated text
}

// Publisher queues fund movement messages for delivery. Implementations
// must be safe to call fire-and-forget: a failed publish is the caller's
// to log, never to roll back.
type Publisher interface {
	PublishFundMovement(ctx context.Context, msg FundMovementMessage) error
}

// NopPublisher is used when no broker is configured. It logs and drops.
type NopPublisher struct{}

// PublishFundMovement logs the dropped message at debug level.
func (NopPublisher) PublishFundMovement(ctx context.Context, msg FundMovementMessage) error {
	slog.DebugContext(ctx, "No notification broker configured, dropping fund movement message",
		slog.String("user_id", msg.UserID),
		slog.String("tipo", msg.Tipo))
	return nil
}

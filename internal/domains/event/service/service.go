package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"

	"busbooking/config"
	"busbooking/infras/kafka"
	"busbooking/infras/otel"
	"busbooking/internal/domains/event/model"
	"busbooking/shared/constant"
	"busbooking/shared/timezone"

	"github.com/rs/zerolog/log"
)

// Publisher emits booking events. Publishing is best effort and never fails the caller.
type Publisher interface {
	Publish(ctx context.Context, events ...model.BookingEvent)
}

type publisherImpl struct {
	client kafka.Client
	topic  string
	otel   otel.Otel
}

func New(client kafka.Client, cfg *config.Config, otel otel.Otel) Publisher {
	return &publisherImpl{
		client: client,
		topic:  cfg.Kafka.Topic.Booking,
		otel:   otel,
	}
}

func (p *publisherImpl) Publish(ctx context.Context, events ...model.BookingEvent) {
	if len(events) == 0 {
		return
	}

	ctx, scope := p.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".Publish")
	defer scope.End()

	messages := make([]kafka.Message, len(events))
	for i, event := range events {
		if event.OccurredAt.IsZero() {
			event.OccurredAt = timezone.Now()
		}

		messages[i] = kafka.Message{Key: event.Key(), Value: event}
	}

	scope.SetAttributes(map[string]any{
		"event.type":  string(events[0].Type),
		"event.count": len(events),
	})

	// publishing must outlive an abandoned request
	if err := p.client.SendMessages(context.WithoutCancel(ctx), p.topic, messages...); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Str("topic", p.topic).Str("type", string(events[0].Type)).Msg("failed to publish booking events")

		return
	}

	log.Debug().Str("topic", p.topic).Int("count", len(events)).Msg("booking events published")
}

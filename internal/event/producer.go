package event

import (
	"context"
	"fmt"
	"log/slog"

	pkgkafka "github.com/utafrali/storefront/pkg/kafka"
	"github.com/utafrali/storefront/pkg/logger"
)

// Catalog event actions.
const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

// SourceCatalogService identifies events originating from this service.
const SourceCatalogService = "catalog-service"

// Publisher is the part of pkg/kafka.Producer used here.
type Publisher interface {
	Publish(ctx context.Context, topic string, event *pkgkafka.Event) error
}

// DeletedData is the payload of every *.deleted event.
type DeletedData struct {
	ID int64 `json:"id"`
}

// Topic returns the topic for an action on an aggregate, e.g.
// "ecommerce.catalog.review.created".
func Topic(aggregate, action string) string {
	return pkgkafka.Topic("catalog", aggregate, action)
}

// Producer publishes catalog domain events to Kafka.
type Producer struct {
	kafka  Publisher
	logger *slog.Logger
}

// NewProducer creates a new event producer for the catalog service.
func NewProducer(kafka Publisher, logger *slog.Logger) *Producer {
	return &Producer{
		kafka:  kafka,
		logger: logger,
	}
}

// PublishCreated publishes <aggregate>.created with data as payload.
func (p *Producer) PublishCreated(ctx context.Context, aggregate string, id int64, data any) error {
	return p.publish(ctx, aggregate, ActionCreated, id, data)
}

// PublishUpdated publishes <aggregate>.updated with data as payload.
func (p *Producer) PublishUpdated(ctx context.Context, aggregate string, id int64, data any) error {
	return p.publish(ctx, aggregate, ActionUpdated, id, data)
}

// PublishDeleted publishes <aggregate>.deleted carrying only the ID.
func (p *Producer) PublishDeleted(ctx context.Context, aggregate string, id int64) error {
	return p.publish(ctx, aggregate, ActionDeleted, id, DeletedData{ID: id})
}

func (p *Producer) publish(ctx context.Context, aggregate, action string, id int64, data any) error {
	eventType := aggregate + "." + action
	topic := Topic(aggregate, action)

	event, err := pkgkafka.NewEvent(eventType, fmt.Sprint(id), aggregate, SourceCatalogService, data)
	if err != nil {
		return fmt.Errorf("create %s event: %w", eventType, err)
	}
	if cid := logger.CorrelationIDFromContext(ctx); cid != "" {
		event.WithCorrelationID(cid)
	}

	if err := p.kafka.Publish(ctx, topic, event); err != nil {
		return fmt.Errorf("publish %s event: %w", eventType, err)
	}

	p.logger.DebugContext(ctx, "published "+eventType+" event",
		slog.Int64(aggregate+"_id", id),
		slog.String("event_id", event.EventID),
	)

	return nil
}

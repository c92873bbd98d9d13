// Package subscribers holds in-process consumers of category events.
package subscribers

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ThreeDotsLabs/watermill/message"

	pkgevents "github.com/ghuser/catalog/pkg/events"
	"github.com/ghuser/catalog/pkg/logger"
	"github.com/ghuser/catalog/services/category/domain/events"
)

// Subscriber is satisfied by *events.EventBus.
type Subscriber interface {
	Subscribe(ctx context.Context, topic string, handler func(context.Context, *message.Message) error) (<-chan error, error)
}

// Topics lists every category topic the audit log follows.
var Topics = []string{
	events.TopicCategoryCreated,
	events.TopicCategoryUpdated,
	events.TopicCategoryDeleted,
}

// StartAuditLog logs one line per category event until ctx is canceled.
// Handler failures reported by the bus are logged as errors.
func StartAuditLog(ctx context.Context, bus Subscriber, log logger.Logger) error {
	log = log.With("component", "category_audit")
	for _, topic := range Topics {
		errCh, err := bus.Subscribe(ctx, topic, auditHandler(topic, log))
		if err != nil {
			return fmt.Errorf("audit subscribe %s: %w", topic, err)
		}
		go func() {
			for err := range errCh {
				log.ErrorContext(ctx, "audit handler failed", "topic", topic, "error", err)
			}
		}()
	}
	return nil
}

func auditHandler(topic string, log logger.Logger) func(context.Context, *message.Message) error {
	return func(ctx context.Context, msg *message.Message) error {
		var payload struct {
			CategoryID string `json:"category_id"`
		}
		if err := json.Unmarshal(msg.Payload, &payload); err != nil {
			return fmt.Errorf("decode %s payload: %w", topic, err)
		}
		log.InfoContext(ctx, "category event",
			"topic", topic,
			"event_id", msg.Metadata.Get(pkgevents.MetadataEventID),
			"event_version", msg.Metadata.Get(pkgevents.MetadataEventVersion),
			"category_id", payload.CategoryID,
		)
		return nil
	}
}

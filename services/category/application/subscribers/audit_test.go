package subscribers

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"

	pkgevents "github.com/ghuser/catalog/pkg/events"
	"github.com/ghuser/catalog/pkg/logger"
	"github.com/ghuser/catalog/services/category/domain/events"
)

// syncBuffer guards a bytes.Buffer written from subscriber goroutines.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestAuditHandler(t *testing.T) {
	var buf syncBuffer
	h := auditHandler(events.TopicCategoryCreated, logger.NewWithWriter(&buf, "info"))

	t.Run("logs the category id", func(t *testing.T) {
		msg, err := pkgevents.NewJSONMessage(uuid.Nil, events.Version, events.CategoryCreatedEvent{CategoryID: "abc"})
		if err != nil {
			t.Fatalf("new message: %v", err)
		}
		if err := h(context.Background(), msg); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		out := buf.String()
		if !strings.Contains(out, `"category_id":"abc"`) || !strings.Contains(out, `"topic":"category.created"`) {
			t.Fatalf("unexpected log output: %s", out)
		}
	})

	t.Run("rejects malformed payloads", func(t *testing.T) {
		if err := h(context.Background(), message.NewMessage("1", []byte("{"))); err == nil {
			t.Fatal("expected a decode error")
		}
	})
}

func TestStartAuditLog(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	bus := pkgevents.NewEventBus(logger.Nop())
	defer bus.Close() //nolint:errcheck

	var buf syncBuffer
	if err := StartAuditLog(ctx, bus, logger.NewWithWriter(&buf, "info")); err != nil {
		t.Fatalf("start audit log: %v", err)
	}

	msg, err := pkgevents.NewJSONMessage(uuid.Nil, events.Version, events.CategoryDeletedEvent{CategoryID: "gone"})
	if err != nil {
		t.Fatalf("new message: %v", err)
	}
	if err := bus.Publish(ctx, events.TopicCategoryDeleted, msg); err != nil {
		t.Fatalf("publish: %v", err)
	}

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if strings.Contains(buf.String(), `"category_id":"gone"`) {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("audit line not logged: %s", buf.String())
}

func TestStartAuditLog_ClosedBus(t *testing.T) {
	bus := pkgevents.NewEventBus(logger.Nop())
	_ = bus.Close()

	if err := StartAuditLog(context.Background(), bus, logger.Nop()); err == nil {
		t.Fatal("expected an error from a closed bus")
	}
}

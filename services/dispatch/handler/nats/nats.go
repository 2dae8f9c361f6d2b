package nats

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nats-io/nats.go"

	"github.com/loopline/dispatch/internal/pkg/constants"
	"github.com/loopline/dispatch/internal/pkg/logger"
	"github.com/loopline/dispatch/internal/pkg/models"
	natspkg "github.com/loopline/dispatch/internal/pkg/nats"
	"github.com/loopline/dispatch/services/dispatch"
)

// DispatchHandler handles NATS subscriptions for the dispatch service
type DispatchHandler struct {
	dispatchUC dispatch.DispatchUC
	natsClient *natspkg.Client
	subs       []*nats.Subscription
}

// NewDispatchHandler creates a new dispatch NATS handler
func NewDispatchHandler(dispatchUC dispatch.DispatchUC, client *natspkg.Client) *DispatchHandler {
	return &DispatchHandler{
		dispatchUC: dispatchUC,
		natsClient: client,
		subs:       make([]*nats.Subscription, 0),
	}
}

// InitNATSConsumers initializes all NATS consumers for the dispatch service
func (h *DispatchHandler) InitNATSConsumers() error {
	// Fresh submissions trigger an immediate search instead of waiting for
	// the next periodic sweep. Queue group keeps one instance handling each.
	sub, err := h.natsClient.QueueSubscribe(constants.SubjectRequestCreated, "dispatch-search", func(msg *nats.Msg) {
		if err := h.handleRequestCreated(msg.Data); err != nil {
			logger.Error("Error handling request created event", logger.Err(err))
		}
	})
	if err != nil {
		return fmt.Errorf("failed to subscribe to request created events: %w", err)
	}
	h.subs = append(h.subs, sub)

	return nil
}

func (h *DispatchHandler) handleRequestCreated(data []byte) error {
	var event models.RequestCreatedEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return fmt.Errorf("failed to unmarshal request created event: %w", err)
	}
	return h.dispatchUC.SearchRequest(context.Background(), event.RequestID)
}

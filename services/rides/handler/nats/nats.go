package nats

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/loopline/dispatch/internal/pkg/constants"
	"github.com/loopline/dispatch/internal/pkg/logger"
	"github.com/loopline/dispatch/internal/pkg/models"
	natspkg "github.com/loopline/dispatch/internal/pkg/nats"
	"github.com/loopline/dispatch/services/rides"
	wsHandler "github.com/loopline/dispatch/services/rides/handler/websocket"
)

// RideHandler handles NATS subscriptions for the rides service
type RideHandler struct {
	rideUC     rides.RideUC
	natsClient *natspkg.Client
	ws         *wsHandler.RideWSHandler
	subs       []*nats.Subscription
}

// NewRideHandler creates a new ride NATS handler
func NewRideHandler(rideUC rides.RideUC, client *natspkg.Client, ws *wsHandler.RideWSHandler) *RideHandler {
	return &RideHandler{
		rideUC:     rideUC,
		natsClient: client,
		ws:         ws,
		subs:       make([]*nats.Subscription, 0),
	}
}

// InitNATSConsumers initializes all NATS consumers for the rides service
func (h *RideHandler) InitNATSConsumers() error {
	// Movement reports mutate shared state, so a queue group keeps one
	// instance handling each.
	sub, err := h.natsClient.QueueSubscribe(constants.SubjectVehicleLocation, "rides-location", func(msg *nats.Msg) {
		if err := h.handleVehicleLocation(msg.Data); err != nil {
			logger.Error("Error handling vehicle location event", logger.Err(err))
		}
	})
	if err != nil {
		return fmt.Errorf("failed to subscribe to vehicle location events: %w", err)
	}
	h.subs = append(h.subs, sub)

	// Ride events fan out to the driver's live connection. Every instance
	// subscribes: the driver is connected to exactly one of them.
	sub, err = h.natsClient.Subscribe(constants.SubjectRideMatched, func(msg *nats.Msg) {
		if err := h.handleRideMatched(msg.Data); err != nil {
			logger.Error("Error handling ride matched event", logger.Err(err))
		}
	})
	if err != nil {
		return fmt.Errorf("failed to subscribe to ride matched events: %w", err)
	}
	h.subs = append(h.subs, sub)

	sub, err = h.natsClient.Subscribe(constants.SubjectRideStatus, func(msg *nats.Msg) {
		if err := h.handleRideStatus(msg.Data); err != nil {
			logger.Error("Error handling ride status event", logger.Err(err))
		}
	})
	if err != nil {
		return fmt.Errorf("failed to subscribe to ride status events: %w", err)
	}
	h.subs = append(h.subs, sub)

	sub, err = h.natsClient.Subscribe(constants.SubjectRideETA, func(msg *nats.Msg) {
		if err := h.handleRideETA(msg.Data); err != nil {
			logger.Error("Error handling ride ETA event", logger.Err(err))
		}
	})
	if err != nil {
		return fmt.Errorf("failed to subscribe to ride ETA events: %w", err)
	}
	h.subs = append(h.subs, sub)

	return nil
}

func (h *RideHandler) handleVehicleLocation(data []byte) error {
	var location models.VehicleLocation
	if err := json.Unmarshal(data, &location); err != nil {
		return fmt.Errorf("failed to unmarshal vehicle location event: %w", err)
	}
	if location.Timestamp.IsZero() {
		location.Timestamp = time.Now()
	}
	return h.rideUC.DriverMoved(context.Background(), location)
}

func (h *RideHandler) handleRideMatched(data []byte) error {
	var event models.RideMatchedEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return fmt.Errorf("failed to unmarshal ride matched event: %w", err)
	}
	driverID := event.DriverID.String()
	h.ws.NotifyDriver(driverID, constants.EventRideMatched, event)
	h.ws.RefreshDriver(driverID)
	return nil
}

func (h *RideHandler) handleRideStatus(data []byte) error {
	var event models.RideStatusEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return fmt.Errorf("failed to unmarshal ride status event: %w", err)
	}

	name := constants.EventRideStatus
	switch {
	case event.Status.Cancelled():
		name = constants.EventRideCancelled
	case event.Status == models.RideComplete:
		name = constants.EventRideCompleted
	}
	h.ws.NotifyDriver(event.DriverID.String(), name, event)
	return nil
}

func (h *RideHandler) handleRideETA(data []byte) error {
	var event models.RideETAEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return fmt.Errorf("failed to unmarshal ride ETA event: %w", err)
	}
	h.ws.NotifyDriver(event.DriverID.String(), constants.EventRideETA, event)
	return nil
}

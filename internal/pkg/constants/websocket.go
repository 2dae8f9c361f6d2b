package constants

// WebSocket event types
const (
	// Common events
	EventError = "error"
	EventPing  = "ping"
	EventPong  = "pong"

	// Driver queue events
	EventQueueUpdate   = "queue_update"
	EventActionsUpdate = "actions_update"

	// Ride events
	EventRideMatched   = "ride_matched"
	EventRideStatus    = "ride_status"
	EventRideETA       = "ride_eta"
	EventRideCancelled = "ride_cancelled"
	EventRideCompleted = "ride_completed"
)

// WebSocket error codes
const (
	ErrorInvalidFormat = "invalid_format"
	ErrorUnauthorized  = "unauthorized"
	ErrorInternalError = "internal_error"
	ErrorRideNotFound  = "ride_not_found"
)

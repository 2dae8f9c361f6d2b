package constants

// NATS Subjects
const (
	// Dispatch Service
	SubjectRequestCreated = "request.created"
	SubjectRequestMissed  = "request.missed"
	SubjectRideMatched    = "ride.matched"

	// Rides Service
	SubjectRideStatus = "ride.status"
	SubjectRideETA    = "ride.eta"

	// Vehicle telemetry
	SubjectVehicleLocation = "vehicle.location"
)

package constants

// Redis key formats
const (
	// Dispatch Service
	KeyVehicleGeo  = "vehicles:geo:%s"  // Format: vehicles:geo:{location_id}, GEO set of vehicle positions
	KeyVehiclePos  = "vehicle:pos:%s"   // Format: vehicle:pos:{vehicle_id}, hash of last reported position
	KeyRouteLock   = "route:lock:%s"    // Format: route:lock:{vehicle_id}, short-TTL mutation lock
	KeyTravelCache = "travel:eta:%s:%s" // Format: travel:eta:{from_geohash}:{to_geohash}
)

// Redis hash fields
const (
	FieldLatitude  = "lat"
	FieldLongitude = "lng"
	FieldTimestamp = "ts"
	FieldDriverID  = "driver_id"
)

package constants

// Redis key formats
const (
	KeyRouteLive = "route:live:%s" // Format: route:live:{route_id}
	KeyRoutesGeo = "routes:live"   // GEO set of the last known position of every active route
)

// Redis hash fields
const (
	FieldLatitude  = "lat"
	FieldLongitude = "lng"
	FieldGeohash   = "geohash"
	FieldTimestamp = "ts"
	FieldSpeed     = "speed"
	FieldVehicleID = "vehicle_id"
)

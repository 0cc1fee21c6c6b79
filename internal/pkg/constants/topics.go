package constants

// NSQ topics
const (
	TopicRouteFix       = "route.fix"       // inbound fixes
	TopicRouteTelemetry = "route.telemetry" // derived telemetry after every accepted fix
)

// MQTT topics
const (
	MQTTTopicRouteFix = "ecofleet/routes/+/fix" // Format: ecofleet/routes/{route_id}/fix
)

package stream

// Records published to Kafka carry a Connect-style envelope so downstream
// sinks (webhook dispatcher, warehouse loaders) can consume them without a
// registry.

type Schema struct {
	Type     string  `json:"type"`
	Name     string  `json:"name"`
	Fields   []Field `json:"fields"`
	Optional bool    `json:"optional"`
}

type Field struct {
	Field string `json:"field"`
	Type  string `json:"type"`
}

type TelemetryRecord struct {
	AppID     string `json:"app_id"`
	DeviceID  string `json:"device_id"`
	ReleaseID string `json:"release_id"`
	EventType string `json:"event_type"`
	Timestamp int64  `json:"timestamp"`
}

type TelemetryEnvelope struct {
	Schema  Schema          `json:"schema"`
	Payload TelemetryRecord `json:"payload"`
}

var TelemetrySchema = Schema{
	Type:     "struct",
	Name:     "TelemetryEvent",
	Optional: false,
	Fields: []Field{
		{Field: "app_id", Type: "string"},
		{Field: "device_id", Type: "string"},
		{Field: "release_id", Type: "string"},
		{Field: "event_type", Type: "string"},
		{Field: "timestamp", Type: "int64"},
	},
}

type TransitionRecord struct {
	AppID     string `json:"app_id"`
	ReleaseID string `json:"release_id"`
	Version   string `json:"version"`
	From      string `json:"from"`
	To        string `json:"to"`
	Reason    string `json:"reason"`
	Timestamp int64  `json:"timestamp"`
}

type TransitionEnvelope struct {
	Schema  Schema           `json:"schema"`
	Payload TransitionRecord `json:"payload"`
}

var TransitionSchema = Schema{
	Type:     "struct",
	Name:     "ReleaseTransition",
	Optional: false,
	Fields: []Field{
		{Field: "app_id", Type: "string"},
		{Field: "release_id", Type: "string"},
		{Field: "version", Type: "string"},
		{Field: "from", Type: "string"},
		{Field: "to", Type: "string"},
		{Field: "reason", Type: "string"},
		{Field: "timestamp", Type: "int64"},
	},
}

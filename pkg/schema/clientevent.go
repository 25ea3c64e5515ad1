package schema

const ClientEventSchemaTextV1 = `{
	"type": "record",
	"namespace": "storefront",
	"name": "client_event",
	"fields": [
		{"name": "event_type", "type": "string"},
		{"name": "subject_id", "type": "string"},
		{"name": "name", "type": "string"},
		{"name": "amount", "type": "double"},
		{"name": "quantity", "type": "int"},
		{"name": "occurred_at", "type": "long"}
	]
}`

type ClientEventV1 struct {
	EventType  string  `avro:"event_type"`
	SubjectID  string  `avro:"subject_id"`
	Name       string  `avro:"name"`
	Amount     float64 `avro:"amount"`
	Quantity   int     `avro:"quantity"`
	OccurredAt int64   `avro:"occurred_at"`
}

package events

import (
	"encoding/json"
	"time"
)

// Envelope is the canonical event shape carried through the outbox and the
// message bus. Producers fill PartitionKey with the owning entity id so
// per-entity ordering survives a future move to a partitioned broker.
type Envelope struct {
	EventID       string          `json:"event_id"`
	EventType     string          `json:"event_type"`
	OccurredAt    time.Time       `json:"occurred_at"`
	SourceService string          `json:"source_service"`
	SchemaVersion int             `json:"schema_version"`
	PartitionKey  string          `json:"partition_key"`
	Data          json.RawMessage `json:"data"`
}

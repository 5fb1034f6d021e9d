package commands

import (
	"encoding/json"
	"time"

	"clout/contexts/campaign-bounty/submission-ledger/ports"
)

const TopicSubmissionCreated = "submission.created"

func newSubmissionEnvelope(
	eventID string,
	eventType string,
	submissionID string,
	occurredAt time.Time,
	data map[string]any,
) (ports.EventEnvelope, error) {
	payload, err := json.Marshal(data)
	if err != nil {
		return ports.EventEnvelope{}, err
	}
	return ports.EventEnvelope{
		EventID:       eventID,
		EventType:     eventType,
		OccurredAt:    occurredAt.UTC(),
		SourceService: "submission-ledger",
		SchemaVersion: 1,
		PartitionKey:  submissionID,
		Data:          payload,
	}, nil
}

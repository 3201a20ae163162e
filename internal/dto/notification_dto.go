package dto

import "github.com/google/uuid"

type LeadEventType string

const (
	LeadEventApplicationCreated LeadEventType = "application_created"
	LeadEventContactCreated     LeadEventType = "contact_created"
	LeadEventStatusChanged      LeadEventType = "status_changed"
)

// PublishLeadEventMessage is the payload carried over the notification bus.
// Only ids and the status transition travel on the wire; the consumer reads
// the committed row before formatting.
type PublishLeadEventMessage struct {
	Type      LeadEventType `json:"type"`
	EntityId  uuid.UUID     `json:"entity_id"`
	Entity    string        `json:"entity"`
	OldStatus string        `json:"old_status,omitempty"`
	NewStatus string        `json:"new_status,omitempty"`
}

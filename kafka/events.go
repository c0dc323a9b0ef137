package kafka

import "time"

// ProductModeratedEvent is emitted whenever a product's publication status
// changes through a moderation operation.
type ProductModeratedEvent struct {
	EventID      string    `json:"event_id"`
	EventType    string    `json:"event_type"`
	ProductID    uint      `json:"product_id"`
	Status       int       `json:"status"`
	RejectReason *string   `json:"reject_reason,omitempty"`
	Timestamp    time.Time `json:"timestamp"`
}

// ProductBatchModeratedEvent is emitted after a bulk status transition
type ProductBatchModeratedEvent struct {
	EventID       string    `json:"event_id"`
	EventType     string    `json:"event_type"`
	ProductIDs    []uint    `json:"product_ids"`
	Status        int       `json:"status"`
	AffectedCount int64     `json:"affected_count"`
	Timestamp     time.Time `json:"timestamp"`
}

// Event types
const (
	EventTypeProductModerated      = "product.moderated"
	EventTypeProductBatchModerated = "product.batch_moderated"
)

// Kafka topics
const (
	TopicProductModerated = "product-moderated"
)

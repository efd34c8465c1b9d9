package domain

import "time"

// ActivityLog is an audit record of a mutating operation, written best-effort
// alongside the primary write and surfaced on the admin dashboard.
type ActivityLog struct {
	ID         string    `json:"id" bson:"_id,omitempty"`
	ActorID    string    `json:"actor_id" bson:"actor_id"`
	ActorRole  Role      `json:"actor_role" bson:"actor_role"`
	Action     string    `json:"action" bson:"action"`
	EntityType string    `json:"entity_type" bson:"entity_type"`
	EntityID   string    `json:"entity_id" bson:"entity_id"`
	Detail     string    `json:"detail,omitempty" bson:"detail,omitempty"`
	CreatedAt  time.Time `json:"created_at" bson:"created_at"`
}

package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TapLog is the raw, unenriched record of a tap request, kept alongside
// the analytics events for auditing.
type TapLog struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CardID    primitive.ObjectID `bson:"cardId" json:"cardId"`
	IP        string             `bson:"ip,omitempty" json:"ip,omitempty"`
	UserAgent string             `bson:"userAgent,omitempty" json:"userAgent,omitempty"`
	SessionID string             `bson:"sessionId,omitempty" json:"sessionId,omitempty"`
	Timestamp time.Time          `bson:"timestamp" json:"timestamp"`
}

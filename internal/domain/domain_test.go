package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestEventTypeValid(t *testing.T) {
	for _, valid := range []EventType{EventTypeView, EventTypeShare, EventTypeContact, EventTypeDownload} {
		assert.True(t, valid.Valid(), string(valid))
	}
	assert.False(t, EventType("click").Valid())
	assert.False(t, EventType("").Valid())
}

func TestNewGeoPoint(t *testing.T) {
	p := NewGeoPoint(120.9842, 14.5995)

	assert.Equal(t, "Point", p.Type)
	assert.Equal(t, 120.9842, p.Coordinates[0], "longitude comes first")
	assert.Equal(t, 14.5995, p.Coordinates[1])
}

func TestCardPublicViewOmitsManagementFields(t *testing.T) {
	card := Card{
		ID:      primitive.NewObjectID(),
		NFCID:   "nfc-1",
		Status:  CardStatusActive,
		Name:    "Alex Reyes",
		Company: "TechCorp",
		Owner:   primitive.NewObjectID(),
	}

	data, err := json.Marshal(card.PublicView())
	require.NoError(t, err)

	body := string(data)
	assert.Contains(t, body, "Alex Reyes")
	assert.NotContains(t, body, card.Owner.Hex())
	assert.NotContains(t, body, "nfc-1")
	assert.NotContains(t, body, "status")
}

func TestAnalyticsEventOmitsAbsentLocation(t *testing.T) {
	event := AnalyticsEvent{
		Card:      primitive.NewObjectID(),
		EventType: EventTypeView,
		DeviceInfo: DeviceInfo{
			Type: DeviceUnknown,
		},
	}

	data, err := json.Marshal(event)
	require.NoError(t, err)

	assert.NotContains(t, string(data), "\"location\"", "a failed lookup must omit the field entirely")
}

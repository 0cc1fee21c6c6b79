package nsq

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnmarshalMessage(t *testing.T) {
	var msg struct {
		RouteID   string  `json:"route_id"`
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
	}

	err := UnmarshalMessage([]byte(`{"route_id":"r1","latitude":40.4,"longitude":-3.7}`), &msg)
	require.NoError(t, err)
	assert.Equal(t, "r1", msg.RouteID)
	assert.Equal(t, 40.4, msg.Latitude)
	assert.Equal(t, -3.7, msg.Longitude)

	err = UnmarshalMessage([]byte(`{not json`), &msg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to unmarshal message")
}

func TestNewConsumer_InvalidTopic(t *testing.T) {
	consumer, err := NewConsumer("bad topic!", "telemetry", func([]byte) error { return nil })
	assert.Error(t, err)
	assert.Nil(t, consumer)
}

func TestNewConsumer(t *testing.T) {
	consumer, err := NewConsumer("route.fix", "telemetry", func([]byte) error { return nil })
	require.NoError(t, err)
	require.NotNil(t, consumer)
	consumer.Stop()
}

package kafka_test

import (
	"context"
	"encoding/json"
	"testing"

	"busbooking/config"
	"busbooking/infras/kafka"
	"busbooking/infras/otel/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessage_ToKafkaMessage(t *testing.T) {
	message := kafka.Message{
		Key:   "booking-41",
		Value: map[string]any{"type": "booking.created", "seat_number": "R01"},
	}

	msg, err := message.ToKafkaMessage()
	require.NoError(t, err)

	assert.Equal(t, []byte("booking-41"), msg.Key)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(msg.Value, &decoded))
	assert.Equal(t, "R01", decoded["seat_number"])
}

func TestMessage_ToKafkaMessageInvalid(t *testing.T) {
	message := kafka.Message{Key: "k", Value: make(chan int)}

	_, err := message.ToKafkaMessage()
	assert.Error(t, err)
}

func TestNew_Disabled(t *testing.T) {
	client := kafka.New(&config.Config{}, mocks.NewOtel())

	assert.NoError(t, client.SendMessages(context.Background(), "booking-events", kafka.Message{Key: "k", Value: 1}))
	assert.NoError(t, client.Close())
}
